package validation

import (
	"fmt"
	"strings"

	"formyap.link/models"
)

// Detail tek bir doğrulama ihlali. API yanıtındaki details listesinin elemanı.
type Detail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Alan sınırları.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MaxLabelLength       = 200
	MaxPlaceholderLength = 200
	MaxOptionLength      = 100
	MaxPatternLength     = 500
	MaxLengthBound       = 10000
	MinSubmissionLimit   = 1
	MaxSubmissionLimit   = 10000
	MaxThankYouLength    = 1000
)

// SettingsPayload form ayarlarının istek gövdesindeki hali. Pointer alanlar
// update modunda "gönderilmedi" ile "boş gönderildi" ayrımı için.
type SettingsPayload struct {
	ThankYouMessage  *string `json:"thankYouMessage"`
	SubmissionLimit  *int    `json:"submissionLimit"`
	AllowFileUploads *bool   `json:"allowFileUploads"`
}

// FormPayload form oluşturma/güncelleme isteğinin gövdesi.
type FormPayload struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Fields      *[]models.FormField `json:"fields"`
	Status      *string             `json:"status"`
	Settings    *SettingsPayload    `json:"settings"`
}

// ValidateFormCreate create isteği için tüm ihlalleri toplar; ilk hatada
// durmaz. Boş liste dönerse payload geçerlidir.
func ValidateFormCreate(p FormPayload) []Detail {
	return validateForm(p, true)
}

// ValidateFormUpdate update isteği için doğrular. Kısmi gövdeler tolere
// edilir: yalnızca gönderilen anahtarlar denetlenir, böylece sadece status
// yamalayan istemciler geçer.
func ValidateFormUpdate(p FormPayload) []Detail {
	return validateForm(p, false)
}

func validateForm(p FormPayload, requireAll bool) []Detail {
	var details []Detail
	add := func(field, message string) {
		details = append(details, Detail{Field: field, Message: message})
	}

	// title
	if p.Title == nil {
		if requireAll {
			add("title", `"title" is required`)
		}
	} else {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			add("title", `"title" is not allowed to be empty`)
		} else if len(title) > MaxTitleLength {
			add("title", fmt.Sprintf(`"title" length must be less than or equal to %d characters long`, MaxTitleLength))
		}
	}

	// description
	if p.Description != nil && len(strings.TrimSpace(*p.Description)) > MaxDescriptionLength {
		add("description", fmt.Sprintf(`"description" length must be less than or equal to %d characters long`, MaxDescriptionLength))
	}

	// fields
	if p.Fields == nil {
		if requireAll {
			add("fields", `"fields" is required`)
		}
	} else {
		for i, field := range *p.Fields {
			details = append(details, validateField(i, field)...)
		}
	}

	// status
	if p.Status != nil {
		status := models.FormStatus(*p.Status)
		if status != models.FormStatusDraft && status != models.FormStatusPublished {
			add("status", `"status" must be one of [draft, published]`)
		}
	}

	// settings
	if p.Settings != nil {
		if p.Settings.ThankYouMessage != nil && len(*p.Settings.ThankYouMessage) > MaxThankYouLength {
			add("settings.thankYouMessage", fmt.Sprintf(`"settings.thankYouMessage" length must be less than or equal to %d characters long`, MaxThankYouLength))
		}
		if p.Settings.SubmissionLimit != nil {
			if *p.Settings.SubmissionLimit < MinSubmissionLimit {
				add("settings.submissionLimit", fmt.Sprintf(`"settings.submissionLimit" must be greater than or equal to %d`, MinSubmissionLimit))
			} else if *p.Settings.SubmissionLimit > MaxSubmissionLimit {
				add("settings.submissionLimit", fmt.Sprintf(`"settings.submissionLimit" must be less than or equal to %d`, MaxSubmissionLimit))
			}
		}
	}

	return details
}

// validateField tek bir alan tanımını denetler. Alan yolu orijinal API ile
// aynı biçimdedir: fields.<index>.<anahtar>.
//
// select/radio için options'ın boş olmaması burada ZORLANMAZ; bu bilinen bir
// açık olarak korunur, varsayılan seçenekleri designer katmanı sağlar.
func validateField(index int, field models.FormField) []Detail {
	var details []Detail
	path := func(key string) string {
		return fmt.Sprintf("fields.%d.%s", index, key)
	}
	add := func(field, message string) {
		details = append(details, Detail{Field: field, Message: message})
	}

	if field.ID == "" {
		add(path("id"), fmt.Sprintf(`"fields[%d].id" is required`, index))
	}

	if field.Type == "" {
		add(path("type"), fmt.Sprintf(`"fields[%d].type" is required`, index))
	} else if !isValidFieldType(field.Type) {
		add(path("type"), fmt.Sprintf(`"fields[%d].type" must be one of [%s]`, index, fieldTypeList()))
	}

	if field.Label == "" {
		add(path("label"), fmt.Sprintf(`"fields[%d].label" is required`, index))
	} else if len(field.Label) > MaxLabelLength {
		add(path("label"), fmt.Sprintf(`"fields[%d].label" length must be less than or equal to %d characters long`, index, MaxLabelLength))
	}

	if len(field.Placeholder) > MaxPlaceholderLength {
		add(path("placeholder"), fmt.Sprintf(`"fields[%d].placeholder" length must be less than or equal to %d characters long`, index, MaxPlaceholderLength))
	}

	for j, option := range field.Options {
		if len(option) > MaxOptionLength {
			add(fmt.Sprintf("fields.%d.options.%d", index, j),
				fmt.Sprintf(`"fields[%d].options[%d]" length must be less than or equal to %d characters long`, index, j, MaxOptionLength))
		}
	}

	if v := field.Validation; v != nil {
		if v.MinLength != nil && (*v.MinLength < 0 || *v.MinLength > MaxLengthBound) {
			add(path("validation.minLength"), fmt.Sprintf(`"fields[%d].validation.minLength" must be between 0 and %d`, index, MaxLengthBound))
		}
		if v.MaxLength != nil && (*v.MaxLength < 0 || *v.MaxLength > MaxLengthBound) {
			add(path("validation.maxLength"), fmt.Sprintf(`"fields[%d].validation.maxLength" must be between 0 and %d`, index, MaxLengthBound))
		}
		if len(v.Pattern) > MaxPatternLength {
			add(path("validation.pattern"), fmt.Sprintf(`"fields[%d].validation.pattern" length must be less than or equal to %d characters long`, index, MaxPatternLength))
		}
	}

	return details
}

func isValidFieldType(t models.FieldType) bool {
	for _, valid := range models.AllFieldTypes {
		if t == valid {
			return true
		}
	}
	return false
}

func fieldTypeList() string {
	names := make([]string, len(models.AllFieldTypes))
	for i, t := range models.AllFieldTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
