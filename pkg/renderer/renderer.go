// Package renderer form alan listesinden gönderim anında doğrulama şeması
// türetir ve gönderim limiti yaklaşım durumunu hesaplar. Render eden
// arayüzden bağımsız, saf fonksiyonlardır.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"formyap.link/models"
	"formyap.link/pkg/validation"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldRule tek bir alan için türetilmiş doğrulama kuralı.
type FieldRule struct {
	FieldID   string
	Required  bool
	Email     bool
	MinLength *int
	MaxLength *int
}

// DeriveSchema alan listesinden alan-başına kuralları türetir: string tipi,
// email alanları için format, validation'dan min/max uzunluk, zorunluluk.
func DeriveSchema(fields []models.FormField) []FieldRule {
	rules := make([]FieldRule, 0, len(fields))
	for _, field := range fields {
		rule := FieldRule{
			FieldID:  field.ID,
			Required: field.Required,
			Email:    field.Type == models.FieldTypeEmail,
		}
		if field.Validation != nil {
			rule.MinLength = field.Validation.MinLength
			rule.MaxLength = field.Validation.MaxLength
		}
		rules = append(rules, rule)
	}
	return rules
}

// ValidateData alan-anahtarlı değerleri türetilmiş şemaya göre denetler.
func ValidateData(fields []models.FormField, data map[string]interface{}) []validation.Detail {
	var details []validation.Detail
	add := func(fieldID, message string) {
		details = append(details, validation.Detail{Field: fieldID, Message: message})
	}

	for _, rule := range DeriveSchema(fields) {
		raw, present := data[rule.FieldID]
		text := valueText(raw)

		if !present || strings.TrimSpace(text) == "" {
			if rule.Required {
				add(rule.FieldID, "This field is required")
			}
			continue
		}

		if rule.Email && !emailPattern.MatchString(text) {
			add(rule.FieldID, "Invalid email address")
		}
		if rule.MinLength != nil && len(text) < *rule.MinLength {
			add(rule.FieldID, fmt.Sprintf("Must be at least %d characters", *rule.MinLength))
		}
		if rule.MaxLength != nil && len(text) > *rule.MaxLength {
			add(rule.FieldID, fmt.Sprintf("Must be at most %d characters", *rule.MaxLength))
		}
	}

	return details
}

// LimitState formun gönderim limiti karşısındaki durumu.
type LimitState struct {
	Blocked   bool // Sayaç limite ulaştı, gönderim engellenir
	Warning   bool // Sayaç limitin %90'ına ulaştı
	Remaining int  // Limite kalan gönderim sayısı (limitsizse 0)
}

// ComputeLimitState backend'in uyguladığı limit kuralının UI karşılığını
// hesaplar: %90'da uyarı, %100'de engelleme.
func ComputeLimitState(form *models.Form) LimitState {
	if form.Settings.SubmissionLimit == nil {
		return LimitState{}
	}
	limit := *form.Settings.SubmissionLimit
	count := form.SubmissionCount

	state := LimitState{Remaining: limit - count}
	if state.Remaining < 0 {
		state.Remaining = 0
	}
	if count >= limit {
		state.Blocked = true
	}
	if float64(count) >= 0.9*float64(limit) {
		state.Warning = true
	}
	return state
}

func valueText(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = valueText(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}
