package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// FormStatus formun yayın durumunu tanımlar.
type FormStatus string

const (
	FormStatusDraft     FormStatus = "draft"     // Taslak, gönderim kabul etmez
	FormStatusPublished FormStatus = "published" // Yayında, gönderim kabul eder
)

// FieldType form alanı türlerini tanımlar.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeFile     FieldType = "file"
)

// AllFieldTypes geçerli alan türlerinin tam listesi.
var AllFieldTypes = []FieldType{
	FieldTypeText, FieldTypeEmail, FieldTypeSelect, FieldTypeCheckbox,
	FieldTypeRadio, FieldTypeTextarea, FieldTypeFile,
}

// FieldValidation bir alanın isteğe bağlı doğrulama kuralları.
type FieldValidation struct {
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
}

// FormField formun tek bir girdi tanımıdır. Form kaydı içinde JSONB olarak
// saklanır; id istemci tarafından atanır ve form içinde benzersizdir.
type FormField struct {
	ID          string           `json:"id"`
	Type        FieldType        `json:"type"`
	Label       string           `json:"label"`
	Placeholder string           `json:"placeholder,omitempty"`
	Required    bool             `json:"required"`
	Options     []string         `json:"options,omitempty"`
	Validation  *FieldValidation `json:"validation,omitempty"`
}

// FormFieldList JSONB kolonunda tutulan sıralı alan listesi.
type FormFieldList []FormField

// Value GORM için JSONB serileştirme.
func (l FormFieldList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan GORM için JSONB okuma.
func (l *FormFieldList) Scan(value interface{}) error {
	if value == nil {
		*l = FormFieldList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("FormFieldList: desteklenmeyen kolon tipi")
	}
}

// DefaultThankYouMessage ayar verilmediğinde kullanılan teşekkür mesajı.
const DefaultThankYouMessage = "Thank you for your submission!"

// FormSettings form davranış ayarları. JSONB olarak saklanır.
type FormSettings struct {
	ThankYouMessage  string `json:"thankYouMessage"`
	SubmissionLimit  *int   `json:"submissionLimit,omitempty"`
	AllowFileUploads bool   `json:"allowFileUploads"`
}

// Value GORM için JSONB serileştirme.
func (s FormSettings) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan GORM için JSONB okuma.
func (s *FormSettings) Scan(value interface{}) error {
	if value == nil {
		*s = FormSettings{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("FormSettings: desteklenmeyen kolon tipi")
	}
}

// Form yayınlanabilir bir form tanımıdır: başlık, sıralı alan listesi,
// durum, ayarlar ve sunucunun tuttuğu gönderim sayacı.
type Form struct {
	BaseModel
	Title           string        `gorm:"type:varchar(200);not null" json:"title"`
	Description     string        `gorm:"type:varchar(1000)" json:"description"`
	Fields          FormFieldList `gorm:"type:jsonb;not null;default:'[]'" json:"fields"`
	Status          FormStatus    `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	SubmissionCount int           `gorm:"not null;default:0" json:"submissionCount"`
	Settings        FormSettings  `gorm:"type:jsonb;not null;default:'{}'" json:"settings"`
}

// IsPublished formun gönderim kabul edip etmediğini söyler.
func (f *Form) IsPublished() bool {
	return f.Status == FormStatusPublished
}

// LimitReached gönderim limiti tanımlıysa ve sayaç limite ulaştıysa true döner.
func (f *Form) LimitReached() bool {
	return f.Settings.SubmissionLimit != nil && f.SubmissionCount >= *f.Settings.SubmissionLimit
}

// FieldByID id'si verilen alanı döndürür; yoksa nil.
func (f *Form) FieldByID(fieldID string) *FormField {
	for i := range f.Fields {
		if f.Fields[i].ID == fieldID {
			return &f.Fields[i]
		}
	}
	return nil
}
