package renderer

import (
	"testing"

	"formyap.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestDeriveSchema(t *testing.T) {
	fields := []models.FormField{
		{ID: "f1", Type: models.FieldTypeEmail, Required: true},
		{ID: "f2", Type: models.FieldTypeText, Validation: &models.FieldValidation{MinLength: intPtr(3), MaxLength: intPtr(10)}},
	}

	rules := DeriveSchema(fields)
	require.Len(t, rules, 2)

	assert.True(t, rules[0].Email)
	assert.True(t, rules[0].Required)
	assert.False(t, rules[1].Email)
	assert.Equal(t, 3, *rules[1].MinLength)
	assert.Equal(t, 10, *rules[1].MaxLength)
}

func TestValidateData_Required(t *testing.T) {
	fields := []models.FormField{
		{ID: "f1", Type: models.FieldTypeText, Required: true},
	}

	details := ValidateData(fields, map[string]interface{}{})
	require.Len(t, details, 1)
	assert.Equal(t, "f1", details[0].Field)
	assert.Equal(t, "This field is required", details[0].Message)

	// Sadece boşluktan oluşan değer de eksik sayılır.
	details = ValidateData(fields, map[string]interface{}{"f1": "   "})
	require.Len(t, details, 1)
}

func TestValidateData_Email(t *testing.T) {
	fields := []models.FormField{
		{ID: "f1", Type: models.FieldTypeEmail},
	}

	details := ValidateData(fields, map[string]interface{}{"f1": "not-an-email"})
	require.Len(t, details, 1)
	assert.Equal(t, "Invalid email address", details[0].Message)

	assert.Empty(t, ValidateData(fields, map[string]interface{}{"f1": "ada@example.com"}))
}

func TestValidateData_LengthBounds(t *testing.T) {
	fields := []models.FormField{
		{ID: "f1", Type: models.FieldTypeText, Validation: &models.FieldValidation{MinLength: intPtr(3), MaxLength: intPtr(5)}},
	}

	details := ValidateData(fields, map[string]interface{}{"f1": "ab"})
	require.Len(t, details, 1)
	assert.Equal(t, "Must be at least 3 characters", details[0].Message)

	details = ValidateData(fields, map[string]interface{}{"f1": "abcdef"})
	require.Len(t, details, 1)
	assert.Equal(t, "Must be at most 5 characters", details[0].Message)

	assert.Empty(t, ValidateData(fields, map[string]interface{}{"f1": "abcd"}))
}

func TestValidateData_OptionalEmptySkipsRules(t *testing.T) {
	fields := []models.FormField{
		{ID: "f1", Type: models.FieldTypeEmail, Validation: &models.FieldValidation{MinLength: intPtr(5)}},
	}

	// Zorunlu olmayan alan boş bırakıldığında format/uzunluk denetlenmez.
	assert.Empty(t, ValidateData(fields, map[string]interface{}{}))
}

func TestComputeLimitState_NoLimit(t *testing.T) {
	form := &models.Form{}
	state := ComputeLimitState(form)

	assert.False(t, state.Blocked)
	assert.False(t, state.Warning)
	assert.Zero(t, state.Remaining)
}

func TestComputeLimitState_Thresholds(t *testing.T) {
	limit := 100

	form := &models.Form{SubmissionCount: 89, Settings: models.FormSettings{SubmissionLimit: &limit}}
	state := ComputeLimitState(form)
	assert.False(t, state.Warning)
	assert.False(t, state.Blocked)
	assert.Equal(t, 11, state.Remaining)

	// %90'da uyarı başlar.
	form.SubmissionCount = 90
	state = ComputeLimitState(form)
	assert.True(t, state.Warning)
	assert.False(t, state.Blocked)

	// Limitte gönderim engellenir.
	form.SubmissionCount = 100
	state = ComputeLimitState(form)
	assert.True(t, state.Blocked)
	assert.True(t, state.Warning)
	assert.Zero(t, state.Remaining)
}
