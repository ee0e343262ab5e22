package services

import (
	"context"
	"testing"

	"formyap.link/models"
	"formyap.link/pkg/queryparams"
	"formyap.link/pkg/validation"
	"formyap.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func newFormServiceForTest() (IFormService, repositories.IFormRepository) {
	store := repositories.NewMemoryStore()
	repo := repositories.NewMemoryFormRepository(store)
	return NewFormServiceWith(repo), repo
}

func createPayload(title string) validation.FormPayload {
	return validation.FormPayload{
		Title: strPtr(title),
		Fields: &[]models.FormField{
			{ID: "field_name", Type: models.FieldTypeText, Label: "Name", Required: true},
		},
	}
}

func TestCreateForm_Defaults(t *testing.T) {
	svc, _ := newFormServiceForTest()

	form, err := svc.CreateForm(context.Background(), createPayload("  Contact  "))
	require.NoError(t, err)

	assert.Equal(t, "Contact", form.Title) // başlık kırpılır
	assert.Equal(t, models.FormStatusDraft, form.Status)
	assert.Equal(t, models.DefaultThankYouMessage, form.Settings.ThankYouMessage)
	assert.Nil(t, form.Settings.SubmissionLimit)
	assert.Zero(t, form.SubmissionCount)
	assert.NotZero(t, form.ID)
}

func TestCreateForm_ValidationError(t *testing.T) {
	svc, _ := newFormServiceForTest()

	_, err := svc.CreateForm(context.Background(), validation.FormPayload{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Validation failed", vErr.Error())
	assert.NotEmpty(t, vErr.Details)
}

func TestCreateForm_ExplicitStatusAndSettings(t *testing.T) {
	svc, _ := newFormServiceForTest()

	p := createPayload("Contact")
	p.Status = strPtr("published")
	p.Settings = &validation.SettingsPayload{
		ThankYouMessage:  strPtr("Thanks!"),
		SubmissionLimit:  intPtr(50),
		AllowFileUploads: boolPtr(true),
	}

	form, err := svc.CreateForm(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, models.FormStatusPublished, form.Status)
	assert.Equal(t, "Thanks!", form.Settings.ThankYouMessage)
	assert.Equal(t, 50, *form.Settings.SubmissionLimit)
	assert.True(t, form.Settings.AllowFileUploads)
}

func TestGetFormByID_NotFound(t *testing.T) {
	svc, _ := newFormServiceForTest()

	_, err := svc.GetFormByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestUpdateForm_PartialStatusOnly(t *testing.T) {
	svc, _ := newFormServiceForTest()
	form, err := svc.CreateForm(context.Background(), createPayload("Contact"))
	require.NoError(t, err)

	updated, err := svc.UpdateForm(context.Background(), form.ID, validation.FormPayload{
		Status: strPtr("published"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.FormStatusPublished, updated.Status)
	// Gönderilmeyen anahtarlar dokunulmaz kalır.
	assert.Equal(t, "Contact", updated.Title)
	assert.Len(t, updated.Fields, 1)
}

func TestUpdateForm_PartialSettingsMerge(t *testing.T) {
	svc, _ := newFormServiceForTest()
	form, err := svc.CreateForm(context.Background(), createPayload("Contact"))
	require.NoError(t, err)

	updated, err := svc.UpdateForm(context.Background(), form.ID, validation.FormPayload{
		Settings: &validation.SettingsPayload{SubmissionLimit: intPtr(10)},
	})
	require.NoError(t, err)

	assert.Equal(t, 10, *updated.Settings.SubmissionLimit)
	// Ayarların gönderilmeyen anahtarları korunur.
	assert.Equal(t, models.DefaultThankYouMessage, updated.Settings.ThankYouMessage)
}

func TestUpdateForm_NotFound(t *testing.T) {
	svc, _ := newFormServiceForTest()

	_, err := svc.UpdateForm(context.Background(), 99, validation.FormPayload{Status: strPtr("draft")})
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestUpdateForm_InvalidPartial(t *testing.T) {
	svc, _ := newFormServiceForTest()
	form, err := svc.CreateForm(context.Background(), createPayload("Contact"))
	require.NoError(t, err)

	_, err = svc.UpdateForm(context.Background(), form.ID, validation.FormPayload{Status: strPtr("archived")})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestDeleteForm(t *testing.T) {
	svc, _ := newFormServiceForTest()
	form, err := svc.CreateForm(context.Background(), createPayload("Contact"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteForm(context.Background(), form.ID))

	_, err = svc.GetFormByID(context.Background(), form.ID)
	assert.ErrorIs(t, err, ErrFormNotFound)

	assert.ErrorIs(t, svc.DeleteForm(context.Background(), form.ID), ErrFormNotFound)
}

func TestDuplicateForm(t *testing.T) {
	svc, repo := newFormServiceForTest()

	p := createPayload("Survey")
	p.Status = strPtr("published")
	p.Settings = &validation.SettingsPayload{SubmissionLimit: intPtr(5)}
	original, err := svc.CreateForm(context.Background(), p)
	require.NoError(t, err)

	// Sayacı artır; kopyada sıfırlanmalı.
	require.NoError(t, repo.IncrementSubmissionCount(context.Background(), original.ID))

	dup, err := svc.DuplicateForm(context.Background(), original.ID)
	require.NoError(t, err)

	assert.Equal(t, "Survey (Copy)", dup.Title)
	assert.Equal(t, models.FormStatusDraft, dup.Status) // kopya her zaman taslak
	assert.Zero(t, dup.SubmissionCount)
	assert.NotEqual(t, original.ID, dup.ID)
	assert.Equal(t, original.Fields, dup.Fields)
	assert.Equal(t, 5, *dup.Settings.SubmissionLimit)
}

func TestDuplicateForm_NotFound(t *testing.T) {
	svc, _ := newFormServiceForTest()

	_, err := svc.DuplicateForm(context.Background(), 42)
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestGetFormsPaginated(t *testing.T) {
	svc, _ := newFormServiceForTest()
	for i := 0; i < 25; i++ {
		_, err := svc.CreateForm(context.Background(), createPayload("Form"))
		require.NoError(t, err)
	}

	forms, meta, err := svc.GetFormsPaginated(context.Background(), queryparams.ListParams{Page: 2, PerPage: 20})
	require.NoError(t, err)

	assert.Len(t, forms, 5)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 2, meta.Pages)
}
