package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"formyap.link/models"
	"formyap.link/pkg/queryparams"
	"formyap.link/pkg/validation"
	"formyap.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submissionFixture struct {
	forms    IFormService
	subs     ISubmissionService
	formRepo repositories.IFormRepository
	media    *fakeUploader
}

func newSubmissionFixture() *submissionFixture {
	store := repositories.NewMemoryStore()
	formRepo := repositories.NewMemoryFormRepository(store)
	subRepo := repositories.NewMemorySubmissionRepository(store)
	media := &fakeUploader{failFor: map[string]bool{}}
	return &submissionFixture{
		forms:    NewFormServiceWith(formRepo),
		subs:     NewSubmissionServiceWith(formRepo, subRepo, media),
		formRepo: formRepo,
		media:    media,
	}
}

func (f *submissionFixture) publishedForm(t *testing.T, limit *int) *models.Form {
	t.Helper()
	p := validation.FormPayload{
		Title:  strPtr("Contact"),
		Status: strPtr("published"),
		Fields: &[]models.FormField{
			{ID: "field_name", Type: models.FieldTypeText, Label: "Name", Required: true},
		},
	}
	if limit != nil {
		p.Settings = &validation.SettingsPayload{SubmissionLimit: limit}
	}
	form, err := f.forms.CreateForm(context.Background(), p)
	require.NoError(t, err)
	return form
}

func TestSubmitForm_Success(t *testing.T) {
	f := newSubmissionFixture()
	form := f.publishedForm(t, nil)

	sub, err := f.subs.SubmitForm(context.Background(), form.ID,
		map[string]interface{}{"field_name": "Ada"},
		nil,
		RequestMeta{IPAddress: "203.0.113.7", UserAgent: "Mozilla/5.0"},
	)
	require.NoError(t, err)

	assert.NotZero(t, sub.ID)
	assert.Equal(t, form.ID, sub.FormID)
	assert.Equal(t, "203.0.113.7", sub.IPAddress)
	assert.Equal(t, "Ada", sub.DataMap()["field_name"])

	// Sayaç artırılmış olmalı.
	reloaded, err := f.forms.GetFormByID(context.Background(), form.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.SubmissionCount)
}

func TestSubmitForm_FormNotFound(t *testing.T) {
	f := newSubmissionFixture()

	_, err := f.subs.SubmitForm(context.Background(), 99, map[string]interface{}{"x": "y"}, nil, RequestMeta{})
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestSubmitForm_DraftRejected(t *testing.T) {
	f := newSubmissionFixture()
	form, err := f.forms.CreateForm(context.Background(), validation.FormPayload{
		Title:  strPtr("Draft"),
		Fields: &[]models.FormField{{ID: "f1", Type: models.FieldTypeText, Label: "A"}},
	})
	require.NoError(t, err)

	_, err = f.subs.SubmitForm(context.Background(), form.ID, map[string]interface{}{"f1": "v"}, nil, RequestMeta{})
	assert.ErrorIs(t, err, ErrFormNotPublished)
}

func TestSubmitForm_EmptyDataRejected(t *testing.T) {
	f := newSubmissionFixture()
	form := f.publishedForm(t, nil)

	_, err := f.subs.SubmitForm(context.Background(), form.ID, map[string]interface{}{}, nil, RequestMeta{})
	assert.ErrorIs(t, err, ErrSubmissionDataRequired)
}

func TestSubmitForm_LimitBoundary(t *testing.T) {
	f := newSubmissionFixture()
	form := f.publishedForm(t, intPtr(1))

	_, err := f.subs.SubmitForm(context.Background(), form.ID, map[string]interface{}{"f": "1"}, nil, RequestMeta{})
	require.NoError(t, err)

	// Sayaç limite ulaştı; sonraki gönderim reddedilir.
	_, err = f.subs.SubmitForm(context.Background(), form.ID, map[string]interface{}{"f": "2"}, nil, RequestMeta{})
	assert.ErrorIs(t, err, ErrSubmissionLimitReached)
}

func TestSubmitForm_MetaTruncated(t *testing.T) {
	f := newSubmissionFixture()
	form := f.publishedForm(t, nil)

	sub, err := f.subs.SubmitForm(context.Background(), form.ID,
		map[string]interface{}{"f": "v"},
		nil,
		RequestMeta{
			IPAddress: strings.Repeat("1", 60),
			UserAgent: strings.Repeat("u", 600),
		},
	)
	require.NoError(t, err)

	assert.Len(t, sub.IPAddress, 45)
	assert.Len(t, sub.UserAgent, 500)
}

func TestSubmitForm_UploadsFiles(t *testing.T) {
	f := newSubmissionFixture()
	form := f.publishedForm(t, nil)

	sub, err := f.subs.SubmitForm(context.Background(), form.ID,
		map[string]interface{}{"f": "v"},
		[]IncomingFile{
			{FieldID: "field_cv", Filename: "cv.pdf", Size: 1024, Mimetype: "application/pdf", Content: strings.NewReader("pdf")},
		},
		RequestMeta{},
	)
	require.NoError(t, err)

	require.Len(t, sub.Files, 1)
	assert.Equal(t, "field_cv", sub.Files[0].FieldID)
	assert.Equal(t, "https://cdn.example.com/cv.pdf", sub.Files[0].URL)
	assert.Equal(t, int64(1024), sub.Files[0].Size)
}

// Tek bir dosyanın yükleme hatası gönderimi düşürmez; dosya atlanır,
// gönderim kalan dosyalarla kaydedilir.
func TestSubmitForm_FileFailureTolerated(t *testing.T) {
	f := newSubmissionFixture()
	f.media.failFor["broken.png"] = true
	form := f.publishedForm(t, nil)

	sub, err := f.subs.SubmitForm(context.Background(), form.ID,
		map[string]interface{}{"f": "v"},
		[]IncomingFile{
			{FieldID: "a", Filename: "broken.png", Mimetype: "image/png", Content: strings.NewReader("x")},
			{FieldID: "b", Filename: "ok.png", Mimetype: "image/png", Content: strings.NewReader("y")},
		},
		RequestMeta{},
	)
	require.NoError(t, err)

	require.Len(t, sub.Files, 1)
	assert.Equal(t, "ok.png", sub.Files[0].Filename)
}

// Limitsiz formda eşzamanlı gönderimlerin hepsi sayaca yansımalı.
func TestSubmitForm_ConcurrentIncrements(t *testing.T) {
	f := newSubmissionFixture()
	form := f.publishedForm(t, nil)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := f.subs.SubmitForm(context.Background(), form.ID, map[string]interface{}{"f": "v"}, nil, RequestMeta{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	reloaded, err := f.forms.GetFormByID(context.Background(), form.ID)
	require.NoError(t, err)
	assert.Equal(t, n, reloaded.SubmissionCount)
}

func TestGetSubmissionsPaginated(t *testing.T) {
	f := newSubmissionFixture()
	form := f.publishedForm(t, nil)
	for i := 0; i < 5; i++ {
		_, err := f.subs.SubmitForm(context.Background(), form.ID, map[string]interface{}{"f": "v"}, nil, RequestMeta{})
		require.NoError(t, err)
	}

	subs, meta, err := f.subs.GetSubmissionsPaginated(context.Background(), form.ID, queryparams.ListParams{Page: 1, PerPage: 3})
	require.NoError(t, err)

	assert.Len(t, subs, 3)
	assert.Equal(t, int64(5), meta.Total)
	assert.Equal(t, 2, meta.Pages)
}

func TestExportSubmissions(t *testing.T) {
	f := newSubmissionFixture()
	form := f.publishedForm(t, nil)
	_, err := f.subs.SubmitForm(context.Background(), form.ID, map[string]interface{}{"field_name": "Ada"}, nil, RequestMeta{})
	require.NoError(t, err)

	csv, filename, err := f.subs.ExportSubmissions(context.Background(), form.ID)
	require.NoError(t, err)

	assert.Equal(t, "form-Contact-submissions.csv", filename)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Submitted At,Name,All Uploaded Files", lines[0])
	assert.Contains(t, lines[1], `"Ada"`)
}

func TestExportSubmissions_FormNotFound(t *testing.T) {
	f := newSubmissionFixture()

	_, _, err := f.subs.ExportSubmissions(context.Background(), 42)
	assert.ErrorIs(t, err, ErrFormNotFound)
}
