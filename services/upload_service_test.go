package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadSingle_Success(t *testing.T) {
	media := &fakeUploader{failFor: map[string]bool{}}
	svc := NewUploadServiceWith(media)

	result, err := svc.UploadSingle(context.Background(), IncomingFile{
		Filename: "photo.png",
		Size:     512,
		Mimetype: "image/png",
		Content:  strings.NewReader("png"),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/photo.png", result.URL)
	assert.Equal(t, "formbuilder/photo.png", result.PublicID)
	assert.Equal(t, "photo.png", result.Filename)
	assert.Equal(t, int64(512), result.Size)
	assert.Equal(t, "image/png", result.Mimetype)
}

func TestUploadSingle_NoFile(t *testing.T) {
	svc := NewUploadServiceWith(&fakeUploader{})

	_, err := svc.UploadSingle(context.Background(), IncomingFile{Filename: "x"})
	assert.ErrorIs(t, err, ErrNoFileProvided)
}

func TestUploadSingle_DisallowedType(t *testing.T) {
	media := &fakeUploader{failFor: map[string]bool{}}
	svc := NewUploadServiceWith(media)

	_, err := svc.UploadSingle(context.Background(), IncomingFile{
		Filename: "app.exe",
		Mimetype: "application/x-msdownload",
		Content:  strings.NewReader("bin"),
	})
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
	assert.Zero(t, media.calls) // izin denetimi yüklemeden önce yapılır
}

func TestUploadSingle_UpstreamFailure(t *testing.T) {
	media := &fakeUploader{failFor: map[string]bool{"a.pdf": true}}
	svc := NewUploadServiceWith(media)

	_, err := svc.UploadSingle(context.Background(), IncomingFile{
		Filename: "a.pdf",
		Mimetype: "application/pdf",
		Content:  strings.NewReader("pdf"),
	})
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestUploadMultiple_Empty(t *testing.T) {
	svc := NewUploadServiceWith(&fakeUploader{})

	_, err := svc.UploadMultiple(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoFilesProvided)
}

// Tek bir izinsiz tür tüm isteği reddettirir; hiçbir dosya yüklenmez.
func TestUploadMultiple_DisallowedTypeRejectsAll(t *testing.T) {
	media := &fakeUploader{failFor: map[string]bool{}}
	svc := NewUploadServiceWith(media)

	_, err := svc.UploadMultiple(context.Background(), []IncomingFile{
		{Filename: "ok.png", Mimetype: "image/png", Content: strings.NewReader("a")},
		{Filename: "bad.exe", Mimetype: "application/x-msdownload", Content: strings.NewReader("b")},
	})
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
	assert.Zero(t, media.calls)
}

// Yükleme sırasında oluşan hatalar isteği düşürmez; dosya kendi kaydında
// hata metniyle raporlanır.
func TestUploadMultiple_PerFileFailure(t *testing.T) {
	media := &fakeUploader{failFor: map[string]bool{"broken.pdf": true}}
	svc := NewUploadServiceWith(media)

	entries, err := svc.UploadMultiple(context.Background(), []IncomingFile{
		{Filename: "ok.png", Size: 10, Mimetype: "image/png", Content: strings.NewReader("a")},
		{Filename: "broken.pdf", Mimetype: "application/pdf", Content: strings.NewReader("b")},
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "https://cdn.example.com/ok.png", entries[0].URL)
	assert.Empty(t, entries[0].Error)

	assert.Equal(t, "broken.pdf", entries[1].Filename)
	assert.Equal(t, "Upload failed", entries[1].Error)
	assert.Empty(t, entries[1].URL)
}

func TestDeleteUpload_Success(t *testing.T) {
	media := &fakeUploader{}
	svc := NewUploadServiceWith(media)

	err := svc.DeleteUpload(context.Background(), "formbuilder/photo.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"formbuilder/photo.png"}, media.destroyed)
}

func TestDeleteUpload_EmptyPublicID(t *testing.T) {
	media := &fakeUploader{}
	svc := NewUploadServiceWith(media)

	err := svc.DeleteUpload(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoFileProvided)
	assert.Empty(t, media.destroyed)
}

func TestDeleteUpload_UpstreamFailure(t *testing.T) {
	media := &fakeUploader{failFor: map[string]bool{"formbuilder/gone.png": true}}
	svc := NewUploadServiceWith(media)

	err := svc.DeleteUpload(context.Background(), "formbuilder/gone.png")
	assert.ErrorIs(t, err, ErrUploadDeleteFailed)
}
