package services

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"formyap.link/configs/configslog"
	"formyap.link/pkg/uploader"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	// Testlerde log çıktısı bastırılır.
	configslog.Log = zap.NewNop()
	configslog.SLog = configslog.Log.Sugar()
	os.Exit(m.Run())
}

// fakeUploader testlerde ağa çıkmadan yükleme simüle eder. failFor içindeki
// dosya adları için hata döner.
type fakeUploader struct {
	failFor   map[string]bool
	calls     int
	destroyed []string
}

func (f *fakeUploader) Configured() bool { return true }

func (f *fakeUploader) Upload(_ context.Context, filename string, _ io.Reader) (*uploader.Result, error) {
	f.calls++
	if f.failFor[filename] {
		return nil, errors.New("upstream unavailable")
	}
	return &uploader.Result{
		URL:      "https://cdn.example.com/" + filename,
		PublicID: "formbuilder/" + filename,
	}, nil
}

func (f *fakeUploader) Destroy(_ context.Context, publicID string) error {
	if f.failFor[publicID] {
		return errors.New("upstream unavailable")
	}
	f.destroyed = append(f.destroyed, publicID)
	return nil
}
