package repositories

import (
	"context"
	"errors"
	"time"

	"formyap.link/configs"
	"formyap.link/models"
	"formyap.link/pkg/queryparams"
)

// ErrNotFound aranan kayıt veritabanında yok.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IFormRepository form kayıtları için depo arayüzü. Postgres (GORM) ve
// bellek-içi implementasyonları vardır; hangisinin kullanılacağı açılışta
// DATA_SOURCE ayarından seçilir.
type IFormRepository interface {
	Create(ctx context.Context, form *models.Form) error
	FindByID(ctx context.Context, id uint) (*models.Form, error)
	// FindAllPaginated formları en yeniden eskiye sıralar; status ve
	// başlık/açıklama araması filtre olarak uygulanır. Toplam sayı
	// pagination hesabı için birlikte döner.
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Form, int64, error)
	Update(ctx context.Context, form *models.Form) error
	// Delete formu ve o forma ait TÜM gönderimleri siler (cascade).
	Delete(ctx context.Context, id uint) error
	// IncrementSubmissionCount sayacı tek bir atomik işlemle artırır;
	// read-modify-write yapılmaz, eşzamanlı gönderimler beklenir.
	IncrementSubmissionCount(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// ISubmissionRepository gönderim kayıtları için depo arayüzü.
type ISubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	FindByFormPaginated(ctx context.Context, formID uint, params queryparams.ListParams) ([]models.Submission, int64, error)
	FindAllByForm(ctx context.Context, formID uint) ([]models.Submission, error)
	FindRecentByForm(ctx context.Context, formID uint, limit int) ([]models.Submission, error)
	CountByForm(ctx context.Context, formID uint) (int64, error)
	CountByFormSince(ctx context.Context, formID uint, since time.Time) (int64, error)
	CountBetween(ctx context.Context, start, end time.Time) (int64, error)
	// AggregateByDay takvim gününe (UTC, YYYY-MM-DD) göre gönderim sayısı
	// döndürür; yalnızca en az bir gönderimi olan günler yer alır.
	// formID 0 ise tüm formlar dahildir.
	AggregateByDay(ctx context.Context, formID uint, since time.Time) (map[string]int64, error)
	DeleteAllForForm(ctx context.Context, formID uint) error
}

// NewFormRepository açılışta seçilen veri kaynağına göre form deposu kurar.
func NewFormRepository() IFormRepository {
	if configs.GetConfig().DataSource == configs.DataSourceMemory {
		return NewMemoryFormRepository(sharedMemoryStore())
	}
	return NewGormFormRepository()
}

// NewSubmissionRepository açılışta seçilen veri kaynağına göre gönderim
// deposu kurar.
func NewSubmissionRepository() ISubmissionRepository {
	if configs.GetConfig().DataSource == configs.DataSourceMemory {
		return NewMemorySubmissionRepository(sharedMemoryStore())
	}
	return NewGormSubmissionRepository()
}
