package repositories

import (
	"context"
	"errors"
	"time"

	"formyap.link/configs/configsdatabase"
	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormSubmissionRepository ISubmissionRepository arayüzünü PostgreSQL
// üzerinde uygular.
type GormSubmissionRepository struct {
	db *gorm.DB
}

// NewGormSubmissionRepository global bağlantıyla yeni bir depo örneği
// oluşturur.
func NewGormSubmissionRepository() ISubmissionRepository {
	return &GormSubmissionRepository{db: configsdatabase.GetDB()}
}

// NewGormSubmissionRepositoryWithDB verilen bağlantıyla depo örneği oluşturur.
func NewGormSubmissionRepositoryWithDB(db *gorm.DB) ISubmissionRepository {
	return &GormSubmissionRepository{db: db}
}

func (r *GormSubmissionRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni bir gönderim kaydeder. Gönderimler oluşturulduktan sonra
// değiştirilmez; Update metodu bilinçli olarak yoktur.
func (r *GormSubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	if submission == nil || submission.FormID == 0 {
		return errors.New("geçersiz gönderim: form referansı zorunlu")
	}
	return r.getDB(ctx).Create(submission).Error
}

// FindByFormPaginated bir formun gönderimlerini en yeniden eskiye sayfalar.
func (r *GormSubmissionRepository) FindByFormPaginated(ctx context.Context, formID uint, params queryparams.ListParams) ([]models.Submission, int64, error) {
	submissions := []models.Submission{}
	var totalCount int64

	query := r.getDB(ctx).Model(&models.Submission{}).Where("form_id = ?", formID)
	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("GormSubmissionRepository.Count: DB error", zap.Uint("formID", formID), zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return submissions, 0, nil
	}

	err := query.
		Order("created_at DESC").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&submissions).Error
	if err != nil {
		configslog.Log.Error("GormSubmissionRepository.Find: DB error", zap.Uint("formID", formID), zap.Error(err))
		return nil, totalCount, err
	}
	return submissions, totalCount, nil
}

// FindAllByForm bir formun tüm gönderimlerini en yeniden eskiye döndürür
// (CSV dışa aktarma ve cihaz kırılımı için).
func (r *GormSubmissionRepository) FindAllByForm(ctx context.Context, formID uint) ([]models.Submission, error) {
	submissions := []models.Submission{}
	err := r.getDB(ctx).
		Where("form_id = ?", formID).
		Order("created_at DESC").
		Find(&submissions).Error
	if err != nil {
		configslog.Log.Error("GormSubmissionRepository.FindAllByForm: DB error", zap.Uint("formID", formID), zap.Error(err))
		return nil, err
	}
	return submissions, nil
}

// FindRecentByForm en yeni N gönderimi döndürür.
func (r *GormSubmissionRepository) FindRecentByForm(ctx context.Context, formID uint, limit int) ([]models.Submission, error) {
	submissions := []models.Submission{}
	err := r.getDB(ctx).
		Where("form_id = ?", formID).
		Order("created_at DESC").
		Limit(limit).
		Find(&submissions).Error
	if err != nil {
		configslog.Log.Error("GormSubmissionRepository.FindRecentByForm: DB error", zap.Uint("formID", formID), zap.Error(err))
		return nil, err
	}
	return submissions, nil
}

// CountByForm bir formun toplam gönderim sayısını döndürür.
func (r *GormSubmissionRepository) CountByForm(ctx context.Context, formID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Submission{}).
		Where("form_id = ?", formID).
		Count(&count).Error
	return count, err
}

// CountByFormSince verilen andan bu yana yapılan gönderimleri sayar.
func (r *GormSubmissionRepository) CountByFormSince(ctx context.Context, formID uint, since time.Time) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Submission{}).
		Where("form_id = ? AND created_at >= ?", formID, since).
		Count(&count).Error
	return count, err
}

// CountBetween [start, end) aralığındaki tüm gönderimleri sayar
// (dashboard'un önceki hafta karşılaştırması).
func (r *GormSubmissionRepository) CountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Submission{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}

type dayCount struct {
	Day   string
	Count int64
}

// AggregateByDay gönderimleri UTC takvim gününe göre gruplar. Yalnızca en az
// bir gönderimi olan günler sonuçta yer alır; sıfır doldurma çağıranın işi.
func (r *GormSubmissionRepository) AggregateByDay(ctx context.Context, formID uint, since time.Time) (map[string]int64, error) {
	query := r.getDB(ctx).Model(&models.Submission{}).
		Select("to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, count(*) AS count").
		Where("created_at >= ?", since).
		Group("day")
	if formID != 0 {
		query = query.Where("form_id = ?", formID)
	}

	var rows []dayCount
	if err := query.Scan(&rows).Error; err != nil {
		configslog.Log.Error("GormSubmissionRepository.AggregateByDay: DB error", zap.Uint("formID", formID), zap.Error(err))
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Day] = row.Count
	}
	return result, nil
}

// DeleteAllForForm bir formun tüm gönderimlerini siler.
func (r *GormSubmissionRepository) DeleteAllForForm(ctx context.Context, formID uint) error {
	return r.getDB(ctx).Where("form_id = ?", formID).Delete(&models.Submission{}).Error
}

var _ ISubmissionRepository = (*GormSubmissionRepository)(nil)
