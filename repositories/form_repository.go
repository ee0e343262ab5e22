package repositories

import (
	"context"
	"errors"

	"formyap.link/configs/configsdatabase"
	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormFormRepository IFormRepository arayüzünü PostgreSQL üzerinde uygular.
type GormFormRepository struct {
	db *gorm.DB
}

// NewGormFormRepository global bağlantıyla yeni bir depo örneği oluşturur.
func NewGormFormRepository() IFormRepository {
	return &GormFormRepository{db: configsdatabase.GetDB()}
}

// NewGormFormRepositoryWithDB verilen bağlantıyla depo örneği oluşturur
// (transaction veya test için).
func NewGormFormRepositoryWithDB(db *gorm.DB) IFormRepository {
	return &GormFormRepository{db: db}
}

func (r *GormFormRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni bir form kaydeder; id ve zaman damgaları GORM tarafından atanır.
func (r *GormFormRepository) Create(ctx context.Context, form *models.Form) error {
	if form == nil {
		return errors.New("boş form oluşturulamaz")
	}
	return r.getDB(ctx).Create(form).Error
}

// FindByID belirli bir ID'ye sahip formu bulur.
func (r *GormFormRepository) FindByID(ctx context.Context, id uint) (*models.Form, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var form models.Form
	err := r.getDB(ctx).First(&form, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GormFormRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &form, nil
}

// applyFormFilters ortak filtreleme mantığını uygular.
func (r *GormFormRepository) applyFormFilters(query *gorm.DB, params queryparams.ListParams) *gorm.DB {
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	return query
}

// FindAllPaginated formları en yeniden eskiye sayfalayarak bulur ve toplam
// sayıyı döndürür.
func (r *GormFormRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Form, int64, error) {
	forms := []models.Form{}
	var totalCount int64

	query := r.applyFormFilters(r.getDB(ctx).Model(&models.Form{}), params)

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("GormFormRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return forms, 0, nil
	}

	err := query.
		Order("created_at DESC").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&forms).Error
	if err != nil {
		configslog.Log.Error("GormFormRepository.Find: DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return forms, totalCount, nil
}

// Update formun tamamını kaydeder.
func (r *GormFormRepository) Update(ctx context.Context, form *models.Form) error {
	if form == nil || form.ID == 0 {
		return errors.New("güncellenecek form geçerli değil")
	}
	return r.getDB(ctx).Save(form).Error
}

// Delete formu ve o forma ait tüm gönderimleri tek transaction içinde siler.
// Yetim gönderim bırakılmaz.
func (r *GormFormRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		// Cascade, gönderim deposunun kendi silme operasyonu üzerinden
		// aynı transaction içinde yürütülür.
		if err := NewGormSubmissionRepositoryWithDB(tx).DeleteAllForForm(ctx, id); err != nil {
			configslog.Log.Error("GormFormRepository.Delete: gönderimler silinemedi", zap.Uint("id", id), zap.Error(err))
			return err
		}
		result := tx.Delete(&models.Form{}, id)
		if result.Error != nil {
			configslog.Log.Error("GormFormRepository.Delete: form silinemedi", zap.Uint("id", id), zap.Error(result.Error))
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// IncrementSubmissionCount sayacı tek bir UPDATE ile artırır. Get+set
// yapılmaz; eşzamanlı gönderimlerde tek atomiklik garantisi budur.
func (r *GormFormRepository) IncrementSubmissionCount(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Model(&models.Form{}).
		Where("id = ?", id).
		UpdateColumn("submission_count", gorm.Expr("submission_count + ?", 1))
	if result.Error != nil {
		configslog.Log.Error("GormFormRepository.IncrementSubmissionCount: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count tüm formların sayısını döndürür.
func (r *GormFormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Form{}).Count(&count).Error
	return count, err
}

var _ IFormRepository = (*GormFormRepository)(nil)
