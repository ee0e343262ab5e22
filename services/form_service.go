package services

import (
	"context"
	"errors"
	"strings"

	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/pkg/queryparams"
	"formyap.link/pkg/validation"
	"formyap.link/repositories"

	"go.uber.org/zap"
)

// FormServiceError özel servis hataları. Hata metinleri API yanıtında
// olduğu gibi kullanılır.
type FormServiceError string

func (e FormServiceError) Error() string { return string(e) }

const (
	ErrFormNotFound       FormServiceError = "Form not found"
	ErrFormCreationFailed FormServiceError = "Failed to create form"
	ErrFormUpdateFailed   FormServiceError = "Failed to update form"
	ErrFormDeletionFailed FormServiceError = "Failed to delete form"
)

// IFormService form CRUD işlemleri için arayüz.
type IFormService interface {
	CreateForm(ctx context.Context, payload validation.FormPayload) (*models.Form, error)
	GetFormByID(ctx context.Context, id uint) (*models.Form, error)
	GetFormsPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Form, queryparams.PaginationMeta, error)
	UpdateForm(ctx context.Context, id uint, payload validation.FormPayload) (*models.Form, error)
	DeleteForm(ctx context.Context, id uint) error
	DuplicateForm(ctx context.Context, id uint) (*models.Form, error)
}

// FormService IFormService arayüzünü uygular.
type FormService struct {
	repo repositories.IFormRepository
}

// NewFormService açılış ayarlarına göre depo seçerek servis oluşturur.
func NewFormService() IFormService {
	return &FormService{repo: repositories.NewFormRepository()}
}

// NewFormServiceWith verilen depoyla servis oluşturur (test için).
func NewFormServiceWith(repo repositories.IFormRepository) IFormService {
	return &FormService{repo: repo}
}

// CreateForm payload'ı doğrular ve yeni bir taslak/yayın formu kaydeder.
func (s *FormService) CreateForm(ctx context.Context, payload validation.FormPayload) (*models.Form, error) {
	if details := validation.ValidateFormCreate(payload); len(details) > 0 {
		return nil, NewValidationError(details)
	}

	form := &models.Form{
		Title:  strings.TrimSpace(*payload.Title),
		Fields: models.FormFieldList(*payload.Fields),
		Status: models.FormStatusDraft,
		Settings: models.FormSettings{
			ThankYouMessage: models.DefaultThankYouMessage,
		},
	}
	if payload.Description != nil {
		form.Description = strings.TrimSpace(*payload.Description)
	}
	if payload.Status != nil {
		form.Status = models.FormStatus(*payload.Status)
	}
	applySettings(&form.Settings, payload.Settings)

	if err := s.repo.Create(ctx, form); err != nil {
		configslog.Log.Error("CreateForm: kayıt başarısız", zap.Error(err))
		return nil, ErrFormCreationFailed
	}
	configslog.SLog.Infof("Form oluşturuldu: ID %d, Başlık: %s", form.ID, form.Title)
	return form, nil
}

// GetFormByID belirli bir formu getirir.
func (s *FormService) GetFormByID(ctx context.Context, id uint) (*models.Form, error) {
	form, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return form, nil
}

// GetFormsPaginated formları filtreleyip sayfalayarak getirir.
func (s *FormService) GetFormsPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Form, queryparams.PaginationMeta, error) {
	params.Validate()

	forms, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, queryparams.PaginationMeta{}, err
	}
	return forms, queryparams.NewPaginationMeta(params, totalCount), nil
}

// UpdateForm kısmi payload'ı mevcut formla birleştirir, yeniden doğrular ve
// kaydeder. Yalnızca gönderilen anahtarlar değişir; sadece status yamalayan
// istemciler bu yüzden sorunsuz çalışır.
func (s *FormService) UpdateForm(ctx context.Context, id uint, payload validation.FormPayload) (*models.Form, error) {
	if details := validation.ValidateFormUpdate(payload); len(details) > 0 {
		return nil, NewValidationError(details)
	}

	form, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	if payload.Title != nil {
		form.Title = strings.TrimSpace(*payload.Title)
	}
	if payload.Description != nil {
		form.Description = strings.TrimSpace(*payload.Description)
	}
	if payload.Fields != nil {
		form.Fields = models.FormFieldList(*payload.Fields)
	}
	if payload.Status != nil {
		form.Status = models.FormStatus(*payload.Status)
	}
	applySettings(&form.Settings, payload.Settings)

	if err := s.repo.Update(ctx, form); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		configslog.Log.Error("UpdateForm: kayıt başarısız", zap.Uint("id", id), zap.Error(err))
		return nil, ErrFormUpdateFailed
	}
	configslog.SLog.Infof("Form güncellendi: ID %d", id)
	return form, nil
}

// DeleteForm formu ve tüm gönderimlerini siler.
func (s *FormService) DeleteForm(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFormNotFound
		}
		configslog.Log.Error("DeleteForm: silme başarısız", zap.Uint("id", id), zap.Error(err))
		return ErrFormDeletionFailed
	}
	configslog.SLog.Infof("Form ve gönderimleri silindi: ID %d", id)
	return nil
}

// DuplicateForm mevcut formun kopyasını çıkarır: başlığa " (Copy)" eklenir,
// durum taslağa çekilir, gönderim sayacı sıfırlanır.
func (s *FormService) DuplicateForm(ctx context.Context, id uint) (*models.Form, error) {
	original, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	fields := make(models.FormFieldList, len(original.Fields))
	copy(fields, original.Fields)

	duplicate := &models.Form{
		Title:       original.Title + " (Copy)",
		Description: original.Description,
		Fields:      fields,
		Status:      models.FormStatusDraft,
		Settings:    original.Settings,
	}
	if err := s.repo.Create(ctx, duplicate); err != nil {
		configslog.Log.Error("DuplicateForm: kayıt başarısız", zap.Uint("id", id), zap.Error(err))
		return nil, ErrFormCreationFailed
	}
	configslog.SLog.Infof("Form kopyalandı: %d -> %d", id, duplicate.ID)
	return duplicate, nil
}

// applySettings payload'daki ayar anahtarlarını mevcut ayarların üzerine
// uygular; gönderilmeyen anahtarlar korunur.
func applySettings(settings *models.FormSettings, payload *validation.SettingsPayload) {
	if payload == nil {
		return
	}
	if payload.ThankYouMessage != nil {
		settings.ThankYouMessage = *payload.ThankYouMessage
	}
	if payload.SubmissionLimit != nil {
		limit := *payload.SubmissionLimit
		settings.SubmissionLimit = &limit
	}
	if payload.AllowFileUploads != nil {
		settings.AllowFileUploads = *payload.AllowFileUploads
	}
}

var _ IFormService = (*FormService)(nil)
