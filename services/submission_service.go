package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"formyap.link/configs"
	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/pkg/csvexport"
	"formyap.link/pkg/queryparams"
	"formyap.link/pkg/uploader"
	"formyap.link/repositories"

	"go.uber.org/zap"
)

// SubmissionServiceError özel servis hataları. Hata metinleri API yanıtında
// olduğu gibi kullanılır.
type SubmissionServiceError string

func (e SubmissionServiceError) Error() string { return string(e) }

const (
	ErrFormNotPublished       SubmissionServiceError = "Form is not published"
	ErrSubmissionLimitReached SubmissionServiceError = "Submission limit reached"
	ErrSubmissionDataRequired SubmissionServiceError = "Submission data is required"
	ErrSubmissionFailed       SubmissionServiceError = "Failed to submit form"
)

// Alan sınırları: istek metadatası saklanmadan önce kırpılır.
const (
	maxIPLength        = 45
	maxUserAgentLength = 500
)

// IncomingFile intake isteğiyle gelen tek dosya; FieldID dosyanın hangi form
// alanından geldiğini söyler.
type IncomingFile struct {
	FieldID  string
	Filename string
	Size     int64
	Mimetype string
	Content  io.Reader
}

// RequestMeta gönderimi yapan istemcinin metadatası.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// ISubmissionService gönderim alma, listeleme ve dışa aktarma arayüzü.
type ISubmissionService interface {
	// SubmitForm intake pipeline'ını çalıştırır: form yüklenir, yayın durumu
	// ve gönderim limiti denetlenir, dosyalar medya sunucusuna yüklenir,
	// gönderim kaydedilir ve formun sayacı atomik olarak artırılır.
	SubmitForm(ctx context.Context, formID uint, data map[string]interface{}, files []IncomingFile, meta RequestMeta) (*models.Submission, error)
	GetSubmissionsPaginated(ctx context.Context, formID uint, params queryparams.ListParams) ([]models.Submission, queryparams.PaginationMeta, error)
	// ExportSubmissions formun tüm gönderimlerini CSV metni ve önerilen
	// dosya adıyla döndürür.
	ExportSubmissions(ctx context.Context, formID uint) (string, string, error)
}

// SubmissionService ISubmissionService arayüzünü uygular.
type SubmissionService struct {
	formRepo repositories.IFormRepository
	subRepo  repositories.ISubmissionRepository
	uploader uploader.IUploader
}

// NewSubmissionService açılış ayarlarına göre bağımlılıkları kurar.
func NewSubmissionService() ISubmissionService {
	media, err := uploader.NewCloudinaryUploader(configs.GetConfig().Cloudinary)
	if err != nil {
		configslog.Log.Error("Medya istemcisi kurulamadı", zap.Error(err))
		media = &noopUploader{}
	}
	return &SubmissionService{
		formRepo: repositories.NewFormRepository(),
		subRepo:  repositories.NewSubmissionRepository(),
		uploader: media,
	}
}

// NewSubmissionServiceWith verilen bağımlılıklarla servis oluşturur (test için).
func NewSubmissionServiceWith(formRepo repositories.IFormRepository, subRepo repositories.ISubmissionRepository, media uploader.IUploader) ISubmissionService {
	return &SubmissionService{formRepo: formRepo, subRepo: subRepo, uploader: media}
}

// SubmitForm intake pipeline'ı. Adımlar 4-6 arasında transaction yoktur:
// kayıttan sonra sayaç artırımı başarısız olursa sayaç eksik kalır; bu kabul
// edilmiş bir tutarsızlık penceresidir, sessizce "düzeltilmez".
func (s *SubmissionService) SubmitForm(ctx context.Context, formID uint, data map[string]interface{}, files []IncomingFile, meta RequestMeta) (*models.Submission, error) {
	// 1. Formu yükle; bulunamazsa hiçbir yan etki olmadan reddet.
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	// 2. Yalnızca yayındaki formlar gönderim kabul eder.
	if !form.IsPublished() {
		return nil, ErrFormNotPublished
	}

	// 3. Limit, 1. adımda okunan sayaca göre denetlenir. Limit civarında
	// eşzamanlı gönderimler arasında yarış tolere edilir; tek atomiklik
	// garantisi sayaç artırımıdır.
	if form.LimitReached() {
		return nil, ErrSubmissionLimitReached
	}

	if len(data) == 0 {
		return nil, ErrSubmissionDataRequired
	}

	// 4. Dosyalar sırayla yüklenir. Tek bir dosyanın yükleme hatası tüm
	// gönderimi düşürmez: loglanır ve o dosya atlanır.
	uploaded := make(models.SubmissionFileList, 0, len(files))
	for _, file := range files {
		result, uploadErr := s.uploader.Upload(ctx, file.Filename, file.Content)
		if uploadErr != nil {
			configslog.Log.Error("Dosya yüklenemedi, gönderimden çıkarılıyor",
				zap.String("filename", file.Filename),
				zap.String("fieldId", file.FieldID),
				zap.Error(uploadErr))
			continue
		}
		uploaded = append(uploaded, models.SubmissionFile{
			FieldID:  file.FieldID,
			Filename: file.Filename,
			URL:      result.URL,
			Size:     file.Size,
			Mimetype: file.Mimetype,
		})
	}

	payload, err := json.Marshal(data)
	if err != nil {
		configslog.Log.Error("Gönderim verisi serileştirilemedi", zap.Uint("formID", formID), zap.Error(err))
		return nil, ErrSubmissionFailed
	}

	// 5. Gönderimi (kısmi olabilecek dosya listesiyle) kaydet.
	submission := &models.Submission{
		FormID:    formID,
		Data:      payload,
		Files:     uploaded,
		IPAddress: truncate(meta.IPAddress, maxIPLength),
		UserAgent: truncate(meta.UserAgent, maxUserAgentLength),
	}
	if err := s.subRepo.Create(ctx, submission); err != nil {
		configslog.Log.Error("Gönderim kaydedilemedi", zap.Uint("formID", formID), zap.Error(err))
		return nil, ErrSubmissionFailed
	}

	// 6. Sayacı atomik artır.
	if err := s.formRepo.IncrementSubmissionCount(ctx, formID); err != nil {
		configslog.Log.Error("Gönderim sayacı artırılamadı", zap.Uint("formID", formID), zap.Error(err))
		return nil, ErrSubmissionFailed
	}

	// 7. Oluşan gönderimi döndür.
	return submission, nil
}

// GetSubmissionsPaginated bir formun gönderimlerini en yeniden eskiye
// sayfalayarak getirir.
func (s *SubmissionService) GetSubmissionsPaginated(ctx context.Context, formID uint, params queryparams.ListParams) ([]models.Submission, queryparams.PaginationMeta, error) {
	params.Validate()

	submissions, totalCount, err := s.subRepo.FindByFormPaginated(ctx, formID, params)
	if err != nil {
		return nil, queryparams.PaginationMeta{}, err
	}
	return submissions, queryparams.NewPaginationMeta(params, totalCount), nil
}

// ExportSubmissions formun gönderimlerini CSV olarak üretir. Sonucun tamamı
// bellekte kurulur; satır limiti yoktur.
func (s *SubmissionService) ExportSubmissions(ctx context.Context, formID uint) (string, string, error) {
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", "", ErrFormNotFound
		}
		return "", "", err
	}

	submissions, err := s.subRepo.FindAllByForm(ctx, formID)
	if err != nil {
		return "", "", err
	}

	return csvexport.Export(form, submissions), csvexport.Filename(form), nil
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// noopUploader medya istemcisi kurulamadığında kullanılan yedek; her çağrı
// yapılandırma hatası döner.
type noopUploader struct{}

func (n *noopUploader) Configured() bool { return false }
func (n *noopUploader) Upload(context.Context, string, io.Reader) (*uploader.Result, error) {
	return nil, uploader.ErrNotConfigured
}
func (n *noopUploader) Destroy(context.Context, string) error { return uploader.ErrNotConfigured }

var _ ISubmissionService = (*SubmissionService)(nil)
