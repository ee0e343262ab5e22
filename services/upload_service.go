package services

import (
	"context"

	"formyap.link/configs"
	"formyap.link/configs/configslog"
	"formyap.link/pkg/uploader"

	"go.uber.org/zap"
)

// UploadServiceError özel servis hataları. Hata metinleri API yanıtında
// olduğu gibi kullanılır.
type UploadServiceError string

func (e UploadServiceError) Error() string { return string(e) }

const (
	ErrNoFileProvided     UploadServiceError = "No file provided"
	ErrNoFilesProvided    UploadServiceError = "No files provided"
	ErrFileTypeNotAllowed UploadServiceError = "File type not allowed"
	ErrUploadFailed       UploadServiceError = "Upload failed"
	ErrUploadDeleteFailed UploadServiceError = "Delete failed"
)

// UploadedFile başarılı bir yüklemenin API yanıtındaki kaydı.
type UploadedFile struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Mimetype string `json:"mimetype"`
}

// MultiUploadEntry çoklu yüklemede dosya başına sonuç; başarısız dosyalar
// yalnızca isim ve hata metniyle döner.
type MultiUploadEntry struct {
	URL      string `json:"url,omitempty"`
	PublicID string `json:"publicId,omitempty"`
	Filename string `json:"filename"`
	Size     int64  `json:"size,omitempty"`
	Mimetype string `json:"mimetype,omitempty"`
	Error    string `json:"error,omitempty"`
}

// IUploadService bağımsız dosya yükleme uçlarının arayüzü.
type IUploadService interface {
	UploadSingle(ctx context.Context, file IncomingFile) (*UploadedFile, error)
	// UploadMultiple dosyaları sırayla yükler; tek tek hatalar girdinin
	// kendi kaydında raporlanır, istek bütün olarak başarısız olmaz.
	UploadMultiple(ctx context.Context, files []IncomingFile) ([]MultiUploadEntry, error)
	// DeleteUpload daha önce yüklenmiş bir dosyayı public id ile medya
	// sunucusundan kaldırır (istemci tarafı temizlik).
	DeleteUpload(ctx context.Context, publicID string) error
}

// UploadService IUploadService arayüzünü uygular.
type UploadService struct {
	uploader uploader.IUploader
}

// NewUploadService açılış ayarlarındaki kimlik bilgileriyle servis kurar.
func NewUploadService() IUploadService {
	media, err := uploader.NewCloudinaryUploader(configs.GetConfig().Cloudinary)
	if err != nil {
		configslog.Log.Error("Medya istemcisi kurulamadı", zap.Error(err))
		media = &noopUploader{}
	}
	return &UploadService{uploader: media}
}

// NewUploadServiceWith verilen istemciyle servis oluşturur (test için).
func NewUploadServiceWith(media uploader.IUploader) IUploadService {
	return &UploadService{uploader: media}
}

// UploadSingle tek dosyayı izin listesi denetiminden geçirip yükler.
func (s *UploadService) UploadSingle(ctx context.Context, file IncomingFile) (*UploadedFile, error) {
	if file.Content == nil {
		return nil, ErrNoFileProvided
	}
	if !uploader.IsAllowedType(file.Mimetype) {
		return nil, ErrFileTypeNotAllowed
	}

	result, err := s.uploader.Upload(ctx, file.Filename, file.Content)
	if err != nil {
		configslog.Log.Error("Dosya yüklenemedi", zap.String("filename", file.Filename), zap.Error(err))
		return nil, ErrUploadFailed
	}

	return &UploadedFile{
		URL:      result.URL,
		PublicID: result.PublicID,
		Filename: file.Filename,
		Size:     file.Size,
		Mimetype: file.Mimetype,
	}, nil
}

// UploadMultiple dosyaları sırayla yükler. İzin listesi dışındaki bir tür
// tüm isteği reddettirir (tek tek yükleme hatalarının aksine).
func (s *UploadService) UploadMultiple(ctx context.Context, files []IncomingFile) ([]MultiUploadEntry, error) {
	if len(files) == 0 {
		return nil, ErrNoFilesProvided
	}
	for _, file := range files {
		if !uploader.IsAllowedType(file.Mimetype) {
			return nil, ErrFileTypeNotAllowed
		}
	}

	entries := make([]MultiUploadEntry, 0, len(files))
	for _, file := range files {
		result, err := s.uploader.Upload(ctx, file.Filename, file.Content)
		if err != nil {
			configslog.Log.Error("Dosya yüklenemedi", zap.String("filename", file.Filename), zap.Error(err))
			entries = append(entries, MultiUploadEntry{
				Filename: file.Filename,
				Error:    string(ErrUploadFailed),
			})
			continue
		}
		entries = append(entries, MultiUploadEntry{
			URL:      result.URL,
			PublicID: result.PublicID,
			Filename: file.Filename,
			Size:     file.Size,
			Mimetype: file.Mimetype,
		})
	}
	return entries, nil
}

// DeleteUpload yüklenmiş dosyayı medya sunucusundan kaldırır.
func (s *UploadService) DeleteUpload(ctx context.Context, publicID string) error {
	if publicID == "" {
		return ErrNoFileProvided
	}
	if err := s.uploader.Destroy(ctx, publicID); err != nil {
		configslog.Log.Error("Dosya medya sunucusundan silinemedi", zap.String("publicId", publicID), zap.Error(err))
		return ErrUploadDeleteFailed
	}
	return nil
}

var _ IUploadService = (*UploadService)(nil)
