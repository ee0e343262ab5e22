// Package uploader medya dosyalarını Cloudinary'ye yükleyen istemciyi sarar.
// Kimlik bilgileri eksikse istemci "yapılandırılmamış" durumda oluşturulur ve
// yükleme denemeleri ağa çıkmadan hata döner.
package uploader

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	cldUploader "github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"formyap.link/configs"
)

// ErrNotConfigured medya servisi kimlik bilgileri tanımlı değil.
var ErrNotConfigured = errors.New("media host is not configured")

// Yüklemelerin toplandığı Cloudinary klasörü.
const uploadFolder = "formbuilder"

// Result başarılı bir yüklemenin medya sunucusundaki kaydı.
type Result struct {
	URL      string
	PublicID string
}

// IUploader medya yükleme istemcisi arayüzü.
type IUploader interface {
	Configured() bool
	Upload(ctx context.Context, filename string, content io.Reader) (*Result, error)
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryUploader IUploader arayüzünü Cloudinary SDK ile uygular.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryUploader konfigürasyondaki kimlik bilgileriyle istemci kurar.
// CloudName boşsa istemci yapılandırılmamış olarak döner; bu bir hata değildir,
// yükleme gerektirmeyen kurulumlarda uygulama normal çalışır.
func NewCloudinaryUploader(cfg configs.CloudinaryConfig) (IUploader, error) {
	if cfg.CloudName == "" {
		return &CloudinaryUploader{}, nil
	}
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{client: client}, nil
}

// Configured istemcinin kullanılabilir olup olmadığını söyler.
func (u *CloudinaryUploader) Configured() bool {
	return u.client != nil
}

// Upload dosya içeriğini Cloudinary'ye yükler ve güvenli URL ile public id
// döndürür. Zaman aşımı/yeniden deneme politikası yoktur; hata çağırana
// olduğu gibi iletilir.
func (u *CloudinaryUploader) Upload(ctx context.Context, filename string, content io.Reader) (*Result, error) {
	if u.client == nil {
		return nil, ErrNotConfigured
	}

	resp, err := u.client.Upload.Upload(ctx, content, cldUploader.UploadParams{
		Folder:       uploadFolder,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, err
	}
	if resp.Error.Message != "" {
		return nil, errors.New(resp.Error.Message)
	}

	return &Result{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

// Destroy public id ile kaydedilmiş dosyayı medya sunucusundan siler.
func (u *CloudinaryUploader) Destroy(ctx context.Context, publicID string) error {
	if u.client == nil {
		return ErrNotConfigured
	}
	_, err := u.client.Upload.Destroy(ctx, cldUploader.DestroyParams{PublicID: publicID})
	return err
}

var _ IUploader = (*CloudinaryUploader)(nil)

// Upload uçlarında kabul edilen MIME türleri.
var allowedMimeTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
	"application/pdf": {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/plain": {},
}

// IsAllowedType MIME türünün izin listesinde olup olmadığını söyler.
func IsAllowedType(mimetype string) bool {
	_, ok := allowedMimeTypes[mimetype]
	return ok
}
