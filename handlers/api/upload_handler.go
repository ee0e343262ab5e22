package api

import (
	"mime/multipart"

	"formyap.link/configs"
	"formyap.link/services"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler bağımsız dosya yükleme uç noktalarını yönetir.
type UploadHandler struct {
	uploadService services.IUploadService
}

// NewUploadHandler yeni bir UploadHandler örneği oluşturur.
func NewUploadHandler() *UploadHandler {
	return &UploadHandler{
		uploadService: services.NewUploadService(),
	}
}

// NewUploadHandlerWith testler için servis enjeksiyonuna izin verir.
func NewUploadHandlerWith(uploadService services.IUploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadSingle (POST /api/upload)
// "file" alanındaki tek dosyayı medya sunucusuna yükler.
func (h *UploadHandler) UploadSingle(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return handleServiceError(c, services.ErrNoFileProvided)
	}
	if tooLarge(fh) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File too large"})
	}

	content, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	defer content.Close()

	result, err := h.uploadService.UploadSingle(c.UserContext(), services.IncomingFile{
		Filename: fh.Filename,
		Size:     fh.Size,
		Mimetype: fh.Header.Get(fiber.HeaderContentType),
		Content:  content,
	})
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(result)
}

// UploadMultiple (POST /api/upload/multiple)
// "files" alanındaki dosyaları sırayla yükler. Tek tek başarısızlıklar
// yanıt listesinde kendi kaydında raporlanır.
func (h *UploadHandler) UploadMultiple(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return handleServiceError(c, services.ErrNoFilesProvided)
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return handleServiceError(c, services.ErrNoFilesProvided)
	}
	if len(headers) > configs.GetConfig().MaxUploadFiles {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Too many files"})
	}

	files := make([]services.IncomingFile, 0, len(headers))
	for _, fh := range headers {
		if tooLarge(fh) {
			closeIncomingFiles(files)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File too large"})
		}
		content, openErr := fh.Open()
		if openErr != nil {
			closeIncomingFiles(files)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		files = append(files, services.IncomingFile{
			Filename: fh.Filename,
			Size:     fh.Size,
			Mimetype: fh.Header.Get(fiber.HeaderContentType),
			Content:  content,
		})
	}
	defer closeIncomingFiles(files)

	results, err := h.uploadService.UploadMultiple(c.UserContext(), files)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"files": results})
}

// tooLarge dosya boyutu sınırını denetler.
func tooLarge(fh *multipart.FileHeader) bool {
	maxSize := int64(configs.GetConfig().MaxUploadSizeMB) * 1024 * 1024
	return fh.Size > maxSize
}
