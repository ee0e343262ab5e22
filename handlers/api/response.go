package api

import (
	"errors"

	"formyap.link/configs"
	"formyap.link/configs/configslog"
	"formyap.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// genericErrorMessage production ortamında istemciye dönen mesaj.
// Geliştirme ortamında asıl hata mesajı gösterilir.
const genericErrorMessage = "Something went wrong!"

// handleServiceError servis katmanından dönen hatayı uygun HTTP yanıtına çevirir.
// Doğrulama hataları detaylarıyla birlikte 400, iş kuralı hataları 400,
// bulunamayan kayıtlar 404, geri kalan her şey 500 olarak döner.
func handleServiceError(c *fiber.Ctx, err error) error {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   vErr.Error(),
			"details": vErr.Details,
		})
	}

	if errors.Is(err, services.ErrFormNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	if errors.Is(err, services.ErrFormNotPublished) ||
		errors.Is(err, services.ErrSubmissionLimitReached) ||
		errors.Is(err, services.ErrSubmissionDataRequired) ||
		errors.Is(err, services.ErrNoFileProvided) ||
		errors.Is(err, services.ErrNoFilesProvided) ||
		errors.Is(err, services.ErrFileTypeNotAllowed) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	configslog.Log.Error("API hata yanıtı", zap.String("path", c.Path()), zap.Error(err))

	message := genericErrorMessage
	if configs.GetConfig().IsDevelopment() {
		message = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// parseFormID path parametresindeki form ID'sini çözer.
// Sayısal olmayan ID'ler var olmayan kayıt gibi davranır.
func parseFormID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, services.ErrFormNotFound
	}
	return uint(id), nil
}
