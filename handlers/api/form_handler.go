package api

import (
	"formyap.link/pkg/queryparams"
	"formyap.link/pkg/validation"
	"formyap.link/services"

	"github.com/gofiber/fiber/v2"
)

// FormHandler form CRUD uç noktalarını yönetir.
type FormHandler struct {
	formService services.IFormService
}

// NewFormHandler yeni bir FormHandler örneği oluşturur.
func NewFormHandler() *FormHandler {
	return &FormHandler{
		formService: services.NewFormService(),
	}
}

// NewFormHandlerWith testler için servis enjeksiyonuna izin verir.
func NewFormHandlerWith(formService services.IFormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// ListForms (GET /api/forms)
// Formları sayfalayarak listeler. status ve search filtrelerini destekler.
func (h *FormHandler) ListForms(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}
	params.Validate()

	forms, meta, err := h.formService.GetFormsPaginated(c.UserContext(), params)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"forms":      forms,
		"pagination": meta,
	})
}

// GetForm (GET /api/forms/:id)
func (h *FormHandler) GetForm(c *fiber.Ctx) error {
	id, err := parseFormID(c)
	if err != nil {
		return handleServiceError(c, err)
	}

	form, err := h.formService.GetFormByID(c.UserContext(), id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(form)
}

// CreateForm (POST /api/forms)
// Gövdeyi doğrular, geçerliyse formu taslak olarak kaydeder.
func (h *FormHandler) CreateForm(c *fiber.Ctx) error {
	var payload validation.FormPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	form, err := h.formService.CreateForm(c.UserContext(), payload)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

// UpdateForm (PUT /api/forms/:id)
// Kısmi güncelleme: yalnızca gövdede bulunan alanlar değiştirilir.
func (h *FormHandler) UpdateForm(c *fiber.Ctx) error {
	id, err := parseFormID(c)
	if err != nil {
		return handleServiceError(c, err)
	}

	var payload validation.FormPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	form, err := h.formService.UpdateForm(c.UserContext(), id, payload)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(form)
}

// DeleteForm (DELETE /api/forms/:id)
// Formu ve ona bağlı tüm gönderimleri siler.
func (h *FormHandler) DeleteForm(c *fiber.Ctx) error {
	id, err := parseFormID(c)
	if err != nil {
		return handleServiceError(c, err)
	}

	if err := h.formService.DeleteForm(c.UserContext(), id); err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Form deleted successfully"})
}

// DuplicateForm (POST /api/forms/:id/duplicate)
// Formun taslak bir kopyasını oluşturur.
func (h *FormHandler) DuplicateForm(c *fiber.Ctx) error {
	id, err := parseFormID(c)
	if err != nil {
		return handleServiceError(c, err)
	}

	form, err := h.formService.DuplicateForm(c.UserContext(), id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}
