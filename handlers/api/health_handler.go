package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler servis sağlık ucu.
type HealthHandler struct{}

// NewHealthHandler yeni bir HealthHandler örneği oluşturur.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check (GET /api/health)
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
	})
}
