package api

import (
	"formyap.link/services"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler istatistik uç noktalarını yönetir.
type AnalyticsHandler struct {
	analyticsService services.IAnalyticsService
}

// NewAnalyticsHandler yeni bir AnalyticsHandler örneği oluşturur.
func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: services.NewAnalyticsService(),
	}
}

// NewAnalyticsHandlerWith testler için servis enjeksiyonuna izin verir.
func NewAnalyticsHandlerWith(analyticsService services.IAnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// FormAnalytics (GET /api/forms/:id/analytics)
// Tek bir formun gönderim istatistiklerini döndürür.
func (h *AnalyticsHandler) FormAnalytics(c *fiber.Ctx) error {
	id, err := parseFormID(c)
	if err != nil {
		return handleServiceError(c, err)
	}

	stats, err := h.analyticsService.FormAnalytics(c.UserContext(), id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(stats)
}

// DashboardAnalytics (GET /api/forms/dashboard/analytics)
// Tüm formları kapsayan haftalık özet döndürür.
func (h *AnalyticsHandler) DashboardAnalytics(c *fiber.Ctx) error {
	stats, err := h.analyticsService.DashboardAnalytics(c.UserContext())
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(stats)
}
