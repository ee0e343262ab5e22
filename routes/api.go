package routes

import (
	api_handlers "formyap.link/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes /api altındaki JSON uç noktalarını tanımlar.
func registerAPIRoutes(app *fiber.App) {
	// Handler instance'larını başta oluştur
	formHandler := api_handlers.NewFormHandler()
	submissionHandler := api_handlers.NewSubmissionHandler()
	analyticsHandler := api_handlers.NewAnalyticsHandler()
	uploadHandler := api_handlers.NewUploadHandler()
	healthHandler := api_handlers.NewHealthHandler()

	apiGroup := app.Group("/api")

	// --- Sağlık Kontrolü ---
	apiGroup.Get("/health", healthHandler.Check) // GET /api/health

	// --- Formlar ---
	formsGroup := apiGroup.Group("/forms")
	// Sabit path, /:id rotalarından ÖNCE kayıt edilmeli; aksi halde
	// "dashboard" bir form ID'si gibi eşleşir.
	formsGroup.Get("/dashboard/analytics", analyticsHandler.DashboardAnalytics) // GET /api/forms/dashboard/analytics

	formsGroup.Get("/", formHandler.ListForms)                   // GET /api/forms
	formsGroup.Post("/", formHandler.CreateForm)                 // POST /api/forms
	formsGroup.Get("/:id", formHandler.GetForm)                  // GET /api/forms/{id}
	formsGroup.Put("/:id", formHandler.UpdateForm)               // PUT /api/forms/{id}
	formsGroup.Delete("/:id", formHandler.DeleteForm)            // DELETE /api/forms/{id}
	formsGroup.Post("/:id/duplicate", formHandler.DuplicateForm) // POST /api/forms/{id}/duplicate

	// --- Gönderimler ---
	formsGroup.Post("/:id/submissions", submitLimiter(), submissionHandler.CreateSubmission) // POST /api/forms/{id}/submissions
	formsGroup.Get("/:id/submissions", submissionHandler.ListSubmissions)                    // GET /api/forms/{id}/submissions
	formsGroup.Get("/:id/export", submissionHandler.ExportSubmissions)                       // GET /api/forms/{id}/export

	// --- İstatistikler ---
	formsGroup.Get("/:id/analytics", analyticsHandler.FormAnalytics) // GET /api/forms/{id}/analytics

	// --- Dosya Yükleme ---
	uploadGroup := apiGroup.Group("/upload")
	uploadGroup.Post("/", uploadHandler.UploadSingle)            // POST /api/upload
	uploadGroup.Post("/multiple", uploadHandler.UploadMultiple)  // POST /api/upload/multiple
}
