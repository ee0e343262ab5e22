package main

import (
	"os"
	"os/signal"
	"syscall"

	"formyap.link/configs"
	"formyap.link/configs/configsdatabase"
	"formyap.link/configs/configslog"
	"formyap.link/database"
	"formyap.link/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadConfig()

	if cfg.DataSource == configs.DataSourcePostgres {
		configsdatabase.InitDB()
		defer configsdatabase.CloseDB()

		// Açılışta şema güncel tutulur; seed ayrı komutla çalıştırılır.
		database.Initialize(configsdatabase.GetDB(), true, false)
	} else {
		configslog.SLog.Infof("Veri kaynağı: %s (veritabanı bağlantısı kurulmayacak)", cfg.DataSource)
	}

	app := fiber.New(fiber.Config{
		AppName:   "formyap.link",
		BodyLimit: cfg.BodyLimitMB * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fiberErr, ok := err.(*fiber.Error); ok {
				code = fiberErr.Code
			}
			message := "Something went wrong!"
			if cfg.IsDevelopment() || code < fiber.StatusInternalServerError {
				message = err.Error()
			}
			configslog.Log.Error("İşlenmeyen istek hatası",
				zap.Int("status", code),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	routes.SetupRoutes(app)

	// Graceful shutdown: SIGINT/SIGTERM geldiğinde dinleyici kapatılır.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		_ = app.Shutdown()
	}()

	configslog.SLog.Infof("Sunucu %s portunda dinliyor (ortam: %s)", cfg.Port, cfg.AppEnv)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
