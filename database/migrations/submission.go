package migrations

import (
	"formyap.link/configs/configslog"
	"formyap.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSubmissionsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating submissions table...")
	err := db.AutoMigrate(&models.Submission{})
	if err != nil {
		configslog.Log.Error("Failed to migrate submissions table", zap.Error(err))
		return err
	}

	// Gönderim listesi ve istatistik sorguları form_id + created_at üzerinden
	// çalışır.
	err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_submissions_form_created ON submissions (form_id, created_at DESC)`).Error
	if err != nil {
		configslog.Log.Error("Failed to create submissions composite index", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Submissions table migrated successfully")
	return nil
}
