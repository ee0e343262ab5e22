package migrations

import (
	"formyap.link/configs/configslog"
	"formyap.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateFormsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating forms table...")
	err := db.AutoMigrate(&models.Form{})
	if err != nil {
		configslog.Log.Error("Failed to migrate forms table", zap.Error(err))
		return err
	}

	// Liste görünümü status filtresiyle tarihe göre sıralıyor; AutoMigrate
	// bileşik indeks üretmediği için elle oluşturulur.
	err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_forms_status_created ON forms (status, created_at DESC)`).Error
	if err != nil {
		configslog.Log.Error("Failed to create forms composite index", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Forms table migrated successfully")
	return nil
}
