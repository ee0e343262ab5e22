package seeders

import (
	"formyap.link/configs/configslog"
	"formyap.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDemoForm tablo boşsa örnek bir iletişim formu oluşturur.
// Mevcut veri varsa hiçbir şey yapmaz.
func SeedDemoForm(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Form{}).Count(&count).Error; err != nil {
		configslog.Log.Error("Form sayısı kontrol edilemedi", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Debug("Formlar tablosu dolu, demo form atlanıyor.")
		return nil
	}

	configslog.SLog.Info("Demo iletişim formu oluşturuluyor...")

	demo := models.Form{
		Title:       "Contact Us",
		Description: "A simple contact form",
		Status:      models.FormStatusPublished,
		Fields: models.FormFieldList{
			{ID: "field_name", Type: models.FieldTypeText, Label: "Name", Placeholder: "Your name", Required: true},
			{ID: "field_email", Type: models.FieldTypeEmail, Label: "Email", Placeholder: "you@example.com", Required: true},
			{ID: "field_message", Type: models.FieldTypeTextarea, Label: "Message", Placeholder: "How can we help?", Required: false},
		},
		Settings: models.FormSettings{
			ThankYouMessage:  models.DefaultThankYouMessage,
			AllowFileUploads: false,
		},
	}

	if err := db.Create(&demo).Error; err != nil {
		configslog.Log.Error("Demo form oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Demo form başarıyla oluşturuldu (ID: %d).", demo.ID)
	return nil
}
