package database

import (
	"formyap.link/configs/configslog"
	"formyap.link/database/migrations"
	"formyap.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize form şemasını hazırlar: migrasyonlar ve seed tek bir
// transaction içinde koşar; herhangi bir adım başarısız olursa tamamı
// geri alınır.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate/seed istenmedi, şema hazırlığı atlanıyor.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Şema hazırlığı için transaction açılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Şema hazırlığı panic ile kesildi", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Şema hazırlığında hata oluştu, transaction geri alınıyor.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback tamamlanamadı", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Form şeması hazırlanıyor...")

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Form tabloları migrate edilemedi", zap.Error(err))
			return
		}
	} else {
		configslog.SLog.Info("Migrate bayrağı yok, tablo migrasyonu atlanıyor.")
	}

	if seed {
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Demo form seed edilemedi", zap.Error(err))
			return
		}
	} else {
		configslog.SLog.Info("Seed bayrağı yok, demo form adımı atlanıyor.")
	}

	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Şema hazırlığı commit edilemedi", zap.Error(err))
		return
	}

	configslog.SLog.Info("Form şeması hazır.")
}

func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	configslog.SLog.Info(" -> Form migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateFormsTable(db); err != nil {
		configslog.Log.Error("Forms tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Form migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Submission migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateSubmissionsTable(db); err != nil {
		configslog.Log.Error("Submissions tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Submission migrasyonları tamamlandı.")

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Demo form seeder çalıştırılıyor...")
	if err := seeders.SeedDemoForm(db); err != nil {
		configslog.Log.Error("Demo form seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Demo form seeder tamamlandı.")

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
