package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DataSourceName desteklenen veri kaynağı türleri.
type DataSourceName string

const (
	DataSourcePostgres DataSourceName = "postgres"
	DataSourceMemory   DataSourceName = "memory"
)

// CloudinaryConfig medya barındırma servisi kimlik bilgileri.
// CloudName boş ise upload denemeleri ağa çıkmadan hata döner.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Config uygulamanın ortam değişkenlerinden okunan ayarları.
type Config struct {
	Port        string
	AppEnv      string // "development" | "production"
	DatabaseURL string
	FrontendURL string
	DataSource  DataSourceName
	Cloudinary  CloudinaryConfig

	// İstek limitleri
	BodyLimitMB     int
	MaxUploadFiles  int
	MaxUploadSizeMB int
}

var appConfig *Config

// LoadConfig .env dosyasını (varsa) ve ortam değişkenlerini okur.
// Birden fazla çağrılırsa ilk okunan konfigürasyon kullanılır.
func LoadConfig() *Config {
	if appConfig != nil {
		return appConfig
	}

	// .env yoksa sessizce devam edilir; ortam değişkenleri yeterli.
	_ = godotenv.Load()

	appConfig = &Config{
		Port:        getEnv("PORT", "5000"),
		AppEnv:      getEnv("APP_ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=formyap port=5432 sslmode=disable"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		DataSource:  DataSourceName(getEnv("DATA_SOURCE", string(DataSourcePostgres))),
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		},
		BodyLimitMB:     getEnvInt("BODY_LIMIT_MB", 10),
		MaxUploadFiles:  getEnvInt("MAX_UPLOAD_FILES", 10),
		MaxUploadSizeMB: getEnvInt("MAX_UPLOAD_SIZE_MB", 10),
	}
	return appConfig
}

// GetConfig yüklenmiş konfigürasyonu döndürür (gerekirse yükler).
func GetConfig() *Config {
	if appConfig == nil {
		return LoadConfig()
	}
	return appConfig
}

// IsDevelopment ortamın geliştirme modu olup olmadığını söyler.
// Hata mesajlarının ayrıntı seviyesi buna göre değişir.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv != "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
