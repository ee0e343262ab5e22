package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log yapılandırılmış (structured) logger.
var Log *zap.Logger

// SLog printf tarzı kullanım için sugared logger.
var SLog *zap.SugaredLogger

// InitLogger uygulama logger'ını hazırlar. Konsola renkli, dosyaya JSON yazar.
// Dosya çıktısı lumberjack ile döndürülür (rotate).
func InitLogger() {
	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(consoleEncoderConfig)

	fileEncoderConfig := zap.NewProductionEncoderConfig()
	fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	fileEncoder := zapcore.NewJSONEncoder(fileEncoderConfig)

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   "logs/app.log",
		MaxSize:    50, // MB
		MaxBackups: 5,
		MaxAge:     30, // gün
		Compress:   true,
	})

	level := zapcore.InfoLevel
	if os.Getenv("APP_ENV") != "production" {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewTee(
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), level),
		zapcore.NewCore(fileEncoder, fileWriter, level),
	)

	Log = zap.New(core, zap.AddCaller())
	SLog = Log.Sugar()
}

// SyncLogger bufferlanmış log kayıtlarını diske yazar. main içinde defer edilir.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
