package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log globalny logger aplikacji. Domyślnie no-op, żeby pakiety
// używane w testach nie wymagały jawnej inicjalizacji.
var Log *zap.Logger = zap.NewNop()

// SLog wygodniejszy wariant "sugared" tego samego loggera.
var SLog *zap.SugaredLogger = Log.Sugar()

// InitLogger konfiguruje globalny logger na podstawie APP_ENV.
// W środowisku produkcyjnym logi są w formacie JSON, poza nim czytelne dla konsoli.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "czas"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("nie udało się zainicjalizować loggera: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger opróżnia bufory loggera. Wywoływane przez defer w main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
