package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"chefsystem.pl/configs/configslog"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB otwiera połączenie z bazą Postgres na podstawie zmiennych środowiskowych.
// Plik .env jest opcjonalny (na produkcji zmienne przychodzą z otoczenia).
func InitDB() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info("Brak pliku .env, używam zmiennych środowiskowych.")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=Europe/Warsaw",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "chefsystem"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_NAME", "chefsystem"),
			getEnv("DB_SSLMODE", "disable"),
		)
	}

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	var err error
	db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		configslog.Log.Fatal("Nie udało się połączyć z bazą danych", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Fatal("Nie udało się pobrać uchwytu sql.DB", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	configslog.SLog.Info("Połączenie z bazą danych nawiązane.")
}

// GetDB zwraca aktywne połączenie. InitDB musi być wywołane wcześniej.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("Baza danych nie została zainicjalizowana (brak wywołania InitDB)")
	}
	return db
}

// CloseDB zamyka pulę połączeń.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Błąd przy pobieraniu sql.DB do zamknięcia", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Błąd przy zamykaniu połączenia z bazą", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
