package migrations

import (
	"errors"

	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/models"

	"gorm.io/gorm"
)

// MigrateGroupsTables tworzy tabele grup żywieniowych i ich jadłospisów.
func MigrateGroupsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migracja tabel groups i group_meals...")

	if err := db.AutoMigrate(&models.Group{}, &models.GroupMeal{}); err != nil {
		errMsg := "nie można zmigrować tabel grup: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Migracja tabel grup zakończona.")
	return nil
}
