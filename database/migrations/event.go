package migrations

import (
	"errors"

	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/models"

	"gorm.io/gorm"
)

// MigrateEventsTables tworzy tabele wydarzeń wraz z poddrzewem planu:
// dni, sekcje i dania sekcji.
func MigrateEventsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migracja tabel events, event_days, event_sections i section_dishes...")

	if err := db.AutoMigrate(
		&models.Event{},
		&models.EventDay{},
		&models.EventSection{},
		&models.SectionDish{},
	); err != nil {
		errMsg := "nie można zmigrować tabel wydarzeń: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Migracja tabel wydarzeń zakończona.")
	return nil
}

// MigrateEventTasksTable tworzy tabelę zadań dnia. Osobno, bo zadania
// odwołują się do dni, sekcji i receptur naraz.
func MigrateEventTasksTable(db *gorm.DB) error {
	configslog.SLog.Info("Migracja tabeli event_tasks...")

	if err := db.AutoMigrate(&models.EventTask{}); err != nil {
		errMsg := "nie można zmigrować tabeli event_tasks: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Migracja tabeli event_tasks zakończona.")
	return nil
}
