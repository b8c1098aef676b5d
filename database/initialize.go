package database

import (
	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/database/migrations"
	"chefsystem.pl/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Nie podano flagi migrate ani seed, nic do zrobienia.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Nie można rozpocząć transakcji", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Inicjalizacja bazy nie powiodła się (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Błąd podczas inicjalizacji, wycofuję transakcję.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Dodatkowy błąd przy rollbacku", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Start inicjalizacji bazy danych...")

	if migrate {
		configslog.SLog.Info("Uruchamiam migracje...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migracja nie powiodła się", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migracje zakończone.")
	} else {
		configslog.SLog.Info("Brak flagi migrate, pomijam migracje.")
	}

	if seed {
		configslog.SLog.Info("Uruchamiam seedery...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding nie powiódł się", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seedery zakończone.")
	} else {
		configslog.SLog.Info("Brak flagi seed, pomijam seedery.")
	}

	configslog.SLog.Info("Commit transakcji...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit nie powiódł się", zap.Error(err))
		return
	}

	configslog.SLog.Info("Inicjalizacja bazy danych zakończona powodzeniem")
}

// RunMigrationsInOrder uruchamia migracje w kolejności zależności:
// najpierw katalog (składniki, receptury, dania), potem grupy,
// na końcu wydarzenia z planem i zadaniami.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migracje uruchamiane po kolei...")

	configslog.SLog.Info(" -> migracja składników...")
	if err := migrations.MigrateIngredientsTable(db); err != nil {
		configslog.Log.Error("Migracja tabeli ingredients nie powiodła się", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> migracja receptur...")
	if err := migrations.MigrateRecipesTables(db); err != nil {
		configslog.Log.Error("Migracja tabel receptur nie powiodła się", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> migracja dań...")
	if err := migrations.MigrateDishesTables(db); err != nil {
		configslog.Log.Error("Migracja tabel dań nie powiodła się", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> migracja grup żywieniowych...")
	if err := migrations.MigrateGroupsTables(db); err != nil {
		configslog.Log.Error("Migracja tabel grup nie powiodła się", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> migracja wydarzeń...")
	if err := migrations.MigrateEventsTables(db); err != nil {
		configslog.Log.Error("Migracja tabel wydarzeń nie powiodła się", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> migracja zadań...")
	if err := migrations.MigrateEventTasksTable(db); err != nil {
		configslog.Log.Error("Migracja tabeli zadań nie powiodła się", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Wszystkie migracje wykonane.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> seeder surowców...")
	if err := seeders.SeedBaseIngredients(db); err != nil {
		configslog.Log.Error("Seed surowców nie powiódł się", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> seeder surowców zakończony.")

	configslog.SLog.Info("Wszystkie seedery sprawdzone/wykonane.")
	return nil
}
