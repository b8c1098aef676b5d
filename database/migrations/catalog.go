package migrations

import (
	"errors"

	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/models"

	"gorm.io/gorm"
)

// MigrateIngredientsTable tworzy tabelę składników.
func MigrateIngredientsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migracja tabeli ingredients...")

	if err := db.AutoMigrate(&models.Ingredient{}); err != nil {
		errMsg := "nie można zmigrować tabeli ingredients: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Migracja tabeli ingredients zakończona.")
	return nil
}

// MigrateRecipesTables tworzy tabele receptur i ich składników.
func MigrateRecipesTables(db *gorm.DB) error {
	configslog.SLog.Info("Migracja tabel recipes i recipe_ingredients...")

	if err := db.AutoMigrate(&models.Recipe{}, &models.RecipeIngredient{}); err != nil {
		errMsg := "nie można zmigrować tabel receptur: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Migracja tabel receptur zakończona.")
	return nil
}

// MigrateDishesTables tworzy tabele dań i ich komponentów.
func MigrateDishesTables(db *gorm.DB) error {
	configslog.SLog.Info("Migracja tabel dishes i dish_components...")

	if err := db.AutoMigrate(&models.Dish{}, &models.DishComponent{}); err != nil {
		errMsg := "nie można zmigrować tabel dań: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Migracja tabel dań zakończona.")
	return nil
}
