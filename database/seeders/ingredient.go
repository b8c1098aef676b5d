package seeders

import (
	"errors"

	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedBaseIngredients dosiewa podstawowe surowce magazynowe, żeby świeża
// instalacja nie startowała z pustym katalogiem. Istniejące rekordy
// (po nazwie) są pomijane.
func SeedBaseIngredients(db *gorm.DB) error {
	ingredientsToSeed := []models.Ingredient{
		{Name: "Ziemniaki", Type: "warzywa", Group: "warzywa korzeniowe", BaseUnit: "kg", Vegetarian: true, Vegan: true},
		{Name: "Marchew", Type: "warzywa", Group: "warzywa korzeniowe", BaseUnit: "kg", Vegetarian: true, Vegan: true},
		{Name: "Cebula", Type: "warzywa", Group: "warzywa cebulowe", BaseUnit: "kg", Vegetarian: true, Vegan: true},
		{Name: "Masło", Type: "nabiał", Group: "tłuszcze", BaseUnit: "kg", Vegetarian: true},
		{Name: "Mleko 3,2%", Type: "nabiał", Group: "mleko", BaseUnit: "l", Vegetarian: true},
		{Name: "Jaja", Type: "nabiał", Group: "jaja", BaseUnit: "szt", Vegetarian: true},
		{Name: "Mąka pszenna", Type: "suche", Group: "mąki", BaseUnit: "kg", Vegetarian: true, Vegan: true},
		{Name: "Cukier", Type: "suche", Group: "cukry", BaseUnit: "kg", Vegetarian: true, Vegan: true},
		{Name: "Sól", Type: "przyprawy", Group: "przyprawy podstawowe", BaseUnit: "kg", Vegetarian: true, Vegan: true},
		{Name: "Pierś z kurczaka", Type: "mięso", Group: "drób", BaseUnit: "kg"},
	}

	var createdCount int64
	var errorOccurred bool

	configslog.SLog.Info("Seed podstawowych surowców...")

	for _, ingredientToSeed := range ingredientsToSeed {
		var existing models.Ingredient
		result := db.Where("nazwa = ?", ingredientToSeed.Name).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("Surowiec '%s' już istnieje, pomijam.", ingredientToSeed.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Błąd bazy przy sprawdzaniu surowca",
				zap.String("nazwa", ingredientToSeed.Name),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		if err := db.Create(&ingredientToSeed).Error; err != nil {
			configslog.Log.Error("Nie można utworzyć surowca",
				zap.String("nazwa", ingredientToSeed.Name),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("Dosiano %d nowych surowców.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Wszystkie podstawowe surowce już istnieją.")
	}

	if errorOccurred {
		return errors.New("co najmniej jeden surowiec nie został dosiany")
	}

	configslog.SLog.Info("Seed podstawowych surowców zakończony.")
	return nil
}
