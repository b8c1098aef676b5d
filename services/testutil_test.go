package services

import (
	"encoding/json"
	"testing"

	"chefsystem.pl/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB otwiera bazę sqlite w pamięci ze zmigrowanym pełnym schematem.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// jedno połączenie, inaczej baza :memory: znika między zapytaniami
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Dish{},
		&models.DishComponent{},
		&models.Group{},
		&models.GroupMeal{},
		&models.Event{},
		&models.EventDay{},
		&models.EventSection{},
		&models.SectionDish{},
		&models.EventTask{},
	))
	return db
}

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

// stepsJSON serializuje kroki do postaci przechowywanej w kolumnie kroki.
func stepsJSON(t *testing.T, steps ...any) datatypes.JSON {
	t.Helper()
	raw, err := json.Marshal(steps)
	require.NoError(t, err)
	return datatypes.JSON(raw)
}

type stepObj struct {
	Number      int    `json:"krok"`
	Description string `json:"opis"`
	TimeMinutes *int   `json:"czas_min,omitempty"`
}

func seedIngredient(t *testing.T, db *gorm.DB, name string) *models.Ingredient {
	t.Helper()
	ing := models.Ingredient{Name: name, BaseUnit: "kg"}
	require.NoError(t, db.Create(&ing).Error)
	return &ing
}

// seedRecipe tworzy recepturę z krokami i pozycjami składnikowymi
// (ilość na porcję, jednostka kg).
func seedRecipe(t *testing.T, db *gorm.DB, name string, steps datatypes.JSON, perPortion map[*models.Ingredient]float64) *models.Recipe {
	t.Helper()
	recipe := models.Recipe{Name: name, Steps: steps}
	for ing, amount := range perPortion {
		recipe.Ingredients = append(recipe.Ingredients, models.RecipeIngredient{
			IngredientID: ing.ID,
			Amount:       amount,
			Unit:         "kg",
		})
	}
	require.NoError(t, db.Create(&recipe).Error)
	return &recipe
}

// seedDishWithRecipe tworzy danie z jednym komponentem recepturowym.
func seedDishWithRecipe(t *testing.T, db *gorm.DB, name string, recipe *models.Recipe) *models.Dish {
	t.Helper()
	dish := models.Dish{
		Name: name,
		Components: []models.DishComponent{{
			Type:     models.ComponentTypeRecipe,
			RecipeID: uintPtr(recipe.ID),
		}},
	}
	require.NoError(t, db.Create(&dish).Error)
	return &dish
}

// seedEventDaySection tworzy wydarzenie z jednym dniem kalendarzowym
// i jedną sekcją; zwraca wszystkie trzy rekordy.
func seedEventDaySection(t *testing.T, db *gorm.DB, adults int) (*models.Event, *models.EventDay, *models.EventSection) {
	t.Helper()
	event := models.Event{Name: "Testowe wydarzenie", Adults: adults, Status: models.EventStatusActive}
	require.NoError(t, db.Create(&event).Error)

	day := models.EventDay{EventID: event.ID, Name: "Dzień 1", Position: 0}
	require.NoError(t, db.Create(&day).Error)

	section := models.EventSection{DayID: day.ID, Name: "Obiad"}
	require.NoError(t, db.Create(&section).Error)

	return &event, &day, &section
}
