package services

import (
	"context"
	"testing"

	"chefsystem.pl/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildForEventMergesByIngredient(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingServiceWithDB(db)
	ctx := context.Background()

	// ten sam surowiec w dwóch różnych recepturach musi dać jedną pozycję
	potato := seedIngredient(t, db, "Ziemniaki")
	kopytka := seedRecipe(t, db, "Kopytka", nil, map[*models.Ingredient]float64{potato: 0.2})
	puree := seedRecipe(t, db, "Puree", nil, map[*models.Ingredient]float64{potato: 0.2})
	dishA := seedDishWithRecipe(t, db, "Kopytka z okrasą", kopytka)
	dishB := seedDishWithRecipe(t, db, "Puree maślane", puree)

	event, _, section := seedEventDaySection(t, db, 10)
	require.NoError(t, db.Create(&models.SectionDish{SectionID: section.ID, DishID: dishA.ID, Portions: intPtr(10)}).Error)
	require.NoError(t, db.Create(&models.SectionDish{SectionID: section.ID, DishID: dishB.ID, Portions: intPtr(5)}).Error)

	list, err := svc.BuildForEvent(ctx, event.ID)
	require.NoError(t, err)

	assert.Equal(t, 10, list.Headcount)
	assert.Equal(t, 1, list.DayCount)
	require.Len(t, list.Items, 1)

	item := list.Items[0]
	assert.Equal(t, potato.ID, item.IngredientID)
	assert.Equal(t, "Ziemniaki", item.Name)
	assert.Equal(t, "kg", item.Unit)
	// 0.2 kg/porcję * (10 + 5) porcji
	assert.InDelta(t, 3.0, item.Amount, 1e-9)
}

func TestBuildForEventPortionFallbackChain(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingServiceWithDB(db)
	ctx := context.Background()

	carrot := seedIngredient(t, db, "Marchew")
	recipe := seedRecipe(t, db, "Marchewka duszona", nil, map[*models.Ingredient]float64{carrot: 0.1})
	dish := seedDishWithRecipe(t, db, "Marchewka", recipe)

	// dorośli + dzieci + seniorzy = 12
	event := models.Event{Name: "Chrzciny", Adults: 8, Children: 3, Seniors: 1}
	require.NoError(t, db.Create(&event).Error)
	day := models.EventDay{EventID: event.ID, Position: 0}
	require.NoError(t, db.Create(&day).Error)

	// sekcja bez porcji, danie bez porcji -> suma osób wydarzenia
	noPortions := models.EventSection{DayID: day.ID, Name: "Obiad"}
	require.NoError(t, db.Create(&noPortions).Error)
	require.NoError(t, db.Create(&models.SectionDish{SectionID: noPortions.ID, DishID: dish.ID}).Error)

	// sekcja z porcjami, danie bez porcji -> porcje sekcji
	sectionPortions := models.EventSection{DayID: day.ID, Name: "Kolacja", Portions: intPtr(6)}
	require.NoError(t, db.Create(&sectionPortions).Error)
	require.NoError(t, db.Create(&models.SectionDish{SectionID: sectionPortions.ID, DishID: dish.ID}).Error)

	// porcje dania wygrywają z porcjami sekcji
	require.NoError(t, db.Create(&models.SectionDish{SectionID: sectionPortions.ID, DishID: dish.ID, Portions: intPtr(2)}).Error)

	list, err := svc.BuildForEvent(ctx, event.ID)
	require.NoError(t, err)

	assert.Equal(t, 12, list.Headcount)
	require.Len(t, list.Items, 1)
	// 0.1 * (12 + 6 + 2)
	assert.InDelta(t, 2.0, list.Items[0].Amount, 1e-9)
}

func TestBuildForEventProductionDayNotCounted(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingServiceWithDB(db)
	ctx := context.Background()

	flour := seedIngredient(t, db, "Mąka")
	recipe := seedRecipe(t, db, "Ciasto", nil, map[*models.Ingredient]float64{flour: 0.05})
	dish := seedDishWithRecipe(t, db, "Ciasto drożdżowe", recipe)

	event := models.Event{Name: "Piknik", Adults: 4}
	require.NoError(t, db.Create(&event).Error)
	production := models.EventDay{EventID: event.ID, Name: ProductionDayName, Position: models.ProductionDayOrder}
	require.NoError(t, db.Create(&production).Error)
	section := models.EventSection{DayID: production.ID, Name: "Przygotowanie"}
	require.NoError(t, db.Create(&section).Error)
	require.NoError(t, db.Create(&models.SectionDish{SectionID: section.ID, DishID: dish.ID}).Error)

	list, err := svc.BuildForEvent(ctx, event.ID)
	require.NoError(t, err)

	// danie tylko na dniu produkcji: składniki liczone, dni nie
	assert.Equal(t, 0, list.DayCount)
	require.Len(t, list.Items, 1)
	assert.InDelta(t, 0.2, list.Items[0].Amount, 1e-9)
}

func TestShoppingListPolishCollation(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingServiceWithDB(db)
	ctx := context.Background()

	zurawina := seedIngredient(t, db, "Żurawina")
	cwikla := seedIngredient(t, db, "Ćwikła")
	cebula := seedIngredient(t, db, "Cebula")
	ananas := seedIngredient(t, db, "Ananas")

	recipe := seedRecipe(t, db, "Sałatka", nil, map[*models.Ingredient]float64{
		zurawina: 0.02,
		cwikla:   0.1,
		cebula:   0.05,
		ananas:   0.1,
	})
	dish := seedDishWithRecipe(t, db, "Sałatka owocowa", recipe)

	event, _, section := seedEventDaySection(t, db, 1)
	require.NoError(t, db.Create(&models.SectionDish{SectionID: section.ID, DishID: dish.ID}).Error)

	list, err := svc.BuildForEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, list.Items, 4)

	names := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		names = append(names, item.Name)
	}
	// polski porządek alfabetyczny: Ć po C, Ż na końcu
	assert.Equal(t, []string{"Ananas", "Cebula", "Ćwikła", "Żurawina"}, names)
}

func TestBuildForGroupAggregatesMeals(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingServiceWithDB(db)
	ctx := context.Background()

	rice := seedIngredient(t, db, "Ryż")
	recipe := seedRecipe(t, db, "Risotto", nil, map[*models.Ingredient]float64{rice: 0.08})
	dish := seedDishWithRecipe(t, db, "Risotto z warzywami", recipe)

	group := models.Group{Name: "Kolonia letnia", Adults: 2, Children: 10}
	require.NoError(t, db.Create(&group).Error)
	// dzień 1 bez porcji (suma osób grupy), dzień 3 z porcjami posiłku
	require.NoError(t, db.Create(&models.GroupMeal{GroupID: group.ID, DayNo: 1, DishID: dish.ID}).Error)
	require.NoError(t, db.Create(&models.GroupMeal{GroupID: group.ID, DayNo: 3, DishID: dish.ID, Portions: intPtr(8)}).Error)

	list, err := svc.BuildForGroup(ctx, group.ID)
	require.NoError(t, err)

	assert.Equal(t, 12, list.Headcount)
	assert.Equal(t, 3, list.DayCount) // najwyższy numer dnia w jadłospisie
	require.Len(t, list.Items, 1)
	// 0.08 * (12 + 8)
	assert.InDelta(t, 1.6, list.Items[0].Amount, 1e-9)
}

func TestBuildForGroupNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingServiceWithDB(db)

	_, err := svc.BuildForGroup(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrShoppingGroupNotFound)

	_, err = svc.BuildForEvent(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrShoppingEventNotFound)
}
