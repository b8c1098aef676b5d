package services

import (
	"context"
	"testing"

	"chefsystem.pl/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCRUDWithMeals(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupServiceWithDB(db)
	ctx := context.Background()

	ing := seedIngredient(t, db, "Kasza gryczana")
	recipe := seedRecipe(t, db, "Kasza z sosem", nil, map[*models.Ingredient]float64{ing: 0.07})
	dish := seedDishWithRecipe(t, db, "Kasza po staropolsku", recipe)

	group, err := svc.CreateGroup(ctx, &models.Group{Name: "Turnus I", Adults: 5, Children: 20})
	require.NoError(t, err)
	assert.Equal(t, 25, group.Headcount())

	meal, err := svc.AddMeal(ctx, group.ID, &models.GroupMeal{DayNo: 1, MealKind: "obiad", DishID: dish.ID})
	require.NoError(t, err)
	assert.Equal(t, group.ID, meal.GroupID)

	loaded, err := svc.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Meals, 1)
	assert.Equal(t, "obiad", loaded.Meals[0].MealKind)

	require.NoError(t, svc.DeleteMeal(ctx, meal.ID))
	loaded, err = svc.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Meals)

	require.NoError(t, svc.DeleteGroup(ctx, group.ID))
	_, err = svc.GetGroup(ctx, group.ID)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestAddMealValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupServiceWithDB(db)
	ctx := context.Background()

	group, err := svc.CreateGroup(ctx, &models.Group{Name: "Turnus II"})
	require.NoError(t, err)

	// dzień liczony od 1
	_, err = svc.AddMeal(ctx, group.ID, &models.GroupMeal{DayNo: 0, DishID: 1})
	assert.ErrorIs(t, err, ErrGroupMealInvalid)

	_, err = svc.AddMeal(ctx, group.ID, &models.GroupMeal{DayNo: 1, DishID: 0})
	assert.ErrorIs(t, err, ErrGroupMealInvalid)

	_, err = svc.AddMeal(ctx, group.ID, &models.GroupMeal{DayNo: 1, DishID: 9999})
	assert.ErrorIs(t, err, ErrDishNotFound)

	_, err = svc.AddMeal(ctx, 9999, &models.GroupMeal{DayNo: 1, DishID: 1})
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
