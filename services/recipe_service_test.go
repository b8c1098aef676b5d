package services

import (
	"context"
	"testing"

	"chefsystem.pl/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipeWithIngredients(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeServiceWithDB(db)
	ctx := context.Background()

	flour := seedIngredient(t, db, "Mąka pszenna")
	egg := seedIngredient(t, db, "Jaja")

	created, err := svc.CreateRecipe(ctx, &models.Recipe{
		Name:  "Naleśniki",
		Steps: stepsJSON(t, stepObj{Number: 1, Description: "Wymieszaj ciasto"}, stepObj{Number: 2, Description: "Smaż z obu stron"}),
		Ingredients: []models.RecipeIngredient{
			{IngredientID: flour.ID, Amount: 0.1, Unit: "kg"},
			{IngredientID: egg.ID, Amount: 1, Unit: "szt"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.RecipeTypeHalfProduct, created.Type) // typ domyślny

	loaded, err := svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Ingredients, 2)
	assert.Equal(t, "Mąka pszenna", loaded.Ingredients[0].Ingredient.Name)
}

func TestUpdateRecipeReplacesIngredients(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeServiceWithDB(db)
	ctx := context.Background()

	old := seedIngredient(t, db, "Śmietana 18%")
	fresh := seedIngredient(t, db, "Jogurt naturalny")

	created, err := svc.CreateRecipe(ctx, &models.Recipe{
		Name:        "Sos czosnkowy",
		Ingredients: []models.RecipeIngredient{{IngredientID: old.ID, Amount: 0.2, Unit: "kg"}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateRecipe(ctx, created.ID, &models.Recipe{
		Name:        "Sos czosnkowy light",
		Ingredients: []models.RecipeIngredient{{IngredientID: fresh.ID, Amount: 0.25, Unit: "kg"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Sos czosnkowy light", updated.Name)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, fresh.ID, updated.Ingredients[0].IngredientID)

	var count int64
	db.Model(&models.RecipeIngredient{}).Where("recipe_id = ?", created.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRecipeNameUniqueness(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeServiceWithDB(db)
	ctx := context.Background()

	_, err := svc.CreateRecipe(ctx, &models.Recipe{Name: "Żurek"})
	require.NoError(t, err)

	_, err = svc.CreateRecipe(ctx, &models.Recipe{Name: "Żurek"})
	assert.ErrorIs(t, err, ErrRecipeNameTaken)
}

func TestRecipeAcceptsMalformedStepsOnWrite(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeServiceWithDB(db)
	ctx := context.Background()

	// import historyczny nie odrzucał uszkodzonych kroków; walidacja
	// następuje dopiero przy generowaniu zadań
	created, err := svc.CreateRecipe(ctx, &models.Recipe{
		Name:  "Receptura z importu",
		Steps: []byte(`{"oops":`),
	})
	require.NoError(t, err)

	_, err = ParseInstructionSteps(created.Steps)
	assert.ErrorIs(t, err, ErrNoInstructions)
}
