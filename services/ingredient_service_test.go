package services

import (
	"context"
	"testing"

	"chefsystem.pl/models"
	"chefsystem.pl/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewIngredientServiceWithDB(db)
	ctx := context.Background()

	created, err := svc.CreateIngredient(ctx, &models.Ingredient{
		Name:       "Pomidory",
		Type:       "warzywa",
		BaseUnit:   "kg",
		Vegetarian: true,
		Vegan:      true,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	loaded, err := svc.GetIngredient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pomidory", loaded.Name)

	updated, err := svc.UpdateIngredient(ctx, created.ID, &models.Ingredient{
		Name:     "Pomidory malinowe",
		Type:     "warzywa",
		BaseUnit: "kg",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pomidory malinowe", updated.Name)

	require.NoError(t, svc.DeleteIngredient(ctx, created.ID))
	_, err = svc.GetIngredient(ctx, created.ID)
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestIngredientNameUniqueness(t *testing.T) {
	db := newTestDB(t)
	svc := NewIngredientServiceWithDB(db)
	ctx := context.Background()

	_, err := svc.CreateIngredient(ctx, &models.Ingredient{Name: "Sól"})
	require.NoError(t, err)

	_, err = svc.CreateIngredient(ctx, &models.Ingredient{Name: "Sól"})
	assert.ErrorIs(t, err, ErrIngredientNameTaken)

	other, err := svc.CreateIngredient(ctx, &models.Ingredient{Name: "Pieprz"})
	require.NoError(t, err)

	// zmiana nazwy na zajętą też jest odrzucana
	_, err = svc.UpdateIngredient(ctx, other.ID, &models.Ingredient{Name: "Sól"})
	assert.ErrorIs(t, err, ErrIngredientNameTaken)
}

func TestIngredientValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewIngredientServiceWithDB(db)
	ctx := context.Background()

	_, err := svc.CreateIngredient(ctx, &models.Ingredient{Name: ""})
	assert.ErrorIs(t, err, ErrIngredientNameRequired)

	_, err = svc.GetIngredient(ctx, 777)
	assert.ErrorIs(t, err, ErrIngredientNotFound)

	err = svc.DeleteIngredient(ctx, 777)
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestIngredientListPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewIngredientServiceWithDB(db)
	ctx := context.Background()

	for _, name := range []string{"Bazylia", "Oregano", "Tymianek", "Rozmaryn", "Szałwia"} {
		_, err := svc.CreateIngredient(ctx, &models.Ingredient{Name: name})
		require.NoError(t, err)
	}

	result, err := svc.ListIngredients(ctx, queryparams.ListParams{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, result.Meta.TotalItems)
	assert.Equal(t, 3, result.Meta.TotalPages)
	assert.Len(t, result.Data.([]models.Ingredient), 2)
}
