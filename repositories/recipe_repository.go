package repositories

import (
	"context"
	"errors"

	"chefsystem.pl/configs"
	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/models"
	"chefsystem.pl/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IRecipeRepository operacje bazodanowe na recepturach.
type IRecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	FindByID(ctx context.Context, id uint) (*models.Recipe, error)
	FindByName(ctx context.Context, name string) (*models.Recipe, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Recipe, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Recipe, int64, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	ReplaceIngredients(ctx context.Context, recipeID uint, ingredients []models.RecipeIngredient) error
	Delete(ctx context.Context, id uint) error
}

// RecipeRepository implementuje IRecipeRepository.
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository tworzy repozytorium na globalnym połączeniu.
func NewRecipeRepository() IRecipeRepository {
	return &RecipeRepository{db: configs.GetDB()}
}

// NewRecipeRepositoryTx wariant działający na podanej transakcji.
func NewRecipeRepositoryTx(tx *gorm.DB) IRecipeRepository {
	return &RecipeRepository{db: tx}
}

func (r *RecipeRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create zapisuje recepturę razem z pozycjami składnikowymi (asocjacja GORM).
func (r *RecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if recipe == nil || recipe.Name == "" {
		return errors.New("receptura bez nazwy nie może być zapisana")
	}
	return r.getDB(ctx).Create(recipe).Error
}

func (r *RecipeRepository) FindByID(ctx context.Context, id uint) (*models.Recipe, error) {
	if id == 0 {
		return nil, errors.New("nieprawidłowe ID receptury")
	}
	var recipe models.Recipe
	err := r.getDB(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("kolejnosc asc") }).
		Preload("Ingredients.Ingredient").
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RecipeRepository.FindByID: błąd DB", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &recipe, nil
}

func (r *RecipeRepository) FindByName(ctx context.Context, name string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.getDB(ctx).Where("nazwa = ?", name).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// FindByIDs pobiera wiele receptur naraz (ekspansja zadań, lista zakupów).
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var recipes []models.Recipe
	err := r.getDB(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("kolejnosc asc") }).
		Preload("Ingredients.Ingredient").
		Where("id IN ?", ids).
		Find(&recipes).Error
	if err != nil {
		configslog.Log.Error("RecipeRepository.FindByIDs: błąd DB", zap.Error(err))
		return nil, err
	}
	return recipes, nil
}

func (r *RecipeRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var totalCount int64
	db := r.getDB(ctx)

	query := db.Model(&models.Recipe{})
	if params.Name != "" {
		query = query.Where("nazwa ILIKE ?", "%"+params.Name+"%")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("nazwa asc").Limit(params.PerPage).Offset(params.Offset()).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("kolejnosc asc") }).
		Preload("Ingredients.Ingredient").
		Find(&recipes).Error
	if err != nil {
		configslog.Log.Error("RecipeRepository.FindAllPaginated: błąd DB", zap.Error(err))
		return nil, 0, err
	}
	return recipes, totalCount, nil
}

func (r *RecipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	if recipe == nil || recipe.ID == 0 {
		return errors.New("nieprawidłowa receptura do aktualizacji")
	}
	// Save bez asocjacji: składniki wymienia ReplaceIngredients
	return r.getDB(ctx).Omit("Ingredients").Save(recipe).Error
}

// ReplaceIngredients wymienia całą listę składników receptury.
func (r *RecipeRepository) ReplaceIngredients(ctx context.Context, recipeID uint, ingredients []models.RecipeIngredient) error {
	if recipeID == 0 {
		return errors.New("nieprawidłowe ID receptury")
	}
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(ingredients) == 0 {
			return nil
		}
		for i := range ingredients {
			ingredients[i].ID = 0
			ingredients[i].RecipeID = recipeID
		}
		return tx.Create(&ingredients).Error
	})
}

func (r *RecipeRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("nieprawidłowe ID receptury")
	}
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Recipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

var _ IRecipeRepository = (*RecipeRepository)(nil)
