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

// IIngredientRepository operacje bazodanowe na surowcach.
type IIngredientRepository interface {
	Create(ctx context.Context, ingredient *models.Ingredient) error
	FindByID(ctx context.Context, id uint) (*models.Ingredient, error)
	FindByName(ctx context.Context, name string) (*models.Ingredient, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Ingredient, int64, error)
	Update(ctx context.Context, ingredient *models.Ingredient) error
	Delete(ctx context.Context, id uint) error
}

// IngredientRepository implementuje IIngredientRepository.
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository tworzy repozytorium na globalnym połączeniu.
func NewIngredientRepository() IIngredientRepository {
	return &IngredientRepository{db: configs.GetDB()}
}

// NewIngredientRepositoryTx wariant działający na podanej transakcji.
func NewIngredientRepositoryTx(tx *gorm.DB) IIngredientRepository {
	return &IngredientRepository{db: tx}
}

func (r *IngredientRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *IngredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	if ingredient == nil || ingredient.Name == "" {
		return errors.New("surowiec bez nazwy nie może być zapisany")
	}
	return r.getDB(ctx).Create(ingredient).Error
}

func (r *IngredientRepository) FindByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	if id == 0 {
		return nil, errors.New("nieprawidłowe ID surowca")
	}
	var ingredient models.Ingredient
	err := r.getDB(ctx).First(&ingredient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("IngredientRepository.FindByID: błąd DB", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &ingredient, nil
}

func (r *IngredientRepository) FindByName(ctx context.Context, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.getDB(ctx).Where("nazwa = ?", name).First(&ingredient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

// FindAllPaginated listuje surowce posortowane po nazwie, z opcjonalnym
// filtrem nazwy (ILIKE).
func (r *IngredientRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Ingredient, int64, error) {
	var ingredients []models.Ingredient
	var totalCount int64
	db := r.getDB(ctx)

	query := db.Model(&models.Ingredient{})
	if params.Name != "" {
		query = query.Where("nazwa ILIKE ?", "%"+params.Name+"%")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("IngredientRepository.FindAllPaginated: błąd zliczania", zap.Error(err))
		return nil, 0, err
	}

	err := query.Order("nazwa asc").Limit(params.PerPage).Offset(params.Offset()).Find(&ingredients).Error
	if err != nil {
		configslog.Log.Error("IngredientRepository.FindAllPaginated: błąd DB", zap.Error(err))
		return nil, 0, err
	}
	return ingredients, totalCount, nil
}

func (r *IngredientRepository) Update(ctx context.Context, ingredient *models.Ingredient) error {
	if ingredient == nil || ingredient.ID == 0 {
		return errors.New("nieprawidłowy surowiec do aktualizacji")
	}
	return r.getDB(ctx).Save(ingredient).Error
}

func (r *IngredientRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("nieprawidłowe ID surowca")
	}
	result := r.getDB(ctx).Delete(&models.Ingredient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IIngredientRepository = (*IngredientRepository)(nil)
