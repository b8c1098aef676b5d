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

// IDishRepository operacje bazodanowe na daniach.
type IDishRepository interface {
	Create(ctx context.Context, dish *models.Dish) error
	FindByID(ctx context.Context, id uint) (*models.Dish, error)
	FindByName(ctx context.Context, name string) (*models.Dish, error)
	// FindByIDDeep ładuje komponenty wraz z recepturami i ich składnikami
	// (pełny graf danie -> komponent -> receptura -> składnik -> surowiec).
	FindByIDDeep(ctx context.Context, id uint) (*models.Dish, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Dish, int64, error)
	Update(ctx context.Context, dish *models.Dish) error
	ReplaceComponents(ctx context.Context, dishID uint, components []models.DishComponent) error
	Delete(ctx context.Context, id uint) error
}

// DishRepository implementuje IDishRepository.
type DishRepository struct {
	db *gorm.DB
}

// NewDishRepository tworzy repozytorium na globalnym połączeniu.
func NewDishRepository() IDishRepository {
	return &DishRepository{db: configs.GetDB()}
}

// NewDishRepositoryTx wariant działający na podanej transakcji.
func NewDishRepositoryTx(tx *gorm.DB) IDishRepository {
	return &DishRepository{db: tx}
}

func (r *DishRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *DishRepository) Create(ctx context.Context, dish *models.Dish) error {
	if dish == nil || dish.Name == "" {
		return errors.New("danie bez nazwy nie może być zapisane")
	}
	return r.getDB(ctx).Create(dish).Error
}

func (r *DishRepository) FindByID(ctx context.Context, id uint) (*models.Dish, error) {
	if id == 0 {
		return nil, errors.New("nieprawidłowe ID dania")
	}
	var dish models.Dish
	err := r.getDB(ctx).
		Preload("Components", func(db *gorm.DB) *gorm.DB { return db.Order("kolejnosc asc") }).
		First(&dish, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("DishRepository.FindByID: błąd DB", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) FindByName(ctx context.Context, name string) (*models.Dish, error) {
	var dish models.Dish
	err := r.getDB(ctx).Where("nazwa = ?", name).First(&dish).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) FindByIDDeep(ctx context.Context, id uint) (*models.Dish, error) {
	if id == 0 {
		return nil, errors.New("nieprawidłowe ID dania")
	}
	var dish models.Dish
	err := r.getDB(ctx).
		Preload("Components", func(db *gorm.DB) *gorm.DB { return db.Order("kolejnosc asc") }).
		Preload("Components.Recipe").
		Preload("Components.Recipe.Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("kolejnosc asc") }).
		Preload("Components.Recipe.Ingredients.Ingredient").
		Preload("Components.Ingredient").
		First(&dish, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("DishRepository.FindByIDDeep: błąd DB", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Dish, int64, error) {
	var dishes []models.Dish
	var totalCount int64
	db := r.getDB(ctx)

	query := db.Model(&models.Dish{})
	if params.Name != "" {
		query = query.Where("nazwa ILIKE ?", "%"+params.Name+"%")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("nazwa asc").Limit(params.PerPage).Offset(params.Offset()).
		Preload("Components", func(db *gorm.DB) *gorm.DB { return db.Order("kolejnosc asc") }).
		Find(&dishes).Error
	if err != nil {
		configslog.Log.Error("DishRepository.FindAllPaginated: błąd DB", zap.Error(err))
		return nil, 0, err
	}
	return dishes, totalCount, nil
}

func (r *DishRepository) Update(ctx context.Context, dish *models.Dish) error {
	if dish == nil || dish.ID == 0 {
		return errors.New("nieprawidłowe danie do aktualizacji")
	}
	return r.getDB(ctx).Omit("Components").Save(dish).Error
}

// ReplaceComponents wymienia całą listę komponentów dania.
func (r *DishRepository) ReplaceComponents(ctx context.Context, dishID uint, components []models.DishComponent) error {
	if dishID == 0 {
		return errors.New("nieprawidłowe ID dania")
	}
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dish_id = ?", dishID).Delete(&models.DishComponent{}).Error; err != nil {
			return err
		}
		if len(components) == 0 {
			return nil
		}
		for i := range components {
			components[i].ID = 0
			components[i].DishID = dishID
		}
		return tx.Create(&components).Error
	})
}

func (r *DishRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("nieprawidłowe ID dania")
	}
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dish_id = ?", id).Delete(&models.DishComponent{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Dish{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

var _ IDishRepository = (*DishRepository)(nil)
