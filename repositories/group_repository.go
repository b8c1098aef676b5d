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

// IGroupRepository operacje bazodanowe na grupach żywieniowych.
type IGroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	FindByID(ctx context.Context, id uint) (*models.Group, error)
	// FindByIDWithMeals ładuje posiłki grupy w kolejności dni.
	FindByIDWithMeals(ctx context.Context, id uint) (*models.Group, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Group, int64, error)
	Update(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id uint) error

	CreateMeal(ctx context.Context, meal *models.GroupMeal) error
	FindMealByID(ctx context.Context, id uint) (*models.GroupMeal, error)
	DeleteMeal(ctx context.Context, id uint) error
}

// GroupRepository implementuje IGroupRepository.
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository tworzy repozytorium na globalnym połączeniu.
func NewGroupRepository() IGroupRepository {
	return &GroupRepository{db: configs.GetDB()}
}

// NewGroupRepositoryTx wariant działający na podanej transakcji.
func NewGroupRepositoryTx(tx *gorm.DB) IGroupRepository {
	return &GroupRepository{db: tx}
}

func (r *GroupRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	if group == nil || group.Name == "" {
		return errors.New("grupa bez nazwy nie może być zapisana")
	}
	return r.getDB(ctx).Omit("Meals").Create(group).Error
}

func (r *GroupRepository) FindByID(ctx context.Context, id uint) (*models.Group, error) {
	if id == 0 {
		return nil, errors.New("nieprawidłowe ID grupy")
	}
	var group models.Group
	err := r.getDB(ctx).First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GroupRepository.FindByID: błąd DB", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) FindByIDWithMeals(ctx context.Context, id uint) (*models.Group, error) {
	if id == 0 {
		return nil, errors.New("nieprawidłowe ID grupy")
	}
	var group models.Group
	err := r.getDB(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("dzien asc, id asc") }).
		Preload("Meals.Dish").
		First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GroupRepository.FindByIDWithMeals: błąd DB", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Group, int64, error) {
	var groups []models.Group
	var totalCount int64
	db := r.getDB(ctx)

	query := db.Model(&models.Group{})
	if params.Name != "" {
		query = query.Where("nazwa ILIKE ?", "%"+params.Name+"%")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("nazwa asc").Limit(params.PerPage).Offset(params.Offset()).Find(&groups).Error
	if err != nil {
		configslog.Log.Error("GroupRepository.FindAllPaginated: błąd DB", zap.Error(err))
		return nil, 0, err
	}
	return groups, totalCount, nil
}

func (r *GroupRepository) Update(ctx context.Context, group *models.Group) error {
	if group == nil || group.ID == 0 {
		return errors.New("nieprawidłowa grupa do aktualizacji")
	}
	return r.getDB(ctx).Omit("Meals").Save(group).Error
}

func (r *GroupRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("nieprawidłowe ID grupy")
	}
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupMeal{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Group{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *GroupRepository) CreateMeal(ctx context.Context, meal *models.GroupMeal) error {
	if meal == nil || meal.GroupID == 0 || meal.DishID == 0 {
		return errors.New("posiłek wymaga grupy i dania")
	}
	return r.getDB(ctx).Omit("Dish").Create(meal).Error
}

func (r *GroupRepository) FindMealByID(ctx context.Context, id uint) (*models.GroupMeal, error) {
	if id == 0 {
		return nil, errors.New("nieprawidłowe ID posiłku")
	}
	var meal models.GroupMeal
	err := r.getDB(ctx).First(&meal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *GroupRepository) DeleteMeal(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("nieprawidłowe ID posiłku")
	}
	result := r.getDB(ctx).Delete(&models.GroupMeal{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IGroupRepository = (*GroupRepository)(nil)
