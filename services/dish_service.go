package services

import (
	"context"
	"errors"

	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/models"
	"chefsystem.pl/pkg/queryparams"
	"chefsystem.pl/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DishServiceError błędy domenowe serwisu dań.
type DishServiceError string

func (e DishServiceError) Error() string { return string(e) }

const (
	ErrDishNotFound         DishServiceError = "danie nie znalezione"
	ErrDishNameRequired     DishServiceError = "nazwa dania jest wymagana"
	ErrDishNameTaken        DishServiceError = "danie o tej nazwie już istnieje"
	ErrDishInvalidComponent DishServiceError = "komponent dania musi wskazywać recepturę albo surowiec"
)

// IDishService CRUD na daniach z komponentami.
type IDishService interface {
	CreateDish(ctx context.Context, dish *models.Dish) (*models.Dish, error)
	GetDish(ctx context.Context, id uint) (*models.Dish, error)
	ListDishes(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateDish(ctx context.Context, id uint, updates *models.Dish) (*models.Dish, error)
	DeleteDish(ctx context.Context, id uint) error
}

// DishService implementuje IDishService.
type DishService struct {
	repo repositories.IDishRepository
}

// NewDishService tworzy serwis na globalnym połączeniu.
func NewDishService() IDishService {
	return &DishService{repo: repositories.NewDishRepository()}
}

// NewDishServiceWithDB tworzy serwis na podanym połączeniu (testy).
func NewDishServiceWithDB(db *gorm.DB) IDishService {
	return &DishService{repo: repositories.NewDishRepositoryTx(db)}
}

func validateComponents(components []models.DishComponent) error {
	for i := range components {
		c := components[i]
		switch c.Type {
		case models.ComponentTypeRecipe:
			if c.RecipeID == nil || *c.RecipeID == 0 {
				return ErrDishInvalidComponent
			}
		case models.ComponentTypeIngredient:
			if c.IngredientID == nil || *c.IngredientID == 0 {
				return ErrDishInvalidComponent
			}
		default:
			return ErrDishInvalidComponent
		}
	}
	return nil
}

func (s *DishService) CreateDish(ctx context.Context, dish *models.Dish) (*models.Dish, error) {
	if dish == nil || dish.Name == "" {
		return nil, ErrDishNameRequired
	}
	if err := validateComponents(dish.Components); err != nil {
		return nil, err
	}
	if existing, err := s.repo.FindByName(ctx, dish.Name); err == nil && existing != nil {
		return nil, ErrDishNameTaken
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if err := s.repo.Create(ctx, dish); err != nil {
		configslog.Log.Error("CreateDish: błąd zapisu", zap.String("nazwa", dish.Name), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Utworzono danie %q (ID %d, komponentów: %d)", dish.Name, dish.ID, len(dish.Components))
	return dish, nil
}

func (s *DishService) GetDish(ctx context.Context, id uint) (*models.Dish, error) {
	dish, err := s.repo.FindByIDDeep(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	return dish, nil
}

func (s *DishService) ListDishes(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	dishes, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: dishes,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *DishService) UpdateDish(ctx context.Context, id uint, updates *models.Dish) (*models.Dish, error) {
	if updates == nil || updates.Name == "" {
		return nil, ErrDishNameRequired
	}
	if err := validateComponents(updates.Components); err != nil {
		return nil, err
	}
	dish, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}

	if updates.Name != dish.Name {
		if existing, err := s.repo.FindByName(ctx, updates.Name); err == nil && existing != nil {
			return nil, ErrDishNameTaken
		} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}

	dish.Name = updates.Name
	dish.MenuName = updates.MenuName
	dish.MenuDesc = updates.MenuDesc
	dish.SuggestedPrice = updates.SuggestedPrice
	dish.Vegetarian = updates.Vegetarian
	dish.Vegan = updates.Vegan
	dish.Active = updates.Active
	dish.Components = nil

	if err := s.repo.Update(ctx, dish); err != nil {
		configslog.Log.Error("UpdateDish: błąd zapisu", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	if updates.Components != nil {
		if err := s.repo.ReplaceComponents(ctx, dish.ID, updates.Components); err != nil {
			configslog.Log.Error("UpdateDish: błąd wymiany komponentów", zap.Uint("id", id), zap.Error(err))
			return nil, &PartialFailureError{Step: "wymiana komponentów", Err: err}
		}
	}
	return s.GetDish(ctx, id)
}

func (s *DishService) DeleteDish(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDishNotFound
		}
		return err
	}
	return nil
}

var _ IDishService = (*DishService)(nil)
