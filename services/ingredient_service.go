package services

import (
	"context"
	"errors"
	"fmt"

	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/models"
	"chefsystem.pl/pkg/queryparams"
	"chefsystem.pl/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IngredientServiceError błędy domenowe serwisu surowców.
type IngredientServiceError string

func (e IngredientServiceError) Error() string { return string(e) }

const (
	ErrIngredientNotFound     IngredientServiceError = "surowiec nie znaleziony"
	ErrIngredientNameRequired IngredientServiceError = "nazwa surowca jest wymagana"
	ErrIngredientNameTaken    IngredientServiceError = "surowiec o tej nazwie już istnieje"
)

// IIngredientService proste CRUD na surowcach z kontrolą unikalności nazwy.
type IIngredientService interface {
	CreateIngredient(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error)
	GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error)
	ListIngredients(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateIngredient(ctx context.Context, id uint, updates *models.Ingredient) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, id uint) error
}

// IngredientService implementuje IIngredientService.
type IngredientService struct {
	repo repositories.IIngredientRepository
}

// NewIngredientService tworzy serwis na globalnym połączeniu.
func NewIngredientService() IIngredientService {
	return &IngredientService{repo: repositories.NewIngredientRepository()}
}

// NewIngredientServiceWithDB tworzy serwis na podanym połączeniu (testy).
func NewIngredientServiceWithDB(db *gorm.DB) IIngredientService {
	return &IngredientService{repo: repositories.NewIngredientRepositoryTx(db)}
}

func (s *IngredientService) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error) {
	if ingredient == nil || ingredient.Name == "" {
		return nil, ErrIngredientNameRequired
	}
	if existing, err := s.repo.FindByName(ctx, ingredient.Name); err == nil && existing != nil {
		return nil, ErrIngredientNameTaken
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if err := s.repo.Create(ctx, ingredient); err != nil {
		configslog.Log.Error("CreateIngredient: błąd zapisu", zap.String("nazwa", ingredient.Name), zap.Error(err))
		return nil, err
	}
	return ingredient, nil
}

func (s *IngredientService) GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error) {
	ingredient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return ingredient, nil
}

func (s *IngredientService) ListIngredients(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	ingredients, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: ingredients,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *IngredientService) UpdateIngredient(ctx context.Context, id uint, updates *models.Ingredient) (*models.Ingredient, error) {
	if updates == nil || updates.Name == "" {
		return nil, ErrIngredientNameRequired
	}
	ingredient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}

	if updates.Name != ingredient.Name {
		if existing, err := s.repo.FindByName(ctx, updates.Name); err == nil && existing != nil {
			return nil, fmt.Errorf("%w: %s", ErrIngredientNameTaken, updates.Name)
		} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}

	ingredient.Name = updates.Name
	ingredient.Type = updates.Type
	ingredient.Group = updates.Group
	ingredient.Department = updates.Department
	ingredient.BaseUnit = updates.BaseUnit
	ingredient.Vegetarian = updates.Vegetarian
	ingredient.Vegan = updates.Vegan
	ingredient.Allergens = updates.Allergens

	if err := s.repo.Update(ctx, ingredient); err != nil {
		configslog.Log.Error("UpdateIngredient: błąd zapisu", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return ingredient, nil
}

func (s *IngredientService) DeleteIngredient(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrIngredientNotFound
		}
		return err
	}
	return nil
}

var _ IIngredientService = (*IngredientService)(nil)
