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

// RecipeServiceError błędy domenowe serwisu receptur.
type RecipeServiceError string

func (e RecipeServiceError) Error() string { return string(e) }

const (
	ErrRecipeNotFound     RecipeServiceError = "receptura nie znaleziona"
	ErrRecipeNameRequired RecipeServiceError = "nazwa receptury jest wymagana"
	ErrRecipeNameTaken    RecipeServiceError = "receptura o tej nazwie już istnieje"
)

// IRecipeService CRUD na recepturach ze składnikami i krokami.
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*models.Recipe, error)
	ListRecipes(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateRecipe(ctx context.Context, id uint, updates *models.Recipe) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id uint) error
}

// RecipeService implementuje IRecipeService.
type RecipeService struct {
	repo repositories.IRecipeRepository
}

// NewRecipeService tworzy serwis na globalnym połączeniu.
func NewRecipeService() IRecipeService {
	return &RecipeService{repo: repositories.NewRecipeRepository()}
}

// NewRecipeServiceWithDB tworzy serwis na podanym połączeniu (testy).
func NewRecipeServiceWithDB(db *gorm.DB) IRecipeService {
	return &RecipeService{repo: repositories.NewRecipeRepositoryTx(db)}
}

// CreateRecipe zapisuje recepturę wraz z listą składników jednym wywołaniem.
// Kroki przyjmowane są jako surowy JSON i walidowane dopiero przy ekspansji
// zadań (historyczne dane bywają niepoprawne, import ich nie odrzucał).
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if recipe == nil || recipe.Name == "" {
		return nil, ErrRecipeNameRequired
	}
	if existing, err := s.repo.FindByName(ctx, recipe.Name); err == nil && existing != nil {
		return nil, ErrRecipeNameTaken
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if recipe.Type == "" {
		recipe.Type = models.RecipeTypeHalfProduct
	}

	if err := s.repo.Create(ctx, recipe); err != nil {
		configslog.Log.Error("CreateRecipe: błąd zapisu", zap.String("nazwa", recipe.Name), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Utworzono recepturę %q (ID %d, składników: %d)",
		recipe.Name, recipe.ID, len(recipe.Ingredients))
	return recipe, nil
}

func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) ListRecipes(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	recipes, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: recipes,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, updates *models.Recipe) (*models.Recipe, error) {
	if updates == nil || updates.Name == "" {
		return nil, ErrRecipeNameRequired
	}
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if updates.Name != recipe.Name {
		if existing, err := s.repo.FindByName(ctx, updates.Name); err == nil && existing != nil {
			return nil, ErrRecipeNameTaken
		} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}

	recipe.Name = updates.Name
	recipe.Type = updates.Type
	recipe.YieldAmount = updates.YieldAmount
	recipe.YieldUnit = updates.YieldUnit
	recipe.Description = updates.Description
	recipe.Vegetarian = updates.Vegetarian
	recipe.Vegan = updates.Vegan
	recipe.Steps = updates.Steps
	recipe.Ingredients = nil

	if err := s.repo.Update(ctx, recipe); err != nil {
		configslog.Log.Error("UpdateRecipe: błąd zapisu", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	if updates.Ingredients != nil {
		if err := s.repo.ReplaceIngredients(ctx, recipe.ID, updates.Ingredients); err != nil {
			configslog.Log.Error("UpdateRecipe: błąd wymiany składników", zap.Uint("id", id), zap.Error(err))
			return nil, &PartialFailureError{Step: "wymiana składników", Err: err}
		}
	}
	return s.GetRecipe(ctx, id)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	return nil
}

var _ IRecipeService = (*RecipeService)(nil)
