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

// GroupServiceError błędy domenowe serwisu grup.
type GroupServiceError string

func (e GroupServiceError) Error() string { return string(e) }

const (
	ErrGroupNotFound     GroupServiceError = "grupa nie znaleziona"
	ErrGroupNameRequired GroupServiceError = "nazwa grupy jest wymagana"
	ErrGroupMealNotFound GroupServiceError = "posiłek nie znaleziony"
	ErrGroupMealInvalid  GroupServiceError = "posiłek wymaga dnia (>= 1) i dania"
)

// IGroupService CRUD na grupach żywieniowych i ich posiłkach.
type IGroupService interface {
	CreateGroup(ctx context.Context, group *models.Group) (*models.Group, error)
	GetGroup(ctx context.Context, id uint) (*models.Group, error)
	ListGroups(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateGroup(ctx context.Context, id uint, updates *models.Group) (*models.Group, error)
	DeleteGroup(ctx context.Context, id uint) error

	AddMeal(ctx context.Context, groupID uint, meal *models.GroupMeal) (*models.GroupMeal, error)
	DeleteMeal(ctx context.Context, mealID uint) error
}

// GroupService implementuje IGroupService.
type GroupService struct {
	repo     repositories.IGroupRepository
	dishRepo repositories.IDishRepository
}

// NewGroupService tworzy serwis na globalnym połączeniu.
func NewGroupService() IGroupService {
	return &GroupService{
		repo:     repositories.NewGroupRepository(),
		dishRepo: repositories.NewDishRepository(),
	}
}

// NewGroupServiceWithDB tworzy serwis na podanym połączeniu (testy).
func NewGroupServiceWithDB(db *gorm.DB) IGroupService {
	return &GroupService{
		repo:     repositories.NewGroupRepositoryTx(db),
		dishRepo: repositories.NewDishRepositoryTx(db),
	}
}

func (s *GroupService) CreateGroup(ctx context.Context, group *models.Group) (*models.Group, error) {
	if group == nil || group.Name == "" {
		return nil, ErrGroupNameRequired
	}
	if err := s.repo.Create(ctx, group); err != nil {
		configslog.Log.Error("CreateGroup: błąd zapisu", zap.String("nazwa", group.Name), zap.Error(err))
		return nil, err
	}
	return group, nil
}

func (s *GroupService) GetGroup(ctx context.Context, id uint) (*models.Group, error) {
	group, err := s.repo.FindByIDWithMeals(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

func (s *GroupService) ListGroups(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	groups, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: groups,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *GroupService) UpdateGroup(ctx context.Context, id uint, updates *models.Group) (*models.Group, error) {
	if updates == nil || updates.Name == "" {
		return nil, ErrGroupNameRequired
	}
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	group.Name = updates.Name
	group.Adults = updates.Adults
	group.Children = updates.Children
	group.Seniors = updates.Seniors
	group.Notes = updates.Notes

	if err := s.repo.Update(ctx, group); err != nil {
		configslog.Log.Error("UpdateGroup: błąd zapisu", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return group, nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGroupNotFound
		}
		return err
	}
	return nil
}

func (s *GroupService) AddMeal(ctx context.Context, groupID uint, meal *models.GroupMeal) (*models.GroupMeal, error) {
	if meal == nil || meal.DayNo < 1 || meal.DishID == 0 {
		return nil, ErrGroupMealInvalid
	}
	if _, err := s.repo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	if _, err := s.dishRepo.FindByID(ctx, meal.DishID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}

	meal.GroupID = groupID
	if err := s.repo.CreateMeal(ctx, meal); err != nil {
		configslog.Log.Error("AddMeal: błąd zapisu", zap.Uint("groupID", groupID), zap.Error(err))
		return nil, err
	}
	return meal, nil
}

func (s *GroupService) DeleteMeal(ctx context.Context, mealID uint) error {
	if err := s.repo.DeleteMeal(ctx, mealID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGroupMealNotFound
		}
		return err
	}
	return nil
}

var _ IGroupService = (*GroupService)(nil)
