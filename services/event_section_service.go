package services

import (
	"context"
	"errors"

	"chefsystem.pl/configs"
	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/models"
	"chefsystem.pl/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventSectionServiceError błędy domenowe serwisu sekcji.
type EventSectionServiceError string

func (e EventSectionServiceError) Error() string { return string(e) }

const (
	ErrSectionNameRequired   EventSectionServiceError = "nazwa sekcji jest wymagana"
	ErrSectionDayNotFound    EventSectionServiceError = "dzień wydarzenia nie znaleziony"
	ErrSectionDeletionFailed EventSectionServiceError = "nie udało się usunąć sekcji"
)

// IEventSectionService zarządzanie sekcjami serwisowymi dnia.
type IEventSectionService interface {
	CreateSection(ctx context.Context, dayID uint, section *models.EventSection) (*models.EventSection, error)
	GetSection(ctx context.Context, id uint) (*models.EventSection, error)
	ListSectionsForDay(ctx context.Context, dayID uint) ([]models.EventSection, error)
	UpdateSection(ctx context.Context, id uint, updates *models.EventSection) (*models.EventSection, error)
	// DeleteSection usuwa sekcję z jej daniami i wygenerowanymi z nich zadaniami.
	DeleteSection(ctx context.Context, id uint) error
}

// EventSectionService implementuje IEventSectionService.
type EventSectionService struct {
	sectionRepo repositories.ISectionRepository
	eventRepo   repositories.IEventRepository
	db          *gorm.DB
}

// NewEventSectionService tworzy serwis na globalnym połączeniu.
func NewEventSectionService() IEventSectionService {
	return NewEventSectionServiceWithDB(configs.GetDB())
}

// NewEventSectionServiceWithDB tworzy serwis na podanym połączeniu (testy).
func NewEventSectionServiceWithDB(db *gorm.DB) IEventSectionService {
	return &EventSectionService{
		sectionRepo: repositories.NewSectionRepositoryTx(db),
		eventRepo:   repositories.NewEventRepositoryTx(db),
		db:          db,
	}
}

func (s *EventSectionService) CreateSection(ctx context.Context, dayID uint, section *models.EventSection) (*models.EventSection, error) {
	if section == nil || section.Name == "" {
		return nil, ErrSectionNameRequired
	}
	if _, err := s.eventRepo.FindDayByID(ctx, dayID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSectionDayNotFound
		}
		return nil, err
	}

	section.DayID = dayID
	if err := s.sectionRepo.CreateSection(ctx, section); err != nil {
		configslog.Log.Error("CreateSection: błąd zapisu", zap.Uint("dayID", dayID), zap.Error(err))
		return nil, err
	}
	return section, nil
}

func (s *EventSectionService) GetSection(ctx context.Context, id uint) (*models.EventSection, error) {
	section, err := s.sectionRepo.FindSectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return section, nil
}

func (s *EventSectionService) ListSectionsForDay(ctx context.Context, dayID uint) ([]models.EventSection, error) {
	if _, err := s.eventRepo.FindDayByID(ctx, dayID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSectionDayNotFound
		}
		return nil, err
	}
	return s.sectionRepo.FindSectionsByDayID(ctx, dayID)
}

func (s *EventSectionService) UpdateSection(ctx context.Context, id uint, updates *models.EventSection) (*models.EventSection, error) {
	if updates == nil || updates.Name == "" {
		return nil, ErrSectionNameRequired
	}
	section, err := s.sectionRepo.FindSectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	section.Name = updates.Name
	section.TimeFrom = updates.TimeFrom
	section.TimeTo = updates.TimeTo
	section.ServiceKind = updates.ServiceKind
	section.Portions = updates.Portions
	if updates.Position != 0 {
		section.Position = updates.Position
	}
	section.Dishes = nil

	if err := s.sectionRepo.UpdateSection(ctx, section); err != nil {
		configslog.Log.Error("UpdateSection: błąd zapisu", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return section, nil
}

// DeleteSection usuwa w jednej transakcji: zadania wygenerowane z dań tej
// sekcji (po referencji zwrotnej), dania sekcji i samą sekcję.
func (s *EventSectionService) DeleteSection(ctx context.Context, id uint) error {
	if _, err := s.sectionRepo.FindSectionByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSectionNotFound
		}
		return err
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		sectionRepoTx := repositories.NewSectionRepositoryTx(tx)
		taskRepoTx := repositories.NewEventTaskRepositoryTx(tx)

		dishes, err := sectionRepoTx.FindSectionDishesBySectionID(ctx, id)
		if err != nil {
			return err
		}
		dishIDs := make([]uint, 0, len(dishes))
		for i := range dishes {
			dishIDs = append(dishIDs, dishes[i].ID)
		}

		if err := taskRepoTx.DeleteBySectionDishIDs(ctx, dishIDs); err != nil {
			return &PartialFailureError{Step: "kasowanie zadań", Err: err}
		}
		for _, sdID := range dishIDs {
			if err := sectionRepoTx.DeleteSectionDish(ctx, sdID); err != nil {
				return &PartialFailureError{Step: "kasowanie dań sekcji", Err: err}
			}
		}
		if err := sectionRepoTx.DeleteSection(ctx, id); err != nil {
			return &PartialFailureError{Step: "kasowanie sekcji", Err: err}
		}
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("DeleteSection: transakcja nie powiodła się",
			zap.Uint("id", id), zap.Error(txErr))
		return txErr
	}

	configslog.SLog.Infof("Usunięto sekcję ID %d wraz z daniami i zadaniami", id)
	return nil
}

var _ IEventSectionService = (*EventSectionService)(nil)
