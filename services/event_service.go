package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chefsystem.pl/configs"
	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/models"
	"chefsystem.pl/pkg/queryparams"
	"chefsystem.pl/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventServiceError błędy domenowe serwisu wydarzeń.
type EventServiceError string

func (e EventServiceError) Error() string { return string(e) }

const (
	ErrEventNotFound          EventServiceError = "wydarzenie nie znalezione"
	ErrEventNameRequired      EventServiceError = "nazwa wydarzenia jest wymagana"
	ErrEventInvalidDateRange  EventServiceError = "data rozpoczęcia jest późniejsza niż data zakończenia"
	ErrEventCreationFailed    EventServiceError = "nie udało się utworzyć wydarzenia"
	ErrEventUpdateFailed      EventServiceError = "nie udało się zaktualizować wydarzenia"
	ErrEventDeletionFailed    EventServiceError = "nie udało się usunąć wydarzenia"
	ErrEventDuplicationFailed EventServiceError = "nie udało się zduplikować wydarzenia"
)

// ProductionDayName nazwa syntetycznego dnia przygotowań.
const ProductionDayName = "Produkcja"

// IEventService operacje na wydarzeniach cateringowych.
type IEventService interface {
	CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	// ListEvents listuje wydarzenia i przy okazji archiwizuje te zakończone
	// ponad dzień temu (udokumentowany efekt uboczny odczytu).
	ListEvents(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateEvent(ctx context.Context, id uint, updates *models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	DuplicateEvent(ctx context.Context, id uint) (*models.Event, error)
	ListEventDays(ctx context.Context, eventID uint) ([]models.EventDay, error)
}

// EventService implementuje IEventService.
type EventService struct {
	repo     repositories.IEventRepository
	taskRepo repositories.IEventTaskRepository
	db       *gorm.DB
}

// NewEventService tworzy serwis na globalnym połączeniu.
func NewEventService() IEventService {
	return NewEventServiceWithDB(configs.GetDB())
}

// NewEventServiceWithDB tworzy serwis na podanym połączeniu (testy, migracje).
func NewEventServiceWithDB(db *gorm.DB) IEventService {
	return &EventService{
		repo:     repositories.NewEventRepositoryTx(db),
		taskRepo: repositories.NewEventTaskRepositoryTx(db),
		db:       db,
	}
}

var polishWeekdays = [...]string{
	"Niedziela", "Poniedziałek", "Wtorek", "Środa", "Czwartek", "Piątek", "Sobota",
}

// DayLabel etykieta dnia kalendarzowego: polski dzień tygodnia + data.
func DayLabel(date time.Time) string {
	return fmt.Sprintf("%s %s", polishWeekdays[int(date.Weekday())], date.Format("02.01.2006"))
}

// truncateToDay sprowadza datę do północy UTC; pola data_od/data_do
// są datami bez komponentu czasu.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildEventDays generuje opisy dni wydarzenia: najpierw syntetyczny dzień
// "Produkcja" (data NULL, kolejnosc -1), potem po jednym dniu na każdą datę
// z zakresu [from, to] (kolejnosc 0..N). Zakres musi być już zwalidowany.
func BuildEventDays(eventID uint, from, to time.Time) []models.EventDay {
	days := []models.EventDay{{
		EventID:  eventID,
		Date:     nil,
		Name:     ProductionDayName,
		Position: models.ProductionDayOrder,
	}}

	position := 0
	for d := truncateToDay(from); !d.After(truncateToDay(to)); d = d.AddDate(0, 0, 1) {
		date := d
		days = append(days, models.EventDay{
			EventID:  eventID,
			Date:     &date,
			Name:     DayLabel(d),
			Position: position,
		})
		position++
	}
	return days
}

// CreateEvent waliduje zakres dat, zapisuje wydarzenie i generuje jego dni.
// Całość w jednej transakcji: nieudane generowanie dni wycofuje też samo
// wydarzenie, żeby nie zostawić wydarzenia bez dni.
func (s *EventService) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if event == nil || event.Name == "" {
		return nil, ErrEventNameRequired
	}
	if truncateToDay(event.DateFrom).After(truncateToDay(event.DateTo)) {
		return nil, ErrEventInvalidDateRange
	}
	if event.Status == "" {
		event.Status = models.EventStatusDraft
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewEventRepositoryTx(tx)

		if err := repoTx.Create(ctx, event); err != nil {
			configslog.Log.Error("CreateEvent: błąd zapisu wydarzenia", zap.Error(err))
			return fmt.Errorf("%w: %v", ErrEventCreationFailed, err)
		}

		days := BuildEventDays(event.ID, event.DateFrom, event.DateTo)
		if err := repoTx.CreateDays(ctx, days); err != nil {
			configslog.Log.Error("CreateEvent: błąd generowania dni",
				zap.Uint("eventID", event.ID), zap.Error(err))
			return &PartialFailureError{Step: "generowanie dni", Err: err}
		}
		event.Days = days
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Utworzono wydarzenie %q (ID %d, dni: %d)", event.Name, event.ID, len(event.Days))
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.repo.FindByIDDeep(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// ListEvents zwraca stronę wydarzeń. Wydarzenia zakończone ponad jeden dzień
// kalendarzowy temu i jeszcze nie zarchiwizowane dostają status
// "zarchiwizowane" w trakcie odczytu.
func (s *EventService) ListEvents(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	events, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("ListEvents: błąd pobierania", zap.Error(err))
		return nil, err
	}

	archiveBefore := truncateToDay(time.Now()).AddDate(0, 0, -1)
	for i := range events {
		if events[i].Status == models.EventStatusArchived {
			continue
		}
		if truncateToDay(events[i].DateTo).Before(archiveBefore) {
			if err := s.repo.UpdateStatus(ctx, events[i].ID, models.EventStatusArchived); err != nil {
				configslog.Log.Warn("ListEvents: archiwizacja nie powiodła się",
					zap.Uint("eventID", events[i].ID), zap.Error(err))
				continue
			}
			events[i].Status = models.EventStatusArchived
		}
	}

	return &queryparams.PaginatedResult{
		Data: events,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// UpdateEvent aktualizuje pola podstawowe wydarzenia. Zmiana zakresu dat nie
// przegenerowuje dni — dni raz utworzone żyją własnym życiem.
func (s *EventService) UpdateEvent(ctx context.Context, id uint, updates *models.Event) (*models.Event, error) {
	if updates == nil || updates.Name == "" {
		return nil, ErrEventNameRequired
	}
	if truncateToDay(updates.DateFrom).After(truncateToDay(updates.DateTo)) {
		return nil, ErrEventInvalidDateRange
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	event.Name = updates.Name
	event.Type = updates.Type
	event.DateFrom = updates.DateFrom
	event.DateTo = updates.DateTo
	event.Adults = updates.Adults
	event.Children = updates.Children
	event.Seniors = updates.Seniors
	event.Location = updates.Location
	event.Notes = updates.Notes
	if updates.Status != "" {
		event.Status = updates.Status
	}

	if err := s.repo.Update(ctx, event); err != nil {
		configslog.Log.Error("UpdateEvent: błąd zapisu", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrEventUpdateFailed, err)
	}
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		configslog.Log.Error("DeleteEvent: błąd usuwania", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrEventDeletionFailed, err)
	}
	configslog.SLog.Infof("Usunięto wydarzenie ID %d wraz z poddrzewem", id)
	return nil
}

// DuplicateEvent kopiuje wydarzenie z całym poddrzewem dni, sekcji i dań.
// Z zadań kopiowane są wyłącznie te ze źródłem "custom" — zadania recepturowe
// nie są kopiowane i NIE są tu ponownie generowane; odtworzą się dopiero przy
// ponownym dodaniu dania do sekcji (świadomie zaakceptowana luka).
func (s *EventService) DuplicateEvent(ctx context.Context, id uint) (*models.Event, error) {
	source, err := s.repo.FindByIDDeep(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	var copied *models.Event
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewEventRepositoryTx(tx)
		sectionRepoTx := repositories.NewSectionRepositoryTx(tx)
		taskRepoTx := repositories.NewEventTaskRepositoryTx(tx)

		clone := models.Event{
			Name:     source.Name + " (kopia)",
			Type:     source.Type,
			DateFrom: source.DateFrom,
			DateTo:   source.DateTo,
			Adults:   source.Adults,
			Children: source.Children,
			Seniors:  source.Seniors,
			Location: source.Location,
			Notes:    source.Notes,
			Status:   models.EventStatusDraft,
		}
		if err := repoTx.Create(ctx, &clone); err != nil {
			return fmt.Errorf("%w: %v", ErrEventDuplicationFailed, err)
		}

		for di := range source.Days {
			srcDay := source.Days[di]
			newDays := []models.EventDay{{
				EventID:  clone.ID,
				Date:     srcDay.Date,
				Name:     srcDay.Name,
				Position: srcDay.Position,
			}}
			if err := repoTx.CreateDays(ctx, newDays); err != nil {
				return &PartialFailureError{Step: "kopiowanie dni", Err: err}
			}
			newDayID := newDays[0].ID

			for si := range srcDay.Sections {
				srcSection := srcDay.Sections[si]
				newSection := models.EventSection{
					DayID:       newDayID,
					Name:        srcSection.Name,
					TimeFrom:    srcSection.TimeFrom,
					TimeTo:      srcSection.TimeTo,
					ServiceKind: srcSection.ServiceKind,
					Portions:    srcSection.Portions,
					Position:    srcSection.Position,
				}
				if err := sectionRepoTx.CreateSection(ctx, &newSection); err != nil {
					return &PartialFailureError{Step: "kopiowanie sekcji", Err: err}
				}

				for ddi := range srcSection.Dishes {
					srcDish := srcSection.Dishes[ddi]
					newSD := models.SectionDish{
						SectionID: newSection.ID,
						DishID:    srcDish.DishID,
						Portions:  srcDish.Portions,
						Position:  srcDish.Position,
					}
					if err := sectionRepoTx.CreateSectionDish(ctx, &newSD); err != nil {
						return &PartialFailureError{Step: "kopiowanie dań sekcji", Err: err}
					}
				}
			}

			var customTasks []models.EventTask
			for ti := range srcDay.Tasks {
				srcTask := srcDay.Tasks[ti]
				if srcTask.Source != models.TaskSourceCustom {
					continue
				}
				customTasks = append(customTasks, models.EventTask{
					DayID:    newDayID,
					Text:     srcTask.Text,
					Done:     false,
					DueDate:  srcTask.DueDate,
					Source:   models.TaskSourceCustom,
					Position: srcTask.Position,
				})
			}
			if err := taskRepoTx.CreateBatch(ctx, customTasks); err != nil {
				return &PartialFailureError{Step: "kopiowanie zadań", Err: err}
			}
		}

		copied = &clone
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("DuplicateEvent: transakcja nie powiodła się",
			zap.Uint("sourceID", id), zap.Error(txErr))
		return nil, txErr
	}

	configslog.SLog.Infof("Zduplikowano wydarzenie ID %d -> ID %d", id, copied.ID)
	return s.repo.FindByIDDeep(ctx, copied.ID)
}

// ListEventDays zwraca dni wydarzenia posortowane od dnia produkcji.
func (s *EventService) ListEventDays(ctx context.Context, eventID uint) ([]models.EventDay, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return s.repo.FindDaysByEventID(ctx, eventID)
}

var _ IEventService = (*EventService)(nil)
