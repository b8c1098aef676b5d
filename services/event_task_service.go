package services

import (
	"context"
	"errors"
	"fmt"

	"chefsystem.pl/configs"
	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/models"
	"chefsystem.pl/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventTaskServiceError błędy domenowe serwisu zadań.
type EventTaskServiceError string

func (e EventTaskServiceError) Error() string { return string(e) }

const (
	ErrTaskNotFound        EventTaskServiceError = "zadanie nie znalezione"
	ErrTaskTextRequired    EventTaskServiceError = "treść zadania jest wymagana"
	ErrTaskNotDeletable    EventTaskServiceError = "zadania recepturowego nie można usunąć bezpośrednio; zniknie po zdjęciu dania z sekcji"
	ErrTaskDayNotFound     EventTaskServiceError = "dzień wydarzenia nie znaleziony"
	ErrSectionNotFound     EventTaskServiceError = "sekcja nie znaleziona"
	ErrSectionDishNotFound EventTaskServiceError = "danie sekcji nie znalezione"
	ErrTaskDishNotFound    EventTaskServiceError = "danie nie znalezione"
)

// IEventTaskService dodawanie dań do sekcji, generowanie zadań z receptur
// i cykl życia zadań.
type IEventTaskService interface {
	// AttachDishToSection dopisuje danie do sekcji i generuje zadania
	// przygotowania z kroków wszystkich receptur tego dania.
	AttachDishToSection(ctx context.Context, sectionID, dishID uint, portions *int) (*models.SectionDish, error)
	// DetachDishFromSection zdejmuje danie z sekcji i kasuje wyłącznie
	// zadania z referencją zwrotną do tego dania sekcji.
	DetachDishFromSection(ctx context.Context, sectionDishID uint) error
	CreateTask(ctx context.Context, dayID uint, task *models.EventTask) (*models.EventTask, error)
	UpdateTask(ctx context.Context, id uint, updates *models.EventTask) (*models.EventTask, error)
	DeleteTask(ctx context.Context, id uint) error
	ListTasksForDay(ctx context.Context, dayID uint) ([]models.EventTask, error)
}

// EventTaskService implementuje IEventTaskService.
type EventTaskService struct {
	taskRepo    repositories.IEventTaskRepository
	sectionRepo repositories.ISectionRepository
	eventRepo   repositories.IEventRepository
	dishRepo    repositories.IDishRepository
	db          *gorm.DB
}

// NewEventTaskService tworzy serwis na globalnym połączeniu.
func NewEventTaskService() IEventTaskService {
	return NewEventTaskServiceWithDB(configs.GetDB())
}

// NewEventTaskServiceWithDB tworzy serwis na podanym połączeniu (testy).
func NewEventTaskServiceWithDB(db *gorm.DB) IEventTaskService {
	return &EventTaskService{
		taskRepo:    repositories.NewEventTaskRepositoryTx(db),
		sectionRepo: repositories.NewSectionRepositoryTx(db),
		eventRepo:   repositories.NewEventRepositoryTx(db),
		dishRepo:    repositories.NewDishRepositoryTx(db),
		db:          db,
	}
}

// buildRecipeTasks materializuje zadania z kroków receptur dania.
// Receptury bez poprawnej, niepustej listy kroków są pomijane z logiem —
// to stan odzyskiwalny per receptura, nie błąd całej operacji.
func buildRecipeTasks(dish *models.Dish, dayID uint, sectionDishID uint) []models.EventTask {
	var tasks []models.EventTask
	for ci := range dish.Components {
		component := dish.Components[ci]
		if component.Type != models.ComponentTypeRecipe || component.RecipeID == nil || component.Recipe == nil {
			continue
		}
		recipe := component.Recipe

		steps, err := ParseInstructionSteps(recipe.Steps)
		if err != nil {
			configslog.SLog.Warnf("Pomijam recepturę %q (ID %d): %v", recipe.Name, recipe.ID, err)
			continue
		}

		recipeID := recipe.ID
		sdID := sectionDishID
		for i, step := range steps {
			tasks = append(tasks, models.EventTask{
				DayID:         dayID,
				SectionDishID: &sdID,
				Text:          fmt.Sprintf("%s [%s]", step.Display(), recipe.Name),
				Done:          false,
				Source:        models.TaskSourceRecipe,
				RecipeID:      &recipeID,
				Position:      i + 1,
			})
		}
	}
	return tasks
}

// AttachDishToSection tworzy wpis dania w sekcji, po czym jednym insertem
// zapisuje wszystkie zadania wygenerowane z receptur. Całość w transakcji —
// nieudane generowanie zadań wycofuje też wpis dania.
func (s *EventTaskService) AttachDishToSection(ctx context.Context, sectionID, dishID uint, portions *int) (*models.SectionDish, error) {
	section, err := s.sectionRepo.FindSectionByID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	dish, err := s.dishRepo.FindByIDDeep(ctx, dishID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskDishNotFound
		}
		return nil, err
	}

	var created *models.SectionDish
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		sectionRepoTx := repositories.NewSectionRepositoryTx(tx)
		taskRepoTx := repositories.NewEventTaskRepositoryTx(tx)

		sd := models.SectionDish{
			SectionID: section.ID,
			DishID:    dish.ID,
			Portions:  portions,
			Position:  len(section.Dishes),
		}
		if err := sectionRepoTx.CreateSectionDish(ctx, &sd); err != nil {
			configslog.Log.Error("AttachDishToSection: błąd zapisu dania sekcji",
				zap.Uint("sectionID", sectionID), zap.Uint("dishID", dishID), zap.Error(err))
			return err
		}

		tasks := buildRecipeTasks(dish, section.DayID, sd.ID)
		if err := taskRepoTx.CreateBatch(ctx, tasks); err != nil {
			configslog.Log.Error("AttachDishToSection: błąd generowania zadań",
				zap.Uint("sectionDishID", sd.ID), zap.Error(err))
			return &PartialFailureError{Step: "generowanie zadań", Err: err}
		}

		configslog.SLog.Infof("Dodano danie %q do sekcji %d, wygenerowano %d zadań",
			dish.Name, sectionID, len(tasks))
		created = &sd
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return created, nil
}

// DetachDishFromSection kasuje zadania po referencji zwrotnej do dania sekcji
// (zadania z tej samej receptury dodanej przez INNE danie sekcji zostają),
// a następnie samo danie sekcji.
func (s *EventTaskService) DetachDishFromSection(ctx context.Context, sectionDishID uint) error {
	sd, err := s.sectionRepo.FindSectionDishByID(ctx, sectionDishID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSectionDishNotFound
		}
		return err
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		sectionRepoTx := repositories.NewSectionRepositoryTx(tx)
		taskRepoTx := repositories.NewEventTaskRepositoryTx(tx)

		if err := taskRepoTx.DeleteBySectionDishID(ctx, sd.ID); err != nil {
			return &PartialFailureError{Step: "kasowanie zadań", Err: err}
		}
		if err := sectionRepoTx.DeleteSectionDish(ctx, sd.ID); err != nil {
			return &PartialFailureError{Step: "kasowanie dania sekcji", Err: err}
		}
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("DetachDishFromSection: transakcja nie powiodła się",
			zap.Uint("sectionDishID", sectionDishID), zap.Error(txErr))
		return txErr
	}

	configslog.SLog.Infof("Zdjęto danie sekcji ID %d wraz z wygenerowanymi zadaniami", sectionDishID)
	return nil
}

// CreateTask tworzy zadanie użytkownika. Źródło jest wymuszane na "custom" —
// zadań recepturowych nie tworzy się ręcznie.
func (s *EventTaskService) CreateTask(ctx context.Context, dayID uint, task *models.EventTask) (*models.EventTask, error) {
	if task == nil || task.Text == "" {
		return nil, ErrTaskTextRequired
	}
	if _, err := s.eventRepo.FindDayByID(ctx, dayID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskDayNotFound
		}
		return nil, err
	}

	task.DayID = dayID
	task.Source = models.TaskSourceCustom
	task.SectionDishID = nil
	task.RecipeID = nil

	if err := s.taskRepo.Create(ctx, task); err != nil {
		configslog.Log.Error("CreateTask: błąd zapisu", zap.Uint("dayID", dayID), zap.Error(err))
		return nil, err
	}
	return task, nil
}

// UpdateTask pozwala przenieść zadanie na inny dzień oraz zmienić treść,
// termin, flagę wykonania i kolejność. Źródło i receptura źródłowa są
// niemutowalne po utworzeniu.
func (s *EventTaskService) UpdateTask(ctx context.Context, id uint, updates *models.EventTask) (*models.EventTask, error) {
	if updates == nil {
		return nil, ErrTaskTextRequired
	}
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if updates.DayID != 0 && updates.DayID != task.DayID {
		if _, err := s.eventRepo.FindDayByID(ctx, updates.DayID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrTaskDayNotFound
			}
			return nil, err
		}
		task.DayID = updates.DayID
	}
	if updates.Text != "" {
		task.Text = updates.Text
	}
	task.Done = updates.Done
	task.DueDate = updates.DueDate
	if updates.Position != 0 {
		task.Position = updates.Position
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		configslog.Log.Error("UpdateTask: błąd zapisu", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return task, nil
}

// DeleteTask usuwa zadanie użytkownika. Zadanie recepturowe odrzuca —
// może zniknąć wyłącznie jako skutek zdjęcia dania z sekcji.
func (s *EventTaskService) DeleteTask(ctx context.Context, id uint) error {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	if task.Source == models.TaskSourceRecipe {
		return ErrTaskNotDeletable
	}
	return s.taskRepo.Delete(ctx, id)
}

func (s *EventTaskService) ListTasksForDay(ctx context.Context, dayID uint) ([]models.EventTask, error) {
	if _, err := s.eventRepo.FindDayByID(ctx, dayID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskDayNotFound
		}
		return nil, err
	}
	return s.taskRepo.FindByDayID(ctx, dayID)
}

var _ IEventTaskService = (*EventTaskService)(nil)
