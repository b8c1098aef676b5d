package repositories

import (
	"context"
	"errors"

	"chefsystem.pl/configs"
	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IEventTaskRepository operacje bazodanowe na zadaniach wydarzenia.
type IEventTaskRepository interface {
	Create(ctx context.Context, task *models.EventTask) error
	CreateBatch(ctx context.Context, tasks []models.EventTask) error
	FindByID(ctx context.Context, id uint) (*models.EventTask, error)
	FindByDayID(ctx context.Context, dayID uint) ([]models.EventTask, error)
	FindBySectionDishID(ctx context.Context, sectionDishID uint) ([]models.EventTask, error)
	Update(ctx context.Context, task *models.EventTask) error
	Delete(ctx context.Context, id uint) error
	// DeleteBySectionDishID kasuje wyłącznie zadania z referencją zwrotną
	// do danego dania sekcji (wąska reguła kasowania).
	DeleteBySectionDishID(ctx context.Context, sectionDishID uint) error
	DeleteBySectionDishIDs(ctx context.Context, sectionDishIDs []uint) error
}

// EventTaskRepository implementuje IEventTaskRepository.
type EventTaskRepository struct {
	db *gorm.DB
}

// NewEventTaskRepository tworzy repozytorium na globalnym połączeniu.
func NewEventTaskRepository() IEventTaskRepository {
	return &EventTaskRepository{db: configs.GetDB()}
}

// NewEventTaskRepositoryTx wariant działający na podanej transakcji.
func NewEventTaskRepositoryTx(tx *gorm.DB) IEventTaskRepository {
	return &EventTaskRepository{db: tx}
}

func (r *EventTaskRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *EventTaskRepository) Create(ctx context.Context, task *models.EventTask) error {
	if task == nil || task.DayID == 0 {
		return errors.New("zadanie wymaga dnia")
	}
	return r.getDB(ctx).Create(task).Error
}

// CreateBatch zapisuje wygenerowane zadania jednym insertem.
func (r *EventTaskRepository) CreateBatch(ctx context.Context, tasks []models.EventTask) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.getDB(ctx).Create(&tasks).Error
}

func (r *EventTaskRepository) FindByID(ctx context.Context, id uint) (*models.EventTask, error) {
	if id == 0 {
		return nil, errors.New("nieprawidłowe ID zadania")
	}
	var task models.EventTask
	err := r.getDB(ctx).First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventTaskRepository.FindByID: błąd DB", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &task, nil
}

func (r *EventTaskRepository) FindByDayID(ctx context.Context, dayID uint) ([]models.EventTask, error) {
	if dayID == 0 {
		return nil, errors.New("nieprawidłowe ID dnia")
	}
	var tasks []models.EventTask
	err := r.getDB(ctx).Where("day_id = ?", dayID).Order("kolejnosc asc").Find(&tasks).Error
	if err != nil {
		configslog.Log.Error("EventTaskRepository.FindByDayID: błąd DB", zap.Uint("dayID", dayID), zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func (r *EventTaskRepository) FindBySectionDishID(ctx context.Context, sectionDishID uint) ([]models.EventTask, error) {
	if sectionDishID == 0 {
		return nil, errors.New("nieprawidłowe ID dania sekcji")
	}
	var tasks []models.EventTask
	err := r.getDB(ctx).Where("section_dish_id = ?", sectionDishID).Order("kolejnosc asc").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *EventTaskRepository) Update(ctx context.Context, task *models.EventTask) error {
	if task == nil || task.ID == 0 {
		return errors.New("nieprawidłowe zadanie do aktualizacji")
	}
	return r.getDB(ctx).Save(task).Error
}

func (r *EventTaskRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("nieprawidłowe ID zadania")
	}
	result := r.getDB(ctx).Delete(&models.EventTask{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventTaskRepository) DeleteBySectionDishID(ctx context.Context, sectionDishID uint) error {
	if sectionDishID == 0 {
		return errors.New("nieprawidłowe ID dania sekcji")
	}
	return r.getDB(ctx).Where("section_dish_id = ?", sectionDishID).Delete(&models.EventTask{}).Error
}

func (r *EventTaskRepository) DeleteBySectionDishIDs(ctx context.Context, sectionDishIDs []uint) error {
	if len(sectionDishIDs) == 0 {
		return nil
	}
	return r.getDB(ctx).Where("section_dish_id IN ?", sectionDishIDs).Delete(&models.EventTask{}).Error
}

var _ IEventTaskRepository = (*EventTaskRepository)(nil)
