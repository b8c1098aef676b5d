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

// IEventRepository operacje bazodanowe na wydarzeniach i ich dniach.
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	// FindByIDDeep ładuje pełne drzewo: dni -> sekcje -> dania sekcji -> zadania.
	FindByIDDeep(ctx context.Context, id uint) (*models.Event, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Event, int64, error)
	Update(ctx context.Context, event *models.Event) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error

	CreateDays(ctx context.Context, days []models.EventDay) error
	FindDayByID(ctx context.Context, id uint) (*models.EventDay, error)
	FindDaysByEventID(ctx context.Context, eventID uint) ([]models.EventDay, error)
}

// EventRepository implementuje IEventRepository.
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository tworzy repozytorium na globalnym połączeniu.
func NewEventRepository() IEventRepository {
	return &EventRepository{db: configs.GetDB()}
}

// NewEventRepositoryTx wariant działający na podanej transakcji.
func NewEventRepositoryTx(tx *gorm.DB) IEventRepository {
	return &EventRepository{db: tx}
}

func (r *EventRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event == nil || event.Name == "" {
		return errors.New("wydarzenie bez nazwy nie może być zapisane")
	}
	return r.getDB(ctx).Omit("Days").Create(event).Error
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	if id == 0 {
		return nil, errors.New("nieprawidłowe ID wydarzenia")
	}
	var event models.Event
	err := r.getDB(ctx).First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventRepository.FindByID: błąd DB", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) FindByIDDeep(ctx context.Context, id uint) (*models.Event, error) {
	if id == 0 {
		return nil, errors.New("nieprawidłowe ID wydarzenia")
	}
	var event models.Event
	err := r.getDB(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("kolejnosc asc") }).
		Preload("Days.Sections", func(db *gorm.DB) *gorm.DB { return db.Order("kolejnosc asc") }).
		Preload("Days.Sections.Dishes", func(db *gorm.DB) *gorm.DB { return db.Order("kolejnosc asc") }).
		Preload("Days.Sections.Dishes.Dish").
		Preload("Days.Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("kolejnosc asc") }).
		First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventRepository.FindByIDDeep: błąd DB", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Event, int64, error) {
	var events []models.Event
	var totalCount int64
	db := r.getDB(ctx)

	query := db.Model(&models.Event{})
	if params.Name != "" {
		query = query.Where("nazwa ILIKE ?", "%"+params.Name+"%")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("data_od desc").Limit(params.PerPage).Offset(params.Offset()).Find(&events).Error
	if err != nil {
		configslog.Log.Error("EventRepository.FindAllPaginated: błąd DB", zap.Error(err))
		return nil, 0, err
	}
	return events, totalCount, nil
}

func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	if event == nil || event.ID == 0 {
		return errors.New("nieprawidłowe wydarzenie do aktualizacji")
	}
	return r.getDB(ctx).Omit("Days").Save(event).Error
}

// UpdateStatus zmienia sam status (archiwizacja przy listowaniu).
func (r *EventRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if id == 0 {
		return errors.New("nieprawidłowe ID wydarzenia")
	}
	result := r.getDB(ctx).Model(&models.Event{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete usuwa wydarzenie wraz z całym poddrzewem (dni, sekcje, dania, zadania).
func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("nieprawidłowe ID wydarzenia")
	}
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		var dayIDs []uint
		if err := tx.Model(&models.EventDay{}).Where("event_id = ?", id).Pluck("id", &dayIDs).Error; err != nil {
			return err
		}
		if len(dayIDs) > 0 {
			var sectionIDs []uint
			if err := tx.Model(&models.EventSection{}).Where("day_id IN ?", dayIDs).Pluck("id", &sectionIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("day_id IN ?", dayIDs).Delete(&models.EventTask{}).Error; err != nil {
				return err
			}
			if len(sectionIDs) > 0 {
				if err := tx.Where("section_id IN ?", sectionIDs).Delete(&models.SectionDish{}).Error; err != nil {
					return err
				}
				if err := tx.Where("id IN ?", sectionIDs).Delete(&models.EventSection{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("event_id = ?", id).Delete(&models.EventDay{}).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&models.Event{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// CreateDays zapisuje dni wydarzenia jednym insertem.
func (r *EventRepository) CreateDays(ctx context.Context, days []models.EventDay) error {
	if len(days) == 0 {
		return nil
	}
	return r.getDB(ctx).Create(&days).Error
}

func (r *EventRepository) FindDayByID(ctx context.Context, id uint) (*models.EventDay, error) {
	if id == 0 {
		return nil, errors.New("nieprawidłowe ID dnia")
	}
	var day models.EventDay
	err := r.getDB(ctx).First(&day, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &day, nil
}

func (r *EventRepository) FindDaysByEventID(ctx context.Context, eventID uint) ([]models.EventDay, error) {
	if eventID == 0 {
		return nil, errors.New("nieprawidłowe ID wydarzenia")
	}
	var days []models.EventDay
	err := r.getDB(ctx).Where("event_id = ?", eventID).Order("kolejnosc asc").Find(&days).Error
	if err != nil {
		configslog.Log.Error("EventRepository.FindDaysByEventID: błąd DB", zap.Uint("eventID", eventID), zap.Error(err))
		return nil, err
	}
	return days, nil
}

var _ IEventRepository = (*EventRepository)(nil)
