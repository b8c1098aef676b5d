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

// ISectionRepository operacje na sekcjach dnia i daniach sekcji.
type ISectionRepository interface {
	CreateSection(ctx context.Context, section *models.EventSection) error
	FindSectionByID(ctx context.Context, id uint) (*models.EventSection, error)
	FindSectionsByDayID(ctx context.Context, dayID uint) ([]models.EventSection, error)
	UpdateSection(ctx context.Context, section *models.EventSection) error
	DeleteSection(ctx context.Context, id uint) error

	CreateSectionDish(ctx context.Context, sd *models.SectionDish) error
	FindSectionDishByID(ctx context.Context, id uint) (*models.SectionDish, error)
	FindSectionDishesBySectionID(ctx context.Context, sectionID uint) ([]models.SectionDish, error)
	DeleteSectionDish(ctx context.Context, id uint) error
}

// SectionRepository implementuje ISectionRepository.
type SectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository tworzy repozytorium na globalnym połączeniu.
func NewSectionRepository() ISectionRepository {
	return &SectionRepository{db: configs.GetDB()}
}

// NewSectionRepositoryTx wariant działający na podanej transakcji.
func NewSectionRepositoryTx(tx *gorm.DB) ISectionRepository {
	return &SectionRepository{db: tx}
}

func (r *SectionRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *SectionRepository) CreateSection(ctx context.Context, section *models.EventSection) error {
	if section == nil || section.DayID == 0 || section.Name == "" {
		return errors.New("sekcja wymaga dnia i nazwy")
	}
	return r.getDB(ctx).Omit("Dishes").Create(section).Error
}

func (r *SectionRepository) FindSectionByID(ctx context.Context, id uint) (*models.EventSection, error) {
	if id == 0 {
		return nil, errors.New("nieprawidłowe ID sekcji")
	}
	var section models.EventSection
	err := r.getDB(ctx).
		Preload("Dishes", func(db *gorm.DB) *gorm.DB { return db.Order("kolejnosc asc") }).
		Preload("Dishes.Dish").
		First(&section, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SectionRepository.FindSectionByID: błąd DB", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &section, nil
}

func (r *SectionRepository) FindSectionsByDayID(ctx context.Context, dayID uint) ([]models.EventSection, error) {
	if dayID == 0 {
		return nil, errors.New("nieprawidłowe ID dnia")
	}
	var sections []models.EventSection
	err := r.getDB(ctx).Where("day_id = ?", dayID).Order("kolejnosc asc").
		Preload("Dishes", func(db *gorm.DB) *gorm.DB { return db.Order("kolejnosc asc") }).
		Find(&sections).Error
	if err != nil {
		configslog.Log.Error("SectionRepository.FindSectionsByDayID: błąd DB", zap.Uint("dayID", dayID), zap.Error(err))
		return nil, err
	}
	return sections, nil
}

func (r *SectionRepository) UpdateSection(ctx context.Context, section *models.EventSection) error {
	if section == nil || section.ID == 0 {
		return errors.New("nieprawidłowa sekcja do aktualizacji")
	}
	return r.getDB(ctx).Omit("Dishes").Save(section).Error
}

// DeleteSection usuwa sekcję; dania sekcji i ich zadania sprząta serwis.
func (r *SectionRepository) DeleteSection(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("nieprawidłowe ID sekcji")
	}
	result := r.getDB(ctx).Delete(&models.EventSection{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SectionRepository) CreateSectionDish(ctx context.Context, sd *models.SectionDish) error {
	if sd == nil || sd.SectionID == 0 || sd.DishID == 0 {
		return errors.New("danie sekcji wymaga sekcji i dania")
	}
	return r.getDB(ctx).Omit("Dish").Create(sd).Error
}

func (r *SectionRepository) FindSectionDishByID(ctx context.Context, id uint) (*models.SectionDish, error) {
	if id == 0 {
		return nil, errors.New("nieprawidłowe ID dania sekcji")
	}
	var sd models.SectionDish
	err := r.getDB(ctx).First(&sd, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sd, nil
}

func (r *SectionRepository) FindSectionDishesBySectionID(ctx context.Context, sectionID uint) ([]models.SectionDish, error) {
	if sectionID == 0 {
		return nil, errors.New("nieprawidłowe ID sekcji")
	}
	var dishes []models.SectionDish
	err := r.getDB(ctx).Where("section_id = ?", sectionID).Order("kolejnosc asc").Find(&dishes).Error
	if err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *SectionRepository) DeleteSectionDish(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("nieprawidłowe ID dania sekcji")
	}
	result := r.getDB(ctx).Delete(&models.SectionDish{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ISectionRepository = (*SectionRepository)(nil)
