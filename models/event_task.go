package models

import "time"

// Źródła zadań.
const (
	TaskSourceCustom = "custom"
	TaskSourceRecipe = "recipe"
)

// EventTask pozycja to-do w ramach dnia wydarzenia.
//
// Zadania ze źródłem "recipe" są artefaktami pochodnymi: powstają wyłącznie
// przy dodaniu dania do sekcji (po jednym na krok receptury) i znikają
// wyłącznie przy zdjęciu tego dania. Nie można ich tworzyć ani usuwać
// bezpośrednio. SectionDishID to słaba referencja zwrotna do dania, które
// je wygenerowało — służy do wąskiego kasowania przy zdjęciu dania.
type EventTask struct {
	BaseModel
	DayID         uint       `gorm:"column:day_id;index;not null" json:"day_id"`
	SectionDishID *uint      `gorm:"column:section_dish_id;index" json:"section_dish_id"`
	Text          string     `gorm:"column:tresc;type:text;not null" json:"tresc"`
	Done          bool       `gorm:"column:wykonane;default:false" json:"wykonane"`
	DueDate       *time.Time `gorm:"column:termin;type:date" json:"termin"`
	Source        string     `gorm:"column:zrodlo;type:varchar(20);default:'custom';index" json:"zrodlo"`
	RecipeID      *uint      `gorm:"column:recipe_id;index" json:"recipe_id"`
	Position      int        `gorm:"column:kolejnosc;default:0" json:"kolejnosc"`
}

func (EventTask) TableName() string { return "event_tasks" }
