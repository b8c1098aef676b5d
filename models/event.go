package models

import "time"

// Statusy wydarzenia.
const (
	EventStatusDraft    = "szkic"
	EventStatusActive   = "aktywne"
	EventStatusArchived = "zarchiwizowane"
)

// ProductionDayOrder indeks sortowania syntetycznego dnia "Produkcja";
// leży poniżej wszystkich dni kalendarzowych (0..N).
const ProductionDayOrder = -1

// Event wielodniowe wydarzenie cateringowe.
// Niezmiennik: DateFrom <= DateTo (sprawdzane przed zapisem).
type Event struct {
	BaseModel
	Name     string    `gorm:"column:nazwa;type:varchar(200);not null" json:"nazwa"`
	Type     string    `gorm:"column:typ;type:varchar(100)" json:"typ"`
	DateFrom time.Time `gorm:"column:data_od;type:date;not null" json:"data_od"`
	DateTo   time.Time `gorm:"column:data_do;type:date;not null" json:"data_do"`
	Adults   int       `gorm:"column:osoby_dorosli;default:0" json:"osoby_dorosli"`
	Children int       `gorm:"column:osoby_dzieci;default:0" json:"osoby_dzieci"`
	Seniors  int       `gorm:"column:osoby_seniorzy;default:0" json:"osoby_seniorzy"`
	Location string    `gorm:"column:lokalizacja;type:varchar(300)" json:"lokalizacja"`
	Notes    string    `gorm:"column:uwagi;type:text" json:"uwagi"`
	Status   string    `gorm:"column:status;type:varchar(30);default:'szkic';index" json:"status"`

	Days []EventDay `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"dni,omitempty"`
}

func (Event) TableName() string { return "events" }

// Headcount suma wszystkich grup wiekowych; domyślna liczba porcji tam,
// gdzie sekcja/posiłek nie podaje własnej.
func (e *Event) Headcount() int {
	return e.Adults + e.Children + e.Seniors
}

// EventDay jeden dzień wydarzenia. Date == nil oznacza syntetyczny
// dzień "Produkcja" (przygotowania przed wydarzeniem).
type EventDay struct {
	BaseModel
	EventID  uint       `gorm:"column:event_id;index;not null" json:"event_id"`
	Date     *time.Time `gorm:"column:data;type:date" json:"data"`
	Name     string     `gorm:"column:nazwa;type:varchar(100)" json:"nazwa"`
	Position int        `gorm:"column:kolejnosc;not null" json:"kolejnosc"`

	Sections []EventSection `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"sekcje,omitempty"`
	Tasks    []EventTask    `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"zadania,omitempty"`
}

func (EventDay) TableName() string { return "event_days" }

// EventSection slot serwisowy w ramach dnia (np. śniadanie 08:00-09:30).
type EventSection struct {
	BaseModel
	DayID       uint   `gorm:"column:day_id;index;not null" json:"day_id"`
	Name        string `gorm:"column:nazwa;type:varchar(200);not null" json:"nazwa"`
	TimeFrom    string `gorm:"column:od;type:varchar(5)" json:"od"`
	TimeTo      string `gorm:"column:do;type:varchar(5)" json:"do"`
	ServiceKind string `gorm:"column:rodzaj;type:varchar(50)" json:"rodzaj"`
	Portions    *int   `gorm:"column:porcje" json:"porcje"`
	Position    int    `gorm:"column:kolejnosc;default:0" json:"kolejnosc"`

	Dishes []SectionDish `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"dania,omitempty"`
}

func (EventSection) TableName() string { return "event_sections" }

// SectionDish danie zaplanowane w sekcji, z własną liczbą porcji.
// Usunięcie musi kaskadowo sprzątnąć wygenerowane z niego zadania.
type SectionDish struct {
	BaseModel
	SectionID uint `gorm:"column:section_id;index;not null" json:"section_id"`
	DishID    uint `gorm:"column:dish_id;index;not null" json:"dish_id"`
	Portions  *int `gorm:"column:porcje" json:"porcje"`
	Position  int  `gorm:"column:kolejnosc;default:0" json:"kolejnosc"`

	Dish *Dish `gorm:"foreignKey:DishID" json:"danie,omitempty"`
}

func (SectionDish) TableName() string { return "section_dishes" }
