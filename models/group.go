package models

import "time"

// Group grupa żywieniowa — prostszy, równoległy do wydarzeń wariant
// planowania posiłków (dzień + rodzaj posiłku + danie).
type Group struct {
	BaseModel
	Name     string `gorm:"column:nazwa;type:varchar(200);not null" json:"nazwa"`
	Adults   int    `gorm:"column:osoby_dorosli;default:0" json:"osoby_dorosli"`
	Children int    `gorm:"column:osoby_dzieci;default:0" json:"osoby_dzieci"`
	Seniors  int    `gorm:"column:osoby_seniorzy;default:0" json:"osoby_seniorzy"`
	Notes    string `gorm:"column:uwagi;type:text" json:"uwagi"`

	Meals []GroupMeal `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"posilki,omitempty"`
}

func (Group) TableName() string { return "groups" }

// Headcount suma grup wiekowych, domyślna liczba porcji posiłku.
func (g *Group) Headcount() int {
	return g.Adults + g.Children + g.Seniors
}

// GroupMeal zaplanowany posiłek grupy w danym dniu.
type GroupMeal struct {
	BaseModel
	GroupID  uint       `gorm:"column:group_id;index;not null" json:"group_id"`
	DayNo    int        `gorm:"column:dzien;not null" json:"dzien"`
	Date     *time.Time `gorm:"column:data;type:date" json:"data"`
	MealKind string     `gorm:"column:rodzaj;type:varchar(50)" json:"rodzaj"`
	DishID   uint       `gorm:"column:dish_id;index;not null" json:"dish_id"`
	Portions *int       `gorm:"column:porcje" json:"porcje"`

	Dish *Dish `gorm:"foreignKey:DishID" json:"danie,omitempty"`
}

func (GroupMeal) TableName() string { return "group_meals" }
