package models

import "gorm.io/datatypes"

// Typy receptur używane w kolumnie typ.
const (
	RecipeTypeHalfProduct = "polprodukt"
	RecipeTypeFinal       = "finalna"
)

// Recipe receptura (przepis) z listą składników i krokami przygotowania.
// Kroki są przechowywane jako JSON: tablica elementów, z których każdy jest
// albo zwykłym stringiem, albo obiektem {krok, opis, czas_min} — patrz
// services.ParseInstructionSteps.
type Recipe struct {
	BaseModel
	Name        string             `gorm:"column:nazwa;type:varchar(200);uniqueIndex;not null" json:"nazwa"`
	Type        string             `gorm:"column:typ;type:varchar(50);default:'polprodukt'" json:"typ"`
	YieldAmount *float64           `gorm:"column:wydajnosc_ilosc;type:numeric(12,3)" json:"wydajnosc_ilosc"`
	YieldUnit   string             `gorm:"column:wydajnosc_jm;type:varchar(20)" json:"wydajnosc_jm"`
	Description string             `gorm:"column:opis;type:text" json:"opis"`
	Vegetarian  bool               `gorm:"column:wegetarianski;default:false" json:"wegetarianski"`
	Vegan       bool               `gorm:"column:weganski;default:false" json:"weganski"`
	Steps       datatypes.JSON     `gorm:"column:kroki" json:"kroki"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"skladniki"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient pozycja składnikowa receptury. Ilość jest ilością na porcję.
type RecipeIngredient struct {
	BaseModel
	RecipeID     uint    `gorm:"column:recipe_id;index;not null" json:"recipe_id"`
	IngredientID uint    `gorm:"column:ingredient_id;index;not null" json:"ingredient_id"`
	Amount       float64 `gorm:"column:ilosc;type:numeric(12,3);not null" json:"ilosc"`
	Unit         string  `gorm:"column:jm;type:varchar(20)" json:"jm"`
	Position     int     `gorm:"column:kolejnosc;default:0" json:"kolejnosc"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"surowiec"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }
