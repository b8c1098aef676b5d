package models

import "gorm.io/datatypes"

// Ingredient surowiec bazowy. Nazwy kolumn odpowiadają historycznemu
// schematowi magazynowemu (nazwa, jm_podstawowa itd.).
type Ingredient struct {
	BaseModel
	Name       string         `gorm:"column:nazwa;type:varchar(200);uniqueIndex;not null" json:"nazwa"`
	Type       string         `gorm:"column:typ;type:varchar(100)" json:"typ"`
	Group      string         `gorm:"column:grupa;type:varchar(100)" json:"grupa"`
	Department string         `gorm:"column:dzial;type:varchar(100);default:'kuchnia'" json:"dzial"`
	BaseUnit   string         `gorm:"column:jm_podstawowa;type:varchar(20);default:'kg'" json:"jm_podstawowa"`
	Vegetarian bool           `gorm:"column:wegetarianski;default:false" json:"wegetarianski"`
	Vegan      bool           `gorm:"column:weganski;default:false" json:"weganski"`
	Allergens  datatypes.JSON `gorm:"column:alergeny" json:"alergeny"`
}

func (Ingredient) TableName() string { return "ingredients" }
