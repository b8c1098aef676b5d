package models

// Typy komponentów dania.
const (
	ComponentTypeRecipe     = "receptura"
	ComponentTypeIngredient = "surowiec"
)

// Dish danie z karty, złożone z komponentów (receptur lub surowców).
type Dish struct {
	BaseModel
	Name           string   `gorm:"column:nazwa;type:varchar(200);uniqueIndex;not null" json:"nazwa"`
	MenuName       string   `gorm:"column:nazwa_karta;type:varchar(200)" json:"nazwa_karta"`
	MenuDesc       string   `gorm:"column:opis_karta;type:text" json:"opis_karta"`
	SuggestedPrice *float64 `gorm:"column:cena_sugerowana;type:numeric(12,2)" json:"cena_sugerowana"`
	Vegetarian     bool     `gorm:"column:wegetarianski;default:false" json:"wegetarianski"`
	Vegan          bool     `gorm:"column:weganski;default:false" json:"weganski"`
	Active         bool     `gorm:"column:aktywne;default:true" json:"aktywne"`

	Components []DishComponent `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE" json:"komponenty"`
}

func (Dish) TableName() string { return "dishes" }

// DishComponent komponent dania: receptura (RecipeID ustawione) albo
// surowiec bez obróbki (IngredientID ustawione). Komponenty bez receptury
// nie generują zadań przygotowania.
type DishComponent struct {
	BaseModel
	DishID       uint    `gorm:"column:dish_id;index;not null" json:"dish_id"`
	Type         string  `gorm:"column:typ;type:varchar(20);not null" json:"typ"`
	RecipeID     *uint   `gorm:"column:recipe_id;index" json:"recipe_id"`
	IngredientID *uint   `gorm:"column:ingredient_id;index" json:"ingredient_id"`
	Amount       float64 `gorm:"column:ilosc;type:numeric(12,3)" json:"ilosc"`
	Unit         string  `gorm:"column:jm;type:varchar(20)" json:"jm"`
	Category     string  `gorm:"column:kategoria;type:varchar(50);default:'glowne'" json:"kategoria"`
	Position     int     `gorm:"column:kolejnosc;default:0" json:"kolejnosc"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID" json:"receptura,omitempty"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"surowiec,omitempty"`
}

func (DishComponent) TableName() string { return "dish_components" }
