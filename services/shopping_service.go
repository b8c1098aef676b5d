package services

import (
	"context"
	"errors"
	"sort"

	"chefsystem.pl/configs"
	"chefsystem.pl/configs/configslog"
	"chefsystem.pl/models"
	"chefsystem.pl/repositories"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// ShoppingServiceError błędy domenowe listy zakupów.
type ShoppingServiceError string

func (e ShoppingServiceError) Error() string { return string(e) }

const (
	ErrShoppingGroupNotFound ShoppingServiceError = "grupa nie znaleziona"
	ErrShoppingEventNotFound ShoppingServiceError = "wydarzenie nie znalezione"
)

// ShoppingListItem jedna zsumowana pozycja listy zakupów.
type ShoppingListItem struct {
	IngredientID uint    `json:"ingredient_id"`
	Name         string  `json:"nazwa"`
	Amount       float64 `json:"ilosc"`
	Unit         string  `json:"jm"`
}

// ShoppingList zagregowana lista zakupów grupy albo wydarzenia.
type ShoppingList struct {
	Headcount int                `json:"liczba_osob"`
	DayCount  int                `json:"liczba_dni"`
	Items     []ShoppingListItem `json:"skladniki"`
}

// IShoppingService agregacja zapotrzebowania na surowce.
type IShoppingService interface {
	BuildForGroup(ctx context.Context, groupID uint) (*ShoppingList, error)
	BuildForEvent(ctx context.Context, eventID uint) (*ShoppingList, error)
}

// ShoppingService implementuje IShoppingService.
type ShoppingService struct {
	groupRepo repositories.IGroupRepository
	eventRepo repositories.IEventRepository
	dishRepo  repositories.IDishRepository
	db        *gorm.DB
}

// NewShoppingService tworzy serwis na globalnym połączeniu.
func NewShoppingService() IShoppingService {
	return NewShoppingServiceWithDB(configs.GetDB())
}

// NewShoppingServiceWithDB tworzy serwis na podanym połączeniu (testy).
func NewShoppingServiceWithDB(db *gorm.DB) IShoppingService {
	return &ShoppingService{
		groupRepo: repositories.NewGroupRepositoryTx(db),
		eventRepo: repositories.NewEventRepositoryTx(db),
		dishRepo:  repositories.NewDishRepositoryTx(db),
		db:        db,
	}
}

// shoppingAccumulator sumuje wkłady po tożsamości surowca. Jednostka pochodzi
// z pierwszego napotkanego wkładu; konwersji jednostek nie ma — rozjazd
// jednostek tego samego surowca między recepturami jest tylko logowany.
type shoppingAccumulator struct {
	items map[uint]*ShoppingListItem
	order []uint
}

func newShoppingAccumulator() *shoppingAccumulator {
	return &shoppingAccumulator{items: map[uint]*ShoppingListItem{}}
}

func (a *shoppingAccumulator) add(ingredientID uint, name string, amount float64, unit string) {
	item, ok := a.items[ingredientID]
	if !ok {
		a.items[ingredientID] = &ShoppingListItem{
			IngredientID: ingredientID,
			Name:         name,
			Amount:       amount,
			Unit:         unit,
		}
		a.order = append(a.order, ingredientID)
		return
	}
	if item.Unit != unit && unit != "" {
		configslog.SLog.Warnf("Surowiec %q występuje w różnych jednostkach (%q i %q), sumuję bez konwersji",
			name, item.Unit, unit)
	}
	item.Amount += amount
}

// addDish dolicza wkład wszystkich recepturowych komponentów dania
// pomnożony przez liczbę porcji.
func (a *shoppingAccumulator) addDish(dish *models.Dish, portions int) {
	for ci := range dish.Components {
		component := dish.Components[ci]
		if component.Type != models.ComponentTypeRecipe || component.Recipe == nil {
			continue
		}
		for ri := range component.Recipe.Ingredients {
			ing := component.Recipe.Ingredients[ri]
			a.add(ing.IngredientID, ing.Ingredient.Name, ing.Amount*float64(portions), ing.Unit)
		}
	}
}

// sorted zwraca pozycje posortowane po nazwie surowca polskim porządkiem
// leksykograficznym (Ananas < Bakłażan < Brokuły).
func (a *shoppingAccumulator) sorted() []ShoppingListItem {
	items := make([]ShoppingListItem, 0, len(a.order))
	for _, id := range a.order {
		items = append(items, *a.items[id])
	}
	cl := collate.New(language.Polish)
	sort.SliceStable(items, func(i, j int) bool {
		return cl.CompareString(items[i].Name, items[j].Name) < 0
	})
	return items
}

// BuildForGroup agreguje listę zakupów grupy: każdy posiłek wnosi składniki
// receptur swojego dania przemnożone przez porcje posiłku (albo sumę osób
// grupy, gdy posiłek nie podaje własnych porcji).
func (s *ShoppingService) BuildForGroup(ctx context.Context, groupID uint) (*ShoppingList, error) {
	group, err := s.groupRepo.FindByIDWithMeals(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShoppingGroupNotFound
		}
		return nil, err
	}

	defaultPortions := group.Headcount()
	acc := newShoppingAccumulator()
	dishCache := map[uint]*models.Dish{}
	maxDay := 0

	for mi := range group.Meals {
		meal := group.Meals[mi]
		if meal.DayNo > maxDay {
			maxDay = meal.DayNo
		}

		dish, ok := dishCache[meal.DishID]
		if !ok {
			dish, err = s.dishRepo.FindByIDDeep(ctx, meal.DishID)
			if err != nil {
				configslog.Log.Warn("BuildForGroup: nie można załadować dania, pomijam posiłek",
					zap.Uint("dishID", meal.DishID), zap.Error(err))
				continue
			}
			dishCache[meal.DishID] = dish
		}

		portions := defaultPortions
		if meal.Portions != nil && *meal.Portions > 0 {
			portions = *meal.Portions
		}
		acc.addDish(dish, portions)
	}

	return &ShoppingList{
		Headcount: defaultPortions,
		DayCount:  maxDay,
		Items:     acc.sorted(),
	}, nil
}

// BuildForEvent agreguje listę zakupów wydarzenia po grafie
// dzień -> sekcja -> danie sekcji -> komponent -> receptura -> surowiec.
// Porcje: własne porcje dania sekcji, potem porcje sekcji, na końcu suma
// osób wydarzenia.
func (s *ShoppingService) BuildForEvent(ctx context.Context, eventID uint) (*ShoppingList, error) {
	event, err := s.eventRepo.FindByIDDeep(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShoppingEventNotFound
		}
		return nil, err
	}

	defaultPortions := event.Headcount()
	acc := newShoppingAccumulator()
	dishCache := map[uint]*models.Dish{}
	maxDay := 0

	for di := range event.Days {
		day := event.Days[di]
		for si := range day.Sections {
			section := day.Sections[si]
			for sdi := range section.Dishes {
				sd := section.Dishes[sdi]

				dish, ok := dishCache[sd.DishID]
				if !ok {
					dish, err = s.dishRepo.FindByIDDeep(ctx, sd.DishID)
					if err != nil {
						configslog.Log.Warn("BuildForEvent: nie można załadować dania, pomijam",
							zap.Uint("dishID", sd.DishID), zap.Error(err))
						continue
					}
					dishCache[sd.DishID] = dish
				}

				portions := defaultPortions
				switch {
				case sd.Portions != nil && *sd.Portions > 0:
					portions = *sd.Portions
				case section.Portions != nil && *section.Portions > 0:
					portions = *section.Portions
				}
				acc.addDish(dish, portions)

				// dzień "Produkcja" (kolejnosc -1) nie liczy się do liczby dni
				if day.Position+1 > maxDay {
					maxDay = day.Position + 1
				}
			}
		}
	}

	return &ShoppingList{
		Headcount: defaultPortions,
		DayCount:  maxDay,
		Items:     acc.sorted(),
	}, nil
}

var _ IShoppingService = (*ShoppingService)(nil)
