package routes

import (
	handlers "chefsystem.pl/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerCatalogRoutes trasy katalogu: składniki, receptury, dania.
func registerCatalogRoutes(api fiber.Router) {
	ingredientHandler := handlers.NewIngredientHandler()
	recipeHandler := handlers.NewRecipeHandler()
	dishHandler := handlers.NewDishHandler()

	// --- Składniki ---
	api.Get("/ingredients", ingredientHandler.List)          // GET    /api/ingredients
	api.Get("/ingredients/:id", ingredientHandler.Get)       // GET    /api/ingredients/{id}
	api.Post("/ingredients", ingredientHandler.Create)       // POST   /api/ingredients
	api.Put("/ingredients/:id", ingredientHandler.Update)    // PUT    /api/ingredients/{id}
	api.Delete("/ingredients/:id", ingredientHandler.Delete) // DELETE /api/ingredients/{id}

	// --- Receptury ---
	api.Get("/recipes", recipeHandler.List)
	api.Get("/recipes/:id", recipeHandler.Get)
	api.Post("/recipes", recipeHandler.Create)
	api.Put("/recipes/:id", recipeHandler.Update)
	api.Delete("/recipes/:id", recipeHandler.Delete)

	// --- Dania ---
	api.Get("/dishes", dishHandler.List)
	api.Get("/dishes/:id", dishHandler.Get)
	api.Post("/dishes", dishHandler.Create)
	api.Put("/dishes/:id", dishHandler.Update)
	api.Delete("/dishes/:id", dishHandler.Delete)
}
