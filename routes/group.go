package routes

import (
	handlers "chefsystem.pl/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerGroupRoutes trasy grup żywieniowych wraz z jadłospisem
// i listą zakupów.
func registerGroupRoutes(api fiber.Router) {
	groupHandler := handlers.NewGroupHandler()

	api.Get("/groups", groupHandler.List)
	api.Get("/groups/:id", groupHandler.Get)
	api.Post("/groups", groupHandler.Create)
	api.Put("/groups/:id", groupHandler.Update)
	api.Delete("/groups/:id", groupHandler.Delete)

	// Jadłospis grupy (posiłki dzień po dniu)
	api.Post("/groups/:id/meals", groupHandler.AddMeal)     // POST   /api/groups/{id}/meals
	api.Delete("/group-meals/:id", groupHandler.DeleteMeal) // DELETE /api/group-meals/{id}

	api.Get("/groups/:id/shopping-list", groupHandler.ShoppingList)
}
