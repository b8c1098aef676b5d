package routes

import (
	handlers "chefsystem.pl/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerEventRoutes trasy wydarzeń i planera: dni, sekcje,
// dania sekcji oraz zadania.
func registerEventRoutes(api fiber.Router) {
	eventHandler := handlers.NewEventHandler()
	plannerHandler := handlers.NewEventPlannerHandler()

	// --- Wydarzenia ---
	api.Get("/events", eventHandler.List)
	api.Get("/events/:id", eventHandler.Get)
	api.Post("/events", eventHandler.Create)
	api.Put("/events/:id", eventHandler.Update)
	api.Delete("/events/:id", eventHandler.Delete)
	api.Post("/events/:id/duplicate", eventHandler.Duplicate) // kopia wraz z planem
	api.Get("/events/:id/days", eventHandler.ListDays)
	api.Get("/events/:id/shopping-list", eventHandler.ShoppingList)

	// --- Sekcje dnia ---
	api.Get("/days/:id/sections", plannerHandler.ListSections)
	api.Post("/days/:id/sections", plannerHandler.CreateSection)
	api.Put("/sections/:id", plannerHandler.UpdateSection)
	api.Delete("/sections/:id", plannerHandler.DeleteSection)

	// --- Dania sekcji ---
	api.Post("/sections/:id/dishes", plannerHandler.AttachDish)  // generuje zadania z receptur
	api.Delete("/section-dishes/:id", plannerHandler.DetachDish) // usuwa też zadania dania

	// --- Zadania dnia ---
	api.Get("/days/:id/tasks", plannerHandler.ListTasks)
	api.Post("/days/:id/tasks", plannerHandler.CreateTask)
	api.Put("/tasks/:id", plannerHandler.UpdateTask)
	api.Delete("/tasks/:id", plannerHandler.DeleteTask)
}
