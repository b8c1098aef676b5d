package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes rejestruje middleware aplikacji i wszystkie grupy tras API.
func SetupRoutes(app *fiber.App) {
	// --- Middleware ogólne ---
	app.Use(recoverMiddleware.New()) // przechwytywanie paniki
	app.Use(logger.New())            // logowanie żądań
	app.Use(cors.New())

	api := app.Group("/api")

	// --- Grupy tras ---
	registerCatalogRoutes(api) // składniki, receptury, dania
	registerGroupRoutes(api)   // grupy żywieniowe i posiłki
	registerEventRoutes(api)   // wydarzenia, dni, sekcje, zadania

	// --- 404 ---
	// Na końcu, łapie wszystkie niedopasowane trasy.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "nie znaleziono zasobu"})
}
