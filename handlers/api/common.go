package handlers

import (
	"errors"

	"chefsystem.pl/services"

	"github.com/gofiber/fiber/v2"
)

// statusForError mapuje błędy domenowe na kody HTTP.
func statusForError(err error) int {
	var partial *services.PartialFailureError
	if errors.As(err, &partial) {
		return fiber.StatusInternalServerError
	}

	switch {
	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrIngredientNotFound),
		errors.Is(err, services.ErrRecipeNotFound),
		errors.Is(err, services.ErrDishNotFound),
		errors.Is(err, services.ErrGroupNotFound),
		errors.Is(err, services.ErrGroupMealNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrTaskDayNotFound),
		errors.Is(err, services.ErrSectionNotFound),
		errors.Is(err, services.ErrSectionDayNotFound),
		errors.Is(err, services.ErrSectionDishNotFound),
		errors.Is(err, services.ErrTaskDishNotFound),
		errors.Is(err, services.ErrShoppingGroupNotFound),
		errors.Is(err, services.ErrShoppingEventNotFound):
		return fiber.StatusNotFound

	case errors.Is(err, services.ErrTaskNotDeletable):
		return fiber.StatusConflict

	case errors.Is(err, services.ErrEventNameRequired),
		errors.Is(err, services.ErrEventInvalidDateRange),
		errors.Is(err, services.ErrIngredientNameRequired),
		errors.Is(err, services.ErrIngredientNameTaken),
		errors.Is(err, services.ErrRecipeNameRequired),
		errors.Is(err, services.ErrRecipeNameTaken),
		errors.Is(err, services.ErrDishNameRequired),
		errors.Is(err, services.ErrDishNameTaken),
		errors.Is(err, services.ErrDishInvalidComponent),
		errors.Is(err, services.ErrGroupNameRequired),
		errors.Is(err, services.ErrGroupMealInvalid),
		errors.Is(err, services.ErrTaskTextRequired),
		errors.Is(err, services.ErrSectionNameRequired):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// jsonError standardowa odpowiedź błędu API.
func jsonError(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": err.Error()}
	var partial *services.PartialFailureError
	if errors.As(err, &partial) {
		body["krok"] = partial.Step
	}
	return c.Status(statusForError(err)).JSON(body)
}

// parseID ścieżkowy parametr :id jako uint.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("nieprawidłowe ID")
	}
	return uint(id), nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
