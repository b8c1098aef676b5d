package handlers

import (
	"chefsystem.pl/models"
	"chefsystem.pl/pkg/queryparams"
	"chefsystem.pl/services"

	"github.com/gofiber/fiber/v2"
)

// IngredientHandler endpointy /api/ingredients.
type IngredientHandler struct {
	service services.IIngredientService
}

// NewIngredientHandler tworzy handler surowców.
func NewIngredientHandler() *IngredientHandler {
	return &IngredientHandler{service: services.NewIngredientService()}
}

func (h *IngredientHandler) List(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("nazwa")
	}

	result, err := h.service.ListIngredients(c.UserContext(), params)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(result)
}

func (h *IngredientHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	ingredient, err := h.service.GetIngredient(c.UserContext(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(ingredient)
}

func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var ingredient models.Ingredient
	if err := c.BodyParser(&ingredient); err != nil {
		return badRequest(c, "nieprawidłowe dane surowca")
	}
	created, err := h.service.CreateIngredient(c.UserContext(), &ingredient)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var updates models.Ingredient
	if err := c.BodyParser(&updates); err != nil {
		return badRequest(c, "nieprawidłowe dane surowca")
	}
	updated, err := h.service.UpdateIngredient(c.UserContext(), id, &updates)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(updated)
}

func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeleteIngredient(c.UserContext(), id); err != nil {
		return jsonError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
