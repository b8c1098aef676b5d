package handlers

import (
	"chefsystem.pl/models"
	"chefsystem.pl/pkg/queryparams"
	"chefsystem.pl/services"

	"github.com/gofiber/fiber/v2"
)

// RecipeHandler endpointy /api/recipes.
type RecipeHandler struct {
	service services.IRecipeService
}

// NewRecipeHandler tworzy handler receptur.
func NewRecipeHandler() *RecipeHandler {
	return &RecipeHandler{service: services.NewRecipeService()}
}

func (h *RecipeHandler) List(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("nazwa")
	}

	result, err := h.service.ListRecipes(c.UserContext(), params)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(result)
}

func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	recipe, err := h.service.GetRecipe(c.UserContext(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(recipe)
}

func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var recipe models.Recipe
	if err := c.BodyParser(&recipe); err != nil {
		return badRequest(c, "nieprawidłowe dane receptury")
	}
	created, err := h.service.CreateRecipe(c.UserContext(), &recipe)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var updates models.Recipe
	if err := c.BodyParser(&updates); err != nil {
		return badRequest(c, "nieprawidłowe dane receptury")
	}
	updated, err := h.service.UpdateRecipe(c.UserContext(), id, &updates)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(updated)
}

func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeleteRecipe(c.UserContext(), id); err != nil {
		return jsonError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
