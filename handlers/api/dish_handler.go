package handlers

import (
	"chefsystem.pl/models"
	"chefsystem.pl/pkg/queryparams"
	"chefsystem.pl/services"

	"github.com/gofiber/fiber/v2"
)

// DishHandler endpointy /api/dishes.
type DishHandler struct {
	service services.IDishService
}

// NewDishHandler tworzy handler dań.
func NewDishHandler() *DishHandler {
	return &DishHandler{service: services.NewDishService()}
}

func (h *DishHandler) List(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("nazwa")
	}

	result, err := h.service.ListDishes(c.UserContext(), params)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(result)
}

func (h *DishHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	dish, err := h.service.GetDish(c.UserContext(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(dish)
}

func (h *DishHandler) Create(c *fiber.Ctx) error {
	var dish models.Dish
	if err := c.BodyParser(&dish); err != nil {
		return badRequest(c, "nieprawidłowe dane dania")
	}
	created, err := h.service.CreateDish(c.UserContext(), &dish)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *DishHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var updates models.Dish
	if err := c.BodyParser(&updates); err != nil {
		return badRequest(c, "nieprawidłowe dane dania")
	}
	updated, err := h.service.UpdateDish(c.UserContext(), id, &updates)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(updated)
}

func (h *DishHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeleteDish(c.UserContext(), id); err != nil {
		return jsonError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
