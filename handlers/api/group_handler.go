package handlers

import (
	"chefsystem.pl/models"
	"chefsystem.pl/pkg/queryparams"
	"chefsystem.pl/services"

	"github.com/gofiber/fiber/v2"
)

// GroupHandler endpointy /api/groups.
type GroupHandler struct {
	service         services.IGroupService
	shoppingService services.IShoppingService
}

// NewGroupHandler tworzy handler grup żywieniowych.
func NewGroupHandler() *GroupHandler {
	return &GroupHandler{
		service:         services.NewGroupService(),
		shoppingService: services.NewShoppingService(),
	}
}

func (h *GroupHandler) List(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("nazwa")
	}

	result, err := h.service.ListGroups(c.UserContext(), params)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(result)
}

func (h *GroupHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	group, err := h.service.GetGroup(c.UserContext(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(group)
}

func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var group models.Group
	if err := c.BodyParser(&group); err != nil {
		return badRequest(c, "nieprawidłowe dane grupy")
	}
	created, err := h.service.CreateGroup(c.UserContext(), &group)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *GroupHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var updates models.Group
	if err := c.BodyParser(&updates); err != nil {
		return badRequest(c, "nieprawidłowe dane grupy")
	}
	updated, err := h.service.UpdateGroup(c.UserContext(), id, &updates)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(updated)
}

func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeleteGroup(c.UserContext(), id); err != nil {
		return jsonError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *GroupHandler) AddMeal(c *fiber.Ctx) error {
	groupID, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var meal models.GroupMeal
	if err := c.BodyParser(&meal); err != nil {
		return badRequest(c, "nieprawidłowe dane posiłku")
	}
	created, err := h.service.AddMeal(c.UserContext(), groupID, &meal)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *GroupHandler) DeleteMeal(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeleteMeal(c.UserContext(), id); err != nil {
		return jsonError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ShoppingList zagregowana lista zakupów grupy.
func (h *GroupHandler) ShoppingList(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.shoppingService.BuildForGroup(c.UserContext(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(list)
}
