package handlers

import (
	"chefsystem.pl/models"
	"chefsystem.pl/pkg/queryparams"
	"chefsystem.pl/services"

	"github.com/gofiber/fiber/v2"
)

// EventHandler endpointy /api/events.
type EventHandler struct {
	service         services.IEventService
	shoppingService services.IShoppingService
}

// NewEventHandler tworzy handler wydarzeń.
func NewEventHandler() *EventHandler {
	return &EventHandler{
		service:         services.NewEventService(),
		shoppingService: services.NewShoppingService(),
	}
}

// List listuje wydarzenia; zakończone ponad dzień temu są przy okazji
// archiwizowane (patrz EventService.ListEvents).
func (h *EventHandler) List(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("data_od")
	}

	result, err := h.service.ListEvents(c.UserContext(), params)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(result)
}

func (h *EventHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	event, err := h.service.GetEvent(c.UserContext(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(event)
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	var event models.Event
	if err := c.BodyParser(&event); err != nil {
		return badRequest(c, "nieprawidłowe dane wydarzenia")
	}
	created, err := h.service.CreateEvent(c.UserContext(), &event)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var updates models.Event
	if err := c.BodyParser(&updates); err != nil {
		return badRequest(c, "nieprawidłowe dane wydarzenia")
	}
	updated, err := h.service.UpdateEvent(c.UserContext(), id, &updates)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(updated)
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeleteEvent(c.UserContext(), id); err != nil {
		return jsonError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Duplicate kopiuje wydarzenie z poddrzewem; zadania recepturowe nie są
// kopiowane — odtworzą się przy ponownym dodawaniu dań.
func (h *EventHandler) Duplicate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	copied, err := h.service.DuplicateEvent(c.UserContext(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(copied)
}

// ListDays dni wydarzenia (dzień produkcji jako pierwszy).
func (h *EventHandler) ListDays(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	days, err := h.service.ListEventDays(c.UserContext(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(days)
}

// ShoppingList zagregowana lista zakupów całego wydarzenia.
func (h *EventHandler) ShoppingList(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.shoppingService.BuildForEvent(c.UserContext(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(list)
}
