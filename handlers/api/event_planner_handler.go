package handlers

import (
	"chefsystem.pl/models"
	"chefsystem.pl/services"

	"github.com/gofiber/fiber/v2"
)

// EventPlannerHandler endpointy planowania: sekcje dnia, dania sekcji
// i zadania (w tym generowane z receptur).
type EventPlannerHandler struct {
	sectionService services.IEventSectionService
	taskService    services.IEventTaskService
}

// NewEventPlannerHandler tworzy handler planowania wydarzeń.
func NewEventPlannerHandler() *EventPlannerHandler {
	return &EventPlannerHandler{
		sectionService: services.NewEventSectionService(),
		taskService:    services.NewEventTaskService(),
	}
}

// --- Sekcje ---

func (h *EventPlannerHandler) ListSections(c *fiber.Ctx) error {
	dayID, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	sections, err := h.sectionService.ListSectionsForDay(c.UserContext(), dayID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(sections)
}

func (h *EventPlannerHandler) CreateSection(c *fiber.Ctx) error {
	dayID, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var section models.EventSection
	if err := c.BodyParser(&section); err != nil {
		return badRequest(c, "nieprawidłowe dane sekcji")
	}
	created, err := h.sectionService.CreateSection(c.UserContext(), dayID, &section)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *EventPlannerHandler) UpdateSection(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var updates models.EventSection
	if err := c.BodyParser(&updates); err != nil {
		return badRequest(c, "nieprawidłowe dane sekcji")
	}
	updated, err := h.sectionService.UpdateSection(c.UserContext(), id, &updates)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(updated)
}

func (h *EventPlannerHandler) DeleteSection(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.sectionService.DeleteSection(c.UserContext(), id); err != nil {
		return jsonError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Dania sekcji ---

type attachDishRequest struct {
	DishID   uint `json:"dish_id"`
	Portions *int `json:"porcje"`
}

// AttachDish dodaje danie do sekcji i generuje zadania z kroków receptur.
func (h *EventPlannerHandler) AttachDish(c *fiber.Ctx) error {
	sectionID, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req attachDishRequest
	if err := c.BodyParser(&req); err != nil || req.DishID == 0 {
		return badRequest(c, "wymagane dish_id")
	}
	sd, err := h.taskService.AttachDishToSection(c.UserContext(), sectionID, req.DishID, req.Portions)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sd)
}

// DetachDish zdejmuje danie z sekcji wraz z wygenerowanymi zadaniami.
func (h *EventPlannerHandler) DetachDish(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.taskService.DetachDishFromSection(c.UserContext(), id); err != nil {
		return jsonError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Zadania ---

func (h *EventPlannerHandler) ListTasks(c *fiber.Ctx) error {
	dayID, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	tasks, err := h.taskService.ListTasksForDay(c.UserContext(), dayID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(tasks)
}

func (h *EventPlannerHandler) CreateTask(c *fiber.Ctx) error {
	dayID, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var task models.EventTask
	if err := c.BodyParser(&task); err != nil {
		return badRequest(c, "nieprawidłowe dane zadania")
	}
	created, err := h.taskService.CreateTask(c.UserContext(), dayID, &task)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *EventPlannerHandler) UpdateTask(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var updates models.EventTask
	if err := c.BodyParser(&updates); err != nil {
		return badRequest(c, "nieprawidłowe dane zadania")
	}
	updated, err := h.taskService.UpdateTask(c.UserContext(), id, &updates)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(updated)
}

// DeleteTask usuwa zadanie użytkownika; zadanie recepturowe kończy się 409.
func (h *EventPlannerHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.taskService.DeleteTask(c.UserContext(), id); err != nil {
		return jsonError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
