package handlers

import (
	"errors"

	"modreport/internal/app"
	"modreport/internal/handlers/middleware"
	"modreport/internal/logger"

	shiftController "modreport/internal/controllers/shifts"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ShiftHandler struct {
	Handler
	shiftController shiftController.ShiftControllerInterface
}

func NewShiftHandler(app app.App, router fiber.Router) *ShiftHandler {
	return &ShiftHandler{
		shiftController: app.Controllers.Shift,
		Handler: Handler{
			log:        logger.New("handlers").File("shift_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ShiftHandler) Register() {
	shifts := h.router.Group("/shifts", h.middleware.RequireAuth())

	shifts.Get("/", h.dashboard)
	shifts.Post("/", h.create)
	shifts.Get("/:id", h.get)
	shifts.Post("/:id/progress", h.saveProgress)
	shifts.Post("/:id/close", h.close)
	shifts.Delete("/:id", h.delete)
	shifts.Post("/:id/editors", h.updateEditors)
	shifts.Post("/:id/reassign", h.middleware.RequireAdmin(), h.reassign)
}

func (h *ShiftHandler) dashboard(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	response, err := h.shiftController.Dashboard(c.UserContext(), user)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(response)
}

func (h *ShiftHandler) create(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	request := &shiftController.CreateShiftRequest{
		Date:       c.FormValue("date"),
		Schedule:   c.FormValue("schedule"),
		Occupancy:  c.FormValue("occupancy"),
		Arrivals:   c.FormValue("arrivals"),
		Departures: c.FormValue("departures"),

		GMAGM:             c.FormValue("gm_agm"),
		Housekeeping:      c.FormValue("housekeeping"),
		FoodBeverage:      c.FormValue("food_beverage"),
		Sales:             c.FormValue("sales"),
		Aquatics:          c.FormValue("aquatics"),
		RetailAttractions: c.FormValue("retail_attractions"),
		KidsEntertainment: c.FormValue("kids_entertainment"),
		GuestServices:     c.FormValue("guest_services"),
		HR:                c.FormValue("hr"),
		Finance:           c.FormValue("finance"),
		Engineering:       c.FormValue("engineering"),
		IT:                c.FormValue("it"),
	}

	shift, existing, err := h.shiftController.Create(c.UserContext(), user, request)
	if err != nil {
		return h.handleError(c, err)
	}

	status := fiber.StatusCreated
	if existing {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(fiber.Map{
		"shift":    shift,
		"existing": existing,
	})
}

func (h *ShiftHandler) get(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	shiftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift not found"})
	}

	shift, err := h.shiftController.Get(c.UserContext(), user, shiftID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(fiber.Map{"shift": shift})
}

func (h *ShiftHandler) saveProgress(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	shiftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift not found"})
	}

	shift, err := h.shiftController.SaveProgress(c.UserContext(), user, shiftID, formFields(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(fiber.Map{"shift": shift})
}

func (h *ShiftHandler) close(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	shiftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift not found"})
	}

	shift, err := h.shiftController.Close(c.UserContext(), user, shiftID, formFields(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(fiber.Map{"shift": shift})
}

func (h *ShiftHandler) delete(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	shiftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift not found"})
	}

	if err := h.shiftController.Delete(c.UserContext(), user, shiftID); err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(fiber.Map{"message": "shift deleted"})
}

func (h *ShiftHandler) reassign(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	shiftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift not found"})
	}

	targetModID, err := uuid.Parse(c.FormValue("mod_id"))
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "mod_id must be a valid user id",
		})
	}

	shift, err := h.shiftController.Reassign(c.UserContext(), user, shiftID, targetModID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(fiber.Map{"shift": shift})
}

func (h *ShiftHandler) updateEditors(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	shiftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift not found"})
	}

	args := c.Request().PostArgs().PeekMulti("editor_ids")
	editorIDs := make([]uuid.UUID, 0, len(args))
	for _, raw := range args {
		if len(raw) == 0 {
			continue
		}
		editorID, err := uuid.Parse(string(raw))
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "editor_ids must be valid user ids",
			})
		}
		editorIDs = append(editorIDs, editorID)
	}

	shift, err := h.shiftController.UpdateEditors(c.UserContext(), user, shiftID, editorIDs)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(fiber.Map{"shift": shift})
}

func (h *ShiftHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, shiftController.ErrValidation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, shiftController.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden",
		})
	case errors.Is(err, shiftController.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Shift not found",
		})
	case errors.Is(err, shiftController.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
