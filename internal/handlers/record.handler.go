package handlers

import (
	"errors"

	"modreport/internal/app"
	"modreport/internal/handlers/middleware"
	"modreport/internal/logger"
	. "modreport/internal/models"

	recordController "modreport/internal/controllers/records"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RecordHandler struct {
	Handler
	recordController recordController.RecordControllerInterface
}

func NewRecordHandler(app app.App, router fiber.Router) *RecordHandler {
	return &RecordHandler{
		recordController: app.Controllers.Record,
		Handler: Handler{
			log:        logger.New("handlers").File("record_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RecordHandler) Register() {
	shifts := h.router.Group("/shifts", h.middleware.RequireAuth())

	shifts.Post("/:id/incidents", h.addIncident)
	shifts.Post("/:id/downtimes", h.addDowntime)
	shifts.Post("/:id/guest-opportunities", h.addGuestOpportunity)
	shifts.Post("/:id/room-inspections", h.addRoomInspection)
	shifts.Post("/:id/outlet-inspections", h.addOutletInspection)
	shifts.Post("/:id/high-paws", h.addHighPaw)
	shifts.Post("/:id/mod-meals", h.addModMeal)
}

// withShift parses the shift id param and hands off to the given create
// function, keeping the seven endpoints uniform.
func (h *RecordHandler) withShift(
	c *fiber.Ctx,
	create func(user *User, shiftID uuid.UUID) (any, error),
) error {
	user := middleware.GetUser(c)

	shiftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift not found"})
	}

	record, err := create(user, shiftID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"record": record})
}

func (h *RecordHandler) addIncident(c *fiber.Ctx) error {
	return h.withShift(c, func(user *User, shiftID uuid.UUID) (any, error) {
		return h.recordController.AddIncident(c.UserContext(), user, shiftID,
			&recordController.IncidentRequest{
				Code:         c.FormValue("code"),
				IncidentTime: c.FormValue("incident_time"),
				Location:     c.FormValue("location"),
				Notes:        c.FormValue("notes"),
			})
	})
}

func (h *RecordHandler) addDowntime(c *fiber.Ctx) error {
	return h.withShift(c, func(user *User, shiftID uuid.UUID) (any, error) {
		return h.recordController.AddDowntime(c.UserContext(), user, shiftID,
			&recordController.DowntimeRequest{
				Outlet:    c.FormValue("outlet"),
				StartTime: c.FormValue("start_time"),
				EndTime:   c.FormValue("end_time"),
				Reason:    c.FormValue("reason"),
			})
	})
}

func (h *RecordHandler) addGuestOpportunity(c *fiber.Ctx) error {
	return h.withShift(c, func(user *User, shiftID uuid.UUID) (any, error) {
		return h.recordController.AddGuestOpportunity(c.UserContext(), user, shiftID,
			&recordController.GuestOpportunityRequest{
				LastName:     c.FormValue("last_name"),
				Room:         c.FormValue("room"),
				Description:  c.FormValue("description"),
				Compensation: c.FormValue("compensation"),
			})
	})
}

func (h *RecordHandler) addRoomInspection(c *fiber.Ctx) error {
	return h.withShift(c, func(user *User, shiftID uuid.UUID) (any, error) {
		return h.recordController.AddRoomInspection(c.UserContext(), user, shiftID,
			&recordController.RoomInspectionRequest{
				RoomNumber:    c.FormValue("room_number"),
				RoomType:      c.FormValue("room_type"),
				Successes:     c.FormValue("successes"),
				Opportunities: c.FormValue("opportunities"),
			})
	})
}

func (h *RecordHandler) addOutletInspection(c *fiber.Ctx) error {
	return h.withShift(c, func(user *User, shiftID uuid.UUID) (any, error) {
		return h.recordController.AddOutletInspection(c.UserContext(), user, shiftID,
			&recordController.OutletInspectionRequest{
				Outlet:         c.FormValue("outlet"),
				InspectionTime: c.FormValue("inspection_time"),
				Successes:      c.FormValue("successes"),
				Opportunities:  c.FormValue("opportunities"),
			})
	})
}

func (h *RecordHandler) addHighPaw(c *fiber.Ctx) error {
	return h.withShift(c, func(user *User, shiftID uuid.UUID) (any, error) {
		return h.recordController.AddHighPaw(c.UserContext(), user, shiftID,
			&recordController.HighPawRequest{
				PackMembers: c.FormValue("pack_members"),
				Department:  c.FormValue("department"),
				Description: c.FormValue("description"),
			})
	})
}

func (h *RecordHandler) addModMeal(c *fiber.Ctx) error {
	return h.withShift(c, func(user *User, shiftID uuid.UUID) (any, error) {
		return h.recordController.AddModMeal(c.UserContext(), user, shiftID,
			&recordController.ModMealRequest{
				Outlet:   c.FormValue("outlet"),
				MenuItem: c.FormValue("menu_item"),
				Feedback: c.FormValue("feedback"),
			})
	})
}

func (h *RecordHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, recordController.ErrValidation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, recordController.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden",
		})
	case errors.Is(err, recordController.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Shift not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
