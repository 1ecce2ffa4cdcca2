package handlers

import (
	"errors"

	"modreport/internal/app"
	"modreport/internal/logger"

	adminController "modreport/internal/controllers/admin"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	Handler
	adminController adminController.AdminControllerInterface
}

func NewAdminHandler(app app.App, router fiber.Router) *AdminHandler {
	return &AdminHandler{
		adminController: app.Controllers.Admin,
		Handler: Handler{
			log:        logger.New("handlers").File("admin_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AdminHandler) Register() {
	admin := h.router.Group("/admin", h.middleware.RequireAuth(), h.middleware.RequireAdmin())

	admin.Get("/users", h.listUsers)
	admin.Patch("/users/:id", h.updateUser)
}

func (h *AdminHandler) listUsers(c *fiber.Ctx) error {
	users, err := h.adminController.ListUsers(c.UserContext())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}

func (h *AdminHandler) updateUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	request := &adminController.UpdateUserRequest{
		Name:     optionalFormValue(c, "name"),
		JobTitle: optionalFormValue(c, "job_title"),
	}

	if isAdmin := optionalFormValue(c, "is_admin"); isAdmin != nil {
		admin := *isAdmin == "true" || *isAdmin == "1" || *isAdmin == "on"
		request.IsAdmin = &admin
	}

	user, err := h.adminController.UpdateUser(c.UserContext(), userID, request)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(fiber.Map{"user": user.ToProfile()})
}

func (h *AdminHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, adminController.ErrValidation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, adminController.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
