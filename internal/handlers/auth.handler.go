package handlers

import (
	"errors"
	"time"

	"modreport/internal/app"
	"modreport/internal/handlers/middleware"
	"modreport/internal/logger"
	"modreport/internal/services"

	authController "modreport/internal/controllers/auth"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Handler
	authController authController.AuthControllerInterface
	sessionService *services.SessionService
	production     bool
}

func NewAuthHandler(app app.App, router fiber.Router) *AuthHandler {
	return &AuthHandler{
		authController: app.Controllers.Auth,
		sessionService: app.Services.Session,
		production:     app.Config.Environment == "production",
		Handler: Handler{
			log:        logger.New("handlers").File("auth_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AuthHandler) Register() {
	auth := h.router.Group("/auth")

	auth.Post("/register", h.register)
	auth.Post("/login", h.login)

	protected := auth.Group("/", h.middleware.RequireAuth())
	protected.Post("/logout", h.logout)
	protected.Get("/me", h.me)
	protected.Patch("/profile", h.updateProfile)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	request := &authController.RegisterRequest{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	user, err := h.authController.Register(c.UserContext(), request)
	if err != nil {
		return h.handleError(c, err)
	}

	// Auto-login after registration
	token, err := h.sessionService.Create(c.UserContext(), user)
	if err != nil {
		return h.handleError(c, err)
	}
	h.setSessionCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": user.ToProfile(),
	})
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	user, err := h.authController.Login(
		c.UserContext(),
		c.FormValue("email"),
		c.FormValue("password"),
	)
	if err != nil {
		return h.handleError(c, err)
	}

	token, err := h.sessionService.Create(c.UserContext(), user)
	if err != nil {
		return h.handleError(c, err)
	}
	h.setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"user": user.ToProfile(),
	})
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	log := h.log.Function("logout")

	token := c.Cookies(services.SessionCookieName)
	if token != "" {
		if err := h.sessionService.Destroy(c.UserContext(), token); err != nil {
			log.Warn("failed to destroy session", "error", err)
		}
	}
	h.clearSessionCookie(c)

	return c.JSON(fiber.Map{
		"message": "logged out",
	})
}

func (h *AuthHandler) me(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	return c.JSON(fiber.Map{
		"user": user.ToProfile(),
	})
}

func (h *AuthHandler) updateProfile(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	request := &authController.UpdateProfileRequest{
		Name:     optionalFormValue(c, "name"),
		JobTitle: optionalFormValue(c, "job_title"),
		Timezone: optionalFormValue(c, "timezone"),
	}

	updated, err := h.authController.UpdateProfile(c.UserContext(), user, request)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"user": updated.ToProfile(),
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionService.TTL()),
		HTTPOnly: true,
		Secure:   h.production,
		SameSite: "Lax",
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.production,
		SameSite: "Lax",
	})
}

func (h *AuthHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, authController.ErrValidation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, authController.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	case errors.Is(err, authController.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Email is already registered",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
