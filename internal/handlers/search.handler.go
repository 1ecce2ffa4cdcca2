package handlers

import (
	"errors"

	"modreport/internal/app"
	"modreport/internal/handlers/middleware"
	"modreport/internal/logger"

	searchController "modreport/internal/controllers/search"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	Handler
	searchController searchController.SearchControllerInterface
}

func NewSearchHandler(app app.App, router fiber.Router) *SearchHandler {
	return &SearchHandler{
		searchController: app.Controllers.Search,
		Handler: Handler{
			log:        logger.New("handlers").File("search_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *SearchHandler) Register() {
	h.router.Get("/search", h.middleware.RequireAuth(), h.search)
}

func (h *SearchHandler) search(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	request := &searchController.SearchRequest{
		Kind:      c.Query("kind"),
		Query:     c.Query("q"),
		Status:    c.Query("status"),
		ModID:     c.Query("mod_id"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	response, err := h.searchController.Search(c.UserContext(), user, request)
	if err != nil {
		if errors.Is(err, searchController.ErrValidation) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(response)
}
