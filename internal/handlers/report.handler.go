package handlers

import (
	"errors"

	"modreport/internal/app"
	"modreport/internal/handlers/middleware"
	"modreport/internal/logger"

	reportController "modreport/internal/controllers/reports"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	Handler
	reportController reportController.ReportControllerInterface
	api              fiber.Router
}

func NewReportHandler(app app.App, router fiber.Router, api fiber.Router) *ReportHandler {
	return &ReportHandler{
		reportController: app.Controllers.Report,
		api:              api,
		Handler: Handler{
			log:        logger.New("handlers").File("report_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ReportHandler) Register() {
	reports := h.router.Group("/reports", h.middleware.RequireAuth())
	reports.Get("/:id", h.view)
	reports.Get("/:id/pdf", h.exportPDF)

	apiReports := h.api.Group("/reports", h.middleware.RequireAuth())
	apiReports.Post("/:id/comments", h.addComment)
}

func (h *ReportHandler) view(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	shiftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}

	html, err := h.reportController.View(c.UserContext(), user, shiftID)
	if err != nil {
		return h.handleError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// exportPDF degrades softly: when the PDF engine is missing the client lands
// back on the HTML report instead of getting an error page.
func (h *ReportHandler) exportPDF(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	shiftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}

	pdf, filename, err := h.reportController.ExportPDF(c.UserContext(), user, shiftID)
	if err != nil {
		if errors.Is(err, reportController.ErrRendererUnavailable) {
			return c.Redirect("/reports/"+shiftID.String()+"?pdf=unavailable", fiber.StatusFound)
		}
		return h.handleError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func (h *ReportHandler) addComment(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	shiftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}

	comment, err := h.reportController.AddComment(
		c.UserContext(),
		user,
		shiftID,
		c.FormValue("body"),
	)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

func (h *ReportHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reportController.ErrValidation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, reportController.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden",
		})
	case errors.Is(err, reportController.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Report not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
