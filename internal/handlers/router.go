package handlers

import (
	"modreport/internal/app"
	"modreport/internal/handlers/middleware"
	"modreport/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewAuthHandler(*app, api).Register()
	NewShiftHandler(*app, api).Register()
	NewRecordHandler(*app, api).Register()
	NewSearchHandler(*app, api).Register()
	NewAdminHandler(*app, api).Register()

	// Report pages live outside /api so they can be linked and printed
	// directly; the comment endpoint stays under /api with the other
	// mutations.
	NewReportHandler(*app, router, api).Register()

	return nil
}

// optionalFormValue returns the submitted value for key, or nil when the form
// did not include the field at all. Distinguishes "clear this" from "leave
// this alone" on sparse patches.
func optionalFormValue(c *fiber.Ctx, key string) *string {
	args := c.Request().PostArgs()
	if !args.Has(key) {
		return nil
	}
	value := string(args.Peek(key))
	return &value
}

// formFields collects every submitted form field into a map for sparse
// field patches.
func formFields(c *fiber.Ctx) map[string]string {
	fields := make(map[string]string)
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		fields[string(key)] = string(value)
	})
	return fields
}
