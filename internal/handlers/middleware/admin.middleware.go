package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAdmin gates oversight routes (user management, reassignment). It runs
// after RequireAuth, so a missing user means the chain is miswired rather than
// an anonymous request.
func (m *Middleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := m.log.Function("RequireAdmin")

		user := GetUser(c)
		if user == nil {
			log.Warn("admin route reached without authenticated user", "path", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		if !user.IsAdmin {
			log.Info("non-admin denied", "userID", user.ID, "path", c.Path())
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden",
			})
		}

		return c.Next()
	}
}
