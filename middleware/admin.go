package middleware

import (
	"topclass/database"
	"topclass/models"

	"github.com/gofiber/fiber/v2"
)

// AdminOnly gates a route to users with the ADMIN role. Must run after
// JWTMiddleware so the user id is present in the request context.
func AdminOnly(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return Fail(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return Fail(c, fiber.StatusUnauthorized, "User not found!")
	}

	if user.Role != "ADMIN" {
		return Fail(c, fiber.StatusForbidden, "Access denied! Admin only.")
	}

	return c.Next()
}
