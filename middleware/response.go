package middleware

import "github.com/gofiber/fiber/v2"

// Success writes the uniform success envelope: { success: true, data }
func Success(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// Fail writes the uniform failure envelope: { success: false, error }
func Fail(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// FailWithDetails writes the failure envelope with a details object attached
func FailWithDetails(c *fiber.Ctx, statusCode int, message string, details interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"error":   message,
		"details": details,
	})
}

// ValidationErrorResponse rejects a request with per-field validation errors
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return FailWithDetails(c, fiber.StatusBadRequest, "Validation failed!", errors)
}
