package authRoutes

import (
	authController "topclass/controllers/auth"
	validators "topclass/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration and login routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", validators.Register(), authController.Register)
	authGroup.Post("/login", validators.Login(), authController.Login)
}
