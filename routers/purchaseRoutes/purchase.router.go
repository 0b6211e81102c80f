package purchaseRoutes

import (
	purchaseController "topclass/controllers/purchase"
	"topclass/middleware"
	validators "topclass/validators/purchase"

	"github.com/gofiber/fiber/v2"
)

// SetupPurchaseRoutes sets up the user-facing purchase routes
func SetupPurchaseRoutes(app *fiber.App) {
	purchaseGroup := app.Group("/purchases")

	purchaseGroup.Post("/", middleware.JWTMiddleware, validators.CreatePurchase(), purchaseController.CreatePurchase)
	purchaseGroup.Get("/", middleware.JWTMiddleware, purchaseController.GetPurchases)
}
