package courseRoutes

import (
	controllers "topclass/controllers/course"
	purchaseController "topclass/controllers/purchase"
	"topclass/middleware"
	validators "topclass/validators/course"
	purchaseValidators "topclass/validators/purchase"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up all back-office routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course CRUD
	adminGroup.Post("/courses", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Put("/courses/:id", validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/courses/:id", validators.CourseID(), controllers.AdminDeleteCourse)
	adminGroup.Get("/courses", validators.AdminList(), controllers.AdminListCourses)

	// Image upload
	adminGroup.Post("/upload", validators.UploadImage(), controllers.AdminUploadImage)

	// Revenue
	adminGroup.Get("/purchases", purchaseValidators.AdminPurchaseList(), purchaseController.AdminListPurchases)
	adminGroup.Post("/purchases/:id/refund", purchaseValidators.RefundPurchase(), purchaseController.AdminRefundPurchase)

	// Dashboard
	adminGroup.Get("/dashboard/stats", controllers.AdminDashboardStats)
}
