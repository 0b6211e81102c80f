package courseRoutes

import (
	controllers "topclass/controllers/course"
	validators "topclass/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", validators.CatalogQuery(), controllers.ListCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)
}
