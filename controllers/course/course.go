package controllers

import (
	"topclass/catalog"
	"topclass/database"
	"topclass/middleware"
	"topclass/models"

	"github.com/gofiber/fiber/v2"
)

// Catalog resolves public catalog queries; Courses backs the admin
// listing. Both are wired in main from configuration.
var (
	Catalog *catalog.Resolver
	Courses catalog.Repository
)

// InitCatalog injects the catalog resolver and course repository
func InitCatalog(resolver *catalog.Resolver, repo catalog.Repository) {
	Catalog = resolver
	Courses = repo
}

// ListCourses serves the public catalog listing
func ListCourses(c *fiber.Ctx) error {
	query, ok := c.Locals("catalogQuery").(catalog.Query)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	result, err := Catalog.Resolve(query)
	if err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
	}

	return middleware.Success(c, fiber.StatusOK, result)
}

// GetCourseDetails serves a single published course
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ? AND published = ?", courseID, false, true).
		First(&course).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "Course not found!")
	}

	return middleware.Success(c, fiber.StatusOK, course)
}
