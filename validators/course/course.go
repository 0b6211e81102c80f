package courseValidator

import (
	"strconv"
	"strings"

	"topclass/catalog"
	"topclass/middleware"
	"topclass/models"

	"github.com/gofiber/fiber/v2"
)

var validStatuses = map[string]bool{
	models.CourseDraft:     true,
	models.CoursePublished: true,
	models.CourseArchived:  true,
}

var validLevels = map[string]bool{
	models.LevelBeginner:     true,
	models.LevelIntermediate: true,
	models.LevelAdvanced:     true,
}

// CatalogQuery validates the public catalog listing query. Missing or
// malformed page/limit fall back to defaults rather than erroring.
func CatalogQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, _ := strconv.Atoi(c.Query("page", "1"))
		limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(catalog.DefaultLimit)))

		c.Locals("catalogQuery", catalog.Query{
			Category: strings.TrimSpace(c.Query("category")),
			Tag:      strings.TrimSpace(c.Query("tag")),
			Search:   strings.TrimSpace(c.Query("search")),
			Page:     page,
			Limit:    limit,
		})
		return c.Next()
	}
}

// CourseDraft is the payload for admin course creation.
type CourseDraft struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Instructor     string   `json:"instructor"`
	Category       string   `json:"category"`
	Status         string   `json:"status"`
	Price          int64    `json:"price"`
	OriginalPrice  int64    `json:"original_price"`
	Duration       int64    `json:"duration"`
	Level          string   `json:"level"`
	IsFeatured     bool     `json:"is_featured"`
	Tags           []string `json:"tags"`
	ThumbnailURL   string   `json:"thumbnail_url"`
	DetailImageURL string   `json:"detail_image_url"`
}

// CreateCourseAdmin validates admin course creation request
func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseDraft)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Instructor = strings.TrimSpace(reqData.Instructor)
		reqData.Category = strings.TrimSpace(reqData.Category)
		reqData.Status = strings.TrimSpace(reqData.Status)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}
		if reqData.Status != "" && !validStatuses[reqData.Status] {
			errors["status"] = "Status must be draft, published, or archived!"
		}
		if reqData.Level != "" && !validLevels[reqData.Level] {
			errors["level"] = "Level must be beginner, intermediate, or advanced!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CoursePatch is a sparse update: only fields present in the body are applied.
type CoursePatch struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Instructor     *string   `json:"instructor"`
	Category       *string   `json:"category"`
	Status         *string   `json:"status"`
	Price          *int64    `json:"price"`
	OriginalPrice  *int64    `json:"original_price"`
	Duration       *int64    `json:"duration"`
	Level          *string   `json:"level"`
	IsFeatured     *bool     `json:"is_featured"`
	Tags           *[]string `json:"tags"`
	ThumbnailURL   *string   `json:"thumbnail_url"`
	DetailImageURL *string   `json:"detail_image_url"`
}

// UpdateCourseAdmin validates admin course update request
func UpdateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseCourseID(c)
		if err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}

		reqData := new(CoursePatch)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title cannot be empty!"
		}
		if reqData.Description != nil && strings.TrimSpace(*reqData.Description) == "" {
			errors["description"] = "Description cannot be empty!"
		}
		if reqData.Status != nil && !validStatuses[*reqData.Status] {
			errors["status"] = "Status must be draft, published, or archived!"
		}
		if reqData.Level != nil && !validLevels[*reqData.Level] {
			errors["level"] = "Level must be beginner, intermediate, or advanced!"
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCoursePatch", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter for delete/detail requests
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseCourseID(c)
		if err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// AdminList validates the admin course listing query
func AdminList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, _ := strconv.Atoi(c.Query("page", "1"))
		limit, _ := strconv.Atoi(c.Query("limit", "10"))
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}

		status := strings.TrimSpace(c.Query("status"))
		if status != "" && !validStatuses[status] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be draft, published, or archived!",
			})
		}

		c.Locals("adminCourseFilter", catalog.Filter{
			Category:           strings.TrimSpace(c.Query("category")),
			Search:             strings.TrimSpace(c.Query("search")),
			Status:             status,
			IncludeUnpublished: true,
		})
		c.Locals("page", page)
		c.Locals("limit", limit)
		return c.Next()
	}
}

func parseCourseID(c *fiber.Ctx) (int, error) {
	courseID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || courseID <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return courseID, nil
}
