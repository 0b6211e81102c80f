package controllers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"

	"topclass/catalog"
	"topclass/database"
	"topclass/middleware"
	"topclass/models"
	"topclass/storage"
	courseValidator "topclass/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminCreateCourse creates a new course
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseDraft)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	status := reqData.Status
	if status == "" {
		status = models.CourseDraft
	}
	level := reqData.Level
	if level == "" {
		level = models.LevelBeginner
	}

	course := models.Course{
		Title:          reqData.Title,
		Description:    reqData.Description,
		Instructor:     reqData.Instructor,
		Category:       reqData.Category,
		Status:         status,
		Published:      status == models.CoursePublished,
		Price:          reqData.Price,
		OriginalPrice:  reqData.OriginalPrice,
		Duration:       reqData.Duration,
		Level:          level,
		IsFeatured:     reqData.IsFeatured,
		Tags:           datatypes.NewJSONSlice(reqData.Tags),
		ThumbnailURL:   reqData.ThumbnailURL,
		DetailImageURL: reqData.DetailImageURL,
	}

	// Free-category courses never carry a price.
	if course.Category == catalog.CategoryFree {
		course.Price = 0
		course.OriginalPrice = 0
	}
	if course.Tags == nil {
		course.Tags = datatypes.NewJSONSlice([]string{})
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return storeErrorResponse(c, err)
	}

	return middleware.Success(c, fiber.StatusCreated, course)
}

// AdminUpdateCourse applies a sparse patch to an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "Course not found!")
	}

	reqData, ok := c.Locals("validatedCoursePatch").(*courseValidator.CoursePatch)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	// Apply only the fields present in the request.
	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.Instructor != nil {
		course.Instructor = *reqData.Instructor
	}
	if reqData.Category != nil {
		course.Category = *reqData.Category
	}
	if reqData.Status != nil {
		course.Status = *reqData.Status
		course.Published = course.Status == models.CoursePublished
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.OriginalPrice != nil {
		course.OriginalPrice = *reqData.OriginalPrice
	}
	if reqData.Duration != nil {
		course.Duration = *reqData.Duration
	}
	if reqData.Level != nil {
		course.Level = *reqData.Level
	}
	if reqData.IsFeatured != nil {
		course.IsFeatured = *reqData.IsFeatured
	}
	if reqData.Tags != nil {
		tags := *reqData.Tags
		if tags == nil {
			tags = []string{}
		}
		course.Tags = datatypes.NewJSONSlice(tags)
	}
	if reqData.ThumbnailURL != nil {
		course.ThumbnailURL = *reqData.ThumbnailURL
	}
	if reqData.DetailImageURL != nil {
		course.DetailImageURL = *reqData.DetailImageURL
	}

	if course.Category == catalog.CategoryFree {
		course.Price = 0
		course.OriginalPrice = 0
	}

	// Save stamps UpdatedAt on every patch.
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return storeErrorResponse(c, err)
	}

	return middleware.Success(c, fiber.StatusOK, nil)
}

// AdminDeleteCourse soft deletes a course. Existing purchases keep their
// course reference.
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "Course not found!")
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to delete course!")
	}

	return middleware.Success(c, fiber.StatusOK, nil)
}

// AdminListCourses lists all courses for the back office, drafts included
func AdminListCourses(c *fiber.Ctx) error {
	filter := c.Locals("adminCourseFilter").(catalog.Filter)
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	offset := (page - 1) * limit

	courses, total, err := Courses.Search(filter, offset, limit)
	if err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
	}

	return middleware.Success(c, fiber.StatusOK, catalog.Result{
		Courses: courses,
		Pagination: catalog.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: catalog.TotalPages(total, limit),
		},
	})
}

// AdminUploadImage stores a course image in the object store and returns
// its public URL. Size and MIME checks already ran in the validator.
func AdminUploadImage(c *fiber.Ctx) error {
	slot := c.Locals("uploadSlot").(string)
	file, ok := c.Locals("uploadFile").(*multipart.FileHeader)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	src, err := file.Open()
	if err != nil {
		return middleware.Fail(c, fiber.StatusBadRequest, "Failed to read uploaded file!")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return middleware.Fail(c, fiber.StatusBadRequest, "Failed to read uploaded file!")
	}

	name := storage.ObjectName(slot, file.Filename)
	url, err := storage.Images.Upload(name, file.Header.Get("Content-Type"), data)
	if err != nil {
		log.Printf("Error uploading image: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to upload file!")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"url":     url,
	})
}

// storeErrorResponse translates store failures into the failure taxonomy:
// duplicate, missing-required, reference-error, access-denied, unknown.
func storeErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return middleware.Fail(c, fiber.StatusConflict, "A course with this title already exists!")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return middleware.Fail(c, fiber.StatusConflict, "A course with this title already exists!")
		case "23502":
			return middleware.Fail(c, fiber.StatusBadRequest, "A required field is missing!")
		case "23503":
			return middleware.Fail(c, fiber.StatusBadRequest, "Invalid category or instructor reference!")
		case "42501":
			return middleware.Fail(c, fiber.StatusForbidden, "Access to the course store was denied!")
		}
	}

	log.Printf("Error saving course: %v", err)
	return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to save course!")
}
