package purchaseController

import (
	"topclass/catalog"
	"topclass/database"
	"topclass/middleware"
	"topclass/models"
	"topclass/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreatePurchase records an instantly-settled course purchase and seeds a
// zero-progress tracking record.
func CreatePurchase(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Fail(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "User not found!")
	}

	courseID := c.Locals("courseID").(int)

	// Course must exist and not be deleted
	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "Course not found!")
	}

	// Check for an existing completed purchase for this (user, course) pair
	var existing models.Purchase
	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND status = ?", userID, courseID, models.PurchaseCompleted).
		First(&existing).Error; err == nil {
		return middleware.Fail(c, fiber.StatusConflict, "You have already purchased this course!")
	}

	purchase := models.Purchase{
		OrderNo:       uuid.NewString(),
		UserID:        userID,
		CourseID:      uint(courseID),
		Amount:        course.Price,
		Status:        models.PurchaseCompleted,
		PaymentMethod: "card",
	}
	progress := models.CourseProgress{
		UserID:   userID,
		CourseID: uint(courseID),
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&purchase).Error; err != nil {
		tx.Rollback()
		return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to record purchase!")
	}
	if err := tx.Create(&progress).Error; err != nil {
		tx.Rollback()
		return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to record purchase!")
	}
	tx.Commit()

	go utils.SendPurchaseConfirmation(user.Email, user.Name, course.Title)

	return middleware.Success(c, fiber.StatusCreated, purchase)
}

// GetPurchases lists the caller's completed purchases, newest first
func GetPurchases(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Fail(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	var purchases []models.Purchase
	if err := database.Database.Db.
		Where("user_id = ? AND status = ? AND is_deleted = ?", userID, models.PurchaseCompleted, false).
		Preload("Course").
		Order("created_at desc").
		Find(&purchases).Error; err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to fetch purchases!")
	}

	return middleware.Success(c, fiber.StatusOK, purchases)
}

// AdminListPurchases lists purchases for the revenue view with an
// optional status filter
func AdminListPurchases(c *fiber.Ctx) error {
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	status := c.Locals("purchaseStatus").(string)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Purchase{}).Where("is_deleted = ?", false)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var purchases []models.Purchase
	if err := db.Preload("Course").Offset(offset).Limit(limit).Order("created_at desc").Find(&purchases).Error; err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to fetch purchases!")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{
		"purchases": purchases,
		"pagination": catalog.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: catalog.TotalPages(total, limit),
		},
	})
}

// AdminRefundPurchase moves a completed purchase to refunded. The
// progress record is intentionally left in place.
func AdminRefundPurchase(c *fiber.Ctx) error {
	purchaseID := c.Locals("purchaseID").(int)
	reason := c.Locals("refundReason").(string)

	var purchase models.Purchase
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", purchaseID, false).First(&purchase).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "Purchase not found!")
	}

	if purchase.Status != models.PurchaseCompleted {
		return middleware.Fail(c, fiber.StatusConflict, "Only completed purchases can be refunded!")
	}

	purchase.Status = models.PurchaseRefunded
	purchase.RefundReason = reason

	if err := database.Database.Db.Save(&purchase).Error; err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to refund purchase!")
	}

	return middleware.Success(c, fiber.StatusOK, purchase)
}
