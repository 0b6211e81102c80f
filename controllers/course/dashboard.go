package controllers

import (
	"topclass/database"
	"topclass/middleware"
	"topclass/models"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboardStats returns the back-office overview numbers
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalCourses, totalPurchases int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&models.Purchase{}).Where("is_deleted = ?", false).Count(&totalPurchases)

	var totalRevenue int64
	if err := db.Model(&models.Purchase{}).
		Where("status = ? AND is_deleted = ?", models.PurchaseCompleted, false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to fetch stats!")
	}

	var refunded int64
	db.Model(&models.Purchase{}).Where("status = ? AND is_deleted = ?", models.PurchaseRefunded, false).Count(&refunded)

	refundRate := 0.0
	if totalPurchases > 0 {
		refundRate = float64(refunded) / float64(totalPurchases) * 100
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{
		"total_users":     totalUsers,
		"total_courses":   totalCourses,
		"total_purchases": totalPurchases,
		"total_revenue":   totalRevenue,
		"refund_rate":     refundRate,
	})
}
