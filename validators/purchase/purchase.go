package purchaseValidator

import (
	"strconv"
	"strings"

	"topclass/middleware"
	"topclass/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePurchase validates the purchase request body
func CreatePurchase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"courseId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course ID is required!",
			})
		}

		c.Locals("courseID", int(reqData.CourseID))
		return c.Next()
	}
}

// RefundPurchase validates the admin refund request. A refund always
// carries a non-empty reason.
func RefundPurchase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		purchaseID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || purchaseID <= 0 {
			return middleware.Fail(c, fiber.StatusBadRequest, "Invalid Purchase ID!")
		}

		reqData := new(struct {
			Reason string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		reqData.Reason = strings.TrimSpace(reqData.Reason)
		if reqData.Reason == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"reason": "Refund reason is required!",
			})
		}

		c.Locals("purchaseID", purchaseID)
		c.Locals("refundReason", reqData.Reason)
		return c.Next()
	}
}

var validPurchaseStatuses = map[string]bool{
	models.PurchaseCompleted: true,
	models.PurchasePending:   true,
	models.PurchaseRefunded:  true,
	models.PurchaseCancelled: true,
}

// AdminPurchaseList validates the admin revenue listing query
func AdminPurchaseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, _ := strconv.Atoi(c.Query("page", "1"))
		limit, _ := strconv.Atoi(c.Query("limit", "20"))
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 20
		}

		status := strings.TrimSpace(c.Query("status"))
		if status != "" && !validPurchaseStatuses[status] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be completed, pending, refunded, or cancelled!",
			})
		}

		c.Locals("page", page)
		c.Locals("limit", limit)
		c.Locals("purchaseStatus", status)
		return c.Next()
	}
}
