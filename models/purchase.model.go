package models

import "gorm.io/gorm"

// Purchase statuses
const (
	PurchaseCompleted = "completed"
	PurchasePending   = "pending"
	PurchaseRefunded  = "refunded"
	PurchaseCancelled = "cancelled"
)

// Purchase records a settled course order. Purchases are never hard-deleted
// and keep their course reference even after the course is soft-deleted.
type Purchase struct {
	gorm.Model
	OrderNo       string `json:"order_no" gorm:"uniqueIndex;not null"`
	UserID        uint   `json:"user_id" gorm:"index;not null"`
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	Course        Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Amount        int64  `json:"amount" gorm:"default:0"`
	Status        string `json:"status" gorm:"default:'completed'"` // completed, pending, refunded, cancelled
	PaymentMethod string `json:"payment_method" gorm:"default:'card'"`
	RefundReason  string `json:"refund_reason"`
	IsDeleted     bool   `json:"-" gorm:"default:false"`
}
