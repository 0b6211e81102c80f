package models

import "gorm.io/gorm"

// CourseProgress tracks how far a user is through a purchased course.
// A zero-progress row is created at purchase time.
type CourseProgress struct {
	gorm.Model
	UserID          uint `json:"user_id" gorm:"index;not null"`
	CourseID        uint `json:"course_id" gorm:"index;not null"`
	ProgressPercent int  `json:"progress_percent" gorm:"default:0"`
	IsDeleted       bool `json:"-" gorm:"default:false"`
}
