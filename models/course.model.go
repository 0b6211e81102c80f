package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course statuses
const (
	CourseDraft     = "draft"
	CoursePublished = "published"
	CourseArchived  = "archived"
)

// Course levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Course represents a storefront course
type Course struct {
	gorm.Model
	Title          string                      `json:"title" gorm:"uniqueIndex;not null"`
	Description    string                      `json:"description" gorm:"not null"`
	Instructor     string                      `json:"instructor"`
	Category       string                      `json:"category" gorm:"index"`
	Price          int64                       `json:"price" gorm:"default:0"`
	OriginalPrice  int64                       `json:"original_price" gorm:"default:0"`
	Discount       uint                        `json:"discount" gorm:"default:0"` // percent off original price
	Duration       int64                       `json:"duration" gorm:"default:0"` // duration in minutes
	Level          string                      `json:"level" gorm:"default:'beginner'"`
	Status         string                      `json:"status" gorm:"default:'draft'"` // draft, published, archived
	Published      bool                        `json:"published" gorm:"default:false"`
	IsFeatured     bool                        `json:"is_featured" gorm:"default:false"`
	IsEarlyBird    bool                        `json:"is_early_bird" gorm:"default:false"`
	Tags           datatypes.JSONSlice[string] `json:"tags"`
	ThumbnailURL   string                      `json:"thumbnail_url"`
	DetailImageURL string                      `json:"detail_image_url"`
	StudentCount   int64                       `json:"student_count" gorm:"default:0"`
	Rating         float64                     `json:"rating" gorm:"default:0"`
	ReviewCount    int64                       `json:"review_count" gorm:"default:0"`
	IsDeleted      bool                        `json:"-" gorm:"default:false"`
}
