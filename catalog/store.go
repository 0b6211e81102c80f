package catalog

import (
	"strings"

	"topclass/models"

	"gorm.io/gorm"
)

// StoreRepository serves catalog searches from the relational store.
type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// Search runs a filtered, paginated course query. The public catalog only
// sees published courses; the admin listing sets IncludeUnpublished.
func (r *StoreRepository) Search(f Filter, offset, limit int) ([]models.Course, int64, error) {
	q := r.db.Model(&models.Course{}).Where("is_deleted = ?", false)

	if !f.IncludeUnpublished {
		q = q.Where("published = ?", true)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []models.Course
	if err := q.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// FixtureRepository serves the live catalog branch from the fixture union.
// Used on demo installs without a reachable store (CATALOG_SOURCE=fixture).
type FixtureRepository struct {
	fixtures *FixtureSet
}

func NewFixtureRepository(fixtures *FixtureSet) *FixtureRepository {
	return &FixtureRepository{fixtures: fixtures}
}

func (r *FixtureRepository) Search(f Filter, offset, limit int) ([]models.Course, int64, error) {
	set := r.fixtures.All()

	if f.Category != "" {
		narrowed := make([]models.Course, 0, len(set))
		for _, course := range set {
			if course.Category == f.Category {
				narrowed = append(narrowed, course)
			}
		}
		set = narrowed
	}
	if f.Status != "" {
		narrowed := make([]models.Course, 0, len(set))
		for _, course := range set {
			if course.Status == f.Status {
				narrowed = append(narrowed, course)
			}
		}
		set = narrowed
	}
	set = FilterSearch(set, f.Search)

	total := int64(len(set))
	if offset > len(set) {
		offset = len(set)
	}
	end := offset + limit
	if end > len(set) {
		end = len(set)
	}

	return set[offset:end], total, nil
}
