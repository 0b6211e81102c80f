package catalog

import (
	"strings"

	"topclass/models"
)

// Catalog filter keys
const (
	TagEarlyBird = "early-bird"

	CategoryAll         = "all"
	CategoryFree        = "free"
	CategoryProgramming = "programming"
	CategoryDesign      = "design"
	CategoryMarketing   = "marketing"
	CategoryBusiness    = "business"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// Query is a catalog listing request.
type Query struct {
	Category string
	Tag      string
	Search   string
	Page     int
	Limit    int
}

// Pagination describes the window a Result covers.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Result is a resolved catalog page.
type Result struct {
	Courses    []models.Course `json:"courses"`
	Pagination Pagination      `json:"pagination"`
}

// Filter narrows a repository search. Status and IncludeUnpublished are
// only meaningful for the admin listing; the public catalog always serves
// published courses.
type Filter struct {
	Category           string
	Search             string
	Status             string
	IncludeUnpublished bool
}

// Repository supplies courses for the live catalog branch and the admin
// course list. Two implementations exist: the GORM-backed store and the
// in-memory fixture set, selected by configuration.
type Repository interface {
	Search(f Filter, offset, limit int) ([]models.Course, int64, error)
}

// Resolver answers catalog queries. Known category labels and the
// early-bird tag are served from fixture sets; anything else goes to the
// injected repository.
type Resolver struct {
	fixtures *FixtureSet
	store    Repository
}

func NewResolver(fixtures *FixtureSet, store Repository) *Resolver {
	return &Resolver{fixtures: fixtures, store: store}
}

// Resolve selects the source set for the query, applies the search filter
// and returns a deterministic page. Out-of-range pages yield an empty
// slice, not an error.
func (r *Resolver) Resolve(q Query) (Result, error) {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}

	// The early-bird tag wins over any category.
	if q.Tag == TagEarlyBird {
		return paginate(FilterSearch(r.fixtures.EarlyBird(), q.Search), q), nil
	}

	if set, ok := r.fixtures.Category(q.Category); ok {
		return paginate(FilterSearch(set, q.Search), q), nil
	}

	if q.Category == "" || q.Category == CategoryAll {
		return paginate(FilterSearch(r.fixtures.All(), q.Search), q), nil
	}

	// Unknown label: live query against the store.
	offset := (q.Page - 1) * q.Limit
	courses, total, err := r.store.Search(Filter{Category: q.Category, Search: q.Search}, offset, q.Limit)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Courses: courses,
		Pagination: Pagination{
			Page:       q.Page,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: TotalPages(total, q.Limit),
		},
	}, nil
}

// FilterSearch narrows courses to those whose title or description
// contains the term, case-insensitively. An empty term keeps the set.
func FilterSearch(courses []models.Course, search string) []models.Course {
	if search == "" {
		return courses
	}

	term := strings.ToLower(search)
	filtered := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if strings.Contains(strings.ToLower(course.Title), term) ||
			strings.Contains(strings.ToLower(course.Description), term) {
			filtered = append(filtered, course)
		}
	}
	return filtered
}

// TotalPages is ceil(total / limit).
func TotalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

func paginate(courses []models.Course, q Query) Result {
	total := int64(len(courses))

	offset := (q.Page - 1) * q.Limit
	if offset > len(courses) {
		offset = len(courses)
	}
	end := offset + q.Limit
	if end > len(courses) {
		end = len(courses)
	}

	return Result{
		Courses: courses[offset:end],
		Pagination: Pagination{
			Page:       q.Page,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: TotalPages(total, q.Limit),
		},
	}
}
