package catalog

import (
	"fmt"
	"testing"

	"topclass/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	lastFilter Filter
	lastOffset int
	lastLimit  int
	courses    []models.Course
	total      int64
	err        error
}

func (s *stubRepository) Search(f Filter, offset, limit int) ([]models.Course, int64, error) {
	s.lastFilter = f
	s.lastOffset = offset
	s.lastLimit = limit
	return s.courses, s.total, s.err
}

func newTestResolver() (*Resolver, *stubRepository) {
	store := &stubRepository{}
	return NewResolver(DefaultFixtures(), store), store
}

func TestResolveFreeCategoryPagination(t *testing.T) {
	resolver, _ := newTestResolver()

	// 8 free fixture courses, 2 per page
	result, err := resolver.Resolve(Query{Category: CategoryFree, Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Len(t, result.Courses, 2)
	assert.Equal(t, int64(8), result.Pagination.Total)
	assert.Equal(t, 4, result.Pagination.TotalPages)
	assert.Equal(t, 1, result.Pagination.Page)

	for _, course := range result.Courses {
		assert.Equal(t, CategoryFree, course.Category)
	}
}

func TestResolveSliceLengthInvariant(t *testing.T) {
	resolver, _ := newTestResolver()

	// For every valid page the slice length is
	// min(limit, max(0, total - (page-1)*limit)).
	const limit = 3
	total := 8 // free fixture set

	for page := 1; page <= 5; page++ {
		result, err := resolver.Resolve(Query{Category: CategoryFree, Page: page, Limit: limit})
		require.NoError(t, err)

		want := total - (page-1)*limit
		if want < 0 {
			want = 0
		}
		if want > limit {
			want = limit
		}

		assert.Len(t, result.Courses, want, "page %d", page)
		assert.Equal(t, 3, result.Pagination.TotalPages)
	}
}

func TestResolveOutOfRangePageIsEmptyNotError(t *testing.T) {
	resolver, _ := newTestResolver()

	result, err := resolver.Resolve(Query{Category: CategoryFree, Page: 99, Limit: 12})
	require.NoError(t, err)
	assert.Empty(t, result.Courses)
	assert.Equal(t, int64(8), result.Pagination.Total)
}

func TestResolveDefaults(t *testing.T) {
	resolver, _ := newTestResolver()

	result, err := resolver.Resolve(Query{Category: CategoryFree})
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, result.Pagination.Page)
	assert.Equal(t, DefaultLimit, result.Pagination.Limit)
	assert.Len(t, result.Courses, 8)
}

func TestResolveEarlyBirdTagWinsOverCategory(t *testing.T) {
	resolver, _ := newTestResolver()

	for _, category := range []string{"", CategoryFree, CategoryDesign, "nonexistent"} {
		result, err := resolver.Resolve(Query{Tag: TagEarlyBird, Category: category, Page: 1, Limit: 50})
		require.NoError(t, err)

		require.NotEmpty(t, result.Courses, "category %q", category)
		for _, course := range result.Courses {
			assert.True(t, course.IsEarlyBird, "category %q returned non-early-bird course %q", category, course.Title)
		}
	}
}

func TestResolveAllUnionsEveryFixtureSet(t *testing.T) {
	resolver, _ := newTestResolver()

	for _, category := range []string{"", CategoryAll} {
		result, err := resolver.Resolve(Query{Category: category, Page: 1, Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, int64(26), result.Pagination.Total)
		assert.Len(t, result.Courses, 26)
	}
}

func TestResolveUnknownCategoryDelegatesToStore(t *testing.T) {
	resolver, store := newTestResolver()
	store.courses = []models.Course{{Title: "Piano for Professionals", Category: "music"}}
	store.total = 13

	result, err := resolver.Resolve(Query{Category: "music", Search: "piano", Page: 2, Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, "music", store.lastFilter.Category)
	assert.Equal(t, "piano", store.lastFilter.Search)
	assert.False(t, store.lastFilter.IncludeUnpublished)
	assert.Equal(t, 5, store.lastOffset)
	assert.Equal(t, 5, store.lastLimit)

	assert.Equal(t, int64(13), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Len(t, result.Courses, 1)
}

func TestResolveStoreErrorSurfaces(t *testing.T) {
	resolver, store := newTestResolver()
	store.err = fmt.Errorf("connection refused")

	_, err := resolver.Resolve(Query{Category: "music"})
	assert.Error(t, err)
}

func TestFilterSearchMatchesTitleAndDescription(t *testing.T) {
	courses := []models.Course{
		{Title: "React Mastery", Description: "Build web apps"},
		{Title: "Cooking 101", Description: "From pans to plates with react-ive heat"},
		{Title: "Gardening", Description: "Soil and seeds"},
	}

	filtered := FilterSearch(courses, "REACT")
	assert.Len(t, filtered, 2)
}

func TestFilterSearchIsIdempotent(t *testing.T) {
	resolver, _ := newTestResolver()

	result, err := resolver.Resolve(Query{Category: CategoryFree, Search: "affiliate", Page: 1, Limit: 50})
	require.NoError(t, err)
	require.NotEmpty(t, result.Courses)

	again := FilterSearch(result.Courses, "affiliate")
	assert.Equal(t, result.Courses, again)
}

func TestSearchNarrowsEarlyBirdSet(t *testing.T) {
	resolver, _ := newTestResolver()

	result, err := resolver.Resolve(Query{Tag: TagEarlyBird, Search: "youtube", Page: 1, Limit: 50})
	require.NoError(t, err)

	require.Len(t, result.Courses, 1)
	assert.Contains(t, result.Courses[0].Title, "YouTube")
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 4, TotalPages(8, 2))
	assert.Equal(t, 1, TotalPages(1, 12))
	assert.Equal(t, 0, TotalPages(0, 12))
	assert.Equal(t, 3, TotalPages(25, 12))
}
