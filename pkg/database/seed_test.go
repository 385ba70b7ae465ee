package database

import (
	"testing"

	"course_catalog_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedPopulatesEmptyStore(t *testing.T) {
	store := repository.NewMemStorage()
	require.NoError(t, Seed(store))

	courses, err := store.GetAllCourses()
	require.NoError(t, err)
	assert.Len(t, courses, 4)

	instructors, err := store.GetAllInstructors()
	require.NoError(t, err)
	assert.Len(t, instructors, 4)

	categories, err := store.GetAllCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 6)

	testimonials, err := store.GetAllTestimonials()
	require.NoError(t, err)
	assert.Len(t, testimonials, 3)

	// Every seeded course joins to a real instructor.
	joined, err := store.GetCoursesWithInstructors()
	require.NoError(t, err)
	assert.Len(t, joined, len(courses))
}

func TestSeedIsIdempotent(t *testing.T) {
	store := repository.NewMemStorage()
	require.NoError(t, Seed(store))
	require.NoError(t, Seed(store))

	courses, err := store.GetAllCourses()
	require.NoError(t, err)
	assert.Len(t, courses, 4)
}

func TestSeedKeepsDenormalizedCounters(t *testing.T) {
	store := repository.NewMemStorage()
	require.NoError(t, Seed(store))

	categories, err := store.GetAllCategories()
	require.NoError(t, err)

	// Counters are seeded values, independent of actual course rows.
	byName := make(map[string]int)
	for _, c := range categories {
		byName[c.Name] = c.CoursesCount
	}
	assert.Equal(t, 12, byName["Culinary Arts"])
	assert.Equal(t, 4, byName["Sports"])
}
