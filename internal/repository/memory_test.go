package repository

import (
	"fmt"
	"sync"
	"testing"

	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertInstructor(name string) model.InsertInstructor {
	return model.InsertInstructor{
		Name:      name,
		Bio:       "bio",
		Specialty: "specialty",
		AvatarURL: "https://example.com/a.png",
		Title:     "Teacher",
	}
}

func insertCourse(title string, instructorID uint) model.InsertCourse {
	return model.InsertCourse{
		Title:            title,
		Description:      "description of " + title,
		ShortDescription: "short " + title,
		InstructorID:     instructorID,
		Category:         "Music",
		Difficulty:       model.DifficultyBeginner,
		Duration:         "1h 00m",
		LessonsCount:     5,
		ThumbnailURL:     "https://example.com/t.png",
		Price:            1000,
		Rating:           4,
		StudentsCount:    10,
	}
}

func TestMemStorageAssignsSequentialIDs(t *testing.T) {
	store := NewMemStorage()

	first, err := store.CreateInstructor(insertInstructor("A"))
	require.NoError(t, err)
	second, err := store.CreateInstructor(insertInstructor("B"))
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	course, err := store.CreateCourse(insertCourse("C1", first.ID))
	require.NoError(t, err)
	assert.Equal(t, uint(1), course.ID, "counters are per collection")
}

func TestMemStorageConcurrentCreateKeepsIDsUnique(t *testing.T) {
	store := NewMemStorage()
	const n = 100

	var wg sync.WaitGroup
	ids := make(chan uint, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instructor, err := store.CreateInstructor(insertInstructor(fmt.Sprintf("I%d", i)))
			if err == nil {
				ids <- instructor.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestMemStorageScansInInsertionOrder(t *testing.T) {
	store := NewMemStorage()
	instructor, err := store.CreateInstructor(insertInstructor("A"))
	require.NoError(t, err)

	for _, title := range []string{"first", "second", "third"} {
		_, err := store.CreateCourse(insertCourse(title, instructor.ID))
		require.NoError(t, err)
	}

	courses, err := store.GetAllCourses()
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, "first", courses[0].Title)
	assert.Equal(t, "second", courses[1].Title)
	assert.Equal(t, "third", courses[2].Title)
}

func TestMemStorageJoinDropsDanglingInstructors(t *testing.T) {
	store := NewMemStorage()
	instructor, err := store.CreateInstructor(insertInstructor("Real"))
	require.NoError(t, err)

	ok, err := store.CreateCourse(insertCourse("resolvable", instructor.ID))
	require.NoError(t, err)
	dangling, err := store.CreateCourse(insertCourse("dangling", instructor.ID+100))
	require.NoError(t, err)

	joined, err := store.GetCoursesWithInstructors()
	require.NoError(t, err)
	require.Len(t, joined, 1, "dangling course must vanish from listings")
	assert.Equal(t, ok.ID, joined[0].ID)
	assert.Equal(t, instructor.ID, joined[0].Instructor.ID)

	// The single-course join treats the dangling reference as absent.
	cwi, err := store.GetCourseWithInstructor(dangling.ID)
	require.NoError(t, err)
	assert.Nil(t, cwi)
}

func TestMemStorageGetInstructorWithCourses(t *testing.T) {
	store := NewMemStorage()
	a, err := store.CreateInstructor(insertInstructor("A"))
	require.NoError(t, err)
	b, err := store.CreateInstructor(insertInstructor("B"))
	require.NoError(t, err)

	_, err = store.CreateCourse(insertCourse("a1", a.ID))
	require.NoError(t, err)
	_, err = store.CreateCourse(insertCourse("b1", b.ID))
	require.NoError(t, err)
	_, err = store.CreateCourse(insertCourse("a2", a.ID))
	require.NoError(t, err)

	iwc, err := store.GetInstructorWithCourses(a.ID)
	require.NoError(t, err)
	require.NotNil(t, iwc)
	require.Len(t, iwc.Courses, 2)
	assert.Equal(t, "a1", iwc.Courses[0].Title)
	assert.Equal(t, "a2", iwc.Courses[1].Title)

	missing, err := store.GetInstructorWithCourses(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemStorageSearchIsCaseInsensitive(t *testing.T) {
	store := NewMemStorage()
	chef, err := store.CreateInstructor(insertInstructor("Great Chef"))
	require.NoError(t, err)
	_, err = store.CreateCourse(insertCourse("Cooking", chef.ID))
	require.NoError(t, err)

	upper, err := store.SearchCourses("CHEF")
	require.NoError(t, err)
	lower, err := store.SearchCourses("chef")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	require.Len(t, upper, 1)
}

func TestMemStorageEnrollmentConflict(t *testing.T) {
	store := NewMemStorage()

	enrollment, err := store.CreateEnrollment(model.InsertEnrollment{UserID: 1, CourseID: 5})
	require.NoError(t, err)
	assert.Equal(t, uint(1), enrollment.ID)
	assert.Equal(t, 0, enrollment.Progress)
	assert.False(t, enrollment.EnrolledAt.IsZero())

	_, err = store.CreateEnrollment(model.InsertEnrollment{UserID: 1, CourseID: 5})
	assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)

	// A different course for the same user is fine.
	_, err = store.CreateEnrollment(model.InsertEnrollment{UserID: 1, CourseID: 6})
	require.NoError(t, err)

	list, err := store.GetUserEnrollments(1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint(5), list[0].CourseID)
	assert.Equal(t, uint(6), list[1].CourseID)
}

func TestMemStorageGetEnrollment(t *testing.T) {
	store := NewMemStorage()
	_, err := store.CreateEnrollment(model.InsertEnrollment{UserID: 7, CourseID: 3})
	require.NoError(t, err)

	found, err := store.GetEnrollment(7, 3)
	require.NoError(t, err)
	require.NotNil(t, found)

	absent, err := store.GetEnrollment(3, 7)
	require.NoError(t, err)
	assert.Nil(t, absent)
}
