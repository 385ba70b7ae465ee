package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourseValidation(t *testing.T) {
	valid := InsertCourse{
		Title:            "T",
		Description:      "D",
		ShortDescription: "S",
		InstructorID:     1,
		Category:         "Music",
		Difficulty:       DifficultyBeginner,
		ThumbnailURL:     "u",
		Rating:           3,
	}

	course, err := NewCourse(valid)
	require.NoError(t, err)
	assert.Zero(t, course.ID, "id is assigned by the store, not the constructor")

	missingTitle := valid
	missingTitle.Title = ""
	_, err = NewCourse(missingTitle)
	assert.Error(t, err)

	badDifficulty := valid
	badDifficulty.Difficulty = "Expert"
	_, err = NewCourse(badDifficulty)
	assert.Error(t, err)

	badRating := valid
	badRating.Rating = 6
	_, err = NewCourse(badRating)
	assert.Error(t, err)

	negativePrice := valid
	negativePrice.Price = -1
	_, err = NewCourse(negativePrice)
	assert.Error(t, err)
}

func TestNewEnrollmentValidation(t *testing.T) {
	_, err := NewEnrollment(InsertEnrollment{UserID: 0, CourseID: 1})
	assert.Error(t, err)

	_, err = NewEnrollment(InsertEnrollment{UserID: 1, CourseID: 1, Progress: 101})
	assert.Error(t, err)

	enrollment, err := NewEnrollment(InsertEnrollment{UserID: 1, CourseID: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, enrollment.Progress)
	assert.True(t, enrollment.EnrolledAt.IsZero(), "timestamp is set by the store at creation")
}
