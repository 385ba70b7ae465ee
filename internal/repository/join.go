package repository

import (
	"strings"

	"course_catalog_backend/internal/model"
)

// joinCourse resolves a course's instructor. Returns nil when the
// instructor id dangles; callers treat that as "course not found".
func joinCourse(course model.Course, instructors map[uint]model.Instructor) *model.CourseWithInstructor {
	instructor, ok := instructors[course.InstructorID]
	if !ok {
		return nil
	}
	return &model.CourseWithInstructor{Course: course, Instructor: instructor}
}

// joinCourses applies joinCourse across a course list in store order.
// Courses whose instructor cannot be resolved are dropped, not errored:
// a dangling reference makes the course vanish from every listing.
func joinCourses(courses []model.Course, instructors map[uint]model.Instructor) []model.CourseWithInstructor {
	joined := make([]model.CourseWithInstructor, 0, len(courses))
	for _, course := range courses {
		if cwi := joinCourse(course, instructors); cwi != nil {
			joined = append(joined, *cwi)
		}
	}
	return joined
}

func filterFeatured(courses []model.CourseWithInstructor) []model.CourseWithInstructor {
	out := make([]model.CourseWithInstructor, 0, len(courses))
	for _, c := range courses {
		if c.Featured {
			out = append(out, c)
		}
	}
	return out
}

func filterByCategory(courses []model.CourseWithInstructor, category string) []model.CourseWithInstructor {
	out := make([]model.CourseWithInstructor, 0, len(courses))
	for _, c := range courses {
		if strings.EqualFold(c.Category, category) {
			out = append(out, c)
		}
	}
	return out
}

// searchCourses matches a case-insensitive substring against title,
// description and instructor name.
func searchCourses(courses []model.CourseWithInstructor, query string) []model.CourseWithInstructor {
	q := strings.ToLower(query)
	out := make([]model.CourseWithInstructor, 0, len(courses))
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Title), q) ||
			strings.Contains(strings.ToLower(c.Description), q) ||
			strings.Contains(strings.ToLower(c.Instructor.Name), q) {
			out = append(out, c)
		}
	}
	return out
}
