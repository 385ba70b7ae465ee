package service

import (
	"sort"
	"strings"

	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/repository"
)

const (
	SortFeatured  = "featured"
	SortNewest    = "newest"
	SortRating    = "rating"
	SortStudents  = "students"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// CategoryAll is the sentinel filter value meaning "no restriction".
// It is handled identically to an absent filter.
const CategoryAll = "all"

// CourseFilter is the query engine's configuration. Zero values mean
// "no filtering" for every field; Sort defaults to featured.
type CourseFilter struct {
	Search          string
	Category        string // explicit selection, matched case-sensitively
	ContextCategory string // category implied by navigation, matched case-insensitively
	Difficulty      string
	Sort            string
}

type CourseService struct {
	Store repository.Storage
}

func NewCourseService(store repository.Storage) *CourseService {
	return &CourseService{Store: store}
}

func (s *CourseService) GetCourse(id uint) (*model.CourseWithInstructor, error) {
	return s.Store.GetCourseWithInstructor(id)
}

// ListCourses runs the full query engine over the joined course list.
// The result is recomputed on every call; nothing is cached.
func (s *CourseService) ListCourses(filter CourseFilter) ([]model.CourseWithInstructor, error) {
	courses, err := s.Store.GetCoursesWithInstructors()
	if err != nil {
		return nil, err
	}
	return ApplyFilter(courses, filter), nil
}

func (s *CourseService) GetFeaturedCourses() ([]model.CourseWithInstructor, error) {
	return s.Store.GetFeaturedCourses()
}

func (s *CourseService) GetCoursesByCategory(category string) ([]model.CourseWithInstructor, error) {
	return s.Store.GetCoursesByCategory(category)
}

func (s *CourseService) SearchCourses(query string) ([]model.CourseWithInstructor, error) {
	return s.Store.SearchCourses(query)
}

// ApplyFilter is a pure function: it filters with the conjunction of
// the configured predicates, then sorts. Safe for concurrent use.
func ApplyFilter(courses []model.CourseWithInstructor, filter CourseFilter) []model.CourseWithInstructor {
	out := make([]model.CourseWithInstructor, 0, len(courses))
	for _, course := range courses {
		if matchesSearch(course, filter.Search) &&
			matchesCategory(course, filter.Category, filter.ContextCategory) &&
			matchesDifficulty(course, filter.Difficulty) {
			out = append(out, course)
		}
	}
	sortCourses(out, filter.Sort)
	return out
}

func matchesSearch(course model.CourseWithInstructor, search string) bool {
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(course.Title), q) ||
		strings.Contains(strings.ToLower(course.Instructor.Name), q) ||
		strings.Contains(strings.ToLower(course.Description), q)
}

// matchesCategory reproduces the original three-way rule, asymmetry
// included: an explicit selection and a context category are combined
// with OR, the context match is case-insensitive while the explicit
// match is exact.
func matchesCategory(course model.CourseWithInstructor, selected, context string) bool {
	noSelection := selected == "" || selected == CategoryAll
	if noSelection && context == "" {
		return true
	}
	if context != "" && strings.EqualFold(course.Category, context) {
		return true
	}
	if !noSelection && course.Category == selected {
		return true
	}
	return false
}

func matchesDifficulty(course model.CourseWithInstructor, difficulty string) bool {
	return difficulty == "" || difficulty == CategoryAll || course.Difficulty == difficulty
}

// sortCourses sorts in place, stably: ties keep their store order.
// "featured" is a stable partition with featured courses first.
func sortCourses(courses []model.CourseWithInstructor, mode string) {
	var less func(a, b model.CourseWithInstructor) bool
	switch mode {
	case SortPriceLow:
		less = func(a, b model.CourseWithInstructor) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b model.CourseWithInstructor) bool { return a.Price > b.Price }
	case SortRating:
		less = func(a, b model.CourseWithInstructor) bool { return a.Rating > b.Rating }
	case SortStudents:
		less = func(a, b model.CourseWithInstructor) bool { return a.StudentsCount > b.StudentsCount }
	case SortNewest:
		less = func(a, b model.CourseWithInstructor) bool { return a.ID > b.ID }
	default: // featured
		less = func(a, b model.CourseWithInstructor) bool { return a.Featured && !b.Featured }
	}
	sort.SliceStable(courses, func(i, j int) bool { return less(courses[i], courses[j]) })
}
