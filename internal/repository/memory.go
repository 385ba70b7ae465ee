package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/util"
)

// MemStorage is the in-memory reference implementation of Storage.
// Each collection keeps a monotonic id counter starting at 1; a single
// mutex serializes increment-and-insert so ids stay unique under
// concurrent creates. Scans iterate in ascending id, which equals
// insertion order.
type MemStorage struct {
	mu sync.RWMutex

	courses      map[uint]model.Course
	instructors  map[uint]model.Instructor
	categories   map[uint]model.Category
	testimonials map[uint]model.Testimonial
	enrollments  map[string]model.Enrollment // keyed by "userId-courseId"

	nextCourseID      uint
	nextInstructorID  uint
	nextCategoryID    uint
	nextTestimonialID uint
	nextEnrollmentID  uint
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		courses:           make(map[uint]model.Course),
		instructors:       make(map[uint]model.Instructor),
		categories:        make(map[uint]model.Category),
		testimonials:      make(map[uint]model.Testimonial),
		enrollments:       make(map[string]model.Enrollment),
		nextCourseID:      1,
		nextInstructorID:  1,
		nextCategoryID:    1,
		nextTestimonialID: 1,
		nextEnrollmentID:  1,
	}
}

func enrollmentKey(userID, courseID uint) string {
	return fmt.Sprintf("%d-%d", userID, courseID)
}

// Course methods

func (s *MemStorage) GetCourse(id uint) (*model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if course, ok := s.courses[id]; ok {
		return &course, nil
	}
	return nil, nil
}

func (s *MemStorage) GetCourseWithInstructor(id uint) (*model.CourseWithInstructor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	course, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	return joinCourse(course, s.instructors), nil
}

func (s *MemStorage) GetAllCourses() ([]model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coursesInOrder(), nil
}

func (s *MemStorage) GetCoursesWithInstructors() ([]model.CourseWithInstructor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return joinCourses(s.coursesInOrder(), s.instructors), nil
}

func (s *MemStorage) GetFeaturedCourses() ([]model.CourseWithInstructor, error) {
	all, err := s.GetCoursesWithInstructors()
	if err != nil {
		return nil, err
	}
	return filterFeatured(all), nil
}

func (s *MemStorage) GetCoursesByCategory(category string) ([]model.CourseWithInstructor, error) {
	all, err := s.GetCoursesWithInstructors()
	if err != nil {
		return nil, err
	}
	return filterByCategory(all, category), nil
}

func (s *MemStorage) GetCoursesByInstructor(instructorID uint) ([]model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Course, 0)
	for _, course := range s.coursesInOrder() {
		if course.InstructorID == instructorID {
			out = append(out, course)
		}
	}
	return out, nil
}

func (s *MemStorage) SearchCourses(query string) ([]model.CourseWithInstructor, error) {
	all, err := s.GetCoursesWithInstructors()
	if err != nil {
		return nil, err
	}
	return searchCourses(all, query), nil
}

func (s *MemStorage) CreateCourse(in model.InsertCourse) (*model.Course, error) {
	course, err := model.NewCourse(in)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	course.ID = s.nextCourseID
	s.nextCourseID++
	s.courses[course.ID] = *course
	return course, nil
}

// Instructor methods

func (s *MemStorage) GetInstructor(id uint) (*model.Instructor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if instructor, ok := s.instructors[id]; ok {
		return &instructor, nil
	}
	return nil, nil
}

func (s *MemStorage) GetInstructorWithCourses(id uint) (*model.InstructorWithCourses, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	instructor, ok := s.instructors[id]
	if !ok {
		return nil, nil
	}
	courses := make([]model.Course, 0)
	for _, course := range s.coursesInOrder() {
		if course.InstructorID == id {
			courses = append(courses, course)
		}
	}
	return &model.InstructorWithCourses{Instructor: instructor, Courses: courses}, nil
}

func (s *MemStorage) GetAllInstructors() ([]model.Instructor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uint, 0, len(s.instructors))
	for id := range s.instructors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Instructor, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.instructors[id])
	}
	return out, nil
}

func (s *MemStorage) CreateInstructor(in model.InsertInstructor) (*model.Instructor, error) {
	instructor, err := model.NewInstructor(in)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	instructor.ID = s.nextInstructorID
	s.nextInstructorID++
	s.instructors[instructor.ID] = *instructor
	return instructor, nil
}

// Category methods

func (s *MemStorage) GetCategory(id uint) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if category, ok := s.categories[id]; ok {
		return &category, nil
	}
	return nil, nil
}

func (s *MemStorage) GetAllCategories() ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uint, 0, len(s.categories))
	for id := range s.categories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Category, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.categories[id])
	}
	return out, nil
}

func (s *MemStorage) CreateCategory(in model.InsertCategory) (*model.Category, error) {
	category, err := model.NewCategory(in)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	category.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories[category.ID] = *category
	return category, nil
}

// Testimonial methods

func (s *MemStorage) GetAllTestimonials() ([]model.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uint, 0, len(s.testimonials))
	for id := range s.testimonials {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Testimonial, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.testimonials[id])
	}
	return out, nil
}

func (s *MemStorage) CreateTestimonial(in model.InsertTestimonial) (*model.Testimonial, error) {
	testimonial, err := model.NewTestimonial(in)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	testimonial.ID = s.nextTestimonialID
	s.nextTestimonialID++
	s.testimonials[testimonial.ID] = *testimonial
	return testimonial, nil
}

// Enrollment methods

func (s *MemStorage) GetEnrollment(userID, courseID uint) (*model.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if enrollment, ok := s.enrollments[enrollmentKey(userID, courseID)]; ok {
		return &enrollment, nil
	}
	return nil, nil
}

func (s *MemStorage) GetUserEnrollments(userID uint) ([]model.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]model.Enrollment, 0)
	for _, enrollment := range s.enrollments {
		if enrollment.UserID == userID {
			all = append(all, enrollment)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (s *MemStorage) CreateEnrollment(in model.InsertEnrollment) (*model.Enrollment, error) {
	enrollment, err := model.NewEnrollment(in)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := enrollmentKey(enrollment.UserID, enrollment.CourseID)
	if _, exists := s.enrollments[key]; exists {
		return nil, util.ErrAlreadyEnrolled
	}
	enrollment.ID = s.nextEnrollmentID
	s.nextEnrollmentID++
	enrollment.EnrolledAt = time.Now()
	s.enrollments[key] = *enrollment
	return enrollment, nil
}

// coursesInOrder returns all courses sorted ascending by id.
// Callers must hold at least a read lock.
func (s *MemStorage) coursesInOrder() []model.Course {
	ids := make([]uint, 0, len(s.courses))
	for id := range s.courses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Course, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.courses[id])
	}
	return out
}
