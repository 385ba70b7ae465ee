package repository

import (
	"errors"

	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/util"

	"gorm.io/gorm"
)

// GormStorage implements Storage over a relational database. The
// course/instructor join runs in-process through the same helpers as
// MemStorage so the dangling-reference drop policy is identical across
// backends.
type GormStorage struct {
	DB *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{DB: db}
}

func (s *GormStorage) instructorIndex() (map[uint]model.Instructor, error) {
	var instructors []model.Instructor
	if err := s.DB.Find(&instructors).Error; err != nil {
		return nil, err
	}
	index := make(map[uint]model.Instructor, len(instructors))
	for _, instructor := range instructors {
		index[instructor.ID] = instructor
	}
	return index, nil
}

// Course methods

func (s *GormStorage) GetCourse(id uint) (*model.Course, error) {
	var course model.Course
	err := s.DB.First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *GormStorage) GetCourseWithInstructor(id uint) (*model.CourseWithInstructor, error) {
	course, err := s.GetCourse(id)
	if err != nil || course == nil {
		return nil, err
	}
	var instructor model.Instructor
	err = s.DB.First(&instructor, course.InstructorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.CourseWithInstructor{Course: *course, Instructor: instructor}, nil
}

func (s *GormStorage) GetAllCourses() ([]model.Course, error) {
	var courses []model.Course
	err := s.DB.Order("id").Find(&courses).Error
	return courses, err
}

func (s *GormStorage) GetCoursesWithInstructors() ([]model.CourseWithInstructor, error) {
	courses, err := s.GetAllCourses()
	if err != nil {
		return nil, err
	}
	instructors, err := s.instructorIndex()
	if err != nil {
		return nil, err
	}
	return joinCourses(courses, instructors), nil
}

func (s *GormStorage) GetFeaturedCourses() ([]model.CourseWithInstructor, error) {
	all, err := s.GetCoursesWithInstructors()
	if err != nil {
		return nil, err
	}
	return filterFeatured(all), nil
}

func (s *GormStorage) GetCoursesByCategory(category string) ([]model.CourseWithInstructor, error) {
	all, err := s.GetCoursesWithInstructors()
	if err != nil {
		return nil, err
	}
	return filterByCategory(all, category), nil
}

func (s *GormStorage) GetCoursesByInstructor(instructorID uint) ([]model.Course, error) {
	var courses []model.Course
	err := s.DB.Where("instructor_id = ?", instructorID).Order("id").Find(&courses).Error
	return courses, err
}

func (s *GormStorage) SearchCourses(query string) ([]model.CourseWithInstructor, error) {
	all, err := s.GetCoursesWithInstructors()
	if err != nil {
		return nil, err
	}
	return searchCourses(all, query), nil
}

func (s *GormStorage) CreateCourse(in model.InsertCourse) (*model.Course, error) {
	course, err := model.NewCourse(in)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Create(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

// Instructor methods

func (s *GormStorage) GetInstructor(id uint) (*model.Instructor, error) {
	var instructor model.Instructor
	err := s.DB.First(&instructor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (s *GormStorage) GetInstructorWithCourses(id uint) (*model.InstructorWithCourses, error) {
	instructor, err := s.GetInstructor(id)
	if err != nil || instructor == nil {
		return nil, err
	}
	courses, err := s.GetCoursesByInstructor(id)
	if err != nil {
		return nil, err
	}
	return &model.InstructorWithCourses{Instructor: *instructor, Courses: courses}, nil
}

func (s *GormStorage) GetAllInstructors() ([]model.Instructor, error) {
	var instructors []model.Instructor
	err := s.DB.Order("id").Find(&instructors).Error
	return instructors, err
}

func (s *GormStorage) CreateInstructor(in model.InsertInstructor) (*model.Instructor, error) {
	instructor, err := model.NewInstructor(in)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Create(instructor).Error; err != nil {
		return nil, err
	}
	return instructor, nil
}

// Category methods

func (s *GormStorage) GetCategory(id uint) (*model.Category, error) {
	var category model.Category
	err := s.DB.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormStorage) GetAllCategories() ([]model.Category, error) {
	var categories []model.Category
	err := s.DB.Order("id").Find(&categories).Error
	return categories, err
}

func (s *GormStorage) CreateCategory(in model.InsertCategory) (*model.Category, error) {
	category, err := model.NewCategory(in)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Testimonial methods

func (s *GormStorage) GetAllTestimonials() ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	err := s.DB.Order("id").Find(&testimonials).Error
	return testimonials, err
}

func (s *GormStorage) CreateTestimonial(in model.InsertTestimonial) (*model.Testimonial, error) {
	testimonial, err := model.NewTestimonial(in)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Create(testimonial).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

// Enrollment methods

func (s *GormStorage) GetEnrollment(userID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := s.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *GormStorage) GetUserEnrollments(userID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := s.DB.Where("user_id = ?", userID).Order("id").Find(&enrollments).Error
	return enrollments, err
}

// CreateEnrollment inserts inside a transaction so the duplicate check
// and the insert are atomic; the composite unique index on
// (user_id, course_id) backs it up under concurrent requests.
func (s *GormStorage) CreateEnrollment(in model.InsertEnrollment) (*model.Enrollment, error) {
	enrollment, err := model.NewEnrollment(in)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Enrollment{}).
			Where("user_id = ? AND course_id = ?", enrollment.UserID, enrollment.CourseID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return util.ErrAlreadyEnrolled
		}
		if enrollment.EnrolledAt.IsZero() {
			enrollment.EnrolledAt = tx.NowFunc()
		}
		return tx.Create(enrollment).Error
	})
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}
