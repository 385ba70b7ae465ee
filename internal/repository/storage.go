package repository

import "course_catalog_backend/internal/model"

// Storage is the catalog's entity store. Lookups that miss return
// (nil, nil); only genuine store failures surface as errors. All
// sequence reads come back in store order, i.e. ascending id.
type Storage interface {
	// Courses
	GetCourse(id uint) (*model.Course, error)
	GetCourseWithInstructor(id uint) (*model.CourseWithInstructor, error)
	GetAllCourses() ([]model.Course, error)
	GetCoursesWithInstructors() ([]model.CourseWithInstructor, error)
	GetFeaturedCourses() ([]model.CourseWithInstructor, error)
	GetCoursesByCategory(category string) ([]model.CourseWithInstructor, error)
	GetCoursesByInstructor(instructorID uint) ([]model.Course, error)
	SearchCourses(query string) ([]model.CourseWithInstructor, error)
	CreateCourse(in model.InsertCourse) (*model.Course, error)

	// Instructors
	GetInstructor(id uint) (*model.Instructor, error)
	GetInstructorWithCourses(id uint) (*model.InstructorWithCourses, error)
	GetAllInstructors() ([]model.Instructor, error)
	CreateInstructor(in model.InsertInstructor) (*model.Instructor, error)

	// Categories
	GetCategory(id uint) (*model.Category, error)
	GetAllCategories() ([]model.Category, error)
	CreateCategory(in model.InsertCategory) (*model.Category, error)

	// Testimonials
	GetAllTestimonials() ([]model.Testimonial, error)
	CreateTestimonial(in model.InsertTestimonial) (*model.Testimonial, error)

	// Enrollments
	GetEnrollment(userID, courseID uint) (*model.Enrollment, error)
	GetUserEnrollments(userID uint) ([]model.Enrollment, error)
	CreateEnrollment(in model.InsertEnrollment) (*model.Enrollment, error)
}
