package util

import "errors"

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrInvalidEnrollment  = errors.New("user id and course id are required")
)
