package service

import (
	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/repository"
	"course_catalog_backend/internal/util"
)

type EnrollmentService struct {
	Store repository.Storage
}

func NewEnrollmentService(store repository.Storage) *EnrollmentService {
	return &EnrollmentService{Store: store}
}

// Enroll records a user/course enrollment. At most one enrollment may
// exist per pair; a second attempt fails with ErrAlreadyEnrolled.
func (s *EnrollmentService) Enroll(userID, courseID uint) (*model.Enrollment, error) {
	if userID == 0 || courseID == 0 {
		return nil, util.ErrInvalidEnrollment
	}

	existing, err := s.Store.GetEnrollment(userID, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, util.ErrAlreadyEnrolled
	}

	return s.Store.CreateEnrollment(model.InsertEnrollment{
		UserID:   userID,
		CourseID: courseID,
		Progress: 0,
	})
}

func (s *EnrollmentService) GetUserEnrollments(userID uint) ([]model.Enrollment, error) {
	return s.Store.GetUserEnrollments(userID)
}
