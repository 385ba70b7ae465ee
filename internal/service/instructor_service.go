package service

import (
	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/repository"
)

type InstructorService struct {
	Store repository.Storage
}

func NewInstructorService(store repository.Storage) *InstructorService {
	return &InstructorService{Store: store}
}

func (s *InstructorService) GetAllInstructors() ([]model.Instructor, error) {
	return s.Store.GetAllInstructors()
}

func (s *InstructorService) GetInstructorWithCourses(id uint) (*model.InstructorWithCourses, error) {
	return s.Store.GetInstructorWithCourses(id)
}
