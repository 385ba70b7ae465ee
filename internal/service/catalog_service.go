package service

import (
	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/repository"
)

// CatalogService serves the supporting catalog collections.
type CatalogService struct {
	Store repository.Storage
}

func NewCatalogService(store repository.Storage) *CatalogService {
	return &CatalogService{Store: store}
}

func (s *CatalogService) GetAllCategories() ([]model.Category, error) {
	return s.Store.GetAllCategories()
}

func (s *CatalogService) GetAllTestimonials() ([]model.Testimonial, error) {
	return s.Store.GetAllTestimonials()
}
