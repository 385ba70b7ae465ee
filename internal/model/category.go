package model

import "fmt"

// Category.CoursesCount is a denormalized counter seeded independently.
// It is never recomputed from course rows and may drift.
//
// swagger:model Category
type Category struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"size:100;unique;not null" json:"name"`
	Slug         string `gorm:"size:100;unique;not null" json:"slug"`
	Icon         string `gorm:"size:50;not null" json:"icon"` // symbolic icon name
	CoursesCount int    `gorm:"not null" json:"coursesCount"`
}

func (Category) TableName() string {
	return "categories"
}

type InsertCategory struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Icon         string `json:"icon"`
	CoursesCount int    `json:"coursesCount"`
}

func (in *InsertCategory) Validate() error {
	if in.Name == "" || in.Slug == "" {
		return fmt.Errorf("category name and slug are required")
	}
	if in.CoursesCount < 0 {
		return fmt.Errorf("category coursesCount must be non-negative")
	}
	return nil
}

func NewCategory(in InsertCategory) (*Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &Category{
		Name:         in.Name,
		Slug:         in.Slug,
		Icon:         in.Icon,
		CoursesCount: in.CoursesCount,
	}, nil
}
