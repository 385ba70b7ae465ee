package model

import "fmt"

// swagger:model Instructor
type Instructor struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"size:100;not null" json:"name"`
	Bio             string `gorm:"type:text;not null" json:"bio"`
	Specialty       string `gorm:"size:100;not null" json:"specialty"`
	AvatarURL       string `gorm:"size:512;not null" json:"avatarUrl"`
	Title           string `gorm:"size:100;not null" json:"title"` // e.g. "Chef", "CEO"
	YearsExperience int    `gorm:"not null" json:"yearsExperience"`
	StudentsCount   int    `gorm:"not null" json:"studentsCount"`
	CoursesCount    int    `gorm:"not null" json:"coursesCount"`
}

func (Instructor) TableName() string {
	return "instructors"
}

// InstructorWithCourses attaches the instructor's courses in store order.
type InstructorWithCourses struct {
	Instructor
	Courses []Course `gorm:"-" json:"courses"`
}

type InsertInstructor struct {
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	Specialty       string `json:"specialty"`
	AvatarURL       string `json:"avatarUrl"`
	Title           string `json:"title"`
	YearsExperience int    `json:"yearsExperience"`
	StudentsCount   int    `json:"studentsCount"`
	CoursesCount    int    `json:"coursesCount"`
}

func (in *InsertInstructor) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("instructor name is required")
	}
	if in.YearsExperience < 0 || in.StudentsCount < 0 || in.CoursesCount < 0 {
		return fmt.Errorf("instructor counters must be non-negative")
	}
	return nil
}

func NewInstructor(in InsertInstructor) (*Instructor, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &Instructor{
		Name:            in.Name,
		Bio:             in.Bio,
		Specialty:       in.Specialty,
		AvatarURL:       in.AvatarURL,
		Title:           in.Title,
		YearsExperience: in.YearsExperience,
		StudentsCount:   in.StudentsCount,
		CoursesCount:    in.CoursesCount,
	}, nil
}
