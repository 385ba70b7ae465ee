package model

import "fmt"

// swagger:model Testimonial
type Testimonial struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Title     string `gorm:"size:100;not null" json:"title"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Rating    int    `gorm:"not null" json:"rating"` // 1-5
	AvatarURL string `gorm:"size:512;not null" json:"avatarUrl"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

type InsertTestimonial struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	AvatarURL string `json:"avatarUrl"`
}

func (in *InsertTestimonial) Validate() error {
	if in.Name == "" || in.Content == "" {
		return fmt.Errorf("testimonial name and content are required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return fmt.Errorf("testimonial rating must be between 1 and 5")
	}
	return nil
}

func NewTestimonial(in InsertTestimonial) (*Testimonial, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &Testimonial{
		Name:      in.Name,
		Title:     in.Title,
		Content:   in.Content,
		Rating:    in.Rating,
		AvatarURL: in.AvatarURL,
	}, nil
}
