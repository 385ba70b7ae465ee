package model

import (
	"fmt"
	"time"
)

// Enrollment is append-only: once created it is never updated or deleted.
// At most one enrollment may exist per (userId, courseId) pair.
//
// swagger:model Enrollment
type Enrollment struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_user_course" json:"userId"`
	CourseID   uint      `gorm:"not null;uniqueIndex:idx_user_course" json:"courseId"`
	EnrolledAt time.Time `json:"enrolledAt"`
	Progress   int       `gorm:"default:0" json:"progress"` // 0-100
}

func (Enrollment) TableName() string {
	return "enrollments"
}

type InsertEnrollment struct {
	UserID   uint `json:"userId"`
	CourseID uint `json:"courseId"`
	Progress int  `json:"progress"`
}

func (in *InsertEnrollment) Validate() error {
	if in.UserID == 0 || in.CourseID == 0 {
		return fmt.Errorf("userId and courseId are required")
	}
	if in.Progress < 0 || in.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100")
	}
	return nil
}

func NewEnrollment(in InsertEnrollment) (*Enrollment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &Enrollment{
		UserID:   in.UserID,
		CourseID: in.CourseID,
		Progress: in.Progress,
	}, nil
}
