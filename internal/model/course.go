package model

import "fmt"

const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// swagger:model Course
type Course struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string `gorm:"size:255;not null" json:"title"`
	Description      string `gorm:"type:text;not null" json:"description"`
	ShortDescription string `gorm:"type:text;not null" json:"shortDescription"`
	InstructorID     uint   `gorm:"not null;index" json:"instructorId"`
	Category         string `gorm:"size:100;not null" json:"category"`
	Difficulty       string `gorm:"size:20;not null" json:"difficulty"`
	Duration         string `gorm:"size:20;not null" json:"duration"` // e.g. "3h 45m"
	LessonsCount     int    `gorm:"not null" json:"lessonsCount"`
	ThumbnailURL     string `gorm:"size:512;not null" json:"thumbnailUrl"`
	VideoPreviewURL  string `gorm:"size:512" json:"videoPreviewUrl"`
	Price            int    `gorm:"not null" json:"price"`  // minor currency units
	Rating           int    `gorm:"not null" json:"rating"` // 1-5
	StudentsCount    int    `gorm:"not null" json:"studentsCount"`
	Featured         bool   `gorm:"default:false" json:"featured"`
}

func (Course) TableName() string {
	return "courses"
}

// CourseWithInstructor is the joined view returned by all listing endpoints.
type CourseWithInstructor struct {
	Course
	Instructor Instructor `gorm:"-" json:"instructor"`
}

// InsertCourse is a course payload lacking the store-assigned ID.
type InsertCourse struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	ShortDescription string `json:"shortDescription"`
	InstructorID     uint   `json:"instructorId"`
	Category         string `json:"category"`
	Difficulty       string `json:"difficulty"`
	Duration         string `json:"duration"`
	LessonsCount     int    `json:"lessonsCount"`
	ThumbnailURL     string `json:"thumbnailUrl"`
	VideoPreviewURL  string `json:"videoPreviewUrl"`
	Price            int    `json:"price"`
	Rating           int    `json:"rating"`
	StudentsCount    int    `json:"studentsCount"`
	Featured         bool   `json:"featured"`
}

func (in *InsertCourse) Validate() error {
	if in.Title == "" || in.Description == "" || in.ShortDescription == "" {
		return fmt.Errorf("course title and descriptions are required")
	}
	if in.InstructorID == 0 {
		return fmt.Errorf("course instructorId is required")
	}
	if in.Category == "" {
		return fmt.Errorf("course category is required")
	}
	switch in.Difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	default:
		return fmt.Errorf("invalid course difficulty %q", in.Difficulty)
	}
	if in.LessonsCount < 0 || in.Price < 0 || in.StudentsCount < 0 {
		return fmt.Errorf("course counters and price must be non-negative")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return fmt.Errorf("course rating must be between 1 and 5")
	}
	return nil
}

// NewCourse builds an unsaved Course from an insert payload.
// The ID stays zero until the store assigns one.
func NewCourse(in InsertCourse) (*Course, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &Course{
		Title:            in.Title,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		InstructorID:     in.InstructorID,
		Category:         in.Category,
		Difficulty:       in.Difficulty,
		Duration:         in.Duration,
		LessonsCount:     in.LessonsCount,
		ThumbnailURL:     in.ThumbnailURL,
		VideoPreviewURL:  in.VideoPreviewURL,
		Price:            in.Price,
		Rating:           in.Rating,
		StudentsCount:    in.StudentsCount,
		Featured:         in.Featured,
	}, nil
}
