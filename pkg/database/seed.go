package database

import (
	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/repository"
	"log"
)

// Seed populates an empty store with the initial catalog. Instructor
// ids are taken from the created rows so course references stay valid
// regardless of backend. Counter fields (coursesCount, studentsCount)
// are seeded as independent values and never recomputed.
func Seed(store repository.Storage) error {
	existing, err := store.GetAllCourses()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	instructorData := []model.InsertInstructor{
		{
			Name:            "Marcus Samuelsson",
			Bio:             "Award-winning chef and restaurateur known for his innovative approach to global cuisine.",
			Specialty:       "Culinary Arts",
			AvatarURL:       "https://images.unsplash.com/photo-1577219491135-ce391730fb2c?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Title:           "Chef",
			YearsExperience: 25,
			StudentsCount:   50000,
			CoursesCount:    3,
		},
		{
			Name:            "Sara Blakely",
			Bio:             "Billionaire entrepreneur and founder of Spanx, known for her innovative business strategies.",
			Specialty:       "Entrepreneurship",
			AvatarURL:       "https://images.unsplash.com/photo-1494790108755-2616c64e9a67?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Title:           "CEO",
			YearsExperience: 20,
			StudentsCount:   75000,
			CoursesCount:    2,
		},
		{
			Name:            "Annie Leibovitz",
			Bio:             "Legendary photographer known for her striking celebrity portraits and artistic vision.",
			Specialty:       "Photography",
			AvatarURL:       "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Title:           "Artist",
			YearsExperience: 30,
			StudentsCount:   40000,
			CoursesCount:    4,
		},
		{
			Name:            "Herbie Hancock",
			Bio:             "Jazz legend and multiple Grammy winner, master of piano and musical innovation.",
			Specialty:       "Jazz Piano",
			AvatarURL:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Title:           "Musician",
			YearsExperience: 40,
			StudentsCount:   30000,
			CoursesCount:    2,
		},
	}

	instructorIDs := make([]uint, 0, len(instructorData))
	for _, in := range instructorData {
		instructor, err := store.CreateInstructor(in)
		if err != nil {
			return err
		}
		instructorIDs = append(instructorIDs, instructor.ID)
	}

	categoryData := []model.InsertCategory{
		{Name: "Culinary Arts", Slug: "culinary", Icon: "ChefHat", CoursesCount: 12},
		{Name: "Business", Slug: "business", Icon: "Briefcase", CoursesCount: 8},
		{Name: "Photography", Slug: "photography", Icon: "Camera", CoursesCount: 6},
		{Name: "Music", Slug: "music", Icon: "Music", CoursesCount: 5},
		{Name: "Arts & Crafts", Slug: "arts", Icon: "Palette", CoursesCount: 7},
		{Name: "Sports", Slug: "sports", Icon: "Trophy", CoursesCount: 4},
	}

	for _, in := range categoryData {
		if _, err := store.CreateCategory(in); err != nil {
			return err
		}
	}

	courseData := []model.InsertCourse{
		{
			Title:            "Advanced Culinary Techniques",
			Description:      "Master the art of fine dining with professional techniques used in world-class restaurants. Learn knife skills, sauce making, plating, and more from a renowned chef.",
			ShortDescription: "Master the art of fine dining with professional techniques used in world-class restaurants.",
			InstructorID:     instructorIDs[0],
			Category:         "Culinary Arts",
			Difficulty:       model.DifficultyAdvanced,
			Duration:         "3h 45m",
			LessonsCount:     15,
			ThumbnailURL:     "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450",
			Price:            19900,
			Rating:           5,
			StudentsCount:    15000,
			Featured:         true,
		},
		{
			Title:            "Strategic Leadership",
			Description:      "Learn how to build and lead successful teams with proven strategies from a billionaire entrepreneur. Discover the secrets of effective leadership and business growth.",
			ShortDescription: "Learn how to build and lead successful teams with proven strategies from a billionaire entrepreneur.",
			InstructorID:     instructorIDs[1],
			Category:         "Business",
			Difficulty:       model.DifficultyIntermediate,
			Duration:         "2h 30m",
			LessonsCount:     12,
			ThumbnailURL:     "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450",
			Price:            17900,
			Rating:           5,
			StudentsCount:    22000,
			Featured:         true,
		},
		{
			Title:            "Portrait Photography",
			Description:      "Master the art of capturing compelling portraits with advanced lighting and composition techniques. Learn from one of the world's most celebrated photographers.",
			ShortDescription: "Master the art of capturing compelling portraits with advanced lighting and composition techniques.",
			InstructorID:     instructorIDs[2],
			Category:         "Photography",
			Difficulty:       model.DifficultyIntermediate,
			Duration:         "4h 15m",
			LessonsCount:     18,
			ThumbnailURL:     "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450",
			Price:            15900,
			Rating:           5,
			StudentsCount:    18000,
			Featured:         true,
		},
		{
			Title:            "Jazz Piano Fundamentals",
			Description:      "Learn the fundamentals of jazz piano from a living legend. Discover chord progressions, improvisation techniques, and the history of jazz music.",
			ShortDescription: "Learn the fundamentals of jazz piano from a living legend.",
			InstructorID:     instructorIDs[3],
			Category:         "Music",
			Difficulty:       model.DifficultyBeginner,
			Duration:         "3h 20m",
			LessonsCount:     14,
			ThumbnailURL:     "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450",
			Price:            13900,
			Rating:           5,
			StudentsCount:    12000,
			Featured:         false,
		},
	}

	for _, in := range courseData {
		if _, err := store.CreateCourse(in); err != nil {
			return err
		}
	}

	testimonialData := []model.InsertTestimonial{
		{
			Name:      "Sarah Chen",
			Title:     "Marketing Manager",
			Content:   "The quality of instruction is incredible. I've learned more in 3 months than I did in years of self-teaching.",
			Rating:    5,
			AvatarURL: "https://images.unsplash.com/photo-1531427186611-ecfd6d936c79?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=200",
		},
		{
			Name:      "Michael Rodriguez",
			Title:     "Entrepreneur",
			Content:   "Learning from world-class experts has been a game-changer for my career. The content is practical and inspiring.",
			Rating:    5,
			AvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=200",
		},
		{
			Name:      "Emily Johnson",
			Title:     "Creative Director",
			Content:   "The platform is beautifully designed and the lessons are structured perfectly. I love being able to learn at my own pace.",
			Rating:    5,
			AvatarURL: "https://images.unsplash.com/photo-1494790108755-2616c64e9a67?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=200",
		},
	}

	for _, in := range testimonialData {
		if _, err := store.CreateTestimonial(in); err != nil {
			return err
		}
	}

	log.Println("Catalog seed data loaded")
	return nil
}
