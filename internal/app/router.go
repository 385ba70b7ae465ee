package app

import (
	"course_catalog_backend/docs"
	"course_catalog_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// Static course routes must precede /courses/:id so gin never
		// shadows them.
		api.GET("/courses", c.course.ListCourses)
		api.GET("/courses/featured", c.course.GetFeaturedCourses)
		api.GET("/courses/category/:category", c.course.GetCoursesByCategory)
		api.GET("/courses/search", c.course.SearchCourses)
		api.GET("/courses/:id", c.course.GetCourse)

		api.GET("/instructors", c.instructor.GetAllInstructors)
		api.GET("/instructors/:id", c.instructor.GetInstructor)

		api.GET("/categories", c.catalog.GetAllCategories)
		api.GET("/testimonials", c.catalog.GetAllTestimonials)

		api.POST("/enrollments", c.enrollment.CreateEnrollment)
		api.GET("/enrollments/user/:userId", c.enrollment.GetUserEnrollments)
	}
}
