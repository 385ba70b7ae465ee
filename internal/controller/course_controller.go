package controller

import (
	"strconv"

	"course_catalog_backend/internal/service"
	"course_catalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// @Summary List courses
// @Description Joined course list. Optional query params feed the same filter/sort engine the client uses.
// @Tags courses
// @Produce json
// @Param q query string false "search text"
// @Param category query string false "category name, 'all' for no filter"
// @Param difficulty query string false "Beginner|Intermediate|Advanced, 'all' for no filter"
// @Param sort query string false "featured|newest|rating|students|price-low|price-high"
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	filter := service.CourseFilter{
		Search:     ctx.Query("q"),
		Category:   ctx.Query("category"),
		Difficulty: ctx.Query("difficulty"),
		Sort:       ctx.DefaultQuery("sort", service.SortFeatured),
	}

	courses, err := c.CourseService.ListCourses(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// @Summary List featured courses
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses/featured [get]
func (c *CourseController) GetFeaturedCourses(ctx *gin.Context) {
	courses, err := c.CourseService.GetFeaturedCourses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// @Summary List courses by category
// @Tags courses
// @Produce json
// @Param category path string true "category name"
// @Success 200 {object} util.Response
// @Router /api/courses/category/{category} [get]
func (c *CourseController) GetCoursesByCategory(ctx *gin.Context) {
	courses, err := c.CourseService.GetCoursesByCategory(ctx.Param("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// @Summary Search courses
// @Description Case-insensitive substring match on title, description and instructor name.
// @Tags courses
// @Produce json
// @Param q query string true "search text"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/courses/search [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	query, ok := ctx.GetQuery("q")
	if !ok || query == "" {
		util.BadRequest(ctx, "Search query is required")
		return
	}

	courses, err := c.CourseService.SearchCourses(query)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// @Summary Get a single course
// @Tags courses
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	course, err := c.CourseService.GetCourse(uint(id))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if course == nil {
		util.NotFound(ctx, "Course not found")
		return
	}

	util.Success(ctx, course)
}
