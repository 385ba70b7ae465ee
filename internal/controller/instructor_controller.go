package controller

import (
	"strconv"

	"course_catalog_backend/internal/service"
	"course_catalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InstructorController struct {
	InstructorService *service.InstructorService
}

func NewInstructorController(instructorService *service.InstructorService) *InstructorController {
	return &InstructorController{InstructorService: instructorService}
}

// @Summary List instructors
// @Tags instructors
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/instructors [get]
func (c *InstructorController) GetAllInstructors(ctx *gin.Context) {
	instructors, err := c.InstructorService.GetAllInstructors()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, instructors)
}

// @Summary Get an instructor with their courses
// @Tags instructors
// @Produce json
// @Param id path int true "instructor id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructors/{id} [get]
func (c *InstructorController) GetInstructor(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid instructor ID")
		return
	}

	instructor, err := c.InstructorService.GetInstructorWithCourses(uint(id))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if instructor == nil {
		util.NotFound(ctx, "Instructor not found")
		return
	}

	util.Success(ctx, instructor)
}
