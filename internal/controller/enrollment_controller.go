package controller

import (
	"errors"
	"strconv"

	"course_catalog_backend/internal/service"
	"course_catalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// @Summary Enroll a user in a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param enrollment body object true "userId and courseId"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req struct {
		UserID   uint `json:"userId"`
		CourseID uint `json:"courseId"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "User ID and Course ID are required")
		return
	}
	if req.UserID == 0 || req.CourseID == 0 {
		util.BadRequest(ctx, "User ID and Course ID are required")
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(req.UserID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAlreadyEnrolled):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidEnrollment):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, enrollment)
}

// @Summary List a user's enrollments
// @Tags enrollments
// @Produce json
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/enrollments/user/{userId} [get]
func (c *EnrollmentController) GetUserEnrollments(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}

	enrollments, err := c.EnrollmentService.GetUserEnrollments(uint(userID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, enrollments)
}
