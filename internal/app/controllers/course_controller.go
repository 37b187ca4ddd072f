package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/models/dto"
	"github.com/fakhrin/unicampus/internal/app/services"
	"github.com/fakhrin/unicampus/internal/middleware"
)

// CourseController handles course CRUD
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse handles POST /courses
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	days, start, end, err := dto.ParseCourseTimes(req.DaysOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		bindError(ctx, err)
		return
	}

	course := &models.Course{
		SemesterID:     req.SemesterID,
		UserCourseID:   req.UserCourseID,
		Name:           req.Name,
		Teacher:        req.Teacher,
		Room:           req.Room,
		DaysOfWeek:     days,
		FrequencyWeeks: req.FrequencyWeeks,
		StartTime:      start,
		EndTime:        end,
	}
	if req.Color != nil {
		course.Color = models.Color(*req.Color)
	}

	if err := c.courseService.CreateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToCourseResponse(course))
}

// GetCoursesBySemester handles GET /semesters/:id/courses
func (c *CourseController) GetCoursesBySemester(ctx *gin.Context) {
	courses, err := c.courseService.GetCoursesBySemester(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCourseListResponse(courses))
}

// GetCourseByID handles GET /courses/:id
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCourseResponse(course))
}

// UpdateCourse handles PUT /courses/:id
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	existing, err := c.courseService.GetCourseByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	days, start, end, err := dto.ParseCourseTimes(req.DaysOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		bindError(ctx, err)
		return
	}

	course := &models.Course{
		ID:               existing.ID,
		SemesterID:       existing.SemesterID,
		UserCourseID:     req.UserCourseID,
		Name:             req.Name,
		Teacher:          req.Teacher,
		Room:             req.Room,
		DaysOfWeek:       days,
		FrequencyWeeks:   req.FrequencyWeeks,
		StartTime:        start,
		EndTime:          end,
		Color:            existing.Color,
		IsManuallyEdited: existing.IsManuallyEdited,
	}
	if req.Color != nil {
		course.Color = models.Color(*req.Color)
	}

	if err := c.courseService.UpdateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCourseResponse(course))
}

// SetCourseColor handles PUT /courses/:id/color
func (c *CourseController) SetCourseColor(ctx *gin.Context) {
	var req dto.SetCourseColorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	if err := c.courseService.SetCourseColor(ctx, ctx.Param("id"), models.Color(req.Color)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Course color updated"})
}

// DeleteCourse handles DELETE /courses/:id
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Course deleted"})
}
