package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/models/dto"
	"github.com/fakhrin/unicampus/internal/app/services"
	"github.com/fakhrin/unicampus/internal/middleware"
)

// UserEventController handles user events: homework, exams and custom entries
type UserEventController struct {
	eventService *services.UserEventService
}

// NewUserEventController creates a new UserEventController
func NewUserEventController(eventService *services.UserEventService) *UserEventController {
	return &UserEventController{eventService: eventService}
}

func eventTimes(start, end *string) (*models.TimeOfDay, *models.TimeOfDay, error) {
	var startTime, endTime *models.TimeOfDay
	if start != nil {
		t, err := models.ParseTimeOfDay(*start)
		if err != nil {
			return nil, nil, err
		}
		startTime = &t
	}
	if end != nil {
		t, err := models.ParseTimeOfDay(*end)
		if err != nil {
			return nil, nil, err
		}
		endTime = &t
	}
	return startTime, endTime, nil
}

// CreateUserEvent handles POST /events
func (c *UserEventController) CreateUserEvent(ctx *gin.Context) {
	var req dto.CreateUserEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		bindError(ctx, err)
		return
	}
	startTime, endTime, err := eventTimes(req.StartTime, req.EndTime)
	if err != nil {
		bindError(ctx, err)
		return
	}

	ev := &models.UserEvent{
		SemesterID:  req.SemesterID,
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		Type:        models.EventType(req.Type),
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
	}
	if req.Color != nil {
		color := models.Color(*req.Color)
		ev.Color = &color
	}

	if err := c.eventService.CreateUserEvent(ctx, ev); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToUserEventResponse(ev))
}

// GetUserEventsBySemester handles GET /semesters/:id/events
func (c *UserEventController) GetUserEventsBySemester(ctx *gin.Context) {
	events, err := c.eventService.GetUserEventsBySemester(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserEventListResponse(events))
}

// GetUserEventByID handles GET /events/:id
func (c *UserEventController) GetUserEventByID(ctx *gin.Context) {
	ev, err := c.eventService.GetUserEventByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserEventResponse(ev))
}

// UpdateUserEvent handles PUT /events/:id
func (c *UserEventController) UpdateUserEvent(ctx *gin.Context) {
	var req dto.UpdateUserEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	existing, err := c.eventService.GetUserEventByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		bindError(ctx, err)
		return
	}
	startTime, endTime, err := eventTimes(req.StartTime, req.EndTime)
	if err != nil {
		bindError(ctx, err)
		return
	}

	ev := &models.UserEvent{
		ID:          existing.ID,
		SemesterID:  existing.SemesterID,
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		Type:        models.EventType(req.Type),
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		IsCompleted: existing.IsCompleted,
		Color:       existing.Color,
	}
	if req.Color != nil {
		color := models.Color(*req.Color)
		ev.Color = &color
	}

	if err := c.eventService.UpdateUserEvent(ctx, ev); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserEventResponse(ev))
}

// SetCompletion handles PUT /events/:id/completion
func (c *UserEventController) SetCompletion(ctx *gin.Context) {
	var req dto.SetCompletionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	if err := c.eventService.SetCompletion(ctx, ctx.Param("id"), *req.IsCompleted); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Completion updated"})
}

// DeleteUserEvent handles DELETE /events/:id
func (c *UserEventController) DeleteUserEvent(ctx *gin.Context) {
	if err := c.eventService.DeleteUserEvent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Event deleted"})
}
