package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/models/dto"
	"github.com/fakhrin/unicampus/internal/app/schedule"
	"github.com/fakhrin/unicampus/internal/app/services"
	"github.com/fakhrin/unicampus/internal/middleware"
	"github.com/fakhrin/unicampus/internal/pkg/apperrors"
)

// ScheduleController serves the materialized schedule of the active semester
type ScheduleController struct {
	scheduleService *services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService) *ScheduleController {
	return &ScheduleController{scheduleService: scheduleService}
}

// GetSchedule handles GET /schedule
func (c *ScheduleController) GetSchedule(ctx *gin.Context) {
	semester, err := c.scheduleService.ActiveSemester(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if semester == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrSemesterNotFound)
		return
	}

	events, err := c.scheduleService.CalendarEvents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Optional windowing: ?view=DAILY|WEEKLY|MONTHLY&date=YYYY-MM-DD trims
	// the list to the days that view shows. The default is the full
	// semester (the list view).
	if viewStr := ctx.Query("view"); viewStr != "" {
		anchor, err := models.ParseDate(ctx.DefaultQuery("date", models.DateOf(timeNow()).String()))
		if err != nil {
			bindError(ctx, err)
			return
		}
		if from, to, ok := schedule.ViewWindow(models.CalendarView(viewStr), anchor); ok {
			events = schedule.FilterWindow(events, from, to)
		}
	}

	ctx.JSON(http.StatusOK, dto.ToScheduleResponse(semester, events))
}

// timeNow is replaceable in tests.
var timeNow = time.Now

// GetDayLayout handles GET /schedule/layout?date=YYYY-MM-DD
func (c *ScheduleController) GetDayLayout(ctx *gin.Context) {
	dateStr := ctx.Query("date")
	if dateStr == "" {
		bindError(ctx, apperrors.NewBadRequestError("date query parameter is required"))
		return
	}
	date, err := models.ParseDate(dateStr)
	if err != nil {
		bindError(ctx, err)
		return
	}

	boxes, err := c.scheduleService.DayLayout(ctx, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDayLayoutResponse(date, boxes))
}

// ExportICS handles GET /schedule/ics
func (c *ScheduleController) ExportICS(ctx *gin.Context) {
	out, err := c.scheduleService.ExportICS(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="schedule.ics"`)
	ctx.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(out))
}
