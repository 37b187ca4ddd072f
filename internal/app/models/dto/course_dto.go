package dto

import (
	"fmt"
	"time"

	"github.com/fakhrin/unicampus/internal/app/models"
)

// CourseResponse represents course information
type CourseResponse struct {
	ID               string   `json:"id"`
	SemesterID       string   `json:"semesterId"`
	UserCourseID     string   `json:"userCourseId"`
	Name             string   `json:"name"`
	Teacher          string   `json:"teacher"`
	Room             string   `json:"room"`
	DaysOfWeek       []string `json:"daysOfWeek"`
	FrequencyWeeks   int      `json:"frequencyWeeks"`
	StartTime        string   `json:"startTime"`
	EndTime          string   `json:"endTime"`
	Color            string   `json:"color"`
	IsManuallyEdited bool     `json:"isManuallyEdited"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	SemesterID     string   `json:"semesterId" binding:"required"`
	UserCourseID   string   `json:"userCourseId" binding:"required"`
	Name           string   `json:"name" binding:"required"`
	Teacher        string   `json:"teacher"`
	Room           string   `json:"room"`
	DaysOfWeek     []string `json:"daysOfWeek" binding:"required,min=1"`
	FrequencyWeeks int      `json:"frequencyWeeks" binding:"required,min=1"`
	StartTime      string   `json:"startTime" binding:"required"`
	EndTime        string   `json:"endTime" binding:"required"`
	Color          *uint32  `json:"color"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	UserCourseID   string   `json:"userCourseId" binding:"required"`
	Name           string   `json:"name" binding:"required"`
	Teacher        string   `json:"teacher"`
	Room           string   `json:"room"`
	DaysOfWeek     []string `json:"daysOfWeek" binding:"required,min=1"`
	FrequencyWeeks int      `json:"frequencyWeeks" binding:"required,min=1"`
	StartTime      string   `json:"startTime" binding:"required"`
	EndTime        string   `json:"endTime" binding:"required"`
	Color          *uint32  `json:"color"`
}

// SetCourseColorRequest changes a course color, marking it manually edited
type SetCourseColorRequest struct {
	Color uint32 `json:"color" binding:"required"`
}

// CourseListResponse represents a list of courses
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// ToCourseResponse maps a course to its response shape
func ToCourseResponse(c *models.Course) CourseResponse {
	days := make([]string, 0, len(c.DaysOfWeek))
	for _, d := range c.DaysOfWeek {
		days = append(days, models.WeekdayName(d))
	}
	return CourseResponse{
		ID:               c.ID,
		SemesterID:       c.SemesterID,
		UserCourseID:     c.UserCourseID,
		Name:             c.Name,
		Teacher:          c.Teacher,
		Room:             c.Room,
		DaysOfWeek:       days,
		FrequencyWeeks:   c.FrequencyWeeks,
		StartTime:        c.StartTime.String(),
		EndTime:          c.EndTime.String(),
		Color:            c.Color.Hex(),
		IsManuallyEdited: c.IsManuallyEdited,
	}
}

// ToCourseListResponse maps a course slice to its response shape
func ToCourseListResponse(courses []*models.Course) CourseListResponse {
	out := CourseListResponse{Courses: make([]CourseResponse, 0, len(courses))}
	for _, c := range courses {
		out.Courses = append(out.Courses, ToCourseResponse(c))
	}
	return out
}

// ParseCourseTimes converts the request's string fields into model values.
func ParseCourseTimes(days []string, start, end string) ([]time.Weekday, models.TimeOfDay, models.TimeOfDay, error) {
	weekdays := make([]time.Weekday, 0, len(days))
	for _, name := range days {
		d, err := models.ParseWeekday(name)
		if err != nil {
			return nil, models.TimeOfDay{}, models.TimeOfDay{}, fmt.Errorf("dayOfWeek: %w", err)
		}
		weekdays = append(weekdays, d)
	}
	startTime, err := models.ParseTimeOfDay(start)
	if err != nil {
		return nil, models.TimeOfDay{}, models.TimeOfDay{}, fmt.Errorf("startTime: %w", err)
	}
	endTime, err := models.ParseTimeOfDay(end)
	if err != nil {
		return nil, models.TimeOfDay{}, models.TimeOfDay{}, fmt.Errorf("endTime: %w", err)
	}
	return weekdays, startTime, endTime, nil
}
