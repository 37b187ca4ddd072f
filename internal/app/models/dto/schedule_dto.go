package dto

import (
	"time"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/schedule"
)

// CalendarEventResponse is one materialized schedule occurrence
type CalendarEventResponse struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Color       string  `json:"color"`
	Type        string  `json:"type"`
	SemesterID  string  `json:"semesterId"`
	CourseID    *string `json:"courseId,omitempty"`
	UserEventID *string `json:"userEventId,omitempty"`
}

// ScheduleResponse is the materialized schedule of the active semester
type ScheduleResponse struct {
	SemesterID   string                  `json:"semesterId"`
	SemesterName string                  `json:"semesterName"`
	Events       []CalendarEventResponse `json:"events"`
}

// EventBoxResponse is one positioned event in a day layout
type EventBoxResponse struct {
	Event       CalendarEventResponse `json:"event"`
	StartMinute int                   `json:"startMinute"`
	EndMinute   int                   `json:"endMinute"`
	ColumnIndex int                   `json:"columnIndex"`
	ColumnCount int                   `json:"columnCount"`
}

// DayLayoutResponse is the overlap layout of one displayed day
type DayLayoutResponse struct {
	Date  string             `json:"date"`
	Boxes []EventBoxResponse `json:"boxes"`
}

// ToCalendarEventResponse maps a materialized occurrence to its response shape
func ToCalendarEventResponse(ev models.CalendarEvent) CalendarEventResponse {
	return CalendarEventResponse{
		Title:       ev.Title,
		Description: ev.Description,
		Start:       ev.Start.Format(time.RFC3339),
		End:         ev.End.Format(time.RFC3339),
		Color:       ev.Color.Hex(),
		Type:        string(ev.Type),
		SemesterID:  ev.SemesterID,
		CourseID:    ev.CourseID,
		UserEventID: ev.UserEventID,
	}
}

// ToScheduleResponse maps a materialized schedule to its response shape
func ToScheduleResponse(semester *models.Semester, events []models.CalendarEvent) ScheduleResponse {
	out := ScheduleResponse{
		SemesterID:   semester.ID,
		SemesterName: semester.Name,
		Events:       make([]CalendarEventResponse, 0, len(events)),
	}
	for _, ev := range events {
		out.Events = append(out.Events, ToCalendarEventResponse(ev))
	}
	return out
}

// ToDayLayoutResponse maps a day layout to its response shape
func ToDayLayoutResponse(date models.Date, boxes []schedule.EventBox) DayLayoutResponse {
	out := DayLayoutResponse{
		Date:  date.String(),
		Boxes: make([]EventBoxResponse, 0, len(boxes)),
	}
	for _, b := range boxes {
		out.Boxes = append(out.Boxes, EventBoxResponse{
			Event:       ToCalendarEventResponse(b.Event),
			StartMinute: b.StartMinute,
			EndMinute:   b.EndMinute,
			ColumnIndex: b.ColumnIndex,
			ColumnCount: b.ColumnCount,
		})
	}
	return out
}
