package models

import "time"

// CalendarEvent is a materialized, transient calendar entry. It is produced
// fresh on every materialization call and never persisted; ownership lies
// with the caller.
type CalendarEvent struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Color       Color     `json:"color"`
	Type        EventType `json:"type"`

	// Source references.
	SemesterID  string  `json:"semesterId"`
	CourseID    *string `json:"courseId,omitempty"`
	UserEventID *string `json:"userEventId,omitempty"`

	SourceCourse *Course    `json:"-"`
	SourceEvent  *UserEvent `json:"-"`
}

// CalendarView selects one of the calendar rendering modes.
type CalendarView string

const (
	ViewDaily    CalendarView = "DAILY"
	ViewWeekly   CalendarView = "WEEKLY"
	ViewMonthly  CalendarView = "MONTHLY"
	ViewSchedule CalendarView = "SCHEDULE"
)
