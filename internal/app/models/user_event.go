package models

// EventType classifies calendar entries.
type EventType string

const (
	// EventTypeCourse is reserved for materialized course occurrences;
	// it is never stored on a UserEvent.
	EventTypeCourse   EventType = "COURSE"
	EventTypeHomework EventType = "HOMEWORK"
	EventTypeExam     EventType = "EXAM"
	EventTypeCustom   EventType = "CUSTOM"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeCourse, EventTypeHomework, EventTypeExam, EventTypeCustom:
		return true
	}
	return false
}

// UserEvent is a one-off dated item: homework, exam or custom entry.
// StartTime and EndTime are either both set or both nil; a nil pair means
// an all-day event.
type UserEvent struct {
	ID          string     `json:"id"`
	SemesterID  string     `json:"semesterId"`
	CourseID    *string    `json:"courseId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        EventType  `json:"type"`
	Date        Date       `json:"date"`
	StartTime   *TimeOfDay `json:"startTime,omitempty"`
	EndTime     *TimeOfDay `json:"endTime,omitempty"`
	// IsCompleted is meaningful only for HOMEWORK events.
	IsCompleted bool   `json:"isCompleted"`
	Color       *Color `json:"color,omitempty"`
}
