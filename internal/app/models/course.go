package models

import "time"

// Course is a recurring weekly course template within a semester.
type Course struct {
	ID           string         `json:"id"`
	SemesterID   string         `json:"semesterId"`
	UserCourseID string         `json:"userCourseId"`
	Name         string         `json:"name"`
	Teacher      string         `json:"teacher"`
	Room         string         `json:"room"`
	DaysOfWeek   []time.Weekday `json:"daysOfWeek"`
	// FrequencyWeeks is the recurrence cadence: 1 fires every week,
	// N fires in weeks 0, N, 2N, ... counted from the semester start.
	FrequencyWeeks int       `json:"frequencyWeeks"`
	StartTime      TimeOfDay `json:"startTime"`
	EndTime        TimeOfDay `json:"endTime"`
	Color          Color     `json:"color"`
	// IsManuallyEdited protects Color from being overwritten by SIAKAD sync.
	IsManuallyEdited bool `json:"isManuallyEdited"`
}

// OccursOn reports whether the course has a weekly slot on the given weekday.
func (c *Course) OccursOn(day time.Weekday) bool {
	for _, d := range c.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}
