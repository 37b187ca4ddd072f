// Package schedule contains the calendar materialization engine: it expands
// recurring course templates into dated occurrences over a semester window,
// merges them with one-off user events and computes the overlap layout used
// by the daily and weekly calendar views. Everything in this package is a
// pure function over its inputs.
package schedule

import (
	"fmt"
	"sort"

	"github.com/fakhrin/unicampus/internal/app/models"
)

// homeworkMarker prefixes homework titles in the materialized output.
const homeworkMarker = "\U0001F4DD "

// Materialize expands the semester's courses into concrete dated
// occurrences, merges them with the user events that fall inside the
// semester window and returns the combined list sorted ascending by start
// instant. The result is freshly allocated on every call; identical inputs
// produce element-wise identical output.
//
// Courses with an empty day set produce no occurrences. A non-positive
// FrequencyWeeks is treated as 1.
func Materialize(semester models.Semester, courses []models.Course, userEvents []models.UserEvent) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(courses)+len(userEvents))

	totalDays := semester.TotalDays()
	for i := 0; i < totalDays; i++ {
		date := semester.StartDate.AddDays(i)
		weeksSinceStart := semester.StartDate.DaysUntil(date) / 7
		for ci := range courses {
			course := &courses[ci]
			if !course.OccursOn(date.Weekday()) {
				continue
			}
			// Week zero is anchored at the semester start date, whatever
			// weekday the semester begins on.
			freq := course.FrequencyWeeks
			if freq < 1 {
				freq = 1
			}
			if weeksSinceStart%freq != 0 {
				continue
			}
			events = append(events, courseOccurrence(semester, course, date))
		}
	}

	for ei := range userEvents {
		ev := &userEvents[ei]
		if !semester.ContainsDate(ev.Date) {
			// Events outside the window belong to another semester's view.
			continue
		}
		events = append(events, userEventEntry(semester, courses, ev))
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
	return events
}

func courseOccurrence(semester models.Semester, course *models.Course, date models.Date) models.CalendarEvent {
	courseID := course.ID
	return models.CalendarEvent{
		Title:        fmt.Sprintf("%s: %s", course.UserCourseID, course.Name),
		Description:  fmt.Sprintf("Teacher: %s\nRoom: %s", course.Teacher, course.Room),
		Start:        date.At(course.StartTime),
		End:          date.At(course.EndTime),
		Color:        course.Color,
		Type:         models.EventTypeCourse,
		SemesterID:   semester.ID,
		CourseID:     &courseID,
		SourceCourse: course,
	}
}

func userEventEntry(semester models.Semester, courses []models.Course, ev *models.UserEvent) models.CalendarEvent {
	// Missing times mean an all-day entry: 00:00 to the 23:59 sentinel.
	// 23:59 rather than a true next-day boundary is a known approximation.
	start := models.TimeOfDay{}
	end := models.TimeOfDay{Hour: 23, Minute: 59}
	if ev.StartTime != nil {
		start = *ev.StartTime
	}
	if ev.EndTime != nil {
		end = *ev.EndTime
	}

	linked := findCourse(courses, ev.CourseID)

	title := ev.Title
	if ev.Type == models.EventTypeHomework {
		title = homeworkMarker + title
	}

	eventID := ev.ID
	out := models.CalendarEvent{
		Title:       title,
		Description: ev.Description,
		Start:       ev.Date.At(start),
		End:         ev.Date.At(end),
		Color:       ResolveEventColor(ev, linked),
		Type:        ev.Type,
		SemesterID:  semester.ID,
		CourseID:    ev.CourseID,
		UserEventID: &eventID,
		SourceEvent: ev,
	}
	out.SourceCourse = linked
	return out
}

func findCourse(courses []models.Course, id *string) *models.Course {
	if id == nil {
		return nil
	}
	for i := range courses {
		if courses[i].ID == *id {
			return &courses[i]
		}
	}
	return nil
}
