package services

import (
	"context"
	"fmt"
	"sync"

	ics "github.com/arran4/golang-ical"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/schedule"
	"github.com/fakhrin/unicampus/internal/app/session"
	"github.com/fakhrin/unicampus/internal/pkg/apperrors"
)

// SemesterSource, CourseSource and UserEventSource are the narrow read
// interfaces the schedule service needs; the pgx repositories satisfy them.
type SemesterSource interface {
	GetByID(ctx context.Context, id string) (*models.Semester, error)
	GetAll(ctx context.Context) ([]*models.Semester, error)
}

type CourseSource interface {
	GetBySemesterID(ctx context.Context, semesterID string) ([]*models.Course, error)
}

type UserEventSource interface {
	GetBySemesterID(ctx context.Context, semesterID string) ([]*models.UserEvent, error)
}

// ScheduleService materializes the calendar for the active semester and
// serves day layouts and ICS exports built from it.
type ScheduleService struct {
	semesters SemesterSource
	courses   CourseSource
	events    UserEventSource
	session   *session.Session

	// Latest materialization, memoized per session revision. The
	// computation is cheap enough to redo on every change; the memo only
	// spares redundant loads between changes.
	mu             sync.Mutex
	cachedRevision uint64
	cachedSemID    string
	cachedEvents   []models.CalendarEvent
}

// NewScheduleService creates a new schedule service instance.
func NewScheduleService(semesters SemesterSource, courses CourseSource, events UserEventSource, sess *session.Session) *ScheduleService {
	return &ScheduleService{
		semesters: semesters,
		courses:   courses,
		events:    events,
		session:   sess,
	}
}

// ActiveSemester resolves the semester the session points at: an explicit
// selection wins, no selection defaults to the first semester, and the
// all-semesters sentinel (or an empty database) yields nil.
func (s *ScheduleService) ActiveSemester(ctx context.Context) (*models.Semester, error) {
	selected := s.session.SelectedSemesterID()
	if selected != nil && *selected == session.AllSemestersID {
		return nil, nil
	}

	if selected != nil {
		sem, err := s.semesters.GetByID(ctx, *selected)
		if err == nil {
			return sem, nil
		}
		// A stale selection (deleted semester) falls back to the default.
	}

	all, err := s.semesters.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving active semester: %w", err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

// CalendarEvents returns the materialized schedule of the active semester,
// recomputed whenever the underlying data changes. Without an active
// semester the result is empty.
func (s *ScheduleService) CalendarEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	semester, err := s.ActiveSemester(ctx)
	if err != nil {
		return nil, err
	}
	if semester == nil {
		return nil, nil
	}
	return s.eventsFor(ctx, semester)
}

// CalendarEventsForSemester materializes a specific semester's schedule.
func (s *ScheduleService) CalendarEventsForSemester(ctx context.Context, semesterID string) ([]models.CalendarEvent, error) {
	semester, err := s.semesters.GetByID(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	return s.eventsFor(ctx, semester)
}

func (s *ScheduleService) eventsFor(ctx context.Context, semester *models.Semester) ([]models.CalendarEvent, error) {
	s.mu.Lock()
	rev := s.session.Revision()
	if s.cachedEvents != nil && s.cachedRevision == rev && s.cachedSemID == semester.ID {
		cached := s.cachedEvents
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	courses, err := s.courses.GetBySemesterID(ctx, semester.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading courses: %w", err)
	}
	userEvents, err := s.events.GetBySemesterID(ctx, semester.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading events: %w", err)
	}

	courseVals := make([]models.Course, len(courses))
	for i, c := range courses {
		courseVals[i] = *c
	}
	eventVals := make([]models.UserEvent, len(userEvents))
	for i, ev := range userEvents {
		eventVals[i] = *ev
	}

	materialized := schedule.Materialize(*semester, courseVals, eventVals)

	s.mu.Lock()
	s.cachedRevision = rev
	s.cachedSemID = semester.ID
	s.cachedEvents = materialized
	s.mu.Unlock()

	return materialized, nil
}

// DayLayout computes the overlap layout for one displayed day of the
// active semester.
func (s *ScheduleService) DayLayout(ctx context.Context, date models.Date) ([]schedule.EventBox, error) {
	events, err := s.CalendarEvents(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.LayoutDay(date, events), nil
}

// ExportICS renders the active semester's materialized schedule as an
// iCalendar document, one VEVENT per occurrence.
func (s *ScheduleService) ExportICS(ctx context.Context) (string, error) {
	semester, err := s.ActiveSemester(ctx)
	if err != nil {
		return "", err
	}
	if semester == nil {
		return "", apperrors.ErrSemesterNotFound
	}

	events, err := s.eventsFor(ctx, semester)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//unicampus//schedule//EN")
	cal.SetName(semester.Name)

	for i, ev := range events {
		uid := fmt.Sprintf("%s-%d@unicampus", semester.ID, i)
		ve := cal.AddEvent(uid)
		ve.SetSummary(ev.Title)
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
		ve.SetStartAt(ev.Start)
		ve.SetEndAt(ev.End)
		if ev.SourceCourse != nil {
			ve.SetLocation(ev.SourceCourse.Room)
		}
	}

	return cal.Serialize(), nil
}
