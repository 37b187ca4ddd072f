package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/repositories"
	"github.com/fakhrin/unicampus/internal/app/session"
	"github.com/fakhrin/unicampus/internal/pkg/apperrors"
)

// UserEventService handles one-off user events: homework, exams and custom
// entries.
type UserEventService struct {
	eventRepo    *repositories.UserEventRepository
	courseRepo   *repositories.CourseRepository
	semesterRepo *repositories.SemesterRepository
	session      *session.Session
}

// NewUserEventService creates a new user event service instance.
func NewUserEventService(
	eventRepo *repositories.UserEventRepository,
	courseRepo *repositories.CourseRepository,
	semesterRepo *repositories.SemesterRepository,
	sess *session.Session,
) *UserEventService {
	return &UserEventService{
		eventRepo:    eventRepo,
		courseRepo:   courseRepo,
		semesterRepo: semesterRepo,
		session:      sess,
	}
}

// validateUserEvent validates event data before database operations.
func (s *UserEventService) validateUserEvent(ev *models.UserEvent) error {
	if ev == nil {
		return fmt.Errorf("%w: event is nil", apperrors.ErrUserEventValidation)
	}
	if strings.TrimSpace(ev.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrUserEventValidation)
	}
	if ev.SemesterID == "" {
		return fmt.Errorf("%w: semester ID is required", apperrors.ErrUserEventValidation)
	}
	if !ev.Type.Valid() || ev.Type == models.EventTypeCourse {
		// COURSE is reserved for materialized occurrences.
		return fmt.Errorf("%w: invalid event type %q", apperrors.ErrUserEventValidation, ev.Type)
	}
	if ev.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrUserEventValidation)
	}
	if (ev.StartTime == nil) != (ev.EndTime == nil) {
		return fmt.Errorf("%w: start and end time must be set together", apperrors.ErrUserEventValidation)
	}
	if ev.StartTime != nil && !ev.StartTime.Before(*ev.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", apperrors.ErrUserEventValidation)
	}
	return nil
}

func (s *UserEventService) checkReferences(ctx context.Context, ev *models.UserEvent) error {
	if _, err := s.semesterRepo.GetByID(ctx, ev.SemesterID); err != nil {
		if errors.Is(err, apperrors.ErrSemesterNotFound) {
			return apperrors.ErrSemesterNotFound
		}
		return fmt.Errorf("error checking semester: %w", err)
	}
	if ev.CourseID != nil {
		if _, err := s.courseRepo.GetByID(ctx, *ev.CourseID); err != nil {
			if errors.Is(err, apperrors.ErrCourseNotFound) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error checking course: %w", err)
		}
	}
	return nil
}

// CreateUserEvent creates a new user event.
func (s *UserEventService) CreateUserEvent(ctx context.Context, ev *models.UserEvent) error {
	if err := s.validateUserEvent(ev); err != nil {
		return err
	}
	if err := s.checkReferences(ctx, ev); err != nil {
		return err
	}

	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if err := s.eventRepo.Create(ctx, ev); err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}
	s.session.Invalidate()
	return nil
}

// GetUserEventByID retrieves a user event by ID.
func (s *UserEventService) GetUserEventByID(ctx context.Context, id string) (*models.UserEvent, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: event ID is required", apperrors.ErrUserEventValidation)
	}
	return s.eventRepo.GetByID(ctx, id)
}

// GetUserEventsBySemester retrieves the user events of a semester.
func (s *UserEventService) GetUserEventsBySemester(ctx context.Context, semesterID string) ([]*models.UserEvent, error) {
	if _, err := s.semesterRepo.GetByID(ctx, semesterID); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.GetBySemesterID(ctx, semesterID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}
	return events, nil
}

// UpdateUserEvent updates an existing user event.
func (s *UserEventService) UpdateUserEvent(ctx context.Context, ev *models.UserEvent) error {
	if err := s.validateUserEvent(ev); err != nil {
		return err
	}
	if ev.ID == "" {
		return fmt.Errorf("%w: event ID is required", apperrors.ErrUserEventValidation)
	}
	if err := s.checkReferences(ctx, ev); err != nil {
		return err
	}

	if err := s.eventRepo.Update(ctx, ev); err != nil {
		return err
	}
	s.session.Invalidate()
	return nil
}

// SetCompletion toggles the completion flag. Only HOMEWORK events carry a
// meaningful completion state.
func (s *UserEventService) SetCompletion(ctx context.Context, id string, isCompleted bool) error {
	ev, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ev.Type != models.EventTypeHomework {
		return fmt.Errorf("%w: only homework can be completed", apperrors.ErrUserEventValidation)
	}

	if err := s.eventRepo.UpdateCompletion(ctx, id, isCompleted); err != nil {
		return err
	}
	s.session.Invalidate()
	return nil
}

// DeleteUserEvent deletes a user event.
func (s *UserEventService) DeleteUserEvent(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: event ID is required", apperrors.ErrUserEventValidation)
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.session.Invalidate()
	return nil
}
