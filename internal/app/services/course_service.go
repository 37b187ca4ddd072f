package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/repositories"
	"github.com/fakhrin/unicampus/internal/app/schedule"
	"github.com/fakhrin/unicampus/internal/app/session"
	"github.com/fakhrin/unicampus/internal/pkg/apperrors"
)

// CourseService handles course management.
type CourseService struct {
	courseRepo   *repositories.CourseRepository
	semesterRepo *repositories.SemesterRepository
	session      *session.Session
}

// NewCourseService creates a new course service instance.
func NewCourseService(courseRepo *repositories.CourseRepository, semesterRepo *repositories.SemesterRepository, sess *session.Session) *CourseService {
	return &CourseService{
		courseRepo:   courseRepo,
		semesterRepo: semesterRepo,
		session:      sess,
	}
}

// validateCourse validates course data at the editor boundary. The
// materializer itself tolerates looser input; data entered here must be
// fully formed.
func (s *CourseService) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrCourseValidation)
	}
	if strings.TrimSpace(course.UserCourseID) == "" {
		return fmt.Errorf("%w: course code cannot be empty", apperrors.ErrCourseValidation)
	}
	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrCourseValidation)
	}
	if course.SemesterID == "" {
		return fmt.Errorf("%w: semester ID is required", apperrors.ErrCourseValidation)
	}
	if len(course.DaysOfWeek) == 0 {
		return fmt.Errorf("%w: at least one weekday is required", apperrors.ErrCourseValidation)
	}
	if course.FrequencyWeeks < 1 {
		return fmt.Errorf("%w: frequency must be at least 1 week", apperrors.ErrCourseValidation)
	}
	if !course.StartTime.Before(course.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", apperrors.ErrCourseValidation)
	}
	return nil
}

func (s *CourseService) checkSemesterExists(ctx context.Context, semesterID string) error {
	_, err := s.semesterRepo.GetByID(ctx, semesterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSemesterNotFound) {
			return apperrors.ErrSemesterNotFound
		}
		return fmt.Errorf("error checking semester: %w", err)
	}
	return nil
}

// CreateCourse creates a new course.
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}
	if err := s.checkSemesterExists(ctx, course.SemesterID); err != nil {
		return err
	}

	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	if course.Color == 0 {
		course.Color = schedule.RandomCourseColor()
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	s.session.Invalidate()
	return nil
}

// GetCourseByID retrieves a course by ID.
func (s *CourseService) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: course ID is required", apperrors.ErrCourseValidation)
	}
	return s.courseRepo.GetByID(ctx, id)
}

// GetCoursesBySemester retrieves the courses of a semester.
func (s *CourseService) GetCoursesBySemester(ctx context.Context, semesterID string) ([]*models.Course, error) {
	if err := s.checkSemesterExists(ctx, semesterID); err != nil {
		return nil, err
	}
	courses, err := s.courseRepo.GetBySemesterID(ctx, semesterID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse updates an existing course. A caller-changed color marks the
// course as manually edited so later syncs keep it.
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}
	if course.ID == "" {
		return fmt.Errorf("%w: course ID is required", apperrors.ErrCourseValidation)
	}

	existing, err := s.courseRepo.GetByID(ctx, course.ID)
	if err != nil {
		return err
	}
	if course.Color != existing.Color {
		course.IsManuallyEdited = true
	} else {
		course.IsManuallyEdited = existing.IsManuallyEdited
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return err
	}
	s.session.Invalidate()
	return nil
}

// SetCourseColor sets an explicit color on a course. The color becomes
// manually edited and survives SIAKAD syncs.
func (s *CourseService) SetCourseColor(ctx context.Context, id string, color models.Color) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	course.Color = color
	course.IsManuallyEdited = true
	if err := s.courseRepo.Update(ctx, course); err != nil {
		return err
	}
	s.session.Invalidate()
	return nil
}

// DeleteCourse deletes a course; linked user events lose their course
// reference but keep existing.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: course ID is required", apperrors.ErrCourseValidation)
	}
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.session.Invalidate()
	return nil
}
