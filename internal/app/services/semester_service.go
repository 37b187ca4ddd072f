package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/repositories"
	"github.com/fakhrin/unicampus/internal/app/session"
	"github.com/fakhrin/unicampus/internal/pkg/apperrors"
)

// SemesterService handles semester management.
type SemesterService struct {
	semesterRepo *repositories.SemesterRepository
	session      *session.Session
}

// NewSemesterService creates a new semester service instance.
func NewSemesterService(semesterRepo *repositories.SemesterRepository, sess *session.Session) *SemesterService {
	return &SemesterService{
		semesterRepo: semesterRepo,
		session:      sess,
	}
}

// validateSemester validates semester data before database operations.
func (s *SemesterService) validateSemester(semester *models.Semester) error {
	if semester == nil {
		return fmt.Errorf("%w: semester is nil", apperrors.ErrSemesterValidation)
	}
	if strings.TrimSpace(semester.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrSemesterValidation)
	}
	if semester.StartDate.IsZero() || semester.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", apperrors.ErrSemesterValidation)
	}
	if semester.EndDate.Before(semester.StartDate) {
		return fmt.Errorf("%w: start date must not be after end date", apperrors.ErrSemesterValidation)
	}
	return nil
}

// CreateSemester creates a new semester, assigning an ID when absent.
func (s *SemesterService) CreateSemester(ctx context.Context, semester *models.Semester) error {
	if err := s.validateSemester(semester); err != nil {
		return err
	}
	if semester.ID == "" {
		semester.ID = uuid.New().String()
	}

	if err := s.semesterRepo.Create(ctx, semester); err != nil {
		return fmt.Errorf("error creating semester: %w", err)
	}
	s.session.Invalidate()
	return nil
}

// GetSemesterByID retrieves a semester by ID.
func (s *SemesterService) GetSemesterByID(ctx context.Context, id string) (*models.Semester, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: semester ID is required", apperrors.ErrSemesterValidation)
	}
	return s.semesterRepo.GetByID(ctx, id)
}

// GetAllSemesters retrieves all semesters.
func (s *SemesterService) GetAllSemesters(ctx context.Context) ([]*models.Semester, error) {
	semesters, err := s.semesterRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving semesters: %w", err)
	}
	return semesters, nil
}

// UpdateSemester updates an existing semester.
func (s *SemesterService) UpdateSemester(ctx context.Context, semester *models.Semester) error {
	if err := s.validateSemester(semester); err != nil {
		return err
	}
	if semester.ID == "" {
		return fmt.Errorf("%w: semester ID is required", apperrors.ErrSemesterValidation)
	}

	if err := s.semesterRepo.Update(ctx, semester); err != nil {
		return err
	}
	s.session.Invalidate()
	return nil
}

// DeleteSemester deletes a semester; the database cascades the delete to
// its courses and user events.
func (s *SemesterService) DeleteSemester(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: semester ID is required", apperrors.ErrSemesterValidation)
	}

	if err := s.semesterRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Deleting the selected semester falls back to the default selection.
	if sel := s.session.SelectedSemesterID(); sel != nil && *sel == id {
		s.session.SelectSemester(nil)
	} else {
		s.session.Invalidate()
	}
	return nil
}

// SelectSemester records the active semester in the shared session.
// An empty id resets to the default selection.
func (s *SemesterService) SelectSemester(ctx context.Context, id string) error {
	if id == "" {
		s.session.SelectSemester(nil)
		return nil
	}
	if id != session.AllSemestersID {
		if _, err := s.semesterRepo.GetByID(ctx, id); err != nil {
			return err
		}
	}
	s.session.SelectSemester(&id)
	return nil
}
