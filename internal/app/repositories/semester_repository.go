package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/pkg/apperrors"
)

// SemesterRepository handles database operations for semesters.
type SemesterRepository struct {
	db *pgxpool.Pool
}

// NewSemesterRepository creates a new semester repository.
func NewSemesterRepository(db *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{
		db: db,
	}
}

func scanSemester(row pgx.Row) (*models.Semester, error) {
	var s models.Semester
	var start, end string
	if err := row.Scan(&s.ID, &s.Name, &start, &end); err != nil {
		return nil, err
	}

	var err error
	if s.StartDate, err = models.ParseDate(start); err != nil {
		return nil, fmt.Errorf("corrupt semester start date: %w", err)
	}
	if s.EndDate, err = models.ParseDate(end); err != nil {
		return nil, fmt.Errorf("corrupt semester end date: %w", err)
	}
	return &s, nil
}

// Create inserts a new semester.
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	query := `
		INSERT INTO semesters (id, name, start_date, end_date)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query,
		semester.ID, semester.Name, semester.StartDate.String(), semester.EndDate.String())
	if err != nil {
		return fmt.Errorf("error creating semester: %w", err)
	}
	return nil
}

// Upsert inserts a semester or updates it in place, used by SIAKAD sync.
func (r *SemesterRepository) Upsert(ctx context.Context, semester *models.Semester) error {
	query := `
		INSERT INTO semesters (id, name, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date
	`
	_, err := r.db.Exec(ctx, query,
		semester.ID, semester.Name, semester.StartDate.String(), semester.EndDate.String())
	if err != nil {
		return fmt.Errorf("error upserting semester: %w", err)
	}
	return nil
}

// GetByID retrieves a semester by ID.
func (r *SemesterRepository) GetByID(ctx context.Context, id string) (*models.Semester, error) {
	query := `
		SELECT id, name, start_date, end_date
		FROM semesters
		WHERE id = $1
	`
	semester, err := scanSemester(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, fmt.Errorf("error retrieving semester: %w", err)
	}
	return semester, nil
}

// GetAll retrieves all semesters ordered by start date.
func (r *SemesterRepository) GetAll(ctx context.Context) ([]*models.Semester, error) {
	query := `
		SELECT id, name, start_date, end_date
		FROM semesters
		ORDER BY start_date
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var semesters []*models.Semester
	for rows.Next() {
		s, err := scanSemester(rows)
		if err != nil {
			return nil, err
		}
		semesters = append(semesters, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return semesters, nil
}

// Update updates an existing semester.
func (r *SemesterRepository) Update(ctx context.Context, semester *models.Semester) error {
	query := `
		UPDATE semesters
		SET name = $1, start_date = $2, end_date = $3
		WHERE id = $4
	`
	cmdTag, err := r.db.Exec(ctx, query,
		semester.Name, semester.StartDate.String(), semester.EndDate.String(), semester.ID)
	if err != nil {
		return fmt.Errorf("error updating semester: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSemesterNotFound
	}
	return nil
}

// Delete deletes a semester. Courses and user events owned by it are
// removed by the ON DELETE CASCADE constraints.
func (r *SemesterRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM semesters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting semester: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSemesterNotFound
	}
	return nil
}
