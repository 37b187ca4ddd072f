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

// UserEventRepository handles database operations for one-off user events.
type UserEventRepository struct {
	db *pgxpool.Pool
}

// NewUserEventRepository creates a new user event repository.
func NewUserEventRepository(db *pgxpool.Pool) *UserEventRepository {
	return &UserEventRepository{
		db: db,
	}
}

const userEventColumns = `id, semester_id, course_id, title, description, type,
	event_date, start_time, end_time, is_completed, color`

func scanUserEvent(row pgx.Row) (*models.UserEvent, error) {
	var ev models.UserEvent
	var typ, date string
	var start, end *string
	var color *int64
	if err := row.Scan(&ev.ID, &ev.SemesterID, &ev.CourseID, &ev.Title, &ev.Description,
		&typ, &date, &start, &end, &ev.IsCompleted, &color); err != nil {
		return nil, err
	}

	ev.Type = models.EventType(typ)
	var err error
	if ev.Date, err = models.ParseDate(date); err != nil {
		return nil, fmt.Errorf("corrupt event date: %w", err)
	}
	if start != nil {
		tod, err := models.ParseTimeOfDay(*start)
		if err != nil {
			return nil, fmt.Errorf("corrupt event start time: %w", err)
		}
		ev.StartTime = &tod
	}
	if end != nil {
		tod, err := models.ParseTimeOfDay(*end)
		if err != nil {
			return nil, fmt.Errorf("corrupt event end time: %w", err)
		}
		ev.EndTime = &tod
	}
	if color != nil {
		c := models.Color(uint32(*color))
		ev.Color = &c
	}
	return &ev, nil
}

func userEventArgs(ev *models.UserEvent) []interface{} {
	var start, end *string
	if ev.StartTime != nil {
		s := ev.StartTime.String()
		start = &s
	}
	if ev.EndTime != nil {
		s := ev.EndTime.String()
		end = &s
	}
	var color *int64
	if ev.Color != nil {
		c := int64(*ev.Color)
		color = &c
	}
	return []interface{}{
		ev.ID, ev.SemesterID, ev.CourseID, ev.Title, ev.Description,
		string(ev.Type), ev.Date.String(), start, end, ev.IsCompleted, color,
	}
}

// Create inserts a new user event.
func (r *UserEventRepository) Create(ctx context.Context, ev *models.UserEvent) error {
	query := `
		INSERT INTO user_events (` + userEventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	if _, err := r.db.Exec(ctx, query, userEventArgs(ev)...); err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// GetByID retrieves a user event by ID.
func (r *UserEventRepository) GetByID(ctx context.Context, id string) (*models.UserEvent, error) {
	query := `SELECT ` + userEventColumns + ` FROM user_events WHERE id = $1`
	ev, err := scanUserEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	return ev, nil
}

// GetBySemesterID retrieves all user events of a semester.
func (r *UserEventRepository) GetBySemesterID(ctx context.Context, semesterID string) ([]*models.UserEvent, error) {
	query := `SELECT ` + userEventColumns + ` FROM user_events WHERE semester_id = $1 ORDER BY event_date`
	rows, err := r.db.Query(ctx, query, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.UserEvent
	for rows.Next() {
		ev, err := scanUserEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// Update updates an existing user event.
func (r *UserEventRepository) Update(ctx context.Context, ev *models.UserEvent) error {
	query := `
		UPDATE user_events SET
			semester_id = $2,
			course_id = $3,
			title = $4,
			description = $5,
			type = $6,
			event_date = $7,
			start_time = $8,
			end_time = $9,
			is_completed = $10,
			color = $11
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, userEventArgs(ev)...)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserEventNotFound
	}
	return nil
}

// UpdateCompletion toggles the completion flag of a homework event.
func (r *UserEventRepository) UpdateCompletion(ctx context.Context, id string, isCompleted bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE user_events SET is_completed = $2 WHERE id = $1`, id, isCompleted)
	if err != nil {
		return fmt.Errorf("error updating event completion: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserEventNotFound
	}
	return nil
}

// Delete deletes a user event.
func (r *UserEventRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM user_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserEventNotFound
	}
	return nil
}
