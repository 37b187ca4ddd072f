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

// CourseRepository handles database operations for courses.
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseColumns = `id, semester_id, user_course_id, name, teacher, room,
	days_of_week, frequency_weeks, start_time, end_time, color, is_manually_edited`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	var days, start, end string
	var color int64
	if err := row.Scan(&c.ID, &c.SemesterID, &c.UserCourseID, &c.Name, &c.Teacher, &c.Room,
		&days, &c.FrequencyWeeks, &start, &end, &color, &c.IsManuallyEdited); err != nil {
		return nil, err
	}

	var err error
	if c.DaysOfWeek, err = models.ParseWeekdays(days); err != nil {
		return nil, fmt.Errorf("corrupt course day set: %w", err)
	}
	if c.StartTime, err = models.ParseTimeOfDay(start); err != nil {
		return nil, fmt.Errorf("corrupt course start time: %w", err)
	}
	if c.EndTime, err = models.ParseTimeOfDay(end); err != nil {
		return nil, fmt.Errorf("corrupt course end time: %w", err)
	}
	c.Color = models.Color(uint32(color))
	return &c, nil
}

func courseArgs(c *models.Course) []interface{} {
	return []interface{}{
		c.ID, c.SemesterID, c.UserCourseID, c.Name, c.Teacher, c.Room,
		models.FormatWeekdays(c.DaysOfWeek), c.FrequencyWeeks,
		c.StartTime.String(), c.EndTime.String(), int64(c.Color), c.IsManuallyEdited,
	}
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (` + courseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	if _, err := r.db.Exec(ctx, query, courseArgs(course)...); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// Upsert inserts a course or replaces its fields, used by SIAKAD sync.
func (r *CourseRepository) Upsert(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (` + courseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			semester_id = EXCLUDED.semester_id,
			user_course_id = EXCLUDED.user_course_id,
			name = EXCLUDED.name,
			teacher = EXCLUDED.teacher,
			room = EXCLUDED.room,
			days_of_week = EXCLUDED.days_of_week,
			frequency_weeks = EXCLUDED.frequency_weeks,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			color = EXCLUDED.color,
			is_manually_edited = EXCLUDED.is_manually_edited
	`
	if _, err := r.db.Exec(ctx, query, courseArgs(course)...); err != nil {
		return fmt.Errorf("error upserting course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetBySemesterID retrieves all courses of a semester.
func (r *CourseRepository) GetBySemesterID(ctx context.Context, semesterID string) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE semester_id = $1 ORDER BY user_course_id`
	return r.queryCourses(ctx, query, semesterID)
}

// GetAll retrieves all courses across all semesters.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY semester_id, user_course_id`
	return r.queryCourses(ctx, query)
}

// Update updates an existing course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses SET
			semester_id = $2,
			user_course_id = $3,
			name = $4,
			teacher = $5,
			room = $6,
			days_of_week = $7,
			frequency_weeks = $8,
			start_time = $9,
			end_time = $10,
			color = $11,
			is_manually_edited = $12
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, courseArgs(course)...)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete deletes a course. User events linked to it keep existing with
// their course reference set to NULL by the FK action.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
