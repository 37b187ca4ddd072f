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

// DirectoryRepository handles the static university directory: campuses,
// buildings, rooms, faculties, study programs, lecturers and news. The data
// is seeded at startup and read-only afterwards.
type DirectoryRepository struct {
	db *pgxpool.Pool
}

// NewDirectoryRepository creates a new directory repository.
func NewDirectoryRepository(db *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{
		db: db,
	}
}

// GetCampuses returns all campuses.
func (r *DirectoryRepository) GetCampuses(ctx context.Context) ([]*models.Campus, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, address, latitude, longitude, description FROM campuses ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Campus
	for rows.Next() {
		var c models.Campus
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Latitude, &c.Longitude, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// GetBuildingsByCampus returns the buildings of one campus.
func (r *DirectoryRepository) GetBuildingsByCampus(ctx context.Context, campusID string) ([]*models.Building, error) {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM campuses WHERE id = $1)`, campusID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("error checking campus existence: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCampusNotFound
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, campus_id, name, latitude, longitude, description
		 FROM buildings WHERE campus_id = $1 ORDER BY name`, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Building
	for rows.Next() {
		var b models.Building
		if err := rows.Scan(&b.ID, &b.CampusID, &b.Name, &b.Latitude, &b.Longitude, &b.Description); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

// GetRoomsByBuilding returns the rooms of one building.
func (r *DirectoryRepository) GetRoomsByBuilding(ctx context.Context, buildingID string) ([]*models.Room, error) {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM buildings WHERE id = $1)`, buildingID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("error checking building existence: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrBuildingNotFound
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, building_id, name, floor, type FROM rooms WHERE building_id = $1 ORDER BY name`, buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Room
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.ID, &room.BuildingID, &room.Name, &room.Floor, &room.Type); err != nil {
			return nil, err
		}
		out = append(out, &room)
	}
	return out, rows.Err()
}

// GetFaculties returns all faculties.
func (r *DirectoryRepository) GetFaculties(ctx context.Context) ([]*models.Faculty, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, website FROM faculties ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Faculty
	for rows.Next() {
		var f models.Faculty
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Website); err != nil {
			return nil, err
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

// GetFacultyByID retrieves one faculty.
func (r *DirectoryRepository) GetFacultyByID(ctx context.Context, id string) (*models.Faculty, error) {
	var f models.Faculty
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, website FROM faculties WHERE id = $1`, id).
		Scan(&f.ID, &f.Name, &f.Description, &f.Website)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return &f, nil
}

// GetProgramsByFaculty returns the study programs of one faculty.
func (r *DirectoryRepository) GetProgramsByFaculty(ctx context.Context, facultyID string) ([]*models.StudyProgram, error) {
	if _, err := r.GetFacultyByID(ctx, facultyID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, faculty_id, name, accreditation
		 FROM study_programs WHERE faculty_id = $1 ORDER BY name`, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.StudyProgram
	for rows.Next() {
		var p models.StudyProgram
		if err := rows.Scan(&p.ID, &p.FacultyID, &p.Name, &p.Accreditation); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// GetLecturersByProgram returns the lecturers of one study program.
func (r *DirectoryRepository) GetLecturersByProgram(ctx context.Context, programID string) ([]*models.Lecturer, error) {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM study_programs WHERE id = $1)`, programID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("error checking program existence: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrProgramNotFound
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, program_id, name, nip, email, expertise
		 FROM lecturers WHERE program_id = $1 ORDER BY name`, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Lecturer
	for rows.Next() {
		var l models.Lecturer
		if err := rows.Scan(&l.ID, &l.ProgramID, &l.Name, &l.NIP, &l.Email, &l.Expertise); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// GetNews returns news items, most recent first.
func (r *DirectoryRepository) GetNews(ctx context.Context) ([]*models.NewsItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, news_date, url, category, summary FROM news ORDER BY news_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.NewsItem
	for rows.Next() {
		var n models.NewsItem
		if err := rows.Scan(&n.ID, &n.Title, &n.Date, &n.URL, &n.Category, &n.Summary); err != nil {
			return nil, err
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}

// InsertCampus inserts a campus if absent, used by seeding.
func (r *DirectoryRepository) InsertCampus(ctx context.Context, c *models.Campus) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO campuses (id, name, address, latitude, longitude, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		c.ID, c.Name, c.Address, c.Latitude, c.Longitude, c.Description)
	return err
}

// InsertBuilding inserts a building if absent, used by seeding.
func (r *DirectoryRepository) InsertBuilding(ctx context.Context, b *models.Building) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO buildings (id, campus_id, name, latitude, longitude, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		b.ID, b.CampusID, b.Name, b.Latitude, b.Longitude, b.Description)
	return err
}

// InsertRoom inserts a room if absent, used by seeding.
func (r *DirectoryRepository) InsertRoom(ctx context.Context, room *models.Room) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rooms (id, building_id, name, floor, type)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`,
		room.ID, room.BuildingID, room.Name, room.Floor, room.Type)
	return err
}

// InsertFaculty inserts a faculty if absent, used by seeding.
func (r *DirectoryRepository) InsertFaculty(ctx context.Context, f *models.Faculty) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO faculties (id, name, description, website)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`,
		f.ID, f.Name, f.Description, f.Website)
	return err
}

// InsertProgram inserts a study program if absent, used by seeding.
func (r *DirectoryRepository) InsertProgram(ctx context.Context, p *models.StudyProgram) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO study_programs (id, faculty_id, name, accreditation)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`,
		p.ID, p.FacultyID, p.Name, p.Accreditation)
	return err
}

// InsertLecturer inserts a lecturer if absent, used by seeding.
func (r *DirectoryRepository) InsertLecturer(ctx context.Context, l *models.Lecturer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO lecturers (id, program_id, name, nip, email, expertise)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		l.ID, l.ProgramID, l.Name, l.NIP, l.Email, l.Expertise)
	return err
}

// InsertNews inserts a news item if absent, used by seeding.
func (r *DirectoryRepository) InsertNews(ctx context.Context, n *models.NewsItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO news (id, title, news_date, url, category, summary)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		n.ID, n.Title, n.Date, n.URL, n.Category, n.Summary)
	return err
}
