package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances.
type Repositories struct {
	SemesterRepository  *SemesterRepository
	CourseRepository    *CourseRepository
	UserEventRepository *UserEventRepository
	DirectoryRepository *DirectoryRepository
}

// NewRepositories initializes all repositories.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SemesterRepository:  NewSemesterRepository(db),
		CourseRepository:    NewCourseRepository(db),
		UserEventRepository: NewUserEventRepository(db),
		DirectoryRepository: NewDirectoryRepository(db),
	}
}
