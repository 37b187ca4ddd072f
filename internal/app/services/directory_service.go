package services

import (
	"context"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/repositories"
)

// DirectoryService serves the static university directory: campuses,
// buildings, rooms, faculties, study programs, lecturers and news.
type DirectoryService struct {
	directoryRepo *repositories.DirectoryRepository
}

// NewDirectoryService creates a new directory service instance.
func NewDirectoryService(directoryRepo *repositories.DirectoryRepository) *DirectoryService {
	return &DirectoryService{directoryRepo: directoryRepo}
}

func (s *DirectoryService) GetCampuses(ctx context.Context) ([]*models.Campus, error) {
	return s.directoryRepo.GetCampuses(ctx)
}

func (s *DirectoryService) GetBuildingsByCampus(ctx context.Context, campusID string) ([]*models.Building, error) {
	return s.directoryRepo.GetBuildingsByCampus(ctx, campusID)
}

func (s *DirectoryService) GetRoomsByBuilding(ctx context.Context, buildingID string) ([]*models.Room, error) {
	return s.directoryRepo.GetRoomsByBuilding(ctx, buildingID)
}

func (s *DirectoryService) GetFaculties(ctx context.Context) ([]*models.Faculty, error) {
	return s.directoryRepo.GetFaculties(ctx)
}

func (s *DirectoryService) GetFacultyByID(ctx context.Context, id string) (*models.Faculty, error) {
	return s.directoryRepo.GetFacultyByID(ctx, id)
}

func (s *DirectoryService) GetProgramsByFaculty(ctx context.Context, facultyID string) ([]*models.StudyProgram, error) {
	return s.directoryRepo.GetProgramsByFaculty(ctx, facultyID)
}

func (s *DirectoryService) GetLecturersByProgram(ctx context.Context, programID string) ([]*models.Lecturer, error) {
	return s.directoryRepo.GetLecturersByProgram(ctx, programID)
}

func (s *DirectoryService) GetNews(ctx context.Context) ([]*models.NewsItem, error) {
	return s.directoryRepo.GetNews(ctx)
}
