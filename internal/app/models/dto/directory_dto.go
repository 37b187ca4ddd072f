package dto

import "github.com/fakhrin/unicampus/internal/app/models"

// The directory entities serialize directly; the list wrappers below keep
// the response envelope consistent with the rest of the API.

// CampusListResponse represents a list of campuses
type CampusListResponse struct {
	Campuses []*models.Campus `json:"campuses"`
}

// BuildingListResponse represents the buildings of a campus
type BuildingListResponse struct {
	Buildings []*models.Building `json:"buildings"`
}

// RoomListResponse represents the rooms of a building
type RoomListResponse struct {
	Rooms []*models.Room `json:"rooms"`
}

// FacultyListResponse represents a list of faculties
type FacultyListResponse struct {
	Faculties []*models.Faculty `json:"faculties"`
}

// ProgramListResponse represents the study programs of a faculty
type ProgramListResponse struct {
	Programs []*models.StudyProgram `json:"programs"`
}

// LecturerListResponse represents the lecturers of a study program
type LecturerListResponse struct {
	Lecturers []*models.Lecturer `json:"lecturers"`
}

// NewsListResponse represents the news feed
type NewsListResponse struct {
	News []*models.NewsItem `json:"news"`
}
