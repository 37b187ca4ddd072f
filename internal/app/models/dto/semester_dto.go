package dto

import "github.com/fakhrin/unicampus/internal/app/models"

// SemesterResponse represents semester information
type SemesterResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CreateSemesterRequest represents semester creation data
type CreateSemesterRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// UpdateSemesterRequest represents semester update data
type UpdateSemesterRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// SelectSemesterRequest selects the active semester for the session
type SelectSemesterRequest struct {
	SemesterID *string `json:"semesterId"`
}

// SemesterListResponse represents a list of semesters
type SemesterListResponse struct {
	Semesters []SemesterResponse `json:"semesters"`
}

// ToSemesterResponse maps a semester to its response shape
func ToSemesterResponse(s *models.Semester) SemesterResponse {
	return SemesterResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartDate: s.StartDate.String(),
		EndDate:   s.EndDate.String(),
	}
}

// ToSemesterListResponse maps a semester slice to its response shape
func ToSemesterListResponse(semesters []*models.Semester) SemesterListResponse {
	out := SemesterListResponse{Semesters: make([]SemesterResponse, 0, len(semesters))}
	for _, s := range semesters {
		out.Semesters = append(out.Semesters, ToSemesterResponse(s))
	}
	return out
}
