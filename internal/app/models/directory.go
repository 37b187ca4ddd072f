package models

// Static university directory entities. These are read-only reference data
// seeded at startup and browsed by the directory endpoints.

// Campus is a physical university campus.
type Campus struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// Building belongs to a campus.
type Building struct {
	ID          string   `json:"id"`
	CampusID    string   `json:"campusId"`
	Name        string   `json:"name"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// Room belongs to a building.
type Room struct {
	ID         string  `json:"id"`
	BuildingID string  `json:"buildingId"`
	Name       string  `json:"name"`
	Floor      *string `json:"floor,omitempty"`
	Type       *string `json:"type,omitempty"` // e.g. "Laboratorium", "Kelas", "Aula"
}

// Faculty is an academic faculty.
type Faculty struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
}

// StudyProgram belongs to a faculty.
type StudyProgram struct {
	ID            string  `json:"id"`
	FacultyID     string  `json:"facultyId"`
	Name          string  `json:"name"`
	Accreditation *string `json:"accreditation,omitempty"`
}

// Lecturer belongs to a study program.
type Lecturer struct {
	ID        string  `json:"id"`
	ProgramID string  `json:"programId"`
	Name      string  `json:"name"`
	NIP       *string `json:"nip,omitempty"`
	Email     *string `json:"email,omitempty"`
	Expertise *string `json:"expertise,omitempty"`
}

// NewsItem is a university news entry shown on the home feed.
type NewsItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Date     string  `json:"date"`
	URL      string  `json:"url"`
	Category string  `json:"category"`
	Summary  *string `json:"summary,omitempty"`
}
