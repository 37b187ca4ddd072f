package dto

// SiakadLoginRequest represents SIAKAD credentials
type SiakadLoginRequest struct {
	NIM      string `json:"nim" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SiakadLoginResponse represents a successful SIAKAD login
type SiakadLoginResponse struct {
	NIM         string `json:"nim"`
	Name        string `json:"name"`
	Token       string `json:"token"`
	SiakadToken string `json:"siakadToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

// SiakadSyncRequest carries the SIAKAD token for a sync run
type SiakadSyncRequest struct {
	SiakadToken string `json:"siakadToken" binding:"required"`
}

// SiakadSyncResponse summarizes one completed synchronization
type SiakadSyncResponse struct {
	SemesterID   string `json:"semesterId"`
	SemesterName string `json:"semesterName"`
	CourseCount  int    `json:"courseCount"`
}
