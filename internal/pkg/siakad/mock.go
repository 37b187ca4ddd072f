package siakad

import "context"

// MockClient simulates SIAKAD until the real endpoints are wired in. Any
// non-blank NIM with a password of at least six characters logs in; the
// schedule is a fixed two-course semester.
type MockClient struct{}

// NewMockClient creates the development stand-in client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func strp(s string) *string { return &s }

// Login accepts any plausible credential pair.
func (m *MockClient) Login(_ context.Context, nim, password string) (*LoginResponse, error) {
	if nim == "" || len(password) < 6 {
		return &LoginResponse{Success: false, Message: strp("Invalid Credentials")}, nil
	}
	return &LoginResponse{
		Success: true,
		Token:   strp("mock_token_123"),
		Message: strp("Login Success"),
		NIM:     strp(nim),
		Name:    strp("User Name"),
	}, nil
}

// FetchSchedule returns a fixed semester with two courses.
func (m *MockClient) FetchSchedule(_ context.Context, _ string) (*ScheduleResponse, error) {
	return &ScheduleResponse{
		SemesterName: "Semester 121 (2024/2025)",
		StartDate:    "2024-09-01",
		EndDate:      "2025-01-31",
		Courses: []RemoteCourse{
			{ID: "c1", Code: "IS101", Name: "Sistem Informasi", Lecturer: "Dr. Muhammad",
				Room: "L.201", DayOfWeek: 1, StartTime: "08:00", EndTime: "10:30"},
			{ID: "c2", Code: "TI202", Name: "Pemrograman Mobile", Lecturer: "Prof. Siti",
				Room: "L.305", DayOfWeek: 3, StartTime: "13:00", EndTime: "15:30"},
		},
	}, nil
}
