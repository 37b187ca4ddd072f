package models

// Semester defines the active date window for schedule materialization.
// StartDate and EndDate are both inclusive; StartDate <= EndDate.
type Semester struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate Date   `json:"startDate"`
	EndDate   Date   `json:"endDate"`
}

// ContainsDate reports whether d falls within the semester window,
// inclusive of both ends.
func (s *Semester) ContainsDate(d Date) bool {
	return !d.Before(s.StartDate) && !d.After(s.EndDate)
}

// TotalDays returns the number of days in the window, counting both ends.
func (s *Semester) TotalDays() int {
	return s.StartDate.DaysUntil(s.EndDate) + 1
}
