package siakad

import (
	"context"
	"testing"
)

func TestMockLogin(t *testing.T) {
	m := NewMockClient()
	ctx := context.Background()

	resp, err := m.Login(ctx, "1512620001", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !resp.Success || resp.Token == nil {
		t.Errorf("expected successful login with token, got %+v", resp)
	}

	for _, tc := range []struct{ nim, password string }{
		{"", "secret123"},
		{"1512620001", "short"},
	} {
		resp, err := m.Login(ctx, tc.nim, tc.password)
		if err != nil {
			t.Fatalf("Login(%q, %q): %v", tc.nim, tc.password, err)
		}
		if resp.Success {
			t.Errorf("Login(%q, %q): expected failure", tc.nim, tc.password)
		}
	}
}

func TestMockFetchSchedule(t *testing.T) {
	m := NewMockClient()

	sched, err := m.FetchSchedule(context.Background(), "mock_token_123")
	if err != nil {
		t.Fatalf("FetchSchedule: %v", err)
	}
	if len(sched.Courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(sched.Courses))
	}
	for _, c := range sched.Courses {
		if c.DayOfWeek < 1 || c.DayOfWeek > 7 {
			t.Errorf("course %s: dayOfWeek %d out of range", c.ID, c.DayOfWeek)
		}
	}
	if sched.StartDate != "2024-09-01" || sched.EndDate != "2025-01-31" {
		t.Errorf("unexpected semester window %s..%s", sched.StartDate, sched.EndDate)
	}
}
