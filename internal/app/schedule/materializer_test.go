package schedule

import (
	"testing"
	"time"

	"github.com/fakhrin/unicampus/internal/app/models"
)

// January 2024: Jan 1 is a Monday, which makes occurrence counts easy to
// verify by hand.
func jan2024() models.Semester {
	return models.Semester{
		ID:        "sem-1",
		Name:      "Test Semester",
		StartDate: models.NewDate(2024, time.January, 1),
		EndDate:   models.NewDate(2024, time.January, 31),
	}
}

func mondayCourse(freq int) models.Course {
	return models.Course{
		ID:             "course-1",
		SemesterID:     "sem-1",
		UserCourseID:   "IS101",
		Name:           "Sistem Informasi",
		Teacher:        "Dr. Muhammad",
		Room:           "L.201",
		DaysOfWeek:     []time.Weekday{time.Monday},
		FrequencyWeeks: freq,
		StartTime:      models.TimeOfDay{Hour: 8},
		EndTime:        models.TimeOfDay{Hour: 10, Minute: 30},
		Color:          0xFF64B5F6,
	}
}

func strptr(s string) *string { return &s }

func TestMaterializeWeeklyCourse(t *testing.T) {
	events := Materialize(jan2024(), []models.Course{mondayCourse(1)}, nil)

	if len(events) != 5 {
		t.Fatalf("expected 5 occurrences, got %d", len(events))
	}
	wantDays := []int{1, 8, 15, 22, 29}
	for i, ev := range events {
		if got := ev.Start.Day(); got != wantDays[i] {
			t.Errorf("occurrence %d: expected Jan %d, got Jan %d", i, wantDays[i], got)
		}
		if ev.Type != models.EventTypeCourse {
			t.Errorf("occurrence %d: expected type COURSE, got %s", i, ev.Type)
		}
		if ev.Title != "IS101: Sistem Informasi" {
			t.Errorf("occurrence %d: unexpected title %q", i, ev.Title)
		}
	}
}

func TestMaterializeBiWeeklyCourse(t *testing.T) {
	events := Materialize(jan2024(), []models.Course{mondayCourse(2)}, nil)

	if len(events) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(events))
	}
	wantDays := []int{1, 15, 29}
	for i, ev := range events {
		if got := ev.Start.Day(); got != wantDays[i] {
			t.Errorf("occurrence %d: expected Jan %d, got Jan %d", i, wantDays[i], got)
		}
	}
}

// Week zero is counted from the semester start date, not from the course's
// first matching weekday. A semester starting mid-week still fires a
// bi-weekly Monday course in its weeks 0, 2, 4.
func TestMaterializeWeekZeroAnchoredAtSemesterStart(t *testing.T) {
	sem := models.Semester{
		ID:        "sem-2",
		Name:      "Mid-week start",
		StartDate: models.NewDate(2024, time.January, 3), // a Wednesday
		EndDate:   models.NewDate(2024, time.January, 31),
	}
	events := Materialize(sem, []models.Course{mondayCourse(2)}, nil)

	// Jan 8 falls in week 0 (days 0-6 = Jan 3-9), Jan 15 in week 1
	// (skipped), Jan 22 in week 2, Jan 29 in week 3 (skipped).
	wantDays := []int{8, 22}
	if len(events) != len(wantDays) {
		t.Fatalf("expected %d occurrences, got %d", len(wantDays), len(events))
	}
	for i, ev := range events {
		if got := ev.Start.Day(); got != wantDays[i] {
			t.Errorf("occurrence %d: expected Jan %d, got Jan %d", i, wantDays[i], got)
		}
	}
}

func TestMaterializeInvalidFrequencyClampedToOne(t *testing.T) {
	for _, freq := range []int{0, -3} {
		events := Materialize(jan2024(), []models.Course{mondayCourse(freq)}, nil)
		if len(events) != 5 {
			t.Errorf("freq %d: expected 5 occurrences (clamped to weekly), got %d", freq, len(events))
		}
	}
}

func TestMaterializeEmptyDaySetYieldsNothing(t *testing.T) {
	course := mondayCourse(1)
	course.DaysOfWeek = nil
	events := Materialize(jan2024(), []models.Course{course}, nil)
	if len(events) != 0 {
		t.Fatalf("expected no occurrences, got %d", len(events))
	}
}

func TestMaterializeDropsEventsOutsideWindow(t *testing.T) {
	userEvents := []models.UserEvent{
		{
			ID:         "ev-in",
			SemesterID: "sem-1",
			Title:      "Inside",
			Type:       models.EventTypeCustom,
			Date:       models.NewDate(2024, time.January, 10),
		},
		{
			ID:         "ev-out",
			SemesterID: "sem-1",
			Title:      "Outside",
			Type:       models.EventTypeCustom,
			Date:       models.NewDate(2024, time.February, 2),
		},
	}
	events := Materialize(jan2024(), nil, userEvents)

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].UserEventID == nil || *events[0].UserEventID != "ev-in" {
		t.Errorf("expected ev-in to survive, got %+v", events[0])
	}
}

func TestMaterializeAllDayDefaults(t *testing.T) {
	userEvents := []models.UserEvent{{
		ID:         "ev-1",
		SemesterID: "sem-1",
		Title:      "Deadline",
		Type:       models.EventTypeCustom,
		Date:       models.NewDate(2024, time.January, 5),
	}}
	events := Materialize(jan2024(), nil, userEvents)

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.Start.Hour() != 0 || ev.Start.Minute() != 0 {
		t.Errorf("expected start 00:00, got %02d:%02d", ev.Start.Hour(), ev.Start.Minute())
	}
	if ev.End.Hour() != 23 || ev.End.Minute() != 59 {
		t.Errorf("expected end 23:59, got %02d:%02d", ev.End.Hour(), ev.End.Minute())
	}
}

func TestMaterializeColorResolution(t *testing.T) {
	course := mondayCourse(1)
	explicit := models.Color(0xFF123456)

	userEvents := []models.UserEvent{
		{
			ID: "explicit", SemesterID: "sem-1", Title: "a",
			Type: models.EventTypeCustom, Date: models.NewDate(2024, time.January, 2),
			Color: &explicit,
		},
		{
			ID: "inherited", SemesterID: "sem-1", Title: "b",
			Type: models.EventTypeHomework, Date: models.NewDate(2024, time.January, 3),
			CourseID: strptr("course-1"),
		},
		{
			ID: "homework", SemesterID: "sem-1", Title: "c",
			Type: models.EventTypeHomework, Date: models.NewDate(2024, time.January, 4),
		},
		{
			ID: "exam", SemesterID: "sem-1", Title: "d",
			Type: models.EventTypeExam, Date: models.NewDate(2024, time.January, 4),
		},
		{
			ID: "custom", SemesterID: "sem-1", Title: "e",
			Type: models.EventTypeCustom, Date: models.NewDate(2024, time.January, 4),
		},
	}

	events := Materialize(jan2024(), []models.Course{course}, userEvents)
	byID := map[string]models.CalendarEvent{}
	for _, ev := range events {
		if ev.UserEventID != nil {
			byID[*ev.UserEventID] = ev
		}
	}

	if got := byID["explicit"].Color; got != explicit {
		t.Errorf("explicit color: got %s", got.Hex())
	}
	if got := byID["inherited"].Color; got != course.Color {
		t.Errorf("inherited color: got %s, want course color %s", got.Hex(), course.Color.Hex())
	}
	if got := byID["homework"].Color; got != ColorHomework {
		t.Errorf("homework fallback: got %s", got.Hex())
	}
	if got := byID["exam"].Color; got != ColorExam {
		t.Errorf("exam fallback: got %s", got.Hex())
	}
	if got := byID["custom"].Color; got != ColorCustom {
		t.Errorf("custom fallback: got %s", got.Hex())
	}
}

func TestMaterializeHomeworkTitleMarker(t *testing.T) {
	userEvents := []models.UserEvent{{
		ID: "hw", SemesterID: "sem-1", Title: "Lab Report",
		Type: models.EventTypeHomework, Date: models.NewDate(2024, time.January, 10),
	}}
	events := Materialize(jan2024(), nil, userEvents)

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Title != homeworkMarker+"Lab Report" {
		t.Errorf("expected homework marker prefix, got %q", events[0].Title)
	}
}

func TestMaterializeSortedByStart(t *testing.T) {
	tod := func(h int) *models.TimeOfDay { return &models.TimeOfDay{Hour: h} }
	userEvents := []models.UserEvent{
		{ID: "late", SemesterID: "sem-1", Title: "late", Type: models.EventTypeCustom,
			Date: models.NewDate(2024, time.January, 20), StartTime: tod(18), EndTime: tod(19)},
		{ID: "early", SemesterID: "sem-1", Title: "early", Type: models.EventTypeCustom,
			Date: models.NewDate(2024, time.January, 2), StartTime: tod(7), EndTime: tod(8)},
	}
	events := Materialize(jan2024(), []models.Course{mondayCourse(1)}, userEvents)

	for i := 1; i < len(events); i++ {
		if events[i].Start.Before(events[i-1].Start) {
			t.Fatalf("output not sorted at index %d: %v after %v", i, events[i].Start, events[i-1].Start)
		}
	}
}

// Equal start instants keep insertion order: course occurrences before user
// events.
func TestMaterializeStableTieOrder(t *testing.T) {
	tod := func(h int) *models.TimeOfDay { return &models.TimeOfDay{Hour: h} }
	userEvents := []models.UserEvent{{
		ID: "tie", SemesterID: "sem-1", Title: "same start", Type: models.EventTypeCustom,
		Date: models.NewDate(2024, time.January, 1), StartTime: tod(8), EndTime: tod(9),
	}}
	events := Materialize(jan2024(), []models.Course{mondayCourse(1)}, userEvents)

	if len(events) < 2 {
		t.Fatalf("expected at least 2 events, got %d", len(events))
	}
	if events[0].Type != models.EventTypeCourse {
		t.Errorf("expected course occurrence first on tie, got %s", events[0].Type)
	}
	if events[1].UserEventID == nil || *events[1].UserEventID != "tie" {
		t.Errorf("expected user event second on tie")
	}
}

func TestMaterializeIdempotent(t *testing.T) {
	sem := jan2024()
	courses := []models.Course{mondayCourse(2)}
	userEvents := []models.UserEvent{{
		ID: "ev", SemesterID: "sem-1", Title: "x", Type: models.EventTypeExam,
		Date: models.NewDate(2024, time.January, 9),
	}}

	first := Materialize(sem, courses, userEvents)
	second := Materialize(sem, courses, userEvents)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.Title != b.Title || !a.Start.Equal(b.Start) || !a.End.Equal(b.End) ||
			a.Color != b.Color || a.Type != b.Type {
			t.Errorf("index %d differs between runs: %+v vs %+v", i, a, b)
		}
	}
}
