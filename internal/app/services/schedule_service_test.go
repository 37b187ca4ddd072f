package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/session"
	"github.com/fakhrin/unicampus/internal/pkg/apperrors"
)

type fakeSemesters struct {
	semesters []*models.Semester
	getCalls  int
}

func (f *fakeSemesters) GetByID(_ context.Context, id string) (*models.Semester, error) {
	for _, s := range f.semesters {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrSemesterNotFound
}

func (f *fakeSemesters) GetAll(_ context.Context) ([]*models.Semester, error) {
	return f.semesters, nil
}

type fakeCourses struct {
	courses []*models.Course
	calls   int
}

func (f *fakeCourses) GetBySemesterID(_ context.Context, semesterID string) ([]*models.Course, error) {
	f.calls++
	var out []*models.Course
	for _, c := range f.courses {
		if c.SemesterID == semesterID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeEvents struct {
	events []*models.UserEvent
}

func (f *fakeEvents) GetBySemesterID(_ context.Context, semesterID string) ([]*models.UserEvent, error) {
	var out []*models.UserEvent
	for _, ev := range f.events {
		if ev.SemesterID == semesterID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func testScheduleFixture() (*ScheduleService, *fakeSemesters, *fakeCourses, *session.Session) {
	semesters := &fakeSemesters{semesters: []*models.Semester{
		{
			ID:        "sem1",
			Name:      "Semester 121",
			StartDate: models.NewDate(2024, time.January, 1),
			EndDate:   models.NewDate(2024, time.January, 31),
		},
		{
			ID:        "sem2",
			Name:      "Semester 122",
			StartDate: models.NewDate(2024, time.February, 1),
			EndDate:   models.NewDate(2024, time.June, 30),
		},
	}}
	courses := &fakeCourses{courses: []*models.Course{
		{
			ID:             "c1",
			SemesterID:     "sem1",
			UserCourseID:   "IS101",
			Name:           "Intro to Information Systems",
			Teacher:        "Dr. Sari",
			Room:           "R301",
			DaysOfWeek:     []time.Weekday{time.Monday},
			FrequencyWeeks: 1,
			StartTime:      models.TimeOfDay{Hour: 9},
			EndTime:        models.TimeOfDay{Hour: 11},
		},
	}}
	events := &fakeEvents{}
	sess := session.New()
	return NewScheduleService(semesters, courses, events, sess), semesters, courses, sess
}

func TestActiveSemesterDefaultsToFirst(t *testing.T) {
	svc, _, _, _ := testScheduleFixture()

	sem, err := svc.ActiveSemester(context.Background())
	if err != nil {
		t.Fatalf("ActiveSemester: %v", err)
	}
	if sem == nil || sem.ID != "sem1" {
		t.Fatalf("expected default semester sem1, got %+v", sem)
	}
}

func TestActiveSemesterFollowsSelection(t *testing.T) {
	svc, _, _, sess := testScheduleFixture()

	id := "sem2"
	sess.SelectSemester(&id)

	sem, err := svc.ActiveSemester(context.Background())
	if err != nil {
		t.Fatalf("ActiveSemester: %v", err)
	}
	if sem == nil || sem.ID != "sem2" {
		t.Fatalf("expected sem2, got %+v", sem)
	}
}

func TestActiveSemesterAllSentinel(t *testing.T) {
	svc, _, _, sess := testScheduleFixture()

	id := session.AllSemestersID
	sess.SelectSemester(&id)

	sem, err := svc.ActiveSemester(context.Background())
	if err != nil {
		t.Fatalf("ActiveSemester: %v", err)
	}
	if sem != nil {
		t.Fatalf("expected nil semester for all-semesters selection, got %+v", sem)
	}

	events, err := svc.CalendarEvents(context.Background())
	if err != nil {
		t.Fatalf("CalendarEvents: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty schedule, got %d events", len(events))
	}
}

func TestActiveSemesterStaleSelectionFallsBack(t *testing.T) {
	svc, _, _, sess := testScheduleFixture()

	id := "deleted"
	sess.SelectSemester(&id)

	sem, err := svc.ActiveSemester(context.Background())
	if err != nil {
		t.Fatalf("ActiveSemester: %v", err)
	}
	if sem == nil || sem.ID != "sem1" {
		t.Fatalf("expected fallback to sem1, got %+v", sem)
	}
}

func TestCalendarEventsMaterializesCourses(t *testing.T) {
	svc, _, _, _ := testScheduleFixture()

	events, err := svc.CalendarEvents(context.Background())
	if err != nil {
		t.Fatalf("CalendarEvents: %v", err)
	}
	// January 2024 has five Mondays.
	if len(events) != 5 {
		t.Fatalf("expected 5 occurrences, got %d", len(events))
	}
	if events[0].Title != "IS101: Intro to Information Systems" {
		t.Errorf("unexpected title %q", events[0].Title)
	}
}

func TestCalendarEventsMemoizedUntilInvalidation(t *testing.T) {
	svc, _, courses, sess := testScheduleFixture()
	ctx := context.Background()

	if _, err := svc.CalendarEvents(ctx); err != nil {
		t.Fatalf("CalendarEvents: %v", err)
	}
	if _, err := svc.CalendarEvents(ctx); err != nil {
		t.Fatalf("CalendarEvents: %v", err)
	}
	if courses.calls != 1 {
		t.Fatalf("expected a single course load while memoized, got %d", courses.calls)
	}

	sess.Invalidate()
	if _, err := svc.CalendarEvents(ctx); err != nil {
		t.Fatalf("CalendarEvents: %v", err)
	}
	if courses.calls != 2 {
		t.Fatalf("expected reload after invalidation, got %d calls", courses.calls)
	}
}

func TestDayLayout(t *testing.T) {
	svc, _, _, _ := testScheduleFixture()

	boxes, err := svc.DayLayout(context.Background(), models.NewDate(2024, time.January, 8))
	if err != nil {
		t.Fatalf("DayLayout: %v", err)
	}
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box on Jan 8, got %d", len(boxes))
	}
	if boxes[0].StartMinute != 9*60 || boxes[0].EndMinute != 11*60 {
		t.Errorf("unexpected box bounds %d-%d", boxes[0].StartMinute, boxes[0].EndMinute)
	}
}

func TestExportICS(t *testing.T) {
	svc, _, _, _ := testScheduleFixture()

	out, err := svc.ExportICS(context.Background())
	if err != nil {
		t.Fatalf("ExportICS: %v", err)
	}
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Fatalf("output is not an iCalendar document:\n%s", out)
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 5 {
		t.Errorf("expected 5 VEVENTs, got %d", got)
	}
	if !strings.Contains(out, "IS101: Intro to Information Systems") {
		t.Errorf("missing course summary in output")
	}
	if !strings.Contains(out, "LOCATION:R301") {
		t.Errorf("missing room location in output")
	}
}
