package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/session"
	"github.com/fakhrin/unicampus/internal/pkg/apperrors"
	"github.com/fakhrin/unicampus/internal/pkg/auth"
	"github.com/fakhrin/unicampus/internal/pkg/siakad"
)

type memorySemesters struct {
	byID map[string]*models.Semester
}

func (m *memorySemesters) Upsert(_ context.Context, s *models.Semester) error {
	if m.byID == nil {
		m.byID = map[string]*models.Semester{}
	}
	cp := *s
	m.byID[s.ID] = &cp
	return nil
}

type memoryCourses struct {
	byID map[string]*models.Course
}

func (m *memoryCourses) GetByID(_ context.Context, id string) (*models.Course, error) {
	if c, ok := m.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (m *memoryCourses) GetBySemesterID(_ context.Context, semesterID string) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range m.byID {
		if c.SemesterID == semesterID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryCourses) Upsert(_ context.Context, c *models.Course) error {
	if m.byID == nil {
		m.byID = map[string]*models.Course{}
	}
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

type failingClient struct{}

func (failingClient) Login(context.Context, string, string) (*siakad.LoginResponse, error) {
	return nil, errors.New("siakad unreachable")
}

func (failingClient) FetchSchedule(context.Context, string) (*siakad.ScheduleResponse, error) {
	return nil, errors.New("siakad unreachable")
}

func newSiakadFixture(client siakad.Client) (*SiakadService, *memorySemesters, *memoryCourses, *session.Session) {
	semesters := &memorySemesters{}
	courses := &memoryCourses{}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "unicampus.test",
	})
	sess := session.New()
	return NewSiakadService(client, semesters, courses, jwtService, sess), semesters, courses, sess
}

func TestSiakadLogin(t *testing.T) {
	svc, _, _, _ := newSiakadFixture(siakad.NewMockClient())

	result, err := svc.Login(context.Background(), "1512620001", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.AppToken == "" || result.SiakadToken == "" {
		t.Fatalf("expected both tokens to be issued, got %+v", result)
	}
	if result.ExpiresIn <= 0 {
		t.Errorf("expected positive expiry, got %d", result.ExpiresIn)
	}
}

func TestSiakadLoginBadCredentials(t *testing.T) {
	svc, _, _, _ := newSiakadFixture(siakad.NewMockClient())

	_, err := svc.Login(context.Background(), "1512620001", "short")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSiakadLoginUnreachable(t *testing.T) {
	svc, _, _, _ := newSiakadFixture(failingClient{})

	_, err := svc.Login(context.Background(), "1512620001", "secret1")
	if !errors.Is(err, apperrors.ErrSyncFailed) {
		t.Fatalf("expected ErrSyncFailed, got %v", err)
	}
}

func TestSyncCreatesSemesterAndCourses(t *testing.T) {
	svc, semesters, courses, sess := newSiakadFixture(siakad.NewMockClient())
	before := sess.Revision()

	result, err := svc.Sync(context.Background(), "mock_token_123")
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if result.SemesterID != "Semester12120242025" {
		t.Errorf("unexpected semester id %q", result.SemesterID)
	}
	if result.CourseCount != 2 {
		t.Errorf("expected 2 courses, got %d", result.CourseCount)
	}

	sem, ok := semesters.byID[result.SemesterID]
	if !ok {
		t.Fatalf("semester %q not stored", result.SemesterID)
	}
	if sem.Name != "Semester 121 (2024/2025)" {
		t.Errorf("unexpected semester name %q", sem.Name)
	}

	stored, _ := courses.GetBySemesterID(context.Background(), result.SemesterID)
	if len(stored) != 2 {
		t.Fatalf("expected 2 stored courses, got %d", len(stored))
	}
	for _, c := range stored {
		if c.FrequencyWeeks != 1 {
			t.Errorf("course %s: expected weekly frequency, got %d", c.UserCourseID, c.FrequencyWeeks)
		}
		if len(c.DaysOfWeek) != 1 {
			t.Errorf("course %s: expected one weekday, got %v", c.UserCourseID, c.DaysOfWeek)
		}
		if c.Color == 0 {
			t.Errorf("course %s: expected a color to be assigned", c.UserCourseID)
		}
	}

	if sess.Revision() == before {
		t.Error("expected session invalidation after sync")
	}
}

func TestSyncPreservesManuallyEditedColor(t *testing.T) {
	svc, _, courses, _ := newSiakadFixture(siakad.NewMockClient())
	ctx := context.Background()

	if _, err := svc.Sync(ctx, "mock_token_123"); err != nil {
		t.Fatalf("first sync: %v", err)
	}

	var edited *models.Course
	for _, c := range courses.byID {
		cp := *c
		edited = &cp
		break
	}
	edited.Color = models.Color(0xFF123456)
	edited.IsManuallyEdited = true
	if err := courses.Upsert(ctx, edited); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if _, err := svc.Sync(ctx, "mock_token_123"); err != nil {
		t.Fatalf("second sync: %v", err)
	}

	after, err := courses.GetByID(ctx, edited.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if after.Color != models.Color(0xFF123456) {
		t.Errorf("manual color lost across sync: got %s", after.Color.Hex())
	}
	if !after.IsManuallyEdited {
		t.Error("manual-edit flag lost across sync")
	}
}

func TestSyncKeepsExistingColorStableAcrossSyncs(t *testing.T) {
	svc, _, courses, _ := newSiakadFixture(siakad.NewMockClient())
	ctx := context.Background()

	if _, err := svc.Sync(ctx, "mock_token_123"); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	first := map[string]models.Color{}
	for id, c := range courses.byID {
		first[id] = c.Color
	}

	if _, err := svc.Sync(ctx, "mock_token_123"); err != nil {
		t.Fatalf("second sync: %v", err)
	}
	// The mock reports no remote colors, so every existing course keeps the
	// color it was first assigned.
	for id, c := range courses.byID {
		if c.Color != first[id] {
			t.Errorf("course %s: color changed from %s to %s across syncs", id, first[id].Hex(), c.Color.Hex())
		}
	}
}

func TestSyncWithoutToken(t *testing.T) {
	svc, _, _, _ := newSiakadFixture(siakad.NewMockClient())

	_, err := svc.Sync(context.Background(), "")
	if !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestSyncFetchFailureLeavesDataUntouched(t *testing.T) {
	svc, semesters, courses, _ := newSiakadFixture(failingClient{})

	_, err := svc.Sync(context.Background(), "some-token")
	if !errors.Is(err, apperrors.ErrSyncFailed) {
		t.Fatalf("expected ErrSyncFailed, got %v", err)
	}
	if len(semesters.byID) != 0 || len(courses.byID) != 0 {
		t.Error("failed sync must not write any data")
	}
}
