package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/schedule"
	"github.com/fakhrin/unicampus/internal/app/session"
	"github.com/fakhrin/unicampus/internal/pkg/apperrors"
	"github.com/fakhrin/unicampus/internal/pkg/auth"
	"github.com/fakhrin/unicampus/internal/pkg/logger"
	"github.com/fakhrin/unicampus/internal/pkg/siakad"
)

// SemesterSink and CourseSink are the write interfaces the sync needs.
type SemesterSink interface {
	Upsert(ctx context.Context, semester *models.Semester) error
}

type CourseSink interface {
	GetByID(ctx context.Context, id string) (*models.Course, error)
	GetBySemesterID(ctx context.Context, semesterID string) ([]*models.Course, error)
	Upsert(ctx context.Context, course *models.Course) error
}

// SiakadService handles SIAKAD authentication and schedule synchronization.
type SiakadService struct {
	client     siakad.Client
	semesters  SemesterSink
	courses    CourseSink
	jwtService *auth.JWTService
	session    *session.Session
}

// LoginResult is a successful login: the app's own JWT plus the SIAKAD
// token used for subsequent sync calls.
type LoginResult struct {
	NIM         string
	Name        string
	AppToken    string
	SiakadToken string
	ExpiresIn   int
}

// SyncResult summarizes one completed synchronization.
type SyncResult struct {
	SemesterID   string
	SemesterName string
	CourseCount  int
}

// NewSiakadService creates a new SIAKAD service instance.
func NewSiakadService(client siakad.Client, semesters SemesterSink, courses CourseSink, jwtService *auth.JWTService, sess *session.Session) *SiakadService {
	return &SiakadService{
		client:     client,
		semesters:  semesters,
		courses:    courses,
		jwtService: jwtService,
		session:    sess,
	}
}

// Login authenticates against SIAKAD and issues an application JWT.
func (s *SiakadService) Login(ctx context.Context, nim, password string) (*LoginResult, error) {
	if strings.TrimSpace(nim) == "" || password == "" {
		return nil, fmt.Errorf("%w: nim and password are required", apperrors.ErrValidationFailed)
	}

	resp, err := s.client.Login(ctx, nim, password)
	if err != nil {
		logger.Error().Err(err).Str("nim", nim).Msg("SIAKAD login request failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSyncFailed, err)
	}
	if !resp.Success || resp.Token == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	name := nim
	if resp.Name != nil {
		name = *resp.Name
	}
	if resp.NIM != nil {
		nim = *resp.NIM
	}

	appToken, expiresIn, err := s.jwtService.GenerateToken(nim, name)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Str("nim", nim).Msg("SIAKAD login succeeded")
	return &LoginResult{
		NIM:         nim,
		Name:        name,
		AppToken:    appToken,
		SiakadToken: *resp.Token,
		ExpiresIn:   expiresIn,
	}, nil
}

// Sync fetches the current schedule from SIAKAD and merges it into local
// storage. A failed fetch leaves local data untouched.
func (s *SiakadService) Sync(ctx context.Context, siakadToken string) (*SyncResult, error) {
	if siakadToken == "" {
		return nil, apperrors.ErrNotLoggedIn
	}

	remote, err := s.client.FetchSchedule(ctx, siakadToken)
	if err != nil {
		logger.Error().Err(err).Msg("SIAKAD schedule fetch failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSyncFailed, err)
	}

	semester, err := semesterFromRemote(remote)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSyncFailed, err)
	}

	if err := s.semesters.Upsert(ctx, semester); err != nil {
		return nil, fmt.Errorf("error storing semester: %w", err)
	}

	count := 0
	for _, rc := range remote.Courses {
		course, err := s.mergeRemoteCourse(ctx, semester.ID, rc)
		if err != nil {
			logger.Warn().Err(err).Str("courseCode", rc.Code).Msg("skipping malformed remote course")
			continue
		}
		if err := s.courses.Upsert(ctx, course); err != nil {
			return nil, fmt.Errorf("error storing course %s: %w", course.UserCourseID, err)
		}
		count++
	}

	s.session.Invalidate()
	logger.Info().Str("semesterId", semester.ID).Int("courses", count).Msg("SIAKAD sync completed")

	return &SyncResult{
		SemesterID:   semester.ID,
		SemesterName: semester.Name,
		CourseCount:  count,
	}, nil
}

// mergeRemoteCourse converts a remote row into a local course, preserving
// local color edits across syncs.
func (s *SiakadService) mergeRemoteCourse(ctx context.Context, semesterID string, rc siakad.RemoteCourse) (*models.Course, error) {
	startTime, err := models.ParseTimeOfDay(rc.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start time %q: %w", rc.StartTime, err)
	}
	endTime, err := models.ParseTimeOfDay(rc.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end time %q: %w", rc.EndTime, err)
	}

	id := remoteCourseID(semesterID, rc)
	existing, err := s.courses.GetByID(ctx, id)
	if err != nil {
		existing = nil
	}

	var remoteColor *models.Color
	if rc.Color != nil {
		c := models.Color(*rc.Color)
		remoteColor = &c
	}

	course := &models.Course{
		ID:             id,
		SemesterID:     semesterID,
		UserCourseID:   rc.Code,
		Name:           rc.Name,
		Teacher:        rc.Lecturer,
		Room:           rc.Room,
		DaysOfWeek:     []time.Weekday{models.ISOWeekdayToGo(rc.DayOfWeek)},
		FrequencyWeeks: 1,
		StartTime:      startTime,
		EndTime:        endTime,
		Color:          schedule.SyncedCourseColor(existing, remoteColor),
	}
	if existing != nil {
		course.IsManuallyEdited = existing.IsManuallyEdited
	}
	return course, nil
}

// semesterFromRemote builds the local semester record, keyed by the
// alphanumeric-filtered remote name so repeat syncs hit the same row.
func semesterFromRemote(remote *siakad.ScheduleResponse) (*models.Semester, error) {
	start, err := models.ParseDate(remote.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start date %q: %w", remote.StartDate, err)
	}
	end, err := models.ParseDate(remote.EndDate)
	if err != nil {
		return nil, fmt.Errorf("end date %q: %w", remote.EndDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("semester ends before it starts")
	}

	id := alphanumeric(remote.SemesterName)
	if id == "" {
		return nil, fmt.Errorf("semester name %q yields an empty identifier", remote.SemesterName)
	}

	return &models.Semester{
		ID:        id,
		Name:      remote.SemesterName,
		StartDate: start,
		EndDate:   end,
	}, nil
}

func remoteCourseID(semesterID string, rc siakad.RemoteCourse) string {
	if rc.ID != "" {
		return rc.ID
	}
	return semesterID + "_" + rc.Code
}

func alphanumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
