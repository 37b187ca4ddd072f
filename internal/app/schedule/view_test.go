package schedule

import (
	"testing"
	"time"

	"github.com/fakhrin/unicampus/internal/app/models"
)

func TestViewWindowDaily(t *testing.T) {
	anchor := models.NewDate(2024, time.January, 10)
	from, to, ok := ViewWindow(models.ViewDaily, anchor)
	if !ok {
		t.Fatal("expected a window for the daily view")
	}
	if !from.Equal(anchor) || !to.Equal(anchor) {
		t.Errorf("daily window = %s..%s, want %s..%s", from, to, anchor, anchor)
	}
}

func TestViewWindowWeekly(t *testing.T) {
	// Jan 10, 2024 is a Wednesday; its week runs Mon Jan 8 to Sun Jan 14.
	from, to, ok := ViewWindow(models.ViewWeekly, models.NewDate(2024, time.January, 10))
	if !ok {
		t.Fatal("expected a window for the weekly view")
	}
	if !from.Equal(models.NewDate(2024, time.January, 8)) {
		t.Errorf("week start = %s, want 2024-01-08", from)
	}
	if !to.Equal(models.NewDate(2024, time.January, 14)) {
		t.Errorf("week end = %s, want 2024-01-14", to)
	}

	// A Sunday anchor still belongs to the week starting the prior Monday.
	from, to, _ = ViewWindow(models.ViewWeekly, models.NewDate(2024, time.January, 14))
	if !from.Equal(models.NewDate(2024, time.January, 8)) || !to.Equal(models.NewDate(2024, time.January, 14)) {
		t.Errorf("sunday anchor week = %s..%s, want 2024-01-08..2024-01-14", from, to)
	}
}

func TestViewWindowMonthly(t *testing.T) {
	from, to, ok := ViewWindow(models.ViewMonthly, models.NewDate(2024, time.February, 15))
	if !ok {
		t.Fatal("expected a window for the monthly view")
	}
	if !from.Equal(models.NewDate(2024, time.February, 1)) {
		t.Errorf("month start = %s, want 2024-02-01", from)
	}
	// 2024 is a leap year.
	if !to.Equal(models.NewDate(2024, time.February, 29)) {
		t.Errorf("month end = %s, want 2024-02-29", to)
	}
}

func TestViewWindowScheduleHasNoWindow(t *testing.T) {
	if _, _, ok := ViewWindow(models.ViewSchedule, models.NewDate(2024, time.January, 10)); ok {
		t.Error("list view must not produce a window")
	}
}

func TestFilterWindow(t *testing.T) {
	sem := jan2024()
	events := Materialize(sem, []models.Course{mondayCourse(1)}, nil)

	week := FilterWindow(events, models.NewDate(2024, time.January, 8), models.NewDate(2024, time.January, 14))
	if len(week) != 1 {
		t.Fatalf("expected 1 occurrence in the week of Jan 8, got %d", len(week))
	}
	if got := models.DateOf(week[0].Start); !got.Equal(models.NewDate(2024, time.January, 8)) {
		t.Errorf("occurrence date = %s, want 2024-01-08", got)
	}
}
