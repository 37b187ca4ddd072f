package schedule

import (
	"testing"
	"time"

	"github.com/fakhrin/unicampus/internal/app/models"
)

func dayEvent(t *testing.T, id string, start, end string) models.CalendarEvent {
	t.Helper()
	s, err := time.Parse("2006-01-02 15:04", start)
	if err != nil {
		t.Fatalf("parse start: %v", err)
	}
	e, err := time.Parse("2006-01-02 15:04", end)
	if err != nil {
		t.Fatalf("parse end: %v", err)
	}
	return models.CalendarEvent{Title: id, Start: s, End: e, Type: models.EventTypeCustom}
}

func TestLayoutDayOverlapColumns(t *testing.T) {
	date := models.NewDate(2024, time.March, 4)
	events := []models.CalendarEvent{
		dayEvent(t, "a", "2024-03-04 09:00", "2024-03-04 10:00"),
		dayEvent(t, "b", "2024-03-04 09:30", "2024-03-04 10:30"),
		dayEvent(t, "c", "2024-03-04 11:00", "2024-03-04 12:00"),
	}

	boxes := LayoutDay(date, events)
	if len(boxes) != 3 {
		t.Fatalf("expected 3 boxes, got %d", len(boxes))
	}

	byTitle := map[string]EventBox{}
	for _, b := range boxes {
		byTitle[b.Event.Title] = b
	}

	if byTitle["a"].ColumnCount != 2 || byTitle["b"].ColumnCount != 2 {
		t.Errorf("overlapping pair: expected columnCount 2/2, got %d/%d",
			byTitle["a"].ColumnCount, byTitle["b"].ColumnCount)
	}
	if byTitle["a"].ColumnIndex != 0 || byTitle["b"].ColumnIndex != 1 {
		t.Errorf("overlapping pair: expected columns 0/1, got %d/%d",
			byTitle["a"].ColumnIndex, byTitle["b"].ColumnIndex)
	}
	if byTitle["c"].ColumnCount != 1 || byTitle["c"].ColumnIndex != 0 {
		t.Errorf("disjoint event: expected 1 column, got count=%d index=%d",
			byTitle["c"].ColumnCount, byTitle["c"].ColumnIndex)
	}
}

// Back-to-back events share a boundary instant but not an interval: the
// overlap test is half-open.
func TestLayoutDayTouchingEventsDoNotOverlap(t *testing.T) {
	date := models.NewDate(2024, time.March, 4)
	events := []models.CalendarEvent{
		dayEvent(t, "a", "2024-03-04 09:00", "2024-03-04 10:00"),
		dayEvent(t, "b", "2024-03-04 10:00", "2024-03-04 11:00"),
	}

	for _, b := range LayoutDay(date, events) {
		if b.ColumnCount != 1 {
			t.Errorf("%s: expected columnCount 1, got %d", b.Event.Title, b.ColumnCount)
		}
	}
}

func TestLayoutDayClampsDaySpanningEvents(t *testing.T) {
	date := models.NewDate(2024, time.March, 5)
	events := []models.CalendarEvent{
		dayEvent(t, "overnight", "2024-03-04 22:00", "2024-03-05 02:00"),
		dayEvent(t, "to-tomorrow", "2024-03-05 23:00", "2024-03-06 01:00"),
	}

	boxes := LayoutDay(date, events)
	if len(boxes) != 2 {
		t.Fatalf("expected 2 boxes, got %d", len(boxes))
	}
	byTitle := map[string]EventBox{}
	for _, b := range boxes {
		byTitle[b.Event.Title] = b
	}

	if got := byTitle["overnight"]; got.StartMinute != 0 || got.EndMinute != 2*60 {
		t.Errorf("overnight: expected [0,120), got [%d,%d)", got.StartMinute, got.EndMinute)
	}
	if got := byTitle["to-tomorrow"]; got.StartMinute != 23*60 || got.EndMinute != minutesPerDay {
		t.Errorf("to-tomorrow: expected [1380,1440), got [%d,%d)", got.StartMinute, got.EndMinute)
	}
}

func TestLayoutDayDropsZeroDurationEvents(t *testing.T) {
	date := models.NewDate(2024, time.March, 4)
	events := []models.CalendarEvent{
		dayEvent(t, "instant", "2024-03-04 09:00", "2024-03-04 09:00"),
		dayEvent(t, "real", "2024-03-04 09:00", "2024-03-04 09:30"),
	}

	boxes := LayoutDay(date, events)
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}
	if boxes[0].Event.Title != "real" {
		t.Errorf("expected zero-duration event dropped, kept %q", boxes[0].Event.Title)
	}
}

func TestLayoutDayExcludesOtherDays(t *testing.T) {
	date := models.NewDate(2024, time.March, 4)
	events := []models.CalendarEvent{
		dayEvent(t, "today", "2024-03-04 09:00", "2024-03-04 10:00"),
		dayEvent(t, "tomorrow", "2024-03-05 09:00", "2024-03-05 10:00"),
	}

	boxes := LayoutDay(date, events)
	if len(boxes) != 1 || boxes[0].Event.Title != "today" {
		t.Fatalf("expected only today's event, got %d boxes", len(boxes))
	}
}
