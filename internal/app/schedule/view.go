package schedule

import (
	"time"

	"github.com/fakhrin/unicampus/internal/app/models"
)

// ViewWindow returns the inclusive date range a calendar view shows around
// an anchor date. Weeks run Monday through Sunday. The list view has no
// window; it reports ok=false and callers show the full semester.
func ViewWindow(view models.CalendarView, anchor models.Date) (from, to models.Date, ok bool) {
	switch view {
	case models.ViewDaily:
		return anchor, anchor, true
	case models.ViewWeekly:
		offset := int(anchor.Weekday()) - int(time.Monday)
		if offset < 0 {
			offset += 7
		}
		from = anchor.AddDays(-offset)
		return from, from.AddDays(6), true
	case models.ViewMonthly:
		from = models.NewDate(anchor.Year(), anchor.Month(), 1)
		return from, from.AddMonths(1).AddDays(-1), true
	default:
		return models.Date{}, models.Date{}, false
	}
}

// FilterWindow keeps the events whose start date falls inside [from, to].
func FilterWindow(events []models.CalendarEvent, from, to models.Date) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0, len(events))
	for _, ev := range events {
		day := models.DateOf(ev.Start)
		if day.Before(from) || day.After(to) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
