package schedule

import (
	"github.com/fakhrin/unicampus/internal/app/models"
)

const minutesPerDay = 24 * 60

// EventBox places one event within a day column grid for the daily and
// weekly calendar views.
type EventBox struct {
	Event models.CalendarEvent `json:"event"`
	// StartMinute and EndMinute are the event's effective bounds within the
	// displayed day, clamped to [0, 1440].
	StartMinute int `json:"startMinute"`
	EndMinute   int `json:"endMinute"`
	// ColumnIndex / ColumnCount describe side-by-side placement among
	// overlapping events.
	ColumnIndex int `json:"columnIndex"`
	ColumnCount int `json:"columnCount"`
}

// eventsOnDay filters events whose span touches the given date.
func eventsOnDay(date models.Date, events []models.CalendarEvent) []models.CalendarEvent {
	var out []models.CalendarEvent
	for _, ev := range events {
		startDate := models.DateOf(ev.Start)
		endDate := models.DateOf(ev.End)
		if !date.Before(startDate) && !date.After(endDate) {
			out = append(out, ev)
		}
	}
	return out
}

// dayBounds computes the event's effective minute range within the day.
// Events that begin before the day start at minute 0; events that end after
// it run to minute 1440.
func dayBounds(date models.Date, ev models.CalendarEvent) (start, end int) {
	start = 0
	if models.DateOf(ev.Start).Equal(date) {
		start = ev.Start.Hour()*60 + ev.Start.Minute()
	}
	end = minutesPerDay
	if models.DateOf(ev.End).Equal(date) {
		end = ev.End.Hour()*60 + ev.End.Minute()
	}
	return start, end
}

// LayoutDay assigns column positions to the events visible on the given
// day. The overlap group of an event is every same-day event whose
// half-open minute interval intersects it; the group's size becomes the
// column count and the event's position in natural list order its column
// index. Events that overlap transitively but not pairwise are still
// counted into the same group, which can over-allocate columns — an
// intentional simplification, not an interval-graph coloring.
//
// Events whose effective duration within the day is zero or negative are
// not rendered and are omitted from the result.
func LayoutDay(date models.Date, events []models.CalendarEvent) []EventBox {
	dayEvents := eventsOnDay(date, events)

	boxes := make([]EventBox, 0, len(dayEvents))
	for i, ev := range dayEvents {
		start, end := dayBounds(date, ev)
		if end-start <= 0 {
			continue
		}

		columnCount := 0
		columnIndex := 0
		for j, other := range dayEvents {
			otherStart, otherEnd := dayBounds(date, other)
			if start < otherEnd && end > otherStart {
				if j == i {
					columnIndex = columnCount
				}
				columnCount++
			}
		}

		boxes = append(boxes, EventBox{
			Event:       ev,
			StartMinute: start,
			EndMinute:   end,
			ColumnIndex: columnIndex,
			ColumnCount: columnCount,
		})
	}
	return boxes
}
