package schedule

import (
	"math/rand"

	"github.com/fakhrin/unicampus/internal/app/models"
)

// Fallback colors keyed by event type, used when an event has neither an
// explicit color nor a linked course.
const (
	ColorHomework models.Color = 0xFFFFA000 // amber
	ColorExam     models.Color = 0xFFD32F2F // red
	ColorCustom   models.Color = 0xFF1976D2 // blue
	ColorNeutral  models.Color = 0xFF9E9E9E // gray
)

// coursePalette is the pool of colors assigned to brand-new courses during
// SIAKAD sync when the remote data carries no color of its own.
var coursePalette = []models.Color{
	0xFFE57373,
	0xFF81C784,
	0xFF64B5F6,
	0xFFFFD54F,
	0xFFBA68C8,
}

// ResolveEventColor picks the display color for a user event: the explicit
// event color wins, then the linked course's color, then the type fallback.
func ResolveEventColor(ev *models.UserEvent, linkedCourse *models.Course) models.Color {
	if ev.Color != nil {
		return *ev.Color
	}
	if linkedCourse != nil {
		return linkedCourse.Color
	}
	return FallbackColor(ev.Type)
}

// FallbackColor returns the type-keyed default color.
func FallbackColor(t models.EventType) models.Color {
	switch t {
	case models.EventTypeHomework:
		return ColorHomework
	case models.EventTypeExam:
		return ColorExam
	case models.EventTypeCustom:
		return ColorCustom
	default:
		return ColorNeutral
	}
}

// RandomCourseColor returns a random palette color for a never-before-seen
// synced course.
func RandomCourseColor() models.Color {
	return coursePalette[rand.Intn(len(coursePalette))]
}

// SyncedCourseColor applies the color-preservation policy for SIAKAD sync:
// a manually edited local color always survives; otherwise the remote color
// is used when present, and a random palette color is assigned to courses
// never seen before.
func SyncedCourseColor(existing *models.Course, remote *models.Color) models.Color {
	if existing != nil && existing.IsManuallyEdited {
		return existing.Color
	}
	if remote != nil {
		return *remote
	}
	if existing != nil {
		return existing.Color
	}
	return RandomCourseColor()
}
