package dto

import "github.com/fakhrin/unicampus/internal/app/models"

// UserEventResponse represents a user-created event
type UserEventResponse struct {
	ID          string  `json:"id"`
	SemesterID  string  `json:"semesterId"`
	CourseID    *string `json:"courseId,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	IsCompleted bool    `json:"isCompleted"`
	Color       *string `json:"color,omitempty"`
}

// CreateUserEventRequest represents event creation data
type CreateUserEventRequest struct {
	SemesterID  string  `json:"semesterId" binding:"required"`
	CourseID    *string `json:"courseId"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Color       *uint32 `json:"color"`
}

// UpdateUserEventRequest represents event update data
type UpdateUserEventRequest struct {
	CourseID    *string `json:"courseId"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Color       *uint32 `json:"color"`
}

// SetCompletionRequest toggles homework completion
type SetCompletionRequest struct {
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}

// UserEventListResponse represents a list of user events
type UserEventListResponse struct {
	Events []UserEventResponse `json:"events"`
}

// ToUserEventResponse maps a user event to its response shape
func ToUserEventResponse(ev *models.UserEvent) UserEventResponse {
	out := UserEventResponse{
		ID:          ev.ID,
		SemesterID:  ev.SemesterID,
		CourseID:    ev.CourseID,
		Title:       ev.Title,
		Description: ev.Description,
		Type:        string(ev.Type),
		Date:        ev.Date.String(),
		IsCompleted: ev.IsCompleted,
	}
	if ev.StartTime != nil {
		s := ev.StartTime.String()
		out.StartTime = &s
	}
	if ev.EndTime != nil {
		s := ev.EndTime.String()
		out.EndTime = &s
	}
	if ev.Color != nil {
		h := ev.Color.Hex()
		out.Color = &h
	}
	return out
}

// ToUserEventListResponse maps a user event slice to its response shape
func ToUserEventListResponse(events []*models.UserEvent) UserEventListResponse {
	out := UserEventListResponse{Events: make([]UserEventResponse, 0, len(events))}
	for _, ev := range events {
		out.Events = append(out.Events, ToUserEventResponse(ev))
	}
	return out
}
