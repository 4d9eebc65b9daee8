package dto

import "time"

// CreateEventRequest is the payload to create an event under a club.
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required" example:"Maratona de Programação"`
	Description string    `json:"description" binding:"required"`
	Capacity    int       `json:"capacity" binding:"min=0" example:"30"`
	StartsAt    time.Time `json:"startsAt" binding:"required" example:"2025-10-01T19:00:00Z"`
	ClubID      int64     `json:"clubId" binding:"required" example:"1"`
}

// EventFilterRequest carries list filters and pagination.
type EventFilterRequest struct {
	ClubID   *int64
	Search   *string
	Page     int
	PageSize int
}

// EventResponse is the API view of an event. RemainingCapacity is always
// derived from the live enrollment count, never stored.
type EventResponse struct {
	ID                int64     `json:"id" example:"1"`
	Title             string    `json:"title" example:"Maratona de Programação"`
	Description       string    `json:"description"`
	Capacity          int       `json:"capacity" example:"30"`
	RemainingCapacity int       `json:"remainingCapacity" example:"12"`
	StartsAt          time.Time `json:"startsAt"`
	ClubID            int64     `json:"clubId" example:"1"`
	ClubName          string    `json:"clubName,omitempty" example:"Clube de Robótica"`
}

// EventDetailResponse includes the caller's enrollment state.
type EventDetailResponse struct {
	EventResponse
	Enrolled bool `json:"enrolled"`
}

// EventListResponse is a paginated list of events.
type EventListResponse struct {
	Events         []EventResponse `json:"events"`
	PaginationInfo PaginationInfo  `json:"pagination"`
}

// EnrollmentResponse is returned after a successful enrollment.
type EnrollmentResponse struct {
	EventID           int64 `json:"eventId" example:"1"`
	RemainingCapacity int   `json:"remainingCapacity" example:"11"`
}
