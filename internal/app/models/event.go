package models

import "time"

// Event represents a club event with a finite number of seats (vagas).
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Capacity    int       `json:"capacity" db:"capacity"`
	StartsAt    time.Time `json:"startsAt" db:"starts_at"`
	ClubID      int64     `json:"clubId" db:"club_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Club *Club `json:"club,omitempty"`
}

// RemainingCapacity returns the number of seats left given the current
// enrollment count. It is computed on demand and never stored. The result
// can be zero but user-facing flows reject enrollment before it would go
// negative.
func (e *Event) RemainingCapacity(enrolledCount int) int {
	return e.Capacity - enrolledCount
}

// Enrollment is the association record linking one user to one event.
// At most one row exists per (user, event) pair.
type Enrollment struct {
	UserID     int64     `json:"userId" db:"user_id"`
	EventID    int64     `json:"eventId" db:"event_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`

	// Related entities
	User  *User  `json:"user,omitempty"`
	Event *Event `json:"event,omitempty"`
}
