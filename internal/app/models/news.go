package models

import "time"

// NewsItem represents a published news entry, optionally tied to an event.
type NewsItem struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	PublishedAt time.Time `json:"publishedAt" db:"published_at"`
	EventID     *int64    `json:"eventId,omitempty" db:"event_id"`

	// Related entities
	Event *Event `json:"event,omitempty"`
}
