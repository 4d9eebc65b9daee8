package models

import "time"

// Club represents a student club
type Club struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Events  []*Event `json:"events,omitempty"`
	Members []*User  `json:"members,omitempty"`
}

// ClubMember represents a user's membership in a club
type ClubMember struct {
	ClubID   int64     `json:"clubId" db:"club_id"`
	UserID   int64     `json:"userId" db:"user_id"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
