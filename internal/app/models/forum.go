package models

import "time"

// ForumTopic represents a discussion topic. Topics own an ordered sequence
// of posts and are listed newest first.
type ForumTopic struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UserID    int64     `json:"userId" db:"user_id"`

	// Related entities
	Author *User        `json:"author,omitempty"`
	Posts  []*ForumPost `json:"posts,omitempty"`
}

// ForumPost represents a reply within a topic, ordered by creation time.
type ForumPost struct {
	ID        int64     `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UserID    int64     `json:"userId" db:"user_id"`
	TopicID   int64     `json:"topicId" db:"topic_id"`

	// Related entities
	Author *User `json:"author,omitempty"`
}
