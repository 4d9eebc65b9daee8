package dto

import "time"

// CreateNewsRequest is the payload to publish a news item.
type CreateNewsRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	EventID *int64 `json:"eventId,omitempty"`
}

// NewsResponse is the API view of a news item.
type NewsResponse struct {
	ID          int64     `json:"id" example:"1"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"publishedAt"`
	EventID     *int64    `json:"eventId,omitempty"`
	EventTitle  string    `json:"eventTitle,omitempty"`
}

// NewsListResponse is a paginated list of news items, newest first.
type NewsListResponse struct {
	News           []NewsResponse `json:"news"`
	PaginationInfo PaginationInfo `json:"pagination"`
}
