package dto

import "time"

// CreateTopicRequest is the payload to open a forum topic.
type CreateTopicRequest struct {
	Title   string `json:"title" binding:"required" example:"Caronas para o evento de sábado"`
	Content string `json:"content" binding:"required"`
}

// CreatePostRequest is the payload to reply within a topic.
type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

// TopicResponse is the API view of a forum topic.
type TopicResponse struct {
	ID        int64       `json:"id" example:"1"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
	Author    UserSummary `json:"author"`
	PostCount int         `json:"postCount" example:"3"`
}

// TopicDetailResponse includes the topic's posts ordered oldest first.
type TopicDetailResponse struct {
	TopicResponse
	Posts []PostResponse `json:"posts"`
}

// TopicListResponse is a paginated list of topics ordered newest first.
type TopicListResponse struct {
	Topics         []TopicResponse `json:"topics"`
	PaginationInfo PaginationInfo  `json:"pagination"`
}

// PostResponse is the API view of a forum post.
type PostResponse struct {
	ID        int64       `json:"id" example:"7"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
	Author    UserSummary `json:"author"`
}
