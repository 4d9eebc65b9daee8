package dto

import "time"

// CreateClubRequest is the payload to create a club.
type CreateClubRequest struct {
	Name        string `json:"name" binding:"required" example:"Clube de Robótica"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required" example:"tecnologia"`
}

// ClubFilterRequest carries list filters and pagination.
type ClubFilterRequest struct {
	Category *string
	Search   *string
	Page     int
	PageSize int
}

// ClubResponse is the API view of a club.
type ClubResponse struct {
	ID          int64     `json:"id" example:"1"`
	Name        string    `json:"name" example:"Clube de Robótica"`
	Description string    `json:"description"`
	Category    string    `json:"category" example:"tecnologia"`
	MemberCount int       `json:"memberCount" example:"12"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClubDetailResponse includes the club's upcoming events.
type ClubDetailResponse struct {
	ClubResponse
	Events []EventResponse `json:"events"`
}

// ClubListResponse is a paginated list of clubs.
type ClubListResponse struct {
	Clubs          []ClubResponse `json:"clubs"`
	PaginationInfo PaginationInfo `json:"pagination"`
}

// ClubMemberResponse is one member row of a club.
type ClubMemberResponse struct {
	User     UserSummary `json:"user"`
	JoinedAt time.Time   `json:"joinedAt"`
}
