package dto

// UserProfile is the account view of a user.
type UserProfile struct {
	ID        int64           `json:"id" example:"1"`
	StudentID string          `json:"studentId" example:"202300112233"`
	Email     string          `json:"email" example:"aluno@school.edu.br"`
	ImageFile string          `json:"imageFile" example:"default.jpg"`
	Clubs     []ClubResponse  `json:"clubs"`
	Events    []EventResponse `json:"events"`
}

// UpdatePhotoResponse is returned after a profile image upload.
type UpdatePhotoResponse struct {
	ImageFile string `json:"imageFile" example:"202300112233_5f3e.png"`
}

// UserSummary is the public view of a user embedded in other resources.
type UserSummary struct {
	ID        int64  `json:"id" example:"1"`
	StudentID string `json:"studentId" example:"202300112233"`
	ImageFile string `json:"imageFile" example:"default.jpg"`
}
