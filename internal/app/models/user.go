package models

import (
	"time"
)

// DefaultProfileImage is the sentinel image reference assigned to new users.
const DefaultProfileImage = "default.jpg"

// User defines the user model based on the 'users' table.
// StudentID is the 12-digit matricula used as the login identifier.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	StudentID string    `json:"studentId" db:"student_id" example:"202300112233"`
	Email     string    `json:"email" db:"email" example:"aluno@school.edu.br"`
	Password  string    `json:"-" db:"password"`
	ImageFile string    `json:"imageFile" db:"image_file" example:"default.jpg"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}
