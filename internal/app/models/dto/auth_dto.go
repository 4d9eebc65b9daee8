package dto

// RegisterRequest is the payload for account registration.
// StudentID is the 12-digit matricula used as the login identifier.
type RegisterRequest struct {
	StudentID string `json:"studentId" binding:"required" example:"202300112233"`
	Email     string `json:"email" binding:"required,email" example:"aluno@school.edu.br"`
	Password  string `json:"password" binding:"required" example:"segredo1"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	StudentID string `json:"studentId" binding:"required" example:"202300112233"`
	Password  string `json:"password" binding:"required" example:"segredo1"`
}

// RefreshTokenRequest carries an opaque refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes a refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse is returned on successful registration, login or refresh.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn" example:"2592000"`
}
