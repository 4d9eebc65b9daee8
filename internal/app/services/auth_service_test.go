package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubeativo/backend/internal/app/models/dto"
	"github.com/clubeativo/backend/internal/app/services"
	"github.com/clubeativo/backend/internal/pkg/apperrors"
	"github.com/clubeativo/backend/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func newAuthEnv() (services.AuthService, *fakeUserRepo, *fakeTokenRepo) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	service := services.NewAuthService(userRepo, tokenRepo, newTestJWTService())
	return service, userRepo, tokenRepo
}

func validRegistration() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		StudentID: "202300112233",
		Email:     "aluno@school.edu.br",
		Password:  "segredo1",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account and issues tokens", func(t *testing.T) {
		service, userRepo, tokenRepo := newAuthEnv()

		tokens, err := service.Register(ctx, validRegistration())
		require.NoError(t, err)

		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Equal(t, "Bearer", tokens.TokenType)
		assert.Len(t, userRepo.users, 1)
		assert.Len(t, tokenRepo.tokens, 1)

		user, err := userRepo.GetUserByStudentID(ctx, "202300112233")
		require.NoError(t, err)
		assert.NotEqual(t, "segredo1", user.Password, "password must be stored hashed")
		assert.Equal(t, "default.jpg", user.ImageFile)
	})

	t.Run("rejects student IDs that are not 12 digits", func(t *testing.T) {
		service, _, _ := newAuthEnv()

		for _, studentID := range []string{"", "12345", "12345678901a", "1234567890123", "abc"} {
			req := validRegistration()
			req.StudentID = studentID
			_, err := service.Register(ctx, req)
			assert.ErrorIs(t, err, apperrors.ErrInvalidStudentID, "studentID %q", studentID)
		}
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		service, _, _ := newAuthEnv()

		req := validRegistration()
		req.Password = "curta"
		_, err := service.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects malformed emails", func(t *testing.T) {
		service, _, _ := newAuthEnv()

		req := validRegistration()
		req.Email = "not-an-email"
		_, err := service.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects duplicate student ID", func(t *testing.T) {
		service, _, _ := newAuthEnv()

		_, err := service.Register(ctx, validRegistration())
		require.NoError(t, err)

		req := validRegistration()
		req.Email = "outro@school.edu.br"
		_, err = service.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrStudentIDExists)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		service, _, _ := newAuthEnv()

		_, err := service.Register(ctx, validRegistration())
		require.NoError(t, err)

		req := validRegistration()
		req.StudentID = "202300445566"
		_, err = service.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds with correct credentials", func(t *testing.T) {
		service, _, _ := newAuthEnv()
		_, err := service.Register(ctx, validRegistration())
		require.NoError(t, err)

		tokens, err := service.Login(ctx, &dto.LoginRequest{StudentID: "202300112233", Password: "segredo1"})
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("unknown account and wrong password are indistinguishable", func(t *testing.T) {
		service, _, _ := newAuthEnv()
		_, err := service.Register(ctx, validRegistration())
		require.NoError(t, err)

		_, errUnknown := service.Login(ctx, &dto.LoginRequest{StudentID: "999999999999", Password: "segredo1"})
		_, errWrongPassword := service.Login(ctx, &dto.LoginRequest{StudentID: "202300112233", Password: "errada99"})

		assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPassword.Error())
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the refresh token", func(t *testing.T) {
		service, _, tokenRepo := newAuthEnv()
		tokens, err := service.Register(ctx, validRegistration())
		require.NoError(t, err)

		renewed, err := service.RefreshToken(ctx, tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, tokens.RefreshToken, renewed.RefreshToken)

		// The used token is revoked and cannot be replayed
		_, err = service.RefreshToken(ctx, tokens.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

		assert.Len(t, tokenRepo.tokens, 2)
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		service, _, _ := newAuthEnv()

		_, err := service.RefreshToken(ctx, "nao-existe")
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		service, userRepo, tokenRepo := newAuthEnv()
		_, err := service.Register(ctx, validRegistration())
		require.NoError(t, err)

		user, err := userRepo.GetUserByStudentID(ctx, "202300112233")
		require.NoError(t, err)

		require.NoError(t, tokenRepo.CreateToken(ctx, "velho", user.ID, time.Now().Add(-time.Minute)))
		_, err = service.RefreshToken(ctx, "velho")
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the refresh token", func(t *testing.T) {
		service, _, tokenRepo := newAuthEnv()
		tokens, err := service.Register(ctx, validRegistration())
		require.NoError(t, err)

		require.NoError(t, service.Logout(ctx, tokens.RefreshToken))
		assert.True(t, tokenRepo.tokens[tokens.RefreshToken].isRevoked)
	})

	t.Run("revoking an unknown token is not an error", func(t *testing.T) {
		service, _, _ := newAuthEnv()
		assert.NoError(t, service.Logout(ctx, "nao-existe"))
	})

	t.Run("empty token is rejected", func(t *testing.T) {
		service, _, _ := newAuthEnv()
		assert.ErrorIs(t, service.Logout(ctx, ""), apperrors.ErrValidationFailed)
	})
}
