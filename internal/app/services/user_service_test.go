package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubeativo/backend/internal/app/models"
	"github.com/clubeativo/backend/internal/app/services"
	"github.com/clubeativo/backend/internal/pkg/apperrors"
)

type userEnv struct {
	service     services.UserService
	userRepo    *fakeUserRepo
	clubRepo    *fakeClubRepo
	memberships *fakeMembershipRepo
	eventRepo   *fakeEventRepo
	enrollments *fakeEnrollmentRepo
	storage     *fakeImageStorage
}

func newUserEnv() *userEnv {
	userRepo := newFakeUserRepo()
	clubRepo := newFakeClubRepo()
	memberships := newFakeMembershipRepo(userRepo)
	eventRepo := newFakeEventRepo(clubRepo)
	enrollments := newFakeEnrollmentRepo(eventRepo, userRepo)
	storage := &fakeImageStorage{}

	return &userEnv{
		service:     services.NewUserService(userRepo, clubRepo, memberships, eventRepo, enrollments, storage),
		userRepo:    userRepo,
		clubRepo:    clubRepo,
		memberships: memberships,
		eventRepo:   eventRepo,
		enrollments: enrollments,
		storage:     storage,
	}
}

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates memberships and enrollments", func(t *testing.T) {
		env := newUserEnv()

		userID, err := env.userRepo.CreateUser(ctx, &models.User{
			StudentID: "202300112233", Email: "aluno@school.edu.br", Password: "hash",
		})
		require.NoError(t, err)

		clubID, err := env.clubRepo.Create(ctx, &models.Club{Name: "Robótica", Category: "tecnologia"})
		require.NoError(t, err)
		require.NoError(t, env.memberships.AddMember(ctx, clubID, userID))

		eventID, err := env.eventRepo.Create(ctx, &models.Event{
			Title: "Maratona", Capacity: 30, StartsAt: time.Now().Add(time.Hour), ClubID: clubID,
		})
		require.NoError(t, err)
		require.NoError(t, env.enrollments.Enroll(ctx, eventID, userID))

		profile, err := env.service.GetProfile(ctx, userID)
		require.NoError(t, err)

		assert.Equal(t, "202300112233", profile.StudentID)
		assert.Equal(t, "default.jpg", profile.ImageFile)

		require.Len(t, profile.Clubs, 1)
		assert.Equal(t, "Robótica", profile.Clubs[0].Name)
		assert.Equal(t, 1, profile.Clubs[0].MemberCount)

		require.Len(t, profile.Events, 1)
		assert.Equal(t, "Maratona", profile.Events[0].Title)
		assert.Equal(t, 29, profile.Events[0].RemainingCapacity)
	})

	t.Run("empty profile has no clubs or events", func(t *testing.T) {
		env := newUserEnv()

		userID, err := env.userRepo.CreateUser(ctx, &models.User{
			StudentID: "202300112233", Email: "aluno@school.edu.br", Password: "hash",
		})
		require.NoError(t, err)

		profile, err := env.service.GetProfile(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, profile.Clubs)
		assert.Empty(t, profile.Events)
	})

	t.Run("unknown user", func(t *testing.T) {
		env := newUserEnv()
		_, err := env.service.GetProfile(ctx, 42)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_UpdateProfileImage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the image and updates the record", func(t *testing.T) {
		env := newUserEnv()

		userID, err := env.userRepo.CreateUser(ctx, &models.User{
			StudentID: "202300112233", Email: "aluno@school.edu.br", Password: "hash",
		})
		require.NoError(t, err)

		resp, err := env.service.UpdateProfileImage(ctx, userID, nil)
		require.NoError(t, err)
		assert.Equal(t, "202300112233_1.png", resp.ImageFile)

		user, err := env.userRepo.GetUserByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, resp.ImageFile, user.ImageFile)
	})

	t.Run("storage rejection propagates", func(t *testing.T) {
		env := newUserEnv()
		env.storage.err = apperrors.ErrInvalidFileExtension

		userID, err := env.userRepo.CreateUser(ctx, &models.User{
			StudentID: "202300112233", Email: "aluno@school.edu.br", Password: "hash",
		})
		require.NoError(t, err)

		_, err = env.service.UpdateProfileImage(ctx, userID, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidFileExtension)

		// Record keeps the previous image on failure
		user, err := env.userRepo.GetUserByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "default.jpg", user.ImageFile)
	})
}
