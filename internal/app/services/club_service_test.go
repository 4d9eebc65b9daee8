package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubeativo/backend/internal/app/models"
	"github.com/clubeativo/backend/internal/app/models/dto"
	"github.com/clubeativo/backend/internal/app/services"
	"github.com/clubeativo/backend/internal/pkg/apperrors"
)

type clubEnv struct {
	service     services.ClubService
	clubRepo    *fakeClubRepo
	memberships *fakeMembershipRepo
	eventRepo   *fakeEventRepo
	userRepo    *fakeUserRepo
}

func newClubEnv() *clubEnv {
	userRepo := newFakeUserRepo()
	clubRepo := newFakeClubRepo()
	memberships := newFakeMembershipRepo(userRepo)
	eventRepo := newFakeEventRepo(clubRepo)
	enrollments := newFakeEnrollmentRepo(eventRepo, userRepo)

	return &clubEnv{
		service:     services.NewClubService(clubRepo, memberships, eventRepo, enrollments),
		clubRepo:    clubRepo,
		memberships: memberships,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
	}
}

func TestClubService_CreateClub(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a club", func(t *testing.T) {
		env := newClubEnv()

		club, err := env.service.CreateClub(ctx, &dto.CreateClubRequest{
			Name: "Clube de Xadrez", Description: "Partidas semanais", Category: "jogos",
		})
		require.NoError(t, err)
		assert.NotZero(t, club.ID)
		assert.Equal(t, 0, club.MemberCount)
	})

	t.Run("club names are unique", func(t *testing.T) {
		env := newClubEnv()

		_, err := env.service.CreateClub(ctx, &dto.CreateClubRequest{Name: "Xadrez", Description: "d", Category: "jogos"})
		require.NoError(t, err)

		_, err = env.service.CreateClub(ctx, &dto.CreateClubRequest{Name: "Xadrez", Description: "d", Category: "jogos"})
		assert.ErrorIs(t, err, apperrors.ErrClubAlreadyExists)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		env := newClubEnv()

		_, err := env.service.CreateClub(ctx, &dto.CreateClubRequest{Name: "  ", Description: "d", Category: "jogos"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestClubService_Membership(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*clubEnv, int64, int64) {
		env := newClubEnv()
		clubID, err := env.clubRepo.Create(ctx, &models.Club{Name: "Teatro", Category: "cultura"})
		require.NoError(t, err)
		userID, err := env.userRepo.CreateUser(ctx, &models.User{
			StudentID: "202300112233", Email: "aluno@school.edu.br", Password: "hash",
		})
		require.NoError(t, err)
		return env, clubID, userID
	}

	t.Run("join and leave", func(t *testing.T) {
		env, clubID, userID := setup(t)

		require.NoError(t, env.service.JoinClub(ctx, clubID, userID))

		members, err := env.service.GetClubMembers(ctx, clubID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "202300112233", members[0].User.StudentID)

		require.NoError(t, env.service.LeaveClub(ctx, clubID, userID))

		members, err = env.service.GetClubMembers(ctx, clubID)
		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("joining twice fails", func(t *testing.T) {
		env, clubID, userID := setup(t)

		require.NoError(t, env.service.JoinClub(ctx, clubID, userID))
		assert.ErrorIs(t, env.service.JoinClub(ctx, clubID, userID), apperrors.ErrAlreadyMember)
	})

	t.Run("leaving without membership fails", func(t *testing.T) {
		env, clubID, userID := setup(t)
		assert.ErrorIs(t, env.service.LeaveClub(ctx, clubID, userID), apperrors.ErrNotMember)
	})

	t.Run("unknown club", func(t *testing.T) {
		env, _, userID := setup(t)
		assert.ErrorIs(t, env.service.JoinClub(ctx, 999, userID), apperrors.ErrClubNotFound)
		assert.ErrorIs(t, env.service.LeaveClub(ctx, 999, userID), apperrors.ErrClubNotFound)
	})
}

func TestClubService_GetClubs(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by category and reports member counts", func(t *testing.T) {
		env := newClubEnv()

		roboID, err := env.clubRepo.Create(ctx, &models.Club{Name: "Robótica", Category: "tecnologia"})
		require.NoError(t, err)
		_, err = env.clubRepo.Create(ctx, &models.Club{Name: "Teatro", Category: "cultura"})
		require.NoError(t, err)

		userID, err := env.userRepo.CreateUser(ctx, &models.User{
			StudentID: "202300112233", Email: "aluno@school.edu.br", Password: "hash",
		})
		require.NoError(t, err)
		require.NoError(t, env.memberships.AddMember(ctx, roboID, userID))

		category := "tecnologia"
		list, err := env.service.GetClubs(ctx, &dto.ClubFilterRequest{Category: &category, Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, list.Clubs, 1)
		assert.Equal(t, "Robótica", list.Clubs[0].Name)
		assert.Equal(t, 1, list.Clubs[0].MemberCount)
		assert.EqualValues(t, 1, list.PaginationInfo.TotalItems)
	})

	t.Run("search matches name substrings", func(t *testing.T) {
		env := newClubEnv()

		_, err := env.clubRepo.Create(ctx, &models.Club{Name: "Clube de Robótica", Category: "tecnologia"})
		require.NoError(t, err)
		_, err = env.clubRepo.Create(ctx, &models.Club{Name: "Clube de Teatro", Category: "cultura"})
		require.NoError(t, err)

		search := "robó"
		list, err := env.service.GetClubs(ctx, &dto.ClubFilterRequest{Search: &search, Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, list.Clubs, 1)
		assert.Equal(t, "Clube de Robótica", list.Clubs[0].Name)
	})
}

func TestClubService_GetClubByID(t *testing.T) {
	ctx := context.Background()

	t.Run("includes events with remaining capacity", func(t *testing.T) {
		env := newClubEnv()

		clubID, err := env.clubRepo.Create(ctx, &models.Club{Name: "Robótica", Category: "tecnologia"})
		require.NoError(t, err)
		_, err = env.eventRepo.Create(ctx, &models.Event{
			Title: "Maratona", Capacity: 30, StartsAt: time.Now().Add(time.Hour), ClubID: clubID,
		})
		require.NoError(t, err)

		detail, err := env.service.GetClubByID(ctx, clubID)
		require.NoError(t, err)
		require.Len(t, detail.Events, 1)
		assert.Equal(t, 30, detail.Events[0].RemainingCapacity)
	})

	t.Run("unknown club", func(t *testing.T) {
		env := newClubEnv()
		_, err := env.service.GetClubByID(ctx, 123)
		assert.ErrorIs(t, err, apperrors.ErrClubNotFound)
	})
}
