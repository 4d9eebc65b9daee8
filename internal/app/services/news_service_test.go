package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubeativo/backend/internal/app/models"
	"github.com/clubeativo/backend/internal/app/models/dto"
	"github.com/clubeativo/backend/internal/app/services"
	"github.com/clubeativo/backend/internal/pkg/apperrors"
)

func newNewsEnv(t *testing.T) (services.NewsService, *fakeEventRepo, int64) {
	t.Helper()
	ctx := context.Background()

	clubRepo := newFakeClubRepo()
	eventRepo := newFakeEventRepo(clubRepo)
	newsRepo := newFakeNewsRepo(eventRepo)

	clubID, err := clubRepo.Create(ctx, &models.Club{Name: "Robótica", Category: "tecnologia"})
	require.NoError(t, err)
	eventID, err := eventRepo.Create(ctx, &models.Event{
		Title: "Maratona", Capacity: 30, StartsAt: time.Now().Add(time.Hour), ClubID: clubID,
	})
	require.NoError(t, err)

	return services.NewNewsService(newsRepo, eventRepo), eventRepo, eventID
}

func TestNewsService_CreateNews(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes linked to an event", func(t *testing.T) {
		service, _, eventID := newNewsEnv(t)

		item, err := service.CreateNews(ctx, &dto.CreateNewsRequest{
			Title: "Inscrições abertas", Content: "Garanta a sua vaga.", EventID: &eventID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Maratona", item.EventTitle)
	})

	t.Run("publishes without an event", func(t *testing.T) {
		service, _, _ := newNewsEnv(t)

		item, err := service.CreateNews(ctx, &dto.CreateNewsRequest{Title: "Aviso geral", Content: "c"})
		require.NoError(t, err)
		assert.Nil(t, item.EventID)
		assert.Empty(t, item.EventTitle)
	})

	t.Run("rejects unknown event", func(t *testing.T) {
		service, _, _ := newNewsEnv(t)

		bad := int64(999)
		_, err := service.CreateNews(ctx, &dto.CreateNewsRequest{Title: "t", Content: "c", EventID: &bad})
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		service, _, _ := newNewsEnv(t)

		_, err := service.CreateNews(ctx, &dto.CreateNewsRequest{Title: "  ", Content: "c"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestNewsService_GetNews(t *testing.T) {
	ctx := context.Background()

	t.Run("lists newest first", func(t *testing.T) {
		service, _, _ := newNewsEnv(t)

		for i := 1; i <= 3; i++ {
			_, err := service.CreateNews(ctx, &dto.CreateNewsRequest{
				Title: fmt.Sprintf("Notícia %d", i), Content: "c",
			})
			require.NoError(t, err)
		}

		list, err := service.GetNews(ctx, 1, 10)
		require.NoError(t, err)
		require.Len(t, list.News, 3)
		assert.Equal(t, "Notícia 3", list.News[0].Title)
		assert.Equal(t, "Notícia 1", list.News[2].Title)
	})

	t.Run("unknown item", func(t *testing.T) {
		service, _, _ := newNewsEnv(t)
		_, err := service.GetNewsByID(ctx, 77)
		assert.ErrorIs(t, err, apperrors.ErrNewsNotFound)
	})
}
