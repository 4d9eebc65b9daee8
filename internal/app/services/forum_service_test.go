package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubeativo/backend/internal/app/models"
	"github.com/clubeativo/backend/internal/app/models/dto"
	"github.com/clubeativo/backend/internal/app/services"
	"github.com/clubeativo/backend/internal/pkg/apperrors"
)

func newForumEnv(t *testing.T) (services.ForumService, *fakeForumRepo, int64) {
	t.Helper()
	userRepo := newFakeUserRepo()
	forumRepo := newFakeForumRepo(userRepo)

	userID, err := userRepo.CreateUser(context.Background(), &models.User{
		StudentID: "202300112233", Email: "aluno@school.edu.br", Password: "hash",
	})
	require.NoError(t, err)

	return services.NewForumService(forumRepo), forumRepo, userID
}

func TestForumService_CreateTopic(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a topic with its author", func(t *testing.T) {
		service, _, userID := newForumEnv(t)

		topic, err := service.CreateTopic(ctx, userID, &dto.CreateTopicRequest{
			Title: "Caronas para sábado", Content: "Alguém vai de carro?",
		})
		require.NoError(t, err)
		assert.Equal(t, "Caronas para sábado", topic.Title)
		assert.Equal(t, "202300112233", topic.Author.StudentID)
		assert.Equal(t, 0, topic.PostCount)
	})

	t.Run("blank title or content is rejected", func(t *testing.T) {
		service, _, userID := newForumEnv(t)

		_, err := service.CreateTopic(ctx, userID, &dto.CreateTopicRequest{Title: "  ", Content: "c"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		_, err = service.CreateTopic(ctx, userID, &dto.CreateTopicRequest{Title: "t", Content: "  "})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestForumService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("replies to an existing topic", func(t *testing.T) {
		service, _, userID := newForumEnv(t)

		topic, err := service.CreateTopic(ctx, userID, &dto.CreateTopicRequest{Title: "t", Content: "c"})
		require.NoError(t, err)

		post, err := service.CreatePost(ctx, topic.ID, userID, &dto.CreatePostRequest{Content: "Eu vou!"})
		require.NoError(t, err)
		assert.Equal(t, "Eu vou!", post.Content)
		assert.Equal(t, "202300112233", post.Author.StudentID)
	})

	t.Run("unknown topic", func(t *testing.T) {
		service, _, userID := newForumEnv(t)

		_, err := service.CreatePost(ctx, 999, userID, &dto.CreatePostRequest{Content: "c"})
		assert.ErrorIs(t, err, apperrors.ErrTopicNotFound)
	})

	t.Run("blank content is rejected", func(t *testing.T) {
		service, _, userID := newForumEnv(t)

		topic, err := service.CreateTopic(ctx, userID, &dto.CreateTopicRequest{Title: "t", Content: "c"})
		require.NoError(t, err)

		_, err = service.CreatePost(ctx, topic.ID, userID, &dto.CreatePostRequest{Content: "   "})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestForumService_Ordering(t *testing.T) {
	ctx := context.Background()

	t.Run("topics list newest first", func(t *testing.T) {
		service, _, userID := newForumEnv(t)

		for i := 1; i <= 3; i++ {
			_, err := service.CreateTopic(ctx, userID, &dto.CreateTopicRequest{
				Title: fmt.Sprintf("Tópico %d", i), Content: "c",
			})
			require.NoError(t, err)
		}

		list, err := service.GetTopics(ctx, 1, 10)
		require.NoError(t, err)
		require.Len(t, list.Topics, 3)
		assert.Equal(t, "Tópico 3", list.Topics[0].Title)
		assert.Equal(t, "Tópico 1", list.Topics[2].Title)
	})

	t.Run("posts list oldest first", func(t *testing.T) {
		service, _, userID := newForumEnv(t)

		topic, err := service.CreateTopic(ctx, userID, &dto.CreateTopicRequest{Title: "t", Content: "c"})
		require.NoError(t, err)

		for i := 1; i <= 3; i++ {
			_, err := service.CreatePost(ctx, topic.ID, userID, &dto.CreatePostRequest{
				Content: fmt.Sprintf("Resposta %d", i),
			})
			require.NoError(t, err)
		}

		detail, err := service.GetTopicByID(ctx, topic.ID)
		require.NoError(t, err)
		require.Len(t, detail.Posts, 3)
		assert.Equal(t, "Resposta 1", detail.Posts[0].Content)
		assert.Equal(t, "Resposta 3", detail.Posts[2].Content)
		assert.Equal(t, 3, detail.PostCount)
	})

	t.Run("post counts populate the listing", func(t *testing.T) {
		service, _, userID := newForumEnv(t)

		quiet, err := service.CreateTopic(ctx, userID, &dto.CreateTopicRequest{Title: "quieto", Content: "c"})
		require.NoError(t, err)
		busy, err := service.CreateTopic(ctx, userID, &dto.CreateTopicRequest{Title: "movimentado", Content: "c"})
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			_, err := service.CreatePost(ctx, busy.ID, userID, &dto.CreatePostRequest{Content: "r"})
			require.NoError(t, err)
		}

		list, err := service.GetTopics(ctx, 1, 10)
		require.NoError(t, err)
		require.Len(t, list.Topics, 2)
		for _, topic := range list.Topics {
			switch topic.ID {
			case quiet.ID:
				assert.Equal(t, 0, topic.PostCount)
			case busy.ID:
				assert.Equal(t, 2, topic.PostCount)
			}
		}
	})
}
