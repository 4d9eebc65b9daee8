package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubeativo/backend/internal/app/models"
	"github.com/clubeativo/backend/internal/app/models/dto"
	"github.com/clubeativo/backend/internal/pkg/apperrors"
	"github.com/clubeativo/backend/internal/pkg/helpers"
	"github.com/clubeativo/backend/internal/pkg/logger"
)

// ForumService defines discussion forum operations.
type ForumService interface {
	GetTopics(ctx context.Context, page, pageSize int) (*dto.TopicListResponse, error)
	GetTopicByID(ctx context.Context, id int64) (*dto.TopicDetailResponse, error)
	CreateTopic(ctx context.Context, userID int64, req *dto.CreateTopicRequest) (*dto.TopicResponse, error)
	CreatePost(ctx context.Context, topicID, userID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error)
}

type forumService struct {
	forumRepo IForumRepository
}

// NewForumService creates a new forum service.
func NewForumService(forumRepo IForumRepository) ForumService {
	return &forumService{forumRepo: forumRepo}
}

// GetTopics returns a paginated topic listing, newest first.
func (s *forumService) GetTopics(ctx context.Context, page, pageSize int) (*dto.TopicListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	topics, err := s.forumRepo.ListTopics(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	total, err := s.forumRepo.CountTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count topics: %w", err)
	}

	ids := make([]int64, 0, len(topics))
	for _, topic := range topics {
		ids = append(ids, topic.ID)
	}
	postCounts, err := s.forumRepo.PostCountsByTopicIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	responses := make([]dto.TopicResponse, 0, len(topics))
	for _, topic := range topics {
		responses = append(responses, mapTopicToResponse(topic, postCounts[topic.ID]))
	}

	return &dto.TopicListResponse{
		Topics:         responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// GetTopicByID returns a topic with its posts ordered oldest first.
func (s *forumService) GetTopicByID(ctx context.Context, id int64) (*dto.TopicDetailResponse, error) {
	topic, err := s.forumRepo.GetTopicByID(ctx, id)
	if err != nil {
		return nil, err
	}

	posts, err := s.forumRepo.GetPostsByTopicID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	postResponses := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		postResponses = append(postResponses, mapPostToResponse(post))
	}

	return &dto.TopicDetailResponse{
		TopicResponse: mapTopicToResponse(topic, len(posts)),
		Posts:         postResponses,
	}, nil
}

// CreateTopic opens a new discussion topic authored by the user.
func (s *forumService) CreateTopic(ctx context.Context, userID int64, req *dto.CreateTopicRequest) (*dto.TopicResponse, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" {
		return nil, apperrors.NewValidationError("topic title is required")
	}
	if content == "" {
		return nil, apperrors.NewValidationError("topic content is required")
	}

	topic := &models.ForumTopic{
		Title:   title,
		Content: content,
		UserID:  userID,
	}

	id, err := s.forumRepo.CreateTopic(ctx, topic)
	if err != nil {
		return nil, err
	}
	topic.ID = id

	logger.Info().Int64("topicId", id).Int64("userId", userID).Msg("Forum topic created")

	full, err := s.forumRepo.GetTopicByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := mapTopicToResponse(full, 0)
	return &response, nil
}

// CreatePost adds a reply to an existing topic.
func (s *forumService) CreatePost(ctx context.Context, topicID, userID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("post content is required")
	}

	if _, err := s.forumRepo.GetTopicByID(ctx, topicID); err != nil {
		return nil, err
	}

	post := &models.ForumPost{
		Content: content,
		UserID:  userID,
		TopicID: topicID,
	}

	id, err := s.forumRepo.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id

	logger.Debug().Int64("topicId", topicID).Int64("postId", id).Msg("Forum post created")

	posts, err := s.forumRepo.GetPostsByTopicID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload posts: %w", err)
	}
	for _, p := range posts {
		if p.ID == id {
			response := mapPostToResponse(p)
			return &response, nil
		}
	}

	response := mapPostToResponse(post)
	return &response, nil
}

func mapTopicToResponse(topic *models.ForumTopic, postCount int) dto.TopicResponse {
	return dto.TopicResponse{
		ID:        topic.ID,
		Title:     topic.Title,
		Content:   topic.Content,
		CreatedAt: topic.CreatedAt,
		Author:    mapUserToSummary(topic.Author),
		PostCount: postCount,
	}
}

func mapPostToResponse(post *models.ForumPost) dto.PostResponse {
	return dto.PostResponse{
		ID:        post.ID,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		Author:    mapUserToSummary(post.Author),
	}
}
