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

// NewsService defines news publishing and listing operations.
type NewsService interface {
	GetNews(ctx context.Context, page, pageSize int) (*dto.NewsListResponse, error)
	GetNewsByID(ctx context.Context, id int64) (*dto.NewsResponse, error)
	CreateNews(ctx context.Context, req *dto.CreateNewsRequest) (*dto.NewsResponse, error)
}

type newsService struct {
	newsRepo  INewsRepository
	eventRepo IEventRepository
}

// NewNewsService creates a new news service.
func NewNewsService(newsRepo INewsRepository, eventRepo IEventRepository) NewsService {
	return &newsService{
		newsRepo:  newsRepo,
		eventRepo: eventRepo,
	}
}

// GetNews returns a paginated news listing, newest first.
func (s *newsService) GetNews(ctx context.Context, page, pageSize int) (*dto.NewsListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	items, eventTitles, err := s.newsRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}

	total, err := s.newsRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count news: %w", err)
	}

	responses := make([]dto.NewsResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, mapNewsToResponse(item, eventTitles[item.ID]))
	}

	return &dto.NewsListResponse{
		News:           responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// GetNewsByID returns a single news item.
func (s *newsService) GetNewsByID(ctx context.Context, id int64) (*dto.NewsResponse, error) {
	item, eventTitle, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := mapNewsToResponse(item, eventTitle)
	return &response, nil
}

// CreateNews publishes a news item, optionally linked to an event.
func (s *newsService) CreateNews(ctx context.Context, req *dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("news title is required")
	}

	eventTitle := ""
	if req.EventID != nil {
		event, err := s.eventRepo.GetByID(ctx, *req.EventID)
		if err != nil {
			return nil, err
		}
		eventTitle = event.Title
	}

	item := &models.NewsItem{
		Title:   title,
		Content: req.Content,
		EventID: req.EventID,
	}

	id, err := s.newsRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id

	logger.Info().Int64("newsId", id).Msg("News item published")

	response := mapNewsToResponse(item, eventTitle)
	return &response, nil
}

func mapNewsToResponse(item *models.NewsItem, eventTitle string) dto.NewsResponse {
	return dto.NewsResponse{
		ID:          item.ID,
		Title:       item.Title,
		Content:     item.Content,
		PublishedAt: item.PublishedAt,
		EventID:     item.EventID,
		EventTitle:  eventTitle,
	}
}
