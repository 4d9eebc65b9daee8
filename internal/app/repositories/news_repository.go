package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubeativo/backend/internal/app/models"
	"github.com/clubeativo/backend/internal/pkg/apperrors"
	"github.com/clubeativo/backend/internal/pkg/dberrors"
)

// NewsRepository handles news item database operations
type NewsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a news item and returns its ID.
func (r *NewsRepository) Create(ctx context.Context, item *models.NewsItem) (int64, error) {
	sql, args, err := r.sb.Insert("news").
		Columns("title", "content", "event_id").
		Values(item.Title, item.Content, item.EventID).
		Suffix("RETURNING id, published_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id, &item.PublishedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrEventNotFound
		}
		return 0, fmt.Errorf("error creating news item: %w", err)
	}

	return id, nil
}

// GetByID retrieves a news item, including its event title when linked.
func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*models.NewsItem, string, error) {
	sql, args, err := r.sb.Select(
		"n.id", "n.title", "n.content", "n.published_at", "n.event_id",
		"COALESCE(e.title, '')").
		From("news n").
		LeftJoin("events e ON e.id = n.event_id").
		Where(squirrel.Eq{"n.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, "", fmt.Errorf("error building SQL: %w", err)
	}

	item := &models.NewsItem{}
	var eventTitle string
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&item.ID, &item.Title, &item.Content, &item.PublishedAt, &item.EventID, &eventTitle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.ErrNewsNotFound
		}
		return nil, "", fmt.Errorf("error executing query: %w", err)
	}

	return item, eventTitle, nil
}

// List returns news items newest first, with event titles when linked.
func (r *NewsRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.NewsItem, map[int64]string, error) {
	sql, args, err := r.sb.Select(
		"n.id", "n.title", "n.content", "n.published_at", "n.event_id",
		"COALESCE(e.title, '')").
		From("news n").
		LeftJoin("events e ON e.id = n.event_id").
		OrderBy("n.published_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var items []*models.NewsItem
	eventTitles := make(map[int64]string)
	for rows.Next() {
		item := &models.NewsItem{}
		var eventTitle string
		if err := rows.Scan(&item.ID, &item.Title, &item.Content, &item.PublishedAt, &item.EventID, &eventTitle); err != nil {
			return nil, nil, fmt.Errorf("error scanning row: %w", err)
		}
		if eventTitle != "" {
			eventTitles[item.ID] = eventTitle
		}
		items = append(items, item)
	}

	return items, eventTitles, nil
}

// Count returns the total number of news items.
func (r *NewsRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM news").Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting news items: %w", err)
	}
	return count, nil
}
