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

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new event under a club and returns its ID.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	sql, args, err := r.sb.Insert("events").
		Columns("title", "description", "capacity", "starts_at", "club_id").
		Values(event.Title, event.Description, event.Capacity, event.StartsAt, event.ClubID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrClubNotFound
		}
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	return id, nil
}

// GetByID retrieves an event with its club name.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.sb.Select(
		"e.id", "e.title", "e.description", "e.capacity", "e.starts_at", "e.club_id", "e.created_at",
		"c.id", "c.name", "c.description", "c.category", "c.created_at").
		From("events e").
		Join("clubs c ON c.id = e.club_id").
		Where(squirrel.Eq{"e.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	event := &models.Event{Club: &models.Club{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&event.ID, &event.Title, &event.Description, &event.Capacity,
		&event.StartsAt, &event.ClubID, &event.CreatedAt,
		&event.Club.ID, &event.Club.Name, &event.Club.Description,
		&event.Club.Category, &event.Club.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return event, nil
}

// GetAll lists events with optional club filter and title search, soonest
// first.
func (r *EventRepository) GetAll(ctx context.Context, clubID *int64, search *string, offset uint64, limit int) ([]*models.Event, error) {
	query := r.sb.Select(
		"e.id", "e.title", "e.description", "e.capacity", "e.starts_at", "e.club_id", "e.created_at",
		"c.name").
		From("events e").
		Join("clubs c ON c.id = e.club_id").
		OrderBy("e.starts_at ASC").
		Offset(offset).
		Limit(uint64(limit))

	if clubID != nil && *clubID > 0 {
		query = query.Where(squirrel.Eq{"e.club_id": *clubID})
	}
	if search != nil && *search != "" {
		query = query.Where(squirrel.ILike{"e.title": "%" + *search + "%"})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{Club: &models.Club{}}
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.Capacity,
			&event.StartsAt, &event.ClubID, &event.CreatedAt,
			&event.Club.Name); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		event.Club.ID = event.ClubID
		events = append(events, event)
	}

	return events, nil
}

// Count returns the number of events matching the filters.
func (r *EventRepository) Count(ctx context.Context, clubID *int64, search *string) (int64, error) {
	query := r.sb.Select("COUNT(*)").From("events e")

	if clubID != nil && *clubID > 0 {
		query = query.Where(squirrel.Eq{"e.club_id": *clubID})
	}
	if search != nil && *search != "" {
		query = query.Where(squirrel.ILike{"e.title": "%" + *search + "%"})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return count, nil
}

// GetByClubID lists a club's events, soonest first.
func (r *EventRepository) GetByClubID(ctx context.Context, clubID int64) ([]*models.Event, error) {
	sql, args, err := r.sb.Select("id", "title", "description", "capacity", "starts_at", "club_id", "created_at").
		From("events").
		Where(squirrel.Eq{"club_id": clubID}).
		OrderBy("starts_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.Capacity,
			&event.StartsAt, &event.ClubID, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

// GetByIDs retrieves events by primary keys.
func (r *EventRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sql, args, err := r.sb.Select("id", "title", "description", "capacity", "starts_at", "club_id", "created_at").
		From("events").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.Capacity,
			&event.StartsAt, &event.ClubID, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}
