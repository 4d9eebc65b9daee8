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

// ClubRepository handles club database operations
type ClubRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository(db *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new club and returns its ID. Club names are unique.
func (r *ClubRepository) Create(ctx context.Context, club *models.Club) (int64, error) {
	sql, args, err := r.sb.Insert("clubs").
		Columns("name", "description", "category").
		Values(club.Name, club.Description, club.Category).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "clubs_name_key") {
			return 0, apperrors.ErrClubAlreadyExists
		}
		return 0, fmt.Errorf("error creating club: %w", err)
	}

	return id, nil
}

// GetByID retrieves a club by primary key.
func (r *ClubRepository) GetByID(ctx context.Context, id int64) (*models.Club, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "category", "created_at").
		From("clubs").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	club := &models.Club{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&club.ID, &club.Name, &club.Description, &club.Category, &club.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return club, nil
}

// GetAll lists clubs matching the optional category and search filters,
// ordered by name.
func (r *ClubRepository) GetAll(ctx context.Context, category, search *string, offset uint64, limit int) ([]*models.Club, error) {
	query := r.sb.Select("id", "name", "description", "category", "created_at").
		From("clubs").
		OrderBy("name ASC").
		Offset(offset).
		Limit(uint64(limit))

	if category != nil && *category != "" {
		query = query.Where(squirrel.Eq{"category": *category})
	}
	if search != nil && *search != "" {
		query = query.Where(squirrel.ILike{"name": "%" + *search + "%"})
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

	var clubs []*models.Club
	for rows.Next() {
		club := &models.Club{}
		if err := rows.Scan(&club.ID, &club.Name, &club.Description, &club.Category, &club.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		clubs = append(clubs, club)
	}

	return clubs, nil
}

// Count returns the number of clubs matching the filters.
func (r *ClubRepository) Count(ctx context.Context, category, search *string) (int64, error) {
	query := r.sb.Select("COUNT(*)").From("clubs")

	if category != nil && *category != "" {
		query = query.Where(squirrel.Eq{"category": *category})
	}
	if search != nil && *search != "" {
		query = query.Where(squirrel.ILike{"name": "%" + *search + "%"})
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

// GetByIDs retrieves clubs by primary keys, preserving no particular order.
func (r *ClubRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Club, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sql, args, err := r.sb.Select("id", "name", "description", "category", "created_at").
		From("clubs").
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

	var clubs []*models.Club
	for rows.Next() {
		club := &models.Club{}
		if err := rows.Scan(&club.ID, &club.Name, &club.Description, &club.Category, &club.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		clubs = append(clubs, club)
	}

	return clubs, nil
}

// IsEmpty reports whether the clubs table has no rows. Used by the seeder.
func (r *ClubRepository) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM clubs").Scan(&count); err != nil {
		return false, fmt.Errorf("error counting clubs: %w", err)
	}
	return count == 0, nil
}
