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

// MembershipRepository handles the club_members association table. Club
// membership is an explicit association entity, looked up by user or by
// club, never traversed through an object graph.
type MembershipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// IsMember checks if a user belongs to a club.
func (r *MembershipRepository) IsMember(ctx context.Context, clubID, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("club_members").
		Where(squirrel.Eq{"club_id": clubID, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}

// AddMember adds a user to a club. The composite primary key rejects a
// second row for the same pair.
func (r *MembershipRepository) AddMember(ctx context.Context, clubID, userID int64) error {
	sql, args, err := r.sb.Insert("club_members").
		Columns("club_id", "user_id").
		Values(clubID, userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyMember
		}
		return fmt.Errorf("error adding member: %w", err)
	}

	return nil
}

// RemoveMember removes a user from a club.
func (r *MembershipRepository) RemoveMember(ctx context.Context, clubID, userID int64) error {
	sql, args, err := r.sb.Delete("club_members").
		Where(squirrel.Eq{"club_id": clubID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error removing member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotMember
	}

	return nil
}

// CountByClubID returns the number of members of one club.
func (r *MembershipRepository) CountByClubID(ctx context.Context, clubID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("club_members").
		Where(squirrel.Eq{"club_id": clubID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return count, nil
}

// CountsByClubIDs returns member counts for multiple clubs in one query.
func (r *MembershipRepository) CountsByClubIDs(ctx context.Context, clubIDs []int64) (map[int64]int, error) {
	if len(clubIDs) == 0 {
		return make(map[int64]int), nil
	}

	sql, args, err := r.sb.Select("club_id", "COUNT(*)").
		From("club_members").
		Where(squirrel.Eq{"club_id": clubIDs}).
		GroupBy("club_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var clubID int64
		var count int
		if err := rows.Scan(&clubID, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		counts[clubID] = count
	}

	return counts, nil
}

// GetClubIDsByUserID returns the clubs a user belongs to.
func (r *MembershipRepository) GetClubIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("club_id").
		From("club_members").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("joined_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var clubIDs []int64
	for rows.Next() {
		var clubID int64
		if err := rows.Scan(&clubID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		clubIDs = append(clubIDs, clubID)
	}

	return clubIDs, nil
}

// GetMembersByClubID returns the members of a club with their join dates,
// most recent first.
func (r *MembershipRepository) GetMembersByClubID(ctx context.Context, clubID int64) ([]*models.ClubMember, error) {
	sql, args, err := r.sb.Select(
		"cm.club_id", "cm.user_id", "cm.joined_at",
		"u.id", "u.student_id", "u.image_file").
		From("club_members cm").
		Join("users u ON u.id = cm.user_id").
		Where(squirrel.Eq{"cm.club_id": clubID}).
		OrderBy("cm.joined_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var members []*models.ClubMember
	for rows.Next() {
		member := &models.ClubMember{User: &models.User{}}
		if err := rows.Scan(
			&member.ClubID, &member.UserID, &member.JoinedAt,
			&member.User.ID, &member.User.StudentID, &member.User.ImageFile); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}
