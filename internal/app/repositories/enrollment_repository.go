package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubeativo/backend/internal/app/models"
	"github.com/clubeativo/backend/internal/db"
	"github.com/clubeativo/backend/internal/pkg/apperrors"
	"github.com/clubeativo/backend/internal/pkg/dberrors"
)

// EnrollmentRepository handles the event_enrollments association table.
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Exists checks if an enrollment row exists for the (user, event) pair.
func (r *EnrollmentRepository) Exists(ctx context.Context, eventID, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("event_enrollments").
		Where(squirrel.Eq{"event_id": eventID, "user_id": userID}).
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

// CountByEventID returns the number of enrollments for one event.
func (r *EnrollmentRepository) CountByEventID(ctx context.Context, eventID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("event_enrollments").
		Where(squirrel.Eq{"event_id": eventID}).
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

// CountsByEventIDs returns enrollment counts for multiple events in one query.
func (r *EnrollmentRepository) CountsByEventIDs(ctx context.Context, eventIDs []int64) (map[int64]int, error) {
	if len(eventIDs) == 0 {
		return make(map[int64]int), nil
	}

	sql, args, err := r.sb.Select("event_id", "COUNT(*)").
		From("event_enrollments").
		Where(squirrel.Eq{"event_id": eventIDs}).
		GroupBy("event_id").
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
		var eventID int64
		var count int
		if err := rows.Scan(&eventID, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		counts[eventID] = count
	}

	return counts, nil
}

// Enroll atomically checks capacity and inserts an enrollment row. The event
// row is locked for the duration of the transaction so two concurrent
// requests cannot both pass the capacity check; the (user_id, event_id)
// primary key rejects duplicate enrollments that race past the service-level
// check.
func (r *EnrollmentRepository) Enroll(ctx context.Context, eventID, userID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var capacity int
		err := tx.QueryRow(ctx, "SELECT capacity FROM events WHERE id = $1 FOR UPDATE", eventID).Scan(&capacity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrEventNotFound
			}
			return fmt.Errorf("error locking event row: %w", err)
		}

		var enrolled int
		err = tx.QueryRow(ctx, "SELECT COUNT(*) FROM event_enrollments WHERE event_id = $1", eventID).Scan(&enrolled)
		if err != nil {
			return fmt.Errorf("error counting enrollments: %w", err)
		}

		if capacity-enrolled <= 0 {
			return apperrors.ErrCapacityExhausted
		}

		_, err = tx.Exec(ctx,
			"INSERT INTO event_enrollments (event_id, user_id) VALUES ($1, $2)",
			eventID, userID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrAlreadyEnrolled
			}
			return fmt.Errorf("error inserting enrollment: %w", err)
		}

		return nil
	})
}

// Unenroll removes the enrollment row for the (user, event) pair.
func (r *EnrollmentRepository) Unenroll(ctx context.Context, eventID, userID int64) error {
	sql, args, err := r.sb.Delete("event_enrollments").
		Where(squirrel.Eq{"event_id": eventID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error removing enrollment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotEnrolled
	}

	return nil
}

// GetEventIDsByUserID returns the events a user is enrolled in.
func (r *EnrollmentRepository) GetEventIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("event_id").
		From("event_enrollments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("enrolled_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var eventIDs []int64
	for rows.Next() {
		var eventID int64
		if err := rows.Scan(&eventID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		eventIDs = append(eventIDs, eventID)
	}

	return eventIDs, nil
}

// GetEnrollmentsByEventID returns the enrolled users of an event with their
// enrollment dates, earliest first.
func (r *EnrollmentRepository) GetEnrollmentsByEventID(ctx context.Context, eventID int64) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"en.event_id", "en.user_id", "en.enrolled_at",
		"u.id", "u.student_id", "u.image_file").
		From("event_enrollments en").
		Join("users u ON u.id = en.user_id").
		Where(squirrel.Eq{"en.event_id": eventID}).
		OrderBy("en.enrolled_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment := &models.Enrollment{User: &models.User{}}
		if err := rows.Scan(
			&enrollment.EventID, &enrollment.UserID, &enrollment.EnrolledAt,
			&enrollment.User.ID, &enrollment.User.StudentID, &enrollment.User.ImageFile); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}

	return enrollments, nil
}
