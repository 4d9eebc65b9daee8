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

// ForumRepository handles forum topic and post database operations
type ForumRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewForumRepository creates a new ForumRepository
func NewForumRepository(db *pgxpool.Pool) *ForumRepository {
	return &ForumRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateTopic inserts a new topic and returns its ID.
func (r *ForumRepository) CreateTopic(ctx context.Context, topic *models.ForumTopic) (int64, error) {
	sql, args, err := r.sb.Insert("forum_topics").
		Columns("title", "content", "user_id").
		Values(topic.Title, topic.Content, topic.UserID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id, &topic.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error creating topic: %w", err)
	}

	return id, nil
}

// GetTopicByID retrieves a topic with its author.
func (r *ForumRepository) GetTopicByID(ctx context.Context, id int64) (*models.ForumTopic, error) {
	sql, args, err := r.sb.Select(
		"t.id", "t.title", "t.content", "t.created_at", "t.user_id",
		"u.id", "u.student_id", "u.image_file").
		From("forum_topics t").
		Join("users u ON u.id = t.user_id").
		Where(squirrel.Eq{"t.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	topic := &models.ForumTopic{Author: &models.User{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&topic.ID, &topic.Title, &topic.Content, &topic.CreatedAt, &topic.UserID,
		&topic.Author.ID, &topic.Author.StudentID, &topic.Author.ImageFile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTopicNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return topic, nil
}

// ListTopics lists topics with their authors, newest first.
func (r *ForumRepository) ListTopics(ctx context.Context, offset uint64, limit int) ([]*models.ForumTopic, error) {
	sql, args, err := r.sb.Select(
		"t.id", "t.title", "t.content", "t.created_at", "t.user_id",
		"u.id", "u.student_id", "u.image_file").
		From("forum_topics t").
		Join("users u ON u.id = t.user_id").
		OrderBy("t.created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var topics []*models.ForumTopic
	for rows.Next() {
		topic := &models.ForumTopic{Author: &models.User{}}
		if err := rows.Scan(
			&topic.ID, &topic.Title, &topic.Content, &topic.CreatedAt, &topic.UserID,
			&topic.Author.ID, &topic.Author.StudentID, &topic.Author.ImageFile); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		topics = append(topics, topic)
	}

	return topics, nil
}

// CountTopics returns the total number of topics.
func (r *ForumRepository) CountTopics(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM forum_topics").Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting topics: %w", err)
	}
	return count, nil
}

// CreatePost inserts a new post under a topic and returns its ID.
func (r *ForumRepository) CreatePost(ctx context.Context, post *models.ForumPost) (int64, error) {
	sql, args, err := r.sb.Insert("forum_posts").
		Columns("content", "user_id", "topic_id").
		Values(post.Content, post.UserID, post.TopicID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id, &post.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrTopicNotFound
		}
		return 0, fmt.Errorf("error creating post: %w", err)
	}

	return id, nil
}

// GetPostsByTopicID lists a topic's posts with their authors, oldest first.
func (r *ForumRepository) GetPostsByTopicID(ctx context.Context, topicID int64) ([]*models.ForumPost, error) {
	sql, args, err := r.sb.Select(
		"p.id", "p.content", "p.created_at", "p.user_id", "p.topic_id",
		"u.id", "u.student_id", "u.image_file").
		From("forum_posts p").
		Join("users u ON u.id = p.user_id").
		Where(squirrel.Eq{"p.topic_id": topicID}).
		OrderBy("p.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var posts []*models.ForumPost
	for rows.Next() {
		post := &models.ForumPost{Author: &models.User{}}
		if err := rows.Scan(
			&post.ID, &post.Content, &post.CreatedAt, &post.UserID, &post.TopicID,
			&post.Author.ID, &post.Author.StudentID, &post.Author.ImageFile); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, nil
}

// PostCountsByTopicIDs returns post counts for multiple topics in one query.
func (r *ForumRepository) PostCountsByTopicIDs(ctx context.Context, topicIDs []int64) (map[int64]int, error) {
	if len(topicIDs) == 0 {
		return make(map[int64]int), nil
	}

	sql, args, err := r.sb.Select("topic_id", "COUNT(*)").
		From("forum_posts").
		Where(squirrel.Eq{"topic_id": topicIDs}).
		GroupBy("topic_id").
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
		var topicID int64
		var count int
		if err := rows.Scan(&topicID, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		counts[topicID] = count
	}

	return counts, nil
}
