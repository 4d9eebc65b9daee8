package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/clubeativo/backend/internal/app/models"
)

// Repository contracts consumed by the service layer. The concrete
// implementations live in the repositories package; tests substitute
// in-memory fakes.

// IUserRepository defines user persistence operations.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByStudentID(ctx context.Context, studentID string) (*models.User, error)
	StudentIDExists(ctx context.Context, studentID string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateImageFile(ctx context.Context, userID int64, imageFile string) error
}

// ITokenRepository defines refresh token persistence operations.
type ITokenRepository interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (userID int64, expiryDate time.Time, isRevoked bool, err error)
	RevokeToken(ctx context.Context, token string) error
}

// IClubRepository defines club persistence operations.
type IClubRepository interface {
	Create(ctx context.Context, club *models.Club) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Club, error)
	GetAll(ctx context.Context, category, search *string, offset uint64, limit int) ([]*models.Club, error)
	Count(ctx context.Context, category, search *string) (int64, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Club, error)
}

// IMembershipRepository defines club membership association operations.
type IMembershipRepository interface {
	IsMember(ctx context.Context, clubID, userID int64) (bool, error)
	AddMember(ctx context.Context, clubID, userID int64) error
	RemoveMember(ctx context.Context, clubID, userID int64) error
	CountByClubID(ctx context.Context, clubID int64) (int, error)
	CountsByClubIDs(ctx context.Context, clubIDs []int64) (map[int64]int, error)
	GetClubIDsByUserID(ctx context.Context, userID int64) ([]int64, error)
	GetMembersByClubID(ctx context.Context, clubID int64) ([]*models.ClubMember, error)
}

// IEventRepository defines event persistence operations.
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context, clubID *int64, search *string, offset uint64, limit int) ([]*models.Event, error)
	Count(ctx context.Context, clubID *int64, search *string) (int64, error)
	GetByClubID(ctx context.Context, clubID int64) ([]*models.Event, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Event, error)
}

// IEnrollmentRepository defines event enrollment association operations.
type IEnrollmentRepository interface {
	Exists(ctx context.Context, eventID, userID int64) (bool, error)
	CountByEventID(ctx context.Context, eventID int64) (int, error)
	CountsByEventIDs(ctx context.Context, eventIDs []int64) (map[int64]int, error)
	Enroll(ctx context.Context, eventID, userID int64) error
	Unenroll(ctx context.Context, eventID, userID int64) error
	GetEventIDsByUserID(ctx context.Context, userID int64) ([]int64, error)
	GetEnrollmentsByEventID(ctx context.Context, eventID int64) ([]*models.Enrollment, error)
}

// IForumRepository defines forum persistence operations.
type IForumRepository interface {
	CreateTopic(ctx context.Context, topic *models.ForumTopic) (int64, error)
	GetTopicByID(ctx context.Context, id int64) (*models.ForumTopic, error)
	ListTopics(ctx context.Context, offset uint64, limit int) ([]*models.ForumTopic, error)
	CountTopics(ctx context.Context) (int64, error)
	CreatePost(ctx context.Context, post *models.ForumPost) (int64, error)
	GetPostsByTopicID(ctx context.Context, topicID int64) ([]*models.ForumPost, error)
	PostCountsByTopicIDs(ctx context.Context, topicIDs []int64) (map[int64]int, error)
}

// INewsRepository defines news persistence operations.
type INewsRepository interface {
	Create(ctx context.Context, item *models.NewsItem) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.NewsItem, string, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.NewsItem, map[int64]string, error)
	Count(ctx context.Context) (int64, error)
}

// ImageStorage stores uploaded profile images.
type ImageStorage interface {
	SaveProfileImage(fileHeader *multipart.FileHeader, studentID string) (string, error)
}
