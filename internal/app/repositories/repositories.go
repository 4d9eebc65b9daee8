package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	ClubRepository       *ClubRepository
	MembershipRepository *MembershipRepository
	EventRepository      *EventRepository
	EnrollmentRepository *EnrollmentRepository
	ForumRepository      *ForumRepository
	NewsRepository       *NewsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		ClubRepository:       NewClubRepository(db),
		MembershipRepository: NewMembershipRepository(db),
		EventRepository:      NewEventRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		ForumRepository:      NewForumRepository(db),
		NewsRepository:       NewNewsRepository(db),
	}
}
