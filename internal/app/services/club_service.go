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

// ClubService defines club listing and membership operations.
type ClubService interface {
	GetClubs(ctx context.Context, filter *dto.ClubFilterRequest) (*dto.ClubListResponse, error)
	GetClubByID(ctx context.Context, id int64) (*dto.ClubDetailResponse, error)
	CreateClub(ctx context.Context, req *dto.CreateClubRequest) (*dto.ClubResponse, error)
	JoinClub(ctx context.Context, clubID, userID int64) error
	LeaveClub(ctx context.Context, clubID, userID int64) error
	GetClubMembers(ctx context.Context, clubID int64) ([]dto.ClubMemberResponse, error)
}

type clubService struct {
	clubRepo       IClubRepository
	membershipRepo IMembershipRepository
	eventRepo      IEventRepository
	enrollmentRepo IEnrollmentRepository
}

// NewClubService creates a new club service.
func NewClubService(clubRepo IClubRepository, membershipRepo IMembershipRepository, eventRepo IEventRepository, enrollmentRepo IEnrollmentRepository) ClubService {
	return &clubService{
		clubRepo:       clubRepo,
		membershipRepo: membershipRepo,
		eventRepo:      eventRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// GetClubs returns a paginated club listing with member counts.
func (s *clubService) GetClubs(ctx context.Context, filter *dto.ClubFilterRequest) (*dto.ClubListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	clubs, err := s.clubRepo.GetAll(ctx, filter.Category, filter.Search, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}

	total, err := s.clubRepo.Count(ctx, filter.Category, filter.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to count clubs: %w", err)
	}

	ids := make([]int64, 0, len(clubs))
	for _, club := range clubs {
		ids = append(ids, club.ID)
	}
	memberCounts, err := s.membershipRepo.CountsByClubIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	responses := make([]dto.ClubResponse, 0, len(clubs))
	for _, club := range clubs {
		responses = append(responses, mapClubToResponse(club, memberCounts[club.ID]))
	}

	return &dto.ClubListResponse{
		Clubs:          responses,
		PaginationInfo: helpers.NewPaginationInfo(total, filter.Page, limit),
	}, nil
}

// GetClubByID returns a single club with its events and member count.
func (s *clubService) GetClubByID(ctx context.Context, id int64) (*dto.ClubDetailResponse, error) {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	memberCount, err := s.membershipRepo.CountByClubID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	events, err := s.eventRepo.GetByClubID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list club events: %w", err)
	}

	eventIDs := make([]int64, 0, len(events))
	for _, event := range events {
		eventIDs = append(eventIDs, event.ID)
	}
	enrollCounts, err := s.enrollmentRepo.CountsByEventIDs(ctx, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}

	eventResponses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		eventResponses = append(eventResponses, mapEventToResponse(event, enrollCounts[event.ID]))
	}

	return &dto.ClubDetailResponse{
		ClubResponse: mapClubToResponse(club, memberCount),
		Events:       eventResponses,
	}, nil
}

// CreateClub creates a new club. Club names are unique.
func (s *clubService) CreateClub(ctx context.Context, req *dto.CreateClubRequest) (*dto.ClubResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("club name is required")
	}

	club := &models.Club{
		Name:        name,
		Description: req.Description,
		Category:    req.Category,
	}

	id, err := s.clubRepo.Create(ctx, club)
	if err != nil {
		return nil, err
	}
	club.ID = id

	logger.Info().Int64("clubId", id).Str("name", club.Name).Msg("Club created")

	response := mapClubToResponse(club, 0)
	return &response, nil
}

// JoinClub adds the user as a club member. Joining twice fails with
// ErrAlreadyMember.
func (s *clubService) JoinClub(ctx context.Context, clubID, userID int64) error {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return err
	}

	if err := s.membershipRepo.AddMember(ctx, clubID, userID); err != nil {
		return err
	}

	logger.Debug().Int64("clubId", clubID).Int64("userId", userID).Msg("User joined club")
	return nil
}

// LeaveClub removes the user's membership. Leaving a club the user is
// not a member of fails with ErrNotMember.
func (s *clubService) LeaveClub(ctx context.Context, clubID, userID int64) error {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return err
	}

	if err := s.membershipRepo.RemoveMember(ctx, clubID, userID); err != nil {
		return err
	}

	logger.Debug().Int64("clubId", clubID).Int64("userId", userID).Msg("User left club")
	return nil
}

// GetClubMembers lists the members of a club.
func (s *clubService) GetClubMembers(ctx context.Context, clubID int64) ([]dto.ClubMemberResponse, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	members, err := s.membershipRepo.GetMembersByClubID(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]dto.ClubMemberResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, dto.ClubMemberResponse{
			User:     mapUserToSummary(member.User),
			JoinedAt: member.JoinedAt,
		})
	}
	return responses, nil
}

func mapClubToResponse(club *models.Club, memberCount int) dto.ClubResponse {
	return dto.ClubResponse{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		Category:    club.Category,
		MemberCount: memberCount,
		CreatedAt:   club.CreatedAt,
	}
}

func mapUserToSummary(user *models.User) dto.UserSummary {
	if user == nil {
		return dto.UserSummary{}
	}
	return dto.UserSummary{
		ID:        user.ID,
		StudentID: user.StudentID,
		ImageFile: user.ImageFile,
	}
}
