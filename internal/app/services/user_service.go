package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/clubeativo/backend/internal/app/models/dto"
	"github.com/clubeativo/backend/internal/pkg/logger"
)

// UserService defines account operations.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.UserProfile, error)
	UpdateProfileImage(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*dto.UpdatePhotoResponse, error)
}

type userService struct {
	userRepo       IUserRepository
	clubRepo       IClubRepository
	membershipRepo IMembershipRepository
	eventRepo      IEventRepository
	enrollmentRepo IEnrollmentRepository
	storage        ImageStorage
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo IUserRepository,
	clubRepo IClubRepository,
	membershipRepo IMembershipRepository,
	eventRepo IEventRepository,
	enrollmentRepo IEnrollmentRepository,
	storage ImageStorage,
) UserService {
	return &userService{
		userRepo:       userRepo,
		clubRepo:       clubRepo,
		membershipRepo: membershipRepo,
		eventRepo:      eventRepo,
		enrollmentRepo: enrollmentRepo,
		storage:        storage,
	}
}

// GetProfile returns the user's account view including the clubs they
// belong to and the events they are enrolled in.
func (s *userService) GetProfile(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	clubIDs, err := s.membershipRepo.GetClubIDsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch memberships: %w", err)
	}
	clubs, err := s.clubRepo.GetByIDs(ctx, clubIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clubs: %w", err)
	}
	memberCounts, err := s.membershipRepo.CountsByClubIDs(ctx, clubIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	eventIDs, err := s.enrollmentRepo.GetEventIDsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enrollments: %w", err)
	}
	events, err := s.eventRepo.GetByIDs(ctx, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	enrollCounts, err := s.enrollmentRepo.CountsByEventIDs(ctx, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}

	clubResponses := make([]dto.ClubResponse, 0, len(clubs))
	for _, club := range clubs {
		clubResponses = append(clubResponses, mapClubToResponse(club, memberCounts[club.ID]))
	}

	eventResponses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		eventResponses = append(eventResponses, mapEventToResponse(event, enrollCounts[event.ID]))
	}

	return &dto.UserProfile{
		ID:        user.ID,
		StudentID: user.StudentID,
		Email:     user.Email,
		ImageFile: user.ImageFile,
		Clubs:     clubResponses,
		Events:    eventResponses,
	}, nil
}

// UpdateProfileImage stores the uploaded image and points the user's
// record at it. The previous file is left on disk.
func (s *userService) UpdateProfileImage(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*dto.UpdatePhotoResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	filename, err := s.storage.SaveProfileImage(fileHeader, user.StudentID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateImageFile(ctx, userID, filename); err != nil {
		return nil, err
	}

	logger.Info().Int64("userId", userID).Str("imageFile", filename).Msg("Profile image updated")

	return &dto.UpdatePhotoResponse{ImageFile: filename}, nil
}
