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

// EventService defines event listing and enrollment operations.
type EventService interface {
	GetEvents(ctx context.Context, filter *dto.EventFilterRequest) (*dto.EventListResponse, error)
	GetEventByID(ctx context.Context, id int64, userID *int64) (*dto.EventDetailResponse, error)
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	Enroll(ctx context.Context, eventID, userID int64) (*dto.EnrollmentResponse, error)
	Unenroll(ctx context.Context, eventID, userID int64) error
	GetEnrollments(ctx context.Context, eventID int64) ([]dto.ClubMemberResponse, error)
}

type eventService struct {
	eventRepo      IEventRepository
	enrollmentRepo IEnrollmentRepository
	clubRepo       IClubRepository
}

// NewEventService creates a new event service.
func NewEventService(eventRepo IEventRepository, enrollmentRepo IEnrollmentRepository, clubRepo IClubRepository) EventService {
	return &eventService{
		eventRepo:      eventRepo,
		enrollmentRepo: enrollmentRepo,
		clubRepo:       clubRepo,
	}
}

// GetEvents returns a paginated event listing ordered by start time.
// Remaining capacity is derived from the live enrollment counts.
func (s *eventService) GetEvents(ctx context.Context, filter *dto.EventFilterRequest) (*dto.EventListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	events, err := s.eventRepo.GetAll(ctx, filter.ClubID, filter.Search, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	total, err := s.eventRepo.Count(ctx, filter.ClubID, filter.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	ids := make([]int64, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}
	counts, err := s.enrollmentRepo.CountsByEventIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, mapEventToResponse(event, counts[event.ID]))
	}

	return &dto.EventListResponse{
		Events:         responses,
		PaginationInfo: helpers.NewPaginationInfo(total, filter.Page, limit),
	}, nil
}

// GetEventByID returns a single event. When userID is set the response
// also reports whether that user is enrolled.
func (s *eventService) GetEventByID(ctx context.Context, id int64, userID *int64) (*dto.EventDetailResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.enrollmentRepo.CountByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}

	enrolled := false
	if userID != nil {
		enrolled, err = s.enrollmentRepo.Exists(ctx, id, *userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check enrollment: %w", err)
		}
	}

	return &dto.EventDetailResponse{
		EventResponse: mapEventToResponse(event, count),
		Enrolled:      enrolled,
	}, nil
}

// CreateEvent creates an event under an existing club.
func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("event title is required")
	}
	if req.Capacity < 0 {
		return nil, apperrors.NewValidationError("capacity cannot be negative")
	}

	if _, err := s.clubRepo.GetByID(ctx, req.ClubID); err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Capacity:    req.Capacity,
		StartsAt:    req.StartsAt,
		ClubID:      req.ClubID,
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = id

	logger.Info().Int64("eventId", id).Int64("clubId", event.ClubID).Msg("Event created")

	response := mapEventToResponse(event, 0)
	return &response, nil
}

// Enroll registers the user for the event. Enrollment is rejected when
// the user is already enrolled or no seats remain. The final capacity
// check runs inside the repository transaction so concurrent enrollments
// cannot oversubscribe an event.
func (s *eventService) Enroll(ctx context.Context, eventID, userID int64) (*dto.EnrollmentResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if enrolled {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	count, err := s.enrollmentRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}
	if event.RemainingCapacity(count) <= 0 {
		return nil, apperrors.ErrCapacityExhausted
	}

	if err := s.enrollmentRepo.Enroll(ctx, eventID, userID); err != nil {
		return nil, err
	}

	logger.Info().Int64("eventId", eventID).Int64("userId", userID).Msg("User enrolled in event")

	count, err = s.enrollmentRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}

	return &dto.EnrollmentResponse{
		EventID:           eventID,
		RemainingCapacity: event.RemainingCapacity(count),
	}, nil
}

// Unenroll removes the user's enrollment, freeing the seat.
func (s *eventService) Unenroll(ctx context.Context, eventID, userID int64) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return err
	}

	if err := s.enrollmentRepo.Unenroll(ctx, eventID, userID); err != nil {
		return err
	}

	logger.Debug().Int64("eventId", eventID).Int64("userId", userID).Msg("User unenrolled from event")
	return nil
}

// GetEnrollments lists the users enrolled in an event.
func (s *eventService) GetEnrollments(ctx context.Context, eventID int64) ([]dto.ClubMemberResponse, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.GetEnrollmentsByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}

	responses := make([]dto.ClubMemberResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		responses = append(responses, dto.ClubMemberResponse{
			User:     mapUserToSummary(enrollment.User),
			JoinedAt: enrollment.EnrolledAt,
		})
	}
	return responses, nil
}

func mapEventToResponse(event *models.Event, enrolledCount int) dto.EventResponse {
	response := dto.EventResponse{
		ID:                event.ID,
		Title:             event.Title,
		Description:       event.Description,
		Capacity:          event.Capacity,
		RemainingCapacity: event.RemainingCapacity(enrolledCount),
		StartsAt:          event.StartsAt,
		ClubID:            event.ClubID,
	}
	if event.Club != nil {
		response.ClubName = event.Club.Name
	}
	return response
}
