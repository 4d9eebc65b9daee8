package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clubeativo/backend/internal/app/models/dto"
	"github.com/clubeativo/backend/internal/app/services"
	"github.com/clubeativo/backend/internal/middleware"
	"github.com/clubeativo/backend/internal/pkg/helpers"
)

// EventController handles event and enrollment operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// GetEvents handles the public event listing
// @Summary List events
// @Description Retrieves events ordered by start time with live remaining capacity
// @Tags events
// @Produce json
// @Param clubId query int false "Filter by club ID"
// @Param search query string false "Search by title"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size (default: 10, max: 100)" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse} "Events retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [get]
func (c *EventController) GetEvents(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	filter := &dto.EventFilterRequest{Page: page, PageSize: pageSize}
	if clubIDStr := ctx.Query("clubId"); clubIDStr != "" {
		if clubID, err := strconv.ParseInt(clubIDStr, 10, 64); err == nil {
			filter.ClubID = &clubID
		}
	}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}

	response, err := c.eventService.GetEvents(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetEventByID handles retrieving a single event
// @Summary Get event by ID
// @Description Retrieves an event. When called with a valid token the response reports whether the caller is enrolled.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventDetailResponse} "Event retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid event ID")
	if !ok {
		return
	}

	var userIDPtr *int64
	if userID, ok := middleware.GetUserID(ctx); ok {
		userIDPtr = &userID
	}

	event, err := c.eventService.GetEventByID(ctx, id, userIDPtr)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// CreateEvent handles event creation
// @Summary Create an event
// @Description Creates an event under an existing club with a fixed seat capacity
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event payload"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Event created"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	event, err := c.eventService.CreateEvent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event))
}

// Enroll handles event enrollment
// @Summary Enroll in an event
// @Description Registers the authenticated user for the event while a seat remains
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrolled"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled or no seats remaining"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id}/enrollments [post]
func (c *EventController) Enroll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid event ID")
	if !ok {
		return
	}

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollment, err := c.eventService.Enroll(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(enrollment))
}

// Unenroll handles enrollment cancellation
// @Summary Cancel an enrollment
// @Description Removes the authenticated user's enrollment, freeing the seat
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Enrollment cancelled"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Event not found or not enrolled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id}/enrollments [delete]
func (c *EventController) Unenroll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid event ID")
	if !ok {
		return
	}

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.eventService.Unenroll(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Enrollment cancelled"}))
}

// GetEnrollments handles the enrollment listing for an event
// @Summary List event enrollments
// @Description Retrieves the users enrolled in an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ClubMemberResponse} "Enrollments retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id}/enrollments [get]
func (c *EventController) GetEnrollments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid event ID")
	if !ok {
		return
	}

	enrollments, err := c.eventService.GetEnrollments(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollments))
}
