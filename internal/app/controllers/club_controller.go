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

// ClubController handles club and membership operations
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{clubService: clubService}
}

// GetClubs handles the public club listing
// @Summary List clubs
// @Description Retrieves clubs with optional category and search filters, paginated
// @Tags clubs
// @Produce json
// @Param category query string false "Filter by category"
// @Param search query string false "Search by name"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size (default: 10, max: 100)" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.ClubListResponse} "Clubs retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clubs [get]
func (c *ClubController) GetClubs(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	filter := &dto.ClubFilterRequest{Page: page, PageSize: pageSize}
	if category := ctx.Query("category"); category != "" {
		filter.Category = &category
	}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}

	response, err := c.clubService.GetClubs(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetClubByID handles retrieving a single club
// @Summary Get club by ID
// @Description Retrieves a club with its events and member count
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClubDetailResponse} "Club retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid club ID"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clubs/{id} [get]
func (c *ClubController) GetClubByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid club ID")
	if !ok {
		return
	}

	club, err := c.clubService.GetClubByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(club))
}

// CreateClub handles club creation
// @Summary Create a club
// @Description Creates a club with a unique name
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClubRequest true "Club payload"
// @Success 201 {object} dto.APIResponse{data=dto.ClubResponse} "Club created"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Club name already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clubs [post]
func (c *ClubController) CreateClub(ctx *gin.Context) {
	var req dto.CreateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	club, err := c.clubService.CreateClub(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(club))
}

// JoinClub handles club membership creation
// @Summary Join a club
// @Description Adds the authenticated user to the club's members
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Joined"
// @Failure 400 {object} dto.ErrorResponse "Invalid club ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Failure 409 {object} dto.ErrorResponse "Already a member"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clubs/{id}/members [post]
func (c *ClubController) JoinClub(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid club ID")
	if !ok {
		return
	}

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.clubService.JoinClub(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Joined club"}))
}

// LeaveClub handles club membership removal
// @Summary Leave a club
// @Description Removes the authenticated user from the club's members
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Left"
// @Failure 400 {object} dto.ErrorResponse "Invalid club ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Club not found or not a member"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clubs/{id}/members [delete]
func (c *ClubController) LeaveClub(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid club ID")
	if !ok {
		return
	}

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.clubService.LeaveClub(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Left club"}))
}

// GetClubMembers handles the club member listing
// @Summary List club members
// @Description Retrieves the members of a club
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ClubMemberResponse} "Members retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid club ID"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clubs/{id}/members [get]
func (c *ClubController) GetClubMembers(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid club ID")
	if !ok {
		return
	}

	members, err := c.clubService.GetClubMembers(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members))
}

// parseIDParam parses a numeric path parameter, writing a 400 response
// on failure.
func parseIDParam(ctx *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
		errorDetail = errorDetail.WithDetails("Path parameter must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
