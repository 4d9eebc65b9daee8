package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubeativo/backend/internal/app/models/dto"
	"github.com/clubeativo/backend/internal/app/services"
	"github.com/clubeativo/backend/internal/middleware"
	"github.com/clubeativo/backend/internal/pkg/helpers"
)

// ForumController handles discussion forum operations
type ForumController struct {
	forumService services.ForumService
}

// NewForumController creates a new ForumController
func NewForumController(forumService services.ForumService) *ForumController {
	return &ForumController{forumService: forumService}
}

// GetTopics handles the topic listing
// @Summary List forum topics
// @Description Retrieves topics ordered newest first, paginated
// @Tags forum
// @Produce json
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size (default: 10, max: 100)" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.TopicListResponse} "Topics retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forum/topics [get]
func (c *ForumController) GetTopics(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	response, err := c.forumService.GetTopics(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetTopicByID handles retrieving a topic with its posts
// @Summary Get topic by ID
// @Description Retrieves a topic with its posts ordered oldest first
// @Tags forum
// @Produce json
// @Param id path int true "Topic ID"
// @Success 200 {object} dto.APIResponse{data=dto.TopicDetailResponse} "Topic retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid topic ID"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forum/topics/{id} [get]
func (c *ForumController) GetTopicByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid topic ID")
	if !ok {
		return
	}

	topic, err := c.forumService.GetTopicByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(topic))
}

// CreateTopic handles topic creation
// @Summary Open a forum topic
// @Description Creates a topic authored by the authenticated user
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTopicRequest true "Topic payload"
// @Success 201 {object} dto.APIResponse{data=dto.TopicResponse} "Topic created"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forum/topics [post]
func (c *ForumController) CreateTopic(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	topic, err := c.forumService.CreateTopic(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(topic))
}

// CreatePost handles replying within a topic
// @Summary Reply to a topic
// @Description Adds a post to an existing topic
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Param request body dto.CreatePostRequest true "Post payload"
// @Success 201 {object} dto.APIResponse{data=dto.PostResponse} "Post created"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forum/topics/{id}/posts [post]
func (c *ForumController) CreatePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid topic ID")
	if !ok {
		return
	}

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	post, err := c.forumService.CreatePost(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}
