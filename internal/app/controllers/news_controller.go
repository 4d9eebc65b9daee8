package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubeativo/backend/internal/app/models/dto"
	"github.com/clubeativo/backend/internal/app/services"
	"github.com/clubeativo/backend/internal/middleware"
	"github.com/clubeativo/backend/internal/pkg/helpers"
)

// NewsController handles news operations
type NewsController struct {
	newsService services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService) *NewsController {
	return &NewsController{newsService: newsService}
}

// GetNews handles the news listing
// @Summary List news
// @Description Retrieves published news, newest first, paginated
// @Tags news
// @Produce json
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size (default: 10, max: 100)" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.NewsListResponse} "News retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news [get]
func (c *NewsController) GetNews(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	response, err := c.newsService.GetNews(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetNewsByID handles retrieving a single news item
// @Summary Get news item by ID
// @Description Retrieves a published news item
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} dto.APIResponse{data=dto.NewsResponse} "News item retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid news ID"
// @Failure 404 {object} dto.ErrorResponse "News item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{id} [get]
func (c *NewsController) GetNewsByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid news ID")
	if !ok {
		return
	}

	item, err := c.newsService.GetNewsByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// CreateNews handles news publishing
// @Summary Publish a news item
// @Description Publishes a news item, optionally linked to an event
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNewsRequest true "News payload"
// @Success 201 {object} dto.APIResponse{data=dto.NewsResponse} "News item published"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Linked event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news [post]
func (c *NewsController) CreateNews(ctx *gin.Context) {
	var req dto.CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	item, err := c.newsService.CreateNews(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item))
}
