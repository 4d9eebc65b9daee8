package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/clubeativo/backend/internal/app/controllers"
	"github.com/clubeativo/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	clubController *controllers.ClubController,
	eventController *controllers.EventController,
	forumController *controllers.ForumController,
	newsController *controllers.NewsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Public browsing routes ---
	clubs := v1.Group("/clubs")
	{
		clubs.GET("", clubController.GetClubs)
		clubs.GET("/:id", clubController.GetClubByID)
		clubs.GET("/:id/members", clubController.GetClubMembers)
	}

	events := v1.Group("/events")
	{
		events.GET("", eventController.GetEvents)
		// Optional auth lets the detail view report the caller's
		// enrollment state without requiring a token.
		events.GET("/:id", authMiddleware.OptionalJWTAuth(), eventController.GetEventByID)
	}

	news := v1.Group("/news")
	{
		news.GET("", newsController.GetNews)
		news.GET("/:id", newsController.GetNewsByID)
	}

	forum := v1.Group("/forum")
	{
		forum.GET("/topics", forumController.GetTopics)
		forum.GET("/topics/:id", forumController.GetTopicByID)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		authenticated.GET("/account", userController.GetProfile)
		authenticated.PUT("/account/picture", userController.UpdateProfileImage)

		authenticated.POST("/clubs", clubController.CreateClub)
		authenticated.POST("/clubs/:id/members", clubController.JoinClub)
		authenticated.DELETE("/clubs/:id/members", clubController.LeaveClub)

		authenticated.POST("/events", eventController.CreateEvent)
		authenticated.GET("/events/:id/enrollments", eventController.GetEnrollments)
		authenticated.POST("/events/:id/enrollments", eventController.Enroll)
		authenticated.DELETE("/events/:id/enrollments", eventController.Unenroll)

		authenticated.POST("/forum/topics", forumController.CreateTopic)
		authenticated.POST("/forum/topics/:id/posts", forumController.CreatePost)

		authenticated.POST("/news", newsController.CreateNews)
	}
}
