package api

import (
	"campuskit/lms-app/internal/domain"
	"campuskit/lms-app/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all API routes under the /api prefix. Registration,
// login, the root banner, and health are public; everything else runs behind
// the auth middleware and the static permission table.
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	contentService service.ContentService,
	quizService service.QuizService,
	adminService service.AdminService,
) {
	authHandler := NewAuthHandler(authService)
	videoHandler := NewVideoHandler(contentService)
	noteHandler := NewNoteHandler(contentService)
	quizHandler := NewQuizHandler(quizService)
	adminHandler := NewAdminHandler(adminService)

	authMiddleware := AuthMiddleware(authService)

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Campus LMS API"})
		})
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"timestamp": time.Now().UTC(),
			})
		})

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := api.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/auth/me", authHandler.Me)

		videoGroup := protected.Group("/videos")
		{
			videoGroup.POST("", RequireAction(domain.ActionUploadContent), videoHandler.Upload)
			videoGroup.GET("", RequireAction(domain.ActionListContent), videoHandler.List)
			videoGroup.GET("/:id", RequireAction(domain.ActionListContent), videoHandler.Get)
		}

		noteGroup := protected.Group("/notes")
		{
			noteGroup.POST("", RequireAction(domain.ActionUploadContent), noteHandler.Upload)
			noteGroup.GET("", RequireAction(domain.ActionListContent), noteHandler.List)
		}

		quizGroup := protected.Group("/quizzes")
		{
			quizGroup.POST("", RequireAction(domain.ActionCreateQuiz), quizHandler.Create)
			quizGroup.GET("", RequireAction(domain.ActionListContent), quizHandler.List)
		}

		adminGroup := protected.Group("/admin")
		{
			adminGroup.GET("/users", RequireAction(domain.ActionListUsers), adminHandler.ListUsers)
			adminGroup.PATCH("/users/:id/status", RequireAction(domain.ActionManageUserStatus), adminHandler.SetUserStatus)
		}
	}
}
