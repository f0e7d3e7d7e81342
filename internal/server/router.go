package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eduboard/backend/internal/handlers"
	"github.com/eduboard/backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler     *handlers.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	UserHandler     *handlers.UserHandler
	CourseHandler   *handlers.CourseHandler
	ProgressHandler *handlers.ProgressHandler
	QuizHandler     *handlers.QuizHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
		api.POST("/refresh", cfg.AuthHandler.Refresh)
		api.POST("/logout", cfg.AuthHandler.Logout)

		// Engine endpoints. The dashboard calls these without a bearer token;
		// session handling lives in front of this service.
		api.POST("/lessons/complete", cfg.ProgressHandler.CompleteLesson)
		api.POST("/quizzes/submit", cfg.QuizHandler.SubmitQuiz)
		api.GET("/quizzes/:slug/attempts", cfg.QuizHandler.ListAttempts)
		api.GET("/courses", cfg.CourseHandler.ListCourses)
		api.GET("/courses/lookup", cfg.CourseHandler.LookupBySlug)
		api.GET("/courses/:slug", cfg.CourseHandler.GetCourse)
	}

	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.GET("/user", cfg.UserHandler.GetMe)

	return router
}
