package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/eduboard/backend/internal/cache"
	"github.com/eduboard/backend/internal/db"
	"github.com/eduboard/backend/internal/handlers"
	"github.com/eduboard/backend/internal/logger"
	"github.com/eduboard/backend/internal/middleware"
	"github.com/eduboard/backend/internal/repos"
	"github.com/eduboard/backend/internal/server"
	"github.com/eduboard/backend/internal/services"
	"github.com/eduboard/backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Loading environment variables...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// View cache is optional: without REDIS_ADDR the dashboard just skips
	// cached rendering and invalidation becomes a no-op.
	var invalidator cache.ViewInvalidator = cache.NoopInvalidator{}
	if os.Getenv("REDIS_ADDR") != "" {
		ri, err := cache.NewRedisInvalidator(log)
		if err != nil {
			log.Fatal("Redis view cache init failed", "error", err)
		}
		defer ri.Close()
		invalidator = ri
	}

	log.Info("Setting up repos...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	courseRepo := repos.NewCourseRepo(thePG, log)
	courseModuleRepo := repos.NewCourseModuleRepo(thePG, log)
	quizRepo := repos.NewQuizRepo(thePG, log)
	quizQuestionRepo := repos.NewQuizQuestionRepo(thePG, log)
	quizAttemptRepo := repos.NewQuizAttemptRepo(thePG, log)

	log.Info("Setting up services...")
	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey,
		time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	userService := services.NewUserService(thePG, log, userRepo)
	courseService := services.NewCourseService(thePG, log, courseRepo, courseModuleRepo)
	progressService := services.NewProgressService(thePG, log, courseRepo, courseModuleRepo)
	quizService := services.NewQuizService(thePG, log, quizRepo, quizQuestionRepo, quizAttemptRepo)

	log.Info("Setting up handlers...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	courseHandler := handlers.NewCourseHandler(log, courseService)
	progressHandler := handlers.NewProgressHandler(log, progressService, invalidator)
	quizHandler := handlers.NewQuizHandler(log, quizService)

	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	router := server.NewRouter(server.RouterConfig{
		AuthHandler:     authHandler,
		AuthMiddleware:  authMiddleware,
		UserHandler:     userHandler,
		CourseHandler:   courseHandler,
		ProgressHandler: progressHandler,
		QuizHandler:     quizHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
