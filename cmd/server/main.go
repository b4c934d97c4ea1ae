package main

import (
	"campuskit/lms-app/internal/api"
	"campuskit/lms-app/internal/config"
	"campuskit/lms-app/internal/repository/mongo"
	"campuskit/lms-app/internal/service"
	"campuskit/lms-app/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	log.Info().Msg("Starting Campus LMS server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to MongoDB")
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Error().Err(err).Msg("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Info().Str("database", cfg.Database.Name).Msg("database connection established")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		log.Info().Msg("index creation process completed")
	}()

	// --- Initialize Storage ---
	var fileStorage storage.FileStorage
	switch cfg.Storage.Driver {
	case "s3":
		fileStorage, err = storage.NewS3Storage(cfg.S3, log)
	default:
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, log)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize file storage")
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	videoRepo := mongo.NewMongoVideoRepository(appDB)
	noteRepo := mongo.NewMongoNoteRepository(appDB)
	quizRepo := mongo.NewMongoQuizRepository(appDB)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	contentService := service.NewContentService(videoRepo, noteRepo, userRepo, fileStorage)
	quizService := service.NewQuizService(quizRepo, userRepo)
	adminService := service.NewAdminService(userRepo)

	// --- Initialize Gin Engine ---
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestLogger(log))

	corsConfig := cors.DefaultConfig()
	origins := cfg.CORS.Origins()
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Uploaded files are served back as static content with the local
	// driver; with S3 the bucket is the access path.
	if cfg.Storage.Driver != "s3" {
		router.Static("/uploads", cfg.Storage.BasePath)
	}

	api.SetupRoutes(router, authService, contentService, quizService, adminService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("address", cfg.Server.Address).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
