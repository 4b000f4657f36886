package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-ats-backend/config"
	_ "go-ats-backend/docs" // Important for Swagger
	v1 "go-ats-backend/internal/delivery/http/v1"
	"go-ats-backend/internal/repository/postgres"
	"go-ats-backend/internal/usecase"
	"go-ats-backend/pkg/auth"
	"go-ats-backend/pkg/database"
	"go-ats-backend/pkg/logger"
	"go-ats-backend/pkg/redis"
	"go-ats-backend/pkg/security"
	"go-ats-backend/pkg/storage"
)

// @title           ATS Backend API
// @version         1.0
// @description     Applicant tracking backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting ATS backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting degrades to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Object Storage
	s3Client, err := storage.NewS3Client(context.Background(), storage.ClientConfig{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to configure object storage", "error", err)
		os.Exit(1)
	}
	uploader := storage.NewUploader(s3Client, cfg.S3Bucket, cfg.S3PublicBaseURL)

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	deptRepo := postgres.NewDepartmentRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	shortListRepo := postgres.NewShortListRepository(dbPool)

	// 7. Setup UseCases
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiryH)*time.Hour)
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	deptUC := usecase.NewDepartmentUsecase(deptRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, candidateRepo, jobRepo, uploader)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, candidateRepo)
	shortListUC := usecase.NewShortListUsecase(shortListRepo, jobRepo, candidateRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ProfileUC:     profileUC,
		DepartmentUC:  deptUC,
		JobUC:         jobUC,
		CandidateUC:   candidateUC,
		ResumeUC:      resumeUC,
		ApplicationUC: applicationUC,
		ShortListUC:   shortListUC,
		Tokens:        tokens,
		UploadLimiter: security.NewUploadLimiter(cfg.UploadLimitPerMinute, cfg.UploadLimitPerDay),
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
