package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go-ats-backend/config"
	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/repository/postgres"
	"go-ats-backend/pkg/database"
	"go-ats-backend/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seeds an admin account and, with -demo, a handful of departments and
// open jobs owned by it. Safe to re-run: existing rows are left alone.
func main() {
	var demo bool
	flag.BoolVar(&demo, "demo", false, "also insert sample departments and jobs")
	flag.Parse()

	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.SeedAdminPassword == "" {
		logger.Log.Error("SEED_ADMIN_PASSWORD is required")
		os.Exit(1)
	}

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepo := postgres.NewUserRepository(dbPool)
	deptRepo := postgres.NewDepartmentRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)

	admin, err := userRepo.GetByEmail(ctx, cfg.SeedAdminEmail)
	switch {
	case err == nil:
		logger.Log.Info("Admin account already exists", "email", admin.Email)
	case errors.Is(err, domain.ErrNotFound):
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			logger.Log.Error("Failed to hash admin password", "error", hashErr)
			os.Exit(1)
		}
		now := time.Now()
		admin = &domain.User{
			ID:        uuid.NewString(),
			Name:      "Administrator",
			Email:     cfg.SeedAdminEmail,
			Password:  string(hash),
			Role:      domain.RoleAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			logger.Log.Error("Failed to create admin account", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Created admin account", "email", admin.Email)
	default:
		logger.Log.Error("Failed to look up admin account", "error", err)
		os.Exit(1)
	}

	if !demo {
		return
	}

	if err := seedDemoData(ctx, deptRepo, jobRepo, admin.ID); err != nil {
		logger.Log.Error("Failed to seed demo data", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Demo data seeded")
}

func seedDemoData(ctx context.Context, deptRepo domain.DepartmentRepository, jobRepo domain.JobRepository, ownerID string) error {
	now := time.Now()

	departments := []domain.Department{
		{Title: "Engineering", Description: strPtr("Product and platform engineering")},
		{Title: "Sales", Description: strPtr("Inbound and outbound sales")},
		{Title: "People Operations", Description: strPtr("Hiring, onboarding and HR")},
	}
	for i := range departments {
		departments[i].ID = uuid.NewString()
		departments[i].CreatedByID = ownerID
		departments[i].CreatedAt = now
		departments[i].UpdatedAt = now
		if err := deptRepo.Create(ctx, &departments[i]); err != nil {
			return fmt.Errorf("create department %q: %w", departments[i].Title, err)
		}
	}

	jobs := []domain.Job{
		{
			Title:        "Backend Engineer",
			Description:  strPtr("Build and operate our Go services."),
			Type:         domain.JobTypeFullTime,
			ShiftType:    domain.ShiftTypeDay,
			DepartmentID: departments[0].ID,
		},
		{
			Title:        "Account Executive",
			Description:  strPtr("Own the full sales cycle for mid-market accounts."),
			Type:         domain.JobTypeHybrid,
			ShiftType:    domain.ShiftTypeDay,
			DepartmentID: departments[1].ID,
		},
		{
			Title:        "Recruiter",
			Description:  strPtr("Run technical hiring pipelines end to end."),
			Type:         domain.JobTypeRemote,
			ShiftType:    domain.ShiftTypeMixed,
			DepartmentID: departments[2].ID,
		},
	}
	for i := range jobs {
		jobs[i].ID = uuid.NewString()
		jobs[i].CreatedByID = ownerID
		jobs[i].ExpiryDate = now.AddDate(0, 3, 0)
		jobs[i].CreatedAt = now
		jobs[i].UpdatedAt = now
		if err := jobRepo.Create(ctx, &jobs[i]); err != nil {
			return fmt.Errorf("create job %q: %w", jobs[i].Title, err)
		}
	}

	return nil
}

func strPtr(s string) *string { return &s }
