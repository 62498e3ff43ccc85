package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wellora-backend/config"
	_ "wellora-backend/docs" // Swagger docs
	activityHTTP "wellora-backend/internal/activity/delivery/http"
	"wellora-backend/internal/activity/repository"
	"wellora-backend/internal/activity/repository/memory"
	activityUC "wellora-backend/internal/activity/usecase"
	assistantHTTP "wellora-backend/internal/assistant/delivery/http"
	assistantUC "wellora-backend/internal/assistant/usecase"
	healthHTTP "wellora-backend/internal/health/delivery/http"
	healthUC "wellora-backend/internal/health/usecase"
	"wellora-backend/internal/httpserver"
	"wellora-backend/internal/middleware"
	"wellora-backend/internal/model"
	"wellora-backend/internal/nlp"
	pkgLog "wellora-backend/pkg/log"
)

// @title       Wellora Health Assistant API
// @description Rule-based health assistant with query analysis, personalized recommendations, and activity tracking.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := pkgLog.Init(pkgLog.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Wellora backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Shared infrastructure
	activityRepo := memory.New(logger)
	extractor := nlp.New(nlp.NoopTagger{})

	if cfg.Demo.SeedActivity {
		if err := seedDemoActivity(ctx, activityRepo, cfg.Assistant.DefaultUserID); err != nil {
			logger.Warnf(ctx, "Failed to seed demo activity: %v", err)
		} else {
			logger.Info(ctx, "Demo activity log seeded")
		}
	}

	// 4. Domains
	activityUseCase := activityUC.New(logger, activityRepo, nil, cfg.Assistant.DefaultUserID)
	activityHandler := activityHTTP.New(logger, activityUseCase)

	assistantUseCase := assistantUC.New(logger, extractor, activityRepo, cfg.Assistant.DefaultUserID, nil)
	assistantHandler := assistantHTTP.New(logger, assistantUseCase)

	healthUseCase := healthUC.New(logger, activityRepo, cfg.Assistant.DefaultUserID)
	healthHandler := healthHTTP.New(logger, healthUseCase)

	mw := middleware.New(logger, cfg.RateLimit)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AssistantHandler: assistantHandler,
		HealthHandler:    healthHandler,
		ActivityHandler:  activityHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// seedDemoActivity preloads the demo user's log so history charts and
// personalized responses have data on a fresh start.
func seedDemoActivity(ctx context.Context, repo repository.Repository, userID string) error {
	now := time.Now()
	entries := []model.ActivityLogEntry{
		{
			ID:           uuid.NewString(),
			UserID:       userID,
			ActivityType: model.ActivityWorkout,
			Details:      "Jogging",
			Value:        30,
			Timestamp:    now.Add(-48 * time.Hour),
		},
		{
			ID:           uuid.NewString(),
			UserID:       userID,
			ActivityType: model.ActivityWorkout,
			Details:      "Yoga",
			Value:        45,
			Timestamp:    now.Add(-24 * time.Hour),
		},
		{
			ID:           uuid.NewString(),
			UserID:       userID,
			ActivityType: model.ActivityWorkout,
			Details:      "Gym",
			Value:        60,
			Timestamp:    now,
		},
	}

	for _, entry := range entries {
		if err := repo.Append(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
