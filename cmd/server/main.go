package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/fervo-app/fervo-backend-go/internal/api"
	"github.com/fervo-app/fervo-backend-go/internal/config"
	"github.com/fervo-app/fervo-backend-go/internal/database"
	"github.com/fervo-app/fervo-backend-go/internal/handler"
	"github.com/fervo-app/fervo-backend-go/internal/logger"
	"github.com/fervo-app/fervo-backend-go/internal/repository"
	"github.com/fervo-app/fervo-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		zapLogger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.RunMigrations(db); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	redisClient := config.NewRedisClient(cfg)
	if redisClient == nil {
		zapLogger.Info("Redis unavailable, using sqlite for checkins")
	}

	venueRepo := repository.NewVenueRepository(db)
	eventRepo := repository.NewEventRepository(db)
	checkinStore := repository.NewCheckinStore(redisClient, db)

	venueService := service.NewVenueService(venueRepo, cfg.Timezone, zapLogger)
	eventService := service.NewEventService(eventRepo, venueRepo, zapLogger)
	checkinService := service.NewCheckinService(checkinStore, zapLogger)
	heatmapService := service.NewHeatmapService(venueRepo, eventRepo, checkinStore, cfg, zapLogger)

	router := api.SetupRouter(cfg, zapLogger, api.Handlers{
		Venues:   handler.NewVenueHandler(venueService),
		Heatmap:  handler.NewHeatmapHandler(heatmapService),
		Events:   handler.NewEventHandler(eventService),
		Checkins: handler.NewCheckinHandler(checkinService),
	})

	zapLogger.Info("Server starting", zap.String("port", cfg.Port))
	if err := router.Run(cfg.Port); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
