package main

import (
	"log"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/api"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/config"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/database"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/export"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/handler"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/repository"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()

	tripRepo := repository.NewTripRepository(db)
	zoneRepo := repository.NewZoneRepository(db)
	reportRepo := repository.NewReportRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	ingestService := service.NewIngestService(tripRepo, zoneRepo, reportRepo, cfg.Cleaning)
	tripService := service.NewTripService(tripRepo)
	statsService := service.NewStatsService(statsRepo)
	rankingService := service.NewRankingService(statsRepo, zoneRepo)
	validationService := service.NewValidationService(tripRepo, zoneRepo, cfg.Cleaning)
	exportService := service.NewExportService(statsRepo, reportRepo, rankingService,
		export.NewWriter(cfg.ExportDir), cfg.DefaultK)

	router := api.SetupRouter(api.Handlers{
		Ingest:     handler.NewIngestHandler(ingestService, cfg.ZonesCSV, cfg.TripsCSV),
		Trip:       handler.NewTripHandler(tripService),
		Zone:       handler.NewZoneHandler(zoneRepo, rankingService, cfg.DefaultK),
		Stats:      handler.NewStatsHandler(statsService),
		Validation: handler.NewValidationHandler(validationService),
		Export:     handler.NewExportHandler(exportService),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
