package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Llorsque/500-tool/internal/application"
	"github.com/Llorsque/500-tool/internal/integration"
	"github.com/Llorsque/500-tool/internal/laptime"
	"github.com/Llorsque/500-tool/internal/models"
	"github.com/Llorsque/500-tool/internal/repository"
	"github.com/Llorsque/500-tool/pkg/config"
	"github.com/Llorsque/500-tool/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.ReadEnvConfig(&cfg); err != nil {
		panic(err)
	}

	log := logger.NewLogger(&logger.Config{Level: cfg.LogLevel})

	seed := models.DefaultSeed()
	if cfg.SeedPath != "" {
		loaded, err := repository.LoadSeedFile(cfg.SeedPath)
		if err != nil {
			log.Error("failed to load seed roster", "error", err)
			return
		}
		seed = loaded
	}
	roster := repository.NewMemoryRoster(seed)
	log.Info("roster ready", "riders", roster.Len())

	layout := laptime.ParseLayout(cfg.TimeLayout)

	var fetcher application.FeedFetcher
	if cfg.FeedURL != "" {
		fetcher = integration.NewFeedClient(cfg.FeedURL, cfg.FeedRelayURL)
	}

	interval := time.Duration(cfg.HarvestIntervalSeconds) * time.Second
	services := application.NewService(roster, layout, fetcher, interval, log)

	if fetcher != nil {
		services.Harvest.Start()
		log.Info("live harvester started", "url", cfg.FeedURL, "interval", interval.String())
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	if fetcher != nil {
		services.Harvest.Stop()
		log.Info("live harvester stopped")
	}

	for _, e := range services.Ranking.TopN(cfg.TopN) {
		log.Info("final standing", "pos", e.Position, "name", e.Record.DisplayName(), "time", laptime.Format(e.BestMs, layout))
	}

	if err := services.Export.WriteCSVFile(cfg.CSVPath); err != nil {
		log.Error("csv export failed", "error", err)
	} else {
		log.Info("ranking exported", "path", cfg.CSVPath, "ranked", len(services.Ranking.Leaderboard()))
	}

	if cfg.ExcelPath != "" {
		data, err := services.Export.Excel()
		if err != nil {
			log.Error("excel export failed", "error", err)
		} else if err := os.WriteFile(cfg.ExcelPath, data, 0644); err != nil {
			log.Error("excel export failed", "error", err)
		} else {
			log.Info("excel protocol exported", "path", cfg.ExcelPath)
		}
	}

	log.Info("session closed")
}
