package main

import (
	"context"
	"fmt"

	"wikifeed/config"
	"wikifeed/di"
	"wikifeed/driver/wiki_db"
	"wikifeed/job"
	"wikifeed/rest"
	"wikifeed/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	log := logger.InitLogger()
	log.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}

	ctx := context.Background()

	pool, err := wiki_db.InitDBConnectionPool(ctx)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	if cfg.Ingest.JobEnabled {
		scheduler := job.NewScheduler()
		scheduler.Add(job.NewIngestJob(container.IngestUsecase, cfg))
		scheduler.Start(ctx)
	}

	e := echo.New()
	rest.RegisterRoutes(e, container, cfg)
	err = e.Start(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		logger.Logger.Error("Error starting server", "error", err)
		panic(err)
	}
}
