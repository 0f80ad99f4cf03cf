package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "controlling_window/docs"
	"controlling_window/internal/config"
	"controlling_window/internal/handlers"
	"controlling_window/internal/logger"
	"controlling_window/internal/repository"
	"controlling_window/internal/repository/db"
	"controlling_window/internal/server"
	"controlling_window/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title                       Window Controller API
// @version                     1.0
// @description                 Decides whether a ventilation window should be open from room and weather readings.
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load configs/config.yml, .env and WINDOW_* overrides
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	// open DB
	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DB.Path, "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, cfg, log)
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Simulator.Enabled {
		log.Infow("simulator enabled", "tick", cfg.Simulator.Tick, "desired_c", cfg.Simulator.DesiredTempC,
			"outside_c", cfg.Simulator.OutsideTempC, "condition_code", cfg.Simulator.ConditionCode)
		go services.Simulator.Run(ctx, cfg.Simulator.Tick)
	}

	srv := server.New(cfg.Server)
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(cancel, srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
