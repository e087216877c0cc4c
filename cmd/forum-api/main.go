package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forumapi-dev/forumapi/internal/config"
	"github.com/forumapi-dev/forumapi/internal/logger"
	"github.com/forumapi-dev/forumapi/internal/router"
	"github.com/forumapi-dev/forumapi/internal/setup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to setup dependencies", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := deps.Storage.Cleanup(); err != nil {
			logger.Log.Error("failed to close storage", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Public.HttpPort),
		Handler:           router.New(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("server started", "addr", srv.Addr, "storage", cfg.Public.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("server forced to shutdown", "error", err)
	}
	logger.Log.Info("server exited")
}
