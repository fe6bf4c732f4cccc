package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/gobinda22/moodtracker/internal"
	"github.com/gobinda22/moodtracker/internal/api"
	"github.com/gobinda22/moodtracker/internal/auth"
	"github.com/gobinda22/moodtracker/internal/config"
	"github.com/gobinda22/moodtracker/internal/service"
	"github.com/gobinda22/moodtracker/internal/storage"
)

type app struct {
	logger internal.Logger
	moods  *service.MoodService
}

func (a *app) Logger() internal.Logger { return a.logger }
func (a *app) Moods() *service.MoodService { return a.moods }

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	if cfg.Backend == "file" {
		if err := os.MkdirAll("data", 0755); err != nil {
			logger.Fatalf("failed to create data dir: %v", err)
		}
	}

	repo, err := storage.NewRepository(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	catalog := internal.LoadCatalog(cfg.CatalogFile, logger)
	moods := service.NewMoodService(repo, catalog, logger)

	var provider auth.Provider
	if cfg.Env == "development" {
		provider = auth.NewLocalAuthProvider(cfg.APIToken, logger)
	} else {
		provider = auth.NewRemoteAuthProvider(cfg.AuthURL, logger)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	api.RegisterRoutes(r, &app{logger: logger, moods: moods}, provider, cfg)

	go func() {
		logger.Infof("mood tracker listening on :%s", cfg.Port)
		if err := r.Run(":" + cfg.Port); err != nil {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down, flushing storage")
	if err := repo.Close(); err != nil {
		logger.Errorf("error closing storage: %v", err)
	}
}
