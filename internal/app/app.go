package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/daniilsolovey/community-portal/internal/db"
	"github.com/daniilsolovey/community-portal/internal/fallback"
	"github.com/daniilsolovey/community-portal/internal/metrics"
	"github.com/daniilsolovey/community-portal/internal/portal"
	"github.com/daniilsolovey/community-portal/internal/rest"
	"github.com/daniilsolovey/community-portal/internal/rpc"
)

type App struct {
	Repo     *db.Repository
	Logger   *slog.Logger
	Echo     *echo.Echo
	Registry *prometheus.Registry
	Config   Config
}

type Config struct {
	App struct {
		Host string
		Port int
	}
	Store  db.StoreConfig
	Portal struct {
		BranchTimeout    time.Duration
		ViewCountTimeout time.Duration
	}
}

func New(cfg Config, repo *db.Repository, logger *slog.Logger) *App {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	manager := portal.NewManager(repo, fallback.New(), metrics.New(registry), logger, portal.Options{
		BranchTimeout:    cfg.Portal.BranchTimeout,
		ViewCountTimeout: cfg.Portal.ViewCountTimeout,
	})

	return &App{
		Repo:     repo,
		Logger:   logger,
		Echo:     rest.NewRouter(rest.NewPortalHandler(manager, logger), rpc.New(logger, manager), registry),
		Registry: registry,
		Config:   cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.Info("service started", "addr", addr, "storeConfigured", a.Repo.Configured())

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
