package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-pg/pg/v10"
)

// StoreConfig is the endpoint/credential pair plus pool tuning. An empty
// Endpoint or Credential means the store is not configured.
type StoreConfig struct {
	Endpoint   string
	Credential string
	PoolSize   int
	MaxConnAge time.Duration
	LogQueries bool
}

func (c StoreConfig) Configured() bool {
	return c.Endpoint != "" && c.Credential != ""
}

// Connect opens the store described by cfg. An unconfigured cfg yields a
// Repository that reports Configured() == false and never touches the network.
func Connect(ctx context.Context, cfg StoreConfig, logger *slog.Logger) (*Repository, error) {
	if !cfg.Configured() {
		logger.Info("store not configured, serving fallback data")
		return New(nil), nil
	}

	opt, err := pg.ParseURL(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse store endpoint: %w", err)
	}

	opt.Password = cfg.Credential
	opt.MaxRetries = 3
	if cfg.PoolSize > 0 {
		opt.PoolSize = cfg.PoolSize
	}
	if cfg.MaxConnAge > 0 {
		opt.MaxConnAge = cfg.MaxConnAge
	}

	database := pg.Connect(opt)
	if cfg.LogQueries {
		database.AddQueryHook(NewQueryHook(logger))
		logger.Info("SQL query logging enabled")
	}

	if err := database.Ping(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	logger.Info("store connected", "addr", opt.Addr, "database", opt.Database)

	return New(database), nil
}
