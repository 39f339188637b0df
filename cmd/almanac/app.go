package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/almanac/internal/command"
	"github.com/cory-johannsen/almanac/internal/config"
	"github.com/cory-johannsen/almanac/internal/observability"
	"github.com/cory-johannsen/almanac/internal/server"
	"github.com/cory-johannsen/almanac/internal/storage/migrations"
	"github.com/cory-johannsen/almanac/internal/storage/postgres"
	"github.com/cory-johannsen/almanac/internal/storage/sqlite"
)

// store is a catalog gateway that owns a connection.
type store interface {
	command.Gateway
	Close() error
}

type healthChecker interface {
	Health(ctx context.Context, timeout time.Duration) error
}

var (
	_ store         = (*sqlite.Store)(nil)
	_ store         = (*postgres.Store)(nil)
	_ healthChecker = (*postgres.Store)(nil)
)

// app holds what every subcommand needs: validated configuration and a logger.
type app struct {
	cfg    config.Config
	logger *zap.Logger
}

func setup(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return &app{cfg: cfg, logger: logger}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// openStore connects to the configured driver.
//
// Precondition: the schema must already be migrated.
func (a *app) openStore(ctx context.Context) (store, error) {
	start := time.Now()
	switch a.cfg.Store.Driver {
	case config.DriverPostgres:
		st, err := postgres.Open(ctx, a.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		a.logger.Info("database connected",
			zap.String("host", a.cfg.Database.Host),
			zap.Duration("elapsed", time.Since(start)),
		)
		return st, nil
	case config.DriverSQLite:
		st, err := sqlite.Open(a.cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", a.cfg.Store.SQLitePath, err)
		}
		a.logger.Info("database opened",
			zap.String("path", a.cfg.Store.SQLitePath),
			zap.Duration("elapsed", time.Since(start)),
		)
		return st, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", a.cfg.Store.Driver)
	}
}

// healthTicker pings h every repl.health_interval. A failed ping is logged and the
// ticker keeps running; store errors surface to the user through the commands they run.
func (a *app) healthTicker(h healthChecker) *server.Ticker {
	interval := a.cfg.REPL.HealthInterval
	return server.NewTicker(interval, func(ctx context.Context) error {
		if err := h.Health(ctx, interval/2); err != nil {
			a.logger.Warn("store health check failed", zap.Error(err))
		}
		return nil
	})
}

// migrate moves the configured database's schema.
func (a *app) migrate(direction migrations.Direction, steps int) (migrations.Report, error) {
	var (
		m   *migrations.Migrator
		err error
	)
	switch a.cfg.Store.Driver {
	case config.DriverPostgres:
		m, err = migrations.NewPostgres(a.cfg.Database.DSN())
	case config.DriverSQLite:
		m, err = migrations.NewSQLite(a.cfg.Store.SQLitePath)
	default:
		err = fmt.Errorf("unknown store driver %q", a.cfg.Store.Driver)
	}
	if err != nil {
		return migrations.Report{}, err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			a.logger.Warn("closing migrator", zap.Error(cerr))
		}
	}()

	rep, err := m.Run(direction, steps)
	if err != nil {
		return migrations.Report{}, err
	}
	a.logger.Debug("schema migrated",
		zap.String("direction", string(direction)),
		zap.Uint("version", rep.Version),
		zap.Bool("changed", rep.Changed),
	)
	return rep, nil
}
