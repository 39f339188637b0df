// Package postgres implements the character catalog gateway on PostgreSQL using pgx v5.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/almanac/internal/config"
)

// Store is the PostgreSQL-backed catalog. It owns its connection pool.
type Store struct {
	db *pgxpool.Pool
}

// Open connects a pool using cfg and verifies the server answers.
//
// Precondition: cfg must contain valid database connection parameters.
// Postcondition: Returns a ready Store or a non-nil error; no pool is left open on error.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Store{db: pool}, nil
}

// NewStore wraps an existing pool. The caller keeps ownership of db.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Health pings the server, failing if it does not answer within timeout.
func (s *Store) Health(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.db.Ping(ctx)
}

// DB returns the underlying pool.
func (s *Store) DB() *pgxpool.Pool {
	return s.db
}

// Close releases the pool.
func (s *Store) Close() error {
	s.db.Close()
	return nil
}

func isDuplicateKeyError(err error) bool {
	// SQLSTATE 23505 is unique_violation.
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
