// Package migrations embeds the characters schema for each store driver and applies it
// with golang-migrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Direction is the way a migration run moves the schema version.
type Direction string

// Migration directions.
const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection validates a direction token.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("invalid direction %q: must be 'up' or 'down'", s)
	}
}

// Report describes the schema state after a run.
type Report struct {
	Version uint
	Dirty   bool
	// Changed is false when the schema was already at the requested version.
	Changed bool
}

// Migrator applies the embedded schema to one database.
type Migrator struct {
	m *migrate.Migrate
}

// NewPostgres creates a Migrator for the PostgreSQL database at dsn.
//
// Precondition: dsn must be a postgres:// URL.
// Postcondition: Returns a Migrator holding its own connection, or a non-nil error.
func NewPostgres(dsn string) (*Migrator, error) {
	return open("postgres", dsn)
}

// NewSQLite creates a Migrator for the SQLite database file at path.
//
// Precondition: path must name a writable file location.
// Postcondition: Returns a Migrator holding its own connection, or a non-nil error.
func NewSQLite(path string) (*Migrator, error) {
	return open("sqlite", "sqlite://"+path)
}

func open(dir, url string) (*Migrator, error) {
	src, err := iofs.New(files, dir)
	if err != nil {
		return nil, fmt.Errorf("loading %s migrations: %w", dir, err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		return nil, fmt.Errorf("creating migrator: %w", err)
	}
	return &Migrator{m: m}, nil
}

// Run moves the schema in direction. A steps value of zero applies every pending
// migration; a positive value applies at most that many.
//
// Precondition: steps must be >= 0.
// Postcondition: An already-current schema is not an error; Report.Changed is false.
func (mg *Migrator) Run(direction Direction, steps int) (Report, error) {
	if steps < 0 {
		return Report{}, fmt.Errorf("steps must be >= 0, got %d", steps)
	}

	var err error
	switch direction {
	case Up:
		if steps > 0 {
			err = mg.m.Steps(steps)
		} else {
			err = mg.m.Up()
		}
	case Down:
		if steps > 0 {
			err = mg.m.Steps(-steps)
		} else {
			err = mg.m.Down()
		}
	default:
		return Report{}, fmt.Errorf("invalid direction %q: must be 'up' or 'down'", direction)
	}

	changed := true
	if errors.Is(err, migrate.ErrNoChange) {
		changed = false
		err = nil
	}
	if err != nil {
		return Report{}, fmt.Errorf("migrating %s: %w", direction, err)
	}

	version, dirty, verr := mg.m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return Report{}, fmt.Errorf("reading schema version: %w", verr)
	}
	return Report{Version: version, Dirty: dirty, Changed: changed}, nil
}

// Close releases the source and database connections.
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}
