// Package testutil provides test helpers for the catalog stores.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cory-johannsen/almanac/internal/config"
	"github.com/cory-johannsen/almanac/internal/storage/migrations"
	"github.com/cory-johannsen/almanac/internal/storage/postgres"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance with a migrated schema.
type PostgresContainer struct {
	container testcontainers.Container
	Store     *postgres.Store
	Config    config.DatabaseConfig
}

// NewPostgresContainer starts a PostgreSQL test container, migrates the characters
// schema and returns a connected Store. The test is skipped when Docker is unavailable.
//
// Postcondition: Returns a running container with a migrated, connected store,
// or skips or fails the test.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()
	start := time.Now()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("starting postgres container: %v [%s]", err, time.Since(start))
	}
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("getting container host: %v", err)
	}
	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("getting mapped port: %v", err)
	}

	dbCfg := config.DatabaseConfig{
		Host:            host,
		Port:            mappedPort.Int(),
		User:            "test",
		Password:        "test",
		Name:            "test",
		SSLMode:         "disable",
		MaxConns:        4,
		MinConns:        1,
		MaxConnLifetime: 5 * time.Minute,
	}

	m, err := migrations.NewPostgres(dbCfg.DSN())
	if err != nil {
		t.Fatalf("creating migrator: %v", err)
	}
	if _, err := m.Run(migrations.Up, 0); err != nil {
		_ = m.Close()
		t.Fatalf("applying migrations: %v", err)
	}
	_ = m.Close()

	store, err := postgres.Open(ctx, dbCfg)
	if err != nil {
		t.Fatalf("connecting to test postgres: %v [%s]", err, time.Since(start))
	}
	t.Cleanup(func() { _ = store.Close() })

	t.Logf("postgres container started and migrated [%s]", time.Since(start))

	return &PostgresContainer{
		container: container,
		Store:     store,
		Config:    dbCfg,
	}
}
