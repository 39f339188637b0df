package testutil

import (
	"path/filepath"
	"testing"

	"github.com/cory-johannsen/almanac/internal/storage/migrations"
	"github.com/cory-johannsen/almanac/internal/storage/sqlite"
)

// NewSQLitePath returns a database file under t.TempDir with the characters schema applied.
func NewSQLitePath(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "almanac.db")

	m, err := migrations.NewSQLite(path)
	if err != nil {
		t.Fatalf("creating migrator: %v", err)
	}
	defer func() { _ = m.Close() }()
	if _, err := m.Run(migrations.Up, 0); err != nil {
		t.Fatalf("applying migrations: %v", err)
	}
	return path
}

// NewSQLiteStore opens a migrated store in a temporary file, closed when the test ends.
func NewSQLiteStore(t testing.TB) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(NewSQLitePath(t))
	if err != nil {
		t.Fatalf("opening sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}
