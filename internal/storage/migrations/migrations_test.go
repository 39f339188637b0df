package migrations_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/cory-johannsen/almanac/internal/storage/migrations"
)

func newSQLite(t *testing.T) (*migrations.Migrator, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "almanac.db")
	m, err := migrations.NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m, path
}

func tableExists(t *testing.T, path string) bool {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'characters'`).Scan(&n)
	require.NoError(t, err)
	return n == 1
}

func TestRun_UpCreatesCharacters(t *testing.T) {
	m, path := newSQLite(t)

	report, err := m.Run(migrations.Up, 0)
	require.NoError(t, err)
	assert.True(t, report.Changed)
	assert.Equal(t, uint(1), report.Version)
	assert.False(t, report.Dirty)
	assert.True(t, tableExists(t, path))
}

func TestRun_UpTwiceIsNoChange(t *testing.T) {
	m, _ := newSQLite(t)

	_, err := m.Run(migrations.Up, 0)
	require.NoError(t, err)
	report, err := m.Run(migrations.Up, 0)
	require.NoError(t, err)
	assert.False(t, report.Changed)
	assert.Equal(t, uint(1), report.Version)
}

func TestRun_DownDropsCharacters(t *testing.T) {
	m, path := newSQLite(t)

	_, err := m.Run(migrations.Up, 0)
	require.NoError(t, err)
	report, err := m.Run(migrations.Down, 1)
	require.NoError(t, err)
	assert.True(t, report.Changed)
	assert.False(t, tableExists(t, path))
}

func TestRun_SchemaRejectsOutOfRangeDay(t *testing.T) {
	m, path := newSQLite(t)
	_, err := m.Run(migrations.Up, 0)
	require.NoError(t, err)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`INSERT INTO characters VALUES ('Abigail', 'Fall', 29, 1, 'Amethyst')`)
	assert.Error(t, err)
	_, err = db.Exec(`INSERT INTO characters VALUES ('Abigail', 'Autumn', 13, 1, 'Amethyst')`)
	assert.Error(t, err)
}

func TestRun_NegativeSteps(t *testing.T) {
	m, _ := newSQLite(t)
	_, err := m.Run(migrations.Up, -1)
	assert.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	d, err := migrations.ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, migrations.Down, d)

	_, err = migrations.ParseDirection("sideways")
	assert.Error(t, err)
}
