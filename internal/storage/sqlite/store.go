// Package sqlite implements the character catalog gateway on an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/cory-johannsen/almanac/internal/character"
)

const selectColumns = `SELECT name, birthday_season, birthday_day, is_bachelor, best_gift FROM characters`

// Store persists the catalog in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the SQLite file at path. The schema must already be migrated.
//
// Precondition: path must be non-blank.
// Postcondition: Returns a ready Store or a non-nil error; no handle is left open on error.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Insert stores a new character.
//
// Precondition: c must satisfy c.Validate().
// Postcondition: Returns nil, character.ErrCharacterNameTaken on a duplicate name, or a wrapped error.
func (s *Store) Insert(ctx context.Context, c *character.Character) error {
	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO characters (name, birthday_season, birthday_day, is_bachelor, best_gift)
		VALUES (?, ?, ?, ?, ?)`,
		c.Name, string(c.BirthdaySeason), c.BirthdayDay, c.IsBachelor, c.BestGift,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return character.ErrCharacterNameTaken
		}
		return fmt.Errorf("insert character: %w", err)
	}
	return nil
}

// List returns every character ordered by name.
func (s *Store) List(ctx context.Context) ([]*character.Character, error) {
	rows, err := s.sqlDB.QueryContext(ctx, selectColumns+` ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	chars := make([]*character.Character, 0)
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, err
		}
		chars = append(chars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate characters: %w", err)
	}
	return chars, nil
}

// GetByName returns the character whose name equals name exactly.
//
// Postcondition: Returns the Character or character.ErrCharacterNotFound.
func (s *Store) GetByName(ctx context.Context, name string) (*character.Character, error) {
	c, err := scanCharacter(s.sqlDB.QueryRowContext(ctx, selectColumns+` WHERE name = ?`, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, character.ErrCharacterNotFound
		}
		return nil, err
	}
	return c, nil
}

// UpdateField sets one column of the named character.
//
// Precondition: field must come from character.LookupField or character.Fields.
// Postcondition: Returns the rows matched (0 when no character has that name), or
// character.ErrCharacterNameTaken when a rename collides.
func (s *Store) UpdateField(ctx context.Context, name string, field character.Field, value character.Value) (int64, error) {
	if field.IsZero() {
		return 0, errors.New("update character: unregistered field")
	}
	res, err := s.sqlDB.ExecContext(ctx,
		fmt.Sprintf(`UPDATE characters SET %s = ? WHERE name = ?`, field.Column()),
		value.Arg(), name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, character.ErrCharacterNameTaken
		}
		return 0, fmt.Errorf("update character %s: %w", field.Column(), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update character %s: %w", field.Column(), err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row rowScanner) (*character.Character, error) {
	var (
		c      character.Character
		season string
	)
	if err := row.Scan(&c.Name, &season, &c.BirthdayDay, &c.IsBachelor, &c.BestGift); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan character: %w", err)
	}
	parsed, err := character.ParseSeason(season)
	if err != nil {
		return nil, fmt.Errorf("scan character %s: %w", c.Name, err)
	}
	c.BirthdaySeason = parsed
	return &c, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}
