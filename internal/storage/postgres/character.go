package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cory-johannsen/almanac/internal/character"
)

const selectColumns = `SELECT name, birthday_season, birthday_day, is_bachelor, best_gift FROM characters`

// Insert stores a new character.
//
// Precondition: c must satisfy c.Validate().
// Postcondition: Returns nil, character.ErrCharacterNameTaken on a duplicate name, or a wrapped error.
func (s *Store) Insert(ctx context.Context, c *character.Character) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO characters (name, birthday_season, birthday_day, is_bachelor, best_gift)
		VALUES ($1, $2, $3, $4, $5)`,
		c.Name, string(c.BirthdaySeason), c.BirthdayDay, c.IsBachelor, c.BestGift,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return character.ErrCharacterNameTaken
		}
		return fmt.Errorf("inserting character: %w", err)
	}
	return nil
}

// List returns every character ordered by name.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (s *Store) List(ctx context.Context) ([]*character.Character, error) {
	rows, err := s.db.Query(ctx, selectColumns+` ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing characters: %w", err)
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
	return chars, rows.Err()
}

// GetByName returns the character whose name equals name exactly.
//
// Postcondition: Returns the Character or character.ErrCharacterNotFound.
func (s *Store) GetByName(ctx context.Context, name string) (*character.Character, error) {
	c, err := scanCharacter(s.db.QueryRow(ctx, selectColumns+` WHERE name = $1`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, character.ErrCharacterNotFound
		}
		return nil, err
	}
	return c, nil
}

// UpdateField sets one column of the named character. The column comes from the field
// registry; the value and name are bound as parameters.
//
// Precondition: field must come from character.LookupField or character.Fields.
// Postcondition: Returns the rows affected (0 when no character matches), or
// character.ErrCharacterNameTaken when a rename collides.
func (s *Store) UpdateField(ctx context.Context, name string, field character.Field, value character.Value) (int64, error) {
	if field.IsZero() {
		return 0, errors.New("updating character: unregistered field")
	}
	tag, err := s.db.Exec(ctx,
		fmt.Sprintf(`UPDATE characters SET %s = $1 WHERE name = $2`, field.Column()),
		value.Arg(), name,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, character.ErrCharacterNameTaken
		}
		return 0, fmt.Errorf("updating character %s: %w", field.Column(), err)
	}
	return tag.RowsAffected(), nil
}

func scanCharacter(row pgx.Row) (*character.Character, error) {
	var (
		c      character.Character
		season string
	)
	if err := row.Scan(&c.Name, &season, &c.BirthdayDay, &c.IsBachelor, &c.BestGift); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning character row: %w", err)
	}
	s, err := character.ParseSeason(season)
	if err != nil {
		return nil, fmt.Errorf("scanning character %s: %w", c.Name, err)
	}
	c.BirthdaySeason = s
	return &c, nil
}
