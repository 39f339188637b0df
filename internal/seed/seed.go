// Package seed loads the initial character roster and inserts it into a store.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/almanac/internal/character"
	"github.com/cory-johannsen/almanac/internal/command"
)

//go:embed characters.yaml
var defaultRoster []byte

// Entry is one character as written in a roster file.
type Entry struct {
	Name           string `yaml:"name"`
	BirthdaySeason string `yaml:"birthday_season"`
	BirthdayDay    int    `yaml:"birthday_day"`
	IsBachelor     bool   `yaml:"is_bachelor"`
	BestGift       string `yaml:"best_gift"`
}

// Character converts e into a validated Character.
//
// Postcondition: Returns a Character satisfying Validate, or a non-nil error.
func (e Entry) Character() (*character.Character, error) {
	season, err := character.ParseSeason(e.BirthdaySeason)
	if err != nil {
		return nil, err
	}
	c := &character.Character{
		Name:           e.Name,
		BirthdaySeason: season,
		BirthdayDay:    e.BirthdayDay,
		IsBachelor:     e.IsBachelor,
		BestGift:       e.BestGift,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Roster is an ordered list of characters to seed.
type Roster struct {
	Characters []Entry `yaml:"characters"`
}

// Parse decodes a YAML roster and validates every entry.
//
// Postcondition: Returns the roster or an error naming the first invalid entry.
func Parse(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	for i, e := range r.Characters {
		if _, err := e.Character(); err != nil {
			return nil, fmt.Errorf("roster entry %d (%q): %w", i, e.Name, err)
		}
	}
	return &r, nil
}

// Default returns the built-in roster.
func Default() *Roster {
	r, err := Parse(defaultRoster)
	if err != nil {
		panic(fmt.Sprintf("seed.Default: %v", err))
	}
	return r
}

// Load reads the roster at path, or the built-in roster when path is empty.
//
// Postcondition: Returns a validated roster or a non-nil error.
func Load(path string) (*Roster, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Report counts what Apply did.
type Report struct {
	Inserted int
	Existing int
}

// Apply inserts every roster character. Characters whose name is already taken are
// left as they are.
//
// Precondition: r must come from Parse, Load or Default.
// Postcondition: Returns counts of inserted and pre-existing characters, or the first
// store error.
func Apply(ctx context.Context, gw command.Gateway, r *Roster, logger *zap.Logger) (Report, error) {
	var rep Report
	for _, e := range r.Characters {
		c, err := e.Character()
		if err != nil {
			return rep, fmt.Errorf("seeding %q: %w", e.Name, err)
		}
		if err := gw.Insert(ctx, c); err != nil {
			if errors.Is(err, character.ErrCharacterNameTaken) {
				rep.Existing++
				continue
			}
			return rep, fmt.Errorf("seeding %q: %w", c.Name, err)
		}
		rep.Inserted++
	}
	logger.Info("roster seeded",
		zap.Int("inserted", rep.Inserted),
		zap.Int("existing", rep.Existing),
	)
	return rep, nil
}
