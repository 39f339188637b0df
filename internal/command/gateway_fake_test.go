package command_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cory-johannsen/almanac/internal/character"
)

// memGateway is an in-memory Gateway that counts writes.
type memGateway struct {
	mu      sync.Mutex
	rows    map[string]character.Character
	writes  int
	failErr error
}

func newMemGateway(seed ...character.Character) *memGateway {
	g := &memGateway{rows: make(map[string]character.Character)}
	for _, c := range seed {
		g.rows[c.Name] = c
	}
	return g
}

func (g *memGateway) Insert(_ context.Context, c *character.Character) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failErr != nil {
		return g.failErr
	}
	if _, ok := g.rows[c.Name]; ok {
		return character.ErrCharacterNameTaken
	}
	g.rows[c.Name] = *c
	g.writes++
	return nil
}

func (g *memGateway) List(_ context.Context) ([]*character.Character, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failErr != nil {
		return nil, g.failErr
	}
	out := make([]*character.Character, 0, len(g.rows))
	for _, c := range g.rows {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (g *memGateway) GetByName(_ context.Context, name string) (*character.Character, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failErr != nil {
		return nil, g.failErr
	}
	c, ok := g.rows[name]
	if !ok {
		return nil, character.ErrCharacterNotFound
	}
	return &c, nil
}

func (g *memGateway) UpdateField(_ context.Context, name string, f character.Field, v character.Value) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failErr != nil {
		return 0, g.failErr
	}
	if f.IsZero() {
		return 0, errors.New("unregistered field")
	}
	c, ok := g.rows[name]
	if !ok {
		return 0, nil
	}
	updated, err := applyField(c, f, v)
	if err != nil {
		return 0, err
	}
	if updated.Name != name {
		if _, taken := g.rows[updated.Name]; taken {
			return 0, character.ErrCharacterNameTaken
		}
		delete(g.rows, name)
	}
	g.rows[updated.Name] = updated
	g.writes++
	return 1, nil
}

func (g *memGateway) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rows)
}

func (g *memGateway) snapshot() map[string]character.Character {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string]character.Character, len(g.rows))
	for k, v := range g.rows {
		out[k] = v
	}
	return out
}

// applyField returns a copy of c with one field set, the way the stores' UPDATE does.
func applyField(c character.Character, f character.Field, v character.Value) (character.Character, error) {
	if f.Kind() != v.Kind() {
		return c, fmt.Errorf("field %s expects %s, got %s", f, f.Kind(), v.Kind())
	}
	switch val := v.(type) {
	case character.Text:
		if f.Name() == character.FieldName {
			c.Name = string(val)
		} else {
			c.BestGift = string(val)
		}
	case character.Season:
		c.BirthdaySeason = val
	case character.Day:
		c.BirthdayDay = int(val)
	case character.Bool:
		c.IsBachelor = bool(val)
	}
	return c, nil
}
