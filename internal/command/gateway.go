package command

import (
	"context"

	"github.com/cory-johannsen/almanac/internal/character"
)

// Gateway is the persistent store the dispatcher executes operations against.
// Implementations live in internal/storage.
type Gateway interface {
	// Insert stores a new character.
	// Returns character.ErrCharacterNameTaken if the name already exists.
	Insert(ctx context.Context, c *character.Character) error
	// List returns every character.
	List(ctx context.Context) ([]*character.Character, error)
	// GetByName returns the character with exactly the given name.
	// Returns character.ErrCharacterNotFound if there is none.
	GetByName(ctx context.Context, name string) (*character.Character, error)
	// UpdateField sets one field of the named character and reports the rows affected.
	// Returns character.ErrCharacterNameTaken if a rename collides.
	UpdateField(ctx context.Context, name string, field character.Field, value character.Value) (int64, error)
}
