package command

import "github.com/cory-johannsen/almanac/internal/character"

// Operation is a fully validated request built by a handler and executed once by the
// Dispatcher. The concrete type is one of the *Operation structs in this file.
type Operation interface {
	operation()
}

// InsertOperation adds a new character.
type InsertOperation struct {
	Character *character.Character
}

// SelectAllOperation lists every character.
type SelectAllOperation struct{}

// SelectOperation looks up one character by exact name.
type SelectOperation struct {
	Name string
}

// UpdateOperation sets a single field of the target character.
type UpdateOperation struct {
	Target string
	Field  character.Field
	Value  character.Value
}

// QuitOperation ends the prompt loop. It never touches the store.
type QuitOperation struct{}

// HelpOperation describes the available commands, or one command when Topic is set.
type HelpOperation struct {
	Topic string
}

func (InsertOperation) operation()    {}
func (SelectAllOperation) operation() {}
func (SelectOperation) operation()    {}
func (UpdateOperation) operation()    {}
func (QuitOperation) operation()      {}
func (HelpOperation) operation()      {}
