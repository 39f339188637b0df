package character

import (
	"errors"
	"fmt"
)

// ErrCharacterNotFound is returned when a character lookup or update matches no row.
var ErrCharacterNotFound = errors.New("character not found")

// ErrCharacterNameTaken is returned when a write would duplicate an existing name.
var ErrCharacterNameTaken = errors.New("character name already taken")

// Validation failure causes. Match them with errors.Is against a *ValidationError.
var (
	ErrUnknownField  = errors.New("field not recognized")
	ErrUnknownSeason = errors.New("unrecognized season")
	ErrNotANumber    = errors.New("not a number")
	ErrDayOutOfRange = errors.New("day out of range")
	ErrUnknownBool   = errors.New("unrecognized boolean")
	ErrEmptyText     = errors.New("value must not be empty")
)

// ValidationError reports a token that failed to parse for a field.
type ValidationError struct {
	// Field is the field name the token was parsed for; empty for field-name lookups.
	Field string
	// Input is the offending token as typed.
	Input string
	// Expected describes the accepted domain, e.g. "one of [true, false]".
	Expected string
	// Err is one of the Err* cause sentinels.
	Err error
}

// Error returns a corrective message naming the input and the accepted domain.
func (e *ValidationError) Error() string {
	msg := e.Err.Error()
	if e.Input != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Input)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s for %s", msg, e.Field)
	}
	if e.Expected != "" {
		msg = fmt.Sprintf("%s: must be %s", msg, e.Expected)
	}
	return msg
}

// Unwrap exposes the cause sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
