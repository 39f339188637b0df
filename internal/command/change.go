package command

import (
	"errors"

	"github.com/cory-johannsen/almanac/internal/character"
)

const changeArgs = 3

// BuildChange processes "change <name> <field> <value...>". The field's kind selects the
// value parser: text fields join all value tokens, the others take exactly one.
//
// Postcondition: Returns an UpdateOperation for the single resolved field, a *UsageError
// on an arity problem, or a *character.ValidationError for an unknown field or bad value.
func BuildChange(args []string) (Operation, error) {
	if len(args) < changeArgs {
		return nil, arityError("change", UsageChange, changeArgs, len(args))
	}

	field, err := character.LookupField(args[1])
	if err != nil {
		return nil, err
	}

	value, err := field.Parse(args[2:])
	if err != nil {
		if errors.Is(err, character.ErrExtraValueTokens) {
			return nil, &UsageError{Command: "change", Usage: UsageChange, Detail: err.Error()}
		}
		return nil, err
	}

	return UpdateOperation{Target: args[0], Field: field, Value: value}, nil
}
