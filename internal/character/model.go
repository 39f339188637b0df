// Package character defines the character domain model, the registry of mutable
// fields, and the pure value parsers shared by every command that writes a character.
package character

import (
	"fmt"
	"strings"
)

// MinDay and MaxDay bound a birthday day; every season has 28 days.
const (
	MinDay = 1
	MaxDay = 28
)

// Character is one catalog entry. Name is the unique key and is compared
// case-sensitively as stored.
type Character struct {
	Name           string
	BirthdaySeason Season
	BirthdayDay    int
	IsBachelor     bool
	BestGift       string
}

// Validate checks the record invariants that the store schema also enforces.
//
// Postcondition: Returns nil if c is storable, or a *ValidationError for the first violation.
func (c *Character) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: FieldName, Input: c.Name, Err: ErrEmptyText}
	}
	if _, err := ParseSeason(string(c.BirthdaySeason)); err != nil {
		return err
	}
	if c.BirthdayDay < MinDay || c.BirthdayDay > MaxDay {
		return &ValidationError{
			Field: FieldBirthdayDay,
			Input: fmt.Sprint(c.BirthdayDay),
			Err:   ErrDayOutOfRange,
		}
	}
	if strings.TrimSpace(c.BestGift) == "" {
		return &ValidationError{Field: FieldBestGift, Err: ErrEmptyText}
	}
	return nil
}
