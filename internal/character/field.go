package character

import (
	"errors"
	"fmt"
	"strings"
)

// Field names, which are also the column names of the characters table.
const (
	FieldName           = "name"
	FieldBirthdaySeason = "birthday_season"
	FieldBirthdayDay    = "birthday_day"
	FieldIsBachelor     = "is_bachelor"
	FieldBestGift       = "best_gift"
)

// ErrExtraValueTokens is returned by Field.Parse when a single-token kind is given more
// than one value token.
var ErrExtraValueTokens = errors.New("too many value tokens")

// Field describes one mutable column of a Character. Fields can only be obtained from
// the registry, so Column always names a real column.
type Field struct {
	name string
	kind Kind
}

// Name returns the field name as typed by users.
func (f Field) Name() string { return f.name }

// Column returns the table column backing the field.
func (f Field) Column() string { return f.name }

// Kind returns the value kind used to validate the field.
func (f Field) Kind() Kind { return f.kind }

// IsZero reports whether f was not obtained from the registry.
func (f Field) IsZero() bool { return f.name == "" }

// String returns the field name.
func (f Field) String() string { return f.name }

// Parse validates the value tokens for f. Text fields join every token; the other
// kinds take exactly one token.
//
// Precondition: f must come from the registry.
// Postcondition: Returns a Value whose Kind equals f.Kind(), or an error. Extra tokens for a
// single-token kind yield ErrExtraValueTokens; bad tokens yield a *ValidationError.
func (f Field) Parse(tokens []string) (Value, error) {
	if f.kind == KindText {
		t, err := ParseText(tokens)
		if err != nil {
			return nil, &ValidationError{Field: f.name, Err: ErrEmptyText}
		}
		return t, nil
	}
	if len(tokens) == 0 {
		return nil, &ValidationError{Field: f.name, Err: ErrEmptyText}
	}
	if len(tokens) > 1 {
		return nil, fmt.Errorf("%w: %s takes a single value, got %d", ErrExtraValueTokens, f.name, len(tokens))
	}

	var (
		v   Value
		err error
	)
	switch f.kind {
	case KindSeason:
		v, err = ParseSeason(tokens[0])
	case KindDay:
		v, err = ParseDay(tokens[0])
	case KindBool:
		v, err = ParseBool(tokens[0])
	default:
		return nil, fmt.Errorf("field %q has no value kind", f.name)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

var registry = []Field{
	{name: FieldName, kind: KindText},
	{name: FieldBirthdaySeason, kind: KindSeason},
	{name: FieldBirthdayDay, kind: KindDay},
	{name: FieldIsBachelor, kind: KindBool},
	{name: FieldBestGift, kind: KindText},
}

// Fields returns the mutable fields in column order.
func Fields() []Field {
	out := make([]Field, len(registry))
	copy(out, registry)
	return out
}

// FieldNames returns the names of all mutable fields in column order.
func FieldNames() []string {
	names := make([]string, len(registry))
	for i, f := range registry {
		names[i] = f.name
	}
	return names
}

// LookupField resolves a field name case-insensitively.
//
// Postcondition: Returns the registered Field, or a *ValidationError wrapping
// ErrUnknownField that lists every valid name.
func LookupField(token string) (Field, error) {
	for _, f := range registry {
		if strings.EqualFold(token, f.name) {
			return f, nil
		}
	}
	return Field{}, &ValidationError{
		Input:    token,
		Expected: "one of [" + strings.Join(FieldNames(), ", ") + "]",
		Err:      ErrUnknownField,
	}
}
