package character

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	seasonDomain = "one of [Spring, Summer, Fall, Winter]"
	dayDomain    = fmt.Sprintf("a whole number between %d and %d", MinDay, MaxDay)
	boolDomain   = "one of [true, false]"
)

// ParseSeason matches token case-insensitively against the four seasons.
//
// Postcondition: Returns the canonical Season, or a *ValidationError wrapping ErrUnknownSeason.
func ParseSeason(token string) (Season, error) {
	for _, s := range Seasons() {
		if strings.EqualFold(token, string(s)) {
			return s, nil
		}
	}
	return "", &ValidationError{
		Field:    FieldBirthdaySeason,
		Input:    token,
		Expected: seasonDomain,
		Err:      ErrUnknownSeason,
	}
}

// ParseDay parses token as a non-negative integer and checks it lies within a season.
//
// Postcondition: Returns a Day in [MinDay, MaxDay], or a *ValidationError wrapping
// ErrNotANumber or ErrDayOutOfRange.
func ParseDay(token string) (Day, error) {
	n, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, &ValidationError{Field: FieldBirthdayDay, Input: token, Expected: dayDomain, Err: ErrDayOutOfRange}
		}
		return 0, &ValidationError{Field: FieldBirthdayDay, Input: token, Expected: dayDomain, Err: ErrNotANumber}
	}
	if n < MinDay || n > MaxDay {
		return 0, &ValidationError{Field: FieldBirthdayDay, Input: token, Expected: dayDomain, Err: ErrDayOutOfRange}
	}
	return Day(n), nil
}

// ParseBool accepts "true" or "false" in any case.
//
// Postcondition: Returns the Bool, or a *ValidationError wrapping ErrUnknownBool.
func ParseBool(token string) (Bool, error) {
	switch strings.ToLower(token) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &ValidationError{
		Field:    FieldIsBachelor,
		Input:    token,
		Expected: boolDomain,
		Err:      ErrUnknownBool,
	}
}

// ParseText joins tokens with single spaces.
//
// Postcondition: Returns the joined Text, or a *ValidationError wrapping ErrEmptyText
// when tokens is empty.
func ParseText(tokens []string) (Text, error) {
	if len(tokens) == 0 {
		return "", &ValidationError{Err: ErrEmptyText}
	}
	return Text(strings.Join(tokens, " ")), nil
}
