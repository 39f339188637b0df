package character_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/almanac/internal/character"
)

// randomCase flips the case of each rune of s according to mask.
func randomCase(s string, mask []bool) string {
	var b strings.Builder
	for i, r := range s {
		if i < len(mask) && mask[i] {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteString(strings.ToLower(string(r)))
		}
	}
	return b.String()
}

func TestParseSeason_Canonical(t *testing.T) {
	tests := []struct {
		input string
		want  character.Season
	}{
		{"spring", character.Spring},
		{"SUMMER", character.Summer},
		{"Fall", character.Fall},
		{"wInTeR", character.Winter},
	}
	for _, tt := range tests {
		got, err := character.ParseSeason(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseSeason_Unknown(t *testing.T) {
	_, err := character.ParseSeason("autumn")
	require.Error(t, err)
	assert.ErrorIs(t, err, character.ErrUnknownSeason)
	assert.Contains(t, err.Error(), "autumn")
	assert.Contains(t, err.Error(), "Spring, Summer, Fall, Winter")
}

func TestPropertyParseSeason_AnyCaseMatches(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seasons := character.Seasons()
		s := seasons[rapid.IntRange(0, len(seasons)-1).Draw(t, "season")]
		mask := rapid.SliceOfN(rapid.Bool(), len(s), len(s)).Draw(t, "mask")

		got, err := character.ParseSeason(randomCase(string(s), mask))
		if err != nil {
			t.Fatalf("season %q with mask %v failed: %v", s, mask, err)
		}
		if got != s {
			t.Fatalf("got %q, want %q", got, s)
		}
	})
}

func TestPropertyParseSeason_OtherTokensFail(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		token := rapid.StringMatching(`[a-zA-Z0-9]{0,10}`).Draw(t, "token")
		isSeason := false
		for _, s := range character.Seasons() {
			if strings.EqualFold(token, string(s)) {
				isSeason = true
			}
		}
		_, err := character.ParseSeason(token)
		if isSeason != (err == nil) {
			t.Fatalf("token %q: season=%v err=%v", token, isSeason, err)
		}
	})
}

func TestParseDay_Bounds(t *testing.T) {
	for _, ok := range []string{"1", "13", "28"} {
		_, err := character.ParseDay(ok)
		assert.NoError(t, err, "day %s", ok)
	}
	for _, bad := range []string{"0", "29", "100"} {
		_, err := character.ParseDay(bad)
		assert.ErrorIs(t, err, character.ErrDayOutOfRange, "day %s", bad)
	}
}

func TestParseDay_NotANumber(t *testing.T) {
	for _, bad := range []string{"", "x", "1.5", "twelve", "-3"} {
		_, err := character.ParseDay(bad)
		assert.ErrorIs(t, err, character.ErrNotANumber, "input %q", bad)
	}
}

func TestParseDay_Huge(t *testing.T) {
	_, err := character.ParseDay("99999999999999999999")
	assert.ErrorIs(t, err, character.ErrDayOutOfRange)
}

func TestPropertyParseDay_SucceedsIffInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := rapid.IntRange(-1000, 1000).Draw(t, "day")
		got, err := character.ParseDay(strconv.Itoa(d))
		inRange := d >= character.MinDay && d <= character.MaxDay
		if inRange {
			if err != nil {
				t.Fatalf("day %d rejected: %v", d, err)
			}
			if int(got) != d {
				t.Fatalf("got %d, want %d", got, d)
			}
			return
		}
		if err == nil {
			t.Fatalf("day %d accepted", d)
		}
	})
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input string
		want  character.Bool
	}{
		{"true", true},
		{"TRUE", true},
		{"false", false},
		{"False", false},
	}
	for _, tt := range tests {
		got, err := character.ParseBool(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"yes", "no", "1", "0", "t", ""} {
		_, err := character.ParseBool(bad)
		assert.ErrorIs(t, err, character.ErrUnknownBool, "input %q", bad)
	}
}

func TestParseText(t *testing.T) {
	got, err := character.ParseText([]string{"Fish", "Taco"})
	require.NoError(t, err)
	assert.Equal(t, character.Text("Fish Taco"), got)

	_, err = character.ParseText(nil)
	assert.ErrorIs(t, err, character.ErrEmptyText)
}

func TestValidationError_Message(t *testing.T) {
	_, err := character.ParseDay("31")
	var verr *character.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, character.FieldBirthdayDay, verr.Field)
	assert.Equal(t, "31", verr.Input)
	assert.Equal(t, `day out of range "31" for birthday_day: must be a whole number between 1 and 28`, err.Error())
}
