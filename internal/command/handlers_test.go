package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/almanac/internal/character"
)

func TestBuildAdd_Valid(t *testing.T) {
	op, err := BuildAdd([]string{"abigail", "fall", "13", "true", "amethyst"})
	require.NoError(t, err)

	ins, ok := op.(InsertOperation)
	require.True(t, ok)
	assert.Equal(t, &character.Character{
		Name:           "abigail",
		BirthdaySeason: character.Fall,
		BirthdayDay:    13,
		IsBachelor:     true,
		BestGift:       "amethyst",
	}, ins.Character)
}

func TestBuildAdd_GiftWithSpaces(t *testing.T) {
	op, err := BuildAdd([]string{"Lewis", "spring", "7", "false", "Autumn's", "Beauty"})
	require.NoError(t, err)
	assert.Equal(t, "Autumn's Beauty", op.(InsertOperation).Character.BestGift)
}

func TestBuildAdd_TooFewArgs(t *testing.T) {
	for n := 0; n < 5; n++ {
		args := []string{"a", "fall", "1", "true", "x"}[:n]
		_, err := BuildAdd(args)
		var usage *UsageError
		require.ErrorAs(t, err, &usage, "arg count %d", n)
		assert.Equal(t, "add", usage.Command)
		assert.Contains(t, usage.Error(), "got")
	}
}

func TestBuildAdd_FirstFailureWins(t *testing.T) {
	_, err := BuildAdd([]string{"x", "monsoon", "99", "maybe", "gift"})
	assert.ErrorIs(t, err, character.ErrUnknownSeason)

	_, err = BuildAdd([]string{"x", "fall", "99", "maybe", "gift"})
	assert.ErrorIs(t, err, character.ErrDayOutOfRange)

	_, err = BuildAdd([]string{"x", "fall", "nine", "true", "gift"})
	assert.ErrorIs(t, err, character.ErrNotANumber)

	_, err = BuildAdd([]string{"x", "fall", "9", "maybe", "gift"})
	assert.ErrorIs(t, err, character.ErrUnknownBool)
}

func TestBuildRead(t *testing.T) {
	op, err := BuildRead([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, SelectAllOperation{}, op)

	op, err = BuildRead([]string{"Leah"})
	require.NoError(t, err)
	assert.Equal(t, SelectOperation{Name: "Leah"}, op)

	op, err = BuildRead([]string{"john", "smith"})
	require.NoError(t, err)
	assert.Equal(t, SelectOperation{Name: "john smith"}, op)

	_, err = BuildRead(nil)
	var usage *UsageError
	assert.ErrorAs(t, err, &usage)
}

func TestBuildChange_Season(t *testing.T) {
	op, err := BuildChange([]string{"leah", "birthday_season", "summer"})
	require.NoError(t, err)

	upd, ok := op.(UpdateOperation)
	require.True(t, ok)
	assert.Equal(t, "leah", upd.Target)
	assert.Equal(t, character.FieldBirthdaySeason, upd.Field.Column())
	assert.Equal(t, character.Summer, upd.Value)
}

func TestBuildChange_TextJoins(t *testing.T) {
	op, err := BuildChange([]string{"Caroline", "best_gift", "Green", "Tea"})
	require.NoError(t, err)
	assert.Equal(t, character.Text("Green Tea"), op.(UpdateOperation).Value)
}

func TestBuildChange_UnknownField(t *testing.T) {
	_, err := BuildChange([]string{"leah", "favoritecolor", "blue"})
	require.ErrorIs(t, err, character.ErrUnknownField)
	for _, name := range character.FieldNames() {
		assert.Contains(t, err.Error(), name)
	}
}

func TestBuildChange_ExtraTokensForSingleValue(t *testing.T) {
	_, err := BuildChange([]string{"leah", "birthday_day", "3", "4"})
	var usage *UsageError
	require.ErrorAs(t, err, &usage)
	assert.Equal(t, "change", usage.Command)
}

func TestBuildChange_TooFewArgs(t *testing.T) {
	_, err := BuildChange([]string{"leah", "best_gift"})
	var usage *UsageError
	assert.ErrorAs(t, err, &usage)
}

func TestBuildChange_BadValue(t *testing.T) {
	_, err := BuildChange([]string{"leah", "is_bachelor", "perhaps"})
	assert.ErrorIs(t, err, character.ErrUnknownBool)
}

// Add and change must accept and reject exactly the same value tokens.
func TestPropertyAddAndChangeAcceptSameValues(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		season := rapid.StringMatching(`[A-Za-z]{3,7}`).Draw(t, "season")
		day := rapid.StringMatching(`-?[0-9]{1,3}|[a-z]{1,3}`).Draw(t, "day")
		flag := rapid.SampledFrom([]string{"true", "FALSE", "True", "yes", "0", "t"}).Draw(t, "flag")

		_, seasonAdd := BuildAdd([]string{"n", season, "1", "true", "g"})
		_, seasonChange := BuildChange([]string{"n", "birthday_season", season})
		if (seasonAdd == nil) != (seasonChange == nil) {
			t.Fatalf("season %q: add=%v change=%v", season, seasonAdd, seasonChange)
		}

		_, dayAdd := BuildAdd([]string{"n", "fall", day, "true", "g"})
		_, dayChange := BuildChange([]string{"n", "birthday_day", day})
		if (dayAdd == nil) != (dayChange == nil) {
			t.Fatalf("day %q: add=%v change=%v", day, dayAdd, dayChange)
		}

		_, flagAdd := BuildAdd([]string{"n", "fall", "1", flag, "g"})
		_, flagChange := BuildChange([]string{"n", "is_bachelor", flag})
		if (flagAdd == nil) != (flagChange == nil) {
			t.Fatalf("flag %q: add=%v change=%v", flag, flagAdd, flagChange)
		}
	})
}
