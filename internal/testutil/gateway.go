package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/almanac/internal/character"
	"github.com/cory-johannsen/almanac/internal/command"
)

// Abigail returns a valid character fixture.
func Abigail() *character.Character {
	return &character.Character{
		Name:           "Abigail",
		BirthdaySeason: character.Fall,
		BirthdayDay:    13,
		IsBachelor:     true,
		BestGift:       "Amethyst",
	}
}

// Lewis returns a second valid character fixture that is not a bachelor.
func Lewis() *character.Character {
	return &character.Character{
		Name:           "Lewis",
		BirthdaySeason: character.Spring,
		BirthdayDay:    7,
		IsBachelor:     false,
		BestGift:       "Autumn's Beauty",
	}
}

// RunGatewayTests exercises the behavior every store must share. newGateway must
// return an empty, migrated store for each call.
func RunGatewayTests(t *testing.T, newGateway func(t *testing.T) command.Gateway) {
	t.Run("InsertThenGet", func(t *testing.T) {
		gw := newGateway(t)
		ctx := context.Background()

		require.NoError(t, gw.Insert(ctx, Abigail()))
		got, err := gw.GetByName(ctx, "Abigail")
		require.NoError(t, err)
		assert.Equal(t, Abigail(), got)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		gw := newGateway(t)
		ctx := context.Background()

		require.NoError(t, gw.Insert(ctx, Abigail()))
		dup := Abigail()
		dup.BestGift = "Pumpkin"
		err := gw.Insert(ctx, dup)
		assert.ErrorIs(t, err, character.ErrCharacterNameTaken)

		got, err := gw.GetByName(ctx, "Abigail")
		require.NoError(t, err)
		assert.Equal(t, "Amethyst", got.BestGift)
	})

	t.Run("GetByNameIsExact", func(t *testing.T) {
		gw := newGateway(t)
		ctx := context.Background()

		require.NoError(t, gw.Insert(ctx, Abigail()))
		_, err := gw.GetByName(ctx, "abigail")
		assert.ErrorIs(t, err, character.ErrCharacterNotFound)
	})

	t.Run("ListEmpty", func(t *testing.T) {
		gw := newGateway(t)
		chars, err := gw.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, chars)
	})

	t.Run("ListOrderedByName", func(t *testing.T) {
		gw := newGateway(t)
		ctx := context.Background()

		require.NoError(t, gw.Insert(ctx, Lewis()))
		require.NoError(t, gw.Insert(ctx, Abigail()))
		chars, err := gw.List(ctx)
		require.NoError(t, err)
		require.Len(t, chars, 2)
		assert.Equal(t, "Abigail", chars[0].Name)
		assert.Equal(t, Lewis(), chars[1])
	})

	t.Run("UpdateEachField", func(t *testing.T) {
		gw := newGateway(t)
		ctx := context.Background()
		require.NoError(t, gw.Insert(ctx, Lewis()))

		updates := []struct {
			field string
			value character.Value
		}{
			{character.FieldBirthdaySeason, character.Summer},
			{character.FieldBirthdayDay, character.Day(28)},
			{character.FieldIsBachelor, character.Bool(true)},
			{character.FieldBestGift, character.Text("Green Tea")},
		}
		for _, u := range updates {
			f, err := character.LookupField(u.field)
			require.NoError(t, err)
			n, err := gw.UpdateField(ctx, "Lewis", f, u.value)
			require.NoError(t, err, u.field)
			assert.Equal(t, int64(1), n, u.field)
		}

		got, err := gw.GetByName(ctx, "Lewis")
		require.NoError(t, err)
		assert.Equal(t, &character.Character{
			Name:           "Lewis",
			BirthdaySeason: character.Summer,
			BirthdayDay:    28,
			IsBachelor:     true,
			BestGift:       "Green Tea",
		}, got)
	})

	t.Run("UpdateSameValueMatches", func(t *testing.T) {
		gw := newGateway(t)
		ctx := context.Background()
		require.NoError(t, gw.Insert(ctx, Abigail()))

		f, err := character.LookupField(character.FieldBestGift)
		require.NoError(t, err)
		for i := 0; i < 2; i++ {
			n, err := gw.UpdateField(ctx, "Abigail", f, character.Text("Amethyst"))
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)
		}
	})

	t.Run("UpdateMissingTarget", func(t *testing.T) {
		gw := newGateway(t)
		ctx := context.Background()
		require.NoError(t, gw.Insert(ctx, Abigail()))

		f, err := character.LookupField(character.FieldBestGift)
		require.NoError(t, err)
		n, err := gw.UpdateField(ctx, "Haley", f, character.Text("Coconut"))
		require.NoError(t, err)
		assert.Zero(t, n)

		got, err := gw.GetByName(ctx, "Abigail")
		require.NoError(t, err)
		assert.Equal(t, Abigail(), got)
	})

	t.Run("Rename", func(t *testing.T) {
		gw := newGateway(t)
		ctx := context.Background()
		require.NoError(t, gw.Insert(ctx, Abigail()))

		f, err := character.LookupField(character.FieldName)
		require.NoError(t, err)
		n, err := gw.UpdateField(ctx, "Abigail", f, character.Text("Abby"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		_, err = gw.GetByName(ctx, "Abigail")
		assert.ErrorIs(t, err, character.ErrCharacterNotFound)
		got, err := gw.GetByName(ctx, "Abby")
		require.NoError(t, err)
		assert.Equal(t, "Amethyst", got.BestGift)
	})

	t.Run("RenameCollision", func(t *testing.T) {
		gw := newGateway(t)
		ctx := context.Background()
		require.NoError(t, gw.Insert(ctx, Abigail()))
		require.NoError(t, gw.Insert(ctx, Lewis()))

		f, err := character.LookupField(character.FieldName)
		require.NoError(t, err)
		_, err = gw.UpdateField(ctx, "Lewis", f, character.Text("Abigail"))
		assert.ErrorIs(t, err, character.ErrCharacterNameTaken)

		chars, err := gw.List(ctx)
		require.NoError(t, err)
		assert.Len(t, chars, 2)
	})

	t.Run("UpdateRejectsZeroField", func(t *testing.T) {
		gw := newGateway(t)
		_, err := gw.UpdateField(context.Background(), "Abigail", character.Field{}, character.Text("x"))
		assert.Error(t, err)
	})

	t.Run("LongName", func(t *testing.T) {
		gw := newGateway(t)
		ctx := context.Background()

		c := Abigail()
		c.Name = strings.Repeat("Abigail", 64)
		require.NoError(t, gw.Insert(ctx, c))
		got, err := gw.GetByName(ctx, c.Name)
		require.NoError(t, err)
		assert.Equal(t, c, got)

		f, err := character.LookupField(character.FieldName)
		require.NoError(t, err)
		n, err := gw.UpdateField(ctx, c.Name, f, character.Text(strings.Repeat("Abby", 100)))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("ValueIsBoundNotInterpolated", func(t *testing.T) {
		gw := newGateway(t)
		ctx := context.Background()
		require.NoError(t, gw.Insert(ctx, Abigail()))

		f, err := character.LookupField(character.FieldBestGift)
		require.NoError(t, err)
		gift := character.Text("x'; DROP TABLE characters; --")
		_, err = gw.UpdateField(ctx, "Abigail", f, gift)
		require.NoError(t, err)

		got, err := gw.GetByName(ctx, "Abigail")
		require.NoError(t, err)
		assert.Equal(t, string(gift), got.BestGift)
	})
}
