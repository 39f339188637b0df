package command

import "github.com/cory-johannsen/almanac/internal/character"

const addArgs = 5

// BuildAdd processes "add <name> <season> <day> <true|false> <gift...>".
//
// Postcondition: Returns an InsertOperation, a *UsageError when fewer than five arguments
// are given, or the first *character.ValidationError. Nothing is built on failure.
func BuildAdd(args []string) (Operation, error) {
	if len(args) < addArgs {
		return nil, arityError("add", UsageAdd, addArgs, len(args))
	}

	season, err := character.ParseSeason(args[1])
	if err != nil {
		return nil, err
	}
	day, err := character.ParseDay(args[2])
	if err != nil {
		return nil, err
	}
	bachelor, err := character.ParseBool(args[3])
	if err != nil {
		return nil, err
	}
	gift, err := character.ParseText(args[4:])
	if err != nil {
		return nil, err
	}

	return InsertOperation{Character: &character.Character{
		Name:           args[0],
		BirthdaySeason: season,
		BirthdayDay:    int(day),
		IsBachelor:     bool(bachelor),
		BestGift:       string(gift),
	}}, nil
}
