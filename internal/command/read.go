package command

import "strings"

// readAllKeyword selects every character instead of a name lookup.
const readAllKeyword = "all"

// BuildRead processes "read all" and "read <name>". Multi-token names are joined with
// single spaces, the same way text values are joined by add and change.
//
// Postcondition: Returns a SelectAllOperation, a SelectOperation, or a *UsageError when
// no argument is given.
func BuildRead(args []string) (Operation, error) {
	if len(args) == 0 {
		return nil, &UsageError{Command: "read", Usage: UsageRead, Detail: "read needs a name or \"all\""}
	}
	if len(args) == 1 && args[0] == readAllKeyword {
		return SelectAllOperation{}, nil
	}
	return SelectOperation{Name: strings.Join(args, " ")}, nil
}
