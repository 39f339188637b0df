package command

import "fmt"

// UsageError reports a command given the wrong number of arguments. It is recovered
// by printing guidance and never ends the prompt loop.
type UsageError struct {
	// Command is the keyword that was misused.
	Command string
	// Usage is the command synopsis.
	Usage string
	// Detail says what was wrong, e.g. the observed argument count.
	Detail string
}

// Error returns the detail followed by the usage synopsis.
func (e *UsageError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("usage: %s", e.Usage)
	}
	return fmt.Sprintf("%s (usage: %s)", e.Detail, e.Usage)
}

func arityError(command, usage string, want, got int) *UsageError {
	return &UsageError{
		Command: command,
		Usage:   usage,
		Detail:  fmt.Sprintf("%s expects at least %d arguments, got %d", command, want, got),
	}
}
