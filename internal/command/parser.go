package command

import "strings"

// ParsedCommand is one interpreted input line.
type ParsedCommand struct {
	// Kind selects the handler; KindUnrecognized for unknown keywords.
	Kind Kind
	// Name is the first token exactly as typed.
	Name string
	// Args are the remaining tokens, unchanged.
	Args []string
}

// Parse splits line on whitespace and resolves the first token against the registry.
// Unknown keywords are not an error; they produce KindUnrecognized.
//
// Postcondition: Returns KindNone for a blank line. Args is nil when no arguments follow.
func (r *Registry) Parse(line string) ParsedCommand {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ParsedCommand{Kind: KindNone}
	}

	var args []string
	if len(fields) > 1 {
		args = fields[1:]
	}

	pc := ParsedCommand{Kind: KindUnrecognized, Name: fields[0], Args: args}
	if cmd, ok := r.Resolve(fields[0]); ok {
		pc.Kind = cmd.Kind
	}
	return pc
}
