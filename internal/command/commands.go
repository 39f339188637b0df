// Package command provides the command registry, the line parser, the per-command
// handlers that turn arguments into store operations, and the dispatcher that runs them.
package command

// Kind identifies which handler interprets a parsed command.
type Kind int

// Command kinds. KindNone marks a blank line; KindUnrecognized an unknown keyword.
const (
	KindNone Kind = iota
	KindUnrecognized
	KindAdd
	KindRead
	KindChange
	KindQuit
	KindHelp
)

// String returns the keyword-style name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnrecognized:
		return "unrecognized"
	case KindAdd:
		return "add"
	case KindRead:
		return "read"
	case KindChange:
		return "change"
	case KindQuit:
		return "quit"
	case KindHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Usage lines shown when a command is given the wrong arguments.
const (
	UsageAdd    = "add <name> <season> <day> <true|false> <gift...>"
	UsageRead   = "read all | read <name>"
	UsageChange = "change <name> <field> <value...>"
	UsageQuit   = "quit"
	UsageHelp   = "help [command]"
)

// Command defines a command that can be typed at the prompt.
type Command struct {
	// Name is the exact keyword that selects the command.
	Name string
	// Kind selects the handler.
	Kind Kind
	// Usage is the argument synopsis.
	Usage string
	// Help is the short help text.
	Help string
}

// BuiltinCommands returns all commands understood by the catalog prompt.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "add", Kind: KindAdd, Usage: UsageAdd, Help: "Add a character to the catalog"},
		{Name: "read", Kind: KindRead, Usage: UsageRead, Help: "Show every character, or one by name"},
		{Name: "change", Kind: KindChange, Usage: UsageChange, Help: "Change one field of a character"},
		{Name: "help", Kind: KindHelp, Usage: UsageHelp, Help: "Show available commands"},
		{Name: "quit", Kind: KindQuit, Usage: UsageQuit, Help: "Leave the program"},
	}
}
