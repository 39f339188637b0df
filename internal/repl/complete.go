package repl

import (
	"github.com/chzyer/readline"

	"github.com/cory-johannsen/almanac/internal/command"
)

// Completer builds keyword completion from the command registry. `read` offers `all`
// and `help` offers the command names.
func Completer(reg *command.Registry) readline.AutoCompleter {
	names := reg.Names()
	items := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, cmd := range reg.Commands() {
		switch cmd.Kind {
		case command.KindRead:
			items = append(items, readline.PcItem(cmd.Name, readline.PcItem("all")))
		case command.KindHelp:
			topics := make([]readline.PrefixCompleterInterface, 0, len(names))
			for _, n := range names {
				topics = append(topics, readline.PcItem(n))
			}
			items = append(items, readline.PcItem(cmd.Name, topics...))
		default:
			items = append(items, readline.PcItem(cmd.Name))
		}
	}
	return readline.NewPrefixCompleter(items...)
}
