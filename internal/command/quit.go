package command

// BuildQuit processes "quit". Arguments are ignored.
func BuildQuit([]string) (Operation, error) {
	return QuitOperation{}, nil
}

// BuildHelp processes "help [command]".
func BuildHelp(args []string) (Operation, error) {
	if len(args) == 0 {
		return HelpOperation{}, nil
	}
	return HelpOperation{Topic: args[0]}, nil
}
