package subcommands

// Default is a single global Shell used for command line argument
// parsing.
var Default Shell

// Register this command on the default Shell.
func Register(cmd interface{}) {
	Default.Register(cmd)
}

// Parse the command line using the default Shell.
//
// In typical use, cmd is the address of the registered root command,
// name is the name of the running program, and args is os.Args[1:].
func Parse(cmd interface{}, name string, args []string) (Result, error) {
	return Default.Parse(cmd, name, args)
}
