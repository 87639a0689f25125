// Package echo is a fixture command with positional arguments.
package echo

import (
	"pngstash.org/pngstash/cliutil/positional"
	"pngstash.org/pngstash/cliutil/subcommands"
)

type Command struct {
	subcommands.Description
	Arguments struct {
		Word string
		positional.Optional
		Rest []string
	}
}

func (c *Command) Run() error {
	return nil
}

// Echo is the registered command instance.
var Echo = Command{
	Description: "repeat the arguments",
}

func init() {
	subcommands.Register(&Echo)
}
