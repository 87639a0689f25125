package version

import (
	"fmt"

	"pngstash.org/pngstash/cliutil/subcommands"
	v "pngstash.org/pngstash/version"
)

type versionCommand struct {
	subcommands.Description
}

func (c *versionCommand) Run() error {
	fmt.Println(v.Version)
	return nil
}

var version = versionCommand{
	Description: "show version number",
}

func init() {
	subcommands.Register(&version)
}
