// Package test holds fixture commands for exercising the
// subcommands shell.
package test

import (
	"flag"

	"pngstash.org/pngstash/cliutil/subcommands"
)

// Root is the top of the fixture command hierarchy.
type Root struct {
	flag.FlagSet
	Config struct {
		Verbose bool
	}
}

// Fixture is the registered root command instance.
var Fixture = Root{}

func init() {
	Fixture.BoolVar(&Fixture.Config.Verbose, "v", false, "verbose output")
	subcommands.Register(&Fixture)
}
