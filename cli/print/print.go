package print

import (
	"flag"
	"fmt"

	"github.com/tv42/zbase32"

	"pngstash.org/pngstash/cli"
	"pngstash.org/pngstash/cliutil/subcommands"
)

type printCommand struct {
	subcommands.Description
	flag.FlagSet
	Flags struct {
		Private bool
	}
	Arguments struct {
		Path string
	}
}

func (c *printCommand) Run() error {
	img, err := cli.LoadImage(c.Arguments.Path)
	if err != nil {
		return err
	}
	for _, ch := range img.Chunks() {
		if c.Flags.Private && ch.Type().IsPublic() {
			continue
		}
		fmt.Printf("%v\n", ch)
		if cli.Verbose() {
			if msg, err := ch.DataAsString(); err == nil {
				fmt.Printf("\t%q\n", msg)
			} else {
				// not text; zbase32 keeps the dump terminal-safe
				fmt.Printf("\tzbase32:%s\n", zbase32.EncodeToString(ch.Data()))
			}
		}
	}
	return nil
}

var print = printCommand{
	Description: "list the chunks in a PNG file",
}

func init() {
	print.BoolVar(&print.Flags.Private, "private", false, "show only non-public chunks")
	subcommands.Register(&print)
}
