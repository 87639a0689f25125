package decode

import (
	"fmt"

	"pngstash.org/pngstash/cli"
	"pngstash.org/pngstash/cliutil/subcommands"
	"pngstash.org/pngstash/png"
	"pngstash.org/pngstash/png/chunk"
)

type decodeCommand struct {
	subcommands.Description
	Arguments struct {
		Path string
		Type string
	}
}

func (c *decodeCommand) Run() error {
	typ, err := chunk.TypeFromString(c.Arguments.Type)
	if err != nil {
		return err
	}

	img, err := cli.LoadImage(c.Arguments.Path)
	if err != nil {
		return err
	}
	found := img.ChunkByType(typ.String())
	if found == nil {
		return png.NotFoundError{Type: typ}
	}
	msg, err := found.DataAsString()
	if err != nil {
		return err
	}
	fmt.Printf("Message: %s\n", msg)
	return nil
}

var decode = decodeCommand{
	Description: "show the message hidden in a PNG file",
}

func init() {
	subcommands.Register(&decode)
}
