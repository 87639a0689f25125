package encode

import (
	"pngstash.org/pngstash/cli"
	"pngstash.org/pngstash/cliutil/positional"
	"pngstash.org/pngstash/cliutil/subcommands"
	"pngstash.org/pngstash/png/chunk"
)

type encodeCommand struct {
	subcommands.Description
	Arguments struct {
		Path    string
		Type    string
		Message string
		positional.Optional
		Output string
	}
}

func (c *encodeCommand) Run() error {
	typ, err := chunk.TypeFromString(c.Arguments.Type)
	if err != nil {
		return err
	}

	img, err := cli.LoadImage(c.Arguments.Path)
	if err != nil {
		return err
	}
	img.AppendChunk(chunk.New(typ, []byte(c.Arguments.Message)))

	out := c.Arguments.Output
	if out == "" {
		out = c.Arguments.Path
	}
	cli.Debug(struct {
		Op     string
		Path   string
		Type   string
		Bytes  int
		Chunks int
	}{
		Op:     "encode",
		Path:   out,
		Type:   typ.String(),
		Bytes:  len(c.Arguments.Message),
		Chunks: len(img.Chunks()),
	})
	return cli.SaveImage(out, img)
}

var encode = encodeCommand{
	Description: "hide a message in a PNG file",
}

func init() {
	subcommands.Register(&encode)
}
