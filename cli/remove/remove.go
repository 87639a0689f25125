package remove

import (
	"pngstash.org/pngstash/cli"
	"pngstash.org/pngstash/cliutil/subcommands"
)

type removeCommand struct {
	subcommands.Description
	Arguments struct {
		Path string
		Type string
	}
}

func (c *removeCommand) Run() error {
	img, err := cli.LoadImage(c.Arguments.Path)
	if err != nil {
		return err
	}
	removed, err := img.RemoveChunk(c.Arguments.Type)
	if err != nil {
		return err
	}
	cli.Debug(struct {
		Op    string
		Path  string
		Type  string
		Bytes uint32
	}{
		Op:    "remove",
		Path:  c.Arguments.Path,
		Type:  removed.Type().String(),
		Bytes: removed.Length(),
	})
	return cli.SaveImage(c.Arguments.Path, img)
}

var remove = removeCommand{
	Description: "remove a chunk from a PNG file",
}

func init() {
	subcommands.Register(&remove)
}
