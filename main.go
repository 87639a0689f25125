package main

import (
	"os"

	"pngstash.org/pngstash/cli"
)

import (
	// CLI subcommands
	_ "pngstash.org/pngstash/cli/decode"
	_ "pngstash.org/pngstash/cli/encode"
	_ "pngstash.org/pngstash/cli/print"
	_ "pngstash.org/pngstash/cli/remove"
	_ "pngstash.org/pngstash/cli/version"
)

func main() {
	code := cli.Main()
	os.Exit(code)
}
