package subcommands

import (
	"flag"
	"io"
)

// FlagParser is implemented by commands that take "-foo" style flags.
//
// The typical way to implement this is to embed flag.FlagSet in the
// command struct.
type FlagParser interface {
	Parse(args []string) error
	Args() []string
}

// FlagSetter is used to recognize a flag.FlagSet even when embedded
// in a struct, so its error handling and output can be silenced; the
// shell produces its own usage and error messages.
type FlagSetter interface {
	Init(name string, errorHandling flag.ErrorHandling)
	SetOutput(w io.Writer)
}

// VisiterAll lets a command report the flags it supports, for help
// output. flag.FlagSet implements this.
type VisiterAll interface {
	VisitAll(fn func(*flag.Flag))
}

// Runner marks a command as executable. Parents that exist only to
// hold subcommands do not implement it.
type Runner interface {
	Run() error
}

// DescriptionGetter gives a short description of a command for the
// subcommand listing. Embed Description to implement it.
type DescriptionGetter interface {
	GetDescription() string
}

// SynopsisGetter gives a short summary of the arguments a command
// accepts. Embed Synopsis to implement it, or leave it out to have
// the synopsis generated from flags and the Arguments struct.
type SynopsisGetter interface {
	GetSynopsis() string
}

// Description is a short description of the command it is embedded
// in.
type Description string

var _ DescriptionGetter = Description("")

// GetDescription returns the description. See DescriptionGetter.
func (d Description) GetDescription() string {
	return string(d)
}

// Synopsis is a short summary of the arguments that can be passed to
// the command it is embedded in.
type Synopsis string

var _ SynopsisGetter = Synopsis("")

// GetSynopsis returns the synopsis. See SynopsisGetter.
func (s Synopsis) GetSynopsis() string {
	return string(s)
}
