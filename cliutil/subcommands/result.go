package subcommands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"text/tabwriter"

	"pngstash.org/pngstash/cliutil/positional"
)

type atom struct {
	pkg string
	cmd interface{}
}

// Result describes the outcome of parsing a command line.
type Result struct {
	shell *Shell
	name  string
	list  []atom
}

func (r *Result) add(name string, pkg string, cmd interface{}) {
	if r.name != "" {
		name = " " + name
	}
	r.name += name
	r.list = append(r.list, atom{pkg: pkg, cmd: cmd})
}

// Name returns the full name of the active command, including its
// parents.
func (r *Result) Name() string {
	return r.name
}

// ListCommands returns the commands encountered while parsing. Index
// 0 is the root, the last item is the active command.
func (r *Result) ListCommands() []interface{} {
	l := make([]interface{}, len(r.list))
	for i, a := range r.list {
		l[i] = a.cmd
	}
	return l
}

func (r *Result) last() *atom {
	return &r.list[len(r.list)-1]
}

func (r *Result) synopsis() string {
	cmd := r.last().cmd
	if s, ok := cmd.(SynopsisGetter); ok {
		return s.GetSynopsis()
	}

	var syn []string
	if v, ok := cmd.(VisiterAll); ok {
		var opts bool
		v.VisitAll(func(*flag.Flag) { opts = true })
		if opts {
			syn = append(syn, "[OPT..]")
		}
	}
	if argsField := reflect.ValueOf(cmd).Elem().FieldByName("Arguments"); argsField.IsValid() {
		syn = append(syn, positional.Usage(argsField.Addr().Interface()))
	} else if len(r.shell.children(r.last().pkg)) > 0 {
		syn = append(syn, "COMMAND..")
	}
	return strings.Join(syn, " ")
}

// Usage writes a usage message for the active command to standard
// error.
func (r *Result) Usage() {
	r.UsageTo(os.Stderr)
}

// UsageTo writes a usage message for the active command to w.
func (r *Result) UsageTo(w io.Writer) {
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  %s %s\n", r.name, r.synopsis())

	cmd := r.last().cmd
	if v, ok := cmd.(VisiterAll); ok {
		var header bool
		v.VisitAll(func(f *flag.Flag) {
			if !header {
				fmt.Fprintf(w, "\nOptions:\n")
				header = true
			}
			fmt.Fprintf(w, "  -%s=%s: %s\n", f.Name, f.DefValue, f.Usage)
		})
	}

	subs := r.shell.children(r.last().pkg)
	if len(subs) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		// +1 for the slash
		dropPrefix := len(r.last().pkg) + 1
		tw := tabwriter.NewWriter(w, 0, 0, 4, ' ', 0)
		for _, c := range subs {
			desc := ""
			if d, ok := c.cmd.(DescriptionGetter); ok {
				desc = "\t" + d.GetDescription()
			}
			sub := strings.Replace(c.pkg[dropPrefix:], "/", " ", -1)
			fmt.Fprintf(tw, "  %s%s\n", sub, desc)
		}
		tw.Flush()
	}
}
