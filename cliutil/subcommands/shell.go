// Package subcommands dispatches command line arguments to
// self-registering commands.
//
// Each command is a singleton value of a unique type, registered from
// the init function of the package that defines it. Commands are
// identified by that package's import path: a command in package
// .../cli/encode is reachable as "encode" under the root command in
// .../cli. Commands may embed flag.FlagSet for flags and declare a
// struct field named Arguments for positional arguments.
package subcommands

import (
	"flag"
	"fmt"
	"io/ioutil"
	"reflect"
	"strings"
	"sync"

	"pngstash.org/pngstash/cliutil/positional"
)

type command struct {
	pkg string
	cmd interface{}
}

// Shell is a collection of commands, identified by the packages that
// define them.
type Shell struct {
	mu       sync.Mutex
	commands []command
}

func pkgName(cmd interface{}) string {
	return reflect.ValueOf(cmd).Elem().Type().PkgPath()
}

// Register a new command. Panics if cmd is not a pointer to a value
// of a named type, as the package path of the type is the command's
// identity.
func (s *Shell) Register(cmd interface{}) {
	pkg := pkgName(cmd)
	if pkg == "" {
		panic("Register called on unnamed type")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, command{pkg: pkg, cmd: cmd})
}

func (s *Shell) children(pkg string) []command {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found []command
	for _, c := range s.commands {
		if strings.HasPrefix(c.pkg, pkg+"/") {
			found = append(found, c)
		}
	}
	return found
}

// ErrMissingCommand indicates that a subcommand is needed but was
// not given.
type ErrMissingCommand struct{}

func (ErrMissingCommand) Error() string {
	return "missing mandatory subcommand"
}

// Parse walks the command line in args, starting from the root
// command cmd registered under the given program name. Flags and
// positional arguments are parsed at each level. The returned Result
// identifies the active command and can print usage; it is valid
// even when error is not nil.
func (s *Shell) Parse(cmd interface{}, name string, args []string) (Result, error) {
	result := Result{shell: s}
	pkg := pkgName(cmd)
	result.add(name, pkg, cmd)

	for {
		parser, ok := cmd.(FlagParser)
		if !ok {
			parser = &flag.FlagSet{}
		}
		if fl, ok := parser.(FlagSetter); ok {
			// The flag library wants to print errors and exit on its
			// own; silence it so all error output goes through the
			// caller.
			fl.Init(pkg, flag.ContinueOnError)
			fl.SetOutput(ioutil.Discard)
		}
		if err := parser.Parse(args); err != nil {
			return result, err
		}
		args = parser.Args()

		var descended bool
		for _, sub := range s.children(pkg) {
			if len(args) > 0 && sub.pkg == pkg+"/"+args[0] {
				pkg = sub.pkg
				cmd = sub.cmd
				result.add(args[0], pkg, cmd)
				args = args[1:]
				descended = true
				break
			}
		}
		if descended {
			continue
		}

		if argsField := reflect.ValueOf(cmd).Elem().FieldByName("Arguments"); argsField.IsValid() {
			if err := positional.Parse(argsField.Addr().Interface(), args); err != nil {
				return result, err
			}
			return result, nil
		}

		if _, runnable := cmd.(Runner); !runnable || len(s.children(pkg)) > 0 {
			if len(args) == 0 {
				if !runnable {
					return result, ErrMissingCommand{}
				}
				return result, nil
			}
			return result, fmt.Errorf("command not found: %v", args[0])
		}
		if len(args) > 0 {
			return result, positional.ErrTooManyArgs{}
		}
		return result, nil
	}
}
