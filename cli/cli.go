package cli

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/tv42/jog"

	"pngstash.org/pngstash/cliutil/subcommands"
)

type stash struct {
	flag.FlagSet
	Config struct {
		Verbose    bool
		Debug      bool
		CPUProfile string
	}
	events interface {
		Event(data interface{})
	}
}

var _ = Service(&stash{})

func (s *stash) Setup() (ok bool) {
	if s.Config.Debug {
		s.events = jog.New(nil)
	}

	if s.Config.CPUProfile != "" {
		f, err := os.Create(s.Config.CPUProfile)
		if err != nil {
			log.Printf("cpu profiling: %v", err)
			return false
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Printf("cpu profiling: %v", err)
			return false
		}
	}

	return true
}

func (s *stash) Teardown() (ok bool) {
	if s.Config.CPUProfile != "" {
		pprof.StopCPUProfile()
	}
	return true
}

// Stash gives command-line callables access to global flags, such as
// verbosity.
var Stash = stash{}

func init() {
	Stash.BoolVar(&Stash.Config.Verbose, "v", false, "verbose output")
	Stash.BoolVar(&Stash.Config.Debug, "debug", false, "debug output as JSON events")
	Stash.StringVar(&Stash.Config.CPUProfile, "cpuprofile", "", "write cpu profile to file")

	subcommands.Register(&Stash)
}

// Verbose reports whether the -v flag was given.
func Verbose() bool {
	return Stash.Config.Verbose
}

// Debug logs a structured event when the -debug flag was given.
func Debug(event interface{}) {
	if Stash.events != nil {
		Stash.events.Event(event)
	}
}

// Service is an interface that commands can implement to setup and
// teardown state around the subcommands below them.
//
// As Run and potential multiple Teardown failures makes having a
// single error return impossible, Setup and Teardown only get to
// signal a boolean success. Any detail should be exposed via log.
type Service interface {
	Setup() (ok bool)
	Teardown() (ok bool)
}

func run(result subcommands.Result) (ok bool) {
	var cmd interface{}
	for _, cmd = range result.ListCommands() {
		if svc, isService := cmd.(Service); isService {
			ok = svc.Setup()
			if !ok {
				return false
			}
			defer func() {
				// Teardown failures can cause non-successful exit
				if !svc.Teardown() {
					ok = false
				}
			}()
		}
	}
	run := cmd.(subcommands.Runner)
	err := run.Run()
	if err != nil {
		log.Printf("error: %v", err)
		return false
	}
	return true
}

// Main is the primary entry point into the pngstash command line
// application.
func Main() (exitstatus int) {
	progName := filepath.Base(os.Args[0])
	log.SetFlags(0)
	log.SetPrefix(progName + ": ")

	result, err := subcommands.Parse(&Stash, progName, os.Args[1:])
	if err == flag.ErrHelp {
		result.Usage()
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", result.Name(), err)
		result.Usage()
		return 2
	}

	ok := run(result)
	if !ok {
		return 1
	}
	return 0
}
