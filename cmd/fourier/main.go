// Command fourier decomposes periodic signals and drawn curves into Fourier
// series and traces them with epicycles.
//
// Usage:
//
//	fourier <command> [flags]
//
// Commands:
//
//	list     list the built-in signals
//	coeffs   print the coefficients of a signal or curve
//	plot     overlay a signal and its approximation
//	trace    export epicycle frames as CSV
//
// Examples:
//
//	fourier list
//	fourier coeffs -signal square -n 8 -polar
//	fourier coeffs -curve sketch.csv -n 20
//	fourier plot -signal sawtooth -n 12 -html sawtooth.html
//	fourier trace -curve sketch.csv -n 50 -o frames.csv.zst
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-epicycle/dsp/signal"
	"github.com/cwbudde/algo-epicycle/internal/logging"
)

type command struct {
	name    string
	summary string
	run     func(env *env, args []string) error
}

var commands = []command{
	{"list", "list the built-in signals", runList},
	{"coeffs", "print the coefficients of a signal or curve", runCoeffs},
	{"plot", "overlay a signal and its approximation", runPlot},
	{"trace", "export epicycle frames as CSV", runTrace},
}

// env carries the streams and shared state of one invocation.
type env struct {
	stdout, stderr io.Writer
	log            *logging.DefaultLogger
	signals        *signal.Registry
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	e := &env{
		stdout:  stdout,
		stderr:  stderr,
		log:     logging.New(stderr),
		signals: signal.NewRegistry(),
	}

	if len(args) == 0 {
		e.usage()
		return flag.ErrHelp
	}

	name := args[0]
	for _, c := range commands {
		if c.name == name {
			return c.run(e, args[1:])
		}
	}
	if name == "help" || name == "-h" || name == "-help" {
		e.usage()
		return nil
	}

	e.usage()
	return fmt.Errorf("unknown command %q", name)
}

func (e *env) usage() {
	fmt.Fprintf(e.stderr, "Usage: fourier <command> [flags]\n\n")
	fmt.Fprintf(e.stderr, "Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(e.stderr, "  %-8s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(e.stderr, "\nRun 'fourier <command> -h' for command flags.\n")
}

// newFlagSet returns a flag set for one command with the shared -v flag.
func (e *env) newFlagSet(name string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	verbose := fs.Bool("v", false, "log debug details to stderr")
	return fs, verbose
}

func (e *env) parse(fs *flag.FlagSet, verbose *bool, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		e.log.SetLevel(logging.DebugLevel)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: unexpected arguments: %v", fs.Name(), fs.Args())
	}
	return nil
}
