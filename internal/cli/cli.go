// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"go/token"
	"os"

	"github.com/retroenv/nesgoopcodes/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if !token.IsIdentifier(opts.Package) {
		return opts, &UsageError{
			msg: fmt.Sprintf("'%s' is not a valid package name", opts.Package),
		}
	}

	opts.Input = args[0]
	return opts, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the generated .go file, printed on console if no name given")
	flags.StringVar(&opts.Package, "p", "opcodes", "package name used in the generated file")
	flags.BoolVar(&opts.Inspect, "i", false, "inspect the built table interactively instead of generating code")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: nesgoopcodes [options] <instruction set description file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the description file, please pass the file as last argument", arg),
			}
		}
	}
	return nil
}
