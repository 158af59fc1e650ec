// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AdamLaurie/marc4dasm/internal/options"
	"github.com/retroenv/retrogolib/cli"
)

// quietMode is the legacy positional argument that selects the quiet listing format.
const quietMode = "q"

// ParseFlags parses command line arguments and returns program and disassembler options.
// The arguments are expected without the program name.
func ParseFlags(args []string) (options.Program, options.Disassembler, error) {
	var opts options.Program
	flags := cli.NewFlagSet("marc4dasm")
	flags.AddSection("Parameters", &opts.Parameters)
	flags.AddSection("Flags", &opts.Flags)
	flags.AddPositional(&opts.Positional)

	remaining, err := flags.Parse(args)
	if err != nil {
		// the flag set has printed the usage already
		if errors.Is(err, cli.ErrHelpRequested) {
			return opts, options.Disassembler{}, &UsageError{}
		}
		return opts, options.Disassembler{}, &UsageError{msg: err.Error()}
	}

	if opts.File == "" && opts.Batch == "" {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(flags, opts.Positional, remaining); err != nil {
		return opts, options.Disassembler{}, err
	}

	normalizeOptions(&opts)
	opts.Input = opts.File

	return opts, options.NewDisassembler(opts.Quiet), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *cli.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ExitCode returns the process exit code for the error. Printing the usage
// for a missing input or a help request is not a failure.
func (e *UsageError) ExitCode() int {
	if e.msg == "" {
		return 0
	}
	return 1
}

// ShowUsage prints the usage information.
func (e *UsageError) ShowUsage() {
	if e.flags != nil {
		e.flags.ShowUsage()
	}
}

// validateArgs checks that no flags or extra arguments follow the file to disassemble.
func validateArgs(flags *cli.FlagSet, positional options.Positional, remaining []string) error {
	for _, arg := range append([]string{positional.Mode}, remaining...) {
		if strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	if len(remaining) > 0 {
		return &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("unexpected arguments: %s", strings.Join(remaining, " ")),
		}
	}
	return nil
}

// normalizeOptions applies the legacy trailing Q argument. Any other value
// keeps the verbose listing format.
func normalizeOptions(opts *options.Program) {
	if strings.ToLower(opts.Mode) == quietMode {
		opts.Quiet = true
	}
}
