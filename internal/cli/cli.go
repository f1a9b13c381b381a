// Package cli handles command line interface logic
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pborman/getopt"
	"github.com/retroenv/chip8disasm/internal/options"
)

// ParseFlags parses the given command line arguments, the first argument
// being the program name.
func ParseFlags(args []string) (options.Program, error) {
	var opts options.Program
	var help bool
	flags := getopt.New()
	flags.SetProgram("chip8disasm")
	readOptionFlags(flags, &opts)
	flags.BoolVarLong(&help, "help", 'h', "show this help and exit")

	if err := flags.Getopt(args, nil); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	if help {
		return opts, &UsageError{flags: flags, msg: "help requested", help: true}
	}

	if err := validateArgs(flags.Args()); err != nil {
		err.flags = flags
		return opts, err
	}
	if err := validateOptions(opts); err != nil {
		err.flags = flags
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *getopt.Set
	msg   string
	help  bool
}

func (e *UsageError) Error() string {
	return e.msg
}

// HelpRequested returns whether the usage was explicitly asked for, in which
// case the program exits successfully after showing it.
func (e *UsageError) HelpRequested() bool {
	return e.help
}

// ShowUsage prints the usage information to stdout.
func (e *UsageError) ShowUsage() {
	e.WriteUsage(os.Stdout)
}

// WriteUsage writes the usage information to the given writer.
func (e *UsageError) WriteUsage(w io.Writer) {
	if e.msg != "" && !e.help {
		_, _ = fmt.Fprintf(w, "%s\n\n", e.msg)
	}
	if e.flags != nil {
		e.flags.PrintUsage(w)
	}
}

// validateArgs rejects positional arguments, all input is passed by flags.
func validateArgs(args []string) *UsageError {
	if len(args) > 0 {
		return &UsageError{
			msg: fmt.Sprintf("Unexpected argument %s found, pass the file to disassemble with --file", args[0]),
		}
	}
	return nil
}

// validateOptions checks that all required options are set.
func validateOptions(opts options.Program) *UsageError {
	if opts.Input == "" {
		return &UsageError{msg: "Missing required option --file"}
	}
	if opts.Output == "" {
		return &UsageError{msg: "Missing required option --output"}
	}
	return nil
}

func readOptionFlags(flags *getopt.Set, opts *options.Program) {
	flags.StringVarLong(&opts.Input, "file", 'f', "name of the binary CHIP-8 program to disassemble", "FILE")
	flags.StringVarLong(&opts.Output, "output", 'o', "name of the output text file for the listing", "OUTPUT")
	flags.BoolVarLong(&opts.Debug, "debug", 0, "enable debugging options for extended logging")
	flags.BoolVarLong(&opts.Quiet, "quiet", 'q', "perform operations quietly")
}
