package main

import (
	"errors"
	"fmt"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for argument handling.
var (
	ErrTooManyArgs     = errors.New("too many arguments: expected one markdown file")
	ErrConflictingMode = errors.New("--check, --stdout and --outline are mutually exclusive")
)

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain runs mdnumber with args (including the program name) and returns
// the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseNumberFlags(args[1:], env.Stderr)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitFailure
	}

	switch {
	case flags.common.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case flags.common.version:
		fmt.Fprintf(env.Stdout, "mdnumber %s\n", Version)
		return ExitSuccess
	}

	if len(positional) == 0 {
		printUsage(env.Stdout)
		return ExitFailure
	}
	if len(positional) > 1 {
		fmt.Fprintln(env.Stderr, ErrTooManyArgs)
		return ExitFailure
	}
	if flags.mode.selected() > 1 {
		fmt.Fprintln(env.Stderr, ErrConflictingMode)
		return ExitFailure
	}

	if err := runNumber(positional[0], flags, env); err != nil {
		if !errors.Is(err, ErrNeedsNumbering) {
			fmt.Fprintln(env.Stderr, formatError(err, positional[0]))
		}
		return ExitFailure
	}
	return ExitSuccess
}
