package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for argument handling.
var (
	ErrNoInput     = errors.New("no items file given")
	ErrTooManyArgs = errors.New("too many arguments: expected one items file")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain runs mdrender with args (including the program name) and returns
// the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseRenderFlags(args[1:], env.Stderr)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	switch {
	case flags.common.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case flags.common.version:
		fmt.Fprintf(env.Stdout, "mdrender %s\n", Version)
		return ExitSuccess
	}

	var path string
	switch {
	case len(positional) == 0:
		err = ErrNoInput
		printUsage(env.Stderr)
	case len(positional) > 1:
		err = ErrTooManyArgs
	default:
		path = positional[0]
		err = runRender(ctx, path, flags, env)
	}

	if err != nil {
		fmt.Fprintln(env.Stderr, formatError(err, path))
	}
	return exitCodeFor(err)
}
