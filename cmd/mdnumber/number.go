package main

import (
	"errors"
	"fmt"
	"time"

	mdnumber "github.com/alnah/go-mdnumber"
	"github.com/alnah/go-mdnumber/internal/fileutil"
	"github.com/alnah/go-mdnumber/internal/hints"
)

// ErrNeedsNumbering is returned in check mode when the file would change.
var ErrNeedsNumbering = errors.New("file needs numbering")

// runNumber applies the heading numberer to path according to flags.
func runNumber(path string, flags *numberFlags, env *Environment) error {
	start := env.Now()

	var (
		report mdnumber.Report
		err    error
	)
	switch {
	case flags.mode.check:
		report, err = checkFile(path, env)
	case flags.mode.stdout:
		report, err = printNumbered(path, env)
	case flags.mode.outline:
		report, err = printOutline(path, env)
	default:
		report, err = rewriteFile(path, flags.common.quiet, env)
	}

	if flags.common.verbose {
		printReport(report, env.Now().Sub(start), env)
	}
	return err
}

// rewriteFile numbers path in place. The file is only written when the
// numbered text differs from its current content.
func rewriteFile(path string, quiet bool, env *Environment) (mdnumber.Report, error) {
	var report mdnumber.Report
	written, err := fileutil.RewriteFile(path, func(content string) (string, error) {
		var out string
		out, report = mdnumber.Number(content)
		return out, nil
	})
	if err != nil {
		return report, err
	}

	if !quiet {
		status := "already numbered"
		if written {
			status = "numbered"
		}
		fmt.Fprintf(env.Stdout, "%s: %d headings %s\n", path, len(report.Headings), status)
	}
	return report, nil
}

// checkFile prints path and returns ErrNeedsNumbering if numbering would
// change it.
func checkFile(path string, env *Environment) (mdnumber.Report, error) {
	content, err := fileutil.ReadText(path)
	if err != nil {
		return mdnumber.Report{}, err
	}

	_, report := mdnumber.Number(content)
	if report.Changed {
		fmt.Fprintln(env.Stdout, path)
		return report, ErrNeedsNumbering
	}
	return report, nil
}

// printNumbered writes the numbered text to stdout.
func printNumbered(path string, env *Environment) (mdnumber.Report, error) {
	content, err := fileutil.ReadText(path)
	if err != nil {
		return mdnumber.Report{}, err
	}

	out, report := mdnumber.Number(content)
	fmt.Fprint(env.Stdout, out)
	return report, nil
}

// printOutline writes the outline of the numbered text to stdout.
func printOutline(path string, env *Environment) (mdnumber.Report, error) {
	content, err := fileutil.ReadText(path)
	if err != nil {
		return mdnumber.Report{}, err
	}

	out, report := mdnumber.Number(content)
	fmt.Fprint(env.Stdout, mdnumber.FormatOutline(mdnumber.Outline(out)))
	return report, nil
}

// printReport lists every numbered heading on stderr.
func printReport(report mdnumber.Report, elapsed time.Duration, env *Environment) {
	for _, h := range report.Headings {
		fmt.Fprintf(env.Stderr, "  line %d: %s %s\n", h.Line, h.Number, h.Title)
	}
	fmt.Fprintf(env.Stderr, "%d headings, %d fence lines (%v)\n",
		len(report.Headings), report.Fences, elapsed.Round(time.Millisecond))
}

// formatError appends an actionable hint to err when one applies.
func formatError(err error, path string) string {
	msg := err.Error()
	switch {
	case errors.Is(err, fileutil.ErrNotFound):
		msg += hints.ForNotFound(path)
	case errors.Is(err, fileutil.ErrIsDirectory):
		msg += hints.ForDirectory()
	case errors.Is(err, fileutil.ErrWriteFile):
		msg += hints.ForWriteFailed()
	}
	return msg
}
