package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	mdnumber "github.com/alnah/go-mdnumber"
	"github.com/alnah/go-mdnumber/internal/fileutil"
	"github.com/alnah/go-mdnumber/internal/hints"
)

// runRender reads the items file at path, renders it, and writes the result.
func runRender(ctx context.Context, path string, flags *renderFlags, env *Environment) error {
	start := env.Now()

	data, err := fileutil.ReadText(path)
	if err != nil {
		return err
	}

	doc, err := mdnumber.ParseItems([]byte(data))
	if err != nil {
		return err
	}

	var opts []mdnumber.Option
	if flags.number {
		opts = append(opts, mdnumber.WithNumbering())
	}
	if flags.strict {
		opts = append(opts, mdnumber.WithStrictItems())
	}

	title := flags.output.title
	if title == "" {
		title = doc.Title
	}

	result, err := mdnumber.NewRenderer(opts...).Render(ctx, mdnumber.Input{
		Items: doc.Items,
		Title: title,
		HTML:  flags.output.html,
	})
	if err != nil {
		return err
	}

	output := result.Markdown
	if flags.output.html {
		output = string(result.HTML)
	}

	if err := writeOutput(output, flags.output.path, env); err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "%d items rendered (%v)\n", len(doc.Items), env.Now().Sub(start).Round(time.Millisecond))
		if result.Report != nil {
			fmt.Fprintf(env.Stderr, "%d headings numbered\n", len(result.Report.Headings))
		}
	}
	if flags.output.path != "" && !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output.path)
	}
	return nil
}

// writeOutput writes content to path, or to stdout when path is empty.
// A trailing newline is added when missing.
func writeOutput(content, path string, env *Environment) error {
	if content != "" && content[len(content)-1] != '\n' {
		content += "\n"
	}
	if path == "" {
		_, err := fmt.Fprint(env.Stdout, content)
		return err
	}
	return fileutil.WriteText(path, content)
}

// formatError appends an actionable hint to err when one applies.
// path is the items file argument, used for not-found suggestions.
func formatError(err error, path string) string {
	msg := err.Error()
	switch {
	case errors.Is(err, fileutil.ErrNotFound):
		msg += hints.ForNotFound(path)
	case errors.Is(err, fileutil.ErrIsDirectory):
		msg += hints.ForDirectory()
	case errors.Is(err, fileutil.ErrWriteFile):
		msg += hints.ForWriteFailed()
	case errors.Is(err, mdnumber.ErrItemsParse):
		msg += hints.ForItemsParse()
	case errors.Is(err, mdnumber.ErrUnknownItemType):
		msg += hints.ForItemType(mdnumber.ItemTypes)
	}
	return msg
}
