package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds output control and meta flags.
type commonFlags struct {
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// outputFlags holds output destination and format flags.
type outputFlags struct {
	path  string
	html  bool
	title string
}

// renderFlags holds all mdrender flags.
type renderFlags struct {
	common commonFlags
	output outputFlags
	number bool
	strict bool
}

// addCommonFlags adds output control flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show item count and timing")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&f.html, "html", false, "write an HTML preview instead of Markdown")
	fs.StringVar(&f.title, "title", "", "HTML preview title (default: items file title)")
}

// parseRenderFlags parses mdrender flags and returns positional args.
// args excludes the program name.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("mdrender", flag.ContinueOnError)
	f := &renderFlags{}

	fs.BoolVarP(&f.number, "number", "n", false, "number headings in the rendered Markdown")
	fs.BoolVar(&f.strict, "strict", false, "fail on unknown item types and items without a url")

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)

	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
