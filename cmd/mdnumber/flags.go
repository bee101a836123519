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

// modeFlags select what happens to the numbered result.
// At most one may be set; none means rewrite the file in place.
type modeFlags struct {
	check   bool
	stdout  bool
	outline bool
}

// numberFlags holds all mdnumber flags.
type numberFlags struct {
	common commonFlags
	mode   modeFlags
}

// addCommonFlags adds output control flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "list every numbered heading")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
}

// addModeFlags adds output mode flags to a FlagSet.
func addModeFlags(fs *flag.FlagSet, f *modeFlags) {
	fs.BoolVarP(&f.check, "check", "c", false, "report whether the file needs numbering, do not write")
	fs.BoolVarP(&f.stdout, "stdout", "s", false, "print the result instead of rewriting the file")
	fs.BoolVar(&f.outline, "outline", false, "print the numbered heading outline")
}

// parseNumberFlags parses mdnumber flags and returns positional args.
// args excludes the program name.
func parseNumberFlags(args []string, stderr io.Writer) (*numberFlags, []string, error) {
	fs := flag.NewFlagSet("mdnumber", flag.ContinueOnError)
	f := &numberFlags{}

	addCommonFlags(fs, &f.common)
	addModeFlags(fs, &f.mode)

	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// selected counts the mode flags that are set.
func (m modeFlags) selected() int {
	n := 0
	for _, set := range []bool{m.check, m.stdout, m.outline} {
		if set {
			n++
		}
	}
	return n
}
