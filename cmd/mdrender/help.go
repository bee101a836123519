package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdrender [flags] <items-file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a YAML or JSON list of message items as Markdown.")
	fmt.Fprintln(w, "Item types: text (msg), pic (url, name), file (url, name).")
	fmt.Fprintln(w, "Other types and items without a url are skipped unless --strict is set.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "  -n, --number              Number headings (1, 1.1, ...)")
	fmt.Fprintln(w, "      --html                Write an HTML preview instead of Markdown")
	fmt.Fprintln(w, "      --strict              Fail on unknown types and items without a url")
	fmt.Fprintln(w, "      --title <s>           HTML preview title")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show item count and timing")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 error, 2 usage or invalid items, 3 I/O.")
}
