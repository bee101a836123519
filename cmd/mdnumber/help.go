package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdnumber [flags] <markdown-file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Number Markdown headings in place (1, 1.1, 1.1.1, ...).")
	fmt.Fprintln(w, "Existing numbers are replaced; fenced code blocks are left alone.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Mode (default: rewrite the file):")
	fmt.Fprintln(w, "  -c, --check               Exit 1 if the file would change, do not write")
	fmt.Fprintln(w, "  -s, --stdout              Print the result instead of writing")
	fmt.Fprintln(w, "      --outline             Print the numbered heading outline")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             List every numbered heading")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
