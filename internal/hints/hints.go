// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdnumber/internal/fileutil"
)

// markdownExtensions are tried when a path without extension is not found.
var markdownExtensions = []string{".md", ".markdown"}

// ForNotFound returns hints for a missing input file. When the path has no
// extension and a Markdown file with that base name exists, it is suggested.
func ForNotFound(path string) string {
	if filepath.Ext(path) == "" {
		for _, ext := range markdownExtensions {
			if fileutil.FileExists(path + ext) {
				return format("did you mean " + path + ext + "?")
			}
		}
	}
	if !filepath.IsAbs(path) {
		return format("relative paths are resolved from the current directory")
	}
	return ""
}

// ForDirectory returns a hint for directory arguments.
func ForDirectory() string {
	return format("pass a single Markdown file, not a directory")
}

// ForWriteFailed returns a hint for write errors on the target file.
func ForWriteFailed() string {
	return format("check the file and its directory are writable")
}

// ForItemsParse returns the expected shape of an items file.
func ForItemsParse() string {
	return formatHints([]string{
		"expected a YAML or JSON list of {type, msg, url, name}",
		"or a mapping with title and items keys",
	})
}

// ForItemType lists the supported item types.
func ForItemType(types []string) string {
	if len(types) == 0 {
		return ""
	}
	return format("supported types: " + strings.Join(types, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
