package main

import (
	"errors"
	"os"

	mdnumber "github.com/alnah/go-mdnumber"
	"github.com/alnah/go-mdnumber/internal/fileutil"
)

// Exit codes for mdrender.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, arguments, or items
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrNotFound) ||
		errors.Is(err, fileutil.ErrIsDirectory) ||
		errors.Is(err, fileutil.ErrReadFile) ||
		errors.Is(err, fileutil.ErrWriteFile) {
		return ExitIO
	}

	// Usage/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, mdnumber.ErrItemsParse) ||
		errors.Is(err, mdnumber.ErrUnknownItemType) ||
		errors.Is(err, mdnumber.ErrMissingURL) {
		return ExitUsage
	}

	return ExitGeneral
}
