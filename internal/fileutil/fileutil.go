// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Sentinel errors for file utility operations.
var (
	ErrNotFound    = errors.New("file not found")
	ErrIsDirectory = errors.New("path is a directory")
	ErrReadFile    = errors.New("failed to read file")
	ErrWriteFile   = errors.New("failed to write file")
)

// defaultPerm is used when creating a file that did not exist.
const defaultPerm fs.FileMode = 0o644

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CheckRegularFile reports ErrNotFound or ErrIsDirectory for paths that
// cannot be edited as text files.
func CheckRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("%w: %v", ErrReadFile, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return nil
}

// ReadText reads the whole file as a string.
func ReadText(path string) (string, error) {
	if err := CheckRegularFile(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path supplied by the user on the command line
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadFile, err)
	}
	return string(data), nil
}

// WriteText truncates (or creates) path and writes content. The file mode
// of an existing file is kept. A failed Close is reported.
func WriteText(path, content string) (err error) {
	perm := defaultPerm
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm) // #nosec G304 -- path supplied by the user on the command line
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %v", ErrWriteFile, path, closeErr)
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}
	return nil
}

// RewriteFile reads path, applies transform, and writes the result back.
// Nothing is written if reading or transform fails, or if the content is
// unchanged. It returns whether the file was written.
func RewriteFile(path string, transform func(string) (string, error)) (bool, error) {
	content, err := ReadText(path)
	if err != nil {
		return false, err
	}

	updated, err := transform(content)
	if err != nil {
		return false, err
	}
	if updated == content {
		return false, nil
	}

	if err := WriteText(path, updated); err != nil {
		return false, err
	}
	return true, nil
}
