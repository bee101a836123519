package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testEnv returns an Environment writing to buffers with a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &Environment{
		Now:    func() time.Time { return fixed },
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// writeDoc creates a markdown file in a temp directory.
func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func readDoc(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestRunMain - Entry point behavior and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args prints usage to stdout and fails",
			args:         []string{"mdnumber"},
			wantCode:     ExitFailure,
			wantInStdout: []string{"Usage: mdnumber"},
		},
		{
			name:         "missing file fails",
			args:         []string{"mdnumber", "does-not-exist.md"},
			wantCode:     ExitFailure,
			wantInStderr: []string{"file not found", "does-not-exist.md", "hint:"},
		},
		{
			name:         "help exits 0",
			args:         []string{"mdnumber", "--help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mdnumber", "--check"},
		},
		{
			name:         "version exits 0",
			args:         []string{"mdnumber", "--version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"mdnumber dev"},
		},
		{
			name:         "unknown flag fails",
			args:         []string{"mdnumber", "--bogus", "x.md"},
			wantCode:     ExitFailure,
			wantInStderr: []string{"bogus"},
		},
		{
			name:         "too many arguments fails",
			args:         []string{"mdnumber", "a.md", "b.md"},
			wantCode:     ExitFailure,
			wantInStderr: []string{"too many arguments"},
		},
		{
			name:         "conflicting modes fail",
			args:         []string{"mdnumber", "--check", "--stdout", "a.md"},
			wantCode:     ExitFailure,
			wantInStderr: []string{"mutually exclusive"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

func TestRunMain_Directory(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	code := runMain([]string{"mdnumber", t.TempDir()}, env)

	if code != ExitFailure {
		t.Errorf("runMain() = %d, want %d", code, ExitFailure)
	}
	if !strings.Contains(stderr.String(), "directory") {
		t.Errorf("stderr should mention directory, got %q", stderr.String())
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Rewrite - Default in-place mode
// ---------------------------------------------------------------------------

func TestRunMain_Rewrite(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "# Title\n## A\n## B\n# Title2\n## C")
	env, stdout, _ := testEnv()

	if code := runMain([]string{"mdnumber", path}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
	}

	want := "# 1 Title\n## 1.1 A\n## 1.2 B\n# 2 Title2\n## 2.1 C\n"
	if got := readDoc(t, path); got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
	if !strings.Contains(stdout.String(), "5 headings numbered") {
		t.Errorf("stdout = %q, want summary", stdout.String())
	}
}

func TestRunMain_RewriteTwiceIsStable(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "```\n# not a heading\n```\n# Real\n")

	env, _, _ := testEnv()
	if code := runMain([]string{"mdnumber", path}, env); code != ExitSuccess {
		t.Fatalf("first run = %d", code)
	}
	first := readDoc(t, path)

	env, stdout, _ := testEnv()
	if code := runMain([]string{"mdnumber", path}, env); code != ExitSuccess {
		t.Fatalf("second run = %d", code)
	}
	if got := readDoc(t, path); got != first {
		t.Errorf("second run changed file:\nfirst:  %q\nsecond: %q", first, got)
	}
	if !strings.Contains(stdout.String(), "already numbered") {
		t.Errorf("stdout = %q, want already numbered", stdout.String())
	}
}

func TestRunMain_Quiet(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "# A\n")
	env, stdout, _ := testEnv()

	if code := runMain([]string{"mdnumber", "-q", path}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet mode wrote %q", stdout.String())
	}
}

func TestRunMain_Verbose(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "# A\n## B\n")
	env, _, stderr := testEnv()

	if code := runMain([]string{"mdnumber", "-v", path}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d", code)
	}
	for _, want := range []string{"line 1: 1 A", "line 2: 1.1 B", "2 headings"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr should contain %q, got %q", want, stderr.String())
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Modes - check, stdout, outline
// ---------------------------------------------------------------------------

func TestRunMain_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		wantCode   int
		wantListed bool
	}{
		{"unnumbered file", "# A\n", ExitFailure, true},
		{"numbered file", "# 1 A\n", ExitSuccess, false},
		{"stale numbers", "# 2 A\n", ExitFailure, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeDoc(t, tt.content)
			env, stdout, stderr := testEnv()

			code := runMain([]string{"mdnumber", "--check", path}, env)
			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d", code, tt.wantCode)
			}
			if listed := strings.Contains(stdout.String(), path); listed != tt.wantListed {
				t.Errorf("path listed = %v, want %v (stdout %q)", listed, tt.wantListed, stdout.String())
			}
			if stderr.Len() != 0 {
				t.Errorf("check mode wrote to stderr: %q", stderr.String())
			}
			if got := readDoc(t, path); got != tt.content {
				t.Errorf("check mode modified file: %q", got)
			}
		})
	}
}

func TestRunMain_Stdout(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "### Deep\n")
	env, stdout, _ := testEnv()

	if code := runMain([]string{"mdnumber", "--stdout", path}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d", code)
	}
	if stdout.String() != "### 0.0.1 Deep\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if got := readDoc(t, path); got != "### Deep\n" {
		t.Errorf("stdout mode modified file: %q", got)
	}
}

func TestRunMain_Outline(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "# A\n```\n# code\n```\n## B\n")
	env, stdout, _ := testEnv()

	if code := runMain([]string{"mdnumber", "--outline", path}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d", code)
	}
	if stdout.String() != "1 A\n  1.1 B\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

// ---------------------------------------------------------------------------
// TestParseNumberFlags
// ---------------------------------------------------------------------------

func TestParseNumberFlags(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	flags, args, err := parseNumberFlags([]string{"-c", "-v", "doc.md"}, &stderr)
	if err != nil {
		t.Fatalf("parseNumberFlags() error = %v", err)
	}
	if !flags.mode.check || !flags.common.verbose {
		t.Errorf("flags = %+v, want check and verbose", flags)
	}
	if len(args) != 1 || args[0] != "doc.md" {
		t.Errorf("args = %v, want [doc.md]", args)
	}
	if flags.mode.selected() != 1 {
		t.Errorf("selected() = %d, want 1", flags.mode.selected())
	}
}
