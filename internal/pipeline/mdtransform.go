package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxHeadingLevel is the deepest heading level Markdown defines.
const MaxHeadingLevel = 6

// space matches Unicode whitespace: the ASCII set plus \v, NEL, and the
// Unicode separator categories (NBSP, ideographic space, ...).
const space = `[\s\v\x{85}\p{Z}]`

// Precompiled regex patterns. Compiled regexps are safe for concurrent use.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Fence marker: three backticks after optional indentation
	codeFence = regexp.MustCompile("^" + space + "*```")

	// ATX heading: 1-6 hashes, whitespace, title
	atxHeading = regexp.MustCompile(`^(#{1,6})` + space + `+(.*)$`)

	// Existing numbering such as "1.", "2.3)", "4、" followed by whitespace.
	// Digits are any Unicode decimal digit.
	numberPrefix = regexp.MustCompile(`^` + space + `*\p{Nd}+(?:\.\p{Nd}+)*(?:[.)、])?` + space + `+`)
)

// NumberedHeading describes one heading rewritten by NumberHeadings.
type NumberedHeading struct {
	Line   int    // 1-based line number in the document
	Level  int    // 1-6
	Number string // e.g. "2.1.3"
	Title  string // title without any numbering
}

// Report summarizes a numbering run.
type Report struct {
	Headings []NumberedHeading
	Fences   int  // fence marker lines seen
	Changed  bool // output differs from input
}

// counters holds one running count per heading level, index 0 unused.
type counters [MaxHeadingLevel + 1]int

// bump increments level and resets every deeper level.
func (c *counters) bump(level int) {
	c[level]++
	for i := level + 1; i <= MaxHeadingLevel; i++ {
		c[i] = 0
	}
}

// format joins the counts for levels 1 through level with dots.
func (c *counters) format(level int) string {
	parts := make([]string, level)
	for i := 1; i <= level; i++ {
		parts[i-1] = strconv.Itoa(c[i])
	}
	return strings.Join(parts, ".")
}

// NumberHeadings rewrites every ATX heading outside fenced code blocks as
// "<hashes> <number> <title>". Existing numeric prefixes are replaced, so the
// transformation is idempotent. The result always ends with a single "\n".
func NumberHeadings(content string) (string, Report) {
	var (
		c       counters
		inFence bool
		report  Report
	)

	lines := SplitLines(content)
	for i, line := range lines {
		if codeFence.MatchString(line) {
			inFence = !inFence
			report.Fences++
			continue
		}
		if inFence {
			continue
		}

		m := atxHeading.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		hashes := m[1]
		level := len(hashes)
		title := strings.TrimSpace(StripNumberPrefix(m[2]))

		c.bump(level)
		number := c.format(level)
		lines[i] = hashes + " " + number + " " + title

		report.Headings = append(report.Headings, NumberedHeading{
			Line:   i + 1,
			Level:  level,
			Number: number,
			Title:  title,
		})
	}

	out := strings.Join(lines, "\n") + "\n"
	report.Changed = out != content
	return out, report
}

// StripNumberPrefix removes a leading "1.2.3 "-style number from a title.
func StripNumberPrefix(title string) string {
	return numberPrefix.ReplaceAllString(title, "")
}

// SplitLines normalizes line endings and splits content into lines.
// A single trailing line terminator does not produce an empty final line.
func SplitLines(content string) []string {
	content = normalizeLineEndings(content)
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
