package mdnumber

import "github.com/alnah/go-mdnumber/internal/pipeline"

// Heading describes one heading rewritten by Number.
type Heading = pipeline.NumberedHeading

// Report summarizes a numbering run: every rewritten heading, the number of
// fence marker lines, and whether the text changed.
type Report = pipeline.Report

// OutlineEntry is one heading found by Outline.
type OutlineEntry = pipeline.OutlineEntry

// AddNumbers rewrites every Markdown heading outside fenced code blocks as
// "<hashes> <number> <title>" and returns the new text, which always ends
// with exactly one newline.
func AddNumbers(text string) string {
	out, _ := pipeline.NumberHeadings(text)
	return out
}

// Number is AddNumbers with a Report of what was rewritten.
func Number(text string) (string, Report) {
	return pipeline.NumberHeadings(text)
}

// Outline returns the headings of text as a CommonMark parser sees them.
func Outline(text string) []OutlineEntry {
	return pipeline.Outline(text)
}

// FormatOutline renders entries as an indented list, one heading per line.
func FormatOutline(entries []OutlineEntry) string {
	return pipeline.FormatOutline(entries)
}
