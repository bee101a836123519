package pipeline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// OutlineEntry is one heading as seen by a CommonMark parser.
type OutlineEntry struct {
	Level int
	Text  string
}

// outlineParser is reused across calls.
var outlineParser = goldmark.New().Parser()

// Outline parses content as CommonMark and returns its headings in
// document order. Headings inside code blocks are not reported, and setext
// headings ("Title\n=====") are included.
func Outline(content string) []OutlineEntry {
	source := []byte(normalizeLineEndings(content))
	doc := outlineParser.Parse(text.NewReader(source))

	var entries []OutlineEntry
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		entries = append(entries, OutlineEntry{
			Level: h.Level,
			Text:  strings.TrimSpace(inlineText(h, source)),
		})
		return ast.WalkSkipChildren, nil
	})
	return entries
}

// FormatOutline renders entries as an indented list, two spaces per level.
func FormatOutline(entries []OutlineEntry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(strings.Repeat("  ", e.Level-1))
		b.WriteString(e.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// inlineText concatenates the literal text below n.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		default:
			b.WriteString(inlineText(c, source))
		}
	}
	return b.String()
}
