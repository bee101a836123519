package mdnumber

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdnumber/internal/pipeline"
)

// HTMLConverter turns Markdown into a standalone HTML document.
type HTMLConverter = pipeline.HTMLConverter

// Compile-time interface check.
var _ HTMLConverter = (*pipeline.GoldmarkConverter)(nil)

// Input holds one render request.
type Input struct {
	Items []Item
	Title string // HTML preview title; empty uses "Document"
	HTML  bool   // also produce an HTML preview
}

// Result holds the output of Render.
type Result struct {
	Markdown string
	HTML     []byte // nil unless Input.HTML was set
	Report   *Report
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithNumbering numbers the headings of the rendered Markdown.
func WithNumbering() Option {
	return func(r *Renderer) {
		r.numbering = true
	}
}

// WithStrictItems makes Render fail on items RenderItems would skip.
func WithStrictItems() Option {
	return func(r *Renderer) {
		r.strict = true
	}
}

// WithHTMLConverter replaces the goldmark converter used for HTML previews.
// Panics if c is nil (programmer error).
func WithHTMLConverter(c HTMLConverter) Option {
	if c == nil {
		panic("mdnumber: WithHTMLConverter converter must not be nil")
	}
	return func(r *Renderer) {
		r.htmlConverter = c
	}
}

// Renderer turns items into Markdown, optionally numbered, and optionally
// into an HTML preview.
type Renderer struct {
	numbering     bool
	strict        bool
	htmlConverter HTMLConverter
}

// NewRenderer creates a Renderer. Without options it renders items exactly
// as RenderItems does.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render converts input.Items. The Report is set only when numbering is
// enabled.
func (r *Renderer) Render(ctx context.Context, input Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r.strict {
		if err := pipeline.ValidateItems(input.Items); err != nil {
			return nil, err
		}
	}

	result := &Result{Markdown: pipeline.RenderItems(input.Items)}
	if r.numbering {
		numbered, report := pipeline.NumberHeadings(result.Markdown)
		result.Markdown = numbered
		result.Report = &report
	}

	if !input.HTML {
		return result, nil
	}

	html, err := r.htmlConverter.ToHTML(ctx, result.Markdown, input.Title)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}
	result.HTML = []byte(html)
	return result, nil
}
