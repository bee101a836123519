package mdnumber

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdnumber/internal/pipeline"
)

// mockHTMLConverter records calls and returns a fixed result.
type mockHTMLConverter struct {
	gotContent string
	gotTitle   string
	err        error
}

func (m *mockHTMLConverter) ToHTML(_ context.Context, content, title string) (string, error) {
	m.gotContent = content
	m.gotTitle = title
	if m.err != nil {
		return "", m.err
	}
	return "<html>" + content + "</html>", nil
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Type: ItemText, Msg: "# Summary"},
		{Type: ItemText, Msg: "## Numbers"},
	}

	tests := []struct {
		name       string
		opts       []Option
		wantMD     string
		wantReport bool
	}{
		{
			name:   "plain",
			wantMD: "# Summary\n\n---\n\n## Numbers",
		},
		{
			name:       "numbered",
			opts:       []Option{WithNumbering()},
			wantMD:     "# 1 Summary\n\n---\n\n## 1.1 Numbers\n",
			wantReport: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := NewRenderer(tt.opts...).Render(context.Background(), Input{Items: items})
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if result.Markdown != tt.wantMD {
				t.Errorf("Markdown = %q, want %q", result.Markdown, tt.wantMD)
			}
			if (result.Report != nil) != tt.wantReport {
				t.Errorf("Report set = %v, want %v", result.Report != nil, tt.wantReport)
			}
			if result.HTML != nil {
				t.Error("HTML should be nil when not requested")
			}
		})
	}
}

func TestRenderer_Render_HTML(t *testing.T) {
	t.Parallel()

	result, err := NewRenderer(WithNumbering()).Render(context.Background(), Input{
		Items: []Item{{Type: ItemText, Msg: "# Title"}},
		Title: "Preview",
		HTML:  true,
	})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	html := string(result.HTML)
	for _, want := range []string{"<title>Preview</title>", "<h1", "1 Title"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q:\n%s", want, html)
		}
	}
}

func TestRenderer_Render_HTMLConverterInjected(t *testing.T) {
	t.Parallel()

	mock := &mockHTMLConverter{}
	result, err := NewRenderer(WithHTMLConverter(mock)).Render(context.Background(), Input{
		Items: []Item{{Type: ItemText, Msg: "x"}},
		Title: "T",
		HTML:  true,
	})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if mock.gotContent != "x" || mock.gotTitle != "T" {
		t.Errorf("converter got (%q, %q), want (\"x\", \"T\")", mock.gotContent, mock.gotTitle)
	}
	if string(result.HTML) != "<html>x</html>" {
		t.Errorf("HTML = %q", result.HTML)
	}
}

func TestRenderer_Render_Errors(t *testing.T) {
	t.Parallel()

	t.Run("strict rejects item without url", func(t *testing.T) {
		t.Parallel()

		_, err := NewRenderer(WithStrictItems()).Render(context.Background(), Input{Items: []Item{{Type: ItemPic}}})
		if !errors.Is(err, ErrMissingURL) {
			t.Errorf("Render() error = %v, want ErrMissingURL", err)
		}
	})

	t.Run("strict rejects unknown type", func(t *testing.T) {
		t.Parallel()

		_, err := NewRenderer(WithStrictItems()).Render(context.Background(), Input{Items: []Item{{Type: "video"}}})
		if !errors.Is(err, ErrUnknownItemType) {
			t.Errorf("Render() error = %v, want ErrUnknownItemType", err)
		}
	})

	t.Run("html conversion failure", func(t *testing.T) {
		t.Parallel()

		r := NewRenderer(WithHTMLConverter(&mockHTMLConverter{err: ErrHTMLConversion}))

		_, err := r.Render(context.Background(), Input{Items: []Item{{Type: ItemText, Msg: "x"}}, HTML: true})
		if !errors.Is(err, ErrHTMLConversion) {
			t.Errorf("Render() error = %v, want ErrHTMLConversion", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewRenderer().Render(ctx, Input{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Render() error = %v, want context.Canceled", err)
		}
	})
}

func TestRenderer_Render_SkipsInvalidItems(t *testing.T) {
	t.Parallel()

	result, err := NewRenderer().Render(context.Background(), Input{
		Items: []Item{{Type: ItemText, Msg: "a"}, {Type: "video"}, {Type: ItemPic}},
	})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if result.Markdown != "a" {
		t.Errorf("Markdown = %q, want %q", result.Markdown, "a")
	}
}

func TestWithHTMLConverter_NilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithHTMLConverter(nil) should panic")
		}
	}()
	WithHTMLConverter(nil)
}

func TestNewRenderer_DefaultConverter(t *testing.T) {
	t.Parallel()

	if _, ok := NewRenderer().htmlConverter.(*pipeline.GoldmarkConverter); !ok {
		t.Errorf("htmlConverter = %T, want *pipeline.GoldmarkConverter", NewRenderer().htmlConverter)
	}
}
