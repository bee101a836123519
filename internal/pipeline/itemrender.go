package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Item types understood by RenderItems.
const (
	ItemText = "text"
	ItemPic  = "pic"
	ItemFile = "file"
)

// ItemSeparator joins rendered paragraphs.
const ItemSeparator = "\n\n---\n\n"

// Sentinel errors for item rendering.
var (
	ErrUnknownItemType = errors.New("unknown item type")
	ErrMissingURL      = errors.New("item requires a url")
)

// Item is one message record: plain text, an image, or a file reference.
type Item struct {
	Type string `yaml:"type" json:"type"`
	Msg  string `yaml:"msg,omitempty" json:"msg,omitempty"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// RenderItems converts items into a Markdown document with one paragraph
// per item, separated by horizontal rules. Items of unknown type and pic or
// file items without a URL are skipped; use ValidateItems to reject them.
func RenderItems(items []Item) string {
	paragraphs := make([]string, 0, len(items))
	for _, item := range items {
		if p, ok := renderItem(item); ok {
			paragraphs = append(paragraphs, p)
		}
	}
	return strings.Join(paragraphs, ItemSeparator)
}

// ValidateItems reports the first item RenderItems would skip.
func ValidateItems(items []Item) error {
	for i, item := range items {
		switch item.Type {
		case ItemText:
		case ItemPic, ItemFile:
			if strings.TrimSpace(item.URL) == "" {
				return fmt.Errorf("item %d: %w: type %q", i, ErrMissingURL, item.Type)
			}
		default:
			return fmt.Errorf("item %d: %w: %q", i, ErrUnknownItemType, item.Type)
		}
	}
	return nil
}

// renderItem returns the paragraph for item, or false if it has none.
func renderItem(item Item) (string, bool) {
	url := strings.TrimSpace(item.URL)

	switch item.Type {
	case ItemText:
		return strings.TrimSpace(unescapeNewlines(item.Msg)), true
	case ItemPic:
		if url == "" {
			return "", false
		}
		return "![" + escapeLinkText(item.Name) + "](" + url + ")", true
	case ItemFile:
		if url == "" {
			return "", false
		}
		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = url
		}
		return "- [" + escapeLinkText(name) + "](" + url + ")", true
	default:
		return "", false
	}
}

// unescapeNewlines turns literal "\n" escape sequences into line breaks.
func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

// escapeLinkText escapes brackets so names cannot close the link text early.
func escapeLinkText(s string) string {
	return strings.NewReplacer(`[`, `\[`, `]`, `\]`).Replace(s)
}
