package mdnumber

import (
	"fmt"

	"github.com/alnah/go-mdnumber/internal/pipeline"
	"github.com/alnah/go-mdnumber/internal/yamlutil"
)

// Item types.
const (
	ItemText = pipeline.ItemText
	ItemPic  = pipeline.ItemPic
	ItemFile = pipeline.ItemFile
)

// ItemTypes lists every supported item type.
var ItemTypes = []string{ItemText, ItemPic, ItemFile}

// Item is one message record. Type selects which fields are used:
// Msg for text, URL and Name for pic and file.
type Item = pipeline.Item

// ItemsDocument is the decoded form of an items file.
type ItemsDocument struct {
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
	Items []Item `yaml:"items" json:"items"`
}

// ParseItems decodes a YAML or JSON items file. The top level is either a
// list of items or a mapping with "title" and "items" keys. Unknown keys
// are rejected.
func ParseItems(data []byte) (*ItemsDocument, error) {
	doc := &ItemsDocument{}

	var err error
	if yamlutil.IsSequence(data) {
		err = yamlutil.UnmarshalStrict(data, &doc.Items)
	} else {
		err = yamlutil.UnmarshalStrict(data, doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrItemsParse, err)
	}
	return doc, nil
}

// RenderItems converts items to Markdown: one paragraph per item, joined
// by "---" separator lines. Unknown item types and pic or file items
// without a URL are skipped.
func RenderItems(items []Item) string {
	return pipeline.RenderItems(items)
}

// ValidateItems returns an error wrapping ErrUnknownItemType or
// ErrMissingURL for the first item RenderItems would skip.
func ValidateItems(items []Item) error {
	return pipeline.ValidateItems(items)
}
