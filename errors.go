package mdnumber

import (
	"errors"

	"github.com/alnah/go-mdnumber/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Item validation errors.
	ErrUnknownItemType = pipeline.ErrUnknownItemType
	ErrMissingURL      = pipeline.ErrMissingURL

	// Items file errors.
	ErrItemsParse = errors.New("failed to parse items")
)
