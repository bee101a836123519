// Package pipeline implements the text transformations behind mdnumber.
//
// The package holds the stages shared by the library and the CLIs:
//   - Heading numbering (line scan with per-level counters, fence aware)
//   - Item rendering (text, image, and file records to Markdown paragraphs)
//   - Heading outline extraction via Goldmark's AST
//   - Markdown to HTML preview conversion via Goldmark
//
// Every function here is a pure transformation over in-memory text. Reading
// and writing files is left to internal/fileutil and the commands.
package pipeline
