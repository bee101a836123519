// Package mdnumber numbers Markdown headings and renders message items as
// Markdown.
//
// # Quick Start
//
// Number the headings of a document:
//
//	out := mdnumber.AddNumbers("# Intro\n## Scope\n# Usage\n")
//	// "# 1 Intro\n## 1.1 Scope\n# 2 Usage\n"
//
// Numbers are derived from position only. Existing prefixes such as "3.2 ",
// "4. ", "5) " or "6、 " are replaced, so running the numberer twice gives the
// same result as running it once. Lines inside ``` fences are left alone.
//
// # Numbering Rules
//
// One counter is kept per heading level (1-6). A heading at level L
// increments counter L and resets every deeper counter; shallower counters
// are never touched, so a document opening with "### Deep" numbers it
// "0.0.1".
//
// Use Number to also get a Report of every rewritten heading:
//
//	out, report := mdnumber.Number(text)
//	for _, h := range report.Headings {
//	    fmt.Println(h.Line, h.Number, h.Title)
//	}
//
// # Rendering Items
//
// Message items (text, pictures, file links) become one paragraph each,
// separated by "---" rules. Unknown types and items without a URL are
// skipped unless WithStrictItems is set:
//
//	r := mdnumber.NewRenderer(mdnumber.WithNumbering())
//	result, err := r.Render(ctx, mdnumber.Input{
//	    Items: []mdnumber.Item{
//	        {Type: mdnumber.ItemText, Msg: "# Report"},
//	        {Type: mdnumber.ItemPic, URL: "chart.png", Name: "chart"},
//	    },
//	    HTML: true, // also produce an HTML preview
//	})
//
// Items files in YAML or JSON are decoded with ParseItems.
//
// All functions are safe for concurrent use; no state is shared between
// calls.
package mdnumber
