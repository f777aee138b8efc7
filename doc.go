// Package mdsite converts markdown documents into HTML node trees.
//
// The converter supports a small, fixed grammar: ATX headings 1-6, fenced
// code blocks, block quotes, "-"/"*" bullet lists, numbered lists and
// paragraphs, with inline code, bold, italic, links and images.
//
// Conversion runs in three stages. The block classifier splits a document at
// blank lines and tags each block by its leading syntax. The inline splitter
// turns block text into styled spans, applying images, links, code, bold and
// italic in that order. Each span maps to a leaf node and each block to a
// parent node; the document becomes a single <div>.
//
// Example:
//
//	html, err := mdsite.ToHTML("# Hello\n\nMarkdown in, **HTML** out.\n")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(html)
//	// <div><h1>Hello</h1><p>Markdown in, <b>HTML</b> out.</p></div>
//
// Conversion is pure: no state is shared between calls, so documents can be
// converted from any number of goroutines. Text is emitted as written, without
// HTML escaping.
//
// The site sub-package walks a content tree and writes one templated page per
// markdown file.
package mdsite
