package mdsite

import "fmt"

// ToHTMLTree converts a markdown document into a <div> wrapping one subtree
// per block. A document without any non-blank block fails with
// ErrEmptyDocument.
func ToHTMLTree(markdown string, opts ...Option) (*Parent, error) {
	cfg := newConfig(opts)
	blocks, err := ParseBlocks(markdown)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, ErrEmptyDocument
	}
	children := make([]Node, 0, len(blocks))
	for i, block := range blocks {
		node, err := blockToNode(block, cfg)
		if err != nil {
			return nil, &BlockError{Index: i, Kind: block.Kind, Err: err}
		}
		children = append(children, node)
	}
	return NewParent("div", children)
}

// ToHTML converts a markdown document and serializes the result.
func ToHTML(markdown string, opts ...Option) (string, error) {
	root, err := ToHTMLTree(markdown, opts...)
	if err != nil {
		return "", err
	}
	out, err := root.ToHTML()
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}
	return out, nil
}
