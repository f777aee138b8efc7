package mdsite

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockToNode converts a classified block into its HTML subtree.
func BlockToNode(block Block, opts ...Option) (Node, error) {
	return blockToNode(block, newConfig(opts))
}

func blockToNode(block Block, cfg config) (Node, error) {
	switch block.Kind {
	case BlockHeading:
		if block.Level < 1 || block.Level > 6 {
			return nil, fmt.Errorf("heading level %d: %w", block.Level, ErrInvalidTag)
		}
		return inlineParent("h"+strconv.Itoa(block.Level), block.Text(), cfg)
	case BlockCode:
		code := &Leaf{Tag: "code", Value: strings.Join(block.Lines, "\n")}
		return NewParent("pre", []Node{code})
	case BlockQuote:
		return inlineParent("blockquote", block.Text(), cfg)
	case BlockUnorderedList:
		return listParent("ul", block.Lines, cfg)
	case BlockOrderedList:
		return listParent("ol", block.Lines, cfg)
	case BlockParagraph:
		return inlineParent("p", block.Text(), cfg)
	default:
		return nil, fmt.Errorf("convert %s: unsupported block kind", block.Kind)
	}
}

func listParent(tag string, items []string, cfg config) (Node, error) {
	children := make([]Node, 0, len(items))
	for i, item := range items {
		li, err := inlineParent("li", item, cfg)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		children = append(children, li)
	}
	return NewParent(tag, children)
}

func inlineParent(tag, text string, cfg config) (*Parent, error) {
	children, err := inlineNodes(text, cfg)
	if err != nil {
		return nil, err
	}
	return NewParent(tag, children)
}

// inlineNodes runs the inline pipeline and maps the spans to leaves. Empty
// text still yields one empty text leaf.
func inlineNodes(text string, cfg config) ([]Node, error) {
	spans, err := splitInline(text, cfg)
	if err != nil {
		return nil, err
	}
	nodes, err := spansToNodes(spans)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		nodes = append(nodes, &Leaf{})
	}
	return nodes, nil
}
