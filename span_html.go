package mdsite

import "fmt"

// SpanToNode maps a span to the leaf that renders it.
func SpanToNode(span TextSpan) (*Leaf, error) {
	switch span.Style {
	case StylePlain:
		return &Leaf{Value: span.Content}, nil
	case StyleBold:
		return &Leaf{Tag: "b", Value: span.Content}, nil
	case StyleItalic:
		return &Leaf{Tag: "i", Value: span.Content}, nil
	case StyleCode:
		return &Leaf{Tag: "code", Value: span.Content}, nil
	case StyleLink:
		if span.Href == "" {
			return nil, fmt.Errorf("link %q: href: %w", span.Content, ErrMissingAttribute)
		}
		return &Leaf{Tag: "a", Value: span.Content, Attrs: Attrs{{Key: "href", Value: span.Href}}}, nil
	case StyleImage:
		if span.Src == "" {
			return nil, fmt.Errorf("image %q: src: %w", span.Alt, ErrMissingAttribute)
		}
		return &Leaf{Tag: "img", Attrs: Attrs{
			{Key: "src", Value: span.Src},
			{Key: "alt", Value: span.Alt},
		}}, nil
	default:
		return nil, fmt.Errorf("%s: %w", span.Style, ErrUnknownStyle)
	}
}

// spansToNodes maps every span, failing on the first bad one.
func spansToNodes(spans []TextSpan) ([]Node, error) {
	nodes := make([]Node, 0, len(spans))
	for _, span := range spans {
		leaf, err := SpanToNode(span)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, leaf)
	}
	return nodes, nil
}
