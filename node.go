package mdsite

import (
	"fmt"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Node is an element of the HTML tree produced by the converter.
type Node interface {
	// ToHTML serializes the node and its descendants.
	ToHTML() (string, error)
	writeHTML(b *strings.Builder) error
}

// Leaf is a node without children. A leaf with an empty Tag renders its
// Value as raw text.
type Leaf struct {
	Tag   string
	Value string
	Attrs Attrs
}

// Parent is an element wrapping one or more child nodes.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    Attrs
}

// NewLeaf returns a leaf node, checking the tag when one is given.
func NewLeaf(tag, value string, attrs ...Attr) (*Leaf, error) {
	if tag != "" {
		if err := checkTag(tag); err != nil {
			return nil, err
		}
	}
	return &Leaf{Tag: tag, Value: value, Attrs: Attrs(attrs)}, nil
}

// NewParent returns a parent node. It reports the same ErrInvalidTag and
// ErrEmptyChildren failures serialization would, but at construction.
func NewParent(tag string, children []Node, attrs ...Attr) (*Parent, error) {
	if err := checkTag(tag); err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("<%s>: %w", tag, ErrEmptyChildren)
	}
	return &Parent{Tag: tag, Children: children, Attrs: Attrs(attrs)}, nil
}

func checkTag(tag string) error {
	if !tagPattern.MatchString(tag) {
		return fmt.Errorf("%q: %w", tag, ErrInvalidTag)
	}
	return nil
}

func (l *Leaf) ToHTML() (string, error) {
	var b strings.Builder
	if err := l.writeHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (l *Leaf) writeHTML(b *strings.Builder) error {
	if l.Tag == "" {
		b.WriteString(l.Value)
		return nil
	}
	if err := checkTag(l.Tag); err != nil {
		return err
	}
	b.WriteByte('<')
	b.WriteString(l.Tag)
	l.Attrs.writeHTML(b)
	b.WriteByte('>')
	b.WriteString(l.Value)
	b.WriteString("</")
	b.WriteString(l.Tag)
	b.WriteByte('>')
	return nil
}

func (l *Leaf) String() string {
	return fmt.Sprintf("Leaf(tag=%q, value=%q, attrs=%d)", l.Tag, l.Value, len(l.Attrs))
}

func (p *Parent) ToHTML() (string, error) {
	var b strings.Builder
	if err := p.writeHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (p *Parent) writeHTML(b *strings.Builder) error {
	if err := checkTag(p.Tag); err != nil {
		return err
	}
	if len(p.Children) == 0 {
		return fmt.Errorf("<%s>: %w", p.Tag, ErrEmptyChildren)
	}
	b.WriteByte('<')
	b.WriteString(p.Tag)
	p.Attrs.writeHTML(b)
	b.WriteByte('>')
	for _, child := range p.Children {
		if child == nil {
			return fmt.Errorf("<%s>: nil child: %w", p.Tag, ErrEmptyChildren)
		}
		if err := child.writeHTML(b); err != nil {
			return err
		}
	}
	b.WriteString("</")
	b.WriteString(p.Tag)
	b.WriteByte('>')
	return nil
}

func (p *Parent) String() string {
	return fmt.Sprintf("Parent(tag=%q, children=%d, attrs=%d)", p.Tag, len(p.Children), len(p.Attrs))
}
