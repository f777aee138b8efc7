package mdsite

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedMarkup reports markup that cannot be paired or sequenced,
	// such as an unmatched delimiter or a broken ordered list.
	ErrMalformedMarkup = errors.New("malformed markup")
	// ErrNoDelimiterFound reports a strict delimiter split that found nothing to split.
	ErrNoDelimiterFound = errors.New("no delimiter found")
	// ErrMissingAttribute reports a link or image span without its target.
	ErrMissingAttribute = errors.New("missing attribute")
	// ErrUnknownStyle reports a span style outside the known set.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrInvalidTag reports an empty or malformed element tag.
	ErrInvalidTag = errors.New("invalid tag")
	// ErrEmptyChildren reports a parent node without children.
	ErrEmptyChildren = errors.New("parent node has no children")
	// ErrEmptyDocument reports a document without any non-blank block.
	ErrEmptyDocument = errors.New("empty document")
	// ErrNoTitleFound reports a document without a "# " title line.
	ErrNoTitleFound = errors.New("no title found")
)

// BlockError locates a failure within a document.
type BlockError struct {
	Index int
	Kind  BlockKind
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d (%s): %v", e.Index+1, e.Kind, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }
