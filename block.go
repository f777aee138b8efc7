package mdsite

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockKind classifies a block by its leading syntax.
type BlockKind uint8

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockCode:
		return "code"
	case BlockQuote:
		return "quote"
	case BlockUnorderedList:
		return "unordered list"
	case BlockOrderedList:
		return "ordered list"
	default:
		return "block(" + strconv.Itoa(int(k)) + ")"
	}
}

// Block is a classified section of a document. Lines hold the content with
// block markers removed: one entry per list item, the verbatim lines between
// fences for code, and one entry per source line otherwise.
type Block struct {
	Kind  BlockKind
	Level int
	Lines []string
	Raw   string
}

// Text joins the block lines with single spaces, collapsing soft breaks.
func (b Block) Text() string {
	return strings.Join(b.Lines, " ")
}

const fence = "```"

// SplitBlocks splits a document at blank lines. Line endings are normalised,
// empty blocks dropped and a block opened by a code fence runs to its closing
// fence even across blank lines. The closing fence also ends the block.
func SplitBlocks(markdown string) []string {
	text := strings.ReplaceAll(markdown, "\r\n", "\n")
	var (
		blocks  []string
		cur     []string
		inFence bool
	)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		block := strings.Join(cur, "\n")
		if !isFenceLine(cur[0]) {
			block = strings.TrimSpace(block)
		}
		if block != "" {
			blocks = append(blocks, block)
		}
		cur = cur[:0]
	}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if inFence {
			cur = append(cur, line)
			if strings.HasPrefix(trimmed, fence) {
				inFence = false
				flush()
			}
			continue
		}
		if trimmed == "" {
			flush()
			continue
		}
		if len(cur) == 0 && isFenceLine(line) && !isInlineFence(trimmed) {
			inFence = true
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}

func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), fence)
}

// isInlineFence reports a one-line fenced block such as "```x```".
func isInlineFence(trimmed string) bool {
	return len(trimmed) >= 2*len(fence) && strings.HasSuffix(trimmed, fence)
}

// ClassifyBlock determines the kind of a single block by its first line.
// An ordered list whose numbering does not run 1, 2, 3... and a code fence
// that is never closed fail with ErrMalformedMarkup.
func ClassifyBlock(raw string) (Block, error) {
	lines := strings.Split(raw, "\n")
	first := strings.TrimSpace(lines[0])
	block := Block{Raw: raw}

	if level := headingLevel(first); level > 0 {
		block.Kind = BlockHeading
		block.Level = level
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if n := headingLevel(line); n > 0 {
				line = strings.TrimSpace(line[n+1:])
			}
			block.Lines = append(block.Lines, line)
		}
		return block, nil
	}

	if strings.HasPrefix(first, fence) {
		block.Kind = BlockCode
		if len(lines) == 1 {
			if !isInlineFence(first) {
				return block, fmt.Errorf("unterminated code fence: %w", ErrMalformedMarkup)
			}
			block.Lines = []string{first[len(fence) : len(first)-len(fence)]}
			return block, nil
		}
		if !isFenceLine(lines[len(lines)-1]) {
			return block, fmt.Errorf("unterminated code fence: %w", ErrMalformedMarkup)
		}
		block.Lines = append([]string(nil), lines[1:len(lines)-1]...)
		return block, nil
	}

	if everyLine(lines, func(line string) bool { return strings.HasPrefix(line, ">") }) {
		block.Kind = BlockQuote
		for _, line := range lines {
			line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), ">"))
			if line != "" {
				block.Lines = append(block.Lines, line)
			}
		}
		return block, nil
	}

	if everyLine(lines, isBulletItem) {
		block.Kind = BlockUnorderedList
		for _, line := range lines {
			block.Lines = append(block.Lines, strings.TrimSpace(trimIndent(line)[1:]))
		}
		return block, nil
	}

	if _, _, ok := orderedMarker(first); ok {
		block.Kind = BlockOrderedList
		for i, line := range lines {
			line = trimIndent(line)
			n, width, ok := orderedMarker(line)
			if !ok {
				return block, fmt.Errorf("ordered list line %d %q: missing number: %w", i+1, excerpt(line), ErrMalformedMarkup)
			}
			if n != i+1 {
				return block, fmt.Errorf("ordered list line %d: expected %d, got %d: %w", i+1, i+1, n, ErrMalformedMarkup)
			}
			block.Lines = append(block.Lines, strings.TrimSpace(line[width:]))
		}
		return block, nil
	}

	block.Kind = BlockParagraph
	for _, line := range lines {
		block.Lines = append(block.Lines, strings.TrimSpace(line))
	}
	return block, nil
}

// ParseBlocks splits and classifies a whole document.
func ParseBlocks(markdown string) ([]Block, error) {
	raws := SplitBlocks(markdown)
	blocks := make([]Block, 0, len(raws))
	for i, raw := range raws {
		block, err := ClassifyBlock(raw)
		if err != nil {
			return nil, &BlockError{Index: i, Kind: block.Kind, Err: err}
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// headingLevel returns the number of leading '#' when followed by a space,
// or 0 when line is not a heading.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 || n >= len(line) || line[n] != ' ' {
		return 0
	}
	return n
}

// isBulletItem accepts "- text", "* text" and a bare marker for an empty item.
func isBulletItem(line string) bool {
	switch {
	case line == "-", line == "*":
		return true
	default:
		return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
	}
}

func trimIndent(line string) string {
	return strings.TrimLeft(line, " \t")
}

// orderedMarker parses a leading "N. " marker, returning N and the marker
// width including the space. A bare "N." is an item with an empty body.
func orderedMarker(line string) (int, int, bool) {
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits >= len(line) || line[digits] != '.' {
		return 0, 0, false
	}
	width := digits + 1
	if width < len(line) {
		if line[width] != ' ' {
			return 0, 0, false
		}
		width++
	}
	n, err := strconv.Atoi(line[:digits])
	if err != nil {
		return 0, 0, false
	}
	return n, width, true
}

func everyLine(lines []string, pred func(string) bool) bool {
	for _, line := range lines {
		if !pred(trimIndent(line)) {
			return false
		}
	}
	return true
}
