package site

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter holds the page metadata recognised at the top of a markdown
// file. YAML (---), TOML (+++) and JSON (;;;) blocks are accepted.
type FrontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
	Draft bool   `yaml:"draft" toml:"draft" json:"draft"`
}

// ParseFrontMatter splits src into its front matter and the markdown body.
// Input that does not open with a closed metadata block is returned unchanged
// with a zero FrontMatter, so a leading "---" thematic line in prose is left
// alone.
func ParseFrontMatter(src []byte) (FrontMatter, []byte, error) {
	src = trimBOM(src)
	if !hasFrontMatter(src) {
		return FrontMatter{}, src, nil
	}
	var fm FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))), &fm)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("front matter: %w", err)
	}
	return fm, body, nil
}

// hasFrontMatter reports whether src starts with an opening delimiter, a
// metadata-looking second line and a matching closing delimiter.
func hasFrontMatter(src []byte) bool {
	open, next, ok := nextLine(src, 0)
	if !ok {
		return false
	}
	delim, ok := openingDelimiter(open)
	if !ok {
		return false
	}
	second, next, ok := nextLine(src, next)
	if !ok || !metadataLikely(second) {
		return false
	}
	return hasClosingDelimiter(src, next, delim)
}

func nextLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, 0, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	end := start + i
	return trimCR(src[start:end]), end + 1, true
}

func openingDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(line)
	for _, delim := range [][]byte{[]byte("---"), []byte("+++"), []byte(";;;")} {
		if bytes.Equal(trimmed, delim) {
			return delim, true
		}
	}
	return nil, false
}

func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return true
	}
	return bytes.ContainsAny(trimmed, ":=")
}

// hasClosingDelimiter scans from start, the line after the first metadata
// line, for delim on a line of its own.
func hasClosingDelimiter(src []byte, start int, delim []byte) bool {
	for idx := start; idx < len(src); {
		line, next, ok := nextLine(src, idx)
		if !ok {
			return false
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return true
		}
		idx = next
	}
	return false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
