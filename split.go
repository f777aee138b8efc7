package mdsite

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Delimiter pairs an inline marker with the style it produces.
type Delimiter struct {
	Marker string
	Style  Style
}

// inlineDelimiters is applied in order. Code spans go first so markers inside
// them stay literal, and "**" must be consumed before "*" or bold text is
// split as two empty italics.
var inlineDelimiters = [...]Delimiter{
	{Marker: "`", Style: StyleCode},
	{Marker: "**", Style: StyleBold},
	{Marker: "*", Style: StyleItalic},
}

// InlineDelimiters returns the delimiters in the order the inline pipeline
// applies them.
func InlineDelimiters() []Delimiter {
	out := make([]Delimiter, len(inlineDelimiters))
	copy(out, inlineDelimiters[:])
	return out
}

// SplitByDelimiter splits every plain span at paired occurrences of delim.
// Text between a pair takes style; text outside stays plain and non-plain
// spans pass through untouched.
//
// An odd number of delimiters inside one plain span fails with
// ErrMalformedMarkup. If no span of any style contains delim the call fails
// with ErrNoDelimiterFound; callers that treat absence as a no-op check for it
// with errors.Is.
func SplitByDelimiter(spans []TextSpan, delim string, style Style) ([]TextSpan, error) {
	if delim == "" {
		return nil, fmt.Errorf("split %s: empty delimiter: %w", style, ErrMalformedMarkup)
	}
	out := make([]TextSpan, 0, len(spans))
	found := false
	for _, span := range spans {
		if span.Style != StylePlain {
			if strings.Contains(span.Content, delim) {
				found = true
			}
			out = append(out, span)
			continue
		}
		n := strings.Count(span.Content, delim)
		if n == 0 {
			out = append(out, span)
			continue
		}
		found = true
		if n%2 != 0 {
			return nil, fmt.Errorf("split %s: unmatched %q in %q: %w", style, delim, excerpt(span.Content), ErrMalformedMarkup)
		}
		for i, part := range strings.Split(span.Content, delim) {
			if i%2 == 1 {
				out = append(out, Styled(style, part))
				continue
			}
			if part != "" {
				out = append(out, Plain(part))
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("split %s: %q: %w", style, delim, ErrNoDelimiterFound)
	}
	return out, nil
}

// SplitInline runs the inline pipeline over text: images, links, code, bold
// and italic, in that order.
func SplitInline(text string, opts ...Option) ([]TextSpan, error) {
	return splitInline(text, newConfig(opts))
}

func splitInline(text string, cfg config) ([]TextSpan, error) {
	spans := []TextSpan{Plain(text)}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	var err error
	for _, d := range inlineDelimiters {
		spans, err = applyDelimiter(spans, d, cfg.strictDelimiters)
		if err != nil {
			return nil, err
		}
	}
	return spans, nil
}

func applyDelimiter(spans []TextSpan, d Delimiter, strict bool) ([]TextSpan, error) {
	out, err := SplitByDelimiter(spans, d.Marker, d.Style)
	if err != nil {
		if !strict && errors.Is(err, ErrNoDelimiterFound) {
			return spans, nil
		}
		return nil, err
	}
	return out, nil
}

func excerpt(s string) string {
	const max = 32
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
