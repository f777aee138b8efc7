package mdsite

import "fmt"

// Style tags a run of inline text.
type Style uint8

const (
	StylePlain Style = iota
	StyleBold
	StyleItalic
	StyleCode
	StyleLink
	StyleImage
)

func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleCode:
		return "code"
	case StyleLink:
		return "link"
	case StyleImage:
		return "image"
	default:
		return fmt.Sprintf("style(%d)", uint8(s))
	}
}

// TextSpan is a run of inline text with a single style. Href is set for
// links; Src and Alt for images.
type TextSpan struct {
	Style   Style
	Content string
	Href    string
	Src     string
	Alt     string
}

// Plain returns an unstyled span.
func Plain(text string) TextSpan {
	return TextSpan{Style: StylePlain, Content: text}
}

// Styled returns a span of text in the given style.
func Styled(style Style, text string) TextSpan {
	return TextSpan{Style: style, Content: text}
}

// LinkSpan returns a link span.
func LinkSpan(text, href string) TextSpan {
	return TextSpan{Style: StyleLink, Content: text, Href: href}
}

// ImageSpan returns an image span. Content mirrors the alt text.
func ImageSpan(alt, src string) TextSpan {
	return TextSpan{Style: StyleImage, Content: alt, Src: src, Alt: alt}
}

func (s TextSpan) String() string {
	switch s.Style {
	case StyleLink:
		return fmt.Sprintf("%s(%q, href=%q)", s.Style, s.Content, s.Href)
	case StyleImage:
		return fmt.Sprintf("%s(alt=%q, src=%q)", s.Style, s.Alt, s.Src)
	default:
		return fmt.Sprintf("%s(%q)", s.Style, s.Content)
	}
}
