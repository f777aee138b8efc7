package mdsite

import "strings"

// Image is an image reference found in inline text.
type Image struct {
	Alt string
	URL string
}

// Link is a link reference found in inline text.
type Link struct {
	Text string
	URL  string
}

type inlineRef struct {
	start int
	end   int
	label string
	url   string
}

// ExtractImages returns every ![alt](url) reference in text, left to right.
func ExtractImages(text string) []Image {
	refs := scanRefs(text, true)
	out := make([]Image, 0, len(refs))
	for _, ref := range refs {
		out = append(out, Image{Alt: ref.label, URL: ref.url})
	}
	return out
}

// ExtractLinks returns every [text](url) reference in text that is not an
// image, left to right.
func ExtractLinks(text string) []Link {
	refs := scanRefs(text, false)
	out := make([]Link, 0, len(refs))
	for _, ref := range refs {
		out = append(out, Link{Text: ref.label, URL: ref.url})
	}
	return out
}

// SplitImages splits plain spans around image references. Spans without a
// match are returned as they are.
func SplitImages(spans []TextSpan) []TextSpan {
	return splitRefs(spans, true)
}

// SplitLinks splits plain spans around link references. Spans without a
// match are returned as they are.
func SplitLinks(spans []TextSpan) []TextSpan {
	return splitRefs(spans, false)
}

func splitRefs(spans []TextSpan, image bool) []TextSpan {
	out := make([]TextSpan, 0, len(spans))
	for _, span := range spans {
		if span.Style != StylePlain {
			out = append(out, span)
			continue
		}
		refs := scanRefs(span.Content, image)
		if len(refs) == 0 {
			out = append(out, span)
			continue
		}
		last := 0
		for _, ref := range refs {
			if ref.start > last {
				out = append(out, Plain(span.Content[last:ref.start]))
			}
			if image {
				out = append(out, ImageSpan(ref.label, ref.url))
			} else {
				out = append(out, LinkSpan(ref.label, ref.url))
			}
			last = ref.end
		}
		if last < len(span.Content) {
			out = append(out, Plain(span.Content[last:]))
		}
	}
	return out
}

// scanRefs finds the smallest non-overlapping [label](url) matches. With
// image set only matches preceded by '!' count, otherwise those are skipped.
func scanRefs(text string, image bool) []inlineRef {
	var refs []inlineRef
	for i := 0; i < len(text); {
		open := strings.IndexByte(text[i:], '[')
		if open < 0 {
			break
		}
		open += i
		bang := open > 0 && text[open-1] == '!'
		if bang != image {
			i = open + 1
			continue
		}
		ref, ok := matchRef(text, open)
		if !ok {
			i = open + 1
			continue
		}
		ref.start = open
		if image {
			ref.start--
		}
		refs = append(refs, ref)
		i = ref.end
	}
	return refs
}

// matchRef matches a reference whose label opens at text[open]. Brackets do
// not nest: another '[' before the closing ']' abandons this candidate in
// favour of the inner one, and the first ')' closes the URL.
func matchRef(text string, open int) (inlineRef, bool) {
	closeLabel := -1
	for j := open + 1; j < len(text); j++ {
		if text[j] == '[' {
			return inlineRef{}, false
		}
		if text[j] == ']' {
			closeLabel = j
			break
		}
	}
	if closeLabel < 0 || closeLabel+1 >= len(text) || text[closeLabel+1] != '(' {
		return inlineRef{}, false
	}
	urlStart := closeLabel + 2
	closeURL := strings.IndexByte(text[urlStart:], ')')
	if closeURL < 0 {
		return inlineRef{}, false
	}
	closeURL += urlStart
	url := strings.TrimSpace(text[urlStart:closeURL])
	if url == "" {
		return inlineRef{}, false
	}
	return inlineRef{
		end:   closeURL + 1,
		label: text[open+1 : closeLabel],
		url:   url,
	}, true
}
