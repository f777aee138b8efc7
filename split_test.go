package mdsite

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitByDelimiter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		in    []TextSpan
		delim string
		style Style
		want  []TextSpan
	}{
		{
			name:  "code",
			in:    []TextSpan{Plain("This is text with a `code block` word")},
			delim: "`",
			style: StyleCode,
			want: []TextSpan{
				Plain("This is text with a "),
				Styled(StyleCode, "code block"),
				Plain(" word"),
			},
		},
		{
			name:  "bold at start",
			in:    []TextSpan{Plain("**bold** rest")},
			delim: "**",
			style: StyleBold,
			want:  []TextSpan{Styled(StyleBold, "bold"), Plain(" rest")},
		},
		{
			name:  "several pairs",
			in:    []TextSpan{Plain("*a* and *b*")},
			delim: "*",
			style: StyleItalic,
			want:  []TextSpan{Styled(StyleItalic, "a"), Plain(" and "), Styled(StyleItalic, "b")},
		},
		{
			name:  "non-plain spans pass through",
			in:    []TextSpan{Styled(StyleCode, "a*b*"), Plain("x *y*"), LinkSpan("*l*", "u")},
			delim: "*",
			style: StyleItalic,
			want: []TextSpan{
				Styled(StyleCode, "a*b*"),
				Plain("x "),
				Styled(StyleItalic, "y"),
				LinkSpan("*l*", "u"),
			},
		},
		{
			name:  "plain spans without delimiter kept",
			in:    []TextSpan{Plain("none here"), Plain("`x`")},
			delim: "`",
			style: StyleCode,
			want:  []TextSpan{Plain("none here"), Styled(StyleCode, "x")},
		},
		{
			name:  "empty pair",
			in:    []TextSpan{Plain("a````b")},
			delim: "``",
			style: StyleCode,
			want:  []TextSpan{Plain("a"), Styled(StyleCode, ""), Plain("b")},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := SplitByDelimiter(tc.in, tc.delim, tc.style)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSplitByDelimiterErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		in    []TextSpan
		delim string
		want  error
	}{
		{name: "no delimiter", in: []TextSpan{Plain("This is text with no delimiters here.")}, delim: "*", want: ErrNoDelimiterFound},
		{name: "empty input", in: nil, delim: "*", want: ErrNoDelimiterFound},
		{name: "unmatched", in: []TextSpan{Plain("This is text with an *italic start but no end")}, delim: "*", want: ErrMalformedMarkup},
		{name: "unmatched in second span", in: []TextSpan{Plain("*ok*"), Plain("odd *")}, delim: "*", want: ErrMalformedMarkup},
		{name: "empty delimiter", in: []TextSpan{Plain("x")}, delim: "", want: ErrMalformedMarkup},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := SplitByDelimiter(tc.in, tc.delim, StyleItalic)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v (%v)", tc.want, err, got)
			}
		})
	}
}

// Bold has to be split before italic. Running the passes the other way
// round breaks "**bold**" into two empty italics around plain text.
func TestDelimiterOrderMatters(t *testing.T) {
	t.Parallel()
	want := []TextSpan{Styled(StyleBold, "bold")}
	got, err := SplitInline("**bold**")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	reversed, err := SplitByDelimiter([]TextSpan{Plain("**bold**")}, "*", StyleItalic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reversed, err = applyDelimiter(reversed, Delimiter{Marker: "**", Style: StyleBold}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantReversed := []TextSpan{Styled(StyleItalic, ""), Plain("bold"), Styled(StyleItalic, "")}
	if !reflect.DeepEqual(reversed, wantReversed) {
		t.Fatalf("expected %v, got %v", wantReversed, reversed)
	}
	if reflect.DeepEqual(reversed, got) {
		t.Fatalf("expected reversed order to change the output")
	}

	order := InlineDelimiters()
	if len(order) != 3 || order[0].Style != StyleCode || order[1].Style != StyleBold || order[2].Style != StyleItalic {
		t.Fatalf("unexpected delimiter order: %v", order)
	}
	order[0].Marker = "~"
	if InlineDelimiters()[0].Marker != "`" {
		t.Fatalf("expected InlineDelimiters to return a copy")
	}
}

func TestSplitInline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []TextSpan
	}{
		{name: "plain", in: "just text", want: []TextSpan{Plain("just text")}},
		{name: "empty", in: "", want: []TextSpan{Plain("")}},
		{
			name: "all styles",
			in:   "**b** *i* `c` [l](https://l) ![a](https://a.png)",
			want: []TextSpan{
				Styled(StyleBold, "b"),
				Plain(" "),
				Styled(StyleItalic, "i"),
				Plain(" "),
				Styled(StyleCode, "c"),
				Plain(" "),
				LinkSpan("l", "https://l"),
				Plain(" "),
				ImageSpan("a", "https://a.png"),
			},
		},
		{
			name: "markers inside code stay literal",
			in:   "run `a*b**c` now",
			want: []TextSpan{Plain("run "), Styled(StyleCode, "a*b**c"), Plain(" now")},
		},
		{
			name: "italic inside bold stays literal",
			in:   "This is **bold and *italic* inside**",
			want: []TextSpan{Plain("This is "), Styled(StyleBold, "bold and *italic* inside")},
		},
		{
			name: "link text is not styled",
			in:   "[**x**](https://x)",
			want: []TextSpan{LinkSpan("**x**", "https://x")},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := SplitInline(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSplitByDelimiterCountsStyledSpans(t *testing.T) {
	t.Parallel()
	in := []TextSpan{Plain("a "), Styled(StyleCode, "*x*")}
	got, err := SplitByDelimiter(in, "*", StyleItalic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("expected %v, got %v", in, got)
	}
	if _, err := SplitInline("see `a*b*c`", WithStrictDelimiters(true)); !errors.Is(err, ErrNoDelimiterFound) {
		t.Fatalf("expected ErrNoDelimiterFound for the missing bold marker, got %v", err)
	}
	if _, err := SplitInline("`**x**` and `*y*`", WithStrictDelimiters(true)); err != nil {
		t.Fatalf("markers inside code should count as present, got %v", err)
	}
}

func TestSplitInlineStrict(t *testing.T) {
	t.Parallel()
	if _, err := SplitInline("plain text", WithStrictDelimiters(true)); !errors.Is(err, ErrNoDelimiterFound) {
		t.Fatalf("expected ErrNoDelimiterFound, got %v", err)
	}
	got, err := SplitInline("`c` **b** *i*", WithStrictDelimiters(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 spans, got %v", got)
	}
	if _, err := SplitInline("5 * 3"); !errors.Is(err, ErrMalformedMarkup) {
		t.Fatalf("expected ErrMalformedMarkup, got %v", err)
	}
}
