package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDelimiter(t *testing.T) {
	tests := []struct {
		name  string
		in    []Span
		delim string
		kind  SpanKind
		want  []Span
	}{
		{
			name:  "code in the middle",
			in:    []Span{{Text: "a `code` b", Kind: Plain}},
			delim: "`",
			kind:  Code,
			want: []Span{
				{Text: "a ", Kind: Plain},
				{Text: "code", Kind: Code},
				{Text: " b", Kind: Plain},
			},
		},
		{
			name:  "empty plain pieces dropped",
			in:    []Span{{Text: "**bold**", Kind: Plain}},
			delim: "**",
			kind:  Bold,
			want:  []Span{{Text: "bold", Kind: Bold}},
		},
		{
			name:  "empty marked piece kept",
			in:    []Span{{Text: "****", Kind: Plain}},
			delim: "**",
			kind:  Bold,
			want:  []Span{{Text: "", Kind: Bold}},
		},
		{
			name: "classified spans pass through",
			in: []Span{
				{Text: "*kept*", Kind: Code},
				{Text: "x *y*", Kind: Plain},
			},
			delim: "*",
			kind:  Italic,
			want: []Span{
				{Text: "*kept*", Kind: Code},
				{Text: "x ", Kind: Plain},
				{Text: "y", Kind: Italic},
			},
		},
		{
			name: "no delimiter leaves spans unchanged",
			in: []Span{
				{Text: "hello", Kind: Plain},
				{Text: "world", Kind: Bold},
			},
			delim: "`",
			kind:  Code,
			want: []Span{
				{Text: "hello", Kind: Plain},
				{Text: "world", Kind: Bold},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitDelimiter(tt.in, tt.delim, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitDelimiterUnbalanced(t *testing.T) {
	_, err := SplitDelimiter([]Span{{Text: "Hello **world", Kind: Plain}}, "**", Bold)
	assert.ErrorIs(t, err, ErrUnbalancedDelimiter)

	_, err = Spans("Hello **world")
	assert.ErrorIs(t, err, ErrUnbalancedDelimiter)
}

func TestSplitImages(t *testing.T) {
	got := SplitImages([]Span{{Text: "see ![a cat](/cat.png) and ![dog](/dog.png)", Kind: Plain}})
	assert.Equal(t, []Span{
		{Text: "see ", Kind: Plain},
		{Text: "a cat", Kind: Image, Target: "/cat.png"},
		{Text: " and ", Kind: Plain},
		{Text: "dog", Kind: Image, Target: "/dog.png"},
	}, got)
}

func TestSplitLinksKeepsSurroundingText(t *testing.T) {
	got := SplitLinks([]Span{{Text: "go to [docs](https://go.dev/doc) now", Kind: Plain}})
	assert.Equal(t, []Span{
		{Text: "go to ", Kind: Plain},
		{Text: "docs", Kind: Link, Target: "https://go.dev/doc"},
		{Text: " now", Kind: Plain},
	}, got)

	got = SplitLinks([]Span{{Text: "[only](/x)", Kind: Plain}})
	assert.Equal(t, []Span{{Text: "only", Kind: Link, Target: "/x"}}, got)

	got = SplitLinks([]Span{{Text: "no links here", Kind: Plain}})
	assert.Equal(t, []Span{{Text: "no links here", Kind: Plain}}, got)
}

func TestSplitPatternRequiresTarget(t *testing.T) {
	got := SplitLinks([]Span{{Text: "empty [x]() and [y](/y)", Kind: Plain}})
	assert.Equal(t, []Span{
		{Text: "empty [x]() and ", Kind: Plain},
		{Text: "y", Kind: Link, Target: "/y"},
	}, got)

	spans, err := Spans("![cat]() here")
	require.NoError(t, err)
	assert.Equal(t, []Span{{Text: "![cat]() here", Kind: Plain}}, spans)

	for _, s := range spans {
		if s.Kind == Link || s.Kind == Image {
			assert.NotEmpty(t, s.Target)
		}
	}
}

func TestSpans(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Span
	}{
		{
			name: "bold and italic",
			in:   "Some **bold** and *italic* text.",
			want: []Span{
				{Text: "Some ", Kind: Plain},
				{Text: "bold", Kind: Bold},
				{Text: " and ", Kind: Plain},
				{Text: "italic", Kind: Italic},
				{Text: " text.", Kind: Plain},
			},
		},
		{
			name: "every kind",
			in:   "**b** *i* `c` ![alt](/img.png) [l](/u)",
			want: []Span{
				{Text: "b", Kind: Bold},
				{Text: " ", Kind: Plain},
				{Text: "i", Kind: Italic},
				{Text: " ", Kind: Plain},
				{Text: "c", Kind: Code},
				{Text: " ", Kind: Plain},
				{Text: "alt", Kind: Image, Target: "/img.png"},
				{Text: " ", Kind: Plain},
				{Text: "l", Kind: Link, Target: "/u"},
			},
		},
		{
			name: "image is not read as a link",
			in:   "![logo](/logo.svg)",
			want: []Span{{Text: "logo", Kind: Image, Target: "/logo.svg"}},
		},
		{
			name: "empty text",
			in:   "",
			want: []Span{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Spans(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpanToNode(t *testing.T) {
	tests := []struct {
		span Span
		want string
	}{
		{Span{Text: "plain", Kind: Plain}, "plain"},
		{Span{Text: "b", Kind: Bold}, "<b>b</b>"},
		{Span{Text: "i", Kind: Italic}, "<i>i</i>"},
		{Span{Text: "x := 1", Kind: Code}, "<code>x := 1</code>"},
		{Span{Text: "docs", Kind: Link, Target: "/docs"}, `<a href="/docs" target="_blank">docs</a>`},
		{Span{Text: "cat", Kind: Image, Target: "/cat.png"}, `<img src="/cat.png" alt="cat"></img>`},
	}

	for _, tt := range tests {
		t.Run(tt.span.Kind.String(), func(t *testing.T) {
			n, err := SpanToNode(tt.span)
			require.NoError(t, err)
			got, err := n.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := SpanToNode(Span{Text: "?", Kind: SpanKind(42)})
	assert.ErrorIs(t, err, ErrUnknownSpanKind)
}
