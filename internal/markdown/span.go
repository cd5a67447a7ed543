package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// SpanKind classifies inline text
type SpanKind int

const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

func (k SpanKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
}

// Span is a typed fragment of inline text.
// Target holds the URL of links and images and is empty for every other kind.
type Span struct {
	Text   string
	Kind   SpanKind
	Target string
}

var (
	imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	// Images are extracted first, so no image syntax is left for this to match.
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Spans splits text into typed spans.
// Order matters: ** before * so bold is not read as two italics, images before links.
func Spans(text string) ([]Span, error) {
	spans := []Span{{Text: text, Kind: Plain}}

	delimiters := []struct {
		delim string
		kind  SpanKind
	}{
		{"**", Bold},
		{"*", Italic},
		{"`", Code},
	}

	var err error
	for _, d := range delimiters {
		spans, err = SplitDelimiter(spans, d.delim, d.kind)
		if err != nil {
			return nil, err
		}
	}

	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	return spans, nil
}

// SplitDelimiter splits every plain span on delim. Pieces at odd positions become kind.
// Spans that are already classified are passed through untouched.
func SplitDelimiter(spans []Span, delim string, kind SpanKind) ([]Span, error) {
	result := make([]Span, 0, len(spans))

	for _, span := range spans {
		if span.Kind != Plain {
			result = append(result, span)
			continue
		}

		pieces := strings.Split(span.Text, delim)
		if len(pieces)%2 == 0 {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnbalancedDelimiter, delim, span.Text)
		}

		for i, piece := range pieces {
			if i%2 == 0 {
				if piece != "" {
					result = append(result, Span{Text: piece, Kind: Plain})
				}
				continue
			}
			result = append(result, Span{Text: piece, Kind: kind})
		}
	}

	return result, nil
}

// SplitImages extracts ![alt](url) from plain spans
func SplitImages(spans []Span) []Span {
	return splitPattern(spans, imagePattern, Image)
}

// SplitLinks extracts [text](url) from plain spans
func SplitLinks(spans []Span) []Span {
	return splitPattern(spans, linkPattern, Link)
}

// splitPattern replaces every match of re inside plain spans with a span of kind.
// Text around the matches is kept as plain spans.
func splitPattern(spans []Span, re *regexp.Regexp, kind SpanKind) []Span {
	result := make([]Span, 0, len(spans))

	for _, span := range spans {
		if span.Kind != Plain {
			result = append(result, span)
			continue
		}

		matches := re.FindAllStringSubmatchIndex(span.Text, -1)
		if len(matches) == 0 {
			result = append(result, span)
			continue
		}

		last := 0
		for _, m := range matches {
			// without a URL the syntax stays plain text
			if m[4] == m[5] {
				continue
			}
			if m[0] > last {
				result = append(result, Span{Text: span.Text[last:m[0]], Kind: Plain})
			}
			result = append(result, Span{
				Text:   span.Text[m[2]:m[3]],
				Kind:   kind,
				Target: span.Text[m[4]:m[5]],
			})
			last = m[1]
		}
		if last < len(span.Text) {
			result = append(result, Span{Text: span.Text[last:], Kind: Plain})
		}
	}

	return result
}

// SpanToNode converts a span into a leaf node
func SpanToNode(span Span) (Node, error) {
	switch span.Kind {
	case Plain:
		return Text(span.Text), nil
	case Bold:
		return NewLeaf("b", span.Text), nil
	case Italic:
		return NewLeaf("i", span.Text), nil
	case Code:
		return NewLeaf("code", span.Text), nil
	case Link:
		return NewLeaf("a", span.Text,
			Attr{Key: "href", Value: span.Target},
			Attr{Key: "target", Value: "_blank"},
		), nil
	case Image:
		return NewLeaf("img", "",
			Attr{Key: "src", Value: span.Target},
			Attr{Key: "alt", Value: span.Text},
		), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpanKind, span.Kind)
	}
}

// inlineNodes runs text through the span splitter and converts every span to a node
func inlineNodes(text string) ([]Node, error) {
	spans, err := Spans(text)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(spans))
	for _, span := range spans {
		n, err := SpanToNode(span)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
