package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// BlockKind is the structural type of a block
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	CodeBlock
	Quote
	UnorderedList
	OrderedList
)

func (k BlockKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case CodeBlock:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered list"
	case OrderedList:
		return "ordered list"
	default:
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
}

// Block is a run of non-blank lines, trimmed, with its classification
type Block struct {
	Text string
	Kind BlockKind
}

const fence = "```"

var (
	headingPattern     = regexp.MustCompile(`^#{1,6}\s+.+$`)
	orderedItemPattern = regexp.MustCompile(`^\d+\.\s`)
	// a fence with an optional info string; inline ```code``` never opens one
	fenceOpenPattern = regexp.MustCompile("^```[^`]*$")
)

// Segment splits a document into classified blocks separated by blank lines.
// Blank lines inside an open code fence belong to the code block.
func Segment(document string) []Block {
	lines := strings.Split(NormalizeNewlines(document), "\n")

	var blocks []Block
	var current []string
	inFence := false

	flush := func() {
		text := strings.TrimSpace(strings.Join(current, "\n"))
		current = current[:0]
		if text == "" {
			return
		}
		blocks = append(blocks, Block{Text: text, Kind: Classify(text)})
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case inFence && strings.HasPrefix(trimmed, fence):
			inFence = false
		case !inFence && fenceOpenPattern.MatchString(trimmed):
			inFence = true
		}
		if trimmed == "" && !inFence {
			flush()
			continue
		}
		current = append(current, line)
	}

	// An unclosed fence does not swallow the rest of the document
	if inFence {
		pending := current
		current = nil
		for _, line := range pending {
			if strings.TrimSpace(line) == "" {
				flush()
				continue
			}
			current = append(current, line)
		}
	}
	flush()

	return blocks
}

// Classify determines the kind of a trimmed block. The first matching rule wins.
func Classify(text string) BlockKind {
	if headingPattern.MatchString(text) {
		return Heading
	}
	if len(text) >= 2*len(fence) && strings.HasPrefix(text, fence) && strings.HasSuffix(text, fence) {
		return CodeBlock
	}

	lines := strings.Split(text, "\n")
	switch {
	case allLines(lines, func(l string) bool { return strings.HasPrefix(l, ">") }):
		return Quote
	case allLines(lines, isUnorderedItem):
		return UnorderedList
	case allLines(lines, orderedItemPattern.MatchString):
		return OrderedList
	default:
		return Paragraph
	}
}

func isUnorderedItem(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}

func allLines(lines []string, match func(string) bool) bool {
	for _, line := range lines {
		if !match(line) {
			return false
		}
	}
	return len(lines) > 0
}

// NormalizeNewlines replaces CRLF and lone CR line endings with LF
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
