package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

var orderedMarkerPattern = regexp.MustCompile(`^\d+\.\s*`)

// ToHTMLNode converts a markdown document into a tree rooted at a div.
// The first block that fails to translate aborts the whole document.
func ToHTMLNode(document string) (*Parent, error) {
	blocks := Segment(document)

	children := make([]Node, 0, len(blocks))
	for i, block := range blocks {
		n, err := BlockToNode(block)
		if err != nil {
			return nil, &BlockError{Index: i, Kind: block.Kind, Err: err}
		}
		children = append(children, n)
	}

	return NewParent("div", children), nil
}

// ToHTML converts a markdown document into an HTML string
func ToHTML(document string) (string, error) {
	root, err := ToHTMLNode(document)
	if err != nil {
		return "", err
	}
	return root.Render()
}

// BlockToNode builds the subtree for a single block
func BlockToNode(block Block) (Node, error) {
	switch block.Kind {
	case Heading:
		return headingToNode(block.Text)
	case CodeBlock:
		return codeToNode(block.Text), nil
	case Quote:
		return quoteToNode(block.Text)
	case UnorderedList:
		return listToNode(block.Text, "ul", stripUnorderedMarker)
	case OrderedList:
		return listToNode(block.Text, "ol", stripOrderedMarker)
	case Paragraph:
		return paragraphToNode(block.Text)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBlockKind, block.Kind)
	}
}

func headingToNode(text string) (Node, error) {
	level := len(text) - len(strings.TrimLeft(text, "#"))
	if level < 1 || level > 6 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHeading, level)
	}

	children, err := inlineNodes(strings.TrimSpace(text[level:]))
	if err != nil {
		return nil, err
	}
	return NewParent(fmt.Sprintf("h%d", level), children), nil
}

// codeToNode keeps the fenced content literal. An info string on the
// opening fence is exposed as a language class.
func codeToNode(text string) Node {
	content := strings.TrimSuffix(strings.TrimPrefix(text, fence), fence)

	var props []Attr
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		if info := strings.Fields(content[:i]); len(info) > 0 {
			props = append(props, Attr{Key: "class", Value: "language-" + info[0]})
		}
		content = content[i+1:]
	}

	code := NewParent("code", []Node{Text(content)}, props...)
	return NewParent("pre", []Node{code})
}

func quoteToNode(text string) (Node, error) {
	lines := strings.Split(text, "\n")
	stripped := make([]string, 0, len(lines))
	for i, line := range lines {
		if !strings.HasPrefix(line, ">") {
			return nil, fmt.Errorf("%w: line %d %q", ErrInvalidQuote, i+1, line)
		}
		line = strings.TrimPrefix(line, ">")
		stripped = append(stripped, strings.TrimPrefix(line, " "))
	}

	children, err := inlineNodes(strings.Join(stripped, " "))
	if err != nil {
		return nil, err
	}
	return NewParent("blockquote", children), nil
}

func listToNode(text, tag string, stripMarker func(string) string) (Node, error) {
	lines := strings.Split(text, "\n")
	items := make([]Node, 0, len(lines))
	for _, line := range lines {
		children, err := inlineNodes(stripMarker(line))
		if err != nil {
			return nil, err
		}
		items = append(items, NewParent("li", children))
	}
	return NewParent(tag, items), nil
}

func stripUnorderedMarker(line string) string {
	if isUnorderedItem(line) {
		return line[2:]
	}
	return line
}

func stripOrderedMarker(line string) string {
	return orderedMarkerPattern.ReplaceAllString(line, "")
}

func paragraphToNode(text string) (Node, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	children, err := inlineNodes(strings.Join(lines, " "))
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, ErrEmptyParagraph
	}
	return NewParent("p", children), nil
}
