package markdown

import (
	"fmt"
	"strings"
)

// Node is an element of the output HTML tree. It is implemented by *Leaf and *Parent only.
type Node interface {
	Render() (string, error)
	node()
}

// Attr is a single HTML attribute
type Attr struct {
	Key   string
	Value string
}

// Leaf is a node without children.
// An empty Tag renders the value as raw text.
type Leaf struct {
	Tag   string
	Value *string
	Props []Attr
}

// Parent is a node that exclusively owns an ordered list of children
type Parent struct {
	Tag      string
	Children []Node
	Props    []Attr
}

func (*Leaf) node()   {}
func (*Parent) node() {}

// Text creates an untagged leaf holding raw text
func Text(value string) *Leaf {
	return &Leaf{Value: &value}
}

// NewLeaf creates a tagged leaf
func NewLeaf(tag, value string, props ...Attr) *Leaf {
	return &Leaf{Tag: tag, Value: &value, Props: props}
}

// NewParent creates a parent node
func NewParent(tag string, children []Node, props ...Attr) *Parent {
	return &Parent{Tag: tag, Children: children, Props: props}
}

// Render serializes the leaf
func (l *Leaf) Render() (string, error) {
	if l.Value == nil {
		return "", ErrMissingValue
	}
	if l.Tag == "" {
		return *l.Value, nil
	}
	return fmt.Sprintf("<%s%s>%s</%s>", l.Tag, RenderAttributes(l.Props), *l.Value, l.Tag), nil
}

// Render serializes the parent and all of its children in order
func (p *Parent) Render() (string, error) {
	if p.Tag == "" {
		return "", ErrMissingTag
	}
	if len(p.Children) == 0 {
		return "", fmt.Errorf("<%s>: %w", p.Tag, ErrEmptyChildren)
	}

	var b strings.Builder
	b.WriteString("<" + p.Tag + RenderAttributes(p.Props) + ">")
	for _, child := range p.Children {
		html, err := child.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(html)
	}
	b.WriteString("</" + p.Tag + ">")

	return b.String(), nil
}

// Render serializes any node
func Render(n Node) (string, error) {
	return n.Render()
}

// RenderAttributes formats props as ` key="value"` pairs in insertion order
func RenderAttributes(props []Attr) string {
	var b strings.Builder
	for _, attr := range props {
		fmt.Fprintf(&b, ` %s="%s"`, attr.Key, attr.Value)
	}
	return b.String()
}
