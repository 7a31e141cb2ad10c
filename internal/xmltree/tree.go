// Package xmltree holds a parsed XML document as an immutable node tree.
package xmltree

import "encoding/xml"

// Kind identifies what a Node represents.
type Kind int

const (
	ElementNode Kind = iota
	TextNode
	CommentNode
)

// Document is a full XML document in memory.
type Document struct {
	Root *Node
}

// Node is a single element, text run or comment in the document tree.
// Name and Attrs are only set for elements; Data only for text and comments.
type Node struct {
	Kind     Kind
	Parent   *Node
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Node
	Data     string
}

// Descendants returns every node of the document in document order,
// starting with the root element.
func (d *Document) Descendants() []*Node {
	if d == nil || d.Root == nil {
		return nil
	}
	return d.Root.Descendants()
}

// Descendants returns n followed by all nodes below it in document order.
func (n *Node) Descendants() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		out = append(out, cur)
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// TagName returns the local element name, or "" for non-element nodes.
func (n *Node) TagName() string {
	if n.Kind != ElementNode {
		return ""
	}
	return n.Name.Local
}

// HasTagName reports whether n is an element with the given local name.
func (n *Node) HasTagName(name string) bool {
	return n.Kind == ElementNode && n.Name.Local == name
}

// Attribute looks up an attribute without a namespace prefix by name.
// Prefixed attributes such as x:Name never match.
func (n *Node) Attribute(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Text returns the content of the first child when that child is a text
// node. Elements that start with another element or a comment, or have no
// children at all, have no text.
func (n *Node) Text() (string, bool) {
	if n.Kind == TextNode {
		return n.Data, true
	}
	if len(n.Children) == 0 || n.Children[0].Kind != TextNode {
		return "", false
	}
	return n.Children[0].Data, true
}
