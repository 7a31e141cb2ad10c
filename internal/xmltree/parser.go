package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Parse reads an XML document from r and builds its node tree.
func Parse(r io.Reader) (*Document, error) {
	p := &parser{decoder: xml.NewDecoder(r)}
	return p.parseDocument()
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

type parser struct {
	decoder  *xml.Decoder
	current  *Node
	document *Document
}

func (p *parser) parseDocument() (*Document, error) {
	p.document = &Document{}

	for {
		token, err := p.decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("xml parsing error: %w", err)
		}
		if err := p.processToken(token); err != nil {
			return nil, err
		}
	}

	if p.document.Root == nil {
		return nil, fmt.Errorf("xml document is empty or contains no root element")
	}
	return p.document, nil
}

func (p *parser) processToken(token xml.Token) error {
	switch t := token.(type) {
	case xml.StartElement:
		return p.handleStartElement(t)
	case xml.EndElement:
		if p.current != nil {
			p.current = p.current.Parent
		}
	case xml.CharData:
		return p.handleCharData(t)
	case xml.Comment:
		p.appendChild(&Node{Kind: CommentNode, Data: string(t)})
	default:
		// processing instructions and directives carry nothing we read
	}
	return nil
}

func (p *parser) handleStartElement(element xml.StartElement) error {
	if p.document.Root != nil && p.current == nil {
		return fmt.Errorf("xml parsing error: multiple root elements (<%s> after <%s>)", element.Name.Local, p.document.Root.Name.Local)
	}

	node := &Node{
		Kind:  ElementNode,
		Name:  element.Name,
		Attrs: make([]xml.Attr, len(element.Attr)),
	}
	// the decoder reuses token memory
	copy(node.Attrs, element.Attr)

	if p.document.Root == nil {
		p.document.Root = node
	}
	p.appendChild(node)
	p.current = node
	return nil
}

// handleCharData merges adjacent character data (plain text and CDATA)
// into a single text node. Only whitespace may appear outside the root
// element.
func (p *parser) handleCharData(data xml.CharData) error {
	if p.current == nil {
		if len(bytes.TrimSpace(data)) > 0 {
			return fmt.Errorf("xml parsing error: text outside the root element: %q", truncate(string(bytes.TrimSpace(data)), 32))
		}
		return nil
	}
	if n := len(p.current.Children); n > 0 {
		if last := p.current.Children[n-1]; last.Kind == TextNode {
			last.Data += string(data)
			return nil
		}
	}
	p.appendChild(&Node{Kind: TextNode, Data: string(data)})
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func (p *parser) appendChild(node *Node) {
	if p.current == nil {
		return
	}
	node.Parent = p.current
	p.current.Children = append(p.current.Children, node)
}
