package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
)

// Node is one element of a parsed export document. Tags keep their
// namespace qualification in the "{uri}local" form; all lookups compare
// local names only, so callers never deal with prefixes.
type Node struct {
	// Tag is the element name, namespace-qualified when the document
	// declares one.
	Tag string

	// Attr maps attribute local names to values.
	Attr map[string]string

	// Text is the trimmed character data before the first child element.
	Text string

	// Children are the direct child elements in document order.
	Children []*Node

	raw string
}

// LocalName strips namespace qualification from a tag: both the
// "{uri}name" braces form and the "prefix:name" form reduce to "name".
// Applied before every label comparison.
func LocalName(tag string) string {
	if i := strings.Index(tag, "}"); i >= 0 {
		tag = tag[i+1:]
	}
	if i := strings.Index(tag, ":"); i >= 0 {
		tag = tag[i+1:]
	}
	return tag
}

// FindChild returns the first direct child whose local name matches, or
// nil. Absence is never an error.
func (n *Node) FindChild(name string) *Node {
	for _, child := range n.Children {
		if LocalName(child.Tag) == name {
			return child
		}
	}
	return nil
}

// ChildText returns the trimmed text of the first child with the given
// local name, or the empty string when the child is absent or childless.
func (n *Node) ChildText(name string) string {
	child := n.FindChild(name)
	if child == nil {
		return ""
	}
	return child.Text
}

// Descendants returns every descendant with the given local name,
// depth-unbounded, in document order.
func (n *Node) Descendants(name string) []*Node {
	var out []*Node
	for _, child := range n.Children {
		if LocalName(child.Tag) == name {
			out = append(out, child)
		}
		out = append(out, child.Descendants(name)...)
	}
	return out
}

// Raw returns the verbatim source text of this node, as it appeared in
// the parsed document. Empty for nodes built programmatically.
func (n *Node) Raw() string {
	return n.raw
}

// Parse builds a node tree from an XML document. Character data after a
// node's first child element is discarded, matching the navigator's
// "text content" contract.
func Parse(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Node
	var stack []*Node
	starts := map[*Node]int64{}

	for {
		pos := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{Tag: qualifiedName(t.Name)}
			if len(t.Attr) > 0 {
				node.Attr = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					node.Attr[a.Name.Local] = a.Value
				}
			}
			starts[node] = pos
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parse document: %w", domain.ErrInvalidInput)
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			node.Text = strings.TrimSpace(node.Text)
			node.raw = string(data[starts[node]:dec.InputOffset()])

		case xml.CharData:
			if len(stack) > 0 {
				current := stack[len(stack)-1]
				if len(current.Children) == 0 {
					current.Text += string(t)
				}
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parse document: %w", domain.ErrInvalidInput)
	}
	return root, nil
}

// ParseItems parses an export document and returns its item nodes. The
// envelope must be an RSS feed (a channel wrapped in an rss root); any
// other root shape is a document-level failure. A feed without a channel
// yields no items, which is not an error.
func ParseItems(data []byte) ([]*Node, error) {
	root, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(LocalName(root.Tag), "rss") {
		return nil, fmt.Errorf("%w: root is %q", domain.ErrUnrecognisedFeed, root.Tag)
	}

	var channel *Node
	for _, child := range root.Children {
		if strings.EqualFold(LocalName(child.Tag), "channel") {
			channel = child
			break
		}
	}
	if channel == nil {
		return nil, nil
	}

	var items []*Node
	for _, child := range channel.Children {
		if LocalName(child.Tag) == "item" {
			items = append(items, child)
		}
	}
	return items, nil
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return "{" + name.Space + "}" + name.Local
}
