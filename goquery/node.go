package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fanza"
)

// Ensure Node implements fanza.Node at compile time.
var _ fanza.Node = (*Node)(nil)

// Node wraps a single-node goquery selection.
type Node struct {
	sel *goquery.Selection
}

// NewNode wraps the first node of sel.
func NewNode(sel *goquery.Selection) *Node {
	return &Node{sel: sel.First()}
}

// TagName returns the lower-case tag name, or "#document" for the root.
func (n *Node) TagName() string {
	return strings.ToLower(goquery.NodeName(n.sel))
}

// Text returns the whitespace-collapsed text content.
func (n *Node) Text() string {
	return strings.Join(strings.Fields(n.sel.Text()), " ")
}

// InnerHTML returns the markup of the node's children.
func (n *Node) InnerHTML() string {
	s, err := n.sel.Html()
	if err != nil {
		return ""
	}
	return s
}

// Attr returns the named attribute value.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Children returns the element children.
func (n *Node) Children() []fanza.Node {
	return wrap(n.sel.Children())
}

// ElementsByClassName returns descendants carrying every class in names.
func (n *Node) ElementsByClassName(names string) []fanza.Node {
	classes := strings.Fields(names)
	if len(classes) == 0 {
		return nil
	}
	return wrap(n.sel.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
		for _, class := range classes {
			if !s.HasClass(class) {
				return false
			}
		}
		return true
	}))
}

// ElementsByTagName returns descendants with the given tag name.
func (n *Node) ElementsByTagName(tag string) []fanza.Node {
	return wrap(n.sel.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.EqualFold(goquery.NodeName(s), tag)
	}))
}

func wrap(sel *goquery.Selection) []fanza.Node {
	nodes := make([]fanza.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}
