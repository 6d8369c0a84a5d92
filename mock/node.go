package mock

import "github.com/fwojciec/fanza"

var _ fanza.Node = (*Node)(nil)

// Node is a mock implementation of fanza.Node. Unset functions return
// zero values so tests only stub what they read.
type Node struct {
	TagNameFn             func() string
	TextFn                func() string
	InnerHTMLFn           func() string
	AttrFn                func(name string) (string, bool)
	ChildrenFn            func() []fanza.Node
	ElementsByClassNameFn func(names string) []fanza.Node
	ElementsByTagNameFn   func(tag string) []fanza.Node
}

func (n *Node) TagName() string {
	if n.TagNameFn == nil {
		return ""
	}
	return n.TagNameFn()
}

func (n *Node) Text() string {
	if n.TextFn == nil {
		return ""
	}
	return n.TextFn()
}

func (n *Node) InnerHTML() string {
	if n.InnerHTMLFn == nil {
		return ""
	}
	return n.InnerHTMLFn()
}

func (n *Node) Attr(name string) (string, bool) {
	if n.AttrFn == nil {
		return "", false
	}
	return n.AttrFn(name)
}

func (n *Node) Children() []fanza.Node {
	if n.ChildrenFn == nil {
		return nil
	}
	return n.ChildrenFn()
}

func (n *Node) ElementsByClassName(names string) []fanza.Node {
	if n.ElementsByClassNameFn == nil {
		return nil
	}
	return n.ElementsByClassNameFn(names)
}

func (n *Node) ElementsByTagName(tag string) []fanza.Node {
	if n.ElementsByTagNameFn == nil {
		return nil
	}
	return n.ElementsByTagNameFn(tag)
}
