package fanza

// Node is a read-only view of an element (or the document root) in a parsed
// HTML page. Extraction depends only on this interface so that the HTML
// parsing library stays an implementation detail.
type Node interface {
	// TagName returns the lower-case tag name of the element.
	TagName() string

	// Text returns the text content with runs of whitespace collapsed
	// to a single space and leading/trailing whitespace removed.
	Text() string

	// InnerHTML returns the raw markup of the element's children.
	InnerHTML() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Children returns the element children in document order.
	Children() []Node

	// ElementsByClassName returns descendant elements carrying every class
	// in the space-separated names, in document order.
	ElementsByClassName(names string) []Node

	// ElementsByTagName returns descendant elements with the given tag name,
	// in document order. Matching is case-insensitive.
	ElementsByTagName(tag string) []Node
}

// Parser parses raw HTML into a navigable document.
type Parser interface {
	Parse(html string) (Node, error)
}
