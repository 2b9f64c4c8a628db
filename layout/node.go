package layout

// TextItem is an immutable piece of text belonging to a text-holding node,
// with optional color/attr overrides. A zero Color or zero Attr means "not
// set" and falls back to the nearest styled ancestor at draw time.
type TextItem struct {
	Text  string
	Color Color
	Attr  Attr
}

type kind int

const (
	kindEmpty kind = iota
	kindChildren
	kindText
)

// Node is a single element of the layout tree. Every field except the tree
// links is freely settable by the caller after AppendChild returns it; the
// engine never mutates a Node's style fields itself.
type Node struct {
	Direction  Direction
	Basis      uint
	Expand     uint
	FitContent bool
	Wrap       bool
	Padding    Padding
	Color      Color
	Attr       Attr

	layout   *Layout
	parent   *Node
	kind     kind
	children []*Node
	texts    []TextItem
}

// AppendChild adds a new empty child node and returns it. Fails if n already
// holds text items.
func (n *Node) AppendChild() (*Node, error) {
	if n.kind == kindText {
		return nil, ErrNodeHoldsText
	}
	child := n.layout.allocNode()
	child.parent = n
	n.kind = kindChildren
	n.children = append(n.children, child)
	return child, nil
}

// AppendText appends an unstyled text item. Fails if n already holds child
// nodes.
func (n *Node) AppendText(text string) error {
	return n.AppendStyledText(text, 0, AttrNone)
}

// AppendStyledText appends a text item with explicit color/attr overrides.
// Fails if n already holds child nodes.
func (n *Node) AppendStyledText(text string, color Color, attr Attr) error {
	if n.kind == kindChildren {
		return ErrNodeHoldsChildren
	}
	n.kind = kindText
	n.texts = append(n.texts, TextItem{Text: text, Color: color, Attr: attr})
	return nil
}

// ClearChildren removes all children and text items, leaving n itself
// intact and legal to append to again.
func (n *Node) ClearChildren() {
	for _, c := range n.children {
		n.layout.freeNode(c)
	}
	n.children = nil
	n.texts = nil
	n.kind = kindEmpty
}

func (n *Node) hasChildren() bool { return n.kind == kindChildren }
func (n *Node) hasText() bool     { return n.kind == kindText }
