package layout

import "sync"

// Layout owns a root Node, every descendant Node and TextItem, and the
// Surface it draws into. Nodes are taken from and returned to a sync.Pool,
// so nodes freed by Clear can be reused by later appends; text items are
// stored in each node's own slice and are not pooled.
type Layout struct {
	surface Surface
	root    *Node
	pool    sync.Pool
}

// New allocates a Layout with an empty root and the given Surface.
func New(surface Surface) *Layout {
	l := &Layout{surface: surface}
	l.pool.New = func() any { return &Node{} }
	l.root = l.allocNode()
	return l
}

func (l *Layout) allocNode() *Node {
	n, _ := l.pool.Get().(*Node)
	if n == nil {
		n = &Node{}
	}
	*n = Node{layout: l}
	return n
}

func (l *Layout) freeNode(n *Node) {
	for _, c := range n.children {
		l.freeNode(c)
	}
	n.children = nil
	n.texts = nil
	n.parent = nil
	l.pool.Put(n)
}

// Root returns the layout's root node.
func (l *Layout) Root() *Node { return l.root }

// Clear removes all tree content below the root, retaining the root itself.
func (l *Layout) Clear() {
	l.root.ClearChildren()
}

// Free releases every node and text item owned by the layout. The Layout
// must not be used afterward.
func (l *Layout) Free() {
	if l.root != nil {
		l.freeNode(l.root)
		l.root = nil
	}
}

// Draw runs the placement engine and draw emitter against rect, starting
// from the root.
func (l *Layout) Draw(rect Rect) error {
	if l.root == nil {
		return nil
	}
	return placeAndDraw(l.surface, l.root, rect)
}
