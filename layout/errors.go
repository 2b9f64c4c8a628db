package layout

import "errors"

// ErrNodeHoldsText is returned by AppendChild when the node already holds
// text items; a node holds either children or text, never both.
var ErrNodeHoldsText = errors.New("layout: node already holds text items")

// ErrNodeHoldsChildren is returned by AppendText/AppendStyledText when the
// node already holds child nodes.
var ErrNodeHoldsChildren = errors.New("layout: node already holds child nodes")
