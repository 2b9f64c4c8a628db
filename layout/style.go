package layout

// Color is an opaque foreground/background color index. The engine never
// interprets it; it is carried through to the host Surface unchanged. How
// an index maps to an actual terminal color is entirely up to the host.
type Color int

// Attr is a bitmask of text attributes, combinable with bitwise or.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << (iota - 1)
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrStrikethrough
)

// Has reports whether the attribute set contains attr.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// With returns a new attribute set with attr added.
func (a Attr) With(attr Attr) Attr {
	return a | attr
}

// Without returns a new attribute set with attr removed.
func (a Attr) Without(attr Attr) Attr {
	return a &^ attr
}
