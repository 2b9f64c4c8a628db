package layout

import "fmt"

// Surface is the host collaborator the engine draws into. The engine never
// allocates a concrete buffer itself; every rendered cell passes through
// one of these two calls.
type Surface interface {
	// DrawText asks the host to render text starting at (col,row). The
	// engine guarantees col+len(text) <= the target rectangle's right edge
	// and row within its bottom edge.
	DrawText(text string, col, row int, color Color, attr Attr) error
	// DrawColor asks the host to fill a background color over the given
	// rectangle. Same out-of-bounds guarantee as DrawText.
	DrawColor(col, row, width, height int, color Color) error
}

type bucket int

const (
	bucketFixed bucket = iota
	bucketFit
	bucketExpand
)

// classify sorts a child into one of the four placement buckets. basis
// wins over expand when both are set on a non-fit node.
func classify(c *Node) (bucket, uint) {
	switch {
	case c.Basis > 0 && !c.FitContent:
		return bucketFixed, c.Basis
	case c.FitContent:
		return bucketFit, 0
	case c.Expand > 0:
		return bucketExpand, c.Expand
	default:
		return bucketExpand, 1
	}
}

// placeAndDraw runs placement and draw emission for n against rect in one
// pass, so no intermediate tree of rectangles is ever allocated.
func placeAndDraw(s Surface, n *Node, rect Rect) error {
	if n.Color != 0 {
		if err := s.DrawColor(rect.Col, rect.Row, rect.Width, rect.Height, n.Color); err != nil {
			return fmt.Errorf("draw color at (%d,%d): %w", rect.Col, rect.Row, err)
		}
	}

	inner := rect.Inset(n.Padding)
	if inner.Width == 0 || inner.Height == 0 {
		return nil
	}

	switch {
	case n.hasChildren():
		return placeChildren(s, n, inner)
	case n.hasText():
		return placeText(s, n, inner)
	}
	return nil
}

// placeChildren lays node children along n's own main axis: classify every
// child, distribute leftover main-axis space across the flexible ones with
// an exact integer remainder split, then walk children in order, clipping
// or skipping any that cross the inner rectangle's main boundary.
func placeChildren(s Surface, n *Node, inner Rect) error {
	ownAxis := axisFor(n.Direction)
	main := ownAxis.main(inner)
	childCross := ownAxis.cross(inner)

	type entry struct {
		node   *Node
		b      bucket
		weight uint
		extent int
	}
	entries := make([]entry, len(n.children))
	rigid := 0
	var totalWeight uint
	for i, c := range n.children {
		b, w := classify(c)
		e := entry{node: c, b: b, weight: w}
		switch b {
		case bucketFixed:
			e.extent = int(w)
			rigid += e.extent
		case bucketFit:
			e.extent = c.minMainExtent(ownAxis, childCross)
			rigid += e.extent
		case bucketExpand:
			totalWeight += w
		}
		entries[i] = e
	}

	leftover := main - rigid
	if leftover < 0 {
		leftover = 0
	}
	if totalWeight > 0 && leftover > 0 {
		assigned := 0
		for i := range entries {
			if entries[i].b != bucketExpand {
				continue
			}
			share := leftover * int(entries[i].weight) / int(totalWeight)
			entries[i].extent = share
			assigned += share
		}
		rem := leftover - assigned
		for i := range entries {
			if rem <= 0 {
				break
			}
			if entries[i].b != bucketExpand {
				continue
			}
			entries[i].extent++
			rem--
		}
	}

	offset := 0
	for _, e := range entries {
		claim := e.extent
		if claim <= 0 {
			continue
		}
		if offset >= main {
			continue
		}
		extent := claim
		if offset+extent > main {
			extent = main - offset
		}
		childRect := ownAxis.slice(inner, offset, extent)
		offset += claim
		if err := placeAndDraw(s, e.node, childRect); err != nil {
			return err
		}
	}
	return nil
}

// placeText dispatches a text-holding node's items to the wrap or non-wrap
// placement rule. Text always reads horizontally; the node's Direction
// only decides how items arrange within the inner rectangle.
func placeText(s Surface, n *Node, inner Rect) error {
	if n.Wrap {
		if n.Direction == Cols {
			return placeTextWrapLines(s, n, inner)
		}
		return placeTextWrapGrid(s, n, inner)
	}
	if n.Direction == Rows {
		return placeTextRows(s, n, inner)
	}
	return placeTextCols(s, n, inner)
}

// placeTextRows handles a non-wrap Rows text node: one item per row,
// starting at the first row, extras past the last available row dropped.
func placeTextRows(s Surface, n *Node, inner Rect) error {
	limit := inner.Row + inner.Height
	for i, t := range n.texts {
		row := inner.Row + i
		if row >= limit {
			break
		}
		length := len(t.Text)
		if length > inner.Width {
			length = inner.Width
		}
		color, attr := resolveStyle(n, t)
		if err := s.DrawText(t.Text[:length], inner.Col, row, color, attr); err != nil {
			return fmt.Errorf("draw text at (%d,%d): %w", inner.Col, row, err)
		}
	}
	return nil
}

// placeTextCols handles a non-wrap Cols text node: items concatenate
// left to right on the single available row, extras past the last
// available column dropped.
func placeTextCols(s Surface, n *Node, inner Rect) error {
	col := inner.Col
	limit := inner.Col + inner.Width
	for _, t := range n.texts {
		if col >= limit {
			break
		}
		length := len(t.Text)
		if col+length > limit {
			length = limit - col
		}
		if length > 0 {
			color, attr := resolveStyle(n, t)
			if err := s.DrawText(t.Text[:length], col, inner.Row, color, attr); err != nil {
				return fmt.Errorf("draw text at (%d,%d): %w", col, inner.Row, err)
			}
		}
		col += len(t.Text)
	}
	return nil
}

// placeTextWrapLines draws a wrapping Cols node: items pack into lines of
// the inner width, one line per row from the top. A line's trailing
// preview is the truncated head of the item that re-opens the next line;
// it fills the current line exactly, so no call ever passes the right
// edge, and emission stops at the bottom row.
func placeTextWrapLines(s Surface, n *Node, inner Rect) error {
	lines := packLines(n.texts, inner.Width)
	for r, ln := range lines {
		if r >= inner.Height {
			break
		}
		row := inner.Row + r
		pos := 0
		for i := ln.start; i < ln.end; i++ {
			t := n.texts[i]
			l := len(t.Text)
			if l > inner.Width-pos {
				l = inner.Width - pos
			}
			if l <= 0 {
				break
			}
			color, attr := resolveStyle(n, t)
			if err := s.DrawText(t.Text[:l], inner.Col+pos, row, color, attr); err != nil {
				return fmt.Errorf("draw text at (%d,%d): %w", inner.Col+pos, row, err)
			}
			pos += l
		}
		if ln.preview >= 0 && ln.end < len(n.texts) {
			t := n.texts[ln.end]
			l := ln.preview
			if l > inner.Width-pos {
				l = inner.Width - pos
			}
			if l > 0 {
				color, attr := resolveStyle(n, t)
				if err := s.DrawText(t.Text[:l], inner.Col+pos, row, color, attr); err != nil {
					return fmt.Errorf("draw text at (%d,%d): %w", inner.Col+pos, row, err)
				}
			}
		}
	}
	return nil
}

// placeTextWrapGrid draws a wrapping Rows node: items fill the inner
// height top to bottom, one per row, then continue in a fresh column to
// the right of the widest item the finished column held. Every item is
// clipped at the inner right edge, and columns starting past it are
// dropped entirely.
func placeTextWrapGrid(s Surface, n *Node, inner Rect) error {
	rows := inner.Height
	if rows <= 0 {
		return nil
	}
	offset := 0
	for start := 0; start < len(n.texts); start += rows {
		if offset >= inner.Width {
			break
		}
		end := start + rows
		if end > len(n.texts) {
			end = len(n.texts)
		}
		width := 0
		for r, t := range n.texts[start:end] {
			l := len(t.Text)
			if l > width {
				width = l
			}
			if l > inner.Width-offset {
				l = inner.Width - offset
			}
			if l <= 0 {
				continue
			}
			color, attr := resolveStyle(n, t)
			if err := s.DrawText(t.Text[:l], inner.Col+offset, inner.Row+r, color, attr); err != nil {
				return fmt.Errorf("draw text at (%d,%d): %w", inner.Col+offset, inner.Row+r, err)
			}
		}
		offset += width
	}
	return nil
}

// resolveStyle applies a text item's own color/attr override, falling back
// to the nearest ancestor (starting at the item's own node) whose color or
// attr is set. A zero Color/AttrNone is the engine-wide "unset" sentinel,
// matching the draw emitter's own "paint only if color is nonzero" rule.
func resolveStyle(n *Node, t TextItem) (Color, Attr) {
	color := t.Color
	if color == 0 {
		for p := n; p != nil; p = p.parent {
			if p.Color != 0 {
				color = p.Color
				break
			}
		}
	}
	attr := t.Attr
	if attr == AttrNone {
		for p := n; p != nil; p = p.parent {
			if p.Attr != AttrNone {
				attr = p.Attr
				break
			}
		}
	}
	return color, attr
}
