package layout

// minMainExtent returns n's minimum required extent along mainAxis (the
// axis its parent sequences it on, or the root's own axis), given that
// cross is the extent available along the perpendicular axis. Padding is
// charged here so the recursive cases below deal in inner extents only.
func (n *Node) minMainExtent(mainAxis axis, cross int) int {
	inner := saturatingSub(cross, mainAxis.crossPadding(n.Padding))
	var m int
	switch {
	case n.hasChildren():
		m = n.minMainExtentChildren(mainAxis, inner)
	case n.hasText():
		m = n.minMainExtentText(mainAxis, inner)
	}
	return m + mainAxis.mainPadding(n.Padding)
}

// minMainExtentChildren measures every child along the queried axis and
// combines them: children stacked along that axis sum, children arranged
// perpendicular to it sit side by side and combine by max. A side-by-side
// child's own cross constraint is its eventual slice of the perpendicular
// extent, which is unknown here; the full extent is passed instead.
func (n *Node) minMainExtentChildren(mainAxis axis, cross int) int {
	ownAxis := axisFor(n.Direction)
	var sum, maxV int
	for _, c := range n.children {
		v := c.minMainExtent(mainAxis, cross)
		sum += v
		if v > maxV {
			maxV = v
		}
	}
	if ownAxis == mainAxis {
		return sum
	}
	return maxV
}

// minMainExtentText sizes a text-holding node along the queried axis. Text
// always reads horizontally, so a node's horizontal extent is a width in
// bytes and its vertical extent a count of lines; which of the two the
// caller gets depends only on the axis it asks about, while the node's own
// Direction decides how items arrange: Cols runs items together into
// lines, Rows stacks them one per line.
//
// A non-wrap node is a single band of text: one line tall, and as wide as
// its items laid out by its Direction. A Rows node's width counts only the
// items its cross extent can show, so an item pushed past the bottom never
// widens the node (the hidden-item rule).
//
// A wrap node trades between the two axes: a Cols node packs items into
// lines (packLines) and a Rows node stacks them into side-by-side columns
// (the grid helpers); the vertical query counts the lines or rows needed
// under the cross width, the horizontal query the width needed under the
// cross line budget.
func (n *Node) minMainExtentText(mainAxis axis, cross int) int {
	if !n.Wrap {
		if mainAxis.dir == Rows {
			return 1
		}
		if n.Direction == Cols {
			total := 0
			for _, t := range n.texts {
				total += len(t.Text)
			}
			return total
		}
		visible := len(n.texts)
		if cross < visible {
			visible = cross
		}
		if visible < 0 {
			visible = 0
		}
		widest := 0
		for _, t := range n.texts[:visible] {
			if l := len(t.Text); l > widest {
				widest = l
			}
		}
		return widest
	}
	if n.Direction == Cols {
		if mainAxis.dir == Rows {
			return lineCount(n.texts, cross)
		}
		return fitLineWidth(n.texts, cross)
	}
	if mainAxis.dir == Rows {
		return fitGridRows(n.texts, cross)
	}
	return gridWidth(n.texts, cross)
}
