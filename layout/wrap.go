package layout

// wrapLine describes one packed line of text items: the half-open range
// [start,end) of items drawn in full, the cells the line consumes, and an
// optional preview. When preview >= 0, the first preview bytes of
// items[end] complete the line exactly, and that same item re-opens the
// next line from its first byte. An item wider than the whole capacity is
// clamped to it and consumed, so packing always advances.
type wrapLine struct {
	start, end int
	width      int
	preview    int
}

// packLines greedily packs items into lines of capacity c, filling each
// line to the boundary rather than leaving it short: an item that fits in
// what's left of the current line is placed there in full; an item that
// doesn't is truncated to exactly the remaining capacity as a preview of
// the line that follows. Always returns at least one line, even for an
// empty item list, so callers can treat the result uniformly.
func packLines(items []TextItem, c int) []wrapLine {
	if len(items) == 0 {
		return []wrapLine{{start: 0, end: 0, width: 0, preview: -1}}
	}
	if c <= 0 {
		lines := make([]wrapLine, 0, len(items))
		for i := range items {
			lines = append(lines, wrapLine{start: i, end: i + 1, width: 0, preview: -1})
		}
		return lines
	}

	var lines []wrapLine
	i := 0
	for i < len(items) {
		start := i
		remaining := c
		width := 0
		preview := -1

		for i < len(items) {
			l := len(items[i].Text)
			if l <= remaining {
				remaining -= l
				width += l
				i++
				continue
			}
			if remaining == c {
				// Wider than a whole line: clamp and consume.
				width = c
				i++
			} else if remaining > 0 {
				width = c
				preview = remaining
			}
			break
		}

		lines = append(lines, wrapLine{start: start, end: i, width: width, preview: preview})
	}
	return lines
}

// lineCount reports how many lines packLines needs at capacity c.
func lineCount(items []TextItem, c int) int {
	return len(packLines(items, c))
}

// fitLineWidth returns the smallest line capacity that lets items pack into
// at most maxLines lines, never narrower than the widest single item. This
// is the minimum width of a wrapping run-of-text node whose line budget is
// fixed by the perpendicular extent: the node trades width for lines until
// the lines fit.
func fitLineWidth(items []TextItem, maxLines int) int {
	total := 0
	widest := 0
	for _, it := range items {
		l := len(it.Text)
		total += l
		if l > widest {
			widest = l
		}
	}
	if maxLines <= 0 || total == 0 {
		return total
	}
	lo, hi := widest, total
	for lo < hi {
		mid := lo + (hi-lo)/2
		if lineCount(items, mid) <= maxLines {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// gridStride is the width every column of a stack-of-items grid is
// budgeted at when estimating the grid's total width: the widest item
// anywhere in the node.
func gridStride(items []TextItem) int {
	stride := 0
	for _, it := range items {
		if l := len(it.Text); l > stride {
			stride = l
		}
	}
	return stride
}

// gridWidth is the estimated width of items stacked column-major into
// columns of at most rows items each: full columns and the trailing
// partial column alike are counted at the widest item's width, so the
// estimate never comes in under what the grid can draw.
func gridWidth(items []TextItem, rows int) int {
	if len(items) == 0 {
		return 0
	}
	if rows < 1 {
		rows = 1
	}
	cols := (len(items) + rows - 1) / rows
	return cols * gridStride(items)
}

// fitGridRows returns the smallest number of rows that lets items, stacked
// column-major, fit within width cross with every column budgeted at the
// widest item's width. If even one such column exceeds cross, every item
// gets its own row and the draw pass clips the width.
func fitGridRows(items []TextItem, cross int) int {
	n := len(items)
	if n == 0 {
		return 0
	}
	stride := gridStride(items)
	if stride <= 0 {
		return 1
	}
	if stride > cross {
		return n
	}
	maxCols := cross / stride
	return (n + maxCols - 1) / maxCols
}
