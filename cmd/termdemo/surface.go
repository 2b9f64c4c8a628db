package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kungfusheep/termflex/layout"
)

// cell is one terminal position: a single byte of content plus the style it
// was drawn with. A zero-value cell renders as a blank space.
type cell struct {
	b     byte
	color layout.Color
	attr  layout.Attr
}

// cellSurface implements layout.Surface over a flat grid of cells, styled
// with lipgloss at flush time rather than per draw call; the engine's draw
// emitter never touches an escape sequence directly.
type cellSurface struct {
	width, height int
	cells         []cell
	palette       func(layout.Color) lipgloss.Color
}

func newCellSurface(width, height int, palette func(layout.Color) lipgloss.Color) *cellSurface {
	return &cellSurface{
		width:   width,
		height:  height,
		cells:   make([]cell, width*height),
		palette: palette,
	}
}

func (s *cellSurface) resize(width, height int) {
	s.width, s.height = width, height
	s.cells = make([]cell, width*height)
}

func (s *cellSurface) reset() {
	for i := range s.cells {
		s.cells[i] = cell{}
	}
}

func (s *cellSurface) index(col, row int) int { return row*s.width + col }

// DrawText implements layout.Surface.
func (s *cellSurface) DrawText(text string, col, row int, color layout.Color, attr layout.Attr) error {
	if row < 0 || row >= s.height {
		return nil
	}
	for i := 0; i < len(text); i++ {
		c := col + i
		if c < 0 || c >= s.width {
			continue
		}
		s.cells[s.index(c, row)] = cell{b: text[i], color: color, attr: attr}
	}
	return nil
}

// DrawColor implements layout.Surface.
func (s *cellSurface) DrawColor(col, row, width, height int, color layout.Color) error {
	for r := row; r < row+height; r++ {
		if r < 0 || r >= s.height {
			continue
		}
		for c := col; c < col+width; c++ {
			if c < 0 || c >= s.width {
				continue
			}
			idx := s.index(c, r)
			if s.cells[idx].b == 0 {
				s.cells[idx].b = ' '
			}
			s.cells[idx].color = color
		}
	}
	return nil
}

// render flattens the grid into a terminal-ready string, grouping
// consecutive same-style cells into a single lipgloss.Style.Render call per
// run rather than per cell.
func (s *cellSurface) render() string {
	var out strings.Builder
	for r := 0; r < s.height; r++ {
		runStart := 0
		for c := 1; c <= s.width; c++ {
			atEnd := c == s.width
			changed := !atEnd && !s.sameStyle(s.index(c, r), s.index(runStart, r))
			if atEnd || changed {
				out.WriteString(s.renderRun(r, runStart, c))
				runStart = c
			}
		}
		if r < s.height-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func (s *cellSurface) sameStyle(a, b int) bool {
	return s.cells[a].color == s.cells[b].color && s.cells[a].attr == s.cells[b].attr
}

func (s *cellSurface) renderRun(row, start, end int) string {
	var raw strings.Builder
	for c := start; c < end; c++ {
		b := s.cells[s.index(c, row)].b
		if b == 0 {
			b = ' '
		}
		raw.WriteByte(b)
	}
	first := s.cells[s.index(start, row)]
	return s.styleFor(first.color, first.attr).Render(raw.String())
}

func (s *cellSurface) styleFor(color layout.Color, attr layout.Attr) lipgloss.Style {
	st := lipgloss.NewStyle()
	if color != 0 {
		st = st.Foreground(s.palette(color))
	}
	if attr.Has(layout.AttrBold) {
		st = st.Bold(true)
	}
	if attr.Has(layout.AttrDim) {
		st = st.Faint(true)
	}
	if attr.Has(layout.AttrItalic) {
		st = st.Italic(true)
	}
	if attr.Has(layout.AttrUnderline) {
		st = st.Underline(true)
	}
	if attr.Has(layout.AttrBlink) {
		st = st.Blink(true)
	}
	if attr.Has(layout.AttrInverse) {
		st = st.Reverse(true)
	}
	if attr.Has(layout.AttrStrikethrough) {
		st = st.Strikethrough(true)
	}
	return st
}

// defaultPalette maps the demo's small set of opaque color indices onto a
// concrete ANSI palette. A real host is free to use any mapping it likes;
// the engine never interprets Color itself.
func defaultPalette(c layout.Color) lipgloss.Color {
	switch c {
	case 1:
		return lipgloss.Color("1") // red
	case 2:
		return lipgloss.Color("2") // green
	case 3:
		return lipgloss.Color("3") // yellow
	case 4:
		return lipgloss.Color("4") // blue
	case 5:
		return lipgloss.Color("5") // magenta
	case 6:
		return lipgloss.Color("6") // cyan
	case 7:
		return lipgloss.Color("7") // white
	default:
		return lipgloss.Color("8") // bright black, fallback
	}
}
