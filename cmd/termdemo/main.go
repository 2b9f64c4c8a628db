// Command termdemo drives the layout engine against a real terminal: a
// small process dashboard arranged with nested rows/columns, expand/basis
// sizing, and wrapped text, redrawn on every tick and on every resize.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/kungfusheep/termflex/layout"
)

type process struct {
	name string
	cpu  float32
	note string
}

type resizeMsg struct{ width, height int }

type tickMsg time.Time

type model struct {
	lay     *layout.Layout
	surface *cellSurface
	width   int
	height  int
	procs   []process
}

func newModel() model {
	procs := make([]process, 24)
	for i := range procs {
		procs[i] = process{
			name: fmt.Sprintf("proc-%03d", i),
			cpu:  rand.Float32(),
			note: "idle, waiting on io and a longer status line that should wrap across more than one row of the panel",
		}
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	surface := newCellSurface(width, height, defaultPalette)
	return model{
		lay:     layout.New(surface),
		surface: surface,
		width:   width,
		height:  height,
		procs:   procs,
	}
}

func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tick(), watchResize())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.surface.resize(m.width, m.height)
	case resizeMsg:
		m.width, m.height = msg.width, msg.height
		m.surface.resize(m.width, m.height)
	case tickMsg:
		for i := range m.procs {
			m.procs[i].cpu = rand.Float32()
		}
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	m.surface.reset()
	m.lay.Clear()
	buildDashboard(m.lay.Root(), m.procs)
	if err := m.lay.Draw(layout.Rect{Width: m.width, Height: m.height}); err != nil {
		return err.Error()
	}
	return m.surface.render()
}

// buildDashboard populates root with a header, a scrolling-free process
// table, and a footer, rebuilt fresh every frame since the engine's tree is
// cheap to repopulate from its arena and does no retained diffing.
func buildDashboard(root *layout.Node, procs []process) {
	root.Direction = layout.Rows

	header, _ := root.AppendChild()
	header.Basis = 1
	header.Direction = layout.Cols
	header.Color = 4
	header.AppendStyledText(" termflex dashboard ", 7, layout.AttrBold)

	body, _ := root.AppendChild()
	body.Expand = 1
	body.Direction = layout.Rows
	body.Wrap = false

	for i := range procs {
		p := &procs[i]
		row, _ := body.AppendChild()
		row.Basis = 1
		row.Direction = layout.Cols

		name, _ := row.AppendChild()
		name.Basis = 12
		name.Direction = layout.Rows
		name.AppendText(p.name)

		bar, _ := row.AppendChild()
		bar.Basis = 10
		bar.Direction = layout.Cols
		bar.AppendStyledText(cpuBar(p.cpu, 10), cpuColor(p.cpu), layout.AttrNone)

		status, _ := row.AppendChild()
		status.Expand = 1
		status.FitContent = true
		status.Wrap = true
		status.Direction = layout.Cols
		status.AppendText(" " + p.note)
	}

	footer, _ := root.AppendChild()
	footer.Basis = 1
	footer.Direction = layout.Cols
	footer.Color = 0
	footer.AppendStyledText(" q to quit ", 3, layout.AttrDim)
}

func cpuBar(v float32, width int) string {
	filled := int(v * float32(width))
	if filled > width {
		filled = width
	}
	b := make([]byte, width)
	for i := range b {
		if i < filled {
			b[i] = '#'
		} else {
			b[i] = '.'
		}
	}
	return string(b)
}

func cpuColor(v float32) layout.Color {
	switch {
	case v > 0.8:
		return 1
	case v > 0.5:
		return 3
	default:
		return 2
	}
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	watchSIGWINCH(p)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
