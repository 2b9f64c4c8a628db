//go:build unix

package main

import (
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// watchSIGWINCH listens for
// terminal resize signals and forwards the freshly measured size into the
// bubbletea program as a resizeMsg. The forwarding goroutine waits in
// p.Send until the program takes the message; the signal channel is
// buffered, so signal delivery itself never waits on it.
func watchSIGWINCH(p *tea.Program) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, unix.SIGWINCH)
	go func() {
		for range sig {
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				p.Send(resizeMsg{width: w, height: h})
			}
		}
	}()
}

// watchResize returns a tea.Cmd that re-measures the terminal once at
// startup, so the first frame uses the real size rather than the 80x24
// fallback baked into newModel.
func watchResize() tea.Cmd {
	return func() tea.Msg {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			return resizeMsg{width: w, height: h}
		}
		return nil
	}
}
