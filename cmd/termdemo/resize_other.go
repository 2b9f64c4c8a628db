//go:build !unix

package main

import tea "github.com/charmbracelet/bubbletea"

// watchSIGWINCH is a no-op off unix: bubbletea's own tea.WindowSizeMsg
// already covers resize on these platforms without a signal handler.
func watchSIGWINCH(p *tea.Program) {}

// watchResize defers to bubbletea's initial tea.WindowSizeMsg instead of a
// manual term.GetSize probe.
func watchResize() tea.Cmd { return nil }
