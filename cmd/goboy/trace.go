package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/thelolagemann/gbcore/internal/cpu"
)

type styles struct {
	address     lipgloss.Style
	instruction lipgloss.Style
	cpu         lipgloss.Style
	flags       lipgloss.Style
	err         lipgloss.Style
}

// ANSI Color reference
// 1	Red
// 3	Yellow
// 4	Blue
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)
func newStyles() styles {
	return styles{
		address:     lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		instruction: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)).Width(16),
		cpu:         lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(4)),
		flags:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		err:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}

// lastEntries returns up to the last n entries of the trace.
func lastEntries(t *cpu.Trace, n int) []cpu.TraceEntry {
	entries := t.Entries()
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries
}

// formatEntry renders a single trace entry.
func (s styles) formatEntry(e cpu.TraceEntry) string {
	return fmt.Sprintf("%s %s %s %s",
		s.address.Render(fmt.Sprintf("%08d %02X:%04X", e.Counter, e.Bank, e.PC)),
		s.instruction.Render(e.Mnemonic),
		s.cpu.Render(fmt.Sprintf("A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X",
			e.A, e.F, e.B, e.C, e.D, e.E, e.H, e.L, e.SP)),
		s.flags.Render(e.Flags()),
	)
}

// printTrace writes the entries, oldest first, followed by err if
// it is not nil.
func printTrace(w io.Writer, entries []cpu.TraceEntry, err error) {
	s := newStyles()
	for _, e := range entries {
		fmt.Fprintln(w, s.formatEntry(e))
	}
	if err != nil {
		fmt.Fprintln(w, s.err.Render(err.Error()))
	}
}
