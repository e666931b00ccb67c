package monitor

import "github.com/charmbracelet/lipgloss"

type styles struct {
	banner lipgloss.Style
	perf   lipgloss.Style
	err    lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White

func newStyles() styles {
	return styles{
		banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		perf:   lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2)),
		err:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}
