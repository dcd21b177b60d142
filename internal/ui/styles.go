package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, active tab
	ColorHighlight = "205" // Magenta - selected items, focused bar
	ColorDanger    = "196" // Red - routing failures
	ColorMuted     = "241" // Gray - hints, inactive tabs
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions used by the shell and the screens.
var Styles = struct {
	Title    lipgloss.Style // Bold accent - screen titles
	Selected lipgloss.Style // Bold highlight - selected items
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Error    lipgloss.Style // Status line failures
	Empty    lipgloss.Style // Empty state text (muted, italic)

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabCursor   lipgloss.Style // Cursor position while the bar is focused
	Bar         lipgloss.Style // Nav bar container
	BarFocused  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Padding(0, 2),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	TabCursor: lipgloss.NewStyle().
		Underline(true).
		Foreground(lipgloss.Color(ColorHighlight)).
		Padding(0, 2),
	Bar: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color(ColorMuted)),
	BarFocused: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color(ColorHighlight)),
}

// NewCompactListDelegate returns a list delegate with zero spacing and shared styles.
func NewCompactListDelegate(showDescription bool) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = showDescription
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Normal
	d.Styles.NormalDesc = Styles.Muted
	return d
}
