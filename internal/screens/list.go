package screens

import (
	"travelshell/internal/ui"

	"github.com/charmbracelet/bubbles/list"
)

// newList builds a list with shell styling and no built-in quit or filter keys.
func newList(title string, items []list.Item, showDescription bool) list.Model {
	l := list.New(items, ui.NewCompactListDelegate(showDescription), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = ui.Styles.Title
	return l
}

// ensureListSize sets default dimensions if none were set (for tests).
func ensureListSize(l *list.Model) {
	if l.Width() == 0 {
		l.SetWidth(80)
	}
	if l.Height() == 0 {
		l.SetHeight(20)
	}
}
