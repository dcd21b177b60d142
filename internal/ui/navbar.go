package ui

import (
	"fmt"
	"strings"

	"travelshell/internal/nav"
	"travelshell/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NavItem is one tab in the bottom bar.
type NavItem struct {
	Target nav.Target
	Label  string
}

// NavBar is the bottom navigation surface. It only emits targets from its own items,
// which are built from nav.Targets so the bar and the routing table stay in lockstep.
type NavBar struct {
	Items   []NavItem
	Active  int  // index of the tab whose screen is shown
	Cursor  int  // index highlighted while focused
	Pending int  // index of a tab whose screen is loading, -1 if none
	Focused bool
	Width   int
}

// Ensure NavBar implements View.
var _ View = (*NavBar)(nil)

// NewNavBar creates a bar over every target. label maps a target to its tab text.
func NewNavBar(label func(nav.Target) string) *NavBar {
	targets := nav.Targets()
	items := make([]NavItem, len(targets))
	for i, t := range targets {
		l := t.String()
		if label != nil {
			l = label(t)
		}
		items[i] = NavItem{Target: t, Label: l}
	}
	return &NavBar{Items: items, Pending: -1}
}

// SetActive marks t as the tab whose screen is shown and moves the cursor there.
func (b *NavBar) SetActive(t nav.Target) {
	if i := b.indexOf(t); i >= 0 {
		b.Active = i
		b.Cursor = i
	}
	b.Pending = -1
}

// SetPending marks t as loading.
func (b *NavBar) SetPending(t nav.Target) {
	b.Pending = b.indexOf(t)
}

// ClearPending drops the loading marker and resets the cursor to the active tab.
func (b *NavBar) ClearPending() {
	b.Pending = -1
	b.Cursor = b.Active
}

// ActiveTarget returns the target of the active tab.
func (b *NavBar) ActiveTarget() nav.Target {
	return b.Items[b.Active].Target
}

func (b *NavBar) indexOf(t nav.Target) int {
	for i, it := range b.Items {
		if it.Target == t {
			return i
		}
	}
	return -1
}

// Init implements View.
func (b *NavBar) Init() tea.Cmd {
	return nil
}

// Update implements View. h/l and arrows move the cursor (wrapping); enter selects.
func (b *NavBar) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.Width = msg.Width
	case tea.KeyMsg:
		n := len(b.Items)
		if n == 0 {
			return b, nil
		}
		switch msg.String() {
		case "h", "left":
			b.Cursor = (b.Cursor - 1 + n) % n
		case "l", "right":
			b.Cursor = (b.Cursor + 1) % n
		case "enter":
			t := b.Items[b.Cursor].Target
			return b, func() tea.Msg { return SelectTabMsg{Target: t} }
		}
	}
	return b, nil
}

// View implements View.
func (b *NavBar) View() string {
	tabs := make([]string, len(b.Items))
	// each tab spends 4 columns on padding and 2 on its number
	maxLabel := 0
	if b.Width > 0 && len(b.Items) > 0 {
		maxLabel = b.Width/len(b.Items) - 6
	}
	for i, it := range b.Items {
		text := it.Label
		if maxLabel > 0 {
			text = textutil.Truncate(text, maxLabel)
		}
		label := fmt.Sprintf("%d %s", i+1, text)
		if i == b.Pending {
			label += " …"
		}
		style := Styles.TabInactive
		switch {
		case b.Focused && i == b.Cursor:
			style = Styles.TabCursor
		case i == b.Active:
			style = Styles.TabActive
		}
		tabs[i] = style.Render(label)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if b.Width > 0 {
		row = lipgloss.PlaceHorizontal(b.Width, lipgloss.Center, row)
	}
	bar := Styles.Bar
	if b.Focused {
		bar = Styles.BarFocused
	}
	return bar.Render(strings.TrimRight(row, " "))
}
