package screens

import (
	"strings"

	"travelshell/internal/nav"
	"travelshell/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// ProfileScreen shows the traveler's name and preferences.
type ProfileScreen struct {
	base
	Name        string
	Preferences []string
}

var (
	_ nav.Screen = (*ProfileScreen)(nil)
	_ ui.View    = (*ProfileScreen)(nil)
)

// NewProfile creates a Profile screen.
func NewProfile(name string, prefs []string) *ProfileScreen {
	return &ProfileScreen{
		base:        base{target: nav.Profile},
		Name:        name,
		Preferences: prefs,
	}
}

// Init implements ui.View.
func (p *ProfileScreen) Init() tea.Cmd { return nil }

// Update implements ui.View.
func (p *ProfileScreen) Update(tea.Msg) (ui.View, tea.Cmd) { return p, nil }

// View implements ui.View.
func (p *ProfileScreen) View() string {
	var b strings.Builder
	b.WriteString(ui.Styles.Title.Render("프로필") + "\n\n")
	b.WriteString(ui.Styles.Normal.Render(p.Name) + "\n\n")
	if len(p.Preferences) == 0 {
		b.WriteString(ui.Styles.Empty.Render("No preferences set"))
		return b.String()
	}
	b.WriteString(ui.Styles.Muted.Render("선호: ") + strings.Join(p.Preferences, ", "))
	return b.String()
}
