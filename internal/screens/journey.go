package screens

import (
	"fmt"
	"strings"

	"travelshell/internal/nav"
	"travelshell/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// TravelMethods are the ways a journey can be planned.
var TravelMethods = []string{"도보", "대중교통", "운전"}

// JourneyScreen picks a travel method for route planning.
type JourneyScreen struct {
	base
	Method int // index into TravelMethods
}

var (
	_ nav.Screen = (*JourneyScreen)(nil)
	_ ui.View    = (*JourneyScreen)(nil)
)

// NewJourney creates a Journey screen defaulting to public transport.
func NewJourney() *JourneyScreen {
	return &JourneyScreen{base: base{target: nav.Journey}, Method: 1}
}

// Init implements ui.View.
func (j *JourneyScreen) Init() tea.Cmd { return nil }

// Update implements ui.View. j/k (or arrows) change the method.
func (j *JourneyScreen) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "j", "down":
			if j.Method < len(TravelMethods)-1 {
				j.Method++
			}
		case "k", "up":
			if j.Method > 0 {
				j.Method--
			}
		}
	}
	return j, nil
}

// View implements ui.View.
func (j *JourneyScreen) View() string {
	var b strings.Builder
	b.WriteString(ui.Styles.Title.Render("여정 · 경로 추천") + "\n\n")
	for i, m := range TravelMethods {
		line := fmt.Sprintf("  %s", m)
		if i == j.Method {
			line = ui.Styles.Selected.Render("> " + m)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + ui.Styles.Muted.Render("j/k choose how to travel"))
	return b.String()
}
