package ui

import (
	"fmt"

	"travelshell/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeScreen is a minimal presentable screen for shell tests.
type fakeScreen struct {
	target   nav.Target
	released int
	inits    int
	lastSize tea.WindowSizeMsg
	keys     []string
}

var _ View = (*fakeScreen)(nil)

func (s *fakeScreen) Target() nav.Target { return s.target }
func (s *fakeScreen) Release()           { s.released++ }

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.lastSize = msg
	case tea.KeyMsg:
		s.keys = append(s.keys, msg.String())
	}
	return s, nil
}

func (s *fakeScreen) View() string { return fmt.Sprintf("screen:%s", s.target) }

// bareScreen is a nav.Screen that cannot be rendered.
type bareScreen struct{ target nav.Target }

func (s bareScreen) Target() nav.Target { return s.target }
func (s bareScreen) Release()           {}

// recordingTable builds fakeScreens and remembers them in construction order.
func recordingTable() (nav.Table, *[]*fakeScreen) {
	var built []*fakeScreen
	tb := nav.Table{}
	for _, t := range nav.Targets() {
		t := t
		tb[t] = func() nav.Screen {
			s := &fakeScreen{target: t}
			built = append(built, s)
			return s
		}
	}
	return tb, &built
}
