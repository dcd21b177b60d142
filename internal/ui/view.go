package ui

import (
	"context"

	"travelshell/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Every screen presented by the router is also a View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// ScreenLoader builds a screen off the update loop, e.g. after reading data from disk.
// The returned screen must report the target it was registered for.
type ScreenLoader func(ctx context.Context) (nav.Screen, error)
