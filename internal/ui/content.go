package ui

import (
	"errors"
	"fmt"

	"travelshell/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrRegionClosed is returned by Present after the shell has been torn down.
	ErrRegionClosed = errors.New("content region closed")
	// ErrNotPresentable is returned for screens that do not implement View.
	ErrNotPresentable = errors.New("screen does not implement ui.View")
)

// ContentRegion hosts exactly one screen at a time. It implements nav.Host.
type ContentRegion struct {
	screen  nav.Screen
	view    View
	pending tea.Cmd // Init (and resize) cmd of the last attached view
	closed  bool
	width   int
	height  int
}

var _ nav.Host = (*ContentRegion)(nil)

// NewContentRegion creates an empty region.
func NewContentRegion() *ContentRegion {
	return &ContentRegion{}
}

// Present attaches s and releases the previously attached screen.
// Nothing changes when it returns an error.
func (c *ContentRegion) Present(s nav.Screen) error {
	if c.closed {
		return ErrRegionClosed
	}
	v, ok := s.(View)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotPresentable, s)
	}

	prev := c.screen
	c.screen = s
	c.view = v
	cmds := []tea.Cmd{v.Init()}
	if c.width > 0 || c.height > 0 {
		cmds = append(cmds, c.forward(tea.WindowSizeMsg{Width: c.width, Height: c.height}))
	}
	c.pending = tea.Batch(cmds...)

	if prev != nil {
		prev.Release()
	}
	return nil
}

// TakeCmd returns and clears the command produced by the last Present.
func (c *ContentRegion) TakeCmd() tea.Cmd {
	cmd := c.pending
	c.pending = nil
	return cmd
}

// Screen returns the attached screen, or nil.
func (c *ContentRegion) Screen() nav.Screen {
	return c.screen
}

// SetSize records the region size and forwards it to the attached view.
func (c *ContentRegion) SetSize(width, height int) tea.Cmd {
	c.width, c.height = width, height
	if c.view == nil {
		return nil
	}
	return c.forward(tea.WindowSizeMsg{Width: width, Height: height})
}

// Update forwards msg to the attached view.
func (c *ContentRegion) Update(msg tea.Msg) tea.Cmd {
	if c.view == nil {
		return nil
	}
	return c.forward(msg)
}

func (c *ContentRegion) forward(msg tea.Msg) tea.Cmd {
	v, cmd := c.view.Update(msg)
	if v != nil {
		c.view = v
	}
	return cmd
}

// View renders the attached view.
func (c *ContentRegion) View() string {
	if c.view == nil {
		return ""
	}
	return c.view.View()
}

// Close releases the attached screen. Later Present calls fail with ErrRegionClosed.
func (c *ContentRegion) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.screen != nil {
		c.screen.Release()
	}
	c.screen = nil
	c.view = nil
	c.pending = nil
}
