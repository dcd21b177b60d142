package ui

import "travelshell/internal/nav"

// SelectTabMsg is sent when the user selects a tab (nav bar enter, 1-5, SPC g <key>).
type SelectTabMsg struct {
	Target nav.Target
}

// ScreenLoadedMsg carries the result of an async screen construction.
type ScreenLoadedMsg struct {
	Ticket nav.Ticket
	Screen nav.Screen
	Err    error
}

// ToggleFocusMsg moves focus between the content and the nav bar (tab).
type ToggleFocusMsg struct{}
