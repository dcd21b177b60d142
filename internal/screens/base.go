package screens

import "travelshell/internal/nav"

// base provides the nav.Screen half of every screen.
type base struct {
	target   nav.Target
	released bool
}

func (b *base) Target() nav.Target { return b.target }

// Release marks the screen detached. A released screen should not be reused.
func (b *base) Release() { b.released = true }

// Released reports whether the screen has been detached.
func (b *base) Released() bool { return b.released }
