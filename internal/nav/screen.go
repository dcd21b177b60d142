package nav

// Screen is the capability every presentable screen variant implements.
// Release is called exactly once when the screen is detached or abandoned.
type Screen interface {
	Target() Target
	Release()
}

// Factory constructs a new Screen instance. It is called once per routing decision.
type Factory func() Screen

// Host presents a screen into the content region.
// Present attaches s and releases whatever was attached before, as one step.
// On error nothing changes in the region.
type Host interface {
	Present(s Screen) error
}

// HostFunc adapts a function to Host.
type HostFunc func(s Screen) error

// Present implements Host.
func (f HostFunc) Present(s Screen) error { return f(s) }

// Table maps each Target to the factory for its screen variant.
type Table map[Target]Factory

// Lookup returns the factory for t, or false if t has no usable mapping.
func (tb Table) Lookup(t Target) (Factory, bool) {
	f, ok := tb[t]
	if !ok || f == nil {
		return nil, false
	}
	return f, true
}

// Missing returns the Targets that have no factory, in navigation-bar order.
// An empty result means the table is total.
func (tb Table) Missing() []Target {
	var out []Target
	for _, t := range Targets() {
		if _, ok := tb.Lookup(t); !ok {
			out = append(out, t)
		}
	}
	return out
}
