package ui

// Focus targets within the shell.
const (
	FocusContent = "content"
	FocusNav     = "nav"
)

// FocusManager tracks and rotates focus across regions.
type FocusManager struct {
	Current  string   // ID of the focused region
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// NewFocusManager starts with the content focused and the nav bar next in order.
func NewFocusManager(onChange func(from, to string)) *FocusManager {
	return &FocusManager{
		Current:  FocusContent,
		Order:    []string{FocusContent, FocusNav},
		OnChange: onChange,
	}
}

// Next advances focus to the next region in order and returns its ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous region in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses the given region. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

// Is reports whether id holds focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
