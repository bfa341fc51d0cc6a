package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tuievent/internal/event"
)

// FocusManager tracks and rotates focus across panels.
// It supplies the "who owns focus" fact to each dispatch; it also acts as
// an accelerator for tab and shift+tab.
type FocusManager struct {
	Current  string   // ID of the currently focused panel
	Order    []string // Tab order for focus
	OnChange func(from, to string)
}

// NewFocusManager creates a manager focused on the first entry of order.
func NewFocusManager(order []string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) moveTo(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

// Next advances focus to the next panel in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	f.moveTo(f.Order[(f.index()+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous panel in order.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	prev := f.index() - 1
	if prev < 0 {
		prev = len(f.Order) - 1
	}
	f.moveTo(f.Order[prev])
	return f.Current
}

// SetFocus sets focus to the given panel ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.moveTo(id)
			return true
		}
	}
	return false
}

// Handle implements event.Handler: tab and shift+tab rotate focus.
// Rotation over a single panel reports Unchanged.
func (f *FocusManager) Handle(msg tea.Msg, _ event.Qualifier) event.Outcome {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return event.Continue
	}
	from := f.Current
	switch k.String() {
	case "tab":
		f.Next()
	case "shift+tab":
		f.Prev()
	default:
		return event.Continue
	}
	return event.FromBool(from != f.Current)
}
