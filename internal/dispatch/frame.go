package dispatch

import (
	"tuievent/internal/event"
	"tuievent/internal/mouse"
)

// Candidate is one handler in a Frame together with the facts the layout
// and focus collaborators supplied for it.
type Candidate struct {
	ID        string
	Handler   event.Handler
	Area      mouse.Rect
	Z         int             // higher is on top; ties go to the later entry
	Qualifier event.Qualifier // Regular, MouseOnly, Popup or Dialog
}

// Frame is the per-event view of the widget tree.
type Frame struct {
	// Modal is the modal layer, bottom to top. When non-empty the regular
	// layer is not offered key or mouse events at all.
	Modal []Candidate
	// Regular lists the regular layer in declared traversal order.
	Regular []Candidate
	// Focus is the ID of the regular candidate owning keyboard focus.
	Focus string
	// Accelerators are tried, in order, for keys nobody else used.
	Accelerators []event.Handler
	// Capture is the ID of the regular candidate holding the pointer, usually
	// the one that took the last left press. It is offered mouse events
	// first, wherever the cursor is, so drags and releases outside its area
	// still reach it. Ignored while a modal layer is open.
	Capture string
}

// ModalActive reports whether a modal layer is open.
func (f Frame) ModalActive() bool {
	return len(f.Modal) > 0
}

// focused returns the index of the focused regular candidate.
func (f Frame) focused() int {
	return f.regular(f.Focus)
}

// regular returns the index of the regular candidate with the given ID.
func (f Frame) regular(id string) int {
	if id == "" {
		return -1
	}
	for i, c := range f.Regular {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// modalQualifier returns the qualifier a modal entry is offered events with.
// Entries declared without a modal qualifier are treated as dialogs.
func modalQualifier(c Candidate) event.Qualifier {
	if c.Qualifier.IsModal() {
		return c.Qualifier
	}
	return event.Dialog
}
