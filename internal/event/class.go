package event

import tea "github.com/charmbracelet/bubbletea"

// Class groups events by how they are routed.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassKey
	ClassMouse
	ClassResize
	ClassPaste
)

func (c Class) String() string {
	switch c {
	case ClassKey:
		return "key"
	case ClassMouse:
		return "mouse"
	case ClassResize:
		return "resize"
	case ClassPaste:
		return "paste"
	default:
		return "unknown"
	}
}

// Broadcast reports whether events of this class go to every interested
// handler instead of stopping at the first one that reacts.
func (c Class) Broadcast() bool {
	return c == ClassResize || c == ClassPaste
}

// Classify maps a Bubble Tea message to its class. Bracketed paste arrives
// as a KeyMsg with Paste set.
func Classify(msg tea.Msg) Class {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Paste {
			return ClassPaste
		}
		return ClassKey
	case tea.MouseMsg:
		return ClassMouse
	case tea.WindowSizeMsg:
		return ClassResize
	}
	return ClassUnknown
}

// MousePosition returns the column and row of a mouse event.
func MousePosition(msg tea.Msg) (col, row int, ok bool) {
	m, ok := msg.(tea.MouseMsg)
	if !ok {
		return 0, 0, false
	}
	return m.X, m.Y, true
}

// admits reports whether an event of class c may be delivered under q.
func (q Qualifier) admits(c Class) bool {
	switch c {
	case ClassKey, ClassPaste:
		return q.AcceptsKeys()
	case ClassMouse:
		return q.AcceptsMouse()
	case ClassResize:
		return q.Valid()
	}
	return false
}
