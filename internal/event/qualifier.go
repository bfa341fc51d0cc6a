package event

// Qualifier restricts what a handler may consume for one dispatch.
// The caller attaches it; the handler may use it to select behaviour.
type Qualifier uint8

const (
	// Regular allows focus-addressed keys and mouse events in the region.
	Regular Qualifier = iota
	// MouseOnly is for visible but unfocusable widgets such as status bars.
	// Key and paste events are never delivered.
	MouseOnly
	// Popup marks a modal overlay such as a context menu.
	Popup
	// Dialog marks a modal dialog.
	Dialog
	// DoubleClick selects a widget's double-click handler. It must be tried
	// before the regular handler of the same widget so the first click is
	// not swallowed. Mouse events only.
	DoubleClick

	qualifierCount
)

func (q Qualifier) String() string {
	switch q {
	case Regular:
		return "Regular"
	case MouseOnly:
		return "MouseOnly"
	case Popup:
		return "Popup"
	case Dialog:
		return "Dialog"
	case DoubleClick:
		return "DoubleClick"
	default:
		return "Unknown"
	}
}

// Valid reports whether q is a known qualifier.
func (q Qualifier) Valid() bool {
	return q < qualifierCount
}

// IsModal reports whether a handler offered an event under q is the sole
// authority for it. The caller must not offer the event to anyone else,
// whatever the outcome.
func (q Qualifier) IsModal() bool {
	return q == Popup || q == Dialog
}

// AcceptsKeys reports whether key and paste events may be delivered under q.
func (q Qualifier) AcceptsKeys() bool {
	switch q {
	case Regular, Popup, Dialog:
		return true
	}
	return false
}

// AcceptsMouse reports whether mouse events may be delivered under q.
func (q Qualifier) AcceptsMouse() bool {
	return q.Valid()
}
