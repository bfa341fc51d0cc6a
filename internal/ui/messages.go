package ui

// PushOverlayMsg opens an overlay on top of the modal layer.
type PushOverlayMsg struct {
	Overlay Overlay
}

// DismissOverlayMsg closes the topmost overlay.
type DismissOverlayMsg struct{}

// FocusMsg moves keyboard focus to a panel.
type FocusMsg struct {
	ID string
}

// FocusNextMsg and FocusPrevMsg rotate keyboard focus.
type (
	FocusNextMsg struct{}
	FocusPrevMsg struct{}
)
