package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tuievent/internal/dispatch"
	"tuievent/internal/event"
)

// Overlay is a modal or popup widget with a dismiss key.
type Overlay struct {
	ID        string
	Widget    Widget
	Qualifier event.Qualifier // Popup or Dialog
	Dismiss   string          // Key that dismisses (e.g. "esc"); empty for none
	Bounds    BoundsFunc
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack is the modal layer. Only the topmost overlay receives input.
type OverlayStack struct {
	Stack[Overlay]
}

// dismissable wraps the top overlay so its dismiss key pops it before the
// widget sees the key.
type dismissable struct {
	stack *OverlayStack
	ov    Overlay
}

func (d dismissable) Handle(msg tea.Msg, q event.Qualifier) event.Outcome {
	if k, ok := msg.(tea.KeyMsg); ok && !k.Paste && d.ov.IsDismissKey(k.String()) {
		d.stack.Pop()
		return event.Changed
	}
	return d.ov.Widget.Handle(msg, q)
}

// Candidates places every overlay and describes the modal layer, bottom to
// top, for a dispatch.Frame.
func (s *OverlayStack) Candidates(width, height int) []dispatch.Candidate {
	out := make([]dispatch.Candidate, 0, s.Len())
	for _, ov := range s.Items {
		area := Panel{Bounds: ov.Bounds}.Area(width, height)
		ov.Widget.SetArea(area)
		out = append(out, dispatch.Candidate{
			ID:        ov.ID,
			Handler:   dismissable{stack: s, ov: ov},
			Area:      area,
			Qualifier: ov.Qualifier,
		})
	}
	return out
}
