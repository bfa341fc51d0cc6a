package ui

import (
	"tuievent/internal/dispatch"
	"tuievent/internal/event"
	"tuievent/internal/mouse"
)

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a Widget and knows its bounds within a layout.
type Panel struct {
	ID     string
	Widget Widget
	Bounds BoundsFunc
	Z      int
	// MouseOnly panels are visible but never focused and never get keys.
	MouseOnly bool
}

// Area resolves the panel's bounds for the given terminal size.
func (p Panel) Area(width, height int) mouse.Rect {
	if p.Bounds == nil {
		return mouse.NewRect(0, 0, width, height)
	}
	return mouse.NewRect(p.Bounds(width, height))
}

// Qualifier returns the qualifier the panel is offered events with.
func (p Panel) Qualifier() event.Qualifier {
	if p.MouseOnly {
		return event.MouseOnly
	}
	return event.Regular
}

// Candidate places the widget and describes it for a dispatch.Frame.
func (p Panel) Candidate(width, height int) dispatch.Candidate {
	area := p.Area(width, height)
	p.Widget.SetArea(area)
	return dispatch.Candidate{
		ID:        p.ID,
		Handler:   p.Widget,
		Area:      area,
		Z:         p.Z,
		Qualifier: p.Qualifier(),
	}
}
