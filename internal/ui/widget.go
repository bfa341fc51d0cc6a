package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tuievent/internal/event"
	"tuievent/internal/mouse"
)

// Widget is the unit of composition. Handle reports what an event did;
// View renders into the given size.
type Widget interface {
	event.Handler
	Init() tea.Cmd
	View(width, height int) string
	// SetArea tells the widget where it was placed for this event, so it
	// can map mouse positions to its own rows and columns.
	SetArea(area mouse.Rect)
}

// Placement stores the area a widget was last placed at. Embed it to get
// SetArea.
type Placement struct {
	area mouse.Rect
}

// SetArea implements Widget.
func (p *Placement) SetArea(area mouse.Rect) { p.area = area }

// Area returns the last area set.
func (p *Placement) Area() mouse.Rect { return p.area }
