package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tuievent/internal/event"
	"tuievent/internal/mouse"
	"tuievent/internal/ui/textutil"
)

// MenuItem is one entry of a ContextMenu.
type MenuItem struct {
	Label  string
	Action func()
}

// ContextMenu is a popup menu. It owns every key while open. A click on an
// item runs it, a click anywhere else closes the menu, and other mouse
// events outside the menu are ignored (they still do not reach the widgets
// below, since the menu is modal).
type ContextMenu struct {
	Placement
	Items    []MenuItem
	Selected int
	Cmds     *Cmds
}

// NewContextMenu creates a menu.
func NewContextMenu(cmds *Cmds, items ...MenuItem) *ContextMenu {
	return &ContextMenu{Items: items, Cmds: cmds}
}

// Overlay wraps the menu for an OverlayStack, opening at col, row and
// shifted to stay on screen.
func (m *ContextMenu) Overlay(id string, col, row int) Overlay {
	w := 2
	for _, it := range m.Items {
		w = max(w, textutil.VisualWidth(it.Label)+2)
	}
	h := len(m.Items) + 2
	return Overlay{
		ID:        id,
		Widget:    m,
		Qualifier: event.Popup,
		Dismiss:   "esc",
		Bounds: func(width, height int) (int, int, int, int) {
			x := max(min(col, width-w), 0)
			y := max(min(row, height-h), 0)
			return x, y, min(w, width), min(h, height)
		},
	}
}

func (m *ContextMenu) itemAreas() []mouse.Rect {
	a := m.Area()
	areas := make([]mouse.Rect, len(m.Items))
	for i := range m.Items {
		areas[i] = mouse.NewRect(a.X+1, a.Y+1+i, max(a.Width-2, 0), 1)
	}
	return areas
}

func (m *ContextMenu) run(i int) event.Outcome {
	m.Cmds.Send(DismissOverlayMsg{})
	if i >= 0 && i < len(m.Items) && m.Items[i].Action != nil {
		m.Items[i].Action()
	}
	return event.Consumed
}

// Init implements Widget.
func (m *ContextMenu) Init() tea.Cmd { return nil }

// Handle implements event.Handler.
func (m *ContextMenu) Handle(msg tea.Msg, _ event.Qualifier) event.Outcome {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Paste {
			return event.Unchanged
		}
		switch msg.String() {
		case "up", "k":
			return m.move(-1)
		case "down", "j":
			return m.move(1)
		case "enter":
			return m.run(m.Selected)
		}
		return event.Unchanged
	case tea.MouseMsg:
		i, onItem := mouse.ItemAt(m.itemAreas(), msg.X, msg.Y)
		switch {
		case msg.Action == tea.MouseActionPress && onItem:
			return m.run(i)
		case msg.Action == tea.MouseActionPress && !m.Area().Contains(msg.X, msg.Y):
			m.Cmds.Send(DismissOverlayMsg{})
			return event.Consumed
		case msg.Action == tea.MouseActionMotion && onItem:
			changed := m.Selected != i
			m.Selected = i
			return event.FromBool(changed)
		}
	}
	return event.Continue
}

func (m *ContextMenu) move(d int) event.Outcome {
	next := max(0, min(m.Selected+d, len(m.Items)-1))
	changed := next != m.Selected
	m.Selected = next
	return event.FromBool(changed)
}

// View implements Widget.
func (m *ContextMenu) View(width, height int) string {
	rows := make([]string, len(m.Items))
	for i, it := range m.Items {
		line := textutil.Fit(it.Label, max(width-2, 0))
		if i == m.Selected {
			rows[i] = Styles.Selected.Render(line)
		} else {
			rows[i] = Styles.Normal.Render(line)
		}
	}
	return boxed(Styles.BoxMenu, "", strings.Join(rows, "\n"), width, height)
}
