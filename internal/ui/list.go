package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tuievent/internal/event"
	"tuievent/internal/mouse"
	"tuievent/internal/ui/textutil"
)

// ListKeyMap holds the key bindings of a ListWidget.
type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding
}

// DefaultListKeyMap returns vim and arrow bindings.
func DefaultListKeyMap() ListKeyMap {
	return ListKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

// ListWidget is a selectable, scrollable list with a title row.
//
// Keys move the selection; moving past either end is Unchanged. A click
// selects a row, dragging with the left button keeps selecting (scrolling
// when the pointer leaves the rows), a double click on one row or enter
// activates it (Consumed), the wheel moves the selection and a right click
// asks for a context menu.
type ListWidget struct {
	Placement
	Title    string
	Items    []string
	Selected int
	Offset   int // index of the first visible item
	Keys     ListKeyMap

	// OnActivate runs when an item is activated.
	OnActivate func(index int, item string)
	// OnContext runs on a right click over an item; col and row are
	// screen coordinates.
	OnContext func(index int, col, row int)

	focused bool
	flags   mouse.Flags
	presses [2]int // item under the last two left presses, -1 for none
}

// NewListWidget creates a list with the default key map.
func NewListWidget(title string, items []string) *ListWidget {
	return &ListWidget{Title: title, Items: items, Keys: DefaultListKeyMap(), presses: [2]int{-1, -1}}
}

// SetFocused implements Focusable.
func (l *ListWidget) SetFocused(f bool) { l.focused = f }

// Init implements Widget.
func (l *ListWidget) Init() tea.Cmd { return nil }

// inner returns the area available for item rows (inside the border,
// below the title).
func (l *ListWidget) inner() mouse.Rect {
	a := l.Area()
	return mouse.NewRect(a.X+1, a.Y+2, max(a.Width-2, 0), max(a.Height-3, 0))
}

// rowAreas returns one rect per visible item.
func (l *ListWidget) rowAreas() []mouse.Rect {
	in := l.inner()
	n := min(in.Height, len(l.Items)-l.Offset)
	areas := make([]mouse.Rect, 0, max(n, 0))
	for i := 0; i < n; i++ {
		areas = append(areas, mouse.NewRect(in.X, in.Y+i, in.Width, 1))
	}
	return areas
}

// Select moves the selection to i, clamped, and scrolls it into view.
// Reports whether the selection moved.
func (l *ListWidget) Select(i int) bool {
	if len(l.Items) == 0 {
		return false
	}
	i = max(0, min(i, len(l.Items)-1))
	changed := i != l.Selected
	l.Selected = i
	if h := l.inner().Height; h > 0 {
		if l.Selected < l.Offset {
			l.Offset = l.Selected
		} else if l.Selected >= l.Offset+h {
			l.Offset = l.Selected - h + 1
		}
	}
	return changed
}

// Remove deletes item i and keeps the selection in range.
func (l *ListWidget) Remove(i int) {
	if i < 0 || i >= len(l.Items) {
		return
	}
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
	if l.Selected >= len(l.Items) {
		l.Selected = max(len(l.Items)-1, 0)
	}
	l.Offset = min(l.Offset, l.Selected)
}

// Append adds an item at the end.
func (l *ListWidget) Append(item string) {
	l.Items = append(l.Items, item)
}

func (l *ListWidget) activate() event.Outcome {
	if l.Selected >= len(l.Items) {
		return event.Unchanged
	}
	if l.OnActivate != nil {
		l.OnActivate(l.Selected, l.Items[l.Selected])
	}
	return event.Consumed
}

// Handle implements event.Handler. The double-click recognizer runs before
// the regular handler so the first click is not lost.
func (l *ListWidget) Handle(msg tea.Msg, q event.Qualifier) event.Outcome {
	return event.Offer(event.HandlerFunc(l.handleDoubleClick), msg, event.DoubleClick).
		Or(func() event.Outcome { return l.handleRegular(msg, q) })
}

func (l *ListWidget) handleDoubleClick(msg tea.Msg, _ event.Qualifier) event.Outcome {
	m, ok := msg.(tea.MouseMsg)
	if !ok {
		return event.Continue
	}
	i, onRow := mouse.ItemAt(l.rowAreas(), m.X, m.Y)
	if m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft {
		row := -1
		if onRow {
			row = l.Offset + i
		}
		l.presses = [2]int{l.presses[1], row}
	}
	if !l.flags.DoubleClick(l.inner(), m) {
		return event.Continue
	}
	// the release ends the drag the second press armed
	l.flags.Reset()
	if !onRow || l.presses[0] != l.presses[1] || l.presses[1] != l.Offset+i {
		return event.Continue
	}
	l.Select(l.presses[1])
	return l.activate()
}

// dragTo selects the row under a drag, scrolling one item per row the
// pointer is above or below the visible rows.
func (l *ListWidget) dragTo(m tea.MouseMsg) event.Outcome {
	areas := l.rowAreas()
	i, offset, ok := mouse.RowAtDrag(l.inner(), areas, m.Y)
	switch {
	case ok:
		return event.FromBool(l.Select(l.Offset + i))
	case offset < 0:
		return event.FromBool(l.Select(l.Offset + offset))
	default:
		return event.FromBool(l.Select(l.Offset + len(areas) - 1 + offset))
	}
}

func (l *ListWidget) handleRegular(msg tea.Msg, q event.Qualifier) event.Outcome {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !q.AcceptsKeys() || msg.Paste {
			return event.Continue
		}
		switch {
		case key.Matches(msg, l.Keys.Up):
			return event.FromBool(l.Select(l.Selected - 1))
		case key.Matches(msg, l.Keys.Down):
			return event.FromBool(l.Select(l.Selected + 1))
		case key.Matches(msg, l.Keys.Home):
			return event.FromBool(l.Select(0))
		case key.Matches(msg, l.Keys.End):
			return event.FromBool(l.Select(len(l.Items) - 1))
		case key.Matches(msg, l.Keys.Activate):
			return l.activate()
		}
	case tea.MouseMsg:
		return l.handleMouse(msg)
	case tea.WindowSizeMsg:
		// keep the selection visible after the layout changed
		offset := l.Offset
		l.Select(l.Selected)
		return event.FromBool(offset != l.Offset)
	}
	return event.Continue
}

func (l *ListWidget) handleMouse(m tea.MouseMsg) event.Outcome {
	if l.flags.Drag(l.inner(), m) {
		return l.dragTo(m)
	}
	if !l.Area().Contains(m.X, m.Y) {
		return event.Continue
	}
	switch {
	case m.Button == tea.MouseButtonWheelUp && m.Action == tea.MouseActionPress:
		return event.FromBool(l.Select(l.Selected - 1))
	case m.Button == tea.MouseButtonWheelDown && m.Action == tea.MouseActionPress:
		return event.FromBool(l.Select(l.Selected + 1))
	case m.Action != tea.MouseActionPress:
		return event.Continue
	}

	i, onRow := mouse.ItemAt(l.rowAreas(), m.X, m.Y)
	switch m.Button {
	case tea.MouseButtonLeft:
		if !onRow {
			return event.Unchanged
		}
		return event.FromBool(l.Select(l.Offset + i))
	case tea.MouseButtonRight:
		if !onRow || l.OnContext == nil {
			return event.Unchanged
		}
		l.Select(l.Offset + i)
		l.OnContext(l.Selected, m.X, m.Y)
		return event.Consumed
	}
	return event.Continue
}

// View implements Widget.
func (l *ListWidget) View(width, height int) string {
	in := l.inner()
	var b strings.Builder
	end := min(l.Offset+in.Height, len(l.Items))
	for i := l.Offset; i < end; i++ {
		line := textutil.Fit(l.Items[i], in.Width)
		if i == l.Selected {
			b.WriteString(Styles.Selected.Render(line))
		} else {
			b.WriteString(Styles.Normal.Render(line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if len(l.Items) == 0 {
		b.WriteString(Styles.Muted.Render("(empty)"))
	}
	style := Styles.Box
	if l.focused {
		style = Styles.BoxFocused
	}
	return boxed(style, l.Title, b.String(), width, height)
}
