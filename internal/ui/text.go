package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tuievent/internal/event"
	"tuievent/internal/mouse"
)

// TextWidget shows scrollable text in a bubbles viewport. Scrolling keys
// and the wheel are recognized; scrolling past an end is Unchanged.
type TextWidget struct {
	Placement
	Title string
	// Follow keeps the view at the bottom while appending, as long as it
	// was at the bottom before.
	Follow bool
	// Limit caps the number of lines kept by AppendLine; zero keeps all.
	Limit int

	vp      viewport.Model
	lines   []string
	focused bool
}

// NewTextWidget creates a text widget.
func NewTextWidget(title string) *TextWidget {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	// space, d and u belong to the leader-key accelerators
	vp.KeyMap.PageDown = key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("f/pgdn", "page down"))
	vp.KeyMap.HalfPageUp = key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "½ page up"))
	vp.KeyMap.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "½ page down"))
	return &TextWidget{Title: title, vp: vp}
}

// SetFocused implements Focusable.
func (t *TextWidget) SetFocused(f bool) { t.focused = f }

// SetArea implements Widget and resizes the viewport to the inner area.
func (t *TextWidget) SetArea(area mouse.Rect) {
	t.Placement.SetArea(area)
	t.vp.Width = max(area.Width-2, 0)
	t.vp.Height = max(area.Height-3, 0)
}

// SetText replaces the content.
func (t *TextWidget) SetText(s string) {
	t.lines = strings.Split(s, "\n")
	t.vp.SetContent(s)
}

// AppendLine adds a line at the bottom.
func (t *TextWidget) AppendLine(line string) {
	atBottom := t.vp.AtBottom()
	t.lines = append(t.lines, line)
	if t.Limit > 0 && len(t.lines) > t.Limit {
		t.lines = t.lines[len(t.lines)-t.Limit:]
	}
	t.vp.SetContent(strings.Join(t.lines, "\n"))
	if t.Follow && atBottom {
		t.vp.GotoBottom()
	}
}

// Clear removes all content.
func (t *TextWidget) Clear() {
	t.lines = nil
	t.vp.SetContent("")
	t.vp.GotoTop()
}

// Lines returns the current content lines.
func (t *TextWidget) Lines() []string { return t.lines }

// YOffset returns the scroll position.
func (t *TextWidget) YOffset() int { return t.vp.YOffset }

// Init implements Widget.
func (t *TextWidget) Init() tea.Cmd { return nil }

func (t *TextWidget) scrollKey(k tea.KeyMsg) bool {
	km := t.vp.KeyMap
	return key.Matches(k, km.Up, km.Down, km.PageUp, km.PageDown, km.HalfPageUp, km.HalfPageDown)
}

// Handle implements event.Handler.
func (t *TextWidget) Handle(msg tea.Msg, q event.Qualifier) event.Outcome {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Paste || !q.AcceptsKeys() {
			return event.Continue
		}
		switch msg.String() {
		case "home", "g":
			return t.scroll(func() { t.vp.GotoTop() })
		case "end", "G":
			return t.scroll(func() { t.vp.GotoBottom() })
		}
		if !t.scrollKey(msg) {
			return event.Continue
		}
	case tea.MouseMsg:
		if !t.Area().Contains(msg.X, msg.Y) {
			return event.Continue
		}
		if !tea.MouseEvent(msg).IsWheel() {
			if msg.Action == tea.MouseActionPress {
				return event.Unchanged
			}
			return event.Continue
		}
	case tea.WindowSizeMsg:
		// SetArea already resized the viewport
		return event.Continue
	default:
		return event.Continue
	}
	return t.scroll(func() { t.vp, _ = t.vp.Update(msg) })
}

// scroll runs f and reports whether the scroll position moved.
func (t *TextWidget) scroll(f func()) event.Outcome {
	before := t.vp.YOffset
	f()
	return event.FromBool(before != t.vp.YOffset)
}

// View implements Widget.
func (t *TextWidget) View(width, height int) string {
	style := Styles.Box
	if t.focused {
		style = Styles.BoxFocused
	}
	return boxed(style, t.Title, t.vp.View(), width, height)
}
