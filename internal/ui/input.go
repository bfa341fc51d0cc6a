package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tuievent/internal/event"
	"tuievent/internal/mouse"
)

// InputWidget is a single-line text input. It only takes keys and pastes
// while focused; enter submits.
type InputWidget struct {
	Placement
	Title string
	// OnSubmit runs with the entered text; the input is cleared afterwards.
	OnSubmit func(value string)

	ti      textinput.Model
	focused bool
}

// NewInputWidget creates an input with the given placeholder.
func NewInputWidget(title, placeholder string) *InputWidget {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &InputWidget{Title: title, ti: ti}
}

// SetFocused implements Focusable.
func (w *InputWidget) SetFocused(f bool) {
	w.focused = f
	if f {
		w.ti.Focus()
	} else {
		w.ti.Blur()
	}
}

// SetArea implements Widget.
func (w *InputWidget) SetArea(area mouse.Rect) {
	w.Placement.SetArea(area)
	w.ti.Width = max(area.Width-2-len(w.ti.Prompt)-1, 0)
}

// Value returns the current text.
func (w *InputWidget) Value() string { return w.ti.Value() }

// SetValue replaces the current text.
func (w *InputWidget) SetValue(s string) { w.ti.SetValue(s) }

// Init implements Widget.
func (w *InputWidget) Init() tea.Cmd { return nil }

func (w *InputWidget) editKey(k tea.KeyMsg) bool {
	if k.Type == tea.KeyRunes || k.Type == tea.KeySpace {
		return true
	}
	km := w.ti.KeyMap
	return key.Matches(k,
		km.CharacterForward, km.CharacterBackward,
		km.WordForward, km.WordBackward,
		km.DeleteWordBackward, km.DeleteWordForward,
		km.DeleteAfterCursor, km.DeleteBeforeCursor,
		km.DeleteCharacterBackward, km.DeleteCharacterForward,
		km.LineStart, km.LineEnd,
	)
}

// Handle implements event.Handler.
func (w *InputWidget) Handle(msg tea.Msg, q event.Qualifier) event.Outcome {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !w.focused || !q.AcceptsKeys() {
			return event.Continue
		}
		if !msg.Paste && msg.Type == tea.KeyEnter {
			return w.submit()
		}
		if !msg.Paste && !w.editKey(msg) {
			return event.Continue
		}
		value, pos := w.ti.Value(), w.ti.Position()
		w.ti, _ = w.ti.Update(msg)
		return event.FromBool(value != w.ti.Value() || pos != w.ti.Position())
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && w.Area().Contains(msg.X, msg.Y) {
			return event.Unchanged
		}
	}
	return event.Continue
}

func (w *InputWidget) submit() event.Outcome {
	value := w.ti.Value()
	if value == "" {
		return event.Unchanged
	}
	if w.OnSubmit != nil {
		w.OnSubmit(value)
	}
	w.ti.Reset()
	return event.Changed
}

// View implements Widget.
func (w *InputWidget) View(width, height int) string {
	style := Styles.Box
	if w.focused {
		style = Styles.BoxFocused
	}
	return boxed(style, "", w.ti.View(), width, height)
}
