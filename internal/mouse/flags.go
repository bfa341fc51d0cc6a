package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDoubleClickWindow is the longest pause between the first release
// and the second press of a double click.
const DefaultDoubleClickWindow = 500 * time.Millisecond

// Modifiers is the set of modifier keys held during a mouse event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl

	ModNone Modifiers = 0
)

// ModifiersOf extracts the modifier set of a mouse event.
func ModifiersOf(m tea.MouseMsg) Modifiers {
	var mods Modifiers
	if m.Shift {
		mods |= ModShift
	}
	if m.Alt {
		mods |= ModAlt
	}
	if m.Ctrl {
		mods |= ModCtrl
	}
	return mods
}

// Flags holds mouse gesture state for one widget. Embed it in the widget
// state; the zero value is ready to use.
type Flags struct {
	// Window overrides DefaultDoubleClickWindow when non-zero.
	Window time.Duration
	// Now overrides time.Now, for tests.
	Now func() time.Time

	click bool // first press seen inside the area
	clack bool // first release seen inside the area
	drag  bool // left press inside the area armed a drag
	last  time.Time
}

func (f *Flags) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f *Flags) window() time.Duration {
	if f.Window > 0 {
		return f.Window
	}
	return DefaultDoubleClickWindow
}

func isLeft(m tea.MouseMsg) bool {
	return m.Button == tea.MouseButtonLeft
}

// DoubleClick reports whether m completes a double click inside area.
// Call it on every mouse event before other mouse handling; it never
// swallows the first click.
func (f *Flags) DoubleClick(area Rect, m tea.MouseMsg) bool {
	return f.DoubleClickMod(area, m, ModNone)
}

// DoubleClickMod is DoubleClick requiring exactly the given modifiers.
func (f *Flags) DoubleClickMod(area Rect, m tea.MouseMsg, mods Modifiers) bool {
	if ModifiersOf(m) != mods {
		return false
	}
	switch {
	case m.Action == tea.MouseActionPress && isLeft(m):
		if area.Contains(m.X, m.Y) {
			if f.clack && f.now().Sub(f.last) > f.window() {
				f.clack = false
			}
			f.click = true
		} else {
			f.click = false
			f.clack = false
		}
	case m.Action == tea.MouseActionRelease:
		if !area.Contains(m.X, m.Y) {
			f.click = false
			f.clack = false
			return false
		}
		if !f.click {
			return false
		}
		if !f.clack {
			f.clack = true
			f.last = f.now()
			return false
		}
		f.click = false
		f.clack = false
		return true
	}
	return false
}

// Drag reports whether m is a left-button drag that started inside area.
// Once armed, motion outside the area still counts.
func (f *Flags) Drag(area Rect, m tea.MouseMsg) bool {
	return f.DragMod(area, m, ModNone)
}

// DragMod is Drag requiring exactly the given modifiers.
func (f *Flags) DragMod(area Rect, m tea.MouseMsg, mods Modifiers) bool {
	switch {
	case m.Action == tea.MouseActionPress && isLeft(m) && ModifiersOf(m) == mods:
		f.drag = area.Contains(m.X, m.Y)
	case m.Action == tea.MouseActionMotion && isLeft(m) && ModifiersOf(m) == mods:
		return f.drag
	case m.Action == tea.MouseActionRelease,
		m.Action == tea.MouseActionMotion && m.Button == tea.MouseButtonNone:
		f.drag = false
	}
	return false
}

// Dragging reports whether a drag is armed.
func (f *Flags) Dragging() bool {
	return f.drag
}

// Reset clears all gesture state. Configuration is kept.
func (f *Flags) Reset() {
	f.click, f.clack, f.drag = false, false, false
	f.last = time.Time{}
}
