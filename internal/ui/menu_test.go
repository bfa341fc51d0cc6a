package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"tuievent/internal/event"
	"tuievent/internal/mouse"
)

func newTestMenu(cmds *Cmds, ran *[]string) (*ContextMenu, Overlay) {
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Action: func() { *ran = append(*ran, label) }}
	}
	m := NewContextMenu(cmds, item("Open"), item("Delete"), item("Cancel"))
	ov := m.Overlay("menu", 78, 22)
	m.SetArea(Panel{Bounds: ov.Bounds}.Area(80, 24))
	return m, ov
}

func TestContextMenu_StaysOnScreen(t *testing.T) {
	var ran []string
	m, ov := newTestMenu(&Cmds{}, &ran)
	assert.Equal(t, event.Popup, ov.Qualifier)
	assert.Equal(t, "esc", ov.Dismiss)
	assert.Equal(t, mouse.NewRect(72, 19, 8, 5), m.Area())
}

func TestContextMenu_ClickItem(t *testing.T) {
	cmds := &Cmds{}
	var ran []string
	m, _ := newTestMenu(cmds, &ran)

	assert.Equal(t, event.Consumed, m.Handle(leftPress(74, 21), event.Popup))
	assert.Equal(t, []string{"Delete"}, ran)
	assert.Equal(t, 1, cmds.Len(), "menu closes itself")
}

func TestContextMenu_ClickOutsideCloses(t *testing.T) {
	cmds := &Cmds{}
	var ran []string
	m, _ := newTestMenu(cmds, &ran)

	assert.Equal(t, event.Consumed, m.Handle(leftPress(0, 0), event.Popup))
	assert.Empty(t, ran)
	assert.Equal(t, 1, cmds.Len())

	assert.Equal(t, event.Continue, m.Handle(leftRelease(0, 0), event.Popup))
}

func TestContextMenu_Hover(t *testing.T) {
	var ran []string
	m, _ := newTestMenu(&Cmds{}, &ran)

	hover := mouseMsg(74, 22, tea.MouseButtonNone, tea.MouseActionMotion)
	assert.Equal(t, event.Changed, m.Handle(hover, event.Popup))
	assert.Equal(t, 2, m.Selected)
	assert.Equal(t, event.Unchanged, m.Handle(hover, event.Popup))
}

func TestContextMenu_Keys(t *testing.T) {
	cmds := &Cmds{}
	var ran []string
	m, _ := newTestMenu(cmds, &ran)

	assert.Equal(t, event.Unchanged, m.Handle(keyMsg("up"), event.Popup))
	assert.Equal(t, event.Changed, m.Handle(keyMsg("down"), event.Popup))
	assert.Equal(t, event.Unchanged, m.Handle(keyMsg("x"), event.Popup), "menu owns the keyboard")
	assert.Equal(t, event.Consumed, m.Handle(keyMsg("enter"), event.Popup))
	assert.Equal(t, []string{"Delete"}, ran)
	assert.Equal(t, event.Continue, m.Handle(tea.WindowSizeMsg{}, event.Popup))
}

func TestContextMenu_View(t *testing.T) {
	var ran []string
	m, _ := newTestMenu(&Cmds{}, &ran)
	v := m.View(8, 5)
	assert.Contains(t, v, "Open")
	assert.Contains(t, v, "Cancel")
}
