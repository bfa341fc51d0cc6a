package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"tuievent/internal/event"
)

func TestFocusManager_NextPrevWrap(t *testing.T) {
	f := NewFocusManager([]string{"a", "b", "c"})
	assert.Equal(t, "a", f.Current)

	assert.Equal(t, "b", f.Next())
	assert.Equal(t, "c", f.Next())
	assert.Equal(t, "a", f.Next())

	assert.Equal(t, "c", f.Prev())
	assert.Equal(t, "b", f.Prev())
}

func TestFocusManager_Empty(t *testing.T) {
	f := NewFocusManager(nil)
	assert.Equal(t, "", f.Current)
	assert.Equal(t, "", f.Next())
	assert.Equal(t, "", f.Prev())
}

func TestFocusManager_SetFocus(t *testing.T) {
	var moves [][2]string
	f := NewFocusManager([]string{"a", "b"})
	f.OnChange = func(from, to string) { moves = append(moves, [2]string{from, to}) }

	assert.True(t, f.SetFocus("b"))
	assert.False(t, f.SetFocus("missing"))
	assert.Equal(t, "b", f.Current)
	assert.True(t, f.SetFocus("b"))

	assert.Equal(t, [][2]string{{"a", "b"}}, moves, "OnChange only fires on a real move")
}

func TestFocusManager_UnknownCurrentStartsOver(t *testing.T) {
	f := &FocusManager{Current: "gone", Order: []string{"a", "b"}}
	assert.Equal(t, "a", f.Next())
}

func TestFocusManager_Handle(t *testing.T) {
	f := NewFocusManager([]string{"a", "b"})

	assert.Equal(t, event.Changed, f.Handle(keyMsg("tab"), event.Regular))
	assert.Equal(t, "b", f.Current)
	assert.Equal(t, event.Changed, f.Handle(keyMsg("shift+tab"), event.Regular))
	assert.Equal(t, "a", f.Current)

	assert.Equal(t, event.Continue, f.Handle(keyMsg("x"), event.Regular))
	assert.Equal(t, event.Continue, f.Handle(leftPress(0, 0), event.Regular))
	assert.Equal(t, event.Continue, f.Handle(tea.WindowSizeMsg{}, event.Regular))

	single := NewFocusManager([]string{"only"})
	assert.Equal(t, event.Unchanged, single.Handle(keyMsg("tab"), event.Regular))
}
