package ui

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/trace"

	"tuievent/internal/dispatch"
	"tuievent/internal/event"
)

// DemoConfig selects dispatcher policy for the demo application.
type DemoConfig struct {
	KeyFallback      dispatch.Fallback
	RedrawOnConsumed bool
	Tracer           trace.Tracer
	Logger           *log.Logger
	Items            []string
}

// Demo holds the demo widgets so callers and tests can reach them.
type Demo struct {
	Root   *Root
	Header *StatusBar
	List   *ListWidget
	Log    *TextWidget
	Input  *InputWidget
	Status *StatusBar

	cmds *Cmds
}

// Panel IDs used by the demo layout.
const (
	PanelHeader = "header"
	PanelList   = "items"
	PanelLog    = "events"
	PanelInput  = "input"
	PanelStatus = "status"
)

// NewDemo assembles a small application exercising every dispatch path:
// a list with context menu and double click, a scrolling event log, a text
// input, mouse-only header and status bars, a confirmation dialog and
// leader-key accelerators.
func NewDemo(cfg DemoConfig) *Demo {
	cmds := &Cmds{}
	d := &Demo{
		Header: NewStatusBar("tuievent demo · tab: focus  SPC: commands  right click: menu  ctrl+c: quit"),
		List:   NewListWidget("Items", cfg.Items),
		Log:    NewTextWidget("Events"),
		Input:  NewInputWidget("", "add an item and press enter"),
		Status: NewStatusBar("click here for hints", "SPC d deletes the selection", "double click opens an item", "esc closes menus"),
		cmds:   cmds,
	}
	d.Log.Follow = true
	d.Log.Limit = 500

	d.List.OnActivate = func(_ int, item string) {
		d.Log.AppendLine("opened " + item)
	}
	d.List.OnContext = func(index, col, row int) {
		menu := NewContextMenu(cmds,
			MenuItem{Label: "Open", Action: func() { d.List.activate() }},
			MenuItem{Label: "Delete…", Action: func() { cmds.Send(PushOverlayMsg{Overlay: d.confirmDelete(cmds)}) }},
			MenuItem{Label: "Cancel"},
		)
		cmds.Send(PushOverlayMsg{Overlay: menu.Overlay("menu", col, row)})
	}
	d.Input.OnSubmit = func(value string) {
		d.List.Append(value)
		d.List.Select(len(d.List.Items) - 1)
	}

	layout := NewStaticLayout(
		Panel{ID: PanelHeader, Widget: d.Header, Bounds: Row(0, 1), MouseOnly: true},
		Panel{ID: PanelList, Widget: d.List, Bounds: Fill(1, 4, 2, 0)},
		Panel{ID: PanelLog, Widget: d.Log, Bounds: Fill(1, 4, 2, 1)},
		Panel{ID: PanelInput, Widget: d.Input, Bounds: Row(-4, 3)},
		Panel{ID: PanelStatus, Widget: d.Status, Bounds: Row(-1, 1), MouseOnly: true},
	)

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC d", func() tea.Msg { return deleteRequestMsg{} }, "Delete item")
	reg.BindWithDesc("SPC c", func() tea.Msg { return clearLogMsg{} }, "Clear events")
	reg.Group("w", "Window")
	reg.BindWithDesc("SPC w n", func() tea.Msg { return FocusNextMsg{} }, "Next panel")
	reg.BindWithDesc("SPC w p", func() tea.Msg { return FocusPrevMsg{} }, "Previous panel")

	root := NewRoot(layout, NewKeyHandler(reg, cmds), cmds)
	root.Dispatcher = &dispatch.Dispatcher{
		KeyFallback:      cfg.KeyFallback,
		RedrawOnConsumed: cfg.RedrawOnConsumed,
		Tracer:           cfg.Tracer,
		Logger:           cfg.Logger,
	}
	root.OnDispatch = d.record
	d.Root = root
	return d
}

// Demo-only messages. Bindings run as commands off the update loop, so
// they only send these; the work happens in Update.
type (
	clearLogMsg      struct{}
	deleteRequestMsg struct{}
)

// Model returns the tea.Model for tea.NewProgram.
func (d *Demo) Model() tea.Model {
	return demoModel{d}
}

// demoModel adds demo-only messages on top of Root.
type demoModel struct {
	*Demo
}

func (m demoModel) Init() tea.Cmd { return m.Root.Init() }

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case clearLogMsg:
		m.Log.Clear()
		m.Root.Dirty = true
		return m, nil
	case deleteRequestMsg:
		msg = PushOverlayMsg{Overlay: m.confirmDelete(m.cmds)}
	}
	_, cmd := m.Root.Update(msg)
	return m, cmd
}

func (m demoModel) View() string { return m.Root.View() }

func (d *Demo) confirmDelete(cmds *Cmds) Overlay {
	if len(d.List.Items) == 0 {
		return NewConfirmDialog("Nothing to delete", "The list is empty.", cmds, nil).Overlay("confirm")
	}
	index := d.List.Selected
	item := d.List.Items[index]
	dlg := NewConfirmDialog("Delete item?", fmt.Sprintf("Item: %s", item), cmds, func() {
		d.List.Remove(index)
		d.Log.AppendLine("deleted " + item)
	})
	return dlg.WithDetails("This cannot be undone").Overlay("confirm")
}

// record writes consumed results to the event log and the status bar.
// Events nobody used leave the screen alone.
func (d *Demo) record(msg tea.Msg, res dispatch.Result) bool {
	if !res.Outcome.IsConsumed() {
		return false
	}
	target := res.Target
	if target == "" {
		target = "*"
	}
	line := fmt.Sprintf("%-6s %-14s %s", event.Classify(msg), target, res.Outcome)
	if k, ok := msg.(tea.KeyMsg); ok && !k.Paste {
		line += "  " + k.String()
	}
	d.Log.AppendLine(line)
	d.Status.Text = res.Outcome.String()
	return true
}
