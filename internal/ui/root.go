package ui

import (
	"context"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"tuievent/internal/dispatch"
	"tuievent/internal/event"
	"tuievent/internal/mouse"
)

// Focusable is implemented by widgets that render or behave differently
// while they own keyboard focus.
type Focusable interface {
	SetFocused(bool)
}

// Root is the top of the widget tree and implements tea.Model.
//
// For every input event it asks the layout, focus manager and overlay
// stack for the current facts, builds a dispatch.Frame and hands the event
// to the Dispatcher. The view is only re-rendered after a result that asks
// for a redraw.
type Root struct {
	Layout     Layout
	Focus      *FocusManager
	Overlays   *OverlayStack
	Keys       *KeyHandler
	Dispatcher *dispatch.Dispatcher
	Cmds       *Cmds
	Context    context.Context

	// OnDispatch sees every dispatched event and its result. It returns
	// true if it changed something visible.
	OnDispatch func(msg tea.Msg, res dispatch.Result) bool

	Width, Height int
	// Dirty is set when the next View must render.
	Dirty bool
	// Last is the most recent dispatch result.
	Last dispatch.Result

	cache   string
	capture string // panel holding the pointer between press and release
}

// Ensure Root can be used as tea.Model.
var _ tea.Model = (*Root)(nil)

// NewRoot creates a root over layout with focus on the first focusable panel.
func NewRoot(layout Layout, keys *KeyHandler, cmds *Cmds) *Root {
	return &Root{
		Layout:     layout,
		Focus:      NewFocusManager(layout.FocusOrder()),
		Overlays:   &OverlayStack{},
		Keys:       keys,
		Dispatcher: &dispatch.Dispatcher{},
		Cmds:       cmds,
		Dirty:      true,
	}
}

func (r *Root) overlays() *OverlayStack {
	if r.Overlays == nil {
		r.Overlays = &OverlayStack{}
	}
	return r.Overlays
}

func (r *Root) dispatcher() *dispatch.Dispatcher {
	if r.Dispatcher == nil {
		r.Dispatcher = &dispatch.Dispatcher{}
	}
	return r.Dispatcher
}

func (r *Root) panels() []Panel {
	if r.Layout == nil {
		return nil
	}
	return r.Layout.Panels()
}

func (r *Root) ctx() context.Context {
	if r.Context != nil {
		return r.Context
	}
	return context.Background()
}

// syncFocus tells focusable widgets whether they own focus.
func (r *Root) syncFocus() {
	current := ""
	if r.Focus != nil {
		current = r.Focus.Current
	}
	for _, p := range r.panels() {
		if f, ok := p.Widget.(Focusable); ok {
			f.SetFocused(p.ID == current && r.overlays().Len() == 0)
		}
	}
}

// Frame builds the dispatch facts for the current size, focus and overlays.
func (r *Root) Frame() dispatch.Frame {
	r.syncFocus()
	var f dispatch.Frame
	for _, p := range r.panels() {
		f.Regular = append(f.Regular, p.Candidate(r.Width, r.Height))
	}
	f.Modal = r.overlays().Candidates(r.Width, r.Height)
	f.Capture = r.capture
	if r.Focus != nil {
		f.Focus = r.Focus.Current
		f.Accelerators = append(f.Accelerators, r.Focus)
	}
	if r.Keys != nil {
		f.Accelerators = append(f.Accelerators, r.Keys)
	}
	return f
}

// focusOnClick moves focus to the panel under a left press when that panel
// can take focus. It runs next to the widget's own handling, so its result
// is joined with the dispatch result. A press landing on a mouse-only panel
// leaves focus alone, even when a focusable panel lies below it.
func (r *Root) focusOnClick(msg tea.Msg) event.Outcome {
	m, ok := msg.(tea.MouseMsg)
	if !ok || r.Focus == nil || r.Layout == nil || r.overlays().Len() > 0 {
		return event.Continue
	}
	if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
		return event.Continue
	}
	p, ok := PanelAt(r.Layout, r.Width, r.Height, m.X, m.Y)
	if !ok || p.MouseOnly || p.ID == r.Focus.Current {
		return event.Continue
	}
	if !r.Focus.SetFocus(p.ID) {
		return event.Continue
	}
	return event.Changed
}

// trackCapture gives the pointer to the panel that took a left press and
// releases it on the next button release.
func (r *Root) trackCapture(msg tea.Msg, res dispatch.Result) {
	m, ok := msg.(tea.MouseMsg)
	if !ok {
		return
	}
	switch {
	case r.overlays().Len() > 0, m.Action == tea.MouseActionRelease:
		r.capture = ""
	case m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft:
		r.capture = res.Target
	}
}

// Init implements tea.Model.
func (r *Root) Init() tea.Cmd {
	r.syncFocus()
	var cmds []tea.Cmd
	for _, p := range r.panels() {
		if c := p.Widget.Init(); c != nil {
			cmds = append(cmds, c)
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (r *Root) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}
	case tea.WindowSizeMsg:
		r.Width, r.Height = msg.Width, msg.Height
		r.Dirty = true
	case PushOverlayMsg:
		r.overlays().Push(msg.Overlay)
		r.capture = ""
		r.Dirty = true
		return r, msg.Overlay.Widget.Init()
	case DismissOverlayMsg:
		if _, ok := r.overlays().Pop(); ok {
			r.Dirty = true
		}
		return r, nil
	case FocusMsg:
		if r.Focus != nil && r.Focus.SetFocus(msg.ID) {
			r.Dirty = true
		}
		return r, nil
	case FocusNextMsg, FocusPrevMsg:
		if r.Focus != nil {
			from := r.Focus.Current
			if _, next := msg.(FocusNextMsg); next {
				r.Focus.Next()
			} else {
				r.Focus.Prev()
			}
			r.Dirty = r.Dirty || from != r.Focus.Current
		}
		return r, nil
	}

	if event.Classify(msg) == event.ClassUnknown {
		return r, nil
	}

	focus := r.focusOnClick(msg)
	res := r.dispatcher().Dispatch(r.ctx(), msg, r.Frame())
	if focus.IsConsumed() {
		res.Outcome = event.Combine(res.Outcome, focus)
		res.Redraw = true
	}
	r.trackCapture(msg, res)
	r.Last = res
	r.Dirty = r.Dirty || res.Redraw
	if r.OnDispatch != nil && r.OnDispatch(msg, res) {
		r.Dirty = true
	}
	return r, r.Cmds.Drain()
}

// View implements tea.Model. The previous frame is reused until a dispatch
// result asks for a redraw.
func (r *Root) View() string {
	if !r.Dirty && r.cache != "" {
		return r.cache
	}
	r.syncFocus()
	c := newCanvas(r.Width, r.Height)

	panels := slices.Clone(r.panels())
	slices.SortStableFunc(panels, func(a, b Panel) int { return a.Z - b.Z })
	for _, p := range panels {
		area := p.Area(r.Width, r.Height)
		c.draw(area, p.Widget.View(area.Width, area.Height))
	}
	for _, ov := range r.overlays().Items {
		area := Panel{Bounds: ov.Bounds}.Area(r.Width, r.Height)
		c.draw(area, ov.Widget.View(area.Width, area.Height))
	}
	if help := RenderKeybindHelp(r.Keys); help != "" {
		c.draw(mouse.NewRect(0, r.Height-2, r.Width, 1), help)
	}

	r.cache = c.String()
	r.Dirty = false
	return r.cache
}
