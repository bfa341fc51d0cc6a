package dispatch

import (
	"bytes"
	"context"
	"log"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"tuievent/internal/event"
	"tuievent/internal/mouse"
)

// stub returns a fixed outcome and records every call.
type stub struct {
	out   event.Outcome
	calls int
	quals []event.Qualifier
}

func (s *stub) Handle(_ tea.Msg, q event.Qualifier) event.Outcome {
	s.calls++
	s.quals = append(s.quals, q)
	return s.out
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func full() mouse.Rect { return mouse.NewRect(0, 0, 80, 24) }

func TestDispatch_MouseShortCircuit(t *testing.T) {
	top := &stub{out: event.Changed}
	mid := &stub{out: event.Changed}
	bottom := &stub{out: event.Changed}
	frame := Frame{Regular: []Candidate{
		{ID: "bottom", Handler: bottom, Area: full(), Z: 0},
		{ID: "mid", Handler: mid, Area: full(), Z: 1},
		{ID: "top", Handler: top, Area: full(), Z: 2},
	}}

	var d Dispatcher
	res := d.Dispatch(context.Background(), click(5, 5), frame)

	assert.Equal(t, event.Changed, res.Outcome)
	assert.Equal(t, "top", res.Target)
	assert.True(t, res.Redraw)
	assert.Equal(t, 1, top.calls)
	assert.Zero(t, mid.calls)
	assert.Zero(t, bottom.calls)
}

func TestDispatch_MouseFallsThroughContinue(t *testing.T) {
	top := &stub{out: event.Continue}
	bottom := &stub{out: event.Unchanged}
	frame := Frame{Regular: []Candidate{
		{ID: "bottom", Handler: bottom, Area: full()},
		{ID: "top", Handler: top, Area: full()},
	}}

	var d Dispatcher
	res := d.Dispatch(context.Background(), click(1, 1), frame)

	assert.Equal(t, event.Unchanged, res.Outcome)
	assert.Equal(t, "bottom", res.Target)
	assert.False(t, res.Redraw)
	assert.Equal(t, 1, top.calls, "later entry is on top when z is equal")
}

func TestDispatch_MouseSkipsCandidatesNotUnderCursor(t *testing.T) {
	left := &stub{out: event.Changed}
	right := &stub{out: event.Changed}
	frame := Frame{Regular: []Candidate{
		{ID: "left", Handler: left, Area: mouse.NewRect(0, 0, 10, 10)},
		{ID: "right", Handler: right, Area: mouse.NewRect(10, 0, 10, 10), Z: 5},
	}}

	var d Dispatcher
	res := d.Dispatch(context.Background(), click(3, 3), frame)

	assert.Equal(t, "left", res.Target)
	assert.Zero(t, right.calls)

	res = d.Dispatch(context.Background(), click(50, 50), frame)
	assert.Equal(t, event.Continue, res.Outcome)
	assert.Empty(t, res.Target)
}

func TestDispatch_CaptureReceivesMouseOutsideItsArea(t *testing.T) {
	list := &stub{out: event.Changed}
	other := &stub{out: event.Changed}
	frame := Frame{
		Regular: []Candidate{
			{ID: "list", Handler: list, Area: mouse.NewRect(0, 0, 10, 5)},
			{ID: "other", Handler: other, Area: mouse.NewRect(0, 5, 10, 5)},
		},
		Capture: "list",
	}
	motion := tea.MouseMsg{X: 3, Y: 8, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{X: 3, Y: 8, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}

	var d Dispatcher
	for _, msg := range []tea.Msg{motion, release} {
		res := d.Dispatch(context.Background(), msg, frame)
		assert.Equal(t, "list", res.Target)
	}
	assert.Equal(t, 2, list.calls)
	assert.Zero(t, other.calls, "the panel under the cursor is shadowed by the capture")
}

func TestDispatch_CaptureContinueFallsBackToHitTest(t *testing.T) {
	list := &stub{out: event.Continue}
	other := &stub{out: event.Unchanged}
	frame := Frame{
		Regular: []Candidate{
			{ID: "list", Handler: list, Area: full()},
			{ID: "other", Handler: other, Area: mouse.NewRect(0, 5, 10, 5)},
		},
		Capture: "list",
	}

	var d Dispatcher
	res := d.Dispatch(context.Background(), click(3, 8), frame)
	assert.Equal(t, "other", res.Target)
	assert.Equal(t, 1, list.calls, "the capturing candidate is not offered twice")
	assert.Equal(t, 1, other.calls)
}

func TestDispatch_CaptureIgnoredForKeysModalsAndUnknownIDs(t *testing.T) {
	focused := &stub{out: event.Unchanged}
	captured := &stub{out: event.Changed}
	frame := Frame{
		Regular: []Candidate{
			{ID: "focused", Handler: focused, Area: mouse.NewRect(0, 0, 5, 5)},
			{ID: "captured", Handler: captured, Area: mouse.NewRect(5, 0, 5, 5)},
		},
		Focus:   "focused",
		Capture: "captured",
	}

	var d Dispatcher
	res := d.Dispatch(context.Background(), keyMsg("x"), frame)
	assert.Equal(t, "focused", res.Target)
	assert.Zero(t, captured.calls)

	modal := &stub{out: event.Unchanged}
	withModal := frame
	withModal.Modal = []Candidate{{ID: "dlg", Handler: modal, Qualifier: event.Dialog}}
	res = d.Dispatch(context.Background(), click(7, 2), withModal)
	assert.Equal(t, "dlg", res.Target)
	assert.Zero(t, captured.calls)

	gone := frame
	gone.Capture = "closed"
	res = d.Dispatch(context.Background(), click(2, 2), gone)
	assert.Equal(t, "focused", res.Target)
	assert.Zero(t, captured.calls)
}

func TestDispatch_ModalExclusivity(t *testing.T) {
	regular := &stub{out: event.Changed}
	accel := &stub{out: event.Consumed}
	popup := &stub{out: event.Continue}
	frame := Frame{
		Modal:        []Candidate{{ID: "menu", Handler: popup, Qualifier: event.Popup}},
		Regular:      []Candidate{{ID: "list", Handler: regular, Area: full()}},
		Focus:        "list",
		Accelerators: []event.Handler{accel},
	}

	var d Dispatcher
	d.KeyFallback = FallbackSiblings
	for _, msg := range []tea.Msg{keyMsg("j"), click(2, 2), tea.WindowSizeMsg{Width: 1, Height: 1}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p"), Paste: true}} {
		res := d.Dispatch(context.Background(), msg, frame)
		assert.Equal(t, event.Continue, res.Outcome)
		assert.False(t, res.Redraw)
	}

	assert.Zero(t, regular.calls)
	assert.Zero(t, accel.calls)
	assert.Equal(t, 4, popup.calls)
	for _, q := range popup.quals {
		assert.Equal(t, event.Popup, q)
	}
}

func TestDispatch_ModalOnlyTopmostReceivesInput(t *testing.T) {
	lower := &stub{out: event.Changed}
	upper := &stub{out: event.Unchanged}
	frame := Frame{Modal: []Candidate{
		{ID: "lower", Handler: lower, Qualifier: event.Dialog},
		{ID: "upper", Handler: upper},
	}}

	var d Dispatcher
	res := d.Dispatch(context.Background(), keyMsg("x"), frame)

	assert.Equal(t, event.Unchanged, res.Outcome)
	assert.Equal(t, "upper", res.Target)
	assert.Zero(t, lower.calls)
	require.Len(t, upper.quals, 1)
	assert.Equal(t, event.Dialog, upper.quals[0], "non-modal entry is promoted to Dialog")
}

func TestDispatch_ResizeBroadcast(t *testing.T) {
	a := &stub{out: event.Continue}
	b := &stub{out: event.Unchanged}
	c := &stub{out: event.Changed}
	frame := Frame{Regular: []Candidate{
		{ID: "a", Handler: a},
		{ID: "b", Handler: b},
		{ID: "c", Handler: c, Qualifier: event.MouseOnly},
	}}

	var d Dispatcher
	res := d.Dispatch(context.Background(), tea.WindowSizeMsg{Width: 100, Height: 40}, frame)

	assert.Equal(t, event.Changed, res.Outcome)
	assert.True(t, res.Redraw)
	assert.Empty(t, res.Target)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
	assert.Equal(t, 1, c.calls)
}

func TestDispatch_PasteSkipsMouseOnly(t *testing.T) {
	input := &stub{out: event.Changed}
	status := &stub{out: event.Changed}
	frame := Frame{Regular: []Candidate{
		{ID: "input", Handler: input},
		{ID: "status", Handler: status, Qualifier: event.MouseOnly},
	}}

	var d Dispatcher
	res := d.Dispatch(context.Background(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc"), Paste: true}, frame)

	assert.Equal(t, event.Changed, res.Outcome)
	assert.Equal(t, 1, input.calls)
	assert.Zero(t, status.calls)
}

func TestDispatch_KeyAllContinueIsNoop(t *testing.T) {
	a := &stub{}
	b := &stub{}
	accel := &stub{}
	frame := Frame{
		Regular:      []Candidate{{ID: "a", Handler: a}, {ID: "b", Handler: b}},
		Focus:        "a",
		Accelerators: []event.Handler{accel},
	}

	d := Dispatcher{KeyFallback: FallbackSiblings, RedrawOnConsumed: true}
	res := d.Dispatch(context.Background(), keyMsg("z"), frame)

	assert.Equal(t, Result{Outcome: event.Continue}, res)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
	assert.Equal(t, 1, accel.calls)
}

func TestDispatch_KeyFallbackOrder(t *testing.T) {
	var order []string
	rec := func(id string, out event.Outcome) event.Handler {
		return event.HandlerFunc(func(tea.Msg, event.Qualifier) event.Outcome {
			order = append(order, id)
			return out
		})
	}
	frame := Frame{
		Regular: []Candidate{
			{ID: "a", Handler: rec("a", event.Continue)},
			{ID: "b", Handler: rec("b", event.Continue)},
			{ID: "c", Handler: rec("c", event.Continue)},
		},
		Focus:        "b",
		Accelerators: []event.Handler{rec("acc0", event.Continue), rec("acc1", event.Consumed), rec("acc2", event.Changed)},
	}

	tests := []struct {
		name     string
		fallback Fallback
		want     []string
	}{
		{"none", FallbackNone, []string{"b", "acc0", "acc1"}},
		{"siblings", FallbackSiblings, []string{"b", "a", "c", "acc0", "acc1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order = nil
			d := Dispatcher{KeyFallback: tt.fallback}
			res := d.Dispatch(context.Background(), keyMsg("q"), frame)
			assert.Equal(t, tt.want, order)
			assert.Equal(t, event.Consumed, res.Outcome)
			assert.Equal(t, "accelerator[1]", res.Target)
		})
	}
}

func TestDispatch_FocusedMouseOnlyNeverGetsKeys(t *testing.T) {
	status := &stub{out: event.Changed}
	frame := Frame{
		Regular: []Candidate{{ID: "status", Handler: status, Qualifier: event.MouseOnly}},
		Focus:   "status",
	}
	var d Dispatcher
	res := d.Dispatch(context.Background(), keyMsg("a"), frame)
	assert.Equal(t, event.Continue, res.Outcome)
	assert.Zero(t, status.calls)
}

func TestDispatch_RedrawOnConsumed(t *testing.T) {
	h := &stub{out: event.Consumed}
	frame := Frame{Regular: []Candidate{{ID: "h", Handler: h}}, Focus: "h"}

	var d Dispatcher
	assert.False(t, d.Dispatch(context.Background(), keyMsg("a"), frame).Redraw)

	d.RedrawOnConsumed = true
	assert.True(t, d.Dispatch(context.Background(), keyMsg("a"), frame).Redraw)
}

func TestDispatch_UnknownEvent(t *testing.T) {
	h := &stub{out: event.Changed}
	frame := Frame{Regular: []Candidate{{ID: "h", Handler: h, Area: full()}}, Focus: "h"}
	var d Dispatcher
	res := d.Dispatch(context.Background(), struct{ tea.Msg }{}, frame)
	assert.Equal(t, event.Continue, res.Outcome)
	assert.Zero(t, h.calls)
}

func TestDispatch_Tracing(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	d := Dispatcher{Tracer: tp.Tracer("tuievent/dispatch")}

	frame := Frame{Regular: []Candidate{{ID: "list", Handler: &stub{out: event.Changed}, Area: full()}}}
	d.Dispatch(context.Background(), click(1, 1), frame)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "dispatch mouse", spans[0].Name())
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "Changed", attrs["dispatch.outcome"].AsString())
	assert.Equal(t, "list", attrs["dispatch.target"].AsString())
	assert.Equal(t, int64(1), attrs["dispatch.tried"].AsInt64())
	assert.False(t, attrs["dispatch.modal"].AsBool())
}

func TestDispatch_Logging(t *testing.T) {
	var buf bytes.Buffer
	d := Dispatcher{Logger: log.New(&buf, "", 0)}
	frame := Frame{
		Regular: []Candidate{{ID: "list", Handler: &stub{}}},
		Focus:   "list",
		Accelerators: []event.Handler{event.HandlerFunc(func(tea.Msg, event.Qualifier) event.Outcome {
			return event.Consumed
		})},
	}
	d.Dispatch(context.Background(), keyMsg("q"), frame)
	assert.Equal(t, "dispatch: list continue\ndispatch: accelerator[0] Consumed\n", buf.String())
}

func TestParseFallback(t *testing.T) {
	f, err := ParseFallback("siblings")
	require.NoError(t, err)
	assert.Equal(t, FallbackSiblings, f)

	f, err = ParseFallback("")
	require.NoError(t, err)
	assert.Equal(t, FallbackNone, f)

	_, err = ParseFallback("everyone")
	assert.Error(t, err)
}
