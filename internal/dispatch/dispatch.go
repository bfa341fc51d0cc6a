package dispatch

import (
	"context"
	"fmt"
	"log"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"tuievent/internal/event"
)

// Fallback selects what happens to a key the focused candidate declined.
type Fallback int

const (
	// FallbackNone goes straight to the accelerators.
	FallbackNone Fallback = iota
	// FallbackSiblings offers the key to the other regular candidates in
	// traversal order before the accelerators.
	FallbackSiblings
)

func (f Fallback) String() string {
	switch f {
	case FallbackNone:
		return "none"
	case FallbackSiblings:
		return "siblings"
	default:
		return "unknown"
	}
}

// ParseFallback parses "none" or "siblings".
func ParseFallback(s string) (Fallback, error) {
	switch s {
	case "none", "":
		return FallbackNone, nil
	case "siblings":
		return FallbackSiblings, nil
	}
	return FallbackNone, fmt.Errorf("unknown key fallback %q", s)
}

// Result is the outcome of one dispatch.
type Result struct {
	Outcome event.Outcome
	// Redraw is the explicit redraw channel: true for Changed, and for
	// Consumed when the dispatcher is configured with RedrawOnConsumed.
	Redraw bool
	// Target is the ID of the candidate that stopped the chain. Empty for
	// broadcasts and for events nobody used.
	Target string
}

// Dispatcher routes events according to a Frame. The zero value is usable.
type Dispatcher struct {
	KeyFallback Fallback
	// RedrawOnConsumed makes Consumed results request a redraw.
	RedrawOnConsumed bool
	// Tracer, when set, records one span per dispatch.
	Tracer trace.Tracer
	// Logger, when set, receives one debug line per candidate tried.
	Logger *log.Logger
}

// run carries the bookkeeping for a single dispatch.
type run struct {
	d     *Dispatcher
	msg   tea.Msg
	tried int
}

func (r *run) offer(id string, h event.Handler, q event.Qualifier) event.Outcome {
	r.tried++
	o := event.Offer(h, r.msg, q)
	if r.d.Logger != nil {
		if o.IsConsumed() {
			r.d.Logger.Printf("dispatch: %s %s", id, o)
		} else {
			r.d.Logger.Printf("dispatch: %s continue", id)
		}
	}
	return o
}

// Dispatch routes msg through frame and reports the result. Events of an
// unknown class yield Continue without invoking anything.
func (d *Dispatcher) Dispatch(ctx context.Context, msg tea.Msg, frame Frame) Result {
	class := event.Classify(msg)

	var span trace.Span
	if d.Tracer != nil {
		_, span = d.Tracer.Start(ctx, "dispatch "+class.String(),
			trace.WithAttributes(
				attribute.String("event.class", class.String()),
				attribute.Bool("dispatch.modal", frame.ModalActive()),
				attribute.String("dispatch.capture", frame.Capture),
			))
		defer span.End()
	}

	r := &run{d: d, msg: msg}
	var res Result
	switch {
	case class == event.ClassUnknown:
	case class.Broadcast():
		res.Outcome = r.broadcast(frame)
	case frame.ModalActive():
		res.Outcome, res.Target = r.modal(frame)
	case class == event.ClassMouse:
		res.Outcome, res.Target = r.mouse(frame)
	case class == event.ClassKey:
		res.Outcome, res.Target = r.key(frame)
	}
	res.Redraw = res.Outcome.NeedsRedraw() ||
		(res.Outcome == event.Consumed && d.RedrawOnConsumed)

	if span != nil {
		span.SetAttributes(
			attribute.String("dispatch.outcome", res.Outcome.String()),
			attribute.String("dispatch.target", res.Target),
			attribute.Bool("dispatch.redraw", res.Redraw),
			attribute.Int("dispatch.tried", r.tried),
		)
	}
	return res
}

// modal offers the event to the topmost modal entry only. Its answer is
// final even when it is Continue.
func (r *run) modal(f Frame) (event.Outcome, string) {
	top := f.Modal[len(f.Modal)-1]
	o := r.offer(top.ID, top.Handler, modalQualifier(top))
	if !o.IsConsumed() {
		return o, ""
	}
	return o, top.ID
}

// mouse offers the event to the capturing candidate, then to candidates
// under the cursor, topmost first.
func (r *run) mouse(f Frame) (event.Outcome, string) {
	captured := f.regular(f.Capture)
	if captured >= 0 {
		c := f.Regular[captured]
		if o := r.offer(c.ID, c.Handler, c.Qualifier); o.IsConsumed() {
			return o, c.ID
		}
	}

	col, row, _ := event.MousePosition(r.msg)
	hits := make([]int, 0, len(f.Regular))
	for i, c := range f.Regular {
		if i != captured && c.Area.Contains(col, row) {
			hits = append(hits, i)
		}
	}
	slices.SortStableFunc(hits, func(a, b int) int {
		if za, zb := f.Regular[a].Z, f.Regular[b].Z; za != zb {
			return zb - za
		}
		return b - a
	})
	for _, i := range hits {
		c := f.Regular[i]
		if o := r.offer(c.ID, c.Handler, c.Qualifier); o.IsConsumed() {
			return o, c.ID
		}
	}
	return event.Continue, ""
}

// key offers the event to the focused candidate, then the fallback chain.
func (r *run) key(f Frame) (event.Outcome, string) {
	focus := f.focused()
	if focus >= 0 {
		c := f.Regular[focus]
		if o := r.offer(c.ID, c.Handler, c.Qualifier); o.IsConsumed() {
			return o, c.ID
		}
	}
	if r.d.KeyFallback == FallbackSiblings {
		for i, c := range f.Regular {
			if i == focus {
				continue
			}
			if o := r.offer(c.ID, c.Handler, c.Qualifier); o.IsConsumed() {
				return o, c.ID
			}
		}
	}
	for i, h := range f.Accelerators {
		id := fmt.Sprintf("accelerator[%d]", i)
		if o := r.offer(id, h, event.Regular); o.IsConsumed() {
			return o, id
		}
	}
	return event.Continue, ""
}

// broadcast offers the event to every candidate of the active layer and
// joins the results.
func (r *run) broadcast(f Frame) event.Outcome {
	out := event.Continue
	if f.ModalActive() {
		for _, c := range f.Modal {
			out = event.Combine(out, r.offer(c.ID, c.Handler, modalQualifier(c)))
		}
		return out
	}
	for _, c := range f.Regular {
		out = event.Combine(out, r.offer(c.ID, c.Handler, c.Qualifier))
	}
	return out
}
