package event

import tea "github.com/charmbracelet/bubbletea"

// Handler is implemented by every widget-like entity that consumes events.
//
// Handle must not keep msg after returning, and the returned Outcome must
// describe this event only. Under a modal qualifier a handler should return
// something other than Continue unless it deliberately passes the event
// through; the caller blocks propagation either way.
type Handler interface {
	Handle(msg tea.Msg, q Qualifier) Outcome
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(msg tea.Msg, q Qualifier) Outcome

// Handle calls f.
func (f HandlerFunc) Handle(msg tea.Msg, q Qualifier) Outcome {
	return f(msg, q)
}

// Nop is the catch-all handler for stateless positions in a tree.
// It never recognizes anything.
var Nop Handler = HandlerFunc(func(tea.Msg, Qualifier) Outcome { return Continue })

// Offer delivers msg to h under q, after checking that q admits the event's
// class. A nil handler, an unknown qualifier or an unknown class yields
// Continue without calling h.
func Offer(h Handler, msg tea.Msg, q Qualifier) Outcome {
	if h == nil {
		return Continue
	}
	if !q.admits(Classify(msg)) {
		return Continue
	}
	return h.Handle(msg, q).normalize()
}

// First offers msg to each handler in order and returns the first result
// that is not Continue. Later handlers are not called.
func First(msg tea.Msg, q Qualifier, hs ...Handler) Outcome {
	for _, h := range hs {
		if o := Offer(h, msg, q); o.IsConsumed() {
			return o
		}
	}
	return Continue
}

// Broadcast offers msg to every handler and returns the join of all results.
func Broadcast(msg tea.Msg, q Qualifier, hs ...Handler) Outcome {
	r := Continue
	for _, h := range hs {
		r = Combine(r, Offer(h, msg, q))
	}
	return r
}

// Chain is a fixed, ordered list of handlers that behaves as one handler
// using First semantics. Containers use it for accelerator tables.
type Chain []Handler

// Handle implements Handler.
func (c Chain) Handle(msg tea.Msg, q Qualifier) Outcome {
	return First(msg, q, c...)
}
