// Package event defines how widgets consume terminal events and report what
// happened.
//
// Every handler returns an Outcome. Outcomes are ordered
// (Continue < Unchanged < Changed < Consumed) and combine by taking the
// maximum, so results from several handlers can be merged in any order.
//
// # Handlers
//
// A Handler receives a Bubble Tea message plus a Qualifier describing the
// dispatch context:
//
//	func (l *List) Handle(msg tea.Msg, q event.Qualifier) event.Outcome {
//	    switch msg := msg.(type) {
//	    case tea.KeyMsg:
//	        if msg.String() == "down" {
//	            return event.FromBool(l.next())
//	        }
//	    }
//	    return event.Continue
//	}
//
// # Chaining
//
// Offer applies qualifier filtering before calling a handler. First tries
// handlers in order and stops at the first result that is not Continue.
// Broadcast offers an event to every handler and joins the results.
package event
