// Package dispatch routes one terminal event through a widget tree.
//
// The caller describes the tree for this event only with a Frame: the open
// modal layer, the regular candidates with their screen areas and z-order,
// the focused candidate and a chain of accelerators. Dispatcher.Dispatch
// applies the routing rules and returns a Result. Nothing is kept between
// calls.
//
// Routing:
//   - An open modal layer receives key and mouse events exclusively, through
//     its topmost entry; regular candidates are never offered the event.
//   - Mouse events go to candidates under the cursor, topmost first, and
//     stop at the first result that is not Continue.
//   - Key events go to the focused candidate, then optionally to the other
//     candidates in traversal order, then to the accelerators.
//   - Resize and paste events are broadcast and their results joined.
package dispatch
