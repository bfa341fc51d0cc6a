// Package ui provides composition primitives for Bubble Tea widgets built on
// the event outcome protocol.
//
// Core abstractions:
//   - Widget: an event.Handler that can also initialise and render itself
//   - Panel: a bounded region within a layout that hosts a Widget
//   - Layout: arranges panels and declares traversal order
//   - FocusManager: tracks and rotates focus across panels
//   - OverlayStack: the modal layer (popups and dialogs)
//   - KeyHandler: leader-key accelerator table
//   - Root: the tea.Model that turns layout and focus into a dispatch.Frame
//     for every event
package ui
