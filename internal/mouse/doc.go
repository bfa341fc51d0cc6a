// Package mouse provides hit-testing against widget rectangles supplied by
// the layout, and small pieces of per-widget gesture state (double-click and
// drag recognition) for Bubble Tea mouse events.
package mouse
