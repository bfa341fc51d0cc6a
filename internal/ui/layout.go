package ui

import "tuievent/internal/mouse"

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// StaticLayout is a fixed list of panels. Focus order is declaration order,
// skipping mouse-only panels.
type StaticLayout struct {
	List []Panel
}

// NewStaticLayout creates a layout from panels in traversal order.
func NewStaticLayout(panels ...Panel) *StaticLayout {
	return &StaticLayout{List: panels}
}

// Panels implements Layout.
func (l *StaticLayout) Panels() []Panel {
	return l.List
}

// FocusOrder implements Layout.
func (l *StaticLayout) FocusOrder() []string {
	order := make([]string, 0, len(l.List))
	for _, p := range l.List {
		if !p.MouseOnly {
			order = append(order, p.ID)
		}
	}
	return order
}

// PanelAt returns the topmost panel whose area contains col, row, in the
// same stacking order the dispatcher uses: higher Z first, later panels on
// ties. Mouse-only panels count; callers decide whether the panel can take
// focus.
func PanelAt(l Layout, width, height, col, row int) (Panel, bool) {
	var (
		best  Panel
		found bool
	)
	for _, p := range l.Panels() {
		if !p.Area(width, height).Contains(col, row) {
			continue
		}
		if !found || p.Z >= best.Z {
			best, found = p, true
		}
	}
	return best, found
}

// Row returns bounds for a full-width band of fixed height starting at y.
// A negative y counts from the bottom.
func Row(y, h int) BoundsFunc {
	return func(width, height int) (int, int, int, int) {
		if y < 0 {
			return 0, height + y, width, h
		}
		return 0, y, width, h
	}
}

// Fill returns bounds covering the terminal minus top and bottom margins,
// split into n equal columns; it yields column i.
func Fill(top, bottom, n, i int) BoundsFunc {
	return func(width, height int) (int, int, int, int) {
		h := max(height-top-bottom, 0)
		if n <= 0 {
			return 0, top, width, h
		}
		w := width / n
		x := w * i
		if i == n-1 {
			w = width - x
		}
		return x, top, w, h
	}
}

// Centered returns bounds for a w×h box centred in the terminal.
func Centered(w, h int) BoundsFunc {
	return func(width, height int) (int, int, int, int) {
		cw, ch := min(w, width), min(h, height)
		return (width - cw) / 2, (height - ch) / 2, cw, ch
	}
}

// At returns fixed bounds.
func At(r mouse.Rect) BoundsFunc {
	return func(int, int) (int, int, int, int) {
		return r.X, r.Y, r.Width, r.Height
	}
}
