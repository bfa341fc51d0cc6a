package mouse

// Rect is a screen area in cells. The zero Rect is empty.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect builds a Rect from the (x, y, w, h) tuple layouts return.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the first column past the rect.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rect.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell at col, row lies inside r.
func (r Rect) Contains(col, row int) bool {
	return col >= r.X && col < r.Right() && row >= r.Y && row < r.Bottom()
}

// ItemAt returns the index of the first area containing col, row.
func ItemAt(areas []Rect, col, row int) (int, bool) {
	for i, r := range areas {
		if r.Contains(col, row) {
			return i, true
		}
	}
	return -1, false
}

// RowAt returns the index of the first area whose vertical span contains row.
// Only the vertical components are used; callers usually check the full
// position against the enclosing rect first.
func RowAt(areas []Rect, row int) (int, bool) {
	for i, r := range areas {
		if row >= r.Y && row < r.Bottom() {
			return i, true
		}
	}
	return -1, false
}

// ColumnAt returns the index of the first area whose horizontal span
// contains col.
func ColumnAt(areas []Rect, col int) (int, bool) {
	for i, r := range areas {
		if col >= r.X && col < r.Right() {
			return i, true
		}
	}
	return -1, false
}

// RowAtDrag finds a row while dragging. A row inside areas is returned as
// (index, 0, true). Outside, it estimates an invisible row assuming one row
// per item and returns (-1, offset, false): a negative offset lies above
// the encompassing area, a positive one below the last area.
func RowAtDrag(encompassing Rect, areas []Rect, row int) (idx, offset int, ok bool) {
	if i, ok := RowAt(areas, row); ok {
		return i, 0, true
	}
	if row < encompassing.Y {
		return -1, row - encompassing.Y, false
	}
	if len(areas) > 0 {
		return -1, row - areas[len(areas)-1].Bottom() + 1, false
	}
	return -1, row - encompassing.Y, false
}

// ColumnAtDrag is RowAtDrag for columns.
func ColumnAtDrag(encompassing Rect, areas []Rect, col int) (idx, offset int, ok bool) {
	if i, ok := ColumnAt(areas, col); ok {
		return i, 0, true
	}
	if col < encompassing.X {
		return -1, col - encompassing.X, false
	}
	if len(areas) > 0 {
		return -1, col - areas[len(areas)-1].Right() + 1, false
	}
	return -1, col - encompassing.X, false
}
