package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"tuievent/internal/mouse"
)

// canvas composes rendered widgets at their screen areas. Lines may carry
// ANSI styling; cutting is done on cell widths.
type canvas struct {
	width int
	lines []string
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(width, 0), lines: make([]string, max(height, 0))}
	blank := strings.Repeat(" ", c.width)
	for i := range c.lines {
		c.lines[i] = blank
	}
	return c
}

// fit cuts or pads s to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = ansi.Truncate(s, w, "")
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// draw paints view over area, clipped to the area and the canvas.
func (c *canvas) draw(area mouse.Rect, view string) {
	if area.Empty() {
		return
	}
	for i, line := range strings.Split(view, "\n") {
		if i >= area.Height {
			break
		}
		row := area.Y + i
		if row < 0 || row >= len(c.lines) {
			continue
		}
		base := c.lines[row]
		left := fit(base, max(area.X, 0))
		right := ansi.TruncateLeft(base, area.Right(), "")
		c.lines[row] = fit(left+fit(line, area.Width)+right, c.width)
	}
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}
