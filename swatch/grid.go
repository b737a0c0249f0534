package swatch

// Rect is a half open area: X <= x < X+W, Y <= y < Y+H.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Grid splits a w x h area in 2x2, in [Labels] order: top left, top right,
// bottom left, bottom right. The right column and bottom row get the odd
// leftover cell.
func Grid(w, h int) [4]Rect {
	lw, th := w/2, h/2
	rw, bh := w-lw, h-th
	return [4]Rect{
		{0, 0, lw, th},
		{lw, 0, rw, th},
		{0, th, lw, bh},
		{lw, th, rw, bh},
	}
}

// Hit returns the index of the rectangle containing (x, y).
func Hit(rects [4]Rect, x, y int) (int, bool) {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}
