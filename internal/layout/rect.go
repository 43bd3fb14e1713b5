package layout

import "fmt"

// Rect is a cell rectangle. X and Y address the top-left cell.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns a rectangle with negative sizes clamped to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Inner shrinks the rectangle by margin cells on every side.
func (r Rect) Inner(margin int) Rect {
	if margin <= 0 {
		return r
	}
	if r.W < 2*margin || r.H < 2*margin {
		return NewRect(r.X+margin, r.Y+margin, 0, 0)
	}
	return NewRect(r.X+margin, r.Y+margin, r.W-2*margin, r.H-2*margin)
}

// Intersect returns the overlap of r and o.
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	return NewRect(x, y, min(r.Right(), o.Right())-x, min(r.Bottom(), o.Bottom())-y)
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}
