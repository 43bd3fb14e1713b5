package layout

import "strings"

// Direction is the axis a Split divides along.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// RootDirection reads the direction attribute of the top-level layout, which
// stacks vertically unless told otherwise.
func RootDirection(attr string) Direction {
	if strings.EqualFold(strings.TrimSpace(attr), "horizontal") {
		return Horizontal
	}
	return Vertical
}

// NestedDirection reads the direction attribute of a nested layout, which
// lays out side by side unless told otherwise.
func NestedDirection(attr string) Direction {
	if strings.EqualFold(strings.TrimSpace(attr), "vertical") {
		return Vertical
	}
	return Horizontal
}

// Split divides area along dir into one chunk per constraint. The margin is
// removed from every side first. Sizes are taken in order and clipped to the
// space still free; whatever is left over goes to the last Min chunk, or to
// the last chunk when there is none.
func Split(area Rect, dir Direction, margin int, constraints []Constraint) []Rect {
	if len(constraints) == 0 {
		return nil
	}
	inner := area.Inner(margin)
	total := inner.H
	if dir == Horizontal {
		total = inner.W
	}

	sizes := make([]int, len(constraints))
	free := total
	grow := len(constraints) - 1
	for i, c := range constraints {
		size := min(max(c.Size(total), 0), free)
		sizes[i] = size
		free -= size
		if c.Kind == Min {
			grow = i
		}
	}
	sizes[grow] += free

	out := make([]Rect, len(constraints))
	offset := 0
	for i, size := range sizes {
		if dir == Horizontal {
			out[i] = NewRect(inner.X+offset, inner.Y, size, inner.H)
		} else {
			out[i] = NewRect(inner.X, inner.Y+offset, inner.W, size)
		}
		offset += size
	}
	return out
}

// Centered returns the middle cell of a 25/50/25 vertical and 20/60/20
// horizontal split of frame.
func Centered(frame Rect) Rect {
	rows := Split(frame, Vertical, 0, []Constraint{PercentageOf(25), PercentageOf(50), PercentageOf(25)})
	cols := Split(rows[1], Horizontal, 0, []Constraint{PercentageOf(20), PercentageOf(60), PercentageOf(20)})
	return cols[1]
}
