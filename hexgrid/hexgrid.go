// Package hexgrid provides addressing and neighbor resolution for an
// offset-column hexagonal grid that wraps horizontally and is bounded
// vertically. Row 0 is the top of the grid; moving above it reaches the sun
// boundary, moving below the last row reaches the floor.
package hexgrid

// Size is the extent of a grid in columns and rows.
type Size struct {
	W int
	H int
}

// Tiles returns the total number of tiles in a grid of this size.
func (s Size) Tiles() int {
	if s.W < 0 || s.H < 0 {
		return 0
	}
	return s.W * s.H
}

// Pos is a tile position: X is the column, Y the row.
type Pos struct {
	X int
	Y int
}

// FromIndex converts a flat row-major tile index back into a position.
func FromIndex(index int, size Size) Pos {
	return Pos{X: index % size.W, Y: index / size.W}
}

// Index converts the position into a flat row-major tile index.
func (p Pos) Index(size Size) int {
	return p.Y*size.W + p.X
}

// Wrap normalizes the position by wrapping X modulo the width and clamping Y
// into the row range.
func (p Pos) Wrap(size Size) Pos {
	x := p.X % size.W
	if x < 0 {
		x += size.W
	}
	y := p.Y
	if y < 0 {
		y = 0
	} else if y >= size.H {
		y = size.H - 1
	}
	return Pos{X: x, Y: y}
}

// Neighbor resolves the position one step away in the given direction. The
// boolean reports whether the result lies inside the grid: it is false above
// row 0 (the sun boundary) and below the last row (the floor). The returned
// position always carries the wrapped column so callers can index per-column
// state such as the sun tiles even for out-of-grid rows.
//
// Diagonal column shifts depend on the parity of the current column: even
// columns sit half a tile lower than odd columns, so their Up* neighbors
// hug the current column and their Down* neighbors shift outward.
func (p Pos) Neighbor(dir Direction, size Size) (Pos, bool) {
	even := p.X%2 == 0

	var x, y int
	switch dir {
	case Right:
		x, y = p.X+1, p.Y
	case Left:
		x, y = p.X-1, p.Y
	case UpRight:
		y = p.Y - 1
		if even {
			x = p.X
		} else {
			x = p.X + 1
		}
	case UpLeft:
		y = p.Y - 1
		if even {
			x = p.X - 1
		} else {
			x = p.X
		}
	case DownLeft:
		y = p.Y + 1
		if even {
			x = p.X - 1
		} else {
			x = p.X
		}
	case DownRight:
		y = p.Y + 1
		if even {
			x = p.X
		} else {
			x = p.X + 1
		}
	}

	if x < 0 {
		x += size.W
	} else if x >= size.W {
		x -= size.W
	}

	return Pos{X: x, Y: y}, y >= 0 && y < size.H
}
