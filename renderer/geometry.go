package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RasmusBruhn/hex-plant-simulator/hexgrid"
)

// sqrt3 is the height-to-radius ratio of a flat-top hexagon.
const sqrt3 = 1.7320508075688772

// Layout places the grid on screen: flat-top hexagons in columns spaced
// 1.5 radii apart, with even columns sitting half a tile lower than odd
// ones. The sun strip occupies one extra row of space above row 0.
type Layout struct {
	Radius  float32
	OriginX float32
	OriginY float32
}

// FitLayout computes the largest layout that fits the grid plus the sun
// strip into the given viewport, centered.
func FitLayout(size hexgrid.Size, viewW, viewH float32) Layout {
	cols := float32(size.W)
	rows := float32(size.H)

	// Grid extent in radius units, including the half-tile column offset
	// and one row of sun strip on top.
	extentW := 1.5*cols + 0.5
	extentH := float32(sqrt3) * (rows + 1.5)

	radius := viewW / extentW
	if r := viewH / extentH; r < radius {
		radius = r
	}

	return Layout{
		Radius:  radius,
		OriginX: (viewW - radius*extentW) / 2,
		OriginY: (viewH-radius*extentH)/2 + radius*float32(sqrt3),
	}
}

// Center returns the screen position of a tile center.
func (l Layout) Center(pos hexgrid.Pos) rl.Vector2 {
	vstep := l.Radius * float32(sqrt3)
	x := l.OriginX + l.Radius*(1.5*float32(pos.X)+1)
	y := l.OriginY + vstep*(float32(pos.Y)+0.5)
	if pos.X%2 == 0 {
		y += vstep / 2
	}
	return rl.Vector2{X: x, Y: y}
}

// SunCenter returns the screen position of the sun tile above a column.
func (l Layout) SunCenter(column int) rl.Vector2 {
	center := l.Center(hexgrid.Pos{X: column, Y: 0})
	center.Y -= l.Radius * float32(sqrt3)
	return center
}

// TileAt returns the grid position whose center is nearest to a screen
// point, and whether that position lies inside the grid.
func (l Layout) TileAt(point rl.Vector2, size hexgrid.Size) (hexgrid.Pos, bool) {
	vstep := l.Radius * float32(sqrt3)
	col := int(math.Round(float64((point.X - l.OriginX - l.Radius) / (1.5 * l.Radius))))

	y := point.Y - l.OriginY
	if col%2 == 0 {
		y -= vstep / 2
	}
	row := int(math.Round(float64(y/vstep - 0.5)))

	pos := hexgrid.Pos{X: col, Y: row}
	if col < 0 || col >= size.W || row < 0 || row >= size.H {
		return pos, false
	}
	return pos, true
}
