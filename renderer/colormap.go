// Package renderer draws the simulated grid: the ambient background fields,
// the plants and their bridges, and the sun boundary strip.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RasmusBruhn/hex-plant-simulator/sim"
)

// ColorMap maps a scalar to a draw color. Inputs outside [0, 1] are clamped.
type ColorMap interface {
	At(v float64) rl.Color
}

// GradientStop anchors a color at a position along a gradient.
type GradientStop struct {
	Pos   float64
	Color rl.Color
}

// Gradient is a piecewise linear color gradient. Stops must be ordered by
// position; values between stops interpolate channel-wise.
type Gradient struct {
	stops []GradientStop
}

// NewGradient creates a gradient from ordered stops. At least one stop is
// required.
func NewGradient(stops ...GradientStop) *Gradient {
	return &Gradient{stops: stops}
}

// At implements ColorMap.
func (g *Gradient) At(v float64) rl.Color {
	if len(g.stops) == 0 {
		return rl.Black
	}
	if v <= g.stops[0].Pos {
		return g.stops[0].Color
	}
	last := g.stops[len(g.stops)-1]
	if v >= last.Pos {
		return last.Color
	}

	for i := 1; i < len(g.stops); i++ {
		if v > g.stops[i].Pos {
			continue
		}
		lo, hi := g.stops[i-1], g.stops[i]
		t := (v - lo.Pos) / (hi.Pos - lo.Pos)
		return rl.Color{
			R: lerpChannel(lo.Color.R, hi.Color.R, t),
			G: lerpChannel(lo.Color.G, hi.Color.G, t),
			B: lerpChannel(lo.Color.B, hi.Color.B, t),
			A: lerpChannel(lo.Color.A, hi.Color.A, t),
		}
	}
	return last.Color
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// LightMap is the gradient for the light field: night blue through amber to
// white daylight.
func LightMap() *Gradient {
	return NewGradient(
		GradientStop{0.0, rl.Color{R: 8, G: 10, B: 28, A: 255}},
		GradientStop{0.4, rl.Color{R: 120, G: 78, B: 36, A: 255}},
		GradientStop{0.8, rl.Color{R: 235, G: 200, B: 120, A: 255}},
		GradientStop{1.0, rl.Color{R: 255, G: 250, B: 235, A: 255}},
	)
}

// TransparencyMap is the gradient for the transparency field: opaque dark
// green to clear white.
func TransparencyMap() *Gradient {
	return NewGradient(
		GradientStop{0.0, rl.Color{R: 12, G: 48, B: 24, A: 255}},
		GradientStop{1.0, rl.Color{R: 245, G: 250, B: 245, A: 255}},
	)
}

// BulkColor returns the draw color of a plant body by its kind.
func BulkColor(kind sim.BulkKind) rl.Color {
	switch kind {
	case sim.BulkLog:
		return rl.Color{R: 110, G: 72, B: 40, A: 255}
	case sim.BulkSugarBulb:
		return rl.Color{R: 214, G: 156, B: 60, A: 255}
	case sim.BulkLeaf:
		return rl.Color{R: 64, G: 160, B: 56, A: 255}
	case sim.BulkSeed:
		return rl.Color{R: 180, G: 180, B: 140, A: 255}
	case sim.BulkRipeSeed:
		return rl.Color{R: 230, G: 220, B: 160, A: 255}
	}
	return rl.Magenta
}

// BridgeColor returns the draw color of a bridge by its kind.
func BridgeColor(kind sim.BridgeKind) rl.Color {
	switch kind {
	case sim.BridgeLog:
		return rl.Color{R: 90, G: 58, B: 32, A: 255}
	case sim.BridgeBranch:
		return rl.Color{R: 130, G: 100, B: 56, A: 255}
	}
	return rl.Blank
}
