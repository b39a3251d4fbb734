package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RasmusBruhn/hex-plant-simulator/hexgrid"
	"github.com/RasmusBruhn/hex-plant-simulator/sim"
)

// GridRenderer draws the grid into the current raylib frame. All positions
// are world coordinates; the caller wraps drawing in its camera mode.
type GridRenderer struct {
	layout Layout
	size   hexgrid.Size

	lightMap        ColorMap
	transparencyMap ColorMap
}

// NewGridRenderer creates a renderer for a grid fitted into the given
// world-space viewport.
func NewGridRenderer(size hexgrid.Size, viewW, viewH float32) *GridRenderer {
	return &GridRenderer{
		layout:          FitLayout(size, viewW, viewH),
		size:            size,
		lightMap:        LightMap(),
		transparencyMap: TransparencyMap(),
	}
}

// Layout exposes the computed layout for input handling.
func (r *GridRenderer) Layout() Layout {
	return r.layout
}

// Background draws every tile as a hexagon colored by the selected ambient
// field.
func (r *GridRenderer) Background(data []sim.InstanceTile, mode sim.BackgroundMode) {
	cmap := r.lightMap
	if mode == sim.ModeTransparency {
		cmap = r.transparencyMap
	}

	for i, inst := range data {
		pos := hexgrid.FromIndex(i, r.size)
		center := r.layout.Center(pos)
		rl.DrawPoly(center, 6, r.layout.Radius, 30, cmap.At(float64(inst.ColorValue)))
	}
}

// Sun draws the sun boundary strip above row 0, one disc per column.
func (r *GridRenderer) Sun(data []sim.InstanceTile) {
	for column, inst := range data {
		center := r.layout.SunCenter(column)
		rl.DrawCircleV(center, r.layout.Radius*0.6, r.lightMap.At(float64(inst.ColorValue)))
	}
}

// Plants draws the plant occupancy on top of the background: bridges first
// so bodies cover their ends, then bulks. Dead plants in their removal tick
// fade out, build sites draw as outlines.
func (r *GridRenderer) Plants(m *sim.Map) {
	tiles := m.Tiles()

	for i := range tiles {
		state := &tiles[i].State
		if state.Kind != sim.StateOccupied {
			continue
		}
		r.drawBridges(hexgrid.FromIndex(i, r.size), &state.Plant)
	}

	for i := range tiles {
		state := &tiles[i].State
		pos := hexgrid.FromIndex(i, r.size)
		center := r.layout.Center(pos)
		bodyRadius := r.layout.Radius * 0.62

		switch state.Kind {
		case sim.StateBuilding:
			color := BulkColor(state.Build.Plant.Bulk.Kind)
			rl.DrawPolyLinesEx(center, 6, bodyRadius, 30, r.layout.Radius*0.12, color)
		case sim.StateOccupied:
			color := BulkColor(state.Plant.Bulk.Kind)
			if !state.Plant.Alive {
				color.A = 110
			}
			rl.DrawPoly(center, 6, bodyRadius, 30, color)
		}
	}
}

// drawBridges draws the plant's half of each bridge: a segment from the
// tile center to the shared edge. The neighbor draws the matching half, so
// a full link appears without drawing anything twice. Root bridges into the
// floor draw their stub downward.
func (r *GridRenderer) drawBridges(pos hexgrid.Pos, p *sim.Plant) {
	center := r.layout.Center(pos)

	for _, dir := range hexgrid.Directions {
		bridge := p.Bridges.Get(dir)
		if !bridge.Present() {
			continue
		}

		target, ok := pos.Neighbor(dir, r.size)
		// Undo the horizontal wrap so stubs at the seam stay local instead
		// of stretching across the screen.
		if target.X-pos.X > 1 {
			target.X -= r.size.W
		} else if target.X-pos.X < -1 {
			target.X += r.size.W
		}
		var far rl.Vector2
		switch {
		case ok:
			far = r.layout.Center(target)
		case dir.IsDown():
			far = center
			far.Y += r.layout.Radius * float32(sqrt3)
		default:
			continue
		}

		mid := rl.Vector2{X: (center.X + far.X) / 2, Y: (center.Y + far.Y) / 2}
		thickness := r.layout.Radius * 0.14
		if bridge.Kind == sim.BridgeLog {
			thickness = r.layout.Radius * 0.24
		}
		rl.DrawLineEx(center, mid, thickness, BridgeColor(bridge.Kind))
	}
}
