// Package sim implements the grid simulation: sunlight diffusing down a
// toroidal hex grid and a procedural plant colonizing tiles, competing for
// light and energy. A tick is a pure function from the previous grid to the
// next one; every tile transition reads only the prior snapshot, so the
// evaluation order of tiles never affects the result.
package sim

import (
	"github.com/RasmusBruhn/hex-plant-simulator/hexgrid"
	"github.com/RasmusBruhn/hex-plant-simulator/sun"
)

// InstanceTile is one flat per-instance draw value, ready for upload by a
// renderer. The core performs no normalization; the value is the raw field
// cast to 32 bits.
type InstanceTile struct {
	// ColorValue is the scalar to draw at this instance.
	ColorValue float32
}

// GridLayout is the static layout info a renderer needs for its wrap-around
// addressing.
type GridLayout struct {
	// NColumns is the number of columns in the grid.
	NColumns int
}

// Map is the entire simulated grid: all tiles in row-major order (left to
// right, top down), the per-column sun boundary, and the settings the cost
// functions run on.
type Map struct {
	tiles    []Tile
	sunTiles []sun.Tile
	model    sun.Intensity
	size     hexgrid.Size
	settings Settings
	behavior Behavior
	time     int
}

// New constructs an all-empty map. The sun model is built before the grid
// exists, so its width is injected here.
func New(size hexgrid.Size, settings Settings, model sun.Intensity) *Map {
	model.SetSize(size.W)

	tiles := make([]Tile, size.Tiles())
	for i := range tiles {
		tiles[i] = newTile()
	}

	return &Map{
		tiles:    tiles,
		sunTiles: make([]sun.Tile, size.W),
		model:    model,
		size:     size,
		settings: settings,
	}
}

// SetBehavior installs the spreading behavior for occupied plants. A nil
// behavior means plants never initiate spreads on their own.
func (m *Map) SetBehavior(b Behavior) {
	m.behavior = b
}

// Step advances the simulation exactly one tick. The new tile slice is fully
// materialized from the previous snapshot before it becomes current.
func (m *Map) Step() {
	m.sunTiles = sun.Tiles(m.model, m.time)

	next := make([]Tile, len(m.tiles))
	for index := range m.tiles {
		pos := hexgrid.FromIndex(index, m.size)
		neighbors := neighborsOf(m.tiles, m.sunTiles, m.size, pos)
		next[index] = m.tiles[index].forward(&m.settings, &neighbors, m.behavior)
	}
	m.tiles = next

	m.time++
}

// Place puts a plant directly onto a tile, overwriting whatever was there.
// This is the world-seeding hook; the simulation itself only grows plants
// through the spread protocol.
func (m *Map) Place(pos hexgrid.Pos, p Plant) {
	p.Alive = true
	m.tiles[pos.Wrap(m.size).Index(m.size)].State = Occupied(p)
}

// Tiles exposes the current tile slice in row-major order for inspection and
// rendering. Callers must treat it as read-only.
func (m *Map) Tiles() []Tile {
	return m.tiles
}

// TileAt returns the tile at a position, wrapping and clamping it into the
// grid first.
func (m *Map) TileAt(pos hexgrid.Pos) *Tile {
	return &m.tiles[pos.Wrap(m.size).Index(m.size)]
}

// Size returns the grid size.
func (m *Map) Size() hexgrid.Size {
	return m.size
}

// Settings returns the simulation settings of the map.
func (m *Map) Settings() *Settings {
	return &m.settings
}

// Time returns the current iteration step.
func (m *Map) Time() int {
	return m.time
}

// GridLayout returns the static layout of the grid.
func (m *Map) GridLayout() GridLayout {
	return GridLayout{NColumns: m.size.W}
}

// TileDataBackground flattens the selected tile field into per-instance draw
// values, row-major.
func (m *Map) TileDataBackground(mode BackgroundMode) []InstanceTile {
	data := make([]InstanceTile, len(m.tiles))
	for i, tile := range m.tiles {
		value := tile.Light
		if mode == ModeTransparency {
			value = tile.Transparency
		}
		data[i] = InstanceTile{ColorValue: float32(value)}
	}
	return data
}

// SunData flattens the current sun boundary into per-instance draw values,
// one per column.
func (m *Map) SunData() []InstanceTile {
	data := make([]InstanceTile, len(m.sunTiles))
	for i, tile := range m.sunTiles {
		data[i] = InstanceTile{ColorValue: float32(tile.Intensity)}
	}
	return data
}
