package sim

import "github.com/RasmusBruhn/hex-plant-simulator/hexgrid"

// Tile is a single cell of the map: its plant occupancy state plus the
// ambient light fields every tile carries whether or not a plant is present.
type Tile struct {
	// State is the plant occupancy state.
	State PlantState
	// Transparency is the fraction of light passing through this tile.
	Transparency float64
	// Light is the light level reaching this tile.
	Light float64
}

// newTile returns an empty, fully transparent, unlit tile.
func newTile() Tile {
	return Tile{
		State:        PlantState{Kind: StateEmpty},
		Transparency: 1.0,
		Light:        0.0,
	}
}

// forward computes the whole next state of the tile from the previous tick's
// snapshot. Nothing here mutates in place; evaluation order across tiles
// must not matter.
func (t *Tile) forward(settings *Settings, neighbors *Neighbors, behavior Behavior) Tile {
	return Tile{
		State:        t.State.forward(settings, t, neighbors, behavior),
		Transparency: t.forwardTransparency(settings),
		Light:        t.forwardLight(neighbors),
	}
}

// forwardTransparency derives the next transparency from the map-wide base
// value and whatever bulk currently sits on the tile.
func (t *Tile) forwardTransparency(settings *Settings) float64 {
	return settings.Transparency.Base * t.State.Transparency(settings)
}

// forwardLight averages the light arriving from the two tiles above,
// attenuated by the transparency of the tile it passed through. Above row 0
// the input is the sun tile of that column.
func (t *Tile) forwardLight(neighbors *Neighbors) float64 {
	return 0.5 * (lightFrom(neighbors.Get(hexgrid.UpRight)) + lightFrom(neighbors.Get(hexgrid.UpLeft)))
}

// lightFrom is the light contribution of one upward neighbor.
func lightFrom(nb Neighbor) float64 {
	switch nb.Kind {
	case NeighborTile:
		return nb.Tile.Light * nb.Tile.Transparency
	case NeighborSun:
		return nb.Sun.Intensity
	default:
		return 0.0
	}
}
