package sim

import (
	"github.com/RasmusBruhn/hex-plant-simulator/hexgrid"
	"github.com/RasmusBruhn/hex-plant-simulator/sun"
)

// NeighborKind tells what sits on the far side of a tile edge.
type NeighborKind uint8

const (
	// NeighborNone means there is nothing there: the floor below the last
	// row. Horizontal directions always wrap, so this only occurs downward.
	NeighborNone NeighborKind = iota
	// NeighborTile means a normal grid tile.
	NeighborTile
	// NeighborSun means the sun boundary above row 0.
	NeighborSun
)

// Neighbor is the view of one adjacent cell, read from the previous tick's
// snapshot.
type Neighbor struct {
	// Kind tells which of the payload fields is meaningful.
	Kind NeighborKind
	// Tile points into the previous snapshot when Kind is NeighborTile.
	Tile *Tile
	// Sun is the boundary light value when Kind is NeighborSun.
	Sun sun.Tile
}

// Neighbors is the full six-way view around one tile. All references point
// into the previous tick's tile slice, so reading them during a step never
// observes partial updates.
type Neighbors [hexgrid.NumDirections]Neighbor

// neighborsOf assembles the neighbor view for the tile at pos. Upward moves
// past row 0 resolve to the sun tile of the wrapped column; downward moves
// past the last row resolve to nothing.
func neighborsOf(tiles []Tile, sunTiles []sun.Tile, size hexgrid.Size, pos hexgrid.Pos) Neighbors {
	var n Neighbors
	for _, dir := range hexgrid.Directions {
		target, ok := pos.Neighbor(dir, size)
		switch {
		case ok:
			n[dir] = Neighbor{Kind: NeighborTile, Tile: &tiles[target.Index(size)]}
		case dir.IsUp():
			n[dir] = Neighbor{Kind: NeighborSun, Sun: sunTiles[target.X]}
		default:
			n[dir] = Neighbor{Kind: NeighborNone}
		}
	}
	return n
}

// Get returns the neighbor in the given direction.
func (n *Neighbors) Get(dir hexgrid.Direction) Neighbor {
	return n[dir]
}

// plant returns the occupied plant behind the neighbor, or nil when the
// neighbor is not an occupied tile.
func (nb Neighbor) plant() *Plant {
	if nb.Kind != NeighborTile || nb.Tile.State.Kind != StateOccupied {
		return nil
	}
	return &nb.Tile.State.Plant
}

// livePlant returns the occupied, alive plant behind the neighbor, or nil.
func (nb Neighbor) livePlant() *Plant {
	p := nb.plant()
	if p == nil || !p.Alive {
		return nil
	}
	return p
}
