package sim

import "github.com/RasmusBruhn/hex-plant-simulator/hexgrid"

// StateKind discriminates the plant occupancy state of a tile. Exactly one
// variant is active per tile per tick.
type StateKind uint8

const (
	// StateEmpty means no plant.
	StateEmpty StateKind = iota
	// StateBuilding means a spread was accepted from a neighbor but has not
	// materialized yet.
	StateBuilding
	// StateOccupied means a live plant occupies the tile.
	StateOccupied
)

// BuildSite is the payload of a building tile: a copy of the spreading
// plant's template, the energy earmarked for it, and where the mother sits.
type BuildSite struct {
	// Plant is the offspring template, a copy rather than a live reference.
	Plant Plant
	// Energy is the amount the mother allocated for construction.
	Energy float64
	// Mother is the direction from this tile toward the spreading plant.
	Mother hexgrid.Direction
}

// PlantState is the tagged plant occupancy state of a tile.
type PlantState struct {
	// Kind selects the active variant.
	Kind StateKind
	// Build is the payload while Kind is StateBuilding.
	Build BuildSite
	// Plant is the payload while Kind is StateOccupied.
	Plant Plant
}

// Occupied wraps a plant in an occupied state.
func Occupied(p Plant) PlantState {
	return PlantState{Kind: StateOccupied, Plant: p}
}

// Transparency returns the light transparency of the plant in this state; a
// tile without a plant lets everything through.
func (s *PlantState) Transparency(settings *Settings) float64 {
	switch s.Kind {
	case StateBuilding:
		return s.Build.Plant.Bulk.Transparency(settings)
	case StateOccupied:
		return s.Plant.Bulk.Transparency(settings)
	default:
		return 1.0
	}
}

// forward computes the next plant state of the tile from the previous tick's
// snapshot.
func (s *PlantState) forward(settings *Settings, tile *Tile, neighbors *Neighbors, behavior Behavior) PlantState {
	switch s.Kind {
	case StateEmpty:
		return acceptSpread(settings, neighbors)
	case StateBuilding:
		return s.Build.finish(settings, neighbors)
	default:
		if !s.Plant.Alive {
			return PlantState{Kind: StateEmpty}
		}
		return Occupied(s.Plant.forward(settings, tile, neighbors, behavior))
	}
}

// acceptSpread scans the neighbors for plants trying to spread into this
// tile. Among the candidates the spread direction with the lowest priority
// id wins; the offspring template passes through the mutation hook before it
// is committed to a build site.
func acceptSpread(settings *Settings, neighbors *Neighbors) PlantState {
	found := false
	var best BuildSite
	bestPriority := 0

	for _, dir := range hexgrid.Directions {
		mother := neighbors.Get(dir).plant()
		if mother == nil || mother.Spread.Phase != SpreadTrying || mother.Spread.Offspring == nil {
			continue
		}
		incoming := dir.Opposite()
		if mother.Spread.Direction != incoming {
			continue
		}
		if !found || incoming.Priority() < bestPriority {
			found = true
			bestPriority = incoming.Priority()
			best = BuildSite{
				Plant:  mother.Spread.Offspring.mutate(settings),
				Energy: mother.Spread.Energy,
				Mother: dir,
			}
		}
	}

	if !found {
		return PlantState{Kind: StateEmpty}
	}
	return PlantState{Kind: StateBuilding, Build: best}
}

// finish attempts to materialize the build site. The mother must still be
// occupied and alive, and the allocated energy must cover the bulk plus the
// plant's share of the bridge back toward the mother. Failure leaves the
// tile empty; the mother is not told, it observes the outcome itself.
func (b *BuildSite) finish(settings *Settings, neighbors *Neighbors) PlantState {
	if neighbors.Get(b.Mother).livePlant() == nil {
		return PlantState{Kind: StateEmpty}
	}

	plant := b.Plant
	remaining := b.Energy - plant.BuildCost(settings)
	if remaining < 0 {
		return PlantState{Kind: StateEmpty}
	}

	if remaining > plant.Capacity {
		remaining = plant.Capacity
	}
	plant.Energy = remaining
	plant.Alive = true
	plant.Spread = Spread{}
	plant.Age = 0
	return Occupied(plant)
}
