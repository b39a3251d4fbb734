package sim

import "github.com/RasmusBruhn/hex-plant-simulator/hexgrid"

// Behavior decides whether an occupied plant initiates a spread attempt this
// tick. Decisions must read only the previous tick's snapshot (the neighbors
// view) and the plant's own freshly computed state, so tile evaluation order
// stays irrelevant. The returned spread's Energy is taken out of the plant's
// pool immediately; implementations must not earmark more than the plant can
// spare.
//
// A nil Behavior leaves spreading entirely to whoever placed the plants.
type Behavior interface {
	Decide(p *Plant, tile *Tile, neighbors *Neighbors, settings *Settings) (Spread, bool)
}

// Grower is a deterministic rule-based growth behavior: once a plant has
// built up enough surplus above its reserve, it tries to grow a leaf-bearing
// offspring into the best-lit adjacent empty tile, preferring low direction
// priority ids on ties so runs reproduce exactly.
type Grower struct {
	// SurplusThreshold is the energy above reserve a plant must hold before
	// it considers spreading.
	SurplusThreshold float64
	// SpreadEnergy is the amount earmarked for one attempt.
	SpreadEnergy float64
	// OffspringCapacity is the energy capacity of new offspring.
	OffspringCapacity float64
	// OffspringReserve is the energy reserve of new offspring.
	OffspringReserve float64
	// LeafAbsorption is the absorption of leaf offspring.
	LeafAbsorption float64
	// BridgeCapacity is the transfer capacity of the bridge back to the
	// mother.
	BridgeCapacity float64
	// MaxBridges caps how many bridges a plant may hold before it stops
	// spreading further.
	MaxBridges int
}

// Decide implements Behavior.
func (g *Grower) Decide(p *Plant, tile *Tile, neighbors *Neighbors, settings *Settings) (Spread, bool) {
	if p.Energy-p.Reserve < g.SurplusThreshold+g.SpreadEnergy {
		return Spread{}, false
	}
	if g.MaxBridges > 0 && p.Bridges.Count() >= g.MaxBridges {
		return Spread{}, false
	}

	// Pick the empty neighbor with the most light; ties go to the lowest
	// direction priority so the choice is stable.
	found := false
	var bestDir hexgrid.Direction
	bestLight := 0.0
	for _, dir := range hexgrid.Directions {
		nb := neighbors.Get(dir)
		if nb.Kind != NeighborTile || nb.Tile.State.Kind != StateEmpty {
			continue
		}
		if p.Bridges.Get(dir).Present() {
			continue
		}
		light := nb.Tile.Light
		if !found || light > bestLight ||
			(light == bestLight && dir.Priority() < bestDir.Priority()) {
			found = true
			bestDir = dir
			bestLight = light
		}
	}
	if !found {
		return Spread{}, false
	}

	offspring := g.offspring(bestDir.Opposite())
	return Spread{
		Direction: bestDir,
		Offspring: &offspring,
		Energy:    g.SpreadEnergy,
	}, true
}

// offspring builds the template to grow: a leaf with a branch bridge back
// toward the mother. The bridge's mother side stays open for transfer in
// both directions; the child's end is the non-exiting anchor that keeps it
// viable.
func (g *Grower) offspring(toward hexgrid.Direction) Plant {
	var bridges BridgeSet
	bridges.Set(toward, Bridge{
		Kind:     BridgeBranch,
		Exiting:  false,
		Capacity: g.BridgeCapacity,
		Mode:     TransferOpen,
	})
	return Plant{
		Bulk:     Bulk{Kind: BulkLeaf, Absorption: g.LeafAbsorption},
		Bridges:  bridges,
		Capacity: g.OffspringCapacity,
		Reserve:  g.OffspringReserve,
	}
}
