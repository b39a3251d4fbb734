package sim

import (
	"math"

	"github.com/RasmusBruhn/hex-plant-simulator/hexgrid"
)

// fanOut is the fixed number of neighbor directions energy can be shared
// with. The per-neighbor share and spare-capacity quotas divide by this
// regardless of how many bridges are actually attached; if the topology ever
// grows a different neighbor count this must follow it.
const fanOut = float64(hexgrid.NumDirections)

// Plant is a live plant tile: its bulk, its links to neighboring plants and
// its energy economy.
type Plant struct {
	// Bulk is the body of the plant.
	Bulk Bulk
	// Bridges are the links to adjacent plant tiles, one slot per direction.
	Bridges BridgeSet
	// Age counts ticks since this tile was built.
	Age int
	// TotalAge counts ticks across the plant's whole lineage.
	TotalAge int
	// Alive is cleared when the plant fails viability; the tile stays
	// occupied for one more tick so neighbors observe the death, then
	// empties.
	Alive bool
	// Energy is the stored energy. Never exceeds Capacity.
	Energy float64
	// Capacity is the maximum energy the plant can store.
	Capacity float64
	// Reserve is the floor below which the plant will not export energy.
	Reserve float64
	// Spread is the state of an in-flight spread attempt.
	Spread Spread
}

// bulkBuildCost is the cost of building the bulk alone: flat base plus
// production and storage surcharges scaled by the plant's own capacity.
func (p *Plant) bulkBuildCost(settings *Settings) float64 {
	return p.Bulk.buildCostBase(settings) +
		p.Bulk.productionCost(settings) +
		p.Bulk.storageCost(settings, p.Capacity)
}

// bulkRunCost is the per-step upkeep of the bulk, proportional to its build
// cost.
func (p *Plant) bulkRunCost(settings *Settings) float64 {
	return p.bulkBuildCost(settings) * p.Bulk.runFactor(settings)
}

// BuildCost is the total cost of building the plant: its bulk plus half of
// every attached bridge. The other half is attributed to the plant on the
// far end of each bridge.
func (p *Plant) BuildCost(settings *Settings) float64 {
	cost := p.bulkBuildCost(settings)
	for _, b := range p.Bridges {
		if b.Present() {
			cost += 0.5 * b.buildCost(settings)
		}
	}
	return cost
}

// RunCost is the total per-step upkeep of the plant: its bulk plus half of
// every attached bridge.
func (p *Plant) RunCost(settings *Settings) float64 {
	cost := p.bulkRunCost(settings)
	for _, b := range p.Bridges {
		if b.Present() {
			cost += 0.5 * b.runCost(settings)
		}
	}
	return cost
}

// mutate returns the offspring template as it will be built. Hook for future
// genetic variation; identity for now.
func (p *Plant) mutate(_ *Settings) Plant {
	return *p
}

// forward advances the plant one tick. The caller guarantees the plant was
// alive at the start of the tick; a plant that died last tick is removed by
// the state machine before forward is reached. The returned plant may have
// Alive cleared, which removes it next tick.
func (p *Plant) forward(settings *Settings, tile *Tile, neighbors *Neighbors, behavior Behavior) Plant {
	next := *p

	next.pruneBridges(neighbors)

	// Advance the spread handshake. Resolution either splices the mirrored
	// bridge of a successfully building offspring into our own set, or
	// refunds the earmarked energy.
	energy := p.Energy
	switch p.Spread.Phase {
	case SpreadTrying:
		next.Spread.Phase = SpreadWaiting
	case SpreadWaiting:
		energy = resolveSpread(&next.Bridges, &p.Spread, energy, neighbors)
		next.Spread = Spread{}
	}

	// Upkeep is computed over the bridge set the plant carried into the
	// tick, before pruning: structure decays whether or not the far end
	// survived.
	cost := p.RunCost(settings)
	gain := p.Bulk.LightGain(tile.Light)
	transfer := p.transferEnergy(&next.Bridges, neighbors)

	next.Energy = math.Min(p.Capacity, energy+gain+transfer-cost)
	next.Alive = next.Energy >= 0 && next.Bridges.HasNonExiting()
	next.Age++
	next.TotalAge++

	// A settled plant may start a new spread attempt; the earmarked energy
	// leaves its pool immediately.
	if behavior != nil && next.Alive && next.Spread.Phase == SpreadNothing {
		if spread, ok := behavior.Decide(&next, tile, neighbors, settings); ok {
			next.Spread = spread
			next.Spread.Phase = SpreadTrying
			next.Energy -= spread.Energy
		}
	}

	return next
}

// pruneBridges drops every bridge whose far end is not an occupied, alive
// plant. The mirrored side disappears symmetrically because the neighbor
// runs the same rule. Bridges pointing into the floor below the last row are
// roots and stay: the ground is what ultimately keeps a plant network
// viable.
func (p *Plant) pruneBridges(neighbors *Neighbors) {
	for _, dir := range hexgrid.Directions {
		if !p.Bridges[dir].Present() {
			continue
		}
		nb := neighbors.Get(dir)
		if nb.Kind == NeighborNone && dir.IsDown() {
			continue
		}
		if nb.livePlant() == nil {
			p.Bridges.Clear(dir)
		}
	}
}

// resolveSpread finishes a spread attempt one tick after the target tile had
// the chance to accept it. If the target is building our offspring and the
// offspring carries its bridge back toward us, the attempt succeeded: the
// mirrored end is spliced into our own set and the earmarked energy counts
// as spent. Otherwise the energy returns to the plant.
func resolveSpread(bridges *BridgeSet, spread *Spread, selfEnergy float64, neighbors *Neighbors) float64 {
	nb := neighbors.Get(spread.Direction)
	if nb.Kind == NeighborTile && nb.Tile.State.Kind == StateBuilding {
		site := &nb.Tile.State.Build
		if site.Mother == spread.Direction.Opposite() {
			if bridge := site.Plant.Bridges.Get(site.Mother); bridge.Present() {
				bridges.Set(spread.Direction, bridge.Opposite())
				return selfEnergy
			}
		}
	}
	return selfEnergy + spread.Energy
}

// transferEnergy resolves the directional energy flow between this plant and
// its bridged neighbors, summed over all six directions. Each side offers at
// most 1/6 of its above-reserve energy per direction and accepts at most 1/6
// of its above-reserve headroom, clamped by the bridge capacity and gated by
// the bridge transfer mode. Both ends compute the same flow with opposite
// sign, so transfer is zero-sum per step.
func (p *Plant) transferEnergy(bridges *BridgeSet, neighbors *Neighbors) float64 {
	selfShare := math.Max(0, (p.Energy-p.Reserve)/fanOut)
	selfSpare := math.Max(0, (p.Capacity-p.Reserve)/fanOut-selfShare)

	total := 0.0
	for _, dir := range hexgrid.Directions {
		bridge := bridges.Get(dir)
		if !bridge.Present() {
			continue
		}
		other := neighbors.Get(dir).livePlant()
		if other == nil {
			continue
		}

		otherShare := math.Max(0, (other.Energy-other.Reserve)/fanOut)
		otherSpare := math.Max(0, (other.Capacity-other.Reserve)/fanOut-otherShare)

		lower := 0.0
		if bridge.Mode.AllowsOut() {
			lower = -math.Min(bridge.Capacity, otherSpare)
		}
		upper := 0.0
		if bridge.Mode.AllowsIn() {
			upper = math.Min(bridge.Capacity, selfSpare)
		}

		flow := otherShare - selfShare
		if flow > upper {
			flow = upper
		}
		if flow < lower {
			flow = lower
		}
		total += flow
	}
	return total
}
