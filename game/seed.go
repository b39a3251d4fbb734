package game

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/RasmusBruhn/hex-plant-simulator/hexgrid"
	"github.com/RasmusBruhn/hex-plant-simulator/sim"
)

// seedFounders scatters founder plants along the bottom row wherever a noise
// field exceeds the configured threshold, and returns how many were placed.
// Founders are rooted logs: their bridge into the floor anchors the colony,
// and everything else grows out of them through the spread protocol.
func (g *Game) seedFounders() int {
	seeding := g.cfg.Seeding
	size := g.m.Size()
	noise := opensimplex.NewNormalized(g.seed)

	placed := 0
	for x := 0; x < size.W; x++ {
		if noise.Eval2(float64(x)*seeding.NoiseScale, 0) <= seeding.Threshold {
			continue
		}
		pos := hexgrid.Pos{X: x, Y: size.H - 1}
		g.m.Place(pos, g.founder())
		placed++
	}
	return placed
}

// founder builds the template placed on a seeded tile: a log with a root
// bridge pointing into the ground below the last row.
func (g *Game) founder() sim.Plant {
	seeding := g.cfg.Seeding

	var bridges sim.BridgeSet
	bridges.Set(hexgrid.DownRight, sim.Bridge{
		Kind:     sim.BridgeLog,
		Exiting:  false,
		Capacity: g.cfg.Growth.BridgeCapacity,
		Mode:     sim.TransferClosed,
	})

	return sim.Plant{
		Bulk:     sim.Bulk{Kind: sim.BulkLog},
		Bridges:  bridges,
		Capacity: seeding.FounderCapacity,
		Energy:   seeding.FounderEnergy,
		Reserve:  seeding.FounderReserve,
	}
}
