// Package telemetry collects per-window statistics about the simulated grid
// and writes them to structured run output.
package telemetry

import (
	"github.com/RasmusBruhn/hex-plant-simulator/sim"
)

// Census is a single-tick head count of the grid: population by bulk kind,
// energy pools and the ambient light fields. Taking a census never mutates
// the map.
type Census struct {
	Tick int

	// Population
	Occupied int // live plants
	Building int // accepted spreads not yet materialized
	Dying    int // plants in their one-tick dead transient
	Births   int // plants that materialized this tick
	Bridges  int // bridge ends over all live plants

	// Population by bulk kind
	Logs       int
	SugarBulbs int
	Leaves     int
	Seeds      int
	RipeSeeds  int

	// Energy pools
	TotalEnergy   float64
	TotalCapacity float64
	Energies      []float64 // per-plant energy, for distribution stats

	// Ambient fields, averaged over all tiles
	MeanLight        float64
	MeanTransparency float64
	MeanSun          float64
}

// TakeCensus walks the current grid once and tallies it.
func TakeCensus(m *sim.Map) Census {
	c := Census{Tick: m.Time()}

	tiles := m.Tiles()
	for i := range tiles {
		tile := &tiles[i]
		c.MeanLight += tile.Light
		c.MeanTransparency += tile.Transparency

		switch tile.State.Kind {
		case sim.StateBuilding:
			c.Building++
		case sim.StateOccupied:
			plant := &tile.State.Plant
			if !plant.Alive {
				c.Dying++
				continue
			}
			c.Occupied++
			if plant.Age == 0 {
				c.Births++
			}
			c.Bridges += plant.Bridges.Count()
			c.TotalEnergy += plant.Energy
			c.TotalCapacity += plant.Capacity
			c.Energies = append(c.Energies, plant.Energy)

			switch plant.Bulk.Kind {
			case sim.BulkLog:
				c.Logs++
			case sim.BulkSugarBulb:
				c.SugarBulbs++
			case sim.BulkLeaf:
				c.Leaves++
			case sim.BulkSeed:
				c.Seeds++
			case sim.BulkRipeSeed:
				c.RipeSeeds++
			}
		}
	}
	if len(tiles) > 0 {
		c.MeanLight /= float64(len(tiles))
		c.MeanTransparency /= float64(len(tiles))
	}

	sunData := m.SunData()
	for _, inst := range sunData {
		c.MeanSun += float64(inst.ColorValue)
	}
	if len(sunData) > 0 {
		c.MeanSun /= float64(len(sunData))
	}

	return c
}
