package telemetry

import (
	"math"
	"testing"

	"github.com/RasmusBruhn/hex-plant-simulator/hexgrid"
	"github.com/RasmusBruhn/hex-plant-simulator/sim"
	"github.com/RasmusBruhn/hex-plant-simulator/sun"
)

func TestTakeCensus(t *testing.T) {
	m := sim.New(hexgrid.Size{W: 4, H: 3}, sim.NewSettings(), sun.NewConstant(0.5, 0))

	log := sim.Plant{Bulk: sim.Bulk{Kind: sim.BulkLog}, Capacity: 10, Energy: 6}
	log.Bridges.Set(hexgrid.DownRight, sim.Bridge{Kind: sim.BridgeLog})
	leaf := sim.Plant{Bulk: sim.Bulk{Kind: sim.BulkLeaf, Absorption: 0.5}, Capacity: 2, Energy: 1}
	m.Place(hexgrid.Pos{X: 0, Y: 2}, log)
	m.Place(hexgrid.Pos{X: 1, Y: 2}, leaf)

	census := TakeCensus(m)
	if census.Occupied != 2 {
		t.Errorf("occupied = %d, want 2", census.Occupied)
	}
	if census.Logs != 1 || census.Leaves != 1 {
		t.Errorf("kinds = %d logs, %d leaves; want 1 and 1", census.Logs, census.Leaves)
	}
	if census.Bridges != 1 {
		t.Errorf("bridge ends = %d, want 1", census.Bridges)
	}
	if census.TotalEnergy != 7 || census.TotalCapacity != 12 {
		t.Errorf("pools = %v/%v, want 7/12", census.TotalEnergy, census.TotalCapacity)
	}
	// Freshly placed plants count as births.
	if census.Births != 2 {
		t.Errorf("births = %d, want 2", census.Births)
	}
	if len(census.Energies) != 2 {
		t.Errorf("len(energies) = %d, want 2", len(census.Energies))
	}
	// All tiles start fully transparent.
	if math.Abs(census.MeanTransparency-1.0) > 1e-12 {
		t.Errorf("mean transparency = %v, want 1", census.MeanTransparency)
	}
}

func TestCensusCountsDyingSeparately(t *testing.T) {
	m := sim.New(hexgrid.Size{W: 3, H: 2}, sim.NewSettings(), sun.NewConstant(0, 0))
	// No bridges at all, so the plant dies on the first step.
	m.Place(hexgrid.Pos{X: 1, Y: 0}, sim.Plant{Bulk: sim.Bulk{Kind: sim.BulkLog}, Capacity: 5, Energy: 5})

	m.Step()
	census := TakeCensus(m)
	if census.Occupied != 0 || census.Dying != 1 {
		t.Errorf("occupied = %d dying = %d, want 0 and 1", census.Occupied, census.Dying)
	}
	if census.TotalEnergy != 0 {
		t.Errorf("dying plants must not count into pools, got %v", census.TotalEnergy)
	}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(3)

	if c.WindowTicks() != 3 {
		t.Fatalf("WindowTicks = %d, want 3", c.WindowTicks())
	}
	if c.ShouldFlush(2) {
		t.Error("flush requested before the window elapsed")
	}
	if !c.ShouldFlush(3) {
		t.Error("flush not requested after the window elapsed")
	}

	c.Observe(Census{Tick: 1, Births: 2, Dying: 1, MeanLight: 0.2, MeanSun: 1.0})
	c.Observe(Census{Tick: 2, Births: 1, MeanLight: 0.4, MeanSun: 1.0})
	c.Observe(Census{
		Tick:          3,
		Occupied:      5,
		Building:      1,
		Births:        1,
		MeanLight:     0.6,
		MeanSun:       1.0,
		TotalEnergy:   10,
		TotalCapacity: 40,
		Energies:      []float64{2, 2, 2, 2, 2},
	})

	stats := c.Flush(3)
	if stats.WindowStartTick != 0 || stats.WindowEndTick != 3 {
		t.Errorf("window = [%d, %d], want [0, 3]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.Births != 4 || stats.Deaths != 1 {
		t.Errorf("births = %d deaths = %d, want 4 and 1", stats.Births, stats.Deaths)
	}
	if stats.PlantCount != 5 || stats.BuildingCount != 1 {
		t.Errorf("population = %d + %d building, want 5 + 1", stats.PlantCount, stats.BuildingCount)
	}
	if math.Abs(stats.MeanLight-0.4) > 1e-12 {
		t.Errorf("mean light = %v, want 0.4 (window average)", stats.MeanLight)
	}
	if math.Abs(stats.StoredFraction-0.25) > 1e-12 {
		t.Errorf("stored fraction = %v, want 0.25", stats.StoredFraction)
	}
	if stats.EnergyMean != 2 || stats.EnergyStd != 0 {
		t.Errorf("energy mean/std = %v/%v, want 2/0", stats.EnergyMean, stats.EnergyStd)
	}

	// The flush resets the window.
	if c.ShouldFlush(4) {
		t.Error("window did not reset after flush")
	}
	next := c.Flush(6)
	if next.WindowStartTick != 3 || next.Births != 0 || next.MeanLight != 0 {
		t.Errorf("counters leaked across windows: %+v", next)
	}
}
