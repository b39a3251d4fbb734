package sim

import (
	"math"
	"testing"

	"github.com/RasmusBruhn/hex-plant-simulator/hexgrid"
	"github.com/RasmusBruhn/hex-plant-simulator/sun"
)

// leafTemplate is an offspring template carrying its bridge back toward the
// mother in the given direction.
func leafTemplate(toward hexgrid.Direction, bridgeCapacity float64) Plant {
	p := Plant{
		Bulk:     Bulk{Kind: BulkLeaf, Absorption: 0.5},
		Capacity: 1,
	}
	p.Bridges.Set(toward, Bridge{
		Kind:     BridgeBranch,
		Exiting:  false,
		Capacity: bridgeCapacity,
		Mode:     TransferOpen,
	})
	return p
}

// spreadingMother is a rooted plant on the bottom row with a spread attempt
// already initiated toward dir. The earmarked energy is assumed to have left
// the pool before placement.
func spreadingMother(dir hexgrid.Direction, template *Plant, energy, earmark float64) Plant {
	p := rooted(Bulk{Kind: BulkLog}, 50, energy, 0)
	p.Spread = Spread{
		Phase:     SpreadTrying,
		Direction: dir,
		Offspring: template,
		Energy:    earmark,
	}
	return p
}

func TestSpreadHandshakeSucceeds(t *testing.T) {
	m := newTestMap(5, 3, 0)
	motherPos := hexgrid.Pos{X: 1, Y: 2}
	childPos := hexgrid.Pos{X: 2, Y: 2}

	template := leafTemplate(hexgrid.Left, 0.5)
	m.Place(motherPos, spreadingMother(hexgrid.Right, &template, 30, 2))

	m.Step()
	child := m.TileAt(childPos)
	if child.State.Kind != StateBuilding {
		t.Fatalf("after one step the target should be building, got kind %v", child.State.Kind)
	}
	if child.State.Build.Mother != hexgrid.Left {
		t.Errorf("build site mother = %v, want %v", child.State.Build.Mother, hexgrid.Left)
	}
	if child.State.Build.Energy != 2 {
		t.Errorf("build site energy = %v, want 2", child.State.Build.Energy)
	}
	mother := m.TileAt(motherPos)
	if mother.State.Plant.Spread.Phase != SpreadWaiting {
		t.Errorf("mother phase = %v, want waiting", mother.State.Plant.Spread.Phase)
	}

	m.Step()
	child = m.TileAt(childPos)
	if child.State.Kind != StateOccupied || !child.State.Plant.Alive {
		t.Fatal("offspring did not materialize")
	}
	if child.State.Plant.Age != 0 {
		t.Errorf("offspring age = %d, want 0", child.State.Plant.Age)
	}
	// Template cost: production 0.25 + storage 1 + half a branch bridge
	// 0.125 = 1.375, leaving 0.625 of the 2 allocated.
	if math.Abs(child.State.Plant.Energy-0.625) > 1e-12 {
		t.Errorf("offspring energy = %v, want 0.625", child.State.Plant.Energy)
	}
	childEnd := child.State.Plant.Bridges.Get(hexgrid.Left)
	if !childEnd.Present() || childEnd.Exiting {
		t.Errorf("offspring bridge = %+v, want present and non-exiting", childEnd)
	}

	mother = m.TileAt(motherPos)
	motherEnd := mother.State.Plant.Bridges.Get(hexgrid.Right)
	if motherEnd != childEnd.Opposite() {
		t.Errorf("mother bridge = %+v, want mirror of %+v", motherEnd, childEnd)
	}
	if mother.State.Plant.Spread.Phase != SpreadNothing {
		t.Error("mother spread state not cleared after resolution")
	}
	// The earmark was spent on the offspring, not refunded.
	if math.Abs(mother.State.Plant.Energy-30) > 1e-12 {
		t.Errorf("mother energy = %v, want 30", mother.State.Plant.Energy)
	}

	// The pair survives together.
	m.Step()
	if !m.TileAt(motherPos).State.Plant.Alive || !m.TileAt(childPos).State.Plant.Alive {
		t.Error("linked pair did not survive the next step")
	}
}

func TestSpreadRefundedWhenTargetBlocked(t *testing.T) {
	m := newTestMap(5, 3, 0)
	motherPos := hexgrid.Pos{X: 1, Y: 2}
	childPos := hexgrid.Pos{X: 2, Y: 2}

	template := leafTemplate(hexgrid.Left, 0.5)
	m.Place(motherPos, spreadingMother(hexgrid.Right, &template, 30, 2))
	m.Place(childPos, rooted(Bulk{Kind: BulkLog}, 10, 10, 0))

	m.Step()
	m.Step()
	mother := m.TileAt(motherPos)
	if mother.State.Plant.Bridges.Get(hexgrid.Right).Present() {
		t.Error("mother grew a bridge into an occupied tile")
	}
	if math.Abs(mother.State.Plant.Energy-32) > 1e-12 {
		t.Errorf("mother energy = %v, want 32 (earmark refunded)", mother.State.Plant.Energy)
	}
	if mother.State.Plant.Spread.Phase != SpreadNothing {
		t.Error("failed spread not cleared")
	}
}

func TestSpreadFailsWhenEnergyTooLow(t *testing.T) {
	m := newTestMap(5, 3, 0)
	motherPos := hexgrid.Pos{X: 1, Y: 2}
	childPos := hexgrid.Pos{X: 2, Y: 2}

	// The allocation does not cover the 1.375 template cost.
	template := leafTemplate(hexgrid.Left, 0.5)
	m.Place(motherPos, spreadingMother(hexgrid.Right, &template, 30, 1))

	m.Step()
	if m.TileAt(childPos).State.Kind != StateBuilding {
		t.Fatal("target should accept the spread before costing it")
	}

	m.Step()
	if m.TileAt(childPos).State.Kind != StateEmpty {
		t.Error("underfunded build site did not clear")
	}
	// The mother splices against the building snapshot before the build
	// fails, so the energy is lost and the dangling bridge prunes next step.
	mother := m.TileAt(motherPos)
	if !mother.State.Plant.Bridges.Get(hexgrid.Right).Present() {
		t.Fatal("mother should hold the spliced bridge for one step")
	}
	if math.Abs(mother.State.Plant.Energy-30) > 1e-12 {
		t.Errorf("mother energy = %v, want 30 (allocation spent)", mother.State.Plant.Energy)
	}

	m.Step()
	if m.TileAt(motherPos).State.Plant.Bridges.Get(hexgrid.Right).Present() {
		t.Error("dangling bridge was not pruned")
	}
}

func TestSpreadFailsWhenMotherDies(t *testing.T) {
	m := newTestMap(5, 3, 0)
	motherPos := hexgrid.Pos{X: 1, Y: 2}
	childPos := hexgrid.Pos{X: 2, Y: 2}

	template := leafTemplate(hexgrid.Left, 0.5)
	m.Place(motherPos, spreadingMother(hexgrid.Right, &template, 30, 2))

	m.Step()
	m.TileAt(motherPos).State.Plant.Alive = false

	m.Step()
	if m.TileAt(childPos).State.Kind != StateEmpty {
		t.Error("build site finished without a live mother")
	}
}

func TestSpreadPriorityResolvesContention(t *testing.T) {
	m := newTestMap(5, 4, 0)
	target := hexgrid.Pos{X: 2, Y: 2}
	sidePos := hexgrid.Pos{X: 1, Y: 2}  // spreads Right, priority 2
	upperPos := hexgrid.Pos{X: 1, Y: 1} // spreads DownRight, priority 0

	sideTpl := leafTemplate(hexgrid.Left, 0.5)
	upperTpl := leafTemplate(hexgrid.UpLeft, 0.5)

	side := rooted(Bulk{Kind: BulkLog}, 50, 30, 0)
	side.Spread = Spread{Phase: SpreadTrying, Direction: hexgrid.Right, Offspring: &sideTpl, Energy: 2}
	upper := rooted(Bulk{Kind: BulkLog}, 50, 30, 0)
	upper.Spread = Spread{Phase: SpreadTrying, Direction: hexgrid.DownRight, Offspring: &upperTpl, Energy: 3}
	m.Place(sidePos, side)
	m.Place(upperPos, upper)

	m.Step()
	tile := m.TileAt(target)
	if tile.State.Kind != StateBuilding {
		t.Fatal("contended tile did not accept any spread")
	}
	// Downward spreads outrank horizontal ones.
	if tile.State.Build.Mother != hexgrid.UpLeft {
		t.Errorf("build site mother = %v, want %v", tile.State.Build.Mother, hexgrid.UpLeft)
	}
	if tile.State.Build.Energy != 3 {
		t.Errorf("build site energy = %v, want the winner's allocation 3", tile.State.Build.Energy)
	}
}

func TestGrowerDecide(t *testing.T) {
	g := &Grower{
		SurplusThreshold:  1,
		SpreadEnergy:      2,
		OffspringCapacity: 1,
		LeafAbsorption:    0.5,
		BridgeCapacity:    0.5,
	}
	m := newTestMap(5, 3, 0)
	pos := hexgrid.Pos{X: 2, Y: 1}
	m.Place(pos, rooted(Bulk{Kind: BulkLog}, 50, 30, 0))

	// Make the left neighbor the best-lit empty tile.
	m.TileAt(hexgrid.Pos{X: 1, Y: 1}).Light = 0.9
	m.TileAt(hexgrid.Pos{X: 3, Y: 1}).Light = 0.4

	m.sunTiles = sun.Tiles(m.model, 0)
	neighbors := neighborsOf(m.tiles, m.sunTiles, m.size, pos)
	plant := &m.TileAt(pos).State.Plant

	spread, ok := g.Decide(plant, m.TileAt(pos), &neighbors, m.Settings())
	if !ok {
		t.Fatal("well-fed plant refused to spread")
	}
	if spread.Direction != hexgrid.Left {
		t.Errorf("direction = %v, want %v (best lit)", spread.Direction, hexgrid.Left)
	}
	if spread.Offspring == nil || !spread.Offspring.Bridges.Get(hexgrid.Right).Present() {
		t.Error("offspring template lacks its bridge back toward the mother")
	}
	if spread.Energy != 2 {
		t.Errorf("earmark = %v, want 2", spread.Energy)
	}

	// Below the surplus threshold the plant sits still.
	plant.Energy = 2.5
	if _, ok := g.Decide(plant, m.TileAt(pos), &neighbors, m.Settings()); ok {
		t.Error("plant spread without enough surplus")
	}
}
