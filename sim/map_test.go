package sim

import (
	"math"
	"reflect"
	"testing"

	"github.com/RasmusBruhn/hex-plant-simulator/hexgrid"
	"github.com/RasmusBruhn/hex-plant-simulator/sun"
)

func newTestMap(w, h int, intensity float64) *Map {
	return New(hexgrid.Size{W: w, H: h}, NewSettings(), sun.NewConstant(intensity, 0))
}

func TestNewMapIsEmpty(t *testing.T) {
	m := newTestMap(4, 3, 1)

	if len(m.Tiles()) != 12 {
		t.Fatalf("len(tiles) = %d, want 12", len(m.Tiles()))
	}
	for i, tile := range m.Tiles() {
		if tile.State.Kind != StateEmpty {
			t.Errorf("tile %d not empty", i)
		}
		if tile.Transparency != 1.0 || tile.Light != 0.0 {
			t.Errorf("tile %d ambient = (%v, %v), want (1, 0)", i, tile.Transparency, tile.Light)
		}
	}
	if m.GridLayout().NColumns != 4 {
		t.Errorf("NColumns = %d, want 4", m.GridLayout().NColumns)
	}
}

func TestLightConvergesTopDown(t *testing.T) {
	const k = 0.8
	m := newTestMap(6, 5, k)

	for step := 1; step <= 7; step++ {
		m.Step()

		tiles := m.Tiles()
		for i, tile := range tiles {
			row := i / 6
			if tile.Light > k+1e-12 {
				t.Fatalf("step %d row %d: light %v exceeds sun value %v", step, row, tile.Light, k)
			}
			// Rows the light front has reached hold exactly the sun value
			// since every tile is fully transparent.
			if row < step && math.Abs(tile.Light-k) > 1e-12 {
				t.Errorf("step %d row %d: light = %v, want %v", step, row, tile.Light, k)
			}
			if row >= step && tile.Light != 0 {
				t.Errorf("step %d row %d: light = %v, want 0 (front not arrived)", step, row, tile.Light)
			}
		}
	}
}

func TestLightAttenuatesThroughOpaqueTiles(t *testing.T) {
	m := newTestMap(4, 4, 1)
	// A log is fully opaque under default settings.
	m.Place(hexgrid.Pos{X: 2, Y: 0}, Plant{Bulk: Bulk{Kind: BulkLog}, Capacity: 1})

	m.Step() // transparency of the log tile drops to 0
	m.Step() // row 0 light arrives, row 1 still fed by old row 0 light
	m.Step() // row 1 now shadowed below the log

	// Column 2 is even: its DownLeft child is (1, 1), DownRight child (2, 1).
	// Both read the log tile as one of their two upward inputs.
	shadowed := []hexgrid.Pos{{X: 1, Y: 1}, {X: 2, Y: 1}}
	for _, pos := range shadowed {
		light := m.TileAt(pos).Light
		if math.Abs(light-0.5) > 1e-12 {
			t.Errorf("tile %v light = %v, want 0.5 (one input shadowed)", pos, light)
		}
	}
}

func TestStepOrderIndependence(t *testing.T) {
	m := newTestMap(5, 4, 0.9)
	m.SetBehavior(&Grower{
		SurplusThreshold:  0.1,
		SpreadEnergy:      2,
		OffspringCapacity: 1,
		LeafAbsorption:    0.5,
		BridgeCapacity:    0.5,
	})

	// A rooted founder that will start spreading.
	founder := Plant{
		Bulk:     Bulk{Kind: BulkLog},
		Capacity: 50,
		Energy:   40,
	}
	founder.Bridges.Set(hexgrid.DownRight, Bridge{Kind: BridgeLog, Exiting: false, Mode: TransferClosed})
	m.Place(hexgrid.Pos{X: 2, Y: 3}, founder)

	// Let the colony get into a mixed state with spreads in flight.
	for i := 0; i < 4; i++ {
		m.Step()
	}

	m.sunTiles = sun.Tiles(m.model, m.time)

	forward := make([]Tile, len(m.tiles))
	for index := 0; index < len(m.tiles); index++ {
		pos := hexgrid.FromIndex(index, m.size)
		neighbors := neighborsOf(m.tiles, m.sunTiles, m.size, pos)
		forward[index] = m.tiles[index].forward(&m.settings, &neighbors, m.behavior)
	}

	reverse := make([]Tile, len(m.tiles))
	for index := len(m.tiles) - 1; index >= 0; index-- {
		pos := hexgrid.FromIndex(index, m.size)
		neighbors := neighborsOf(m.tiles, m.sunTiles, m.size, pos)
		reverse[index] = m.tiles[index].forward(&m.settings, &neighbors, m.behavior)
	}

	if !reflect.DeepEqual(forward, reverse) {
		t.Error("tick result depends on tile evaluation order")
	}
}

func TestTileDataBackground(t *testing.T) {
	m := newTestMap(3, 2, 0.5)
	m.Step()
	m.Step()

	light := m.TileDataBackground(ModeLight)
	transparency := m.TileDataBackground(ModeTransparency)
	if len(light) != 6 || len(transparency) != 6 {
		t.Fatalf("instance counts = %d, %d; want 6, 6", len(light), len(transparency))
	}
	for i := range light {
		if light[i].ColorValue != float32(m.Tiles()[i].Light) {
			t.Errorf("light instance %d = %v, want %v", i, light[i].ColorValue, m.Tiles()[i].Light)
		}
		if transparency[i].ColorValue != float32(m.Tiles()[i].Transparency) {
			t.Errorf("transparency instance %d = %v, want %v", i, transparency[i].ColorValue, m.Tiles()[i].Transparency)
		}
	}

	sunData := m.SunData()
	if len(sunData) != 3 {
		t.Fatalf("len(sun data) = %d, want 3", len(sunData))
	}
	for i, inst := range sunData {
		if math.Abs(float64(inst.ColorValue)-0.5) > 1e-6 {
			t.Errorf("sun instance %d = %v, want 0.5", i, inst.ColorValue)
		}
	}
}

func TestBackgroundModeCycling(t *testing.T) {
	if ModeLight.Next() != ModeTransparency || ModeTransparency.Next() != ModeLight {
		t.Error("Next does not cycle through both modes")
	}
	if ModeLight.Prev() != ModeTransparency || ModeTransparency.Prev() != ModeLight {
		t.Error("Prev does not cycle through both modes")
	}
	if BackgroundModeFromID(-3) != ModeLight || BackgroundModeFromID(99) != ModeTransparency {
		t.Error("FromID does not clamp out-of-range ids")
	}
}

func TestTimeAdvances(t *testing.T) {
	m := newTestMap(2, 2, 1)
	for i := 0; i < 5; i++ {
		if m.Time() != i {
			t.Fatalf("Time() = %d, want %d", m.Time(), i)
		}
		m.Step()
	}
}
