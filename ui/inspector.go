package ui

import (
	"fmt"

	"github.com/RasmusBruhn/hex-plant-simulator/hexgrid"
	"github.com/RasmusBruhn/hex-plant-simulator/sim"
)

// TilePanel renders the details of a clicked tile, anchored to the bottom
// left of the screen.
type TilePanel struct {
	renderer *Renderer
	width    int32
}

// NewTilePanel creates a new tile inspector panel.
func NewTilePanel(width int32) *TilePanel {
	return &TilePanel{
		renderer: NewRenderer(),
		width:    width,
	}
}

// Draw renders the inspector for the selected tile.
func (p *TilePanel) Draw(screenHeight int32, pos hexgrid.Pos, tile *sim.Tile, settings *sim.Settings) {
	r := p.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	lines := p.countLines(tile)
	panelHeight := int32(lines)*lineHeight + padding*2 + 8
	x := padding
	y := screenHeight - panelHeight - padding

	r.DrawPanel(x, y, p.width, panelHeight)

	cx := x + padding
	cy := y + padding

	cy = r.DrawSectionHeader(cx, cy, fmt.Sprintf("Tile (%d, %d)", pos.X, pos.Y))
	cy = r.DrawLabelValue(cx, cy, "Light", fmt.Sprintf("%.3f", tile.Light))
	cy = r.DrawLabelValue(cx, cy, "Transparency", fmt.Sprintf("%.3f", tile.Transparency))

	switch tile.State.Kind {
	case sim.StateEmpty:
		r.DrawLabelValue(cx, cy, "State", "empty")
	case sim.StateBuilding:
		site := &tile.State.Build
		cy = r.DrawLabelValue(cx, cy, "State", "building")
		cy = r.DrawLabelValue(cx, cy, "Bulk", site.Plant.Bulk.Kind.String())
		cy = r.DrawLabelValue(cx, cy, "Mother", site.Mother.String())
		budget := site.Plant.BuildCost(settings)
		r.DrawEnergyBar(cx, cy, "Budget", float32(site.Energy), float32(budget), p.width-padding*2)
	case sim.StateOccupied:
		plant := &tile.State.Plant
		status := "alive"
		if !plant.Alive {
			status = "dying"
		}
		cy = r.DrawLabelValue(cx, cy, "State", "occupied, "+status)
		cy = r.DrawLabelValue(cx, cy, "Bulk", plant.Bulk.Kind.String())
		if plant.Bulk.Kind == sim.BulkLeaf {
			cy = r.DrawLabelValue(cx, cy, "Absorption", fmt.Sprintf("%.2f", plant.Bulk.Absorption))
		}
		cy = r.DrawLabelValue(cx, cy, "Age", fmt.Sprintf("%d (lineage %d)", plant.Age, plant.TotalAge))
		cy = r.DrawEnergyBar(cx, cy, "Energy", float32(plant.Energy), float32(plant.Capacity), p.width-padding*2)
		cy = r.DrawLabelValue(cx, cy, "Reserve", fmt.Sprintf("%.1f", plant.Reserve))
		cy = r.DrawLabelValue(cx, cy, "Upkeep", fmt.Sprintf("%.3f/tick", plant.RunCost(settings)))

		for _, dir := range hexgrid.Directions {
			bridge := plant.Bridges.Get(dir)
			if !bridge.Present() {
				continue
			}
			role := "anchor"
			if bridge.Exiting {
				role = "exiting"
			}
			cy = r.DrawLabelValue(cx, cy, "Bridge "+dir.String(),
				fmt.Sprintf("%s, cap %.1f, %s", bridge.Kind, bridge.Capacity, role))
		}
	}
}

// countLines returns how many panel lines the tile's state needs.
func (p *TilePanel) countLines(tile *sim.Tile) int {
	switch tile.State.Kind {
	case sim.StateBuilding:
		return 7
	case sim.StateOccupied:
		plant := &tile.State.Plant
		lines := 9 + plant.Bridges.Count()
		if plant.Bulk.Kind == sim.BulkLeaf {
			lines++
		}
		return lines
	default:
		return 4
	}
}
