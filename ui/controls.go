package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RasmusBruhn/hex-plant-simulator/sim"
)

// Controls is the mutable simulation control state the panel edits in place.
type Controls struct {
	Paused         bool
	StepsPerUpdate float32
	Background     sim.BackgroundMode
	ShowPlants     bool
}

// Actions are one-frame events fired by panel buttons.
type Actions struct {
	StepOnce  bool
	ResetView bool
}

// ControlsPanel renders the interactive control panel, anchored to the top
// right of the screen.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		width:    width,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (p *ControlsPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Draw renders the panel and applies widget interactions to the controls.
func (p *ControlsPanel) Draw(screenWidth int32, c *Controls) Actions {
	var actions Actions
	if !p.visible {
		return actions
	}

	r := p.renderer
	padding := r.Theme.Padding
	x := screenWidth - p.width - padding
	y := padding

	rowHeight := float32(24)
	innerW := float32(p.width) - 2*float32(padding)
	panelHeight := int32(6*rowHeight) + padding*3

	r.DrawPanel(x, y, p.width, panelHeight)

	wx := float32(x + padding)
	wy := float32(y + padding)

	label := "Pause"
	if c.Paused {
		label = "Resume"
	}
	if gui.Button(rl.NewRectangle(wx, wy, innerW/2-4, rowHeight-4), label) {
		c.Paused = !c.Paused
	}
	if gui.Button(rl.NewRectangle(wx+innerW/2+4, wy, innerW/2-8, rowHeight-4), "Step") {
		actions.StepOnce = true
	}
	wy += rowHeight

	c.StepsPerUpdate = gui.SliderBar(
		rl.NewRectangle(wx+50, wy, innerW-100, rowHeight-8),
		"speed", fmt.Sprintf("%dx", int(c.StepsPerUpdate)),
		c.StepsPerUpdate, 1, 60,
	)
	wy += rowHeight

	if gui.Button(rl.NewRectangle(wx, wy, innerW, rowHeight-4), "Field: "+c.Background.String()) {
		c.Background = c.Background.Next()
	}
	wy += rowHeight

	label = "Plants: hidden"
	if c.ShowPlants {
		label = "Plants: shown"
	}
	if gui.Button(rl.NewRectangle(wx, wy, innerW, rowHeight-4), label) {
		c.ShowPlants = !c.ShowPlants
	}
	wy += rowHeight

	if gui.Button(rl.NewRectangle(wx, wy, innerW, rowHeight-4), "Reset view") {
		actions.ResetView = true
	}

	return actions
}
