// Package game wires the simulation core, renderer, camera, UI and telemetry
// into a runnable application. It owns the run loop state; the simulation
// itself lives in sim and knows nothing about frames or windows.
package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RasmusBruhn/hex-plant-simulator/camera"
	"github.com/RasmusBruhn/hex-plant-simulator/config"
	"github.com/RasmusBruhn/hex-plant-simulator/hexgrid"
	"github.com/RasmusBruhn/hex-plant-simulator/renderer"
	"github.com/RasmusBruhn/hex-plant-simulator/sim"
	"github.com/RasmusBruhn/hex-plant-simulator/telemetry"
	"github.com/RasmusBruhn/hex-plant-simulator/ui"
)

// Options configures a game instance beyond what the config file carries.
// Zero values defer to the loaded config.
type Options struct {
	// Seed overrides the founder noise seed. 0 defers to the config, which
	// in turn falls back to the clock.
	Seed int64
	// LogStats emits window stats through slog when set.
	LogStats bool
	// StatsWindow overrides the telemetry window length in ticks.
	StatsWindow int
	// OutputDir overrides the run output directory. "-" disables output.
	OutputDir string
	// Headless skips all rendering state; only UpdateHeadless may be called.
	Headless bool
	// StepsPerUpdate overrides how many ticks one update call runs.
	StepsPerUpdate int
}

// Game holds the complete application state.
type Game struct {
	cfg    *config.Config
	m      *sim.Map
	grower *sim.Grower

	// Rendering, nil in headless mode
	grid     *renderer.GridRenderer
	camera   *camera.Camera
	hud      *ui.HUD
	panel    *ui.ControlsPanel
	tile     *ui.TilePanel
	controls ui.Controls
	selected *hexgrid.Pos

	// Telemetry, nil when disabled
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	census    telemetry.Census
	logStats  bool

	seed     int64
	headless bool

	screenWidth, screenHeight float32
}

// New creates a game from the loaded config and the given options.
func New(cfg *config.Config, opts Options) (*Game, error) {
	settings := cfg.Settings()
	m := sim.New(cfg.GridSize(), settings, cfg.SunModel())
	grower := cfg.Grower()
	m.SetBehavior(grower)

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Seeding.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:      cfg,
		m:        m,
		grower:   grower,
		seed:     seed,
		headless: opts.Headless,
		logStats: opts.LogStats,
	}

	founders := g.seedFounders()
	slog.Info("world seeded",
		"seed", seed,
		"grid", cfg.GridSize(),
		"founders", founders,
	)
	if founders == 0 {
		slog.Warn("no founders placed, the colony will stay empty",
			"threshold", cfg.Seeding.Threshold)
	}

	window := cfg.Telemetry.StatsWindow
	if opts.StatsWindow > 0 {
		window = opts.StatsWindow
	}
	g.collector = telemetry.NewCollector(window)

	outputDir := cfg.Telemetry.OutputDir
	if opts.OutputDir != "" {
		outputDir = opts.OutputDir
	}
	if outputDir == "-" {
		outputDir = ""
	}
	output, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return nil, err
	}
	g.output = output
	if output != nil {
		if err := output.WriteConfig(cfg); err != nil {
			return nil, err
		}
		slog.Info("telemetry output enabled", "dir", output.Dir(), "run_id", output.RunID())
	}

	steps := cfg.Simulation.StepsPerUpdate
	if opts.StepsPerUpdate > 0 {
		steps = opts.StepsPerUpdate
	}
	g.controls = ui.Controls{
		StepsPerUpdate: float32(steps),
		Background:     sim.ModeLight,
		ShowPlants:     true,
	}

	if !opts.Headless {
		g.screenWidth = cfg.Derived.ScreenW32
		g.screenHeight = cfg.Derived.ScreenH32
		g.grid = renderer.NewGridRenderer(m.Size(), g.screenWidth, g.screenHeight)
		g.camera = camera.New(g.screenWidth, g.screenHeight, g.screenWidth, g.screenHeight)
		g.hud = ui.NewHUD()
		g.panel = ui.NewControlsPanel(220)
		g.tile = ui.NewTilePanel(300)
	}

	return g, nil
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int {
	return g.m.Time()
}

// Map exposes the simulated grid.
func (g *Game) Map() *sim.Map {
	return g.m
}

// Update runs one frame of the windowed loop: input, simulation steps and
// telemetry.
func (g *Game) Update() {
	g.handleInput()

	if g.controls.Paused {
		return
	}
	for i := 0; i < int(g.controls.StepsPerUpdate); i++ {
		g.step()
	}
}

// UpdateHeadless advances the simulation without any window or input.
func (g *Game) UpdateHeadless() {
	for i := 0; i < int(g.controls.StepsPerUpdate); i++ {
		g.step()
	}
}

// step advances the simulation one tick and feeds the telemetry pipeline.
func (g *Game) step() {
	g.m.Step()
	g.observeTick()
}

// Draw renders the frame: the grid under the camera transform, then the
// screen-space UI.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 12, G: 14, B: 18, A: 255})

	cam2d := rl.Camera2D{
		Target: rl.Vector2{X: g.camera.X, Y: g.camera.Y},
		Offset: rl.Vector2{X: g.camera.ViewportW / 2, Y: g.camera.ViewportH / 2},
		Zoom:   g.camera.Zoom,
	}
	rl.BeginMode2D(cam2d)
	for _, dx := range g.wrapOffsets() {
		rl.PushMatrix()
		rl.Translatef(dx, 0, 0)
		g.drawWorld()
		rl.PopMatrix()
	}
	rl.EndMode2D()

	g.drawUI()

	rl.EndDrawing()
}

// drawWorld draws one copy of the world in world coordinates.
func (g *Game) drawWorld() {
	g.grid.Background(g.m.TileDataBackground(g.controls.Background), g.controls.Background)
	g.grid.Sun(g.m.SunData())
	if g.controls.ShowPlants {
		g.grid.Plants(g.m)
	}
}

// wrapOffsets returns the horizontal world translations needed this frame.
// When the view crosses the grid seam the world draws a second time, shifted
// by one world width, so the wrap looks continuous.
func (g *Game) wrapOffsets() []float32 {
	offsets := []float32{0}
	halfVisW := g.camera.ViewportW / (2 * g.camera.Zoom)
	if g.camera.X-halfVisW < 0 {
		offsets = append(offsets, -g.camera.WorldW)
	}
	if g.camera.X+halfVisW > g.camera.WorldW {
		offsets = append(offsets, g.camera.WorldW)
	}
	return offsets
}

// drawUI draws the screen-space interface on top of the world.
func (g *Game) drawUI() {
	census := g.census
	g.hud.Draw(ui.HUDData{
		Title:       "Hex Plant Simulator",
		Tick:        g.m.Time(),
		Plants:      census.Occupied,
		Building:    census.Building,
		Bridges:     census.Bridges,
		TotalEnergy: census.TotalEnergy,
		Speed:       int(g.controls.StepsPerUpdate),
		FPS:         rl.GetFPS(),
		Paused:      g.controls.Paused,
	})
	g.hud.DrawControls(int32(g.camera.ViewportH),
		"space pause | < > speed | B field | P plants | H panel | arrows pan | wheel zoom | home reset | click inspect")

	actions := g.panel.Draw(int32(g.camera.ViewportW), &g.controls)
	if actions.StepOnce {
		g.step()
	}
	if actions.ResetView {
		g.camera.Reset()
	}

	if g.selected != nil {
		tile := g.m.TileAt(*g.selected)
		g.tile.Draw(int32(g.camera.ViewportH), *g.selected, tile, g.m.Settings())
	}
}

// Unload releases everything the game holds outside the Go heap.
func (g *Game) Unload() {
	if g.output != nil {
		if err := g.output.Close(); err != nil {
			slog.Error("closing telemetry output", "error", err)
		}
	}
}
