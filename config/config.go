// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RasmusBruhn/hex-plant-simulator/hexgrid"
	"github.com/RasmusBruhn/hex-plant-simulator/sim"
	"github.com/RasmusBruhn/hex-plant-simulator/sun"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen       ScreenConfig       `yaml:"screen"`
	Grid         GridConfig         `yaml:"grid"`
	Sun          SunConfig          `yaml:"sun"`
	Transparency TransparencyConfig `yaml:"transparency"`
	Energy       EnergyConfig       `yaml:"energy"`
	Growth       GrowthConfig       `yaml:"growth"`
	Seeding      SeedingConfig      `yaml:"seeding"`
	Simulation   SimulationConfig   `yaml:"simulation"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GridConfig holds the dimensions of the simulated grid.
type GridConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// SunConfig selects and parameterizes the sun model. Model is one of
// "constant", "day", "year" or "yearday"; the models only read the
// parameters they need.
type SunConfig struct {
	Model      string  `yaml:"model"`
	Intensity  float64 `yaml:"intensity"`   // peak intensity of the sun
	DayLength  float64 `yaml:"day_length"`  // ticks per day
	YearLength float64 `yaml:"year_length"` // ticks per year
	Tilt       float64 `yaml:"tilt"`        // axial tilt in radians
	Latitude   float64 `yaml:"latitude"`    // latitude of the location in radians
}

// TransparencyConfig holds the per-bulk light transparencies.
type TransparencyConfig struct {
	Base      float64 `yaml:"base"`
	Log       float64 `yaml:"log"`
	SugarBulb float64 `yaml:"sugar_bulb"`
	Leaf      float64 `yaml:"leaf"`
	Seed      float64 `yaml:"seed"`
}

// BulkCosts holds one cost knob per bulk kind.
type BulkCosts struct {
	Log       float64 `yaml:"log"`
	SugarBulb float64 `yaml:"sugar_bulb"`
	Leaf      float64 `yaml:"leaf"`
	Seed      float64 `yaml:"seed"`
}

// BridgeCosts holds one cost knob per bridge kind.
type BridgeCosts struct {
	Log    float64 `yaml:"log"`
	Branch float64 `yaml:"branch"`
}

// EnergyConfig holds every energy cost knob of the plant economy.
type EnergyConfig struct {
	BaseBulk       BulkCosts   `yaml:"base_bulk"`       // flat build cost per bulk kind
	BaseBridge     BridgeCosts `yaml:"base_bridge"`     // flat build cost per bridge kind
	ProductionLeaf float64     `yaml:"production_leaf"` // build cost per unit absorption squared
	Storage        BulkCosts   `yaml:"storage"`         // build cost per unit storage capacity
	Transfer       BridgeCosts `yaml:"transfer"`        // build cost per unit transfer capacity
	RunningBulk    BulkCosts   `yaml:"running_bulk"`    // upkeep multiplier on bulk build cost
	RunningBridge  BridgeCosts `yaml:"running_bridge"`  // upkeep multiplier on bridge build cost
}

// GrowthConfig holds the rule-based growth behavior parameters.
type GrowthConfig struct {
	SurplusThreshold  float64 `yaml:"surplus_threshold"`  // surplus above reserve before spreading
	SpreadEnergy      float64 `yaml:"spread_energy"`      // energy earmarked per attempt
	OffspringCapacity float64 `yaml:"offspring_capacity"` // energy capacity of offspring
	OffspringReserve  float64 `yaml:"offspring_reserve"`  // energy reserve of offspring
	LeafAbsorption    float64 `yaml:"leaf_absorption"`    // absorption of leaf offspring
	BridgeCapacity    float64 `yaml:"bridge_capacity"`    // transfer capacity of new bridges
	MaxBridges        int     `yaml:"max_bridges"`        // bridge count cap per plant, 0 = unlimited
}

// SeedingConfig holds the founder placement parameters. Founders are
// scattered along the bottom row where a noise field exceeds the threshold.
type SeedingConfig struct {
	Seed            int64   `yaml:"seed"`             // noise seed, 0 = derive from time
	NoiseScale      float64 `yaml:"noise_scale"`      // noise frequency along the row
	Threshold       float64 `yaml:"threshold"`        // noise value above which a founder spawns
	FounderCapacity float64 `yaml:"founder_capacity"` // energy capacity of founders
	FounderEnergy   float64 `yaml:"founder_energy"`   // starting energy of founders
	FounderReserve  float64 `yaml:"founder_reserve"`  // energy reserve of founders
}

// SimulationConfig holds the run loop parameters.
type SimulationConfig struct {
	StepsPerUpdate int `yaml:"steps_per_update"` // simulation ticks per frame
	MaxTicks       int `yaml:"max_ticks"`        // stop after this many ticks, 0 = run forever
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int    `yaml:"stats_window"` // ticks aggregated per stats row
	OutputDir   string `yaml:"output_dir"`   // directory for run output files
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	TileCount int     // Grid.Columns * Grid.Rows
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the simulation cannot run on.
func (c *Config) validate() error {
	if c.Grid.Columns <= 0 || c.Grid.Rows <= 0 {
		return fmt.Errorf("config: grid must be at least 1x1, got %dx%d", c.Grid.Columns, c.Grid.Rows)
	}
	switch c.Sun.Model {
	case "constant", "day", "year", "yearday":
	default:
		return fmt.Errorf("config: unknown sun model %q", c.Sun.Model)
	}
	if c.Simulation.StepsPerUpdate <= 0 {
		return fmt.Errorf("config: steps_per_update must be positive, got %d", c.Simulation.StepsPerUpdate)
	}
	if c.Telemetry.StatsWindow <= 0 {
		return fmt.Errorf("config: stats_window must be positive, got %d", c.Telemetry.StatsWindow)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.TileCount = c.Grid.Columns * c.Grid.Rows
}

// GridSize returns the configured grid dimensions.
func (c *Config) GridSize() hexgrid.Size {
	return hexgrid.Size{W: c.Grid.Columns, H: c.Grid.Rows}
}

// Settings builds the simulation settings tree from the loaded values.
func (c *Config) Settings() sim.Settings {
	transparency := sim.NewTransparencySettings().
		WithBase(c.Transparency.Base).
		WithLog(c.Transparency.Log).
		WithSugarBulb(c.Transparency.SugarBulb).
		WithLeaf(c.Transparency.Leaf).
		WithSeed(c.Transparency.Seed)

	energy := sim.NewEnergySettings().
		WithBase(sim.NewBaseCostSettings().
			WithBulk(bulkCosts(c.Energy.BaseBulk)).
			WithBridge(bridgeCosts(c.Energy.BaseBridge))).
		WithProduction(sim.NewProductionCostSettings().
			WithLeaf(c.Energy.ProductionLeaf)).
		WithStorage(sim.NewStorageCostSettings().
			WithEnergy(bulkCosts(c.Energy.Storage))).
		WithTransfer(sim.NewTransferCostSettings().
			WithEnergy(bridgeCosts(c.Energy.Transfer))).
		WithRunning(sim.NewRunningCostSettings().
			WithBulk(bulkCosts(c.Energy.RunningBulk)).
			WithBridge(bridgeCosts(c.Energy.RunningBridge)))

	return sim.NewSettings().
		WithTransparency(transparency).
		WithEnergy(energy)
}

func bulkCosts(b BulkCosts) sim.BulkCostSettings {
	return sim.BulkCostSettings{}.
		WithLog(b.Log).
		WithSugarBulb(b.SugarBulb).
		WithLeaf(b.Leaf).
		WithSeed(b.Seed)
}

func bridgeCosts(b BridgeCosts) sim.BridgeCostSettings {
	return sim.BridgeCostSettings{}.
		WithLog(b.Log).
		WithBranch(b.Branch)
}

// SunModel builds the configured sun intensity model. The grid injects its
// width into the model when the map is constructed.
func (c *Config) SunModel() sun.Intensity {
	switch c.Sun.Model {
	case "day":
		return sun.NewDay(c.Sun.DayLength)
	case "year":
		return sun.NewYear(c.Sun.Tilt, c.Sun.Latitude, c.Sun.YearLength, c.Sun.Intensity)
	case "yearday":
		return sun.NewYearDay(
			sun.NewYear(c.Sun.Tilt, c.Sun.Latitude, c.Sun.YearLength, c.Sun.Intensity),
			sun.NewDay(c.Sun.DayLength),
		)
	default:
		return sun.NewConstant(c.Sun.Intensity, 0)
	}
}

// Grower builds the configured growth behavior.
func (c *Config) Grower() *sim.Grower {
	return &sim.Grower{
		SurplusThreshold:  c.Growth.SurplusThreshold,
		SpreadEnergy:      c.Growth.SpreadEnergy,
		OffspringCapacity: c.Growth.OffspringCapacity,
		OffspringReserve:  c.Growth.OffspringReserve,
		LeafAbsorption:    c.Growth.LeafAbsorption,
		BridgeCapacity:    c.Growth.BridgeCapacity,
		MaxBridges:        c.Growth.MaxBridges,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
