package sim

// Settings is the full numeric configuration tree for a map. It carries no
// behavior and no hidden state; every cost function receives it explicitly so
// the functions stay pure and testable in isolation. Settings values are
// cheap and copied freely.
type Settings struct {
	// Transparency holds all light transparency settings.
	Transparency TransparencySettings
	// Energy holds all energy cost settings.
	Energy EnergySettings
}

// NewSettings returns the default settings.
func NewSettings() Settings {
	return Settings{
		Transparency: NewTransparencySettings(),
		Energy:       NewEnergySettings(),
	}
}

// WithTransparency returns the settings with the transparency tree replaced.
func (s Settings) WithTransparency(t TransparencySettings) Settings {
	s.Transparency = t
	return s
}

// WithEnergy returns the settings with the energy tree replaced.
func (s Settings) WithEnergy(e EnergySettings) Settings {
	s.Energy = e
	return s
}

// TransparencySettings holds the light transparency of every bulk kind plus
// the base transparency shared by all tiles.
type TransparencySettings struct {
	// Base is the transparency of a tile with no plant on it.
	Base float64
	// Log is the transparency of a log bulk.
	Log float64
	// SugarBulb is the transparency of a sugar bulb bulk.
	SugarBulb float64
	// Leaf is the baseline transparency of a leaf before absorption.
	Leaf float64
	// Seed is the transparency of a seed or ripe seed bulk.
	Seed float64
}

// NewTransparencySettings returns the default transparency settings.
func NewTransparencySettings() TransparencySettings {
	return TransparencySettings{
		Base:      1.0,
		Log:       0.0,
		SugarBulb: 0.0,
		Leaf:      1.0,
		Seed:      0.0,
	}
}

// WithBase returns the settings with the base transparency replaced.
func (t TransparencySettings) WithBase(v float64) TransparencySettings {
	t.Base = v
	return t
}

// WithLog returns the settings with the log transparency replaced.
func (t TransparencySettings) WithLog(v float64) TransparencySettings {
	t.Log = v
	return t
}

// WithSugarBulb returns the settings with the sugar bulb transparency replaced.
func (t TransparencySettings) WithSugarBulb(v float64) TransparencySettings {
	t.SugarBulb = v
	return t
}

// WithLeaf returns the settings with the leaf baseline transparency replaced.
func (t TransparencySettings) WithLeaf(v float64) TransparencySettings {
	t.Leaf = v
	return t
}

// WithSeed returns the settings with the seed transparency replaced.
func (t TransparencySettings) WithSeed(v float64) TransparencySettings {
	t.Seed = v
	return t
}

// EnergySettings holds every energy cost knob.
type EnergySettings struct {
	// Base is the flat cost paid when building.
	Base BaseCostSettings
	// Production is the cost of production capacity.
	Production ProductionCostSettings
	// Storage is the cost of building energy storage.
	Storage StorageCostSettings
	// Transfer is the cost of building transfer capacity.
	Transfer TransferCostSettings
	// Running is the per-step upkeep multiplier on build cost.
	Running RunningCostSettings
}

// NewEnergySettings returns the default energy settings.
func NewEnergySettings() EnergySettings {
	return EnergySettings{
		Base:       NewBaseCostSettings(),
		Production: NewProductionCostSettings(),
		Storage:    NewStorageCostSettings(),
		Transfer:   NewTransferCostSettings(),
		Running:    NewRunningCostSettings(),
	}
}

// WithBase returns the settings with the base cost tree replaced.
func (e EnergySettings) WithBase(v BaseCostSettings) EnergySettings {
	e.Base = v
	return e
}

// WithProduction returns the settings with the production cost tree replaced.
func (e EnergySettings) WithProduction(v ProductionCostSettings) EnergySettings {
	e.Production = v
	return e
}

// WithStorage returns the settings with the storage cost tree replaced.
func (e EnergySettings) WithStorage(v StorageCostSettings) EnergySettings {
	e.Storage = v
	return e
}

// WithTransfer returns the settings with the transfer cost tree replaced.
func (e EnergySettings) WithTransfer(v TransferCostSettings) EnergySettings {
	e.Transfer = v
	return e
}

// WithRunning returns the settings with the running cost tree replaced.
func (e EnergySettings) WithRunning(v RunningCostSettings) EnergySettings {
	e.Running = v
	return e
}

// BulkCostSettings holds one numeric knob per bulk kind. Ripe seeds share
// the seed knob.
type BulkCostSettings struct {
	// Log is the value for a log bulk.
	Log float64
	// SugarBulb is the value for a sugar bulb bulk.
	SugarBulb float64
	// Leaf is the value for a leaf bulk.
	Leaf float64
	// Seed is the value for a seed or ripe seed bulk.
	Seed float64
}

// WithLog returns the settings with the log value replaced.
func (b BulkCostSettings) WithLog(v float64) BulkCostSettings {
	b.Log = v
	return b
}

// WithSugarBulb returns the settings with the sugar bulb value replaced.
func (b BulkCostSettings) WithSugarBulb(v float64) BulkCostSettings {
	b.SugarBulb = v
	return b
}

// WithLeaf returns the settings with the leaf value replaced.
func (b BulkCostSettings) WithLeaf(v float64) BulkCostSettings {
	b.Leaf = v
	return b
}

// WithSeed returns the settings with the seed value replaced.
func (b BulkCostSettings) WithSeed(v float64) BulkCostSettings {
	b.Seed = v
	return b
}

// BridgeCostSettings holds one numeric knob per bridge kind.
type BridgeCostSettings struct {
	// Log is the value for a log bridge.
	Log float64
	// Branch is the value for a branch bridge.
	Branch float64
}

// WithLog returns the settings with the log value replaced.
func (b BridgeCostSettings) WithLog(v float64) BridgeCostSettings {
	b.Log = v
	return b
}

// WithBranch returns the settings with the branch value replaced.
func (b BridgeCostSettings) WithBranch(v float64) BridgeCostSettings {
	b.Branch = v
	return b
}

// BaseCostSettings is the flat energy cost paid when building, before any
// capacity scaling.
type BaseCostSettings struct {
	// Bulk is the base cost per bulk kind.
	Bulk BulkCostSettings
	// Bridge is the base cost per bridge kind.
	Bridge BridgeCostSettings
}

// NewBaseCostSettings returns the default base cost settings.
func NewBaseCostSettings() BaseCostSettings {
	return BaseCostSettings{}
}

// WithBulk returns the settings with the bulk base costs replaced.
func (b BaseCostSettings) WithBulk(v BulkCostSettings) BaseCostSettings {
	b.Bulk = v
	return b
}

// WithBridge returns the settings with the bridge base costs replaced.
func (b BaseCostSettings) WithBridge(v BridgeCostSettings) BaseCostSettings {
	b.Bridge = v
	return b
}

// ProductionCostSettings is the scaling build cost of production capacity.
// Only leaves produce energy.
type ProductionCostSettings struct {
	// Leaf is the scaling cost per unit of leaf absorption squared.
	Leaf float64
}

// NewProductionCostSettings returns the default production cost settings.
func NewProductionCostSettings() ProductionCostSettings {
	return ProductionCostSettings{Leaf: 1.0}
}

// WithLeaf returns the settings with the leaf production cost replaced.
func (p ProductionCostSettings) WithLeaf(v float64) ProductionCostSettings {
	p.Leaf = v
	return p
}

// StorageCostSettings is the scaling build cost of energy storage capacity.
// Structural kinds (log, sugar bulb) pay linearly in capacity; convenience
// kinds (leaf, seed) pay quadratically.
type StorageCostSettings struct {
	// Energy is the storage cost factor per bulk kind.
	Energy BulkCostSettings
}

// NewStorageCostSettings returns the default storage cost settings.
func NewStorageCostSettings() StorageCostSettings {
	return StorageCostSettings{
		Energy: BulkCostSettings{Log: 1.0, SugarBulb: 1.0, Leaf: 1.0, Seed: 1.0},
	}
}

// WithEnergy returns the settings with the storage cost factors replaced.
func (s StorageCostSettings) WithEnergy(v BulkCostSettings) StorageCostSettings {
	s.Energy = v
	return s
}

// TransferCostSettings is the scaling build cost of transfer capacity on a
// bridge. Log bridges pay linearly in capacity; branch bridges pay
// quadratically.
type TransferCostSettings struct {
	// Energy is the transfer cost factor per bridge kind.
	Energy BridgeCostSettings
}

// NewTransferCostSettings returns the default transfer cost settings.
func NewTransferCostSettings() TransferCostSettings {
	return TransferCostSettings{
		Energy: BridgeCostSettings{Log: 1.0, Branch: 1.0},
	}
}

// WithEnergy returns the settings with the transfer cost factors replaced.
func (t TransferCostSettings) WithEnergy(v BridgeCostSettings) TransferCostSettings {
	t.Energy = v
	return t
}

// RunningCostSettings is the per-step upkeep multiplier: the running cost of
// a structure is its build cost multiplied by this factor, never an
// independent constant.
type RunningCostSettings struct {
	// Bulk is the running multiplier per bulk kind.
	Bulk BulkCostSettings
	// Bridge is the running multiplier per bridge kind.
	Bridge BridgeCostSettings
}

// NewRunningCostSettings returns the default running cost settings.
func NewRunningCostSettings() RunningCostSettings {
	return RunningCostSettings{}
}

// WithBulk returns the settings with the bulk running multipliers replaced.
func (r RunningCostSettings) WithBulk(v BulkCostSettings) RunningCostSettings {
	r.Bulk = v
	return r
}

// WithBridge returns the settings with the bridge running multipliers replaced.
func (r RunningCostSettings) WithBridge(v BridgeCostSettings) RunningCostSettings {
	r.Bridge = v
	return r
}
