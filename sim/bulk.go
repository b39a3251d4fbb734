package sim

// BulkKind identifies the non-bridge body of a plant tile.
type BulkKind uint8

const (
	// BulkLog is the skeleton of a plant, able to carry multiple bridges.
	BulkLog BulkKind = iota
	// BulkSugarBulb is the storage medium for extra energy.
	BulkSugarBulb
	// BulkLeaf converts light into energy.
	BulkLeaf
	// BulkSeed is an unripe seed; it fills up with energy until it ripens
	// and detaches from the mother plant.
	BulkSeed
	// BulkRipeSeed is a ripe seed, ready to found a new plant.
	BulkRipeSeed
)

// String returns the bulk kind name.
func (k BulkKind) String() string {
	switch k {
	case BulkLog:
		return "log"
	case BulkSugarBulb:
		return "sugar-bulb"
	case BulkLeaf:
		return "leaf"
	case BulkSeed:
		return "seed"
	case BulkRipeSeed:
		return "ripe-seed"
	}
	return "invalid"
}

// Bulk is the tagged body of a plant tile. Absorption is only meaningful for
// leaves and holds the fraction of incoming light used for photosynthesis.
type Bulk struct {
	Kind       BulkKind
	Absorption float64
}

// Transparency returns the fraction of light passing through this bulk.
// A leaf spends part of its baseline transparency on absorption; an
// absorption at or above one makes it fully opaque.
func (b Bulk) Transparency(settings *Settings) float64 {
	switch b.Kind {
	case BulkLog:
		return settings.Transparency.Log
	case BulkSugarBulb:
		return settings.Transparency.SugarBulb
	case BulkLeaf:
		remainder := 1.0 - b.Absorption
		if remainder <= 0 {
			return 0.0
		}
		transparency := settings.Transparency.Leaf * remainder
		if transparency < 0 {
			return 0.0
		}
		return transparency
	default:
		return settings.Transparency.Seed
	}
}

// LightGain returns the energy produced from the light falling on the tile.
// Only leaves produce energy.
func (b Bulk) LightGain(light float64) float64 {
	if b.Kind != BulkLeaf {
		return 0.0
	}
	return light * b.Absorption
}

// buildCostBase returns the flat build cost of the bulk.
func (b Bulk) buildCostBase(settings *Settings) float64 {
	switch b.Kind {
	case BulkLog:
		return settings.Energy.Base.Bulk.Log
	case BulkSugarBulb:
		return settings.Energy.Base.Bulk.SugarBulb
	case BulkLeaf:
		return settings.Energy.Base.Bulk.Leaf
	default:
		return settings.Energy.Base.Bulk.Seed
	}
}

// storageCost returns the build cost of the bulk's energy storage. Structural
// kinds scale linearly with capacity, convenience kinds quadratically.
func (b Bulk) storageCost(settings *Settings, capacity float64) float64 {
	factors := settings.Energy.Storage.Energy
	switch b.Kind {
	case BulkLog:
		return factors.Log * capacity
	case BulkSugarBulb:
		return factors.SugarBulb * capacity
	case BulkLeaf:
		return factors.Leaf * capacity * capacity
	default:
		return factors.Seed * capacity * capacity
	}
}

// productionCost returns the build cost of the bulk's production capacity.
// Only leaves produce, and stronger absorption costs quadratically more.
func (b Bulk) productionCost(settings *Settings) float64 {
	if b.Kind != BulkLeaf {
		return 0.0
	}
	return settings.Energy.Production.Leaf * b.Absorption * b.Absorption
}

// runFactor returns the per-step upkeep multiplier of the bulk.
func (b Bulk) runFactor(settings *Settings) float64 {
	switch b.Kind {
	case BulkLog:
		return settings.Energy.Running.Bulk.Log
	case BulkSugarBulb:
		return settings.Energy.Running.Bulk.SugarBulb
	case BulkLeaf:
		return settings.Energy.Running.Bulk.Leaf
	default:
		return settings.Energy.Running.Bulk.Seed
	}
}
