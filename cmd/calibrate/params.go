package main

import (
	"github.com/RasmusBruhn/hex-plant-simulator/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable growth and economy
// parameters. Max bridges stays locked at the config default; it is discrete
// and dominates the search when freed.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Growth behavior
			{Name: "surplus_threshold", Path: "growth.surplus_threshold", Min: 0.2, Max: 5.0, Default: 1.0},
			{Name: "spread_energy", Path: "growth.spread_energy", Min: 1.0, Max: 8.0, Default: 2.5},
			{Name: "offspring_capacity", Path: "growth.offspring_capacity", Min: 0.5, Max: 5.0, Default: 1.5},
			{Name: "offspring_reserve", Path: "growth.offspring_reserve", Min: 0.0, Max: 1.0, Default: 0.25},
			{Name: "leaf_absorption", Path: "growth.leaf_absorption", Min: 0.1, Max: 0.95, Default: 0.5},
			{Name: "bridge_capacity", Path: "growth.bridge_capacity", Min: 0.1, Max: 2.0, Default: 0.5},
			// Economy
			{Name: "production_leaf", Path: "energy.production_leaf", Min: 0.2, Max: 3.0, Default: 1.0},
			{Name: "storage_leaf", Path: "energy.storage.leaf", Min: 0.1, Max: 1.5, Default: 0.5},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	i := 0
	cfg.Growth.SurplusThreshold = clamped[i]
	i++
	cfg.Growth.SpreadEnergy = clamped[i]
	i++
	cfg.Growth.OffspringCapacity = clamped[i]
	i++
	cfg.Growth.OffspringReserve = clamped[i]
	i++
	cfg.Growth.LeafAbsorption = clamped[i]
	i++
	cfg.Growth.BridgeCapacity = clamped[i]
	i++
	cfg.Energy.ProductionLeaf = clamped[i]
	i++
	cfg.Energy.Storage.Leaf = clamped[i]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Growth.SurplusThreshold,
		cfg.Growth.SpreadEnergy,
		cfg.Growth.OffspringCapacity,
		cfg.Growth.OffspringReserve,
		cfg.Growth.LeafAbsorption,
		cfg.Growth.BridgeCapacity,
		cfg.Energy.ProductionLeaf,
		cfg.Energy.Storage.Leaf,
	}
}
