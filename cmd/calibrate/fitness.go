package main

import (
	"github.com/RasmusBruhn/hex-plant-simulator/config"
	"github.com/RasmusBruhn/hex-plant-simulator/game"
	"github.com/RasmusBruhn/hex-plant-simulator/telemetry"
)

// sampleEvery is how many ticks pass between census samples during an
// evaluation run.
const sampleEvery = 10

// FitnessEvaluator runs headless simulations and scores parameter vectors.
// Lower is better: the score rewards colonies that survive the whole run
// with a large, leaf-heavy population.
type FitnessEvaluator struct {
	params   *ParamVector
	maxTicks int
	seeds    []int64
	baseCfg  *config.Config

	lastQuality float64
}

// NewFitnessEvaluator creates an evaluator over the given seeds.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:   params,
		maxTicks: maxTicks,
		seeds:    seeds,
		baseCfg:  baseCfg,
	}
}

// Evaluate scores one raw parameter vector, averaged over all seeds.
func (e *FitnessEvaluator) Evaluate(raw []float64) float64 {
	total := 0.0
	quality := 0.0
	for _, seed := range e.seeds {
		fitness, q := e.runOnce(raw, seed)
		total += fitness
		quality += q
	}
	n := float64(len(e.seeds))
	e.lastQuality = quality / n
	return total / n
}

// LastQuality returns the population quality of the most recent evaluation,
// for progress reporting.
func (e *FitnessEvaluator) LastQuality() float64 {
	return e.lastQuality
}

// runOnce runs a single headless simulation and scores it. The run ends
// early when the colony goes extinct.
func (e *FitnessEvaluator) runOnce(raw []float64, seed int64) (fitness, quality float64) {
	cfg := *e.baseCfg
	e.params.ApplyToConfig(&cfg, raw)

	g, err := game.New(&cfg, game.Options{
		Seed:      seed,
		Headless:  true,
		OutputDir: "-",
	})
	if err != nil {
		return 0, 0
	}
	defer g.Unload()

	tileCount := float64(cfg.Derived.TileCount)
	survived := 0
	popSum := 0.0
	samples := 0

	for tick := 0; tick < e.maxTicks; tick++ {
		g.UpdateHeadless()

		if tick%sampleEvery != 0 {
			continue
		}
		census := telemetry.TakeCensus(g.Map())
		if census.Occupied == 0 {
			break
		}
		survived = g.Tick()
		popSum += float64(census.Occupied)
		samples++
	}

	if samples == 0 {
		return 0, 0
	}
	quality = popSum / float64(samples) / tileCount
	fitness = -float64(survived) * (1.0 + 0.2*quality)
	return fitness, quality
}
