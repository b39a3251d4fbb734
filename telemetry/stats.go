package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"window_end"`

	// Population at window end
	PlantCount    int `csv:"plants"`
	BuildingCount int `csv:"building"`
	BridgeEnds    int `csv:"bridge_ends"`

	// Events during window
	Births int `csv:"births"`
	Deaths int `csv:"deaths"`

	// Population by bulk kind at window end
	Logs       int `csv:"logs"`
	SugarBulbs int `csv:"sugar_bulbs"`
	Leaves     int `csv:"leaves"`
	Seeds      int `csv:"seeds"`
	RipeSeeds  int `csv:"ripe_seeds"`

	// Energy distribution (sampled at window end)
	EnergyMean float64 `csv:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	// Energy pools
	TotalEnergy    float64 `csv:"total_energy"`
	TotalCapacity  float64 `csv:"total_capacity"`
	StoredFraction float64 `csv:"stored_fraction"`

	// Ambient fields, averaged over the window
	MeanLight        float64 `csv:"mean_light"`
	MeanTransparency float64 `csv:"mean_transparency"`
	MeanSun          float64 `csv:"mean_sun"`
}

// ComputeEnergyStats calculates mean, standard deviation and percentiles
// from per-plant energy values.
func ComputeEnergyStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if n > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.LinInterp, sorted, nil)
	p50 = stat.Quantile(0.50, stat.LinInterp, sorted, nil)
	p90 = stat.Quantile(0.90, stat.LinInterp, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Int("plants", s.PlantCount),
		slog.Int("building", s.BuildingCount),
		slog.Int("bridge_ends", s.BridgeEnds),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("logs", s.Logs),
		slog.Int("sugar_bulbs", s.SugarBulbs),
		slog.Int("leaves", s.Leaves),
		slog.Int("seeds", s.Seeds),
		slog.Int("ripe_seeds", s.RipeSeeds),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_std", s.EnergyStd),
		slog.Float64("energy_p10", s.EnergyP10),
		slog.Float64("energy_p50", s.EnergyP50),
		slog.Float64("energy_p90", s.EnergyP90),
		slog.Float64("total_energy", s.TotalEnergy),
		slog.Float64("total_capacity", s.TotalCapacity),
		slog.Float64("stored_fraction", s.StoredFraction),
		slog.Float64("mean_light", s.MeanLight),
		slog.Float64("mean_transparency", s.MeanTransparency),
		slog.Float64("mean_sun", s.MeanSun),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"plants", s.PlantCount,
		"building", s.BuildingCount,
		"births", s.Births,
		"deaths", s.Deaths,
		"leaves", s.Leaves,
		"energy_mean", s.EnergyMean,
		"energy_p50", s.EnergyP50,
		"total_energy", s.TotalEnergy,
		"stored_fraction", s.StoredFraction,
		"mean_light", s.MeanLight,
		"mean_sun", s.MeanSun,
	)
}
