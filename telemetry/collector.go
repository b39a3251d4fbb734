package telemetry

// Collector accumulates per-tick censuses within time windows and produces
// WindowStats. It sees the grid only through Census values, so it never
// observes a tick in progress.
type Collector struct {
	windowTicks int
	windowStart int

	// Accumulated over the current window
	births  int
	deaths  int
	lights  float64
	transps float64
	suns    float64
	samples int

	last Census
}

// NewCollector creates a stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// Observe folds one census into the current window. Call it once per tick,
// after the map stepped.
func (c *Collector) Observe(census Census) {
	c.births += census.Births
	c.deaths += census.Dying
	c.lights += census.MeanLight
	c.transps += census.MeanTransparency
	c.suns += census.MeanSun
	c.samples++
	c.last = census
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStart >= c.windowTicks
}

// Flush produces a WindowStats from the accumulated censuses and resets the
// counters for the next window. Point-in-time fields come from the most
// recent census, ambient fields are window averages.
func (c *Collector) Flush(currentTick int) WindowStats {
	mean, std, p10, p50, p90 := ComputeEnergyStats(c.last.Energies)

	stats := WindowStats{
		WindowStartTick: c.windowStart,
		WindowEndTick:   currentTick,

		PlantCount:    c.last.Occupied,
		BuildingCount: c.last.Building,
		BridgeEnds:    c.last.Bridges,

		Births: c.births,
		Deaths: c.deaths,

		Logs:       c.last.Logs,
		SugarBulbs: c.last.SugarBulbs,
		Leaves:     c.last.Leaves,
		Seeds:      c.last.Seeds,
		RipeSeeds:  c.last.RipeSeeds,

		EnergyMean: mean,
		EnergyStd:  std,
		EnergyP10:  p10,
		EnergyP50:  p50,
		EnergyP90:  p90,

		TotalEnergy:   c.last.TotalEnergy,
		TotalCapacity: c.last.TotalCapacity,
	}
	if c.last.TotalCapacity > 0 {
		stats.StoredFraction = c.last.TotalEnergy / c.last.TotalCapacity
	}
	if c.samples > 0 {
		stats.MeanLight = c.lights / float64(c.samples)
		stats.MeanTransparency = c.transps / float64(c.samples)
		stats.MeanSun = c.suns / float64(c.samples)
	}

	// Reset for next window
	c.windowStart = currentTick
	c.births = 0
	c.deaths = 0
	c.lights = 0
	c.transps = 0
	c.suns = 0
	c.samples = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int {
	return c.windowTicks
}
