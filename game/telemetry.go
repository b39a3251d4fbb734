package game

import (
	"log/slog"

	"github.com/RasmusBruhn/hex-plant-simulator/telemetry"
)

// observeTick feeds the just-computed tick into the telemetry pipeline and
// flushes the window when it closes.
func (g *Game) observeTick() {
	g.census = telemetry.TakeCensus(g.m)
	if g.collector == nil {
		return
	}

	g.collector.Observe(g.census)
	if !g.collector.ShouldFlush(g.m.Time()) {
		return
	}

	stats := g.collector.Flush(g.m.Time())
	if g.logStats {
		stats.LogStats()
	}
	if g.output != nil {
		if err := g.output.WriteStats(stats); err != nil {
			slog.Error("writing window stats", "error", err)
		}
	}
}
