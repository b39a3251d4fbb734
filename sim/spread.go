package sim

import "github.com/RasmusBruhn/hex-plant-simulator/hexgrid"

// SpreadPhase is the stage of the two-tick spread handshake.
type SpreadPhase uint8

const (
	// SpreadNothing means the plant is not attempting to spread.
	SpreadNothing SpreadPhase = iota
	// SpreadTrying means the plant has announced its intention to spread;
	// neighbors read it on the next tick.
	SpreadTrying
	// SpreadWaiting means the plant is waiting to see whether the target
	// tile accepted the spread.
	SpreadWaiting
)

// Spread is the spreading state of a plant. While a spread is in flight the
// earmarked energy is held here, removed from the plant's own pool; it is
// either spent on the offspring or refunded when the attempt fails.
type Spread struct {
	// Phase is the handshake stage; the remaining fields are only
	// meaningful outside SpreadNothing.
	Phase SpreadPhase
	// Direction is where the plant is spreading to.
	Direction hexgrid.Direction
	// Offspring is the template of the plant to build, a copy rather than
	// a live reference. It carries the bridge back toward this plant.
	Offspring *Plant
	// Energy is the amount earmarked for building the offspring.
	Energy float64
}
