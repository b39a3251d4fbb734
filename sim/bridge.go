package sim

import "github.com/RasmusBruhn/hex-plant-simulator/hexgrid"

// BridgeKind identifies the kind of link between two adjacent plant tiles.
type BridgeKind uint8

const (
	// BridgeNone marks an empty bridge slot.
	BridgeNone BridgeKind = iota
	// BridgeLog transfers large amounts of energy but is expensive.
	BridgeLog
	// BridgeBranch transfers only small amounts of energy but is cheap.
	BridgeBranch
)

// String returns the bridge kind name.
func (k BridgeKind) String() string {
	switch k {
	case BridgeNone:
		return "none"
	case BridgeLog:
		return "log"
	case BridgeBranch:
		return "branch"
	}
	return "invalid"
}

// TransferMode gates the direction energy may flow across a bridge, seen
// from the owning side.
type TransferMode uint8

const (
	// TransferClosed blocks flow in both directions.
	TransferClosed TransferMode = iota
	// TransferOut permits flow away from the owning tile only.
	TransferOut
	// TransferIn permits flow toward the owning tile only.
	TransferIn
	// TransferOpen permits flow in both directions.
	TransferOpen
)

// Inverted returns the mode as seen from the other end of the bridge.
func (m TransferMode) Inverted() TransferMode {
	switch m {
	case TransferOut:
		return TransferIn
	case TransferIn:
		return TransferOut
	default:
		return m
	}
}

// AllowsOut reports whether the owning side may push energy out.
func (m TransferMode) AllowsOut() bool {
	return m == TransferOut || m == TransferOpen
}

// AllowsIn reports whether the owning side may pull energy in.
func (m TransferMode) AllowsIn() bool {
	return m == TransferIn || m == TransferOpen
}

// Bridge is one end of an energy-transfer link between two adjacent occupied
// tiles. Bridges always exist in mirrored pairs; the opposite end is derived
// with Opposite, never stored and mutated independently. A zero Bridge
// (Kind == BridgeNone) is an empty slot.
type Bridge struct {
	// Kind is the bridge kind; BridgeNone means no bridge.
	Kind BridgeKind
	// Exiting marks the link as pointing away from the plant's root: the
	// mother's half of a mother-child link is exiting, the child's half is
	// not. Exiting links do not keep a plant viable.
	Exiting bool
	// Capacity is the maximum energy the bridge can move per step.
	Capacity float64
	// Mode gates which way energy may flow, seen from the owning side.
	Mode TransferMode
}

// Present reports whether the slot actually holds a bridge.
func (b Bridge) Present() bool {
	return b.Kind != BridgeNone
}

// Opposite derives the mirrored end of the bridge: same kind and capacity,
// negated exiting flag, inverted transfer mode.
func (b Bridge) Opposite() Bridge {
	if !b.Present() {
		return Bridge{}
	}
	return Bridge{
		Kind:     b.Kind,
		Exiting:  !b.Exiting,
		Capacity: b.Capacity,
		Mode:     b.Mode.Inverted(),
	}
}

// buildCost returns the energy cost of building this end's structure: the
// flat base cost plus the transfer-capacity surcharge. Log bridges pay
// linearly in capacity, branch bridges quadratically.
func (b Bridge) buildCost(settings *Settings) float64 {
	switch b.Kind {
	case BridgeLog:
		return settings.Energy.Base.Bridge.Log +
			settings.Energy.Transfer.Energy.Log*b.Capacity
	case BridgeBranch:
		return settings.Energy.Base.Bridge.Branch +
			settings.Energy.Transfer.Energy.Branch*b.Capacity*b.Capacity
	default:
		return 0.0
	}
}

// runCost returns the per-step upkeep of this end, proportional to what was
// invested to build it.
func (b Bridge) runCost(settings *Settings) float64 {
	switch b.Kind {
	case BridgeLog:
		return settings.Energy.Running.Bridge.Log * b.buildCost(settings)
	case BridgeBranch:
		return settings.Energy.Running.Bridge.Branch * b.buildCost(settings)
	default:
		return 0.0
	}
}

// BridgeSet holds the six directional bridge slots of a plant tile, indexed
// by direction.
type BridgeSet [hexgrid.NumDirections]Bridge

// Get returns the bridge in the given direction.
func (s *BridgeSet) Get(dir hexgrid.Direction) Bridge {
	return s[dir]
}

// Set stores a bridge in the given direction.
func (s *BridgeSet) Set(dir hexgrid.Direction, b Bridge) {
	s[dir] = b
}

// Clear empties the slot in the given direction.
func (s *BridgeSet) Clear(dir hexgrid.Direction) {
	s[dir] = Bridge{}
}

// Count returns the number of connected bridges.
func (s *BridgeSet) Count() int {
	n := 0
	for _, b := range s {
		if b.Present() {
			n++
		}
	}
	return n
}

// HasNonExiting reports whether any connected bridge points toward the
// plant's root network.
func (s *BridgeSet) HasNonExiting() bool {
	for _, b := range s {
		if b.Present() && !b.Exiting {
			return true
		}
	}
	return false
}
