package sim

// BackgroundMode selects which tile field the background instance data
// exposes.
type BackgroundMode uint8

const (
	// ModeLight displays the light level of each tile.
	ModeLight BackgroundMode = iota
	// ModeTransparency displays the transparency value of each tile.
	ModeTransparency

	// NumBackgroundModes is the number of background display modes.
	NumBackgroundModes
)

// String returns the mode name.
func (m BackgroundMode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeTransparency:
		return "transparency"
	}
	return "invalid"
}

// BackgroundModeFromID converts an id back into a mode, clamping out-of-range
// values.
func BackgroundModeFromID(id int) BackgroundMode {
	if id < 0 {
		return 0
	}
	if id >= int(NumBackgroundModes) {
		return NumBackgroundModes - 1
	}
	return BackgroundMode(id)
}

// Next cycles to the following mode.
func (m BackgroundMode) Next() BackgroundMode {
	return BackgroundMode((int(m) + 1) % int(NumBackgroundModes))
}

// Prev cycles to the preceding mode.
func (m BackgroundMode) Prev() BackgroundMode {
	return BackgroundMode((int(m) + int(NumBackgroundModes) - 1) % int(NumBackgroundModes))
}
