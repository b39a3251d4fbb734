// Package sun models the light source feeding the top of the grid. The
// intensity of a ray is a pure function of the column it falls on and the
// simulation tick; nothing in this package holds per-tick state.
//
// The elevation of the sun above the horizon (alpha) for a planet follows
//
//	cos(alpha) = (cos(beta)·cos(psi) + cos(phi)·tan(theta)·sin(beta)) / sqrt(1 + cos²(phi)·tan²(theta))
//
// with theta the axial tilt, beta the latitude, phi the time of year and psi
// the time of day. Day and Year below are the two factors of that
// approximation; YearDay composes them.
package sun

import "math"

// Intensity produces the two-component sun signal for a column at a tick.
// The components are additive at the tile level: a ray's scalar intensity is
// their sum. Models are constructed before the grid exists, so the grid
// width is injected afterwards through SetSize.
type Intensity interface {
	// At returns the primary and secondary intensity components for the
	// given column at the given simulation tick.
	At(column, tick int) (float64, float64)
	// Size returns the number of columns the model spans.
	Size() int
	// SetSize sets the number of columns the model spans.
	SetSize(size int)
}

// Day is the daily cycle: a cosine sweep travelling across the columns with
// a period of DayLength ticks. The secondary component is a constant scale
// factor of one, not an additive term, so that composing with a yearly model
// leaves the yearly secondary term intact.
type Day struct {
	size int
	// DayLength is the length of a day in ticks.
	DayLength float64
}

// NewDay creates a daily cycle with the given day length in ticks.
func NewDay(dayLength float64) *Day {
	return &Day{size: 1, DayLength: dayLength}
}

// At implements Intensity.
func (d *Day) At(column, tick int) (float64, float64) {
	phase := math.Mod(float64(tick)/d.DayLength+1.0-float64(column)/float64(d.size), 1.0) * 2.0 * math.Pi
	return math.Cos(phase), 1.0
}

// Size implements Intensity.
func (d *Day) Size() int { return d.size }

// SetSize implements Intensity.
func (d *Day) SetSize(size int) { d.size = size }

// Year is the astronomical cycle: the seasonal elevation of the sun for a
// location at a fixed latitude on a tilted planet. It does not model the
// day cycle itself and is identical for every column.
type Year struct {
	size int
	// Tilt is the axial tilt of the planet in radians; 0 puts the equator
	// in the orbital plane.
	Tilt float64
	// Latitude of the simulated location in radians; 0 is the equator.
	Latitude float64
	// YearLength is the length of a year in ticks.
	YearLength float64
	// Peak is the intensity when the sun stands directly overhead.
	Peak float64
}

// NewYear creates a yearly cycle for the given tilt, latitude, year length in
// ticks and peak intensity.
func NewYear(tilt, latitude, yearLength, peak float64) *Year {
	return &Year{
		size:       1,
		Tilt:       tilt,
		Latitude:   latitude,
		YearLength: yearLength,
		Peak:       peak,
	}
}

// At implements Intensity.
func (y *Year) At(_, tick int) (float64, float64) {
	phase := math.Mod(float64(tick)/y.YearLength, 1.0) * 2.0 * math.Pi
	x := math.Cos(phase) * math.Tan(y.Tilt)
	max := math.Sqrt(1.0 + x*x)
	return y.Peak * math.Cos(y.Latitude) / max, y.Peak * math.Sin(y.Latitude) * x / max
}

// Size implements Intensity.
func (y *Year) Size() int { return y.size }

// SetSize implements Intensity.
func (y *Year) SetSize(size int) { y.size = size }

// YearDay multiplies a yearly cycle with a daily cycle component-wise so the
// signal carries both periods.
type YearDay struct {
	// Year is the yearly intensity cycle.
	Year Intensity
	// Day is the daily intensity cycle.
	Day Intensity
}

// NewYearDay composes a yearly and a daily cycle.
func NewYearDay(year, day Intensity) *YearDay {
	return &YearDay{Year: year, Day: day}
}

// At implements Intensity.
func (c *YearDay) At(column, tick int) (float64, float64) {
	yp, ys := c.Year.At(column, tick)
	dp, ds := c.Day.At(column, tick)
	return yp * dp, ys * ds
}

// Size implements Intensity.
func (c *YearDay) Size() int { return c.Year.Size() }

// SetSize implements Intensity.
func (c *YearDay) SetSize(size int) {
	c.Year.SetSize(size)
	c.Day.SetSize(size)
}

// Constant is a fixed intensity broadcast across all columns and ticks.
type Constant struct {
	size int
	// Primary and Secondary are the fixed intensity components.
	Primary   float64
	Secondary float64
}

// NewConstant creates a fixed intensity model.
func NewConstant(primary, secondary float64) *Constant {
	return &Constant{size: 1, Primary: primary, Secondary: secondary}
}

// At implements Intensity.
func (c *Constant) At(_, _ int) (float64, float64) { return c.Primary, c.Secondary }

// Size implements Intensity.
func (c *Constant) Size() int { return c.size }

// SetSize implements Intensity.
func (c *Constant) SetSize(size int) { c.size = size }
