package colormap

import (
	"fmt"
	"math"
)

// Interpolate maps value to a color in the requested format.
//
// The value is normalized against the input range, clamped to the first or
// last control point outside (0, 1), and otherwise blended linearly between
// the two control points around it. A value landing exactly on a control
// point returns that point's color without blending.
func (m *Mapper) Interpolate(value float64, format Format) (Color, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
	c, err := m.At(value)
	if err != nil {
		return nil, err
	}
	return Render(c, format)
}

// At maps value to a color as channel fractions.
func (m *Mapper) At(value float64) (RGB, error) {
	m.ensureLoaded()

	x, err := m.normalize(value)
	if err != nil {
		return RGB{}, err
	}
	return m.lookup(x)
}

// normalize maps value from the input range onto [0, 1].
func (m *Mapper) normalize(value float64) (float64, error) {
	span := m.max - m.min
	if span == 0 {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrDegenerateRange, m.min, m.max)
	}
	x := (value - m.min) / span
	if math.IsNaN(x) {
		return 0, fmt.Errorf("%w: %g in [%g, %g]", ErrInvalidValue, value, m.min, m.max)
	}
	return x, nil
}

func (m *Mapper) lookup(x float64) (RGB, error) {
	last := len(m.positions) - 1
	if x <= 0 {
		return clamp(m.color(0)), nil
	}
	if x >= 1 {
		return clamp(m.color(last)), nil
	}

	lo, hi := m.bracket(x)
	if lo == hi {
		return clamp(m.color(hi)), nil
	}

	width := m.positions[hi] - m.positions[lo]
	if !(width > 0) {
		return RGB{}, fmt.Errorf("%w: points %d and %d", ErrDegenerateSeries, lo, hi)
	}
	t := (x - m.positions[lo]) / width

	c := m.color(lo).toColorful().BlendRgb(m.color(hi).toColorful(), t)
	return fromColorful(c.Clamped()), nil
}

// bracket finds adjacent indices lo, hi with positions[lo] < x < positions[hi],
// or lo == hi on an exact hit. The scan starts from the index x would have
// with evenly spaced points, walks back past any position above x, then
// forward past any position below x.
func (m *Mapper) bracket(x float64) (lo, hi int) {
	last := len(m.positions) - 1

	i := int(math.Ceil(x * float64(last)))
	if i > last {
		i = last
	}
	if i < 0 {
		i = 0
	}
	for i > 0 && m.positions[i] > x {
		i--
	}

	hi = i
	for hi < last && m.positions[hi] < x {
		hi++
	}

	// hi == 0 or positions[hi] < x only happen for series whose first or last
	// position lies inside (0, 1); use the nearest point reached.
	if m.positions[hi] == x || hi == 0 || m.positions[hi] < x {
		return hi, hi
	}
	return hi - 1, hi
}

func clamp(c RGB) RGB {
	return fromColorful(c.toColorful().Clamped())
}
