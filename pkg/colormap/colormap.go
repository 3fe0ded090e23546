// Package colormap maps scalar values to colors by piecewise-linear
// interpolation over named, ordered color series.
package colormap

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color as a triplet of fractions in [0, 1].
type RGB struct {
	R, G, B float64
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.toColorful().Clamped().RGBA()
}

// Format implements Color.
func (c RGB) Format() Format { return FormatFraction }

func (c RGB) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B)
}

// MarshalJSON encodes the color as a [r, g, b] array.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{c.R, c.G, c.B})
}

// UnmarshalJSON accepts either a [r, g, b] fraction array or a "#rrggbb" string.
func (c *RGB) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err == nil {
		parsed, err := ParseHex(hex)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var arr [3]float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("color must be [r, g, b] or \"#rrggbb\": %w", err)
	}
	*c = RGB{R: arr[0], G: arr[1], B: arr[2]}
	return nil
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// ParseHex parses a "#rrggbb" or "#rgb" string.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// ControlPoint is one (position, color) pair of a series.
type ControlPoint struct {
	Position float64 `json:"position"`
	Color    RGB     `json:"color"`
}

// Series is an ordered sequence of control points spanning [0, 1].
type Series []ControlPoint

// Clone returns a copy of the series.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// Validate reports whether the series satisfies the control point
// invariants: at least two points, positions strictly increasing from 0 to 1,
// and every channel finite and within [0, 1].
func (s Series) Validate() error {
	if len(s) < 2 {
		return fmt.Errorf("%w: need at least 2 control points, got %d", ErrInvalidSeries, len(s))
	}
	if s[0].Position != 0 {
		return fmt.Errorf("%w: first position is %g, want 0", ErrInvalidSeries, s[0].Position)
	}
	if last := s[len(s)-1].Position; last != 1 {
		return fmt.Errorf("%w: last position is %g, want 1", ErrInvalidSeries, last)
	}
	for i, p := range s {
		if math.IsNaN(p.Position) || math.IsInf(p.Position, 0) {
			return fmt.Errorf("%w: point %d has non-finite position", ErrInvalidSeries, i)
		}
		if i > 0 && p.Position <= s[i-1].Position {
			return fmt.Errorf("%w: position %g at point %d does not increase", ErrInvalidSeries, p.Position, i)
		}
		for _, ch := range [3]float64{p.Color.R, p.Color.G, p.Color.B} {
			if !(ch >= 0 && ch <= 1) {
				return fmt.Errorf("%w: point %d has channel %g outside [0, 1]", ErrInvalidSeries, i, ch)
			}
		}
	}
	return nil
}

// Uniform builds a series from 8-bit colors spaced evenly over [0, 1].
func Uniform(colors ...color.RGBA) Series {
	s := make(Series, len(colors))
	last := len(colors) - 1
	for i, c := range colors {
		pos := 0.0
		if last > 0 {
			pos = float64(i) / float64(last)
		}
		s[i] = ControlPoint{
			Position: pos,
			Color: RGB{
				R: float64(c.R) / 255,
				G: float64(c.G) / 255,
				B: float64(c.B) / 255,
			},
		}
	}
	return s
}
