package colormap

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects the output encoding of an interpolated color.
// The zero value is FormatByte.
type Format int

const (
	// FormatByte renders each channel as round(255*f) in [0, 255].
	FormatByte Format = iota
	// FormatFraction returns the blended channel fractions unchanged.
	FormatFraction
	// FormatHex renders the byte triplet as "#rrggbb".
	FormatHex
)

func (f Format) String() string {
	switch f {
	case FormatByte:
		return "byte"
	case FormatFraction:
		return "fraction"
	case FormatHex:
		return "hex"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Valid reports whether f is one of the defined formats.
func (f Format) Valid() bool {
	switch f {
	case FormatByte, FormatFraction, FormatHex:
		return true
	}
	return false
}

// ParseFormat parses a format name. Accepted names are "byte" or "rgb",
// "fraction" or "float", and "hex", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "byte", "rgb":
		return FormatByte, nil
	case "fraction", "float":
		return FormatFraction, nil
	case "hex":
		return FormatHex, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// Color is an interpolation result in one of the output encodings:
// RGB for FormatFraction, Bytes for FormatByte and Hex for FormatHex.
type Color interface {
	Format() Format
	String() string
}

// Bytes is a color with 8-bit channels.
type Bytes struct {
	R, G, B uint8
}

// Format implements Color.
func (b Bytes) Format() Format { return FormatByte }

func (b Bytes) String() string {
	return fmt.Sprintf("(%d, %d, %d)", b.R, b.G, b.B)
}

// MarshalJSON encodes the color as a [r, g, b] array of integers.
func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{int(b.R), int(b.G), int(b.B)})
}

// Hex is a color rendered as a 7-character "#rrggbb" string.
type Hex string

// Format implements Color.
func (h Hex) Format() Format { return FormatHex }

func (h Hex) String() string { return string(h) }

// Render encodes c in the requested format. Channels are clamped to [0, 1]
// before conversion.
func Render(c RGB, f Format) (Color, error) {
	cc := c.toColorful().Clamped()
	switch f {
	case FormatFraction:
		return fromColorful(cc), nil
	case FormatByte:
		r, g, b := cc.RGB255()
		return Bytes{R: r, G: g, B: b}, nil
	case FormatHex:
		return Hex(cc.Hex()), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, f)
	}
}
