package colormap

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	// 0.7*255 and 0.3*255 are exact ties in float64; both round up.
	c := RGB{0.7, 0.3, 0.515}

	tests := []struct {
		name   string
		format Format
		want   Color
	}{
		{"fraction", FormatFraction, RGB{0.7, 0.3, 0.515}},
		{"byte", FormatByte, Bytes{179, 77, 131}},
		{"hex", FormatHex, Hex("#b34d83")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(c, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.format, got.Format())
		})
	}
}

func TestRender_NonTieChannels(t *testing.T) {
	c := RGB{0.2, 0.6, 0.8}

	b, err := Render(c, FormatByte)
	require.NoError(t, err)
	assert.Equal(t, Bytes{51, 153, 204}, b)

	h, err := Render(c, FormatHex)
	require.NoError(t, err)
	assert.Equal(t, Hex("#3399cc"), h)
}

func TestRender_InvalidFormat(t *testing.T) {
	_, err := Render(RGB{}, Format(-1))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestRender_BytesRoundHalfUp(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		f := float64(i) / 1000
		got, err := Render(RGB{f, f, f}, FormatByte)
		require.NoError(t, err)
		want := uint8(math.Round(255 * f))
		assert.Equal(t, Bytes{want, want, want}, got, "fraction %g", f)
	}
}

func TestRender_HexShape(t *testing.T) {
	pattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	m, err := New(WithSeries(Rainbow))
	require.NoError(t, err)

	for v := -0.1; v <= 1.1; v += 0.01 {
		c, err := m.Interpolate(v, FormatHex)
		require.NoError(t, err)
		assert.Regexp(t, pattern, c.String())

		b, err := m.Interpolate(v, FormatByte)
		require.NoError(t, err)
		bb := b.(Bytes)
		assert.Equal(t, fmt.Sprintf("#%02x%02x%02x", bb.R, bb.G, bb.B), c.String(), "value %g", v)
	}
}

func TestRender_ClampsOutOfRangeChannels(t *testing.T) {
	got, err := Render(RGB{-0.2, 0.5, 1.4}, FormatByte)
	require.NoError(t, err)
	assert.Equal(t, Bytes{0, 128, 255}, got)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"byte", FormatByte, false},
		{"RGB", FormatByte, false},
		{"fraction", FormatFraction, false},
		{" float ", FormatFraction, false},
		{"hex", FormatHex, false},
		{"HEX", FormatHex, false},
		{"", 0, true},
		{"hsl", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "byte", FormatByte.String())
	assert.Equal(t, "fraction", FormatFraction.String())
	assert.Equal(t, "hex", FormatHex.String())
	assert.Equal(t, "Format(9)", Format(9).String())
	assert.False(t, Format(9).Valid())
}

func TestColorJSON(t *testing.T) {
	out, err := json.Marshal([]Color{
		RGB{0.5, 0.25, 1},
		Bytes{1, 2, 255},
		Hex("#0a0b0c"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[[0.5,0.25,1],[1,2,255],"#0a0b0c"]`, string(out))
}
