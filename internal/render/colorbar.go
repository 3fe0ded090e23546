// Package render provides colorbar rendering using fogleman/gg.
package render

import (
	"bytes"
	"fmt"
	"image/png"
	"sync"

	"github.com/fogleman/gg"
	"github.com/johnkit/colorkit/pkg/colormap"
)

// Config contains renderer configuration.
type Config struct {
	Width  int
	Height int
}

// ColorbarRenderer renders colorbar strips from a mapper.
type ColorbarRenderer struct {
	config      Config
	contextPool sync.Pool
	bufferPool  sync.Pool
}

// NewColorbarRenderer creates a new colorbar renderer. Contexts of the
// configured size are pooled; other sizes are allocated per call.
func NewColorbarRenderer(cfg Config) *ColorbarRenderer {
	return &ColorbarRenderer{
		config: cfg,
		contextPool: sync.Pool{
			New: func() interface{} {
				return gg.NewContext(cfg.Width, cfg.Height)
			},
		},
		bufferPool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, 8*1024))
			},
		},
	}
}

// DefaultSize returns the configured colorbar size.
func (r *ColorbarRenderer) DefaultSize() (width, height int) {
	return r.config.Width, r.config.Height
}

// RenderColorbar renders the mapper's input range as a gradient strip.
// Horizontal bars run from the range minimum on the left to the maximum on
// the right; vertical bars put the maximum at the top.
func (r *ColorbarRenderer) RenderColorbar(m *colormap.Mapper, width, height int, vertical bool) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid colorbar size %dx%d", width, height)
	}

	var dc *gg.Context
	if width == r.config.Width && height == r.config.Height {
		dc = r.contextPool.Get().(*gg.Context)
		defer r.contextPool.Put(dc)
	} else {
		dc = gg.NewContext(width, height)
	}

	min, max := m.InputRange()
	steps := width
	if vertical {
		steps = height
	}

	for i := 0; i < steps; i++ {
		frac := 0.0
		if steps > 1 {
			frac = float64(i) / float64(steps-1)
		}
		if vertical {
			frac = 1 - frac
		}

		c, err := m.At(min + frac*(max-min))
		if err != nil {
			return nil, err
		}
		dc.SetColor(c)

		if vertical {
			dc.DrawRectangle(0, float64(i), float64(width), 1)
		} else {
			dc.DrawRectangle(float64(i), 0, 1, float64(height))
		}
		dc.Fill()
	}

	return r.encodeContext(dc)
}

func (r *ColorbarRenderer) encodeContext(dc *gg.Context) ([]byte, error) {
	buf := r.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		r.bufferPool.Put(buf)
	}()

	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(buf, dc.Image()); err != nil {
		return nil, err
	}

	// Copy buffer contents (buffer will be reused)
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}
