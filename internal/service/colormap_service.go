// Package service provides business logic for the colormap server.
package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/johnkit/colorkit/internal/cache"
	"github.com/johnkit/colorkit/internal/render"
	"github.com/johnkit/colorkit/pkg/colormap"
)

// MaxBatchValues bounds the number of values in one interpolation request.
const MaxBatchValues = 10000

// ErrTooManyValues is returned when a batch exceeds MaxBatchValues.
var ErrTooManyValues = errors.New("too many values in request")

// ColormapServiceConfig contains colormap service configuration.
type ColormapServiceConfig struct {
	Registry      *colormap.Registry
	Cache         *cache.Manager
	Renderer      *render.ColorbarRenderer
	DefaultSeries string
	Strict        bool
}

// ColormapService resolves series, interpolates values and renders colorbars.
// It is safe for concurrent use: every call works on its own Mapper.
type ColormapService struct {
	registry      *colormap.Registry
	cache         *cache.Manager
	renderer      *render.ColorbarRenderer
	defaultSeries string
	strict        bool
}

// InterpolateRequest describes a batch interpolation. Points, when set, take
// precedence over Series. Min and Max default to 0 and 1.
type InterpolateRequest struct {
	Series string          `json:"series,omitempty"`
	Points colormap.Series `json:"points,omitempty"`
	Min    *float64        `json:"min,omitempty"`
	Max    *float64        `json:"max,omitempty"`
	Values []float64       `json:"values"`
	Format string          `json:"format,omitempty"`
}

// InterpolateResult is the response to an InterpolateRequest.
type InterpolateResult struct {
	Series string           `json:"series,omitempty"`
	Min    float64          `json:"min"`
	Max    float64          `json:"max"`
	Format string           `json:"format"`
	Colors []colormap.Color `json:"colors"`
}

// ColorbarRequest describes a colorbar image. Zero Width or Height use the
// renderer's configured size.
type ColorbarRequest struct {
	Series   string
	Width    int
	Height   int
	Vertical bool
	Min      *float64
	Max      *float64
}

// NewColormapService creates a new colormap service.
func NewColormapService(cfg ColormapServiceConfig) *ColormapService {
	registry := cfg.Registry
	if registry == nil {
		registry = colormap.DefaultRegistry
	}
	defaultSeries := cfg.DefaultSeries
	if defaultSeries == "" || !registry.Has(defaultSeries) {
		defaultSeries = registry.Names()[0]
	}

	return &ColormapService{
		registry:      registry,
		cache:         cfg.Cache,
		renderer:      cfg.Renderer,
		defaultSeries: defaultSeries,
		strict:        cfg.Strict,
	}
}

// DefaultSeries returns the series used when a request names none.
func (s *ColormapService) DefaultSeries() string {
	return s.defaultSeries
}

// SeriesNames returns all registered series names.
func (s *ColormapService) SeriesNames() []string {
	return s.registry.Names()
}

// Series returns the control points of a registered series.
func (s *ColormapService) Series(name string) (colormap.Series, error) {
	return s.registry.Lookup(name)
}

// Color maps a single value through a named series.
func (s *ColormapService) Color(series string, value float64, min, max *float64, format colormap.Format) (colormap.Color, error) {
	m, _, err := s.newMapper(series, nil, min, max)
	if err != nil {
		return nil, err
	}
	return m.Interpolate(value, format)
}

// Interpolate maps every value in the request.
func (s *ColormapService) Interpolate(req InterpolateRequest) (*InterpolateResult, error) {
	if len(req.Values) > MaxBatchValues {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValues, len(req.Values), MaxBatchValues)
	}
	format, err := parseFormat(req.Format)
	if err != nil {
		return nil, err
	}

	m, name, err := s.newMapper(req.Series, req.Points, req.Min, req.Max)
	if err != nil {
		return nil, err
	}

	colors := make([]colormap.Color, len(req.Values))
	for i, v := range req.Values {
		c, err := m.Interpolate(v, format)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		colors[i] = c
	}

	min, max := m.InputRange()
	return &InterpolateResult{
		Series: name,
		Min:    min,
		Max:    max,
		Format: format.String(),
		Colors: colors,
	}, nil
}

// InterpolateJSON is Interpolate with the result JSON-encoded. Results for
// named series are cached.
func (s *ColormapService) InterpolateJSON(req InterpolateRequest) ([]byte, error) {
	cacheable := s.cache != nil && len(req.Points) == 0
	var key string
	if cacheable {
		format, err := parseFormat(req.Format)
		if err != nil {
			return nil, err
		}
		min, max := rangeOrDefault(req.Min, req.Max)
		key = cache.InterpolateKey(s.seriesName(req.Series), min, max, format.String(), req.Values)
		if data, ok := s.cache.GetQuery(key); ok {
			return data, nil
		}
	}

	result, err := s.Interpolate(req)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode interpolation result: %w", err)
	}

	if cacheable {
		s.cache.SetQuery(key, data)
	}
	return data, nil
}

// Colorbar renders a PNG colorbar for a named series.
func (s *ColormapService) Colorbar(req ColorbarRequest) ([]byte, error) {
	if s.renderer == nil {
		return nil, errors.New("colorbar renderer not configured")
	}

	width, height := req.Width, req.Height
	defWidth, defHeight := s.renderer.DefaultSize()
	if width == 0 {
		width = defWidth
	}
	if height == 0 {
		height = defHeight
	}
	if req.Vertical && req.Width == 0 && req.Height == 0 {
		width, height = height, width
	}

	name := s.seriesName(req.Series)
	min, max := rangeOrDefault(req.Min, req.Max)
	key := cache.ColorbarKey(name, width, height, req.Vertical, min, max)
	if s.cache != nil {
		if data, ok := s.cache.GetColorbar(key); ok {
			return data, nil
		}
	}

	m, _, err := s.newMapper(name, nil, req.Min, req.Max)
	if err != nil {
		return nil, err
	}
	data, err := s.renderer.RenderColorbar(m, width, height, req.Vertical)
	if err != nil {
		return nil, fmt.Errorf("render colorbar %q: %w", name, err)
	}

	if s.cache != nil {
		// A full cache only costs a re-render next time.
		_ = s.cache.SetColorbar(key, data)
	}
	return data, nil
}

func (s *ColormapService) seriesName(name string) string {
	if name == "" {
		return s.defaultSeries
	}
	return name
}

// newMapper builds a Mapper loaded with points, or with the named series when
// points is empty.
func (s *ColormapService) newMapper(series string, points colormap.Series, min, max *float64) (*colormap.Mapper, string, error) {
	lo, hi := rangeOrDefault(min, max)
	opts := []colormap.Option{
		colormap.WithRegistry(s.registry),
		colormap.WithRange(lo, hi),
	}
	if s.strict {
		opts = append(opts, colormap.WithStrict())
	}

	name := ""
	if len(points) > 0 {
		opts = append(opts, colormap.WithRawSeries(points))
	} else {
		name = s.seriesName(series)
		opts = append(opts, colormap.WithSeries(name))
	}

	m, err := colormap.New(opts...)
	if err != nil {
		return nil, "", err
	}
	return m, name, nil
}

func parseFormat(s string) (colormap.Format, error) {
	if s == "" {
		return colormap.FormatByte, nil
	}
	return colormap.ParseFormat(s)
}

func rangeOrDefault(min, max *float64) (float64, float64) {
	lo, hi := 0.0, 1.0
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}
	return lo, hi
}
