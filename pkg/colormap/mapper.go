package colormap

// Mapper holds one loaded series and an input range, and maps scalar values
// in that range to colors.
//
// The series is kept as parallel position and channel slices for indexed
// access. A Mapper is not safe for concurrent use; give each goroutine its own
// instance or guard it externally.
type Mapper struct {
	registry *Registry
	strict   bool

	positions []float64
	reds      []float64
	greens    []float64
	blues     []float64

	min, max float64
}

type options struct {
	registry *Registry
	series   string
	raw      Series
	min, max float64
	strict   bool
}

// Option configures a Mapper.
type Option func(*options)

// WithRegistry sets the registry used by LoadByName. Defaults to DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithSeries pre-loads the named series.
func WithSeries(name string) Option {
	return func(o *options) { o.series = name }
}

// WithRawSeries pre-loads the given control points.
func WithRawSeries(s Series) Option {
	return func(o *options) { o.raw = s }
}

// WithRange sets the initial input range.
func WithRange(min, max float64) Option {
	return func(o *options) { o.min, o.max = min, max }
}

// WithStrict makes every load validate the series first.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// New returns a Mapper with input range [0, 1] unless configured otherwise.
// Without WithSeries or WithRawSeries the mapper stays empty until the first
// load; interpolating on an empty mapper uses the rainbow series.
func New(opts ...Option) (*Mapper, error) {
	o := options{registry: DefaultRegistry, min: 0, max: 1}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Mapper{
		registry: o.registry,
		strict:   o.strict,
		min:      o.min,
		max:      o.max,
	}

	switch {
	case o.raw != nil:
		if err := m.LoadRaw(o.raw); err != nil {
			return nil, err
		}
	case o.series != "":
		if err := m.LoadByName(o.series); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Load replaces the active series. Unless the mapper is strict the points are
// not validated: a malformed series gives undefined colors, not an error.
// On failure the previously loaded series is kept.
func (m *Mapper) Load(s Series) error {
	if len(s) == 0 {
		return ErrEmptySeries
	}
	if m.strict {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	n := len(s)
	positions := make([]float64, n)
	reds := make([]float64, n)
	greens := make([]float64, n)
	blues := make([]float64, n)
	for i, p := range s {
		positions[i] = p.Position
		reds[i] = p.Color.R
		greens[i] = p.Color.G
		blues[i] = p.Color.B
	}

	m.positions, m.reds, m.greens, m.blues = positions, reds, greens, blues
	return nil
}

// LoadRaw loads control points supplied by the caller.
func (m *Mapper) LoadRaw(points []ControlPoint) error {
	return m.Load(Series(points))
}

// LoadByName loads a series from the mapper's registry.
func (m *Mapper) LoadByName(name string) error {
	s, err := m.registry.Lookup(name)
	if err != nil {
		return err
	}
	return m.Load(s)
}

// SetInputRange replaces the input range. min may exceed max, which inverts
// the mapping direction.
func (m *Mapper) SetInputRange(min, max float64) {
	m.min, m.max = min, max
}

// InputRange returns the active input range.
func (m *Mapper) InputRange() (min, max float64) {
	return m.min, m.max
}

// Loaded reports whether a series has been loaded.
func (m *Mapper) Loaded() bool {
	return len(m.positions) > 0
}

// Series returns a copy of the loaded series, or nil if none is loaded.
func (m *Mapper) Series() Series {
	if !m.Loaded() {
		return nil
	}
	s := make(Series, len(m.positions))
	for i := range s {
		s[i] = ControlPoint{Position: m.positions[i], Color: m.color(i)}
	}
	return s
}

func (m *Mapper) ensureLoaded() {
	if m.Loaded() {
		return
	}
	// The built-in table always passes validation, so this cannot fail.
	_ = m.Load(rainbowSeries)
}

func (m *Mapper) color(i int) RGB {
	return RGB{R: m.reds[i], G: m.greens[i], B: m.blues[i]}
}
