package colormap

import "fmt"

// Entry is a named series used to build a Registry.
type Entry struct {
	Name   string
	Series Series
}

// Registry is an immutable name to series mapping. It is safe for
// concurrent use.
type Registry struct {
	names  []string
	series map[string]Series
}

// DefaultRegistry holds the built-in series, rainbow first.
var DefaultRegistry = mustRegistry(builtinEntries()...)

// NewRegistry builds a registry from entries, keeping their order.
// Series are copied; later changes to the caller's slices are not observed.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		names:  make([]string, 0, len(entries)),
		series: make(map[string]Series, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: empty series name", ErrInvalidSeries)
		}
		if _, ok := r.series[e.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSeries, e.Name)
		}
		if len(e.Series) == 0 {
			return nil, fmt.Errorf("series %q: %w", e.Name, ErrEmptySeries)
		}
		r.names = append(r.names, e.Name)
		r.series[e.Name] = e.Series.Clone()
	}
	return r, nil
}

func mustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.series[name]
	return ok
}

// Lookup returns a copy of the named series.
func (r *Registry) Lookup(name string) (Series, error) {
	s, ok := r.series[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s.Clone(), nil
}

// SeriesNames lists the series in DefaultRegistry.
func SeriesNames() []string {
	return DefaultRegistry.Names()
}

// LookupSeries looks up name in DefaultRegistry.
func LookupSeries(name string) (Series, error) {
	return DefaultRegistry.Lookup(name)
}
