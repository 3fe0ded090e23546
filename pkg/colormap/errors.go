package colormap

import "errors"

var (
	// ErrNotFound is returned when a series name is not registered.
	ErrNotFound = errors.New("colormap: series not found")
	// ErrInvalidFormat is returned for an unrecognized output format.
	ErrInvalidFormat = errors.New("colormap: invalid output format")
	// ErrDegenerateRange is returned when the input range collapses to a single point.
	ErrDegenerateRange = errors.New("colormap: input range min equals max")
	// ErrDegenerateSeries is returned when the bracketing control points share a position.
	ErrDegenerateSeries = errors.New("colormap: zero-width bracket between control points")
	// ErrEmptySeries is returned when loading a series without control points.
	ErrEmptySeries = errors.New("colormap: series has no control points")
	// ErrInvalidSeries is returned by strict loading and Series.Validate.
	ErrInvalidSeries = errors.New("colormap: invalid series")
	// ErrInvalidValue is returned when a value normalizes to NaN.
	ErrInvalidValue = errors.New("colormap: value is not a number")
	// ErrDuplicateSeries is returned when a registry is built with a repeated name.
	ErrDuplicateSeries = errors.New("colormap: duplicate series name")
)
