package interp

import "fmt"

// Table is a 1-D piecewise-linear breakpoint table. X must be strictly
// increasing and the same length as Y.
type Table struct {
	X []float64
	Y []float64
}

// OutOfRangeError reports a query beyond the last breakpoint of a table.
type OutOfRangeError struct {
	Query float64
	Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("interp: query %g beyond table end %g", e.Query, e.Max)
}

// FromPairs builds a table from (x, y) pairs.
func FromPairs(pairs [][2]float64) Table {
	t := Table{
		X: make([]float64, len(pairs)),
		Y: make([]float64, len(pairs)),
	}
	for i, p := range pairs {
		t.X[i] = p[0]
		t.Y[i] = p[1]
	}
	return t
}

func (t Table) Validate() error {
	if len(t.X) != len(t.Y) {
		return fmt.Errorf("interp: %d x values but %d y values", len(t.X), len(t.Y))
	}
	if len(t.X) < 2 {
		return fmt.Errorf("interp: need at least 2 breakpoints, got %d", len(t.X))
	}
	for i := 1; i < len(t.X); i++ {
		if t.X[i] <= t.X[i-1] {
			return fmt.Errorf("interp: breakpoints not strictly increasing at index %d (%g <= %g)", i, t.X[i], t.X[i-1])
		}
	}
	return nil
}

// Span returns the first and last breakpoint. Queries at or beyond the last
// breakpoint fail; queries below the first extrapolate along the first
// segment.
func (t Table) Span() (lo, hi float64) {
	return t.X[0], t.X[len(t.X)-1]
}

// At returns the linearly interpolated value at q. The table is scanned for
// the first segment whose upper breakpoint exceeds q, so values below the
// first breakpoint extrapolate along the first segment, and values at or
// beyond the last breakpoint return an OutOfRangeError rather than a number.
func (t Table) At(q float64) (float64, error) {
	for i := 0; i+1 < len(t.X); i++ {
		if t.X[i+1] > q {
			slope := (t.Y[i+1] - t.Y[i]) / (t.X[i+1] - t.X[i])
			return t.Y[i] + slope*(q-t.X[i]), nil
		}
	}
	return 0, &OutOfRangeError{Query: q, Max: t.X[len(t.X)-1]}
}
