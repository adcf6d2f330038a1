// Package feature provides standardization of raw per-residue scalar
// features into zero-mean, unit-variance form for downstream graph
// feature construction.
//
// Standardization uses the classic transform (x - mean) / std with the
// population standard deviation (denominator N). The computation is a pure
// function of its input: same table in, same table out, input never
// mutated, safe to call concurrently.
package feature

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/proteingraph/resichem/table"
)

var (
	// ErrEmptyTable indicates standardization was attempted on a table
	// with no entries.
	ErrEmptyTable = errors.New("cannot standardize empty table")

	// ErrDegenerateDistribution indicates the input values have zero
	// variance (all identical, including every single-entry table).
	// Standardizing such a table would divide by zero; the error is
	// surfaced so callers can decide between rejecting the table and
	// treating it as already standardized.
	ErrDegenerateDistribution = errors.New("degenerate distribution: zero variance")
)

// Standardize returns a new mapping with the same key set as raw, where
// each value is replaced by (value - mean) / std. The mean and population
// standard deviation are computed over all values in raw, accumulated in
// sorted key order, so repeated calls return bit-identical results.
//
// Fails with ErrEmptyTable for an empty input and ErrDegenerateDistribution
// when the values have zero variance. It never returns NaN or Inf.
func Standardize(raw map[string]float64) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyTable
	}

	// Summation order is fixed (sorted keys) so that repeated calls on
	// the same input produce bit-identical results; map iteration order
	// would perturb the floating-point sums at the ULP level.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// First pass: arithmetic mean.
	var sum float64
	for _, k := range keys {
		sum += raw[k]
	}
	mean := sum / float64(len(raw))

	// Second pass: population standard deviation (denominator N).
	var sqsum float64
	for _, k := range keys {
		d := raw[k] - mean
		sqsum += d * d
	}
	std := math.Sqrt(sqsum / float64(len(raw)))

	if std == 0 {
		return nil, fmt.Errorf("%w (n=%d, mean=%g)", ErrDegenerateDistribution, len(raw), mean)
	}

	out := make(map[string]float64, len(raw))
	for _, k := range keys {
		out[k] = (raw[k] - mean) / std
	}
	return out, nil
}

// StandardizeTable standardizes a scalar reference table, returning a new
// table named "<name>.std" over exactly the same key set.
func StandardizeTable(t table.Table[float64]) (table.Table[float64], error) {
	std, err := Standardize(t.Entries())
	if err != nil {
		return table.Table[float64]{}, fmt.Errorf("standardize table %q: %w", t.Name(), err)
	}
	return table.New(t.Name()+".std", std), nil
}
