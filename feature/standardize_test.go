package feature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proteingraph/resichem/table"
)

func TestStandardizeKnownValues(t *testing.T) {
	// Molecular weights for ALA, GLY, VAL: mean ~93.7691, population std ~17.497.
	raw := map[string]float64{
		"ALA": 89.0935,
		"GLY": 75.0669,
		"VAL": 117.1469,
	}

	std, err := Standardize(raw)
	require.NoError(t, err)
	require.Len(t, std, 3)

	assert.InDelta(t, -1.0729, std["GLY"], 1e-3)

	// Standardized values have zero mean and unit variance.
	var sum, sqsum float64
	for _, v := range std {
		sum += v
	}
	mean := sum / float64(len(std))
	for _, v := range std {
		sqsum += (v - mean) * (v - mean)
	}
	assert.InDelta(t, 0.0, mean, 1e-12)
	assert.InDelta(t, 1.0, math.Sqrt(sqsum/float64(len(std))), 1e-12)
}

func TestStandardizeMatchesFormula(t *testing.T) {
	raw := map[string]float64{
		"ALA": 6.11, "ASP": 2.98, "LYS": 9.74, "HIS": 7.64, "GLY": 6.06,
	}

	var sum float64
	for _, v := range raw {
		sum += v
	}
	mean := sum / float64(len(raw))
	var sqsum float64
	for _, v := range raw {
		sqsum += (v - mean) * (v - mean)
	}
	std := math.Sqrt(sqsum / float64(len(raw)))

	got, err := Standardize(raw)
	require.NoError(t, err)

	require.Len(t, got, len(raw))
	for k, v := range raw {
		assert.InDelta(t, (v-mean)/std, got[k], 1e-12, "key %s", k)
	}
}

func TestStandardizeKeySetPreserved(t *testing.T) {
	raw := map[string]float64{"A": 1, "B": 2, "C": 3, "D": 4}

	got, err := Standardize(raw)
	require.NoError(t, err)

	require.Len(t, got, len(raw))
	for k := range raw {
		_, ok := got[k]
		assert.True(t, ok, "key %s missing from standardized table", k)
	}
}

func TestStandardizeDoesNotMutateInput(t *testing.T) {
	raw := map[string]float64{"A": 1, "B": 5}
	_, err := Standardize(raw)
	require.NoError(t, err)

	assert.Equal(t, 1.0, raw["A"])
	assert.Equal(t, 5.0, raw["B"])
}

func TestStandardizeEmptyTable(t *testing.T) {
	_, err := Standardize(map[string]float64{})
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestStandardizeSingleEntryDegenerate(t *testing.T) {
	// A single-entry table has zero variance; 0/0 must not leak out.
	_, err := Standardize(map[string]float64{"X": 5.0})
	assert.ErrorIs(t, err, ErrDegenerateDistribution)
}

func TestStandardizeIdenticalValuesDegenerate(t *testing.T) {
	_, err := Standardize(map[string]float64{"A": 2.5, "B": 2.5, "C": 2.5})
	assert.ErrorIs(t, err, ErrDegenerateDistribution)
}

func TestStandardizeRepeatedCallsBitIdentical(t *testing.T) {
	// Accumulation runs in sorted key order, so the floating-point sums
	// must not drift with map iteration order between calls.
	raw := map[string]float64{
		"ALA": 89.0935, "ARG": 174.2017, "ASN": 132.1184, "ASP": 133.1032,
		"CYS": 121.1590, "GLN": 146.1451, "GLU": 147.1299, "GLY": 75.0669,
		"HIS": 155.1552, "ILE": 131.1736, "LEU": 131.1736, "LYS": 146.1882,
		"MET": 149.2124, "PHE": 165.1900, "PRO": 115.1310, "SER": 105.0930,
		"THR": 119.1197, "TRP": 204.2262, "TYR": 181.1894, "VAL": 117.1469,
	}

	first, err := Standardize(raw)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		again, err := Standardize(raw)
		require.NoError(t, err)
		for k, v := range first {
			if again[k] != v {
				t.Fatalf("call %d: value for %s changed: %v vs %v", i, k, again[k], v)
			}
		}
	}
}

func TestStandardizeNoNaNOrInf(t *testing.T) {
	raw := map[string]float64{"A": -3.5, "B": 0, "C": 12.25, "D": 7}

	got, err := Standardize(raw)
	require.NoError(t, err)
	for k, v := range got {
		assert.False(t, math.IsNaN(v), "NaN at %s", k)
		assert.False(t, math.IsInf(v, 0), "Inf at %s", k)
	}
}

func TestStandardizeTable(t *testing.T) {
	tbl := table.New("chem.test", map[string]float64{"A": 1, "B": 2, "C": 3})

	std, err := StandardizeTable(tbl)
	require.NoError(t, err)

	assert.Equal(t, "chem.test.std", std.Name())
	assert.Equal(t, tbl.Keys(), std.Keys())

	v, err := std.Lookup("B")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, 1e-12)
}

func TestStandardizeTableDegenerate(t *testing.T) {
	tbl := table.New("chem.test", map[string]float64{"A": 1})

	_, err := StandardizeTable(tbl)
	require.ErrorIs(t, err, ErrDegenerateDistribution)
	assert.Contains(t, err.Error(), "chem.test")
}
