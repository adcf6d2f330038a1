package chem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proteingraph/resichem/chem"
	"github.com/proteingraph/resichem/table"
	"github.com/proteingraph/resichem/vocabulary/residue"
)

var distanceMatrices = map[string]table.Table[float64]{
	"grantham":        chem.GranthamChemicalDistance,
	"schneider_wrede": chem.SchneiderWredeDistance,
}

func TestDistanceMatricesCoverAllBasePairs(t *testing.T) {
	for name, m := range distanceMatrices {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 400, m.Len())
			for _, a := range residue.BaseAminoAcids {
				for _, b := range residue.BaseAminoAcids {
					assert.True(t, m.Has(a+b), "missing pair %s%s", a, b)
				}
			}
		})
	}
}

func TestDistanceMatricesBothDirectionsStored(t *testing.T) {
	// Both directions of every pair are explicit entries. The stored
	// values are row-normalised, so the reverse direction is close to
	// but not necessarily equal to the forward one and must never be
	// derived at lookup time.
	for name, m := range distanceMatrices {
		t.Run(name, func(t *testing.T) {
			for _, key := range m.Keys() {
				reverse := string(key[1]) + string(key[0])
				require.True(t, m.Has(reverse), "pair %s stored without reverse %s", key, reverse)

				forward, err := m.Lookup(key)
				require.NoError(t, err)
				back, err := m.Lookup(reverse)
				require.NoError(t, err)
				assert.InDelta(t, forward, back, 0.35, "pair %s vs %s", key, reverse)
			}
		})
	}
}

func TestDistanceMatricesSelfDistanceZero(t *testing.T) {
	for name, m := range distanceMatrices {
		t.Run(name, func(t *testing.T) {
			for _, a := range residue.BaseAminoAcids {
				v, err := m.Lookup(a + a)
				require.NoError(t, err)
				assert.Equal(t, 0.0, v, "self-distance %s%s", a, a)
			}
		})
	}
}

func TestDistanceMatricesValuesInUnitInterval(t *testing.T) {
	for name, m := range distanceMatrices {
		t.Run(name, func(t *testing.T) {
			for _, key := range m.Keys() {
				v, err := m.Lookup(key)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, v, 0.0, "pair %s", key)
				assert.LessOrEqual(t, v, 1.0, "pair %s", key)
			}
		})
	}
}

func TestDistanceMatricesReferenceValues(t *testing.T) {
	tests := []struct {
		pair string
		want float64
	}{
		{"AC", 0.112},
		{"CA", 0.114}, // row-normalised: differs from AC
		{"AR", 1.0},
		{"IL", 0.013},
		{"YR", 0.995},
		{"WD", 1.0},
		{"HG", 1.0},
	}

	for name, m := range distanceMatrices {
		t.Run(name, func(t *testing.T) {
			for _, tc := range tests {
				got, err := m.Lookup(tc.pair)
				require.NoError(t, err, "pair %s", tc.pair)
				assert.Equal(t, tc.want, got, "pair %s", tc.pair)
			}
		})
	}
}

func TestDistanceLookupOutsideDomain(t *testing.T) {
	// B, J, X, Z and non-standard codes are outside the matrices.
	for name, m := range distanceMatrices {
		t.Run(name, func(t *testing.T) {
			_, err := m.Lookup("AX")
			assert.ErrorIs(t, err, table.ErrKeyNotFound)
			_, err = m.Lookup("BB")
			assert.ErrorIs(t, err, table.ErrKeyNotFound)
		})
	}
}
