package chem_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proteingraph/resichem/chem"
	"github.com/proteingraph/resichem/table"
	"github.com/proteingraph/resichem/vocabulary/residue"
)

func TestScalarTablesCoverStandardNames(t *testing.T) {
	for _, tbl := range []table.Table[float64]{chem.IsoelectricPoints, chem.MolecularWeights} {
		t.Run(tbl.Name(), func(t *testing.T) {
			assert.Equal(t, len(residue.StandardNames), tbl.Len())
			for _, name := range residue.StandardNames {
				assert.True(t, tbl.Has(name), "missing residue %q", name)
			}
		})
	}
}

func TestDerivedEntryConsistency(t *testing.T) {
	asx, err := chem.MolecularWeights.Lookup("ASX")
	require.NoError(t, err)
	asp, _ := chem.MolecularWeights.Lookup("ASP")
	asn, _ := chem.MolecularWeights.Lookup("ASN")
	assert.InDelta(t, (asp+asn)/2, asx, 1e-6)

	glx, err := chem.MolecularWeights.Lookup("GLX")
	require.NoError(t, err)
	glu, _ := chem.MolecularWeights.Lookup("GLU")
	gln, _ := chem.MolecularWeights.Lookup("GLN")
	assert.InDelta(t, (glu+gln)/2, glx, 1e-6)

	iasx, err := chem.IsoelectricPoints.Lookup("ASX")
	require.NoError(t, err)
	iasp, _ := chem.IsoelectricPoints.Lookup("ASP")
	iasn, _ := chem.IsoelectricPoints.Lookup("ASN")
	assert.InDelta(t, (iasp+iasn)/2, iasx, 1e-6)

	// The reference GLX isoelectric point is the fixed constant 4.35,
	// a rounded form of the GLU/GLN mean (4.365). The stored constant
	// is authoritative; downstream numeric behavior depends on it.
	iglx, err := chem.IsoelectricPoints.Lookup("GLX")
	require.NoError(t, err)
	assert.Equal(t, 4.35, iglx)
	iglu, _ := chem.IsoelectricPoints.Lookup("GLU")
	igln, _ := chem.IsoelectricPoints.Lookup("GLN")
	assert.InDelta(t, (iglu+igln)/2, iglx, 0.02)
}

func TestUnknownResiduePlaceholders(t *testing.T) {
	iso, err := chem.IsoelectricPoints.Lookup("UNK")
	require.NoError(t, err)
	assert.Equal(t, 7.00, iso) // neutral pH

	w, err := chem.MolecularWeights.Lookup("UNK")
	require.NoError(t, err)
	assert.Equal(t, 137.1484, w) // mean of known weights
}

func TestStandardizedTablesKeySetsMatchRaw(t *testing.T) {
	assert.Equal(t, chem.IsoelectricPoints.Keys(), chem.IsoelectricPointsStd().Keys())
	assert.Equal(t, chem.MolecularWeights.Keys(), chem.MolecularWeightsStd().Keys())
}

func TestStandardizedValuesMatchTransform(t *testing.T) {
	tests := []struct {
		name string
		raw  table.Table[float64]
		std  table.Table[float64]
	}{
		{"isoelectric_points", chem.IsoelectricPoints, chem.IsoelectricPointsStd()},
		{"molecular_weights", chem.MolecularWeights, chem.MolecularWeightsStd()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries := tc.raw.Entries()
			var sum float64
			for _, v := range entries {
				sum += v
			}
			mean := sum / float64(len(entries))
			var sqsum float64
			for _, v := range entries {
				sqsum += (v - mean) * (v - mean)
			}
			std := math.Sqrt(sqsum / float64(len(entries)))

			for k, v := range entries {
				got, err := tc.std.Lookup(k)
				require.NoError(t, err, "key %s", k)
				assert.InDelta(t, (v-mean)/std, got, 1e-12, "key %s", k)
			}
		})
	}
}

func TestStandardizedTableSelection(t *testing.T) {
	std, ok := chem.StandardizedTable("chem.molecular_weights")
	require.True(t, ok)
	assert.Equal(t, "chem.molecular_weights.std", std.Name())

	// Same cached table the accessor returns, value for value.
	for _, k := range std.Keys() {
		a, _ := std.Lookup(k)
		b, _ := chem.MolecularWeightsStd().Lookup(k)
		assert.Equal(t, a, b, "key %s", k)
	}

	_, ok = chem.StandardizedTable("chem.vdw_radii")
	assert.False(t, ok)
}

func TestStandardizedTablesCached(t *testing.T) {
	// Repeated calls return the same cached table with bit-identical values.
	first := chem.MolecularWeightsStd()
	second := chem.MolecularWeightsStd()
	require.Equal(t, first.Keys(), second.Keys())
	for _, k := range first.Keys() {
		a, _ := first.Lookup(k)
		b, _ := second.Lookup(k)
		assert.Equal(t, a, b, "key %s", k)
	}
}
