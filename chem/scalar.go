package chem

import (
	"fmt"
	"sync"

	"github.com/proteingraph/resichem/feature"
	"github.com/proteingraph/resichem/table"
)

// IsoelectricPoints maps 3-letter residue names to isoelectric points.
// "UNK" residues are assigned neutral pH 7.0. "ASX" and "GLX" carry the
// fixed arithmetic mean of their constituents (ASP/ASN and GLU/GLN).
var IsoelectricPoints = table.New("chem.isoelectric_points", map[string]float64{
	"ALA": 6.11,
	"ARG": 10.76,
	"ASN": 10.76,
	"ASP": 2.98,
	"ASX": 6.87, // mean of ASP and ASN
	"CYS": 5.02,
	"GLN": 5.65,
	"GLU": 3.08,
	"GLX": 4.35, // mean of GLU and GLN
	"GLY": 6.06,
	"HIS": 7.64,
	"ILE": 6.04,
	"LEU": 6.04,
	"LYS": 9.74,
	"MET": 5.74,
	"PHE": 5.91,
	"PRO": 6.30,
	"SER": 5.68,
	"THR": 5.60,
	"TRP": 5.88,
	"TYR": 5.63,
	"UNK": 7.00, // unknown, assigned neutral
	"VAL": 6.02,
})

// MolecularWeights maps 3-letter residue names to molecular weights in
// amu. "UNK" carries the fixed mean of the known weights. "ASX" and "GLX"
// carry the fixed arithmetic mean of their constituents.
var MolecularWeights = table.New("chem.molecular_weights", map[string]float64{
	"ALA": 89.0935,
	"ARG": 174.2017,
	"ASN": 132.1184,
	"ASP": 133.1032,
	"ASX": 132.6108, // mean of ASP and ASN
	"CYS": 121.1590,
	"GLN": 146.1451,
	"GLU": 147.1299,
	"GLX": 146.6375, // mean of GLU and GLN
	"GLY": 75.0669,
	"HIS": 155.1552,
	"ILE": 131.1736,
	"LEU": 131.1736,
	"LYS": 146.1882,
	"MET": 149.2124,
	"PHE": 165.1900,
	"PRO": 115.1310,
	"SER": 105.0930,
	"THR": 119.1197,
	"TRP": 204.2262,
	"TYR": 181.1894,
	"UNK": 137.1484, // unknown, assigned the mean of known weights
	"VAL": 117.1469,
})

var (
	isoStdOnce sync.Once
	isoStd     table.Table[float64]

	weightStdOnce sync.Once
	weightStd     table.Table[float64]
)

// IsoelectricPointsStd returns the standardized (zero-mean, unit-variance)
// companion of IsoelectricPoints. The table is computed on first use and
// cached for the process lifetime; its key set equals the raw table's.
func IsoelectricPointsStd() table.Table[float64] {
	isoStdOnce.Do(func() {
		isoStd = mustStandardize(IsoelectricPoints)
	})
	return isoStd
}

// MolecularWeightsStd returns the standardized companion of
// MolecularWeights, computed on first use and cached.
func MolecularWeightsStd() table.Table[float64] {
	weightStdOnce.Do(func() {
		weightStd = mustStandardize(MolecularWeights)
	})
	return weightStd
}

// mustStandardize panics on failure. The raw scalar tables are compiled-in
// constants with more than one distinct value, so failure here is a
// programming error, not an input condition.
func mustStandardize(t table.Table[float64]) table.Table[float64] {
	std, err := feature.StandardizeTable(t)
	if err != nil {
		panic(fmt.Sprintf("standardize %s: %v", t.Name(), err))
	}
	return std
}
