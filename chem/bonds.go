package chem

import "github.com/proteingraph/resichem/table"

// BondTypes lists the interaction types supported by downstream protein
// graph construction.
var BondTypes = []string{
	"hydrophobic",
	"disulfide",
	"hbond",
	"ionic",
	"aromatic",
	"aromatic_sulphur",
	"cation_pi",
	"backbone",
	"delaunay",
	"vdw",
	"vdw_clash",
	"salt_bridge",
	"proximal",
	"bb_carbonyl_carbonyl",
}

// BondLengthRecord holds the idealised lengths of a covalent bond type in
// Angstroms, together with the watershed lengths used to classify an
// observed bond: below SingleDouble the bond is probably double (or
// higher), below DoubleTriple probably triple. Triple and DoubleTriple
// are only meaningful when HasTriple is set.
type BondLengthRecord struct {
	Single       float64
	Double       float64
	Triple       float64
	SingleDouble float64
	DoubleTriple float64
	HasTriple    bool
}

// BondLengths maps element-pair bond types ("C-N", "O-S") to their
// idealised bond lengths and watersheds.
//
// Baber, Jon C. and Hodgkin, Edward E.: "Automatic Assignment of Chemical
// Connectivity to Organic Molecules in the Cambridge Structural Database",
// J. Chem. Inf. Comput. Sci. 1992, 32, 401-406.
var BondLengths = table.New("chem.bond_lengths", map[string]BondLengthRecord{
	"As-N": {Single: 1.86, Double: 1.835, SingleDouble: 1.845},
	"As-O": {Single: 1.71, Double: 1.66, SingleDouble: 1.68},
	"As-S": {Single: 2.28, Double: 2.08, SingleDouble: 2.15},
	"C-C":  {Single: 1.49, Double: 1.31, Triple: 1.18, SingleDouble: 1.38, DoubleTriple: 1.21, HasTriple: true},
	"C-N":  {Single: 1.42, Double: 1.32, Triple: 1.14, SingleDouble: 1.34, DoubleTriple: 1.20, HasTriple: true},
	"C-O":  {Single: 1.41, Double: 1.22, SingleDouble: 1.28},
	"C-S":  {Single: 1.78, Double: 1.68, SingleDouble: 1.70},
	"C-Te": {Single: 2.20, Double: 1.80, SingleDouble: 2.10},
	"N-N":  {Single: 1.40, Double: 1.22, SingleDouble: 1.32},
	"N-O":  {Single: 1.39, Double: 1.22, SingleDouble: 1.25},
	"N-P":  {Single: 1.69, Double: 1.59, SingleDouble: 1.62},
	"N-S":  {Single: 1.66, Double: 1.54, SingleDouble: 1.58},
	"N-Se": {Single: 1.83, Double: 1.79, SingleDouble: 1.80},
	"O-P":  {Single: 1.60, Double: 1.48, SingleDouble: 1.52},
	"O-S":  {Single: 1.58, Double: 1.45, SingleDouble: 1.54},
	"P-P":  {Single: 2.23, Double: 2.04, SingleDouble: 2.06},
})

// BondOrders maps element-pair bond types to their allowable bond orders.
var BondOrders = table.New("chem.bond_orders", map[string][]int{
	"As-N": {1, 2},
	"As-O": {1, 2},
	"As-S": {1, 2},
	"C-C":  {1, 2, 3},
	"C-N":  {1, 2, 3},
	"C-O":  {1, 2},
	"C-S":  {1, 2},
	"C-Te": {1, 2},
	"N-N":  {1, 2},
	"N-O":  {1, 2},
	"N-P":  {1, 2},
	"N-S":  {1, 2},
	"N-Se": {1, 2},
	"O-P":  {1, 2},
	"O-S":  {1, 2},
	"P-P":  {1, 2},
})

// ClassifyBondOrder classifies an observed bond length (in Angstroms)
// against the watersheds for the given element-pair bond type, returning
// the probable bond order.
func ClassifyBondOrder(pair string, length float64) (int, error) {
	rec, err := BondLengths.Lookup(pair)
	if err != nil {
		return 0, err
	}
	if rec.HasTriple && length < rec.DoubleTriple {
		return 3, nil
	}
	if length < rec.SingleDouble {
		return 2, nil
	}
	return 1, nil
}
