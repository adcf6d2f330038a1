package atom

// Backbone lists the atoms present in amino-acid backbones.
var Backbone = []string{"N", "CA", "C", "O"}

// ProteinAtoms lists the standard heavy-atom names present in protein
// structures, including the C-terminal "OXT".
var ProteinAtoms = []string{
	"N", "CA", "C", "O", "CB", "OG", "CG", "CD1", "CD2", "CE1",
	"CE2", "CZ", "OD1", "ND2", "CG1", "CG2", "CD", "CE", "NZ",
	"OD2", "OE1", "NE2", "OE2", "OH", "NE", "NH1", "NH2", "OG1",
	"SD", "ND1", "SG", "NE1", "CE3", "CZ2", "CZ3", "CH2", "OXT",
}

// RingAtoms maps aromatic residue names to the atoms that are part of
// their rings. Both the ambiguous short names (e.g. "CD") and the fully
// branch-numbered names are listed so that either naming form resolves.
var RingAtoms = map[string][]string{
	"HIS": {"CG", "CD", "CE", "ND", "NE", "CD2", "ND1", "CE1", "NE2"},
	"PHE": {"CG", "CD", "CE", "CZ", "CD1", "CD2", "CE1", "CE2"},
	"TRP": {"CD2", "CE2", "CE3", "CZ2", "CZ3", "CH2"},
	"TYR": {"CG", "CD", "CE", "CZ", "CD1", "CD2", "CE1", "CE2"},
}

// RingNormalAtoms maps aromatic residue names to the three atoms used to
// compute the ring normal vector.
var RingNormalAtoms = map[string][]string{
	"PHE": {"CG", "CE1", "CE2"},
	"TRP": {"CD2", "CZ2", "CZ3"},
	"TYR": {"CG", "CE1", "CE2"},
}

// Disulfide lists the atoms capable of forming disulfide bonds.
var Disulfide = []string{"SG"}

// SaltBridge lists the atoms that can form salt bridges.
var SaltBridge = []string{"OD1", "OD2", "OE1", "OE2", "NZ", "NH1", "NH2"}
