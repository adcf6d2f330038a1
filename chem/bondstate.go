package chem

import "github.com/proteingraph/resichem/table"

// DefaultBondState maps atom names to their bond-state token when the
// residue is not known or has no residue-specific assignment. Backbone
// atoms and hydrogens are covered here; side-chain heavy atoms are
// assigned per residue in ResidueAtomBondState.
var DefaultBondState = table.New("chem.default_bond_state", map[string]string{
	"N":   "Nsb",
	"CA":  "Csb",
	"C":   "Cdb",
	"O":   "Odb",
	"OXT": "Osb",
	"CB":  "Csb",
	"H":   "Hsb",
	// Assumed standard hydrogens. The bond detection tolerance is larger
	// than H's covalent radius, so the exact state matters little.
	"HG1":  "Hsb",
	"HE":   "Hsb",
	"1HH1": "Hsb",
	"1HH2": "Hsb",
	"2HH1": "Hsb",
	"2HH2": "Hsb",
	"HG":   "Hsb",
	"HH":   "Hsb",
	"1HD2": "Hsb",
	"2HD2": "Hsb",
	"HZ1":  "Hsb",
	"HZ2":  "Hsb",
	"HZ3":  "Hsb",
})

// ResidueAtomBondState maps residue names to the bond-state tokens of
// their side-chain atoms. The "XXX" entry carries the backbone assignment
// shared by all residues.
var ResidueAtomBondState = table.New("chem.residue_atom_bond_state", map[string]map[string]string{
	"XXX": {
		"N":   "Nsb",
		"CA":  "Csb",
		"C":   "Cdb",
		"O":   "Odb",
		"OXT": "Osb",
		"CB":  "Csb",
		"H":   "Hsb",
	},
	"VAL": {"CG1": "Csb", "CG2": "Csb"},
	"LEU": {"CG": "Csb", "CD1": "Csb", "CD2": "Csb"},
	"ILE": {"CG1": "Csb", "CG2": "Csb", "CD1": "Csb"},
	"MET": {"CG": "Csb", "SD": "Ssb", "CE": "Csb"},
	"PHE": {
		"CG":  "Cdb",
		"CD1": "Cres",
		"CD2": "Cres",
		"CE1": "Cdb",
		"CE2": "Cdb",
		"CZ":  "Cres",
	},
	"PRO": {"CG": "Csb", "CD": "Csb"},
	"SER": {"OG": "Osb"},
	"THR": {"OG1": "Osb", "CG2": "Csb"},
	"CYS": {"SG": "Ssb"},
	"ASN": {"CG": "Csb", "OD1": "Odb", "ND2": "Ndb"},
	"GLN": {"CG": "Csb", "CD": "Csb", "OE1": "Odb", "NE2": "Ndb"},
	"TYR": {
		"CG":  "Cdb",
		"CD1": "Cres",
		"CD2": "Cres",
		"CE1": "Cdb",
		"CE2": "Cdb",
		"CZ":  "Cres",
		"OH":  "Osb",
	},
	"TRP": {
		"CG":  "Cdb",
		"CD1": "Cdb",
		"CD2": "Cres",
		"NE1": "Nsb",
		"CE2": "Cdb",
		"CE3": "Cdb",
		"CZ2": "Cres",
		"CZ3": "Cres",
		"CH2": "Cdb",
	},
	"ASP": {"CG": "Csb", "OD1": "Ores", "OD2": "Ores"},
	"GLU": {"CG": "Csb", "CD": "Csb", "OE1": "Ores", "OE2": "Ores"},
	"HIS": {
		"CG":  "Cdb",
		"CD2": "Cdb",
		"ND1": "Nsb",
		"CE1": "Cdb",
		"NE2": "Ndb",
	},
	"LYS": {"CG": "Csb", "CD": "Csb", "CE": "Csb", "NZ": "Nsb"},
	"ARG": {
		"CG":  "Csb",
		"CD":  "Csb",
		"NE":  "Nsb",
		"CZ":  "Cdb",
		"NH1": "Nres",
		"NH2": "Nres",
	},
})

// BondState resolves the bond-state token for an atom of a residue. The
// residue-specific assignment wins; atoms without one fall back to the
// default (backbone/hydrogen) assignment. Atoms covered by neither fail
// with table.ErrKeyNotFound.
func BondState(resi, atomName string) (string, error) {
	if states, err := ResidueAtomBondState.Lookup(resi); err == nil {
		if state, ok := states[atomName]; ok {
			return state, nil
		}
	}
	return DefaultBondState.Lookup(atomName)
}

// CovalentRadius resolves the covalent radius for an atom of a residue by
// composing BondState with CovalentRadii.
func CovalentRadius(resi, atomName string) (float64, error) {
	state, err := BondState(resi, atomName)
	if err != nil {
		return 0, err
	}
	return CovalentRadii.Lookup(state)
}
