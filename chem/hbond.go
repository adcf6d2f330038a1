package chem

import "github.com/proteingraph/resichem/table"

// HydrogenBondDonors maps residue names to their side-chain donor atoms
// and the number of hydrogen bonds each can donate.
//
// Nine amino acids (alanine, cysteine, glycine, isoleucine, leucine,
// methionine, phenylalanine, proline, valine) have no hydrogen donor or
// acceptor atoms in their side chains, so they are outside this table's
// domain; that absence is a property, not an error.
//
// https://www.imgt.org/IMGTeducation/Aide-memoire/_UK/aminoacids/charge/
var HydrogenBondDonors = table.New("chem.hydrogen_bond_donors", map[string]map[string]int{
	"ARG": {"NE": 1, "NH1": 2, "NH2": 2},
	"ASN": {"ND2": 2},
	"GLN": {"NE2": 2},
	"HIS": {"ND1": 2, "NE2": 2},
	"LYS": {"NZ": 3},
	"SER": {"OG": 1},
	"THR": {"OG1": 1},
	"TYR": {"OH": 1},
	"TRP": {"NE1": 1},
})

// HydrogenBondAcceptors maps residue names to their side-chain acceptor
// atoms and the number of hydrogen bonds each can accept.
var HydrogenBondAcceptors = table.New("chem.hydrogen_bond_acceptors", map[string]map[string]int{
	"ASN": {"OD1": 2},
	"ASP": {"OD1": 2, "OD2": 2},
	"GLN": {"OE1": 2},
	"GLU": {"OE1": 2, "OE2": 2},
	"HIS": {"ND1": 1, "NE2": 1},
	"SER": {"OG": 2},
	"THR": {"OG1": 2},
	"TYR": {"OH": 1},
})

// DonorCount returns the number of hydrogen bonds the given atom of a
// residue can donate. Residues or atoms outside the donor table fail with
// table.ErrKeyNotFound.
func DonorCount(resi, atomName string) (int, error) {
	return bondCount(HydrogenBondDonors, resi, atomName)
}

// AcceptorCount returns the number of hydrogen bonds the given atom of a
// residue can accept.
func AcceptorCount(resi, atomName string) (int, error) {
	return bondCount(HydrogenBondAcceptors, resi, atomName)
}

func bondCount(t table.Table[map[string]int], resi, atomName string) (int, error) {
	atoms, err := t.Lookup(resi)
	if err != nil {
		return 0, err
	}
	inner := table.New(t.Name()+"."+resi, atoms)
	return inner.Lookup(atomName)
}
