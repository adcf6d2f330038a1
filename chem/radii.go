package chem

import "github.com/proteingraph/resichem/table"

// VDWRadii maps element symbols to van der Waals radii in Angstroms, for
// the most common protein elements.
//
// Bondi, A. (1964). "van der Waals Volumes and Radii".
// J. Phys. Chem. 68 (3): 441-451.
var VDWRadii = table.New("chem.vdw_radii", map[string]float64{
	"H":  1.2,
	"C":  1.7,
	"N":  1.55,
	"O":  1.52,
	"F":  1.47,
	"P":  1.8,
	"S":  1.8,
	"Cl": 1.75,
	"Cu": 1.4,
})

// CovalentRadii maps bond-state tokens to covalent radii in Angstroms.
// Tokens combine the element with its bonding state: single ("sb"),
// double ("db") or resonant ("res"), e.g. "Csb", "Ores". "Ores" sits
// between "Osb" and "Odb" for the carboxylate oxygens of Asp and Glu, and
// "Nres" between "Nsb" and "Ndb" for the guanidinium nitrogens of Arg,
// since the PDB does not distinguish these states.
//
// Heyrovska, Raji: "Atomic Structures of all the Twenty Essential Amino
// Acids and a Tripeptide, with Bond Lengths as Sums of Atomic Covalent
// Radii" (https://arxiv.org/pdf/0804.2488.pdf).
var CovalentRadii = table.New("chem.covalent_radii", map[string]float64{
	"Csb":  0.77,
	"Cres": 0.72,
	"Cdb":  0.67,
	"Osb":  0.67,
	"Ores": 0.635,
	"Odb":  0.60,
	"Nsb":  0.70,
	"Nres": 0.66,
	"Ndb":  0.62,
	"Hsb":  0.37,
	"Ssb":  1.04,
})

// AtomicMasses maps element symbols to atomic masses in amu for the
// standard protein elements.
var AtomicMasses = table.New("chem.atomic_masses", map[string]float64{
	"C": 12.0107,
	"H": 1.00794,
	"O": 15.9994,
	"N": 14.0067,
	"P": 30.9738,
	"S": 32.065,
})

// MaxNeighbours maps element symbols to the maximum number of bonded
// neighbours the element can have.
//
// Taken from: https://www.daylight.com/meetings/mug01/Sayle/m4xbondage.html
var MaxNeighbours = table.New("chem.max_neighbours", map[string]int{
	"C":  4,
	"H":  1,
	"B":  3,
	"O":  2,
	"F":  1,
	"Br": 1,
	"I":  3,
})
