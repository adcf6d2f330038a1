package residue

// Hydrophobic lists residues considered hydrophobic.
var Hydrophobic = []string{
	"ALA", "ILE", "LEU", "MET", "PHE", "PRO", "TRP", "TYR", "VAL",
}

// Disulfide lists residues capable of forming disulfide bonds.
var Disulfide = []string{"CYS"}

// Ionic lists residues capable of forming ionic interactions.
var Ionic = []string{"ARG", "LYS", "HIS", "ASP", "GLU"}

// Positive lists positively charged residues.
var Positive = []string{"HIS", "LYS", "ARG"}

// Negative lists negatively charged residues.
var Negative = []string{"GLU", "ASP"}

// Aromatic lists aromatic residues.
var Aromatic = []string{"PHE", "TRP", "HIS", "TYR"}

// CationPi lists residues involved in cation-pi interactions.
var CationPi = []string{"LYS", "ARG", "PHE", "TYR", "TRP"}

// Cation lists cationic residues.
var Cation = []string{"LYS", "ARG"}

// Pi lists residues involved in pi interactions.
var Pi = []string{"PHE", "TYR", "TRP"}

// Sulphur lists residues containing sulphur atoms.
var Sulphur = []string{"MET", "CYS"}

// SaltBridgeAnions lists anionic residues that can form salt bridges.
var SaltBridgeAnions = []string{"ASP", "GLU"}

// SaltBridgeCations lists cationic residues that can form salt bridges.
var SaltBridgeCations = []string{"LYS", "ARG"}

// SaltBridge lists all residues that can form salt bridges.
var SaltBridge = append(append([]string{}, SaltBridgeAnions...), SaltBridgeCations...)
