package residue

// BaseAminoAcids is the vocabulary of the 20 standard amino acids,
// one-letter codes.
var BaseAminoAcids = []string{
	"A", "C", "D", "E", "F", "G", "H", "I", "K", "L",
	"M", "N", "P", "Q", "R", "S", "T", "V", "W", "Y",
}

// StandardAminoAcids is the one-letter vocabulary including the fuzzy
// codes: "B" (ASX: ASP or ASN), "J" (XLE: LEU or ILE), "Z" (GLX: GLU or
// GLN) and "X" (UNK).
var StandardAminoAcids = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L",
	"M", "N", "P", "Q", "R", "S", "T", "V", "W", "X", "Y", "Z",
}

// NonStandardAminoAcids lists the non-standard amino acids with one-letter
// codes: "O" (pyrrolysine) and "U" (selenocysteine).
var NonStandardAminoAcids = []string{"O", "U"}

// AminoAcids is the complete one-letter vocabulary: standard, fuzzy and
// non-standard codes.
var AminoAcids = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

// StandardNames lists the standard residue 3-letter names, including
// "UNK" for unknown residues and the ambiguous "ASX" and "GLX".
var StandardNames = []string{
	"ALA", "ARG", "ASN", "ASP", "ASX", "CYS", "GLN", "GLU",
	"GLX", "GLY", "HIS", "ILE", "LEU", "LYS", "MET", "PHE",
	"PRO", "SER", "THR", "TRP", "TYR", "UNK", "VAL",
}

// NonStandardNames lists the 3-letter names of non-standard and modified
// residues observed in PDB structures.
var NonStandardNames = []string{
	"5HP", "ABA", "ACE", "AIB", "BMT", "BOC", "CBX", "CEA",
	"CGU", "CME", "CRO", "CSD", "CSO", "CSS", "CSW", "CSX",
	"CXM", "DAL", "DAR", "DCY", "DGL", "DGN", "DHI", "DIL",
	"DIV", "DLE", "DLY", "DPN", "DPR", "DSG", "DSN", "DSP",
	"DTH", "DTR", "DTY", "DVA", "FME", "FOR", "HID", "HIE",
	"HIP", "HYP", "IVA", "KCX", "LLP", "MLE", "MVA", "NH2",
	"NLE", "OCS", "ORN", "PCA", "PTR", "PVL", "PYL", "SAR",
	"SEC", "SEP", "STY", "TPO", "TPQ", "TYS",
}

// Names is the full 3-letter residue name vocabulary: standard residues,
// non-standard/modified residues, and "MSE" (selenomethionine, reported
// by the PDB as a HETATM residue but routinely treated as MET).
var Names = []string{
	"5HP", "ABA", "ACE", "AIB", "ALA", "ARG", "ASN", "ASP",
	"ASX", "BMT", "BOC", "CBX", "CEA", "CGU", "CME", "CRO",
	"CSD", "CSO", "CSS", "CSW", "CSX", "CXM", "CYS", "DAL",
	"DAR", "DCY", "DGL", "DGN", "DHI", "DIL", "DIV", "DLE",
	"DLY", "DPN", "DPR", "DSG", "DSN", "DSP", "DTH", "DTR",
	"DTY", "DVA", "FME", "FOR", "GLN", "GLU", "GLX", "GLY",
	"HID", "HIE", "HIP", "HIS", "HYP", "ILE", "IVA", "KCX",
	"LEU", "LLP", "LYS", "MET", "MLE", "MSE", "MVA", "NH2",
	"NLE", "OCS", "ORN", "PCA", "PHE", "PRO", "PTR", "PVL",
	"PYL", "SAR", "SEC", "SEP", "SER", "STY", "THR", "TPO",
	"TPQ", "TRP", "TYR", "TYS", "UNK", "VAL",
}
