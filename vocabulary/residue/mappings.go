package residue

import "github.com/proteingraph/resichem/table"

// OneToThree maps standard one-letter codes to 3-letter residue names.
var OneToThree = table.New("residue.one_to_three", map[string]string{
	"A": "ALA",
	"C": "CYS",
	"D": "ASP",
	"E": "GLU",
	"F": "PHE",
	"G": "GLY",
	"H": "HIS",
	"I": "ILE",
	"K": "LYS",
	"L": "LEU",
	"M": "MET",
	"N": "ASN",
	"O": "PYL",
	"P": "PRO",
	"Q": "GLN",
	"R": "ARG",
	"S": "SER",
	"T": "THR",
	"U": "SEC",
	"V": "VAL",
	"W": "TRP",
	"Y": "TYR",
	"X": "UNK",
})

// NonStandardThreeToOne maps 3-letter non-standard amino acid codes to
// their one-letter form.
//
// See: http://ligand-expo.rcsb.org/
var NonStandardThreeToOne = table.New("residue.non_standard_three_to_one", map[string]string{
	"CGU": "E",
	"HID": "H",
	"HIE": "H",
	"HIP": "H",
	"PYL": "O",
	"SEC": "U",
})

// ThreeToOne maps 3-letter residue names to one-letter residue names.
// Non-standard/modified amino acids map to their parent amino acid where
// one exists and to "X" otherwise. "CRO" is a chromophore formed from a
// TYG tripeptide and maps to "TYG".
var ThreeToOne = table.New("residue.three_to_one", map[string]string{
	"3HP": "X",
	"4HP": "X",
	"5HP": "Q",
	"ABA": "A",
	"ACE": "X",
	"AIB": "A",
	"ALA": "A",
	"ARG": "R",
	"ASN": "N",
	"ASP": "D",
	"ASX": "B",
	"BMT": "T",
	"BOC": "X",
	"CBX": "X",
	"CEA": "C",
	"CGU": "E",
	"CME": "C",
	"CRO": "TYG",
	"CSD": "C",
	"CSO": "C",
	"CSS": "C",
	"CSW": "C",
	"CSX": "C",
	"CXM": "M",
	"CYS": "C",
	"DAL": "A",
	"DAR": "R",
	"DCY": "C",
	"DGL": "E",
	"DGN": "Q",
	"DHI": "H",
	"DIL": "I",
	"DIV": "V",
	"DLE": "L",
	"DLY": "K",
	"DPN": "F",
	"DPR": "P",
	"DSG": "N",
	"DSN": "S",
	"DSP": "D",
	"DTH": "T",
	"DTR": "W",
	"DTY": "Y",
	"DVA": "V",
	"FME": "M",
	"FOR": "X",
	"GLN": "Q",
	"GLU": "E",
	"GLX": "Z",
	"GLY": "G",
	"HID": "H", // HIS protonation state
	"HIE": "H", // HIS protonation state
	"HIP": "H", // HIS protonation state
	"HIS": "H",
	"HYP": "P",
	"ILE": "I",
	"IVA": "X",
	"KCX": "K",
	"LEU": "L",
	"LLP": "K",
	"LYS": "K",
	"MET": "M",
	"MLE": "L",
	"MSE": "M",
	"MVA": "V",
	"NH2": "X",
	"NLE": "L",
	"OCS": "C",
	"ORN": "A",
	"PCA": "Q",
	"PHE": "F",
	"PRO": "P",
	"PTR": "Y",
	"PVL": "X",
	"PYL": "O",
	"SAR": "G",
	"SEC": "U",
	"SEP": "S",
	"SER": "S",
	"STY": "Y",
	"THR": "T",
	"TPO": "T",
	"TPQ": "Y",
	"TRP": "W",
	"TYR": "Y",
	"TYS": "Y",
	"UNK": "X",
	"VAL": "V",
})

// NonStandardParent maps 3-letter non-standard/modified residues to their
// 3-letter parent residue names. Capping groups and other entries without
// a parent amino acid map to "-".
var NonStandardParent = table.New("residue.non_standard_parent", map[string]string{
	"5HP": "GLU",
	"ABA": "ALA",
	"ACE": "-",
	"AIB": "ALA",
	"BMT": "THR",
	"BOC": "-",
	"CBX": "-",
	"CEA": "CYS",
	"CGU": "GLU",
	"CME": "CYS",
	"CRO": "CRO",
	"CSD": "CYS",
	"CSO": "CYS",
	"CSS": "CYS",
	"CSW": "CYS",
	"CSX": "CYS",
	"CXM": "MET",
	"DAL": "ALA",
	"DAR": "ARG",
	"DCY": "CYS",
	"DGL": "GLU",
	"DGN": "GLN",
	"DHI": "HIS",
	"DIL": "ILE",
	"DIV": "VAL",
	"DLE": "LEU",
	"DLY": "LYS",
	"DPN": "PHE",
	"DPR": "PRO",
	"DSG": "ASN",
	"DSN": "SER",
	"DSP": "ASP",
	"DTH": "THR",
	"DTR": "DTR",
	"DTY": "TYR",
	"DVA": "VAL",
	"FME": "MET",
	"FOR": "-",
	"HYP": "PRO",
	"IVA": "-",
	"KCX": "LYS",
	"LLP": "LYS",
	"MLE": "LEU",
	"MVA": "VAL",
	"NH2": "-",
	"NLE": "LEU",
	"OCS": "CYS",
	"ORN": "ALA",
	"PCA": "GLU",
	"PTR": "TYR",
	"PVL": "-",
	"PYL": "LYS",
	"SAR": "GLY",
	"SEC": "CYS",
	"SEP": "SER",
	"STY": "TYR",
	"TPO": "THR",
	"TPQ": "PHE",
	"TYS": "TYR",
})

// NonStandardFullNames lists the descriptive chemical names of the
// non-standard residues, in the form used by the Global Phasing residue
// library. PYL (pyrrolysine) and SEC (selenocysteine) are included.
var NonStandardFullNames = []string{
	"3-SULFINOALANINE",
	"4-HYDROXYPROLINE",
	"4-METHYL-4-[(E)-2-BUTENYL]-4,N-METHYL-THREONINE",
	"5-HYDROXYPROLINE",
	"ACETYL_GROUP",
	"ALPHA-AMINOBUTYRIC_ACID",
	"ALPHA-AMINOISOBUTYRIC_ACID",
	"AMINO_GROUP",
	"CARBOXY_GROUP",
	"CYSTEINE-S-DIOXIDE",
	"CYSTEINESULFONIC_ACID",
	"D-ALANINE",
	"D-ARGININE",
	"D-ASPARAGINE",
	"D-ASPARTATE",
	"D-CYSTEINE",
	"DECARBOXY(PARAHYDROXYBENZYLIDENE-IMIDAZOLIDINONE)THREONINE",
	"D-GLUTAMATE",
	"D-GLUTAMINE",
	"D-HISTIDINE",
	"D-ISOLEUCINE",
	"D-ISOVALINE",
	"D-LEUCINE",
	"D-LYSINE",
	"D-PHENYLALANINE",
	"D-PROLINE",
	"D-SERINE",
	"D-THREONINE",
	"D-TRYPTOPHANE",
	"D-TYROSINE",
	"D-VALINE",
	"FORMYL_GROUP",
	"GAMMA-CARBOXY-GLUTAMIC_ACID",
	"ISOVALERIC_ACID",
	"LYSINE_NZ-CARBOXYLIC_ACID",
	"LYSINE-PYRIDOXAL-5'-PHOSPHATE",
	"N-CARBOXYMETHIONINE",
	"N-FORMYLMETHIONINE",
	"N-METHYLLEUCINE",
	"N-METHYLVALINE",
	"NORLEUCINE",
	"O-PHOSPHOTYROSINE",
	"ORNITHINE",
	"PHOSPHOSERINE",
	"PHOSPHOTHREONINE",
	"PYROGLUTAMIC_ACID",
	"PYRUVOYL_GROUP",
	"SARCOSINE",
	"S-HYDROXY-CYSTEINE",
	"S-HYDROXYCYSTEINE",
	"S-MERCAPTOCYSTEINE",
	"S-OXY_CYSTEINE",
	"S,S-(2-HYDROXYETHYL)THIOCYSTEINE",
	"SULFONATED_TYROSINE",
	"TERT-BUTYLOXYCARBONYL_GROUP",
	"TOPO-QUINONE",
	"TYROSINE-O-SULPHONIC_ACID",
}
