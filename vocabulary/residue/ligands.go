package residue

import "github.com/proteingraph/resichem/table"

// CofactorNames lists the names of cofactors commonly found in PDB
// structures.
//
// See: http://ligand-expo.rcsb.org/
var CofactorNames = []string{
	"ADP",
	"AMP",
	"ATP",
	"cAMP",
	"COENZYME_A",
	"FAD",
	"FLAVIN_MONONUCLEOTIDE",
	"NADP",
	"NADPH",
}

// CofactorCodes lists the 3-letter PDB ligand codes of common cofactors.
var CofactorCodes = []string{
	"ADP", "AMP", "ATP", "CMP", "COA", "FAD", "FMN", "NAP", "NDP",
}

// CofactorCodeName maps 3-letter PDB ligand codes to cofactor names.
var CofactorCodeName = table.New("residue.cofactor_code_name", map[string]string{
	"ADP": "ADP",
	"AMP": "AMP",
	"ATP": "ATP",
	"CMP": "cAMP",
	"COA": "COENZYME_A",
	"FAD": "FAD",
	"FMN": "FLAVIN_MONONUCLEOTIDE",
	"NAP": "NADP",
	"NDP": "NADPH",
})

// CarbohydrateNames lists the names of carbohydrates commonly found in
// protein structures.
var CarbohydrateNames = []string{
	"D-GALACTOSE",
	"D-GLUCOSE",
	"D-MANNOSE",
	"D-XYLOPYRANOSE",
	"FUCOSE",
	"N-ACETYL-D-GALACTOSAMINE",
	"N-ACETYL-D-GLUCOSAMINE",
	"O-SIALIC_ACID",
}

// CarbohydrateCodes lists the 3-letter PDB ligand codes of common
// carbohydrates.
var CarbohydrateCodes = []string{
	"BGC", "BMA", "FUC", "GAL", "GLA", "GLC", "MAN", "NAG", "NGA", "SIA", "XYS",
}

// CarbohydrateCodeName maps 3-letter PDB ligand codes for common
// carbohydrates to their full names.
var CarbohydrateCodeName = table.New("residue.carbohydrate_code_name", map[string]string{
	"BGC": "D-GLUCOSE",
	"BMA": "D-MANNOSE",
	"FUC": "FUCOSE",
	"GAL": "D-GALACTOSE",
	"GLA": "D-GALACTOSE",
	"GLC": "D-GLUCOSE",
	"MAN": "D-MANNOSE",
	"NAG": "N-ACETYL-D-GLUCOSAMINE",
	"NGA": "N-ACETYL-D-GALACTOSAMINE",
	"SIA": "O-SIALIC_ACID",
	"XYS": "D-XYLOPYRANOSE",
})
