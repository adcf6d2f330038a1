// Package residue provides the amino-acid naming vocabularies for the
// resichem reference tables.
//
// The package covers three concerns:
//   - Vocabularies: fixed lists of one-letter and three-letter residue
//     codes, standard and non-standard/modified (names.go)
//   - Mappings: conversions between code forms and from modified residues
//     to their parent residues (mappings.go)
//   - Classes: residue groupings used when typing interactions in a
//     protein graph, e.g. hydrophobic, aromatic, salt-bridge (classes.go)
//
// Ambiguous codes follow PDB conventions: "B"/"ASX" denotes ASP or ASN,
// "Z"/"GLX" denotes GLU or GLN, "J"/"XLE" denotes LEU or ILE, and
// "X"/"UNK" denotes an unknown residue.
//
// All values are process-wide constants initialized before first use;
// nothing in this package is ever mutated after init. Mapping tables use
// the table package's lookup contract: a missing key fails with
// table.ErrKeyNotFound rather than returning a placeholder.
//
// Non-standard residue identifiers are collected from the PDB chemical
// component dictionary (http://ligand-expo.rcsb.org/) and the Global
// Phasing residue library validation tables.
package residue
