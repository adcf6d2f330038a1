// Package atom provides the atom naming vocabularies for the resichem
// reference tables: backbone and side-chain heavy-atom names, ring and
// ring-normal atoms of the aromatic residues, and the atoms involved in
// disulfide bonds and salt bridges.
//
// Atom names follow PDB conventions (remoteness indicator plus branch
// number, e.g. "CG1", "OD2", "NE1"). All values are process-wide constants
// initialized before first use and never mutated.
package atom
