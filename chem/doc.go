// Package chem provides the physicochemical property tables for protein
// residues and atoms: van der Waals and covalent radii, atomic masses,
// bond states and idealised bond lengths, hydrogen-bond donor/acceptor
// counts, physicochemical distance matrices, and per-residue scalar
// features (isoelectric point, molecular weight) in raw and standardized
// form.
//
// Every table is an immutable process-wide constant built on the table
// package's lookup contract: covered keys always resolve, keys outside a
// table's domain fail with table.ErrKeyNotFound. A miss can legitimately
// mean "this residue has no such property" (alanine has no hydrogen-bond
// donor atoms); the tables never collapse that into a default value.
//
// The standardized scalar tables are derived from the raw tables exactly
// once, on first use, behind a sync.Once barrier, and cached for the
// process lifetime.
//
// Sources: Bondi (1964) for van der Waals radii; Heyrovska (2008) for
// covalent radii and bond states; Baber & Hodgkin (1992) for idealised
// bond lengths and allowed bond orders; Grantham (1974) and
// Schneider & Wrede (1994) via ProPy3 for the distance matrices.
package chem
