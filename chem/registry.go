package chem

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/proteingraph/resichem/table"
	"github.com/proteingraph/resichem/vocabulary/residue"
)

// TableInfo describes a registered reference table.
type TableInfo struct {
	// Name is the registered table name, e.g. "chem.vdw_radii".
	Name string
	// Len is the number of entries in the table's domain.
	Len int
	// Description is a one-line summary of the table's contents.
	Description string
}

// lookupFunc resolves a key against one table and renders the value.
type lookupFunc func(key string) (string, error)

type registryEntry struct {
	info   TableInfo
	lookup lookupFunc
}

// registry indexes every named reference table for lookup by name.
// Populated once at init; read-only afterwards.
var registry = map[string]registryEntry{}

func register[V any](t table.Table[V], desc string, render func(V) string) {
	registry[t.Name()] = registryEntry{
		info: TableInfo{Name: t.Name(), Len: t.Len(), Description: desc},
		lookup: func(key string) (string, error) {
			v, err := t.Lookup(key)
			if err != nil {
				return "", err
			}
			return render(v), nil
		},
	}
}

func renderFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func renderInt(v int) string {
	return strconv.Itoa(v)
}

func renderString(v string) string {
	return v
}

func renderAtomCounts(atoms map[string]int) string {
	keys := make([]string, 0, len(atoms))
	for k := range atoms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, atoms[k])
	}
	return strings.Join(parts, " ")
}

func renderBondStates(states map[string]string) string {
	keys := make([]string, 0, len(states))
	for k := range states {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%s", k, states[k])
	}
	return strings.Join(parts, " ")
}

func renderBondLength(rec BondLengthRecord) string {
	s := fmt.Sprintf("single=%g double=%g watershed_sd=%g", rec.Single, rec.Double, rec.SingleDouble)
	if rec.HasTriple {
		s += fmt.Sprintf(" triple=%g watershed_dt=%g", rec.Triple, rec.DoubleTriple)
	}
	return s
}

func renderOrders(orders []int) string {
	parts := make([]string, len(orders))
	for i, o := range orders {
		parts[i] = strconv.Itoa(o)
	}
	return strings.Join(parts, ",")
}

func init() {
	register(VDWRadii, "van der Waals radii by element (Angstrom)", renderFloat)
	register(CovalentRadii, "covalent radii by bond-state token (Angstrom)", renderFloat)
	register(AtomicMasses, "atomic masses by element (amu)", renderFloat)
	register(MaxNeighbours, "maximum bonded neighbours by element", renderInt)
	register(DefaultBondState, "default bond-state token by atom name", renderString)
	register(ResidueAtomBondState, "side-chain bond-state tokens by residue", renderBondStates)
	register(HydrogenBondDonors, "hydrogen-bond donor counts by residue", renderAtomCounts)
	register(HydrogenBondAcceptors, "hydrogen-bond acceptor counts by residue", renderAtomCounts)
	register(BondLengths, "idealised bond lengths by element pair (Angstrom)", renderBondLength)
	register(BondOrders, "allowable bond orders by element pair", renderOrders)
	register(GranthamChemicalDistance, "Grantham chemical distance by residue pair", renderFloat)
	register(SchneiderWredeDistance, "Schneider-Wrede distance by residue pair", renderFloat)
	register(IsoelectricPoints, "isoelectric points by residue", renderFloat)
	register(MolecularWeights, "molecular weights by residue (amu)", renderFloat)
	register(residue.ThreeToOne, "3-letter to 1-letter residue codes", renderString)
	register(residue.OneToThree, "1-letter to 3-letter residue codes", renderString)
	register(residue.NonStandardThreeToOne, "non-standard 3-letter to 1-letter codes", renderString)
	register(residue.NonStandardParent, "modified residue to parent residue", renderString)
	register(residue.CofactorCodeName, "cofactor ligand codes to names", renderString)
	register(residue.CarbohydrateCodeName, "carbohydrate ligand codes to names", renderString)
}

// Tables lists every registered reference table, sorted by name.
func Tables() []TableInfo {
	infos := make([]TableInfo, 0, len(registry))
	for _, e := range registry {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// LookupValue resolves key against the named table and renders the value
// as a display string. Unknown table names and keys outside the table's
// domain both fail with errors naming what could not be resolved.
func LookupValue(tableName, key string) (string, error) {
	e, ok := registry[tableName]
	if !ok {
		return "", fmt.Errorf("unknown table %q; run 'resichem tables' for the list", tableName)
	}
	return e.lookup(key)
}

// ScalarTable returns the named raw scalar table eligible for
// standardization, or false when the name does not refer to one.
func ScalarTable(tableName string) (table.Table[float64], bool) {
	switch tableName {
	case IsoelectricPoints.Name():
		return IsoelectricPoints, true
	case MolecularWeights.Name():
		return MolecularWeights, true
	}
	return table.Table[float64]{}, false
}

// StandardizedTable returns the cached standardized companion of the
// named scalar table, or false when the name does not refer to a scalar
// table. Repeated calls return the same process-wide table.
func StandardizedTable(tableName string) (table.Table[float64], bool) {
	switch tableName {
	case IsoelectricPoints.Name():
		return IsoelectricPointsStd(), true
	case MolecularWeights.Name():
		return MolecularWeightsStd(), true
	}
	return table.Table[float64]{}, false
}
