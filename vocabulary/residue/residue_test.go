package residue_test

import (
	"testing"

	"github.com/proteingraph/resichem/vocabulary/residue"
)

func TestVocabularySizes(t *testing.T) {
	tests := []struct {
		name  string
		vocab []string
		want  int
	}{
		{"BaseAminoAcids", residue.BaseAminoAcids, 20},
		{"StandardAminoAcids", residue.StandardAminoAcids, 24},
		{"NonStandardAminoAcids", residue.NonStandardAminoAcids, 2},
		{"AminoAcids", residue.AminoAcids, 26},
		{"StandardNames", residue.StandardNames, 23},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.vocab) != tc.want {
				t.Errorf("got %d entries, want %d", len(tc.vocab), tc.want)
			}
		})
	}
}

func TestVocabulariesHaveNoDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		vocab []string
	}{
		{"BaseAminoAcids", residue.BaseAminoAcids},
		{"StandardAminoAcids", residue.StandardAminoAcids},
		{"AminoAcids", residue.AminoAcids},
		{"StandardNames", residue.StandardNames},
		{"NonStandardNames", residue.NonStandardNames},
		{"Names", residue.Names},
		{"CofactorCodes", residue.CofactorCodes},
		{"CarbohydrateCodes", residue.CarbohydrateCodes},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen := make(map[string]bool, len(tc.vocab))
			for _, v := range tc.vocab {
				if seen[v] {
					t.Errorf("duplicate entry %q", v)
				}
				seen[v] = true
			}
		})
	}
}

func TestStandardNamesAreInNames(t *testing.T) {
	all := make(map[string]bool, len(residue.Names))
	for _, n := range residue.Names {
		all[n] = true
	}
	for _, n := range residue.StandardNames {
		if !all[n] {
			t.Errorf("standard name %q missing from Names", n)
		}
	}
}

func TestThreeToOneCoversNames(t *testing.T) {
	for _, name := range residue.Names {
		if _, err := residue.ThreeToOne.Lookup(name); err != nil {
			t.Errorf("ThreeToOne does not cover %q: %v", name, err)
		}
	}
}

func TestOneToThreeRoundTrip(t *testing.T) {
	for _, one := range residue.BaseAminoAcids {
		three, err := residue.OneToThree.Lookup(one)
		if err != nil {
			t.Fatalf("OneToThree(%q): %v", one, err)
		}
		back, err := residue.ThreeToOne.Lookup(three)
		if err != nil {
			t.Fatalf("ThreeToOne(%q): %v", three, err)
		}
		if back != one {
			t.Errorf("round trip %q -> %q -> %q", one, three, back)
		}
	}
}

func TestThreeToOneSpecialCases(t *testing.T) {
	tests := []struct {
		three string
		want  string
	}{
		{"ASX", "B"},
		{"GLX", "Z"},
		{"UNK", "X"},
		{"MSE", "M"},
		{"CRO", "TYG"},
		{"SEC", "U"},
		{"PYL", "O"},
	}

	for _, tc := range tests {
		t.Run(tc.three, func(t *testing.T) {
			got, err := residue.ThreeToOne.Lookup(tc.three)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tc.three, err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNonStandardParentKeysAreNonStandard(t *testing.T) {
	nonStandard := make(map[string]bool, len(residue.NonStandardNames))
	for _, n := range residue.NonStandardNames {
		nonStandard[n] = true
	}
	for _, key := range residue.NonStandardParent.Keys() {
		if !nonStandard[key] {
			t.Errorf("parent mapping key %q is not a non-standard residue name", key)
		}
	}
}

func TestNonStandardParentValues(t *testing.T) {
	tests := []struct {
		child, parent string
	}{
		{"HYP", "PRO"},
		{"MLE", "LEU"},
		{"SEC", "CYS"},
		{"PYL", "LYS"},
		{"ACE", "-"}, // capping group, no parent residue
	}

	for _, tc := range tests {
		t.Run(tc.child, func(t *testing.T) {
			got, err := residue.NonStandardParent.Lookup(tc.child)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tc.child, err)
			}
			if got != tc.parent {
				t.Errorf("got %q, want %q", got, tc.parent)
			}
		})
	}
}

func TestSaltBridgeComposition(t *testing.T) {
	want := len(residue.SaltBridgeAnions) + len(residue.SaltBridgeCations)
	if len(residue.SaltBridge) != want {
		t.Fatalf("SaltBridge has %d entries, want %d", len(residue.SaltBridge), want)
	}
	members := make(map[string]bool, want)
	for _, r := range residue.SaltBridge {
		members[r] = true
	}
	for _, r := range residue.SaltBridgeAnions {
		if !members[r] {
			t.Errorf("anion %q missing from SaltBridge", r)
		}
	}
	for _, r := range residue.SaltBridgeCations {
		if !members[r] {
			t.Errorf("cation %q missing from SaltBridge", r)
		}
	}
}

func TestClassesAreStandardResidues(t *testing.T) {
	standard := make(map[string]bool, len(residue.StandardNames))
	for _, n := range residue.StandardNames {
		standard[n] = true
	}

	classes := map[string][]string{
		"Hydrophobic": residue.Hydrophobic,
		"Ionic":       residue.Ionic,
		"Positive":    residue.Positive,
		"Negative":    residue.Negative,
		"Aromatic":    residue.Aromatic,
		"CationPi":    residue.CationPi,
		"Sulphur":     residue.Sulphur,
		"SaltBridge":  residue.SaltBridge,
	}
	for name, class := range classes {
		for _, r := range class {
			if !standard[r] {
				t.Errorf("%s contains non-standard residue %q", name, r)
			}
		}
	}
}

func TestCofactorMappingCoversCodes(t *testing.T) {
	for _, code := range residue.CofactorCodes {
		name, err := residue.CofactorCodeName.Lookup(code)
		if err != nil {
			t.Errorf("CofactorCodeName does not cover %q: %v", code, err)
			continue
		}
		if name == "" {
			t.Errorf("CofactorCodeName[%q] is empty", code)
		}
	}
}

func TestCarbohydrateMappingCoversCodes(t *testing.T) {
	for _, code := range residue.CarbohydrateCodes {
		name, err := residue.CarbohydrateCodeName.Lookup(code)
		if err != nil {
			t.Errorf("CarbohydrateCodeName does not cover %q: %v", code, err)
			continue
		}
		if name == "" {
			t.Errorf("CarbohydrateCodeName[%q] is empty", code)
		}
	}
}
