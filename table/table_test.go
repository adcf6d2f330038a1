package table

import (
	"errors"
	"strings"
	"testing"
)

func TestLookupCoveredKey(t *testing.T) {
	tbl := New("test.radii", map[string]float64{"C": 1.7, "N": 1.55})

	got, err := tbl.Lookup("C")
	if err != nil {
		t.Fatalf("Lookup(C) failed: %v", err)
	}
	if got != 1.7 {
		t.Errorf("got %v, want 1.7", got)
	}
}

func TestLookupIdempotent(t *testing.T) {
	tbl := New("test.radii", map[string]float64{"S": 1.8})

	first, err := tbl.Lookup("S")
	if err != nil {
		t.Fatalf("Lookup(S) failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := tbl.Lookup("S")
		if err != nil {
			t.Fatalf("repeated Lookup(S) failed: %v", err)
		}
		if again != first {
			t.Fatalf("repeated lookup returned %v, want %v", again, first)
		}
	}
}

func TestLookupMissingKey(t *testing.T) {
	tbl := New("test.radii", map[string]float64{"C": 1.7})

	_, err := tbl.Lookup("Xx")
	if err == nil {
		t.Fatal("expected error for key outside domain")
	}
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("error %v does not wrap ErrKeyNotFound", err)
	}
	// Error reports must name the table and the key for upstream debugging.
	if want := `table "test.radii"`; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not name the table", err)
	}
	if !strings.Contains(err.Error(), `"Xx"`) {
		t.Errorf("error %q does not name the key", err)
	}
}

func TestKeysSortedAndComplete(t *testing.T) {
	tbl := New("test.masses", map[string]float64{"O": 15.9994, "C": 12.0107, "N": 14.0067})

	keys := tbl.Keys()
	want := []string{"C", "N", "O"}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestNewCopiesInput(t *testing.T) {
	src := map[string]int{"CA": 1}
	tbl := New("test.copy", src)
	src["CA"] = 99
	src["CB"] = 2

	got, err := tbl.Lookup("CA")
	if err != nil {
		t.Fatalf("Lookup(CA) failed: %v", err)
	}
	if got != 1 {
		t.Errorf("table observed caller mutation: got %d, want 1", got)
	}
	if tbl.Has("CB") {
		t.Error("table observed key added after construction")
	}
}

func TestEntriesCopy(t *testing.T) {
	tbl := New("test.copy", map[string]int{"N": 1})
	m := tbl.Entries()
	m["N"] = 42

	got, _ := tbl.Lookup("N")
	if got != 1 {
		t.Errorf("mutating Entries() copy changed the table: got %d", got)
	}
}
