package chem

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinLookup(t *testing.T) {
	db := Builtin()

	entry, ok := db.Lookup("N2")
	if !ok {
		t.Fatal("N2 missing from builtin database")
	}
	if math.Abs(entry.MolarMass-28.0134) > 1e-4 {
		t.Errorf("N2 molar mass = %g, want 28.0134", entry.MolarMass)
	}
	if entry.Cp <= 0 {
		t.Errorf("N2 cp = %g, want positive", entry.Cp)
	}
}

func TestLookupMissing(t *testing.T) {
	db := Builtin()

	if _, ok := db.Lookup("unobtainium"); ok {
		t.Error("expected lookup miss")
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "species.yaml")
	data := []byte("- name: HE\n  molar_mass: 4.0026\n  cp: 5193.0\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	db, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	entry, ok := db.Lookup("HE")
	if !ok {
		t.Fatal("HE missing from loaded database")
	}
	if entry.MolarMass != 4.0026 {
		t.Errorf("HE molar mass = %g, want 4.0026", entry.MolarMass)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/species.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNames(t *testing.T) {
	db := Builtin()
	names := db.Names()
	if len(names) < 5 {
		t.Errorf("expected a handful of builtin species, got %d", len(names))
	}
}
