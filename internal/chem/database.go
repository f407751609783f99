// Package chem provides an optional species lookup table for molar mass and
// reference specific heat. The configuration layer consults it when a
// species block names a known gas without spelling out its constants; the
// mixture evaluator itself never depends on it.
package chem

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Entry holds the tabulated constants for one species. MolarMass is in
// g/mol, Cp is the mass-specific heat at constant pressure near 300 K in
// J/(kg K).
type Entry struct {
	Name      string  `yaml:"name"`
	MolarMass float64 `yaml:"molar_mass"`
	Cp        float64 `yaml:"cp"`
}

// Database maps species names to their entries.
type Database struct {
	entries map[string]Entry
}

// Builtin returns a database of common combustion and carrier gases.
func Builtin() *Database {
	return fromEntries([]Entry{
		{Name: "N2", MolarMass: 28.0134, Cp: 1040.0},
		{Name: "O2", MolarMass: 31.9988, Cp: 918.0},
		{Name: "H2", MolarMass: 2.01588, Cp: 14300.0},
		{Name: "H2O", MolarMass: 18.01528, Cp: 1864.0},
		{Name: "CO", MolarMass: 28.0101, Cp: 1040.0},
		{Name: "CO2", MolarMass: 44.0095, Cp: 844.0},
		{Name: "CH4", MolarMass: 16.0425, Cp: 2226.0},
		{Name: "AR", MolarMass: 39.948, Cp: 520.3},
	})
}

// Load reads a YAML species table from path.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return fromEntries(entries), nil
}

func fromEntries(entries []Entry) *Database {
	db := &Database{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		db.entries[e.Name] = e
	}
	return db
}

// Lookup returns the entry for name and whether it exists.
func (d *Database) Lookup(name string) (Entry, bool) {
	e, ok := d.entries[name]
	return e, ok
}

// Names returns all species names in the database.
func (d *Database) Names() []string {
	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	return names
}
