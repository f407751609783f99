package config

import (
	"fmt"
	"os"

	"github.com/fluidlab/gasmix/internal/chem"
	"github.com/fluidlab/gasmix/internal/mixture"
	"github.com/fluidlab/gasmix/internal/transport"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPressure       = 101325.0
	DefaultTemperature    = 300.0
	DefaultGasConstantRef = 1.0
	DefaultGamma          = 1.4
	DefaultPrandtlTurb    = 0.9
)

// Config describes a mixture run: the operating state, the mixing rule, the
// transported species, and the inert carrier that closes the mass balance.
type Config struct {
	Pressure       float64   `yaml:"pressure"`
	Temperature    float64   `yaml:"temperature"`
	GasConstantRef float64   `yaml:"gas_constant_ref"`
	Gamma          float64   `yaml:"gamma"`
	PrandtlTurb    float64   `yaml:"prandtl_turb"`
	MixingRule     string    `yaml:"mixing_rule"`
	Species        []Species `yaml:"species"`
	Carrier        Species   `yaml:"carrier"`
	MassFractions  []float64 `yaml:"mass_fractions"`
}

// Species configures one component. MolarMass and Cp may be left zero when
// Name is present in the species database.
type Species struct {
	Name         string  `yaml:"name"`
	MolarMass    float64 `yaml:"molar_mass"`
	Cp           float64 `yaml:"cp"`
	Viscosity    Model   `yaml:"viscosity"`
	Conductivity Model   `yaml:"conductivity"`
	Diffusivity  Model   `yaml:"diffusivity"`
}

// Model selects a transport model kind and its parameters.
type Model struct {
	Model   string    `yaml:"model"`
	Value   float64   `yaml:"value"`
	MuRef   float64   `yaml:"mu_ref"`
	TRef    float64   `yaml:"t_ref"`
	S       float64   `yaml:"s"`
	Coeffs  []float64 `yaml:"coeffs"`
	Prandtl float64   `yaml:"prandtl"`
	Schmidt float64   `yaml:"schmidt"`
	Lewis   float64   `yaml:"lewis"`
}

// DefaultConfig is a hydrogen/oxygen mixture in a nitrogen carrier with
// Sutherland viscosities and constant-Prandtl conductivities.
func DefaultConfig() *Config {
	return &Config{
		Pressure:       DefaultPressure,
		Temperature:    DefaultTemperature,
		GasConstantRef: DefaultGasConstantRef,
		Gamma:          DefaultGamma,
		PrandtlTurb:    DefaultPrandtlTurb,
		MixingRule:     "wilke",
		Species: []Species{
			{
				Name:         "H2",
				Viscosity:    Model{Model: "sutherland", MuRef: 8.411e-6, TRef: 273.15, S: 97.0},
				Conductivity: Model{Model: "constant_prandtl", Prandtl: 0.69},
				Diffusivity:  Model{Model: "constant_schmidt", Schmidt: 0.7},
			},
			{
				Name:         "O2",
				Viscosity:    Model{Model: "sutherland", MuRef: 1.919e-5, TRef: 273.15, S: 139.0},
				Conductivity: Model{Model: "constant_prandtl", Prandtl: 0.74},
				Diffusivity:  Model{Model: "constant_schmidt", Schmidt: 0.7},
			},
		},
		Carrier: Species{
			Name:         "N2",
			Viscosity:    Model{Model: "sutherland", MuRef: 1.663e-5, TRef: 273.15, S: 107.0},
			Conductivity: Model{Model: "constant_prandtl", Prandtl: 0.72},
			Diffusivity:  Model{Model: "constant_lewis", Lewis: 1.0},
		},
		MassFractions: []float64{0.1, 0.2},
	}
}

// Load reads a YAML config from path, layered over DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Mixture resolves the config into a mixture.Config, consulting db (when
// non-nil) for molar masses and specific heats the config leaves zero. The
// carrier is appended as the last species.
func (c *Config) Mixture(db *chem.Database) (mixture.Config, error) {
	rule, err := mixture.ParseMixingRule(c.MixingRule)
	if err != nil {
		return mixture.Config{}, err
	}

	all := make([]Species, 0, len(c.Species)+1)
	all = append(all, c.Species...)
	all = append(all, c.Carrier)

	species := make([]mixture.Species, len(all))
	for i, sp := range all {
		resolved, err := resolve(sp, db)
		if err != nil {
			return mixture.Config{}, err
		}
		species[i] = resolved
	}

	return mixture.Config{
		Pressure:       c.Pressure,
		GasConstantRef: c.GasConstantRef,
		Gamma:          c.Gamma,
		PrandtlTurb:    c.PrandtlTurb,
		Rule:           rule,
		Species:        species,
	}, nil
}

func resolve(sp Species, db *chem.Database) (mixture.Species, error) {
	molarMass, cp := sp.MolarMass, sp.Cp
	if molarMass == 0 || cp == 0 {
		if db == nil {
			return mixture.Species{}, fmt.Errorf("species %s: molar mass and cp required without a database", sp.Name)
		}
		entry, ok := db.Lookup(sp.Name)
		if !ok {
			return mixture.Species{}, fmt.Errorf("species %s: not in database and no constants given", sp.Name)
		}
		if molarMass == 0 {
			molarMass = entry.MolarMass
		}
		if cp == 0 {
			cp = entry.Cp
		}
	}
	return mixture.Species{
		Name:         sp.Name,
		MolarMass:    molarMass,
		Cp:           cp,
		Viscosity:    spec(sp.Viscosity),
		Conductivity: spec(sp.Conductivity),
		Diffusivity:  spec(sp.Diffusivity),
	}, nil
}

func spec(m Model) transport.ModelSpec {
	return transport.ModelSpec{
		Kind:    m.Model,
		Value:   m.Value,
		MuRef:   m.MuRef,
		TRef:    m.TRef,
		S:       m.S,
		Coeffs:  m.Coeffs,
		Prandtl: m.Prandtl,
		Schmidt: m.Schmidt,
		Lewis:   m.Lewis,
	}
}
