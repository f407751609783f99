package mixture

import (
	"errors"
	"fmt"

	"github.com/fluidlab/gasmix/internal/transport"
	"gonum.org/v1/gonum/floats"
)

const (
	// MaxSpecies bounds the species count, carrier included.
	MaxSpecies = 20

	// UniversalGasConstant in J/(kmol K).
	UniversalGasConstant = 8314.462618
)

// ErrTooManySpecies is returned by New when the species count, carrier
// included, exceeds MaxSpecies.
var ErrTooManySpecies = errors.New("too many species")

// MixingRule selects how per-species viscosities combine into a mixture
// value. Conductivity always mixes with the Wilke rule.
type MixingRule int

const (
	Wilke MixingRule = iota
	Davidson
)

func (r MixingRule) String() string {
	switch r {
	case Davidson:
		return "davidson"
	default:
		return "wilke"
	}
}

// ParseMixingRule maps a rule name to its MixingRule value.
func ParseMixingRule(name string) (MixingRule, error) {
	switch name {
	case "wilke", "":
		return Wilke, nil
	case "davidson":
		return Davidson, nil
	default:
		return Wilke, fmt.Errorf("unknown mixing rule: %s", name)
	}
}

// Species describes one mixture component: its molar mass in g/mol, its
// reference specific heat at constant pressure, and the transport model
// specs used to build its viscosity, conductivity and diffusivity models.
type Species struct {
	Name         string
	MolarMass    float64
	Cp           float64
	Viscosity    transport.ModelSpec
	Conductivity transport.ModelSpec
	Diffusivity  transport.ModelSpec
}

// Config carries everything New needs. Species lists all components in
// order, the inert carrier last.
type Config struct {
	Pressure       float64 // operating (thermodynamic) pressure
	GasConstantRef float64 // reference gas constant for non-dimensionalization
	Gamma          float64 // reference ratio of specific heats
	PrandtlTurb    float64 // turbulent Prandtl number for RANS conductivity variants
	Rule           MixingRule
	Species        []Species
}

// Mixture evaluates the full thermo-transport state of a gas mixture. All
// per-species storage is sized once at construction; UpdateState performs
// no allocation.
type Mixture struct {
	n              int
	pressure       float64
	gasConstantRef float64
	gamma          float64
	rule           MixingRule

	names         []string
	molarMasses   []float64
	specificHeats []float64

	viscModels []transport.ViscosityModel
	condModels []transport.ConductivityModel
	diffModels []transport.DiffusivityModel

	massFractions       []float64
	moleFractions       []float64
	speciesViscosity    []float64
	speciesConductivity []float64
	davidsonFractions   []float64
	massDiffusivity     []float64

	temperature float64
	density     float64
	gasConstant float64
	cp          float64
	cv          float64
	mu          float64
	kt          float64
}

// New builds a Mixture from cfg, constructing one transport model per
// species and property. Unknown model kinds and species counts beyond
// MaxSpecies are construction errors; no evaluation happens before they
// are reported.
func New(cfg Config) (*Mixture, error) {
	n := len(cfg.Species)
	if n > MaxSpecies {
		return nil, fmt.Errorf("%w: %d configured, capacity %d", ErrTooManySpecies, n, MaxSpecies)
	}

	m := &Mixture{
		n:              n,
		pressure:       cfg.Pressure,
		gasConstantRef: cfg.GasConstantRef,
		gamma:          cfg.Gamma,
		rule:           cfg.Rule,

		names:         make([]string, n),
		molarMasses:   make([]float64, n),
		specificHeats: make([]float64, n),

		viscModels: make([]transport.ViscosityModel, n),
		condModels: make([]transport.ConductivityModel, n),
		diffModels: make([]transport.DiffusivityModel, n),

		massFractions:       make([]float64, n),
		moleFractions:       make([]float64, n),
		speciesViscosity:    make([]float64, n),
		speciesConductivity: make([]float64, n),
		davidsonFractions:   make([]float64, n),
		massDiffusivity:     make([]float64, n),
	}

	for i, sp := range cfg.Species {
		m.names[i] = sp.Name
		m.molarMasses[i] = sp.MolarMass
		m.specificHeats[i] = sp.Cp

		visc, err := transport.NewViscosityModel(sp.Viscosity)
		if err != nil {
			return nil, fmt.Errorf("species %s: %w", sp.Name, err)
		}
		cond, err := transport.NewConductivityModel(sp.Conductivity, cfg.PrandtlTurb)
		if err != nil {
			return nil, fmt.Errorf("species %s: %w", sp.Name, err)
		}
		diff, err := transport.NewDiffusivityModel(sp.Diffusivity)
		if err != nil {
			return nil, fmt.Errorf("species %s: %w", sp.Name, err)
		}
		m.viscModels[i] = visc
		m.condModels[i] = cond
		m.diffModels[i] = diff
	}

	return m, nil
}

// UpdateState recomputes the full mixture state for the given temperature
// and the mass fractions of the first n-1 species; the carrier fraction is
// derived. Steps run in a fixed order since each depends on the previous.
func (m *Mixture) UpdateState(temperature float64, scalars []float64) {
	m.massToMoleFractions(scalars)
	m.computeGasConstant()

	m.temperature = temperature
	m.density = m.pressure / (temperature * m.gasConstant)
	m.cp = floats.Dot(m.specificHeats, m.massFractions)
	m.cv = m.cp - m.gasConstant

	switch m.rule {
	case Davidson:
		m.mu = m.davidsonViscosity()
	default:
		m.mu = m.wilkeViscosity()
	}
	m.kt = m.wilkeConductivity()
	m.computeMassDiffusivity()
}

func (m *Mixture) computeGasConstant() {
	meanMolarMass := 0.0
	for i := 0; i < m.n; i++ {
		meanMolarMass += m.moleFractions[i] * m.molarMasses[i] / 1000
	}
	m.gasConstant = UniversalGasConstant / (m.gasConstantRef * meanMolarMass)
}

func (m *Mixture) computeMassDiffusivity() {
	for i := 0; i < m.n; i++ {
		m.diffModels[i].SetDiffusivity(m.density, m.mu, m.cp, m.kt)
		m.massDiffusivity[i] = m.diffModels[i].Diffusivity()
	}
}

// NSpecies returns the species count, carrier included.
func (m *Mixture) NSpecies() int { return m.n }

// SpeciesNames returns the species names in index order.
func (m *Mixture) SpeciesNames() []string {
	out := make([]string, m.n)
	copy(out, m.names)
	return out
}

// Rule returns the configured viscosity mixing rule.
func (m *Mixture) Rule() MixingRule { return m.rule }

// Pressure returns the configured operating pressure.
func (m *Mixture) Pressure() float64 { return m.pressure }

// Gamma returns the configured reference ratio of specific heats.
func (m *Mixture) Gamma() float64 { return m.gamma }

// Temperature returns the temperature of the last UpdateState call.
func (m *Mixture) Temperature() float64 { return m.temperature }

// Density returns the mixture density from the ideal-gas law.
func (m *Mixture) Density() float64 { return m.density }

// GasConstant returns the mixture-specific gas constant.
func (m *Mixture) GasConstant() float64 { return m.gasConstant }

// Cp returns the mass-weighted mixture specific heat at constant pressure.
func (m *Mixture) Cp() float64 { return m.cp }

// Cv returns Cp minus the mixture gas constant.
func (m *Mixture) Cv() float64 { return m.cv }

// Viscosity returns the mixture dynamic viscosity.
func (m *Mixture) Viscosity() float64 { return m.mu }

// Conductivity returns the mixture thermal conductivity.
func (m *Mixture) Conductivity() float64 { return m.kt }

// MassDiffusivity returns species i's mass diffusivity.
func (m *Mixture) MassDiffusivity(i int) float64 { return m.massDiffusivity[i] }

// MassDiffusivities returns a copy of the per-species mass diffusivities.
func (m *Mixture) MassDiffusivities() []float64 {
	out := make([]float64, m.n)
	copy(out, m.massDiffusivity)
	return out
}

// MassFractions returns a copy of the stored mass fractions.
func (m *Mixture) MassFractions() []float64 {
	out := make([]float64, m.n)
	copy(out, m.massFractions)
	return out
}

// MoleFractions returns a copy of the stored mole fractions.
func (m *Mixture) MoleFractions() []float64 {
	out := make([]float64, m.n)
	copy(out, m.moleFractions)
	return out
}
