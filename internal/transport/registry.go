package transport

import "fmt"

// ModelSpec selects a model kind and carries its parameters. Only the fields
// relevant to the chosen kind are read.
type ModelSpec struct {
	Kind    string
	Value   float64   // constant models
	MuRef   float64   // sutherland
	TRef    float64   // sutherland
	S       float64   // sutherland
	Coeffs  []float64 // polynomial models
	Prandtl float64   // constant_prandtl variants
	Schmidt float64   // constant_schmidt
	Lewis   float64   // constant_lewis
}

var viscosityModels = map[string]func(ModelSpec) ViscosityModel{
	"constant": func(s ModelSpec) ViscosityModel {
		return NewConstantViscosity(s.Value)
	},
	"sutherland": func(s ModelSpec) ViscosityModel {
		return NewSutherland(s.MuRef, s.TRef, s.S)
	},
	"polynomial": func(s ModelSpec) ViscosityModel {
		return NewPolynomialViscosity(s.Coeffs)
	},
}

var conductivityModels = map[string]func(ModelSpec, float64) ConductivityModel{
	"constant": func(s ModelSpec, prTurb float64) ConductivityModel {
		return NewConstantConductivity(s.Value)
	},
	"constant_rans": func(s ModelSpec, prTurb float64) ConductivityModel {
		return NewConstantConductivityRANS(s.Value, prTurb)
	},
	"constant_prandtl": func(s ModelSpec, prTurb float64) ConductivityModel {
		return NewConstantPrandtl(s.Prandtl)
	},
	"constant_prandtl_rans": func(s ModelSpec, prTurb float64) ConductivityModel {
		return NewConstantPrandtlRANS(s.Prandtl, prTurb)
	},
	"polynomial": func(s ModelSpec, prTurb float64) ConductivityModel {
		return NewPolynomialConductivity(s.Coeffs)
	},
	"polynomial_rans": func(s ModelSpec, prTurb float64) ConductivityModel {
		return NewPolynomialConductivityRANS(s.Coeffs, prTurb)
	},
}

var diffusivityModels = map[string]func(ModelSpec) DiffusivityModel{
	"constant": func(s ModelSpec) DiffusivityModel {
		return NewConstantDiffusivity(s.Value)
	},
	"constant_schmidt": func(s ModelSpec) DiffusivityModel {
		return NewConstantSchmidt(s.Schmidt)
	},
	"constant_lewis": func(s ModelSpec) DiffusivityModel {
		return NewConstantLewis(s.Lewis)
	},
}

// NewViscosityModel builds a viscosity model from its spec.
func NewViscosityModel(spec ModelSpec) (ViscosityModel, error) {
	fn, ok := viscosityModels[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown viscosity model: %s", spec.Kind)
	}
	return fn(spec), nil
}

// NewConductivityModel builds a conductivity model from its spec. prTurb is
// the turbulent Prandtl number used by the RANS variants.
func NewConductivityModel(spec ModelSpec, prTurb float64) (ConductivityModel, error) {
	fn, ok := conductivityModels[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown conductivity model: %s", spec.Kind)
	}
	return fn(spec, prTurb), nil
}

// NewDiffusivityModel builds a mass-diffusivity model from its spec.
func NewDiffusivityModel(spec ModelSpec) (DiffusivityModel, error) {
	fn, ok := diffusivityModels[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown diffusivity model: %s", spec.Kind)
	}
	return fn(spec), nil
}

// ViscosityKinds lists the registered viscosity model kinds.
func ViscosityKinds() []string { return kinds(viscosityModels) }

// ConductivityKinds lists the registered conductivity model kinds.
func ConductivityKinds() []string {
	names := make([]string, 0, len(conductivityModels))
	for name := range conductivityModels {
		names = append(names, name)
	}
	return names
}

// DiffusivityKinds lists the registered diffusivity model kinds.
func DiffusivityKinds() []string { return kinds(diffusivityModels) }

func kinds[M any](models map[string]func(ModelSpec) M) []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	return names
}
