package transport

// DiffusivityModel computes the mass diffusivity of a single species in the
// mixture. It is evaluated last, once the mixture-level density, viscosity,
// specific heat and conductivity are known.
type DiffusivityModel interface {
	SetDiffusivity(rho, mu, cp, kt float64)
	Diffusivity() float64
}

// ConstantDiffusivity returns a fixed diffusivity regardless of state.
type ConstantDiffusivity struct {
	d float64
}

func NewConstantDiffusivity(d float64) *ConstantDiffusivity {
	return &ConstantDiffusivity{d: d}
}

func (m *ConstantDiffusivity) SetDiffusivity(rho, mu, cp, kt float64) {}

func (m *ConstantDiffusivity) Diffusivity() float64 { return m.d }

// ConstantSchmidt derives diffusivity from viscosity, D = mu/(rho*Sc).
type ConstantSchmidt struct {
	sc float64
	d  float64
}

func NewConstantSchmidt(sc float64) *ConstantSchmidt {
	return &ConstantSchmidt{sc: sc}
}

func (m *ConstantSchmidt) SetDiffusivity(rho, mu, cp, kt float64) {
	m.d = mu / (rho * m.sc)
}

func (m *ConstantSchmidt) Diffusivity() float64 { return m.d }

// ConstantLewis derives diffusivity from conductivity, D = kt/(rho*cp*Le).
type ConstantLewis struct {
	le float64
	d  float64
}

func NewConstantLewis(le float64) *ConstantLewis {
	return &ConstantLewis{le: le}
}

func (m *ConstantLewis) SetDiffusivity(rho, mu, cp, kt float64) {
	m.d = kt / (rho * cp * m.le)
}

func (m *ConstantLewis) Diffusivity() float64 { return m.d }
