package transport

// ConductivityModel computes the thermal conductivity of a single species.
// muTurb is the eddy viscosity; laminar-only evaluations pass zero.
type ConductivityModel interface {
	SetConductivity(t, rho, mu, muTurb, cp float64)
	Conductivity() float64
}

// ConstantConductivity returns a fixed conductivity regardless of state.
type ConstantConductivity struct {
	kt float64
}

func NewConstantConductivity(kt float64) *ConstantConductivity {
	return &ConstantConductivity{kt: kt}
}

func (c *ConstantConductivity) SetConductivity(t, rho, mu, muTurb, cp float64) {}

func (c *ConstantConductivity) Conductivity() float64 { return c.kt }

// ConstantConductivityRANS adds a turbulent contribution cp*muTurb/PrTurb
// on top of a fixed laminar conductivity.
type ConstantConductivityRANS struct {
	kt0    float64
	prTurb float64
	kt     float64
}

func NewConstantConductivityRANS(kt0, prTurb float64) *ConstantConductivityRANS {
	return &ConstantConductivityRANS{kt0: kt0, prTurb: prTurb}
}

func (c *ConstantConductivityRANS) SetConductivity(t, rho, mu, muTurb, cp float64) {
	c.kt = c.kt0 + cp*muTurb/c.prTurb
}

func (c *ConstantConductivityRANS) Conductivity() float64 { return c.kt }

// ConstantPrandtl derives conductivity from viscosity, kt = mu*cp/Pr.
type ConstantPrandtl struct {
	pr float64
	kt float64
}

func NewConstantPrandtl(pr float64) *ConstantPrandtl {
	return &ConstantPrandtl{pr: pr}
}

func (c *ConstantPrandtl) SetConductivity(t, rho, mu, muTurb, cp float64) {
	c.kt = mu * cp / c.pr
}

func (c *ConstantPrandtl) Conductivity() float64 { return c.kt }

// ConstantPrandtlRANS is ConstantPrandtl plus the turbulent contribution.
type ConstantPrandtlRANS struct {
	pr     float64
	prTurb float64
	kt     float64
}

func NewConstantPrandtlRANS(pr, prTurb float64) *ConstantPrandtlRANS {
	return &ConstantPrandtlRANS{pr: pr, prTurb: prTurb}
}

func (c *ConstantPrandtlRANS) SetConductivity(t, rho, mu, muTurb, cp float64) {
	c.kt = mu*cp/c.pr + muTurb*cp/c.prTurb
}

func (c *ConstantPrandtlRANS) Conductivity() float64 { return c.kt }

// PolynomialConductivity evaluates kt = sum_i coeffs[i] * T^i.
type PolynomialConductivity struct {
	coeffs []float64
	kt     float64
}

func NewPolynomialConductivity(coeffs []float64) *PolynomialConductivity {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &PolynomialConductivity{coeffs: c}
}

func (c *PolynomialConductivity) SetConductivity(t, rho, mu, muTurb, cp float64) {
	c.kt = polyEval(c.coeffs, t)
}

func (c *PolynomialConductivity) Conductivity() float64 { return c.kt }

// PolynomialConductivityRANS is PolynomialConductivity plus the turbulent
// contribution.
type PolynomialConductivityRANS struct {
	coeffs []float64
	prTurb float64
	kt     float64
}

func NewPolynomialConductivityRANS(coeffs []float64, prTurb float64) *PolynomialConductivityRANS {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &PolynomialConductivityRANS{coeffs: c, prTurb: prTurb}
}

func (c *PolynomialConductivityRANS) SetConductivity(t, rho, mu, muTurb, cp float64) {
	c.kt = polyEval(c.coeffs, t) + muTurb*cp/c.prTurb
}

func (c *PolynomialConductivityRANS) Conductivity() float64 { return c.kt }
