package transport

import "math"

// ViscosityModel computes the dynamic viscosity of a single species.
// SetViscosity caches the value for the given state; Viscosity reads it back.
type ViscosityModel interface {
	SetViscosity(t, rho float64)
	Viscosity() float64
}

// ConstantViscosity returns a fixed viscosity regardless of state.
type ConstantViscosity struct {
	mu float64
}

func NewConstantViscosity(mu float64) *ConstantViscosity {
	return &ConstantViscosity{mu: mu}
}

func (v *ConstantViscosity) SetViscosity(t, rho float64) {}

func (v *ConstantViscosity) Viscosity() float64 { return v.mu }

// Sutherland implements Sutherland's law,
// mu = muRef * (T/Tref)^1.5 * (Tref + S) / (T + S).
type Sutherland struct {
	muRef float64
	tRef  float64
	s     float64
	mu    float64
}

func NewSutherland(muRef, tRef, s float64) *Sutherland {
	return &Sutherland{muRef: muRef, tRef: tRef, s: s}
}

func (v *Sutherland) SetViscosity(t, rho float64) {
	v.mu = v.muRef * math.Pow(t/v.tRef, 1.5) * (v.tRef + v.s) / (t + v.s)
}

func (v *Sutherland) Viscosity() float64 { return v.mu }

// PolynomialViscosity evaluates mu = sum_i coeffs[i] * T^i.
type PolynomialViscosity struct {
	coeffs []float64
	mu     float64
}

func NewPolynomialViscosity(coeffs []float64) *PolynomialViscosity {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &PolynomialViscosity{coeffs: c}
}

func (v *PolynomialViscosity) SetViscosity(t, rho float64) {
	v.mu = polyEval(v.coeffs, t)
}

func (v *PolynomialViscosity) Viscosity() float64 { return v.mu }

func polyEval(coeffs []float64, t float64) float64 {
	val := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		val = val*t + coeffs[i]
	}
	return val
}
