package transport

import (
	"math"
	"testing"
)

func TestConstantViscosity(t *testing.T) {
	v := NewConstantViscosity(1.8e-5)

	for _, temp := range []float64{100, 300, 2000} {
		v.SetViscosity(temp, 1.2)
		if got := v.Viscosity(); got != 1.8e-5 {
			t.Errorf("T=%g: viscosity = %g, want 1.8e-5", temp, got)
		}
	}
}

func TestSutherlandReference(t *testing.T) {
	v := NewSutherland(1.716e-5, 273.15, 110.4)

	v.SetViscosity(273.15, 1.2)
	if got := v.Viscosity(); math.Abs(got-1.716e-5) > 1e-12 {
		t.Errorf("viscosity at Tref = %g, want muRef 1.716e-5", got)
	}
}

func TestSutherlandMonotonic(t *testing.T) {
	v := NewSutherland(1.716e-5, 273.15, 110.4)

	prev := 0.0
	for _, temp := range []float64{200, 400, 800, 1600} {
		v.SetViscosity(temp, 1.0)
		if v.Viscosity() <= prev {
			t.Errorf("viscosity not increasing at T=%g: %g <= %g", temp, v.Viscosity(), prev)
		}
		prev = v.Viscosity()
	}
}

func TestPolynomialViscosity(t *testing.T) {
	tests := []struct {
		name     string
		coeffs   []float64
		temp     float64
		expected float64
	}{
		{"constant term", []float64{2e-5}, 500, 2e-5},
		{"linear", []float64{1e-5, 2e-8}, 100, 1e-5 + 2e-6},
		{"quadratic", []float64{1, 2, 3}, 2, 1 + 4 + 12},
		{"empty", nil, 300, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewPolynomialViscosity(tt.coeffs)
			v.SetViscosity(tt.temp, 1.0)
			if got := v.Viscosity(); math.Abs(got-tt.expected) > 1e-15 {
				t.Errorf("viscosity = %g, want %g", got, tt.expected)
			}
		})
	}
}
