package mixture

import (
	"math"
	"testing"
)

func newSingle(t *testing.T, rule MixingRule) *Mixture {
	t.Helper()
	mix, err := New(Config{
		Pressure:       101325,
		GasConstantRef: 1,
		Rule:           rule,
		Species:        []Species{constSpecies("N2", 28.0, 1040, 1.7e-5, 0.026, 2e-5)},
	})
	if err != nil {
		t.Fatal(err)
	}
	return mix
}

func TestSingleSpeciesReducesToRawProperty(t *testing.T) {
	for _, rule := range []MixingRule{Wilke, Davidson} {
		t.Run(rule.String(), func(t *testing.T) {
			mix := newSingle(t, rule)
			mix.UpdateState(300, nil)

			if got := mix.Viscosity(); math.Abs(got-1.7e-5) > 1e-18 {
				t.Errorf("viscosity = %g, want raw 1.7e-5", got)
			}
			if got := mix.Conductivity(); math.Abs(got-0.026) > 1e-15 {
				t.Errorf("conductivity = %g, want raw 0.026", got)
			}
		})
	}
}

func TestIdenticalSpeciesPair(t *testing.T) {
	// Two species with equal molar mass and viscosity must mix to the
	// common viscosity under both rules.
	for _, rule := range []MixingRule{Wilke, Davidson} {
		t.Run(rule.String(), func(t *testing.T) {
			mix, err := New(Config{
				Pressure:       101325,
				GasConstantRef: 1,
				Rule:           rule,
				Species: []Species{
					constSpecies("A", 28.0, 1040, 1.7e-5, 0.026, 2e-5),
					constSpecies("B", 28.0, 1040, 1.7e-5, 0.026, 2e-5),
				},
			})
			if err != nil {
				t.Fatal(err)
			}

			mix.UpdateState(300, []float64{0.4})

			if got := mix.Viscosity(); math.Abs(got-1.7e-5) > 1e-15 {
				t.Errorf("viscosity = %g, want common 1.7e-5", got)
			}
		})
	}
}

func TestWilkeSelfInteractionTerm(t *testing.T) {
	// With every pairwise phi forced to the i==j branch (identical species),
	// the Wilke denominator collapses to the mole-fraction sum, so the mix
	// of a property vector equals its mole-weighted mean.
	mix, err := New(Config{
		Pressure:       101325,
		GasConstantRef: 1,
		Species: []Species{
			constSpecies("A", 28.0, 1040, 1.7e-5, 0.026, 2e-5),
			constSpecies("B", 28.0, 1040, 1.7e-5, 0.030, 2e-5),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	mix.UpdateState(300, []float64{0.25})

	moleFracs := mix.MoleFractions()
	want := moleFracs[0]*0.026 + moleFracs[1]*0.030
	if got := mix.Conductivity(); math.Abs(got-want) > 1e-12 {
		t.Errorf("conductivity = %g, want mole-weighted %g", got, want)
	}
}

func TestWilkeVersusHandComputedPair(t *testing.T) {
	// Hand-evaluate the Wilke formula for a hydrogen/nitrogen pair and
	// compare against the engine.
	muH2, muN2 := 8.9e-6, 1.7e-5
	mH2, mN2 := 2.016, 28.013

	mix, err := New(Config{
		Pressure:       101325,
		GasConstantRef: 1,
		Species: []Species{
			constSpecies("H2", mH2, 14300, muH2, 0.18, 2e-5),
			constSpecies("N2", mN2, 1040, muN2, 0.026, 2e-5),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	mix.UpdateState(300, []float64{0.2})
	x := mix.MoleFractions()

	phi := func(mui, muj, mi, mj float64) float64 {
		return math.Pow(1+math.Sqrt(mui/muj)*math.Pow(mj/mi, 0.25), 2) /
			math.Sqrt(8*(1+mi/mj))
	}
	want := x[0]*muH2/(x[0]+x[1]*phi(muH2, muN2, mH2, mN2)) +
		x[1]*muN2/(x[1]+x[0]*phi(muN2, muH2, mN2, mH2))

	if got := mix.Viscosity(); math.Abs(got-want) > 1e-15 {
		t.Errorf("viscosity = %g, want %g", got, want)
	}
}

func TestDavidsonVersusHandComputedPair(t *testing.T) {
	muH2, muN2 := 8.9e-6, 1.7e-5
	mH2, mN2 := 2.016, 28.013

	mix, err := New(Config{
		Pressure:       101325,
		GasConstantRef: 1,
		Rule:           Davidson,
		Species: []Species{
			constSpecies("H2", mH2, 14300, muH2, 0.18, 2e-5),
			constSpecies("N2", mN2, 1040, muN2, 0.026, 2e-5),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	mix.UpdateState(300, []float64{0.2})
	x := mix.MoleFractions()

	denom := x[0]*math.Sqrt(mH2) + x[1]*math.Sqrt(mN2)
	w := []float64{x[0] * math.Sqrt(mH2) / denom, x[1] * math.Sqrt(mN2) / denom}
	mus := []float64{muH2, muN2}
	masses := []float64{mH2, mN2}
	fluidity := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			e := 2 * math.Sqrt(masses[i]*masses[j]) / (masses[i] + masses[j])
			fluidity += w[i] * w[j] / (math.Sqrt(mus[i]) * math.Sqrt(mus[j])) * math.Pow(e, 0.375)
		}
	}
	want := 1 / fluidity

	if got := mix.Viscosity(); math.Abs(got-want)/want > 1e-14 {
		t.Errorf("viscosity = %g, want %g", got, want)
	}
}

func TestZeroViscosityDegeneratesUntrapped(t *testing.T) {
	// A zero species viscosity drives the interaction parameter to
	// infinity; the mixture value collapses to zero rather than erroring.
	mix, err := New(Config{
		Pressure:       101325,
		GasConstantRef: 1,
		Species: []Species{
			constSpecies("A", 28.0, 1040, 0, 0.026, 2e-5),
			constSpecies("B", 32.0, 918, 2e-5, 0.026, 2e-5),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	mix.UpdateState(300, []float64{0.5})

	if v := mix.Viscosity(); v != 0 {
		t.Errorf("expected degenerate zero viscosity, got %g", v)
	}
}

func TestZeroMolarMassPropagatesNonFinite(t *testing.T) {
	mix, err := New(Config{
		Pressure:       101325,
		GasConstantRef: 1,
		Species: []Species{
			constSpecies("A", 0, 1040, 1.7e-5, 0.026, 2e-5),
			constSpecies("B", 32.0, 918, 2e-5, 0.026, 2e-5),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	mix.UpdateState(300, []float64{0.5})

	if rho := mix.Density(); !math.IsNaN(rho) && !math.IsInf(rho, 0) {
		t.Errorf("expected non-finite density, got %g", rho)
	}
}
