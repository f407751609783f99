package mixture

import "math"

// wilkeViscosity refreshes every species viscosity at the current state and
// mixes them with the Wilke rule.
func (m *Mixture) wilkeViscosity() float64 {
	for i := 0; i < m.n; i++ {
		m.viscModels[i].SetViscosity(m.temperature, m.density)
		m.speciesViscosity[i] = m.viscModels[i].Viscosity()
	}
	return m.wilkeMix(m.speciesViscosity)
}

// wilkeConductivity refreshes every species conductivity at the current
// state, using the already-mixed viscosity, and mixes them with the Wilke
// rule. The per-species viscosities feeding the interaction parameter were
// refreshed by the viscosity mixing step.
func (m *Mixture) wilkeConductivity() float64 {
	for i := 0; i < m.n; i++ {
		m.condModels[i].SetConductivity(m.temperature, m.density, m.mu, 0, m.cp)
		m.speciesConductivity[i] = m.condModels[i].Conductivity()
	}
	return m.wilkeMix(m.speciesConductivity)
}

// wilkeMix combines per-species property values pairwise:
//
//	mix = sum_i x_i*prop_i / sum_j phi(i,j)*x_j, phi(i,i) = 1
//
// The interaction parameter phi is built from the species viscosities even
// when prop holds conductivities, following the reference correlation.
// Degenerate inputs (zero viscosity or molar mass) are not trapped.
func (m *Mixture) wilkeMix(prop []float64) float64 {
	mix := 0.0
	for i := 0; i < m.n; i++ {
		denominator := 0.0
		for j := 0; j < m.n; j++ {
			if j == i {
				denominator += m.moleFractions[j]
				continue
			}
			phi := math.Pow(1+math.Sqrt(m.speciesViscosity[i]/m.speciesViscosity[j])*
				math.Pow(m.molarMasses[j]/m.molarMasses[i], 0.25), 2) /
				math.Sqrt(8*(1+m.molarMasses[i]/m.molarMasses[j]))
			denominator += m.moleFractions[j] * phi
		}
		mix += m.moleFractions[i] * prop[i] / denominator
	}
	return mix
}

// davidsonViscosity refreshes every species viscosity at the current state
// and mixes them with the Davidson rule: mole fractions weighted by the
// square root of molar mass form per-species mixture fractions, a pairwise
// fluidity sum is built from them, and the mixture viscosity is its inverse.
func (m *Mixture) davidsonViscosity() float64 {
	const a = 0.375

	for i := 0; i < m.n; i++ {
		m.viscModels[i].SetViscosity(m.temperature, m.density)
		m.speciesViscosity[i] = m.viscModels[i].Viscosity()
	}

	denominator := 0.0
	for i := 0; i < m.n; i++ {
		denominator += m.moleFractions[i] * math.Sqrt(m.molarMasses[i])
	}
	for j := 0; j < m.n; j++ {
		m.davidsonFractions[j] = m.moleFractions[j] * math.Sqrt(m.molarMasses[j]) / denominator
	}

	fluidity := 0.0
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			e := 2 * math.Sqrt(m.molarMasses[i]*m.molarMasses[j]) / (m.molarMasses[i] + m.molarMasses[j])
			fluidity += m.davidsonFractions[i] * m.davidsonFractions[j] /
				(math.Sqrt(m.speciesViscosity[i]) * math.Sqrt(m.speciesViscosity[j])) *
				math.Pow(e, a)
		}
	}
	return 1 / fluidity
}
