package mixture

import "gonum.org/v1/gonum/floats"

// massToMoleFractions stores the supplied n-1 mass fractions, derives the
// carrier fraction as one minus their sum, and recomputes mole fractions
// through the inverse mean molar mass. Individual fractions are not range
// checked; out-of-range inputs flow through unchanged.
func (m *Mixture) massToMoleFractions(scalars []float64) {
	copy(m.massFractions, scalars)
	m.massFractions[m.n-1] = 1 - floats.Sum(scalars)

	invMolarMass := 0.0
	for i := 0; i < m.n; i++ {
		invMolarMass += m.massFractions[i] / m.molarMasses[i]
	}

	for i := 0; i < m.n; i++ {
		m.moleFractions[i] = (m.massFractions[i] / m.molarMasses[i]) / invMolarMass
	}
}
