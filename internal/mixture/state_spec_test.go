package mixture

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// End-to-end scenario: a light fuel species in a heavy carrier, evaluated at
// a fixed operating point. Every expectation reproduces the defining formula
// rather than a frozen numeric literal.
var _ = Describe("UpdateState", func() {
	const (
		mFuel     = 2.0
		mCarrier  = 32.0
		cpFuel    = 14300.0
		cpCarrier = 920.0
		yFuel     = 0.2
		temp      = 500.0
		pressure  = 101325.0
	)

	var mix *Mixture

	BeforeEach(func() {
		var err error
		mix, err = New(Config{
			Pressure:       pressure,
			GasConstantRef: 1,
			Species: []Species{
				constSpecies("fuel", mFuel, cpFuel, 8.9e-6, 0.18, 2e-5),
				constSpecies("carrier", mCarrier, cpCarrier, 2.0e-5, 0.026, 2e-5),
			},
		})
		Expect(err).NotTo(HaveOccurred())

		mix.UpdateState(temp, []float64{yFuel})
	})

	It("derives the carrier mass fraction", func() {
		Expect(mix.MassFractions()).To(HaveLen(2))
		Expect(mix.MassFractions()[1]).To(BeNumerically("~", 1-yFuel, 1e-12))
	})

	It("computes mole fractions from the inverse mean molar mass", func() {
		inv := yFuel/mFuel + (1-yFuel)/mCarrier
		xFuel := yFuel / mFuel / inv
		xCarrier := (1 - yFuel) / mCarrier / inv

		Expect(mix.MoleFractions()[0]).To(BeNumerically("~", xFuel, 1e-12))
		Expect(mix.MoleFractions()[1]).To(BeNumerically("~", xCarrier, 1e-12))
	})

	It("computes the gas constant from the mean molar mass", func() {
		x := mix.MoleFractions()
		mean := (x[0]*mFuel + x[1]*mCarrier) / 1000
		Expect(mix.GasConstant()).To(BeNumerically("~", UniversalGasConstant/mean, 1e-9))
	})

	It("computes cp as the mass-weighted species mean and cv as cp minus R", func() {
		wantCp := yFuel*cpFuel + (1-yFuel)*cpCarrier
		Expect(mix.Cp()).To(BeNumerically("~", wantCp, 1e-9))
		Expect(mix.Cv()).To(BeNumerically("~", wantCp-mix.GasConstant(), 1e-9))
	})

	It("computes density from the ideal-gas law", func() {
		Expect(mix.Density()).To(BeNumerically("~", pressure/(temp*mix.GasConstant()), 1e-12))
		Expect(mix.Density() * mix.GasConstant() * mix.Temperature()).To(BeNumerically("~", pressure, 1e-6))
	})

	It("produces finite transport properties", func() {
		Expect(math.IsNaN(mix.Viscosity())).To(BeFalse())
		Expect(mix.Viscosity()).To(BeNumerically(">", 0))
		Expect(mix.Conductivity()).To(BeNumerically(">", 0))
		for _, d := range mix.MassDiffusivities() {
			Expect(d).To(BeNumerically(">", 0))
		}
	})

	It("bounds the mixture viscosity by the species viscosities", func() {
		Expect(mix.Viscosity()).To(BeNumerically(">", 8.9e-6*0.5))
		Expect(mix.Viscosity()).To(BeNumerically("<", 2.0e-5*1.5))
	})
})
