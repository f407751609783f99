// Package sweep evaluates a mixture across a temperature range, producing
// aligned property series for plotting and export.
package sweep

import (
	"fmt"

	"github.com/fluidlab/gasmix/internal/mixture"
	"gonum.org/v1/gonum/floats"
)

// Config bounds a sweep: Steps evaluations from Start to Stop inclusive.
type Config struct {
	Start float64
	Stop  float64
	Steps int
}

// Result holds one value per evaluated temperature for each property.
type Result struct {
	Temperatures  []float64
	Density       []float64
	Viscosity     []float64
	Conductivity  []float64
	Cp            []float64
	GasConstant   float64
	SpeciesNames  []string
	Diffusivities [][]float64 // [step][species]
}

// Run evaluates mix at each temperature of the grid with the given mass
// fractions. The mixture's state after Run reflects the final temperature.
func Run(mix *mixture.Mixture, scalars []float64, cfg Config) (*Result, error) {
	if cfg.Steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", cfg.Steps)
	}
	if cfg.Stop <= cfg.Start {
		return nil, fmt.Errorf("sweep range [%g, %g] is empty", cfg.Start, cfg.Stop)
	}

	res := &Result{
		Temperatures:  make([]float64, cfg.Steps),
		Density:       make([]float64, cfg.Steps),
		Viscosity:     make([]float64, cfg.Steps),
		Conductivity:  make([]float64, cfg.Steps),
		Cp:            make([]float64, cfg.Steps),
		SpeciesNames:  mix.SpeciesNames(),
		Diffusivities: make([][]float64, cfg.Steps),
	}
	floats.Span(res.Temperatures, cfg.Start, cfg.Stop)

	for i, t := range res.Temperatures {
		mix.UpdateState(t, scalars)
		res.Density[i] = mix.Density()
		res.Viscosity[i] = mix.Viscosity()
		res.Conductivity[i] = mix.Conductivity()
		res.Cp[i] = mix.Cp()
		res.Diffusivities[i] = mix.MassDiffusivities()
	}
	res.GasConstant = mix.GasConstant()

	return res, nil
}
