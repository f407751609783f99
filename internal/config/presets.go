package config

// Presets holds ready-to-run mixture configurations. Molar masses and
// specific heats resolve from the species database.
var Presets = map[string]*Config{
	"hydrogen-air": {
		Pressure: 101325, Temperature: 500, GasConstantRef: 1, Gamma: 1.4,
		PrandtlTurb: 0.9, MixingRule: "wilke",
		Species: []Species{
			{
				Name:         "H2",
				Viscosity:    Model{Model: "sutherland", MuRef: 8.411e-6, TRef: 273.15, S: 97.0},
				Conductivity: Model{Model: "constant_prandtl", Prandtl: 0.69},
				Diffusivity:  Model{Model: "constant_schmidt", Schmidt: 0.7},
			},
			{
				Name:         "O2",
				Viscosity:    Model{Model: "sutherland", MuRef: 1.919e-5, TRef: 273.15, S: 139.0},
				Conductivity: Model{Model: "constant_prandtl", Prandtl: 0.74},
				Diffusivity:  Model{Model: "constant_schmidt", Schmidt: 0.7},
			},
		},
		Carrier: Species{
			Name:         "N2",
			Viscosity:    Model{Model: "sutherland", MuRef: 1.663e-5, TRef: 273.15, S: 107.0},
			Conductivity: Model{Model: "constant_prandtl", Prandtl: 0.72},
			Diffusivity:  Model{Model: "constant_lewis", Lewis: 1.0},
		},
		MassFractions: []float64{0.02, 0.22},
	},
	"methane-air": {
		Pressure: 101325, Temperature: 350, GasConstantRef: 1, Gamma: 1.4,
		PrandtlTurb: 0.9, MixingRule: "davidson",
		Species: []Species{
			{
				Name:         "CH4",
				Viscosity:    Model{Model: "sutherland", MuRef: 1.024e-5, TRef: 273.15, S: 169.0},
				Conductivity: Model{Model: "constant_prandtl", Prandtl: 0.73},
				Diffusivity:  Model{Model: "constant_schmidt", Schmidt: 0.7},
			},
			{
				Name:         "O2",
				Viscosity:    Model{Model: "sutherland", MuRef: 1.919e-5, TRef: 273.15, S: 139.0},
				Conductivity: Model{Model: "constant_prandtl", Prandtl: 0.74},
				Diffusivity:  Model{Model: "constant_schmidt", Schmidt: 0.7},
			},
		},
		Carrier: Species{
			Name:         "N2",
			Viscosity:    Model{Model: "sutherland", MuRef: 1.663e-5, TRef: 273.15, S: 107.0},
			Conductivity: Model{Model: "constant_prandtl", Prandtl: 0.72},
			Diffusivity:  Model{Model: "constant_lewis", Lewis: 1.0},
		},
		MassFractions: []float64{0.055, 0.22},
	},
	"flue-gas": {
		Pressure: 101325, Temperature: 800, GasConstantRef: 1, Gamma: 1.3,
		PrandtlTurb: 0.9, MixingRule: "wilke",
		Species: []Species{
			{
				Name:         "CO2",
				Viscosity:    Model{Model: "sutherland", MuRef: 1.370e-5, TRef: 273.15, S: 222.0},
				Conductivity: Model{Model: "constant_prandtl", Prandtl: 0.78},
				Diffusivity:  Model{Model: "constant_schmidt", Schmidt: 0.7},
			},
			{
				Name:         "H2O",
				Viscosity:    Model{Model: "sutherland", MuRef: 1.12e-5, TRef: 350.0, S: 1064.0},
				Conductivity: Model{Model: "constant_prandtl", Prandtl: 0.95},
				Diffusivity:  Model{Model: "constant_schmidt", Schmidt: 0.7},
			},
			{
				Name:         "O2",
				Viscosity:    Model{Model: "sutherland", MuRef: 1.919e-5, TRef: 273.15, S: 139.0},
				Conductivity: Model{Model: "constant_prandtl", Prandtl: 0.74},
				Diffusivity:  Model{Model: "constant_schmidt", Schmidt: 0.7},
			},
		},
		Carrier: Species{
			Name:         "N2",
			Viscosity:    Model{Model: "sutherland", MuRef: 1.663e-5, TRef: 273.15, S: 107.0},
			Conductivity: Model{Model: "constant_prandtl", Prandtl: 0.72},
			Diffusivity:  Model{Model: "constant_lewis", Lewis: 1.0},
		},
		MassFractions: []float64{0.15, 0.07, 0.05},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
