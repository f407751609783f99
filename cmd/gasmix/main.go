package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/fluidlab/gasmix/internal/chem"
	"github.com/fluidlab/gasmix/internal/config"
	"github.com/fluidlab/gasmix/internal/export"
	"github.com/fluidlab/gasmix/internal/mixture"
	"github.com/fluidlab/gasmix/internal/sweep"
	"github.com/fluidlab/gasmix/internal/tui"
)

var (
	configFile string
	preset     string
	// State overrides
	temperature float64
	pressure    float64
	mixingRule  string
	// Sweep bounds
	sweepStart float64
	sweepStop  float64
	sweepSteps int
	csvPath    string
	plotPath   string
	plotProp   string
	// Live ramp
	rampStep float64
	// Species database
	speciesFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gasmix",
		Short: "gas mixture transport property lab",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "mixture config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset mixture")
	rootCmd.PersistentFlags().StringVar(&speciesFile, "species-db", "", "species database file (yaml), builtin table if empty")

	propsCmd := &cobra.Command{
		Use:   "props",
		Short: "evaluate mixture properties at one state",
		RunE:  runProps,
	}
	propsCmd.Flags().Float64Var(&temperature, "temp", 0, "temperature (K)")
	propsCmd.Flags().Float64Var(&pressure, "pressure", 0, "operating pressure (Pa)")
	propsCmd.Flags().StringVar(&mixingRule, "rule", "", "viscosity mixing rule (wilke|davidson)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "evaluate properties over a temperature range",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepStart, "start", 300, "start temperature (K)")
	sweepCmd.Flags().Float64Var(&sweepStop, "stop", 1500, "stop temperature (K)")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 60, "number of evaluations")
	sweepCmd.Flags().StringVar(&csvPath, "csv", "", "write results to CSV file")
	sweepCmd.Flags().StringVar(&plotPath, "plot", "", "write plot image (png/svg/pdf)")
	sweepCmd.Flags().StringVar(&plotProp, "plot-property", "viscosity", "property to plot")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "live temperature ramp with property charts",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&sweepStart, "start", 300, "ramp start temperature (K)")
	liveCmd.Flags().Float64Var(&sweepStop, "stop", 1500, "ramp stop temperature (K)")
	liveCmd.Flags().Float64Var(&rampStep, "step", 5, "temperature increment per frame (K)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset mixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "list the species database",
		RunE:  runSpecies,
	}

	rootCmd.AddCommand(propsCmd, sweepCmd, liveCmd, presetsCmd, speciesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func loadDatabase() (*chem.Database, error) {
	if speciesFile != "" {
		return chem.Load(speciesFile)
	}
	return chem.Builtin(), nil
}

func buildMixture(cmd *cobra.Command) (*mixture.Mixture, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("pressure") {
		cfg.Pressure = pressure
	}
	if cmd.Flags().Changed("temp") {
		cfg.Temperature = temperature
	}
	if cmd.Flags().Changed("rule") {
		cfg.MixingRule = mixingRule
	}

	db, err := loadDatabase()
	if err != nil {
		return nil, nil, err
	}
	mixCfg, err := cfg.Mixture(db)
	if err != nil {
		return nil, nil, err
	}
	mix, err := mixture.New(mixCfg)
	if err != nil {
		return nil, nil, err
	}
	return mix, cfg, nil
}

func runProps(cmd *cobra.Command, args []string) error {
	mix, cfg, err := buildMixture(cmd)
	if err != nil {
		return err
	}

	mix.UpdateState(cfg.Temperature, cfg.MassFractions)

	fmt.Printf("mixture at T=%.2f K, p=%.0f Pa (%s rule)\n\n", mix.Temperature(), mix.Pressure(), mix.Rule())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "density\t%.6g kg/m^3\n", mix.Density())
	fmt.Fprintf(w, "gas constant\t%.6g J/kg/K\n", mix.GasConstant())
	fmt.Fprintf(w, "cp\t%.6g J/kg/K\n", mix.Cp())
	fmt.Fprintf(w, "cv\t%.6g J/kg/K\n", mix.Cv())
	fmt.Fprintf(w, "viscosity\t%.6g Pa s\n", mix.Viscosity())
	fmt.Fprintf(w, "conductivity\t%.6g W/m/K\n", mix.Conductivity())
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nspecies:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS FRAC\tMOLE FRAC\tDIFFUSIVITY")
	names := mix.SpeciesNames()
	massFracs := mix.MassFractions()
	moleFracs := mix.MoleFractions()
	for i, name := range names {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4g\n", name, massFracs[i], moleFracs[i], mix.MassDiffusivity(i))
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	mix, cfg, err := buildMixture(cmd)
	if err != nil {
		return err
	}

	res, err := sweep.Run(mix, cfg.MassFractions, sweep.Config{Start: sweepStart, Stop: sweepStop, Steps: sweepSteps})
	if err != nil {
		return err
	}

	fmt.Printf("sweep %.0f-%.0f K, %d steps (%s rule)\n\n", sweepStart, sweepStop, sweepSteps, mix.Rule())
	graph := asciigraph.Plot(res.Viscosity,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mixture viscosity (Pa s)"),
	)
	fmt.Println(graph)
	fmt.Println()
	graph = asciigraph.Plot(res.Conductivity,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mixture conductivity (W/m/K)"),
	)
	fmt.Println(graph)

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteCSV(f, res); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", csvPath)
	}
	if plotPath != "" {
		if err := export.SavePlot(plotPath, plotProp, res); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", plotPath)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	mix, cfg, err := buildMixture(cmd)
	if err != nil {
		return err
	}

	name := "mixture"
	if preset != "" {
		name = preset
	}
	m := tui.NewModel(mix, cfg.MassFractions, name, sweepStart, sweepStop, rampStep)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runSpecies(cmd *cobra.Command, args []string) error {
	db, err := loadDatabase()
	if err != nil {
		return err
	}

	names := db.Names()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMOLAR MASS (g/mol)\tCP (J/kg/K)")
	for _, name := range names {
		entry, _ := db.Lookup(name)
		fmt.Fprintf(w, "%s\t%.4f\t%.1f\n", entry.Name, entry.MolarMass, entry.Cp)
	}
	return w.Flush()
}
