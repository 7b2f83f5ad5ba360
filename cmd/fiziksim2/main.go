package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/cresas/fiziksim2/internal/config"
	"github.com/cresas/fiziksim2/internal/history"
	"github.com/cresas/fiziksim2/internal/sim"
	"github.com/cresas/fiziksim2/internal/tui"
)

var (
	velocity   float64
	height     float64
	mass       float64
	planet     string
	gravity    float64
	configFile string
	outFile    string
	configOut  string
	realtime   bool
)

// maxTicks bounds headless runs against near-zero gravity configurations.
const maxTicks = 100000

func main() {
	rootCmd := &cobra.Command{
		Use:   "fiziksim2",
		Short: "free-fall simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().Float64Var(&velocity, "v0", config.DefaultVelocity, "initial velocity (m/s, downward positive)")
	rootCmd.PersistentFlags().Float64Var(&height, "height", config.DefaultHeight, "initial height (m)")
	rootCmd.PersistentFlags().Float64Var(&mass, "mass", config.DefaultMass, "mass (kg, display only)")
	rootCmd.PersistentFlags().StringVar(&planet, "planet", config.DefaultPlanet, "planet preset or custom")
	rootCmd.PersistentFlags().Float64Var(&gravity, "gravity", config.DefaultGravity, "gravity for planet=custom (m/s²)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a fall headless and print the data log",
		RunE:  runSimulation,
	}
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "tick in real time instead of instantly")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot height and velocity over the fall",
		RunE:  plotSimulation,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "run a fall and export the data log as CSV",
		RunE:  exportSimulation,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output path (default: stdout)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "write the effective configuration to a yaml file",
		RunE:  writeConfig,
	}
	configCmd.Flags().StringVar(&configOut, "out", "fiziksim.yaml", "output path")

	planetsCmd := &cobra.Command{
		Use:   "planets",
		Short: "list planet gravity presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PLANET\tGRAVITY")
			for _, p := range config.Planets() {
				if p.Name == config.CustomPlanet {
					fmt.Fprintf(w, "%s\t(--gravity flag)\n", p.Name)
					continue
				}
				fmt.Fprintf(w, "%s\t%.2f m/s²\n", p.Name, p.Gravity)
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, plotCmd, exportCmd, configCmd, planetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig merges defaults, an optional config file and changed flags,
// in that precedence order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("v0") {
		cfg.InitialVelocity = velocity
	}
	if flags.Changed("height") {
		cfg.InitialHeight = height
	}
	if flags.Changed("mass") {
		cfg.Mass = mass
	}
	if flags.Changed("planet") {
		cfg.Planet = planet
	}
	if flags.Changed("gravity") {
		cfg.Gravity = gravity
		if !flags.Changed("planet") {
			cfg.Planet = config.CustomPlanet
		}
	}

	cfg.Clamp()
	return cfg, nil
}

func simulate(cmd *cobra.Command) (*config.Config, *history.Store, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	store := history.NewStore()
	driver := sim.NewDriver(cfg.Params(), store)

	if err := driver.RunToGround(maxTicks); err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, store, err := runMode(cmd)
	if err != nil {
		return err
	}

	records := store.Records()
	last := records[len(records)-1]

	fmt.Printf("free fall: h0=%.2fm v0=%.2fm/s g=%.2fm/s² (%s)\n\n",
		cfg.InitialHeight, cfg.InitialVelocity, cfg.EffectiveGravity(), cfg.Planet)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tHEIGHT\tVELOCITY\tACCEL\tDISPLACEMENT\tMASS")
	for _, r := range records {
		fmt.Fprintf(w, "%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			r.Time, r.Height, r.Velocity, r.Acceleration, r.Displacement, r.Mass)
	}
	w.Flush()

	fmt.Printf("\nticks: %d\n", store.Len())
	fmt.Printf("impact time: %.2f s\n", last.Time)
	fmt.Printf("impact velocity: %.2f m/s\n", last.Velocity)
	return nil
}

// runMode runs either instantly or against the wall clock.
func runMode(cmd *cobra.Command) (*config.Config, *history.Store, error) {
	if !realtime {
		return simulate(cmd)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	store := history.NewStore()
	driver := sim.NewDriver(cfg.Params(), store)
	runner := sim.NewRunner(driver, 100*time.Millisecond)

	fmt.Println("running in real time...")
	if err := runner.Run(cmd.Context()); err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

// writeConfig saves the merged flags-over-file configuration so it can be
// reloaded with --config later.
func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(configOut, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", configOut)
	return nil
}

func plotSimulation(cmd *cobra.Command, args []string) error {
	cfg, store, err := simulate(cmd)
	if err != nil {
		return err
	}

	records := store.Records()
	heights := make([]float64, len(records))
	velocities := make([]float64, len(records))
	for i, r := range records {
		heights[i] = r.Height
		velocities[i] = r.Velocity
	}

	fmt.Printf("free fall from %.2fm on %s\n\n", cfg.InitialHeight, cfg.Planet)

	fmt.Println(asciigraph.Plot(heights,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("height (m)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(velocities,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("velocity (m/s)"),
	))
	return nil
}

func exportSimulation(cmd *cobra.Command, args []string) error {
	_, store, err := simulate(cmd)
	if err != nil {
		return err
	}

	if outFile != "" {
		if err := store.ExportFile(outFile); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d rows)\n", outFile, store.Len())
		return nil
	}
	return store.ExportCSV(os.Stdout)
}
