package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/airscrew/internal/bem"
	"github.com/san-kum/airscrew/internal/config"
	"github.com/san-kum/airscrew/internal/storage"
	"github.com/san-kum/airscrew/internal/viz"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string
	static     bool
	sections   bool
	parallel   bool
	noSave     bool
)

var log zerolog.Logger

func main() {
	rootCmd := &cobra.Command{
		Use:   "airscrew",
		Short: "blade-element propeller performance calculator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".airscrew", "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "compute a performance curve over forward speed",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&configFile, "config", "", "propeller config file (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use a built-in propeller")
	sweepCmd.Flags().BoolVar(&static, "static", false, "collapse the speed range to the static case")
	sweepCmd.Flags().BoolVar(&sections, "sections", false, "print the per-station breakdown at the first speed")
	sweepCmd.Flags().BoolVar(&parallel, "parallel", false, "compute speed points concurrently")
	sweepCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the run")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in propellers",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved performance curve",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive performance curve viewer",
		RunE:  runView,
	}
	viewCmd.Flags().StringVar(&configFile, "config", "", "propeller config file (yaml)")
	viewCmd.Flags().StringVar(&preset, "preset", "", "use a built-in propeller")

	rootCmd.AddCommand(sweepCmd, presetsCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile != "" && preset != "" {
		return nil, fmt.Errorf("--config and --preset are mutually exclusive")
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		log.Debug().Str("path", configFile).Msg("loaded config")
		return cfg, nil
	}

	name := preset
	if name == "" {
		name = "cruiser"
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}
	log.Debug().Str("preset", name).Msg("using preset")
	return cfg, nil
}

func computeSweep(cfg *config.Config) ([]bem.SpeedPoint, bem.Env, error) {
	rotor, err := cfg.Rotor()
	if err != nil {
		return nil, bem.Env{}, err
	}

	env := cfg.Env()
	if static {
		env.SpeedEnd = env.SpeedStart
		env.Steps = 0
	}

	start := time.Now()
	var points []bem.SpeedPoint
	if parallel {
		points, err = rotor.SweepParallel(env)
	} else {
		points, err = rotor.Sweep(env)
	}
	if err != nil {
		return nil, bem.Env{}, err
	}

	log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("points", len(points)).
		Bool("parallel", parallel).
		Msg("sweep complete")

	return points, env, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	points, env, err := computeSweep(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SPEED(KM/H)\tTHRUST(N)\tTORQUE(N·M)\tPOWER(W)\tCT\tT/P(N/W)")
	for _, p := range points {
		fmt.Fprintf(w, "%.1f\t%.1f\t%.2f\t%.0f\t%s\t%s\n",
			p.Speed, p.Thrust, p.Torque, p.Power,
			formatRatio(p.ThrustCoeff), formatRatio(p.ThrustPerPower))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if sections {
		if err := printSections(cfg); err != nil {
			return err
		}
	}

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	tip := cfg.Geometry.Stations[len(cfg.Geometry.Stations)-1]
	runID, err := st.Save(cfg.Name, cfg.Geometry.Blades, tip, env, points)
	if err != nil {
		return err
	}

	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func printSections(cfg *config.Config) error {
	rotor, err := cfg.Rotor()
	if err != nil {
		return err
	}

	env := cfg.Env()
	loads, err := rotor.BladeLoads(env.AngularSpeed(), env.SpeedStart, env.Density)
	if err != nil {
		return err
	}

	fmt.Printf("\nper-station breakdown at %.1f m/s (single blade):\n", env.SpeedStart)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RADIUS(M)\tTHRUST(N)\tDRAG(N)\tTORQUE(N·M)")
	for _, s := range loads.Sections {
		fmt.Fprintf(w, "%.3f\t%.2f\t%.2f\t%.3f\n", s.Radius, s.Thrust, s.Drag, s.Torque)
	}
	fmt.Fprintf(w, "total\t%.2f\t%.2f\t%.3f\n", loads.Thrust, loads.Drag, loads.Torque)
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tBLADES\tRPM\tSPEEDS(M/S)\tPOINTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0f\t%.1f-%.1f\t%d\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Blades,
			run.RPM,
			run.SpeedStart,
			run.SpeedEnd,
			run.Points,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	points, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("propeller: %s (%d blades, %.0f rpm)\n", meta.Name, meta.Blades, meta.RPM)
	fmt.Printf("points: %d\n\n", len(points))

	curves := []struct {
		caption string
		get     func(bem.SpeedPoint) float64
	}{
		{"thrust (N) vs speed", func(p bem.SpeedPoint) float64 { return p.Thrust }},
		{"power (W) vs speed", func(p bem.SpeedPoint) float64 { return p.Power }},
		{"thrust/power (N/W) vs speed", func(p bem.SpeedPoint) float64 { return p.ThrustPerPower }},
	}

	for _, c := range curves {
		data := make([]float64, 0, len(points))
		for _, p := range points {
			v := c.get(p)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			data = append(data, v)
		}
		if len(data) < 2 {
			fmt.Printf("%s: not enough finite samples\n\n", c.caption)
			continue
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(c.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, points)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, points)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	points, _, err := computeSweep(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(cfg.Name, points))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func formatRatio(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return fmt.Sprintf("%.4f", v)
}
