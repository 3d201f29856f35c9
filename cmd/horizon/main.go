package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/amesaru/horizon/internal/analysis"
	"github.com/amesaru/horizon/internal/config"
	"github.com/amesaru/horizon/internal/gui"
	"github.com/amesaru/horizon/internal/metrics"
	"github.com/amesaru/horizon/internal/sim"
	"github.com/amesaru/horizon/internal/store"
	"github.com/amesaru/horizon/internal/viz"
)

var (
	dataDir   string
	dt        float64
	duration  float64
	seed      int64
	particles int
	holes     int
	runs      int
	frameRate int
	column    string
	// Config file
	configFile string
	// Preset name
	preset string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "horizon",
		Short: "interactive black hole particle simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the GUI when no command given
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".horizon", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().IntVar(&particles, "particles", 0, "particle count (overrides config)")
	rootCmd.PersistentFlags().IntVar(&holes, "holes", 0, "initial black hole count (overrides config)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the windowed simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the simulator in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless run, saved to the data directory",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0.016, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", 30.0, "duration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a sampled series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&column, "column", "kinetic", "series column to analyze")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark stepping throughput",
		RunE:  benchWorld,
	}
	benchCmd.Flags().IntVar(&runs, "runs", 4, "concurrent replicas per case")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				cfg := config.GetPreset(p)
				fmt.Printf("  %-10s %d particles, %d holes\n", p, cfg.Particles, cfg.Holes)
			}
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, listCmd, plotCmd, analyzeCmd, benchCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: defaults, then preset,
// then config file, then explicit CLI flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("particles") {
		cfg.Particles = particles
	}
	if cmd.Flags().Changed("holes") {
		cfg.Holes = holes
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}

	return cfg, cfg.Validate()
}

func newWorld(cfg *config.Config) *sim.World {
	world := sim.NewWorld(cfg.Params(), cfg.Seed)
	world.Settings = cfg.Settings()
	for i := 1; i < cfg.Holes; i++ {
		world.AddHole()
	}
	return world
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(newWorld(cfg), frameRate)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := sim.NewRunner(cfg.Params())
	for _, m := range metrics.Defaults() {
		runner.AddMetric(m)
	}

	fmt.Printf("running %.1fs at dt=%.4f...\n", duration, dt)
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{
		Dt:       dt,
		Duration: duration,
		Seed:     cfg.Seed,
		Holes:    cfg.Holes,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(store.RunMetadata{
		Seed:      cfg.Seed,
		Dt:        dt,
		Duration:  duration,
		Particles: cfg.Particles,
		Holes:     cfg.Holes,
		Preset:    preset,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(result.Frames))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	metas, err := st.List()
	if err != nil {
		return err
	}

	if len(metas) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDURATION\tDT\tPARTICLES\tHOLES\tPRESET")

	for _, m := range metas {
		fmt.Fprintf(w, "%s\t%s\t%.2fs\t%.4fs\t%d\t%d\t%s\n",
			m.ID,
			m.Timestamp.Format("2006-01-02 15:04:05"),
			m.Duration,
			m.Dt,
			m.Particles,
			m.Holes,
			m.Preset,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, _, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(frames))

	for _, col := range sim.FrameColumns {
		data, err := store.Series(frames, col)
		if err != nil {
			return err
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(col),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, _, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	data, err := store.Series(frames, column)
	if err != nil {
		return err
	}
	if len(data) < 4 {
		return fmt.Errorf("not enough samples to analyze")
	}

	fmt.Printf("frequency analysis: %s (%s)\n\n", meta.ID, column)

	ps := analysis.PowerSpectrum(analysis.Detrend(data))

	plotData := ps[:len(ps)/4]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq, power := analysis.DominantFrequency(data, meta.Dt)
	fmt.Printf("dominant frequency: %.3f hz (power %.3e)\n", freq, power)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	return nil
}

func benchWorld(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	counts := []int{100, 500, 2000}
	dts := []float64{0.004, 0.016}

	fmt.Printf("benchmarking %d concurrent replicas per case\n\n", runs)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLES\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, n := range counts {
		for _, step := range dts {
			params := cfg.Params()
			params.Particles = n

			ens := sim.NewEnsemble(params, runs, cfg.Seed)

			start := time.Now()
			results, err := ens.Run(context.Background(), sim.Config{
				Dt:       step,
				Duration: 10.0,
				Holes:    cfg.Holes,
			})
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			steps := 0
			for _, r := range results {
				steps += len(r.Frames)
			}
			stepsPerSec := float64(steps) / elapsed.Seconds()

			fmt.Fprintf(w, "%d\t%.4fs\t%d\t%v\t%.0f\n",
				n, step, steps, elapsed.Round(time.Millisecond), stepsPerSec)
		}
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	frames, times, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := append([]string{"time"}, sim.FrameColumns...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range frames {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range frames[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, times, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	return store.ExportJSON(os.Stdout, meta, frames, times)
}
