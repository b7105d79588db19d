package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/advect/internal/config"
	"github.com/san-kum/advect/internal/export"
	"github.com/san-kum/advect/internal/lab"
	"github.com/san-kum/advect/internal/store"
	"github.com/san-kum/advect/internal/viz"
)

var (
	dataDir string
	dt      float64
	tmax    float64
	scheme  string
	seed    int64
	params  []string

	// particle layout
	layout         string
	count          int
	nx, ny         int
	xmin, xmax     float64
	ymin, ymax     float64
	cx, cy, radius float64

	configFile string
	preset     string

	particleIdx int
	frameRate   int
	svgWidth    int
	svgHeight   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "advect",
		Short: "2D particle advection lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".advect", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [field]",
		Short: "march particles through a velocity field",
		Args:  cobra.ExactArgs(1),
		RunE:  runField,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	printCmd := &cobra.Command{
		Use:   "print [run_id]",
		Short: "print one particle's trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  printTrajectory,
	}
	printCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot trajectories in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index for the time series")

	exportCmd := &cobra.Command{
		Use:   "export [run_id] [path]",
		Short: "export the trajectory document to a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id] [path]",
		Short: "export trajectories to a CSV file",
		Args:  cobra.ExactArgs(2),
		RunE:  exportRunCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id] [path]",
		Short: "render trajectories to an SVG file",
		Args:  cobra.ExactArgs(2),
		RunE:  exportRunSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")

	liveCmd := &cobra.Command{
		Use:   "live [field]",
		Short: "march and replay the trajectories interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "list available velocity fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range lab.NewRegistry().ListFields() {
				fmt.Println(name)
			}
			return nil
		},
	}

	schemesCmd := &cobra.Command{
		Use:   "schemes",
		Short: "list available marching schemes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range lab.NewRegistry().ListSchemes() {
				fmt.Println(name)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [field]",
		Short: "list available presets for a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for field: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [field]",
		Short: "benchmark marching throughput",
		Args:  cobra.ExactArgs(1),
		RunE:  benchField,
	}
	benchCmd.Flags().StringVar(&scheme, "scheme", "ab2", "marching scheme")

	rootCmd.AddCommand(runCmd, listCmd, printCmd, plotCmd, exportCmd,
		exportCSVCmd, exportSVGCmd, liveCmd, fieldsCmd, schemesCmd,
		presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&tmax, "tmax", config.DefaultTmax, "horizon")
	cmd.Flags().StringVar(&scheme, "scheme", "ab2", "marching scheme")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed (cloud layout)")
	cmd.Flags().StringArrayVar(&params, "param", nil, "field parameter key=value (repeatable)")
	cmd.Flags().StringVar(&layout, "layout", "grid", "particle layout: line, grid, circle, cloud")
	cmd.Flags().IntVar(&count, "particles", 20, "particle count (line, circle, cloud)")
	cmd.Flags().IntVar(&nx, "nx", 8, "grid columns")
	cmd.Flags().IntVar(&ny, "ny", 4, "grid rows")
	cmd.Flags().Float64Var(&xmin, "xmin", 0.1, "layout x lower bound")
	cmd.Flags().Float64Var(&xmax, "xmax", 1.9, "layout x upper bound")
	cmd.Flags().Float64Var(&ymin, "ymin", 0.1, "layout y lower bound")
	cmd.Flags().Float64Var(&ymax, "ymax", 0.9, "layout y upper bound")
	cmd.Flags().Float64Var(&cx, "cx", 0, "circle center x")
	cmd.Flags().Float64Var(&cy, "cy", 0, "circle center y")
	cmd.Flags().Float64Var(&radius, "r", 1, "circle radius")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file and flags, flags winning.
func resolveConfig(cmd *cobra.Command, field string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Field = field

	if preset != "" {
		p := config.GetPreset(field, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(field))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Field = field
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("tmax") {
		cfg.Tmax = tmax
	}
	if cmd.Flags().Changed("scheme") {
		cfg.Scheme = scheme
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if layoutFlagsChanged(cmd) {
		cfg.Particles = config.ParticlesConfig{
			Layout: layout,
			Count:  count,
			NX:     nx, NY: ny,
			XMin: xmin, XMax: xmax,
			YMin: ymin, YMax: ymax,
			CX: cx, CY: cy, R: radius,
			X0: xmin, Y0: ymin, X1: xmax, Y1: ymax,
		}
	}

	overrides, err := parseParams(params)
	if err != nil {
		return nil, err
	}
	// Presets are shared; merge into a fresh map rather than mutating theirs.
	merged := map[string]float64{}
	for k, v := range cfg.FieldParams {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	cfg.FieldParams = merged

	return cfg, nil
}

func layoutFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"layout", "particles", "nx", "ny", "xmin", "xmax", "ymin", "ymax", "cx", "cy", "r"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func parseParams(pairs []string) (map[string]float64, error) {
	out := map[string]float64{}
	for _, pair := range pairs {
		key, val, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("malformed field parameter %q, want key=value", pair)
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed field parameter %q: %w", pair, err)
		}
		out[key] = f
	}
	return out, nil
}

func executeRun(cmd *cobra.Command, field string) (*lab.Result, *config.Config, error) {
	cfg, err := resolveConfig(cmd, field)
	if err != nil {
		return nil, nil, err
	}

	x0, y0, err := cfg.InitialConditions()
	if err != nil {
		return nil, nil, err
	}

	result, err := lab.Run(lab.NewRegistry(), lab.RunConfig{
		Field:       cfg.Field,
		Scheme:      cfg.Scheme,
		FieldParams: cfg.FieldParams,
		Dt:          cfg.Dt,
		Tmax:        cfg.Tmax,
		X0:          x0,
		Y0:          y0,
	})
	if err != nil {
		return nil, nil, err
	}
	return result, cfg, nil
}

func runField(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("marching %s...\n", args[0])
	result, cfg, err := executeRun(cmd, args[0])
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg.Field, cfg.Scheme, cfg.Seed, result.Analysis, result.Metrics)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("particles: %d\n", result.Analysis.Particles().Len())
	fmt.Printf("steps: %d\n", result.Analysis.Grid().StepCount())
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	result, cfg, err := executeRun(cmd, args[0])
	if err != nil {
		return err
	}

	doc, err := export.NewDocument(result.Analysis)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s (%s, dt=%.4g)", cfg.Field, cfg.Scheme, cfg.Dt)
	return viz.Playback(doc, title, frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := store.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIELD\tSCHEME\tTIME\tDT\tTMAX\tPARTICLES\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.4f\t%.2f\t%d\t%d\n",
			run.ID,
			run.Field,
			run.Scheme,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dt,
			run.Tmax,
			run.Particles,
			run.Steps,
		)
	}
	return w.Flush()
}

func printTrajectory(cmd *cobra.Command, args []string) error {
	doc, err := store.New(dataDir).LoadDocument(args[0])
	if err != nil {
		return err
	}
	if particleIdx < 0 || particleIdx >= len(doc.Parts) {
		return fmt.Errorf("particle %d out of range [0, %d)", particleIdx, len(doc.Parts))
	}

	part := doc.Parts[particleIdx]
	fmt.Printf("%6s%6s%6s\n", "t", "x", "y")
	for i, t := range doc.T {
		fmt.Printf("%6.2f%6.2f%6.2f\n", t, part.X[i], part.Y[i])
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	doc, err := st.LoadDocument(args[0])
	if err != nil {
		return err
	}
	if particleIdx < 0 || particleIdx >= len(doc.Parts) {
		return fmt.Errorf("particle %d out of range [0, %d)", particleIdx, len(doc.Parts))
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("field: %s (%s)\n", meta.Field, meta.Scheme)
	fmt.Printf("samples: %d\n\n", len(doc.T))

	part := doc.Parts[particleIdx]
	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{part.X[:len(doc.T)], fmt.Sprintf("particle %d: x vs time", particleIdx)},
		{part.Y[:len(doc.T)], fmt.Sprintf("particle %d: y vs time", particleIdx)},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	fmt.Println("all trajectories (x-y plane):")
	fmt.Print(viz.DrawTrajectories(doc, 80, 20, -1).String())
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	doc, err := store.New(dataDir).LoadDocument(args[0])
	if err != nil {
		return err
	}
	if err := export.WriteDocument(args[1], doc); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

func exportRunCSV(cmd *cobra.Command, args []string) error {
	rows, err := store.New(dataDir).LoadRows(args[0])
	if err != nil {
		return err
	}
	if err := store.WriteRows(args[1], rows); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d rows)\n", args[1], len(rows))
	return nil
}

func exportRunSVG(cmd *cobra.Command, args []string) error {
	doc, err := store.New(dataDir).LoadDocument(args[0])
	if err != nil {
		return err
	}
	svg := export.TrajectoriesToSVG(doc, svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("nothing to render")
	}
	if err := os.WriteFile(args[1], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

func benchField(cmd *cobra.Command, args []string) error {
	horizons := []float64{1.0, 5.0, 10.0}
	dts := []float64{0.001, 0.01, 0.1}

	fmt.Printf("benchmarking %s (%s)\n\n", args[0], scheme)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TMAX\tDT\tPARTICLES\tSTEPS\tTIME\tSTEPS/SEC")

	reg := lab.NewRegistry()
	for _, horizon := range horizons {
		for _, step := range dts {
			cfg := config.DefaultConfig()
			cfg.Field = args[0]
			x0, y0, err := cfg.InitialConditions()
			if err != nil {
				return err
			}

			result, err := lab.Run(reg, lab.RunConfig{
				Field:  args[0],
				Scheme: scheme,
				Dt:     step,
				Tmax:   horizon,
				X0:     x0,
				Y0:     y0,
			})
			if err != nil {
				return err
			}

			steps := result.Analysis.Grid().StepCount()
			stepsPerSec := float64(steps) / result.Elapsed.Seconds()
			fmt.Fprintf(w, "%.1f\t%.4f\t%d\t%d\t%v\t%.0f\n",
				horizon, step, result.Analysis.Particles().Len(), steps,
				result.Elapsed, stepsPerSec)
		}
	}
	return w.Flush()
}
