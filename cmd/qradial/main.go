package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/qradial/internal/analysis"
	"github.com/san-kum/qradial/internal/config"
	"github.com/san-kum/qradial/internal/export"
	"github.com/san-kum/qradial/internal/integrators"
	"github.com/san-kum/qradial/internal/radial"
	"github.com/san-kum/qradial/internal/shoot"
	"github.com/san-kum/qradial/internal/storage"
	"github.com/san-kum/qradial/internal/viz"
)

var (
	dataDir string
	rMin    float64
	rMax    float64
	points  int
	k2      float64
	l       int
	method  string
	k2Min   float64
	k2Max   float64
	samples int
	workers int
	maxIter int
	tol     float64
	// Potential parameters
	depth     float64 // well depth (square-well, woods-saxon)
	wellRange float64 // well radius (square-well)
	charge    float64 // nuclear charge (coulomb)
	beta      float64 // oscillator frequency (harmonic)
	radius    float64 // half-density radius (woods-saxon)
	surface   float64 // surface diffuseness (woods-saxon)
	// Config file
	configFile string
	// Preset name
	preset string
	// Plot output
	svgOut  string
	density bool
	// Export destination
	outFile string
	// Save found bound states
	saveStates bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qradial",
		Short: "radial schrodinger boundary value lab",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the interactive explorer when no command given
			cfg := config.DefaultConfig()
			g, gerr := cfg.BuildGrid()
			pot, perr := cfg.BuildPotential()
			solver, serr := cfg.BuildSolver()
			if gerr != nil || perr != nil || serr != nil {
				cmd.Help()
				return
			}
			viz.RunExplorer(pot, solver, g, cfg.K2, cfg.L)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qradial", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [potential]",
		Short: "integrate outward at a fixed trial energy",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().Float64Var(&rMin, "rmin", config.DefaultRMin, "grid start")
	solveCmd.Flags().Float64Var(&rMax, "rmax", config.DefaultRMax, "grid end")
	solveCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")
	solveCmd.Flags().Float64Var(&k2, "k2", config.DefaultK2, "trial energy")
	solveCmd.Flags().IntVar(&l, "l", 0, "angular momentum")
	solveCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "integration method")
	solveCmd.Flags().Float64Var(&depth, "depth", 4.0, "well depth")
	solveCmd.Flags().Float64Var(&wellRange, "range", 1.0, "well radius")
	solveCmd.Flags().Float64Var(&charge, "z", 1.0, "nuclear charge (coulomb)")
	solveCmd.Flags().Float64Var(&beta, "beta", 1.0, "oscillator frequency (harmonic)")
	solveCmd.Flags().Float64Var(&radius, "radius", 3.1, "half-density radius (woods-saxon)")
	solveCmd.Flags().Float64Var(&surface, "surface", 0.65, "surface diffuseness (woods-saxon)")
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	scanCmd := &cobra.Command{
		Use:   "scan [potential]",
		Short: "sweep an energy window and report tail signs",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}
	scanCmd.Flags().Float64Var(&rMin, "rmin", config.DefaultRMin, "grid start")
	scanCmd.Flags().Float64Var(&rMax, "rmax", config.DefaultRMax, "grid end")
	scanCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")
	scanCmd.Flags().IntVar(&l, "l", 0, "angular momentum")
	scanCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "integration method")
	scanCmd.Flags().Float64Var(&k2Min, "k2-min", config.DefaultK2Min, "window start")
	scanCmd.Flags().Float64Var(&k2Max, "k2-max", config.DefaultK2Max, "window end")
	scanCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "trial energies")
	scanCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = all cpus)")
	scanCmd.Flags().Float64Var(&depth, "depth", 4.0, "well depth")
	scanCmd.Flags().Float64Var(&wellRange, "range", 1.0, "well radius")
	scanCmd.Flags().Float64Var(&charge, "z", 1.0, "nuclear charge (coulomb)")
	scanCmd.Flags().Float64Var(&beta, "beta", 1.0, "oscillator frequency (harmonic)")
	scanCmd.Flags().Float64Var(&radius, "radius", 3.1, "half-density radius (woods-saxon)")
	scanCmd.Flags().Float64Var(&surface, "surface", 0.65, "surface diffuseness (woods-saxon)")
	scanCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	scanCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	boundCmd := &cobra.Command{
		Use:   "bound [potential]",
		Short: "find bound states by scan and bisection",
		Args:  cobra.ExactArgs(1),
		RunE:  runBound,
	}
	boundCmd.Flags().Float64Var(&rMin, "rmin", config.DefaultRMin, "grid start")
	boundCmd.Flags().Float64Var(&rMax, "rmax", config.DefaultRMax, "grid end")
	boundCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")
	boundCmd.Flags().IntVar(&l, "l", 0, "angular momentum")
	boundCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "integration method")
	boundCmd.Flags().Float64Var(&k2Min, "k2-min", config.DefaultK2Min, "window start")
	boundCmd.Flags().Float64Var(&k2Max, "k2-max", config.DefaultK2Max, "window end")
	boundCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "trial energies")
	boundCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = all cpus)")
	boundCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "bisection iterations")
	boundCmd.Flags().Float64Var(&tol, "tol", config.DefaultTol, "bisection tolerance")
	boundCmd.Flags().Float64Var(&depth, "depth", 4.0, "well depth")
	boundCmd.Flags().Float64Var(&wellRange, "range", 1.0, "well radius")
	boundCmd.Flags().Float64Var(&charge, "z", 1.0, "nuclear charge (coulomb)")
	boundCmd.Flags().Float64Var(&beta, "beta", 1.0, "oscillator frequency (harmonic)")
	boundCmd.Flags().Float64Var(&radius, "radius", 3.1, "half-density radius (woods-saxon)")
	boundCmd.Flags().Float64Var(&surface, "surface", 0.65, "surface diffuseness (woods-saxon)")
	boundCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	boundCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	boundCmd.Flags().BoolVar(&saveStates, "save", false, "save each bound state as a run")

	phaseCmd := &cobra.Command{
		Use:   "phase [potential]",
		Short: "scattering phase shift at positive energy",
		Args:  cobra.ExactArgs(1),
		RunE:  runPhase,
	}
	phaseCmd.Flags().Float64Var(&rMin, "rmin", config.DefaultRMin, "grid start")
	phaseCmd.Flags().Float64Var(&rMax, "rmax", config.DefaultRMax, "grid end")
	phaseCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")
	phaseCmd.Flags().Float64Var(&k2, "k2", 1.0, "scattering energy (k2 > 0)")
	phaseCmd.Flags().IntVar(&l, "l", 0, "angular momentum")
	phaseCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "integration method")
	phaseCmd.Flags().Float64Var(&depth, "depth", 4.0, "well depth")
	phaseCmd.Flags().Float64Var(&wellRange, "range", 1.0, "well radius")
	phaseCmd.Flags().Float64Var(&charge, "z", 1.0, "nuclear charge (coulomb)")
	phaseCmd.Flags().Float64Var(&beta, "beta", 1.0, "oscillator frequency (harmonic)")
	phaseCmd.Flags().Float64Var(&radius, "radius", 3.1, "half-density radius (woods-saxon)")
	phaseCmd.Flags().Float64Var(&surface, "surface", 0.65, "surface diffuseness (woods-saxon)")

	convergeCmd := &cobra.Command{
		Use:   "converge [potential]",
		Short: "measure the observed convergence order",
		Args:  cobra.ExactArgs(1),
		RunE:  runConverge,
	}
	convergeCmd.Flags().Float64Var(&rMin, "rmin", config.DefaultRMin, "grid start")
	convergeCmd.Flags().Float64Var(&rMax, "rmax", config.DefaultRMax, "grid end")
	convergeCmd.Flags().IntVar(&points, "points", 501, "grid points")
	convergeCmd.Flags().Float64Var(&k2, "k2", config.DefaultK2, "trial energy")
	convergeCmd.Flags().IntVar(&l, "l", 0, "angular momentum")
	convergeCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "integration method")

	compareCmd := &cobra.Command{
		Use:   "compare [potential] [method1] [method2] ...",
		Short: "compare integration methods on the same problem",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runCompare,
	}
	compareCmd.Flags().Float64Var(&rMin, "rmin", config.DefaultRMin, "grid start")
	compareCmd.Flags().Float64Var(&rMax, "rmax", config.DefaultRMax, "grid end")
	compareCmd.Flags().IntVar(&points, "points", 501, "grid points")
	compareCmd.Flags().Float64Var(&k2, "k2", config.DefaultK2, "trial energy")
	compareCmd.Flags().IntVar(&l, "l", 0, "angular momentum")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved wavefunction",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "write an svg instead of drawing in the terminal")
	plotCmd.Flags().BoolVar(&density, "density", false, "plot the probability density u^2")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "write to a file instead of stdout")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outFile, "out", "", "write to a file instead of stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets [potential]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				names := make([]string, 0, len(config.Presets))
				for name := range config.Presets {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Printf("%s: %v\n", name, config.ListPresets(name))
				}
				return nil
			}
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for potential: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [potential]",
		Short: "interactive energy explorer",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&rMin, "rmin", config.DefaultRMin, "grid start")
	liveCmd.Flags().Float64Var(&rMax, "rmax", config.DefaultRMax, "grid end")
	liveCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")
	liveCmd.Flags().Float64Var(&k2, "k2", config.DefaultK2, "starting trial energy")
	liveCmd.Flags().IntVar(&l, "l", 0, "angular momentum")
	liveCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "integration method")
	liveCmd.Flags().Float64Var(&depth, "depth", 4.0, "well depth")
	liveCmd.Flags().Float64Var(&wellRange, "range", 1.0, "well radius")
	liveCmd.Flags().Float64Var(&charge, "z", 1.0, "nuclear charge (coulomb)")
	liveCmd.Flags().Float64Var(&beta, "beta", 1.0, "oscillator frequency (harmonic)")
	liveCmd.Flags().Float64Var(&radius, "radius", 3.1, "half-density radius (woods-saxon)")
	liveCmd.Flags().Float64Var(&surface, "surface", 0.65, "surface diffuseness (woods-saxon)")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	rootCmd.AddCommand(solveCmd, scanCmd, boundCmd, phaseCmd, convergeCmd, compareCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig merges preset, config file, and explicit flags, in
// increasing order of precedence.
func buildConfig(cmd *cobra.Command, potName string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(potName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(potName))
		}
		c := *p
		if p.Params != nil {
			c.Params = make(map[string]float64, len(p.Params))
			for k, v := range p.Params {
				c.Params[k] = v
			}
		}
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.Potential = potName

	flags := cmd.Flags()
	if flags.Changed("rmin") {
		cfg.Grid.RMin = rMin
	}
	if flags.Changed("rmax") {
		cfg.Grid.RMax = rMax
	}
	if flags.Changed("points") {
		cfg.Grid.Points = points
	}
	if flags.Changed("k2") {
		cfg.K2 = k2
	}
	if flags.Changed("l") {
		cfg.L = l
	}
	if flags.Changed("method") {
		cfg.Method = method
	}
	if flags.Changed("k2-min") {
		cfg.Scan.K2Min = k2Min
	}
	if flags.Changed("k2-max") {
		cfg.Scan.K2Max = k2Max
	}
	if flags.Changed("samples") {
		cfg.Scan.Samples = samples
	}
	if flags.Changed("workers") {
		cfg.Scan.Workers = workers
	}
	if flags.Changed("max-iter") {
		cfg.Scan.MaxIter = maxIter
	}
	if flags.Changed("tol") {
		cfg.Scan.Tol = tol
	}

	paramFlags := []struct {
		flag string
		name string
		val  *float64
	}{
		{"depth", "depth", &depth},
		{"range", "range", &wellRange},
		{"z", "Z", &charge},
		{"beta", "beta", &beta},
		{"radius", "radius", &radius},
		{"surface", "surface", &surface},
	}
	for _, pf := range paramFlags {
		if flags.Changed(pf.flag) {
			if cfg.Params == nil {
				cfg.Params = make(map[string]float64)
			}
			cfg.Params[pf.name] = *pf.val
		}
	}

	return cfg, nil
}

func buildProblem(cfg *config.Config) (radial.Grid, radial.Potential, radial.Solver, error) {
	g, err := cfg.BuildGrid()
	if err != nil {
		return radial.Grid{}, nil, nil, err
	}
	pot, err := cfg.BuildPotential()
	if err != nil {
		return radial.Grid{}, nil, nil, err
	}
	solver, err := cfg.BuildSolver()
	if err != nil {
		return radial.Grid{}, nil, nil, err
	}
	return g, pot, solver, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	g, pot, solver, err := buildProblem(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("solving %s at k2=%.6g (l=%d, %d points)...\n", cfg.Potential, cfg.K2, cfg.L, g.Len())
	start := time.Now()

	u, err := solver.Solve(pot, g, cfg.K2, cfg.L)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	nodes := analysis.CountNodes(u)
	tail := analysis.Tail(u)
	peakIdx, peak := analysis.Peak(u)
	norm := analysis.Normalize(u, g.Step)

	metrics := map[string]float64{
		"nodes": float64(nodes),
		"tail":  tail,
		"norm":  norm,
	}
	if peakIdx >= 0 {
		metrics["peak_r"] = g.Points[peakIdx]
	}
	if energy, eerr := analysis.EnergyExpectation(u, g, pot, cfg.L); eerr == nil {
		metrics["energy"] = energy
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Potential, cfg.Method, cfg.L, cfg.K2, g, u, metrics)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	fmt.Printf("  nodes: %d\n", nodes)
	fmt.Printf("  tail: %.6g\n", tail)
	if peakIdx >= 0 {
		fmt.Printf("  peak: %.6g at r=%.4g\n", peak, g.Points[peakIdx])
	}
	fmt.Printf("  norm: %.6g\n", norm)
	if e, ok := metrics["energy"]; ok {
		fmt.Printf("  energy: %.6g\n", e)
	}

	fmt.Println()
	caption := fmt.Sprintf("u(r), r in [%.4g, %.4g]", g.Rmin(), g.Rmax())
	fmt.Println(viz.WavefunctionChart(u, 10, 70, caption))

	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	g, pot, _, err := buildProblem(cfg)
	if err != nil {
		return err
	}
	sc, err := cfg.BuildScanner()
	if err != nil {
		return err
	}

	fmt.Printf("scanning %s over k2 in [%.6g, %.6g] (%d samples)...\n",
		cfg.Potential, cfg.Scan.K2Min, cfg.Scan.K2Max, cfg.Scan.Samples)
	start := time.Now()

	out, err := sc.Scan(context.Background(), pot, g, cfg.L, cfg.Scan.K2Min, cfg.Scan.K2Max, cfg.Scan.Samples)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "K2\tTAIL\tNODES\tSTATUS")
	for _, s := range out {
		if s.Err != nil {
			fmt.Fprintf(w, "%.6g\t-\t-\t%v\n", s.K2, s.Err)
			continue
		}
		fmt.Fprintf(w, "%.6g\t%.4g\t%d\tok\n", s.K2, s.Tail, s.Nodes)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	k2s := make([]float64, 0, len(out))
	tails := make([]float64, 0, len(out))
	for _, s := range out {
		if s.Err != nil {
			continue
		}
		k2s = append(k2s, s.K2)
		tails = append(tails, s.Tail)
	}
	if len(tails) > 1 {
		fmt.Println()
		fmt.Println(viz.TailChart(k2s, tails, 10, 70))
	}

	brs := shoot.Brackets(out)
	if len(brs) == 0 {
		fmt.Println("\nno sign changes found")
		return nil
	}
	fmt.Println("\nbrackets:")
	for _, b := range brs {
		fmt.Printf("  [%.6g, %.6g]  nodes %d -> %d\n", b.Lo.K2, b.Hi.K2, b.Lo.Nodes, b.Hi.Nodes)
	}

	return nil
}

func runBound(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	g, pot, _, err := buildProblem(cfg)
	if err != nil {
		return err
	}
	sc, err := cfg.BuildScanner()
	if err != nil {
		return err
	}

	fmt.Printf("searching %s for bound states in [%.6g, %.6g]...\n",
		cfg.Potential, cfg.Scan.K2Min, cfg.Scan.K2Max)
	start := time.Now()

	states, err := sc.FindBound(context.Background(), pot, g, cfg.L, cfg.Scan.K2Min, cfg.Scan.K2Max, cfg.Scan.Samples)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	if len(states) == 0 {
		fmt.Println("no bound states in window")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tK2\tNODES\tITERS\tNORM")
	for i, bs := range states {
		fmt.Fprintf(w, "%d\t%.8g\t%d\t%d\t%.4g\n", i, bs.K2, bs.Nodes, bs.Iters, analysis.Norm(bs.U, g.Step))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if saveStates {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		for _, bs := range states {
			u := bs.U.Clone()
			norm := analysis.Normalize(u, g.Step)
			metrics := map[string]float64{
				"nodes": float64(bs.Nodes),
				"iters": float64(bs.Iters),
				"norm":  norm,
			}
			runID, err := st.Save(cfg.Potential, cfg.Method, cfg.L, bs.K2, g, u, metrics)
			if err != nil {
				return err
			}
			fmt.Printf("saved %s\n", runID)
		}
	}

	return nil
}

func runPhase(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	cfg.K2 = k2
	if cfg.K2 <= 0 {
		return fmt.Errorf("phase shift needs k2 > 0, got %.6g", cfg.K2)
	}
	g, pot, solver, err := buildProblem(cfg)
	if err != nil {
		return err
	}

	u, err := solver.Solve(pot, g, cfg.K2, cfg.L)
	if err != nil {
		return err
	}

	// Sample a quarter wavelength apart so the extraction is well
	// conditioned.
	kWave := math.Sqrt(cfg.K2)
	offset := int(math.Pi/(2*kWave*g.Step) + 0.5)
	if offset < 1 {
		offset = 1
	}
	i2 := g.Len() - 1
	i1 := i2 - offset
	if i1 < 1 {
		return fmt.Errorf("grid too short for k=%.4g: need at least %d points", kWave, offset+2)
	}

	delta, err := analysis.PhaseShift(u, g, cfg.K2, i1, i2)
	if err != nil {
		return err
	}

	fmt.Printf("potential: %s\n", cfg.Potential)
	fmt.Printf("k: %.6g  (k2=%.6g)\n", kWave, cfg.K2)
	fmt.Printf("sample points: r=%.4g, r=%.4g\n", g.Points[i1], g.Points[i2])
	fmt.Printf("delta: %.6f rad (%.2f deg)\n", delta, delta*180/math.Pi)
	fmt.Printf("delta mod pi: %.6f rad\n", analysis.WrapPhase(delta))

	return nil
}

func runConverge(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	g, pot, solver, err := buildProblem(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("self-convergence for %s (%s, k2=%.6g)\n\n", cfg.Potential, cfg.Method, cfg.K2)

	rep, err := analysis.SelfConvergence(solver, pot, g, cfg.K2, cfg.L)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tPOINTS\tMAX DIFF")
	fmt.Fprintf(w, "h\t%d\t-\n", g.Len())
	fmt.Fprintf(w, "h/2\t%d\t%.4g\n", 2*g.Len()-1, rep.CoarseDiff)
	fmt.Fprintf(w, "h/4\t%d\t%.4g\n", 4*g.Len()-3, rep.FineDiff)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nobserved order: %.2f\n", rep.Order)
	fmt.Printf("anchor: r=%.4g\n", rep.AnchorR)

	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	methods := args[1:]

	g, err := cfg.BuildGrid()
	if err != nil {
		return err
	}
	pot, err := cfg.BuildPotential()
	if err != nil {
		return err
	}

	fmt.Printf("comparing methods for %s (k2=%.6g, %d points)\n\n", cfg.Potential, cfg.K2, g.Len())
	fmt.Printf("%-10s  %-12s  %-6s  %-12s  %-8s\n", "method", "tail", "nodes", "max diff", "order")
	fmt.Println(strings.Repeat("-", 56))

	for _, name := range methods {
		solver, err := integrators.New(name)
		if err != nil {
			fmt.Printf("%-10s  error: %v\n", name, err)
			continue
		}

		u, err := solver.Solve(pot, g, cfg.K2, cfg.L)
		if err != nil {
			fmt.Printf("%-10s  error: %v\n", name, err)
			continue
		}

		diffStr, orderStr := "-", "-"
		if rep, cerr := analysis.SelfConvergence(solver, pot, g, cfg.K2, cfg.L); cerr == nil {
			diffStr = fmt.Sprintf("%.4g", rep.FineDiff)
			orderStr = fmt.Sprintf("%.2f", rep.Order)
		}

		fmt.Printf("%-10s  %-12.4g  %-6d  %-12s  %-8s\n",
			name, analysis.Tail(u), analysis.CountNodes(u), diffStr, orderStr)
	}

	return nil
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
	fmt.Fprintln(w, "ID\tPOTENTIAL\tTIME\tMETHOD\tL\tK2\tPOINTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.6g\t%d\n",
			run.ID,
			run.Potential,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Method,
			run.L,
			run.K2,
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

	rs, us, err := st.LoadWavefunction(runID)
	if err != nil {
		return err
	}
	if len(us) == 0 {
		return fmt.Errorf("no data to plot")
	}

	label := "u(r)"
	if density {
		for i := range us {
			us[i] *= us[i]
		}
		label = "u^2(r)"
	}

	if svgOut != "" {
		svg := export.CurveSVG(rs, us, 960, 480, "#00ff88")
		if svg == "" {
			return fmt.Errorf("nothing to render")
		}
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
		return nil
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("potential: %s\n", meta.Potential)
	fmt.Printf("k2: %.6g  l: %d\n", meta.K2, meta.L)
	fmt.Printf("samples: %d\n\n", len(us))

	g, gerr := radial.FromPoints(rs)
	if gerr == nil {
		fmt.Println(viz.WavefunctionCanvas(g, us, 70, 18))
		fmt.Printf("%s, r in [%.4g, %.4g]\n", label, g.Rmin(), g.Rmax())
	} else {
		fmt.Println(viz.WavefunctionChart(us, 15, 80, label))
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	rs, us, err := st.LoadWavefunction(runID)
	if err != nil {
		return err
	}

	g, err := radial.FromPoints(rs)
	if err != nil {
		return err
	}

	if outFile != "" {
		if err := storage.ExportJSON(outFile, meta.Potential, meta.Method, meta.L, meta.K2, g, us, meta.Metrics); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}
	return storage.ExportJSONStdout(meta.Potential, meta.Method, meta.L, meta.K2, g, us, meta.Metrics)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	rs, us, err := st.LoadWavefunction(runID)
	if err != nil {
		return err
	}

	if len(rs) == 0 {
		return fmt.Errorf("no data to export")
	}

	if outFile != "" {
		g, err := radial.FromPoints(rs)
		if err != nil {
			return err
		}
		if err := storage.ExportCSV(outFile, g, us); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"r", "u"}); err != nil {
		return err
	}

	for i := range rs {
		row := []string{
			strconv.FormatFloat(rs[i], 'g', -1, 64),
			strconv.FormatFloat(us[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	g, pot, solver, err := buildProblem(cfg)
	if err != nil {
		return err
	}

	return viz.RunExplorer(pot, solver, g, cfg.K2, cfg.L)
}
