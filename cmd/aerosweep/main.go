package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/signalsfoundry/aerosweep/avl"
	"github.com/signalsfoundry/aerosweep/core"
	"github.com/signalsfoundry/aerosweep/internal/config"
	"github.com/signalsfoundry/aerosweep/internal/logging"
	"github.com/signalsfoundry/aerosweep/internal/observability"
	"github.com/signalsfoundry/aerosweep/model"
	"github.com/signalsfoundry/aerosweep/sweep"
)

func main() {
	configPath := flag.String("config", "", "path to an INI run configuration")
	solverPath := flag.String("solver", "", "solver executable (overrides [solver] executable)")
	lePath := flag.String("le", "", "CSV file with leading-edge points")
	tePath := flag.String("te", "", "CSV file with trailing-edge points")
	units := flag.String("units", core.UnitInches, "point-cloud units (inches or feet)")
	massPath := flag.String("mass", "", "CSV file with the mass/inertia record (optional)")
	name := flag.String("name", "aircraft", "aircraft name used in generated files")
	alphaStart := flag.Float64("alpha-start", -5, "first angle of attack, degrees")
	alphaStop := flag.Float64("alpha-stop", 15, "last angle of attack, degrees")
	alphaStep := flag.Float64("alpha-step", 1, "angle-of-attack increment, degrees")
	metricsAddr := flag.String("metrics-addr", "", "HTTP address for Prometheus /metrics (empty disables)")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	cfg, err := loadConfig(*configPath, *solverPath)
	if err != nil {
		fatal(err)
	}
	if *lePath == "" || *tePath == "" {
		fatal(fmt.Errorf("both -le and -te point files are required"))
	}
	if *alphaStep <= 0 {
		fatal(fmt.Errorf("-alpha-step must be positive, got %g", *alphaStep))
	}

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		fatal(err)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdownTracing, log)

	collector, err := observability.NewSweepCollector(nil)
	if err != nil {
		fatal(err)
	}
	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, collector, log)
	}

	// Geometry derivation.
	le, err := core.ReadPointsFile(*lePath, *units)
	if err != nil {
		fatal(err)
	}
	te, err := core.ReadPointsFile(*tePath, *units)
	if err != nil {
		fatal(err)
	}
	wing, err := core.ComputePlanform(le, te)
	if err != nil {
		fatal(err)
	}
	htail, vtail, err := core.EstimateTailSurfaces(wing,
		cfg.Tails.HorizontalVolume, cfg.Tails.VerticalVolume, cfg.Tails.ArmFactor)
	if err != nil {
		fatal(err)
	}
	printGeometry(wing, htail, vtail)

	// Input-file synthesis.
	if err := os.MkdirAll(cfg.Solver.WorkDir, 0o755); err != nil {
		fatal(err)
	}
	ref := [3]float64{wing.MACLEX + 0.25*wing.MAC, 0, 0}

	massFile := ""
	if *massPath != "" {
		mp, err := core.ReadMassFile(*massPath)
		if err != nil {
			fatal(err)
		}
		ref = mp.CGFt
		massFile = *name + ".mass"
		if err := writeFile(filepath.Join(cfg.Solver.WorkDir, massFile), func(f *os.File) error {
			return avl.WriteMassFile(f, *name, mp)
		}); err != nil {
			fatal(err)
		}
	}

	geomFile := *name + ".avl"
	if err := writeFile(filepath.Join(cfg.Solver.WorkDir, geomFile), func(f *os.File) error {
		return avl.WriteGeometryDeck(f, *name, wing, htail, vtail, ref, cfg.Sweep.Mach)
	}); err != nil {
		fatal(err)
	}

	// Sweep.
	var cases []model.FlightCase
	for alpha := *alphaStart; alpha <= *alphaStop+1e-9; alpha += *alphaStep {
		cases = append(cases, model.FlightCase{
			Alpha:        alpha,
			Beta:         cfg.Sweep.Beta,
			Mach:         cfg.Sweep.Mach,
			GeometryFile: geomFile,
			MassFile:     massFile,
			OutputPrefix: fmt.Sprintf("%s_a%+05.1f", cfg.Sweep.OutputPrefix, alpha),
		})
	}

	runner, err := avl.NewRunner(avl.RunnerConfig{
		Executable: cfg.Solver.Executable,
		WorkDir:    cfg.Solver.WorkDir,
		Timeout:    cfg.Timeout(),
	}, log)
	if err != nil {
		fatal(err)
	}

	engine := sweep.NewEngine(runner, log, collector)
	engine.KeepReports(cfg.Sweep.KeepReports)
	engine.RegisterCaseListener(func(i int, out sweep.Outcome) {
		if out.Failed() {
			fmt.Printf("alpha = %6.1f°  FAILED (%v)\n", out.Case.Alpha, out.Err)
			return
		}
		fmt.Printf("alpha = %6.1f°  CL=%s  CD=%s  CM=%s\n",
			out.Case.Alpha, fmtCoeff(out.Result.CL), fmtCoeff(out.Result.CD), fmtCoeff(out.Result.CM))
	})

	fmt.Printf("Running sweep: alpha %g° to %g° (step %g°), %d cases\n",
		*alphaStart, *alphaStop, *alphaStep, len(cases))
	outcomes := engine.Run(ctx, cases)

	printSummary(outcomes)
	if sweep.Summarize(outcomes).NoData == len(outcomes) {
		os.Exit(1)
	}
}

func loadConfig(path, solverOverride string) (*config.Config, error) {
	var cfg *config.Config
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		def := config.Default()
		cfg = &def
	}
	if solverOverride != "" {
		cfg.Solver.Executable = solverOverride
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printGeometry(wing *model.WingPlanform, htail, vtail model.TailSurface) {
	fmt.Println("Wing geometry:")
	fmt.Printf("  span %8.3f ft   area %8.3f ft²   MAC %7.3f ft\n", wing.Span, wing.Area, wing.MAC)
	fmt.Printf("  root %8.3f ft   tip  %8.3f ft    taper %6.3f   AR %6.3f\n",
		wing.RootChord, wing.TipChord, wing.TaperRatio, wing.AspectRatio)
	fmt.Printf("  sweep LE %6.2f°  c/4 %6.2f°  dihedral %6.2f°\n",
		wing.SweepLE, wing.SweepC4, wing.Dihedral)
	fmt.Printf("Horizontal tail (estimated): area %7.3f ft²  span %7.3f ft  arm %7.3f ft\n",
		htail.Area, htail.Span, htail.MomentArm)
	fmt.Printf("Vertical tail (estimated):   area %7.3f ft²  height %6.3f ft  arm %7.3f ft\n",
		vtail.Area, vtail.Span, vtail.MomentArm)
}

func printSummary(outcomes []sweep.Outcome) {
	fmt.Printf("\n%8s  %8s  %8s  %8s  %8s\n", "Alpha", "CL", "CD", "CM", "L/D")
	var best *sweep.Outcome
	var bestLD float64
	for i := range outcomes {
		o := outcomes[i]
		if o.Failed() || !o.Result.HasForces() {
			fmt.Printf("%8.1f  %8s  %8s  %8s  %8s\n", o.Case.Alpha, "---", "---", "---", "---")
			continue
		}
		r := o.Result
		ld := 0.0
		if *r.CD > 1e-4 {
			ld = *r.CL / *r.CD
		}
		fmt.Printf("%8.1f  %8.4f  %8.5f  %8.4f  %8.1f\n", o.Case.Alpha, *r.CL, *r.CD, *r.CM, ld)
		if best == nil || ld > bestLD {
			best, bestLD = &outcomes[i], ld
		}
	}
	fmt.Println()
	fmt.Println(sweep.Summarize(outcomes))
	if best != nil {
		fmt.Printf("Best L/D = %.1f at alpha = %.1f°\n", bestLD, best.Case.Alpha)
	}
}

func serveMetrics(addr string, collector *observability.SweepCollector, log logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Warn(context.Background(), "metrics server stopped", logging.Err(err))
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fmtCoeff(p *float64) string {
	if p == nil {
		return "   --- "
	}
	return fmt.Sprintf("%7.4f", *p)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "aerosweep:", err)
	os.Exit(1)
}
