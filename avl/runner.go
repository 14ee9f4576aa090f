package avl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/signalsfoundry/aerosweep/internal/logging"
	"github.com/signalsfoundry/aerosweep/model"
)

// Process-level sentinel errors.
var (
	// ErrSolverTimeout means the child process exceeded its wall-clock
	// budget. An unresponsive or mis-scripted interactive session would
	// otherwise hang a sweep indefinitely.
	ErrSolverTimeout = errors.New("solver timed out")
	// ErrSolverExec wraps failures to launch the solver process.
	ErrSolverExec = errors.New("solver execution failed")
)

// DefaultTimeout bounds a single solver invocation when the config doesn't
// say otherwise.
const DefaultTimeout = 30 * time.Second

// RunnerConfig locates the solver and bounds its execution. Paths are
// explicit configuration, never ambient process-wide globals.
type RunnerConfig struct {
	Executable string        // solver binary
	WorkDir    string        // directory the solver runs in; "." when empty
	Timeout    time.Duration // per-invocation budget; DefaultTimeout when zero
}

// ReportPaths are the report files a run is expected to have produced.
type ReportPaths struct {
	Forces    string
	Stability string
}

// Runner launches the solver as a child process, one case at a time. Each
// invocation is a cold start: the solver re-loads geometry and mass from
// scratch, so no state leaks between cases. Runs must not overlap on the
// same geometry/mass pair — the solver is not known to be reentrant on
// shared files — and the sweep engine calls RunCase strictly sequentially.
type Runner struct {
	cfg RunnerConfig
	log logging.Logger
}

// NewRunner validates the configuration and returns a runner. The executable
// must exist up front; discovering that mid-sweep would waste every case.
func NewRunner(cfg RunnerConfig, log logging.Logger) (*Runner, error) {
	if log == nil {
		log = logging.Noop()
	}
	if cfg.Executable == "" {
		return nil, fmt.Errorf("NewRunner: no solver executable configured")
	}
	if _, err := os.Stat(cfg.Executable); err != nil {
		return nil, fmt.Errorf("NewRunner: solver executable: %w", err)
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = "."
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Runner{cfg: cfg, log: log}, nil
}

// RunCase drives one solver session for the given flight case and returns the
// paths of the report files it should have written. The command script is
// written to a transient file bound to the solver's standard input and
// removed on every exit path. Stale report files from a previous case using
// the same prefix are removed before launch so a failed run can't be mistaken
// for a successful one.
//
// The solver's exit status is informational only — report-file presence is
// the success signal — so a non-zero exit is logged, not returned. Launch
// failures are ErrSolverExec and deadline hits are ErrSolverTimeout.
func (r *Runner) RunCase(ctx context.Context, fc model.FlightCase) (ReportPaths, error) {
	var paths ReportPaths
	if fc.OutputPrefix == "" {
		return paths, fmt.Errorf("RunCase: flight case has no output prefix")
	}

	paths = ReportPaths{
		Forces:    filepath.Join(r.cfg.WorkDir, fc.OutputPrefix+ForcesExt),
		Stability: filepath.Join(r.cfg.WorkDir, fc.OutputPrefix+StabilityExt),
	}
	os.Remove(paths.Forces)
	os.Remove(paths.Stability)

	scriptPath := filepath.Join(r.cfg.WorkDir, fc.OutputPrefix+"_commands.txt")
	script := ScriptText(CompileScript(fc))
	if err := os.WriteFile(scriptPath, []byte(script), 0o644); err != nil {
		return paths, fmt.Errorf("RunCase: write command script: %w", err)
	}
	defer os.Remove(scriptPath)

	stdin, err := os.Open(scriptPath)
	if err != nil {
		return paths, fmt.Errorf("RunCase: open command script: %w", err)
	}
	defer stdin.Close()

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.cfg.Executable)
	cmd.Dir = r.cfg.WorkDir
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	if ctx.Err() == context.DeadlineExceeded {
		return paths, fmt.Errorf("%w after %s (alpha=%g beta=%g)",
			ErrSolverTimeout, elapsed.Round(time.Millisecond), fc.Alpha, fc.Beta)
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return paths, fmt.Errorf("%w: %v", ErrSolverExec, runErr)
		}
		// Interactive solvers routinely exit non-zero after QUIT; the
		// report files decide whether the run was usable.
		r.log.Warn(ctx, "solver exited non-zero",
			logging.String("error", exitErr.Error()),
			logging.String("stderr", truncate(stderr.String(), 512)),
			logging.Float64("alpha", fc.Alpha),
		)
	}

	r.log.Debug(ctx, "solver run finished",
		logging.Float64("alpha", fc.Alpha),
		logging.Float64("beta", fc.Beta),
		logging.String("elapsed", elapsed.Round(time.Millisecond).String()),
		logging.Int("stdout_bytes", stdout.Len()),
	)
	return paths, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
