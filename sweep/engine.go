// Package sweep repeats compile→run→parse across a sequence of flight
// conditions. Long sweeps over extreme angles routinely hit solver
// non-convergence, so a per-case failure is recorded and the sweep moves on;
// it never aborts the remaining cases.
package sweep

import (
	"context"
	"errors"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/aerosweep/avl"
	"github.com/signalsfoundry/aerosweep/core"
	"github.com/signalsfoundry/aerosweep/internal/logging"
	"github.com/signalsfoundry/aerosweep/internal/observability"
	"github.com/signalsfoundry/aerosweep/model"
)

const tracerName = "github.com/signalsfoundry/aerosweep/sweep"

// CaseRunner executes one solver invocation. Satisfied by *avl.Runner;
// narrowed to an interface so the engine is testable without a solver binary.
type CaseRunner interface {
	RunCase(ctx context.Context, fc model.FlightCase) (avl.ReportPaths, error)
}

// Outcome is the result slot for one requested case. Exactly one of Result
// and Err is meaningful: a failed case carries its error and a nil Result,
// never a zero-filled one.
type Outcome struct {
	Case   model.FlightCase
	Result *model.CaseResult
	Err    error
}

// Failed reports whether the case produced no usable data.
func (o Outcome) Failed() bool { return o.Err != nil }

// Engine runs sweeps strictly sequentially: one solver process at a time,
// blocking until each invocation completes or times out. The solver is not
// known to be reentrant on shared geometry/mass files, so no overlap is
// permitted.
type Engine struct {
	runner  CaseRunner
	log     logging.Logger
	metrics *observability.SweepCollector

	// keepReports leaves per-case report files on disk instead of removing
	// them after parsing.
	keepReports bool

	listeners []func(index int, out Outcome)
}

// NewEngine constructs a sweep engine. metrics may be nil to run
// un-instrumented.
func NewEngine(runner CaseRunner, log logging.Logger, metrics *observability.SweepCollector) *Engine {
	if log == nil {
		log = logging.Noop()
	}
	return &Engine{
		runner:  runner,
		log:     log,
		metrics: metrics,
	}
}

// KeepReports controls whether per-case report files survive parsing. They
// are removed by default so cases reusing an output prefix can't collide
// with stale files.
func (e *Engine) KeepReports(keep bool) { e.keepReports = keep }

// RegisterCaseListener adds a callback invoked after every finished case,
// successful or not, in request order.
func (e *Engine) RegisterCaseListener(fn func(index int, out Outcome)) {
	e.listeners = append(e.listeners, fn)
}

// Run executes every case in order and returns one outcome per requested
// case, preserving input order. Context cancellation stops the sweep between
// cases; the in-flight case still observes its own timeout.
func (e *Engine) Run(ctx context.Context, cases []model.FlightCase) []Outcome {
	e.metrics.SetSweepSize(len(cases))

	outcomes := make([]Outcome, len(cases))
	for i, fc := range cases {
		if err := ctx.Err(); err != nil {
			outcomes[i] = Outcome{Case: fc, Err: err}
		} else {
			outcomes[i] = e.runCase(ctx, fc)
		}
		for _, fn := range e.listeners {
			fn(i, outcomes[i])
		}
	}
	return outcomes
}

func (e *Engine) runCase(ctx context.Context, fc model.FlightCase) Outcome {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "sweep.case", trace.WithAttributes(
		attribute.Float64("case.alpha", fc.Alpha),
		attribute.Float64("case.beta", fc.Beta),
		attribute.Float64("case.mach", fc.Mach),
	))
	defer span.End()

	start := time.Now()
	paths, err := e.runner.RunCase(ctx, fc)
	elapsed := time.Since(start)

	if err != nil {
		return e.failCase(ctx, span, fc, elapsed, err)
	}

	result, err := avl.ParseForcesFile(paths.Forces, fc.Alpha, fc.Beta)
	if err != nil {
		e.removeReports(paths)
		return e.failCase(ctx, span, fc, elapsed, err)
	}
	result.Derivatives = avl.ParseStabilityFile(paths.Stability)
	if !e.keepReports {
		e.removeReports(paths)
	}

	missing := countMissingFields(result)
	e.metrics.AddMissingFields(missing)
	e.metrics.ObserveCase(observability.OutcomeOK, elapsed)
	span.SetAttributes(attribute.Int("case.missing_fields", missing))

	e.log.Info(ctx, "case finished",
		logging.Float64("alpha", fc.Alpha),
		logging.Float64("beta", fc.Beta),
		logging.String("elapsed", elapsed.Round(time.Millisecond).String()),
		logging.Int("missing_fields", missing),
	)
	return Outcome{Case: fc, Result: result}
}

func (e *Engine) failCase(ctx context.Context, span trace.Span, fc model.FlightCase, elapsed time.Duration, err error) Outcome {
	label := outcomeLabel(err)
	e.metrics.ObserveCase(label, elapsed)
	span.RecordError(err)
	span.SetAttributes(attribute.String("case.outcome", label))

	e.log.Warn(ctx, "case failed",
		logging.Float64("alpha", fc.Alpha),
		logging.Float64("beta", fc.Beta),
		logging.String("outcome", label),
		logging.Err(err),
	)
	return Outcome{Case: fc, Err: err}
}

func (e *Engine) removeReports(paths avl.ReportPaths) {
	os.Remove(paths.Forces)
	os.Remove(paths.Stability)
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, avl.ErrSolverTimeout):
		return observability.OutcomeTimeout
	case errors.Is(err, avl.ErrSolverExec):
		return observability.OutcomeExecError
	case errors.Is(err, avl.ErrReportNotFound):
		return observability.OutcomeNoReport
	case errors.Is(err, core.ErrInvalidGeometry), errors.Is(err, core.ErrInvalidInertia):
		return observability.OutcomeBadInput
	default:
		return observability.OutcomeError
	}
}

// countMissingFields counts expected symbols absent from the reports: the
// six force/moment coefficients, span efficiency, and the six stability
// derivatives.
func countMissingFields(r *model.CaseResult) int {
	missing := 0
	for _, p := range []*float64{r.CL, r.CD, r.CM, r.CY, r.Cl, r.Cn, r.SpanEfficiency} {
		if p == nil {
			missing++
		}
	}
	d := r.Derivatives
	if d == nil {
		return missing + 6
	}
	for _, p := range []*float64{d.CLa, d.CMa, d.CYb, d.Clb, d.Cnb, d.Xnp} {
		if p == nil {
			missing++
		}
	}
	return missing
}
