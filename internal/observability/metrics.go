package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Case outcome labels recorded by the sweep collector.
const (
	OutcomeOK        = "ok"
	OutcomeTimeout   = "timeout"
	OutcomeExecError = "exec_error"
	OutcomeNoReport  = "no_report"
	OutcomeBadInput  = "bad_input"
	OutcomeError     = "error"
)

// SweepCollector bundles Prometheus metrics for sweep execution. All methods
// tolerate a nil receiver so callers can run un-instrumented.
type SweepCollector struct {
	gatherer prometheus.Gatherer

	CaseOutcomes   *prometheus.CounterVec
	SolverDuration prometheus.Histogram
	MissingFields  prometheus.Counter
	SweepSize      prometheus.Gauge
}

// NewSweepCollector registers sweep metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewSweepCollector(reg prometheus.Registerer) (*SweepCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sweep_cases_total",
		Help: "Total number of executed sweep cases, labeled by outcome.",
	}, []string{"outcome"})
	outcomes, err := registerCounterVec(reg, outcomes, "sweep_cases_total")
	if err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "solver_run_duration_seconds",
		Help:    "Wall-clock duration of individual solver invocations.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
	})
	duration, err = registerHistogram(reg, duration, "solver_run_duration_seconds")
	if err != nil {
		return nil, err
	}

	missing := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_fields_missing_total",
		Help: "Count of expected report fields absent from otherwise-present reports.",
	})
	missing, err = registerCounter(reg, missing, "report_fields_missing_total")
	if err != nil {
		return nil, err
	}

	size := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sweep_cases_requested",
		Help: "Number of cases in the most recently started sweep.",
	})
	size, err = registerGauge(reg, size, "sweep_cases_requested")
	if err != nil {
		return nil, err
	}

	return &SweepCollector{
		gatherer:       gatherer,
		CaseOutcomes:   outcomes,
		SolverDuration: duration,
		MissingFields:  missing,
		SweepSize:      size,
	}, nil
}

// ObserveCase records one finished case with its outcome label and solver
// wall-clock duration.
func (c *SweepCollector) ObserveCase(outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	if c.CaseOutcomes != nil {
		c.CaseOutcomes.WithLabelValues(outcome).Inc()
	}
	if c.SolverDuration != nil {
		c.SolverDuration.Observe(elapsed.Seconds())
	}
}

// AddMissingFields counts report fields that were expected but absent.
func (c *SweepCollector) AddMissingFields(n int) {
	if c == nil || c.MissingFields == nil || n <= 0 {
		return
	}
	c.MissingFields.Add(float64(n))
}

// SetSweepSize records the size of the sweep about to run.
func (c *SweepCollector) SetSweepSize(n int) {
	if c == nil || c.SweepSize == nil {
		return
	}
	c.SweepSize.Set(float64(n))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SweepCollector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
