package sweep

import (
	"strings"
	"testing"

	"github.com/signalsfoundry/aerosweep/model"
)

func completeResult() *model.CaseResult {
	return &model.CaseResult{
		CL: model.Float(0.3), CD: model.Float(0.01), CM: model.Float(-0.02),
		CY: model.Float(0), Cl: model.Float(0), Cn: model.Float(0),
		SpanEfficiency: model.Float(0.97),
		Derivatives: &model.StabilityDerivatives{
			CLa: model.Float(5), CMa: model.Float(-1), CYb: model.Float(-0.1),
			Clb: model.Float(-0.05), Cnb: model.Float(0.06), Xnp: model.Float(1.5),
		},
	}
}

func TestSummarize_Classification(t *testing.T) {
	partial := completeResult()
	partial.Derivatives.Xnp = nil

	forcesOnly := completeResult()
	forcesOnly.CL = nil // one longitudinal coefficient missing: no data

	outcomes := []Outcome{
		{Result: completeResult()},
		{Result: partial},
		{Result: forcesOnly},
		{Err: errFake{}},
	}

	s := Summarize(outcomes)
	if s.Total != 4 || s.Complete != 1 || s.PartialDerivatives != 1 || s.NoData != 2 {
		t.Errorf("summary = %+v, want total 4, complete 1, partial 1, no-data 2", s)
	}
}

type errFake struct{}

func (errFake) Error() string { return "fake failure" }

func TestSummarize_String(t *testing.T) {
	s := Summarize([]Outcome{{Result: completeResult()}})
	out := s.String()
	if !strings.Contains(out, "1 cases") || !strings.Contains(out, "1 complete") {
		t.Errorf("summary string = %q", out)
	}
}
