package avl

import (
	"errors"
	"path/filepath"
	"testing"
)

// forcesReport mimics the narrative layout of a solver forces report: values
// in no fixed column order, unrelated symbols nearby, banner text around
// everything.
const forcesReport = ` ---------------------------------------------------------------
 Vortex Lattice Output -- Total Forces

 Sref =  20.000       Cref =  2.0000       Bref =  10.000
 Alpha =   2.50000     pb/2V =  -0.00000
 CXtot =   0.00123     Cltot =  -0.00001
 CYtot =   0.00000     Cmtot =  -0.02415
 CZtot =  -0.31018     Cntot =   0.00002
 CLtot =   0.31008
 CDtot =   0.00479
 CDvis =   0.00000     CDind = 0.0047895
 CLff  =   0.31047     CDff  = 0.0048073    | Trefftz
 CYff  =   0.00000         e =    0.9761    | Plane
`

func TestParseForces_ExtractsCoefficients(t *testing.T) {
	res := ParseForces(forcesReport, 2.5, 0)

	checks := []struct {
		name string
		got  *float64
		want float64
	}{
		{"CL", res.CL, 0.31008},
		{"CD", res.CD, 0.00479},
		{"CM", res.CM, -0.02415},
		{"CY", res.CY, 0.00000},
		{"Cl", res.Cl, -0.00001},
		{"Cn", res.Cn, 0.00002},
		{"e", res.SpanEfficiency, 0.9761},
	}
	for _, c := range checks {
		if c.got == nil {
			t.Errorf("%s: not extracted", c.name)
			continue
		}
		if *c.got != c.want {
			t.Errorf("%s = %g, want %g", c.name, *c.got, c.want)
		}
	}
	if res.Alpha != 2.5 {
		t.Errorf("alpha echo = %g, want 2.5", res.Alpha)
	}
}

func TestParseForces_CaseSensitiveSymbols(t *testing.T) {
	// CLtot (lift) and Cltot (roll moment) differ only in case; swapping
	// them would corrupt every downstream consumer.
	res := ParseForces(forcesReport, 0, 0)
	if res.CL == nil || *res.CL != 0.31008 {
		t.Fatalf("CL = %v, want 0.31008", res.CL)
	}
	if res.Cl == nil || *res.Cl != -0.00001 {
		t.Fatalf("Cl = %v, want -0.00001", res.Cl)
	}
}

func TestParseForces_AbsentSymbolsStayNil(t *testing.T) {
	res := ParseForces(" CLtot =   0.50000\n", 0, 0)
	if res.CL == nil {
		t.Fatalf("CL should have been extracted")
	}
	if res.CD != nil || res.CM != nil || res.SpanEfficiency != nil {
		t.Errorf("absent symbols must stay nil, got CD=%v CM=%v e=%v",
			res.CD, res.CM, res.SpanEfficiency)
	}
	if res.HasForces() {
		t.Errorf("HasForces must be false with CD and CM missing")
	}
}

func TestParseStabilityDerivatives_Extracts(t *testing.T) {
	text := ` Stability-axis derivatives...

 z' force CL |    CLa =   5.012304
 y  force CY |    CYb =  -0.123456
 x' mom.  Cl |    Clb =  -0.045678
 y  mom.  Cm |    Cma =  -1.234567
 z' mom.  Cn |    Cnb =   0.065432

 Neutral point  Xnp =   1.234567
`
	d := ParseStabilityDerivatives(text)
	if !d.Complete() {
		t.Fatalf("all six derivatives present, Complete() = false: %+v", d)
	}
	if *d.CLa != 5.012304 || *d.CMa != -1.234567 || *d.Xnp != 1.234567 {
		t.Errorf("derivatives = CLa %g, CMa %g, Xnp %g", *d.CLa, *d.CMa, *d.Xnp)
	}
}

func TestParseStabilityDerivatives_CaseInsensitive(t *testing.T) {
	d := ParseStabilityDerivatives("xnp =  2.25\n")
	if d.Xnp == nil || *d.Xnp != 2.25 {
		t.Errorf("lowercase xnp not matched: %v", d.Xnp)
	}
	if d.Complete() {
		t.Errorf("Complete() must be false with only Xnp present")
	}
}

func TestParseForcesFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.ft")
	if _, err := ParseForcesFile(path, 0, 0); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound, got %v", err)
	}
}

func TestParseStabilityFile_MissingIsEmptyNotError(t *testing.T) {
	d := ParseStabilityFile(filepath.Join(t.TempDir(), "absent.st"))
	if d == nil {
		t.Fatalf("missing stability report must yield an empty struct, got nil")
	}
	if d.Complete() {
		t.Errorf("empty derivatives must not be Complete")
	}
}
