package avl

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/signalsfoundry/aerosweep/core"
	"github.com/signalsfoundry/aerosweep/model"
)

func testSurfaces(t *testing.T) (*model.WingPlanform, model.TailSurface, model.TailSurface) {
	t.Helper()
	var le, te []model.Point3
	for _, y := range []float64{-5, -2.5, 0, 2.5, 5} {
		le = append(le, model.Point3{X: 0, Y: y})
		te = append(te, model.Point3{X: 2, Y: y})
	}
	wing, err := core.ComputePlanform(le, te)
	if err != nil {
		t.Fatalf("ComputePlanform: %v", err)
	}
	htail, vtail, err := core.EstimateTailSurfaces(wing, 0.6, 0.05, 2.5)
	if err != nil {
		t.Fatalf("EstimateTailSurfaces: %v", err)
	}
	return wing, htail, vtail
}

func TestWriteGeometryDeck_Structure(t *testing.T) {
	wing, htail, vtail := testSurfaces(t)

	var buf bytes.Buffer
	if err := WriteGeometryDeck(&buf, "testcraft", wing, htail, vtail, [3]float64{0.5, 0, 0}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	deck := buf.String()

	if !strings.HasPrefix(deck, "testcraft\n") {
		t.Errorf("deck must open with the aircraft name, got %q", deck[:min(len(deck), 30)])
	}
	for _, surface := range []string{"Wing", "Horizontal Tail", "Vertical Tail"} {
		if !strings.Contains(deck, "SURFACE\n"+surface+"\n") {
			t.Errorf("deck missing surface %q", surface)
		}
	}
	// Reference quantities come straight from the wing.
	if !strings.Contains(deck, " 20.0000  2.0000  10.0000\n") {
		t.Errorf("deck missing Sref/Cref/Bref row for S=20 MAC=2 b=10:\n%s", deck)
	}
	if !strings.Contains(deck, " 0.5000  0.0000  0.0000\n") {
		t.Errorf("deck missing moment reference row")
	}

	// Symmetric cloud: half-span sections plus a YDUPLICATE image. Three
	// non-negative wing stations and two sections per tail.
	if got := strings.Count(deck, "SECTION\n"); got != 7 {
		t.Errorf("deck has %d sections, want 7", got)
	}
	// Wing and horizontal tail mirror; the vertical tail must not.
	if got := strings.Count(deck, "YDUPLICATE\n"); got != 2 {
		t.Errorf("deck has %d YDUPLICATE blocks, want 2", got)
	}
}

func TestWriteGeometryDeck_SingleSidedCloud(t *testing.T) {
	// A cloud covering only the negative half-span has one non-negative
	// station, too few to mirror; all stations are written explicitly.
	var le, te []model.Point3
	for _, y := range []float64{-5, -2.5, 0} {
		le = append(le, model.Point3{X: 0, Y: y})
		te = append(te, model.Point3{X: 2, Y: y})
	}
	wing, err := core.ComputePlanform(le, te)
	if err != nil {
		t.Fatalf("ComputePlanform: %v", err)
	}
	htail, vtail, err := core.EstimateTailSurfaces(wing, 0.6, 0.05, 2.5)
	if err != nil {
		t.Fatalf("EstimateTailSurfaces: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteGeometryDeck(&buf, "half", wing, htail, vtail, [3]float64{}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	deck := buf.String()

	// Tails still mirror (the horizontal one), but the wing must not.
	if got := strings.Count(deck, "YDUPLICATE\n"); got != 1 {
		t.Errorf("deck has %d YDUPLICATE blocks, want 1 (horizontal tail only):\n%s", got, deck)
	}
	// 3 explicit wing stations + 2 per tail.
	if got := strings.Count(deck, "SECTION\n"); got != 7 {
		t.Errorf("deck has %d sections, want 7", got)
	}
}

func TestWriteGeometryDeck_DegenerateWing(t *testing.T) {
	wing, htail, vtail := testSurfaces(t)
	bad := *wing
	bad.Area = 0
	var buf bytes.Buffer
	if err := WriteGeometryDeck(&buf, "bad", &bad, htail, vtail, [3]float64{}, 0); err == nil {
		t.Errorf("expected error for zero-area wing")
	}
}

func TestTaperedChords_AreaConsistency(t *testing.T) {
	const area, span, taper = 12.0, 6.0, 0.7
	root, tip := taperedChords(area, span, taper)
	if got := span * (root + tip) / 2; math.Abs(got-area) > 1e-12 {
		t.Errorf("chords integrate to area %g, want %g", got, area)
	}
	if got := tip / root; math.Abs(got-taper) > 1e-12 {
		t.Errorf("taper = %g, want %g", got, taper)
	}
}

func TestWriteMassFile_Layout(t *testing.T) {
	mp, err := core.NewMassProperties(150, [3]float64{24, 0, -3}, []float64{4633.056, 9266.112, 4633.056})
	if err != nil {
		t.Fatalf("NewMassProperties: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteMassFile(&buf, "testcraft", mp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("mass file has %d lines, want 5:\n%s", len(lines), out)
	}
	if lines[0] != "#  testcraft Mass File" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "#  Units: slugs, feet" {
		t.Errorf("units line = %q", lines[1])
	}
	// Data row carries the converted values: 150 lbm, CG x 2 ft, Ixx exactly
	// 1 slug·ft².
	data := lines[4]
	for _, want := range []string{"4.662150", "2.0000", "-0.2500", "1.0000", "2.0000"} {
		if !strings.Contains(data, want) {
			t.Errorf("data row %q missing %q", data, want)
		}
	}
}
