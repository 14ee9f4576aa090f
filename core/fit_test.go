package core

import (
	"math"
	"testing"
)

func TestTrapezoid_IrregularSpacing(t *testing.T) {
	// f(x) = 2x+1 is integrated exactly by the trapezoidal rule regardless
	// of spacing. ∫ over [0,4] = 20.
	x := []float64{0, 0.5, 1.5, 4}
	f := make([]float64, len(x))
	for i := range x {
		f[i] = 2*x[i] + 1
	}
	if got := trapezoid(x, f); math.Abs(got-20) > 1e-12 {
		t.Errorf("trapezoid = %g, want 20", got)
	}
}

func TestLinearFit_RecoversLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	f := make([]float64, len(x))
	for i := range x {
		f[i] = 1.5*x[i] - 0.25
	}
	slope, intercept := linearFit(x, f)
	if math.Abs(slope-1.5) > 1e-12 || math.Abs(intercept+0.25) > 1e-12 {
		t.Errorf("fit = (%g, %g), want (1.5, -0.25)", slope, intercept)
	}
}

func TestLinearFit_DegenerateAbscissa(t *testing.T) {
	// All stations at the same x: slope must come back 0, not NaN.
	slope, intercept := linearFit([]float64{2, 2, 2}, []float64{1, 2, 3})
	if slope != 0 {
		t.Errorf("slope = %g, want 0", slope)
	}
	if math.Abs(intercept-2) > 1e-12 {
		t.Errorf("intercept = %g, want 2", intercept)
	}
}

func TestInterp_ClampsOutsideRange(t *testing.T) {
	x := []float64{0, 1, 2}
	f := []float64{10, 20, 40}

	if got := interp(-5, x, f); got != 10 {
		t.Errorf("interp below range = %g, want 10", got)
	}
	if got := interp(7, x, f); got != 40 {
		t.Errorf("interp above range = %g, want 40", got)
	}
	if got := interp(1.5, x, f); math.Abs(got-30) > 1e-12 {
		t.Errorf("interp(1.5) = %g, want 30", got)
	}
}
