package core

import (
	"errors"
	"math"
	"testing"
)

func TestNewMassProperties_UnitConversions(t *testing.T) {
	// Anchor values chosen so the expected results are exact factors:
	// 4633.056 lbm·in² is exactly 1 slug·ft².
	mp, err := NewMassProperties(100, [3]float64{12, 0, -6}, []float64{4633.056, 9266.112, 4633.056})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !near(mp.MassKg, 45.359237, 1e-12) {
		t.Errorf("mass = %g kg, want 45.359237", mp.MassKg)
	}
	if !near(mp.MassSlug, 100.0/32.174, 1e-12) {
		t.Errorf("mass = %g slug, want %g", mp.MassSlug, 100.0/32.174)
	}
	if !near(mp.CGFt[0], 1, 1e-12) || !near(mp.CGFt[2], -0.5, 1e-12) {
		t.Errorf("CG = %v ft, want [1 0 -0.5]", mp.CGFt)
	}
	if !near(mp.CGM[0], 0.3048, 1e-12) {
		t.Errorf("CG x = %g m, want 0.3048", mp.CGM[0])
	}
	if !near(mp.InertiaSlugFt2[0], 1, 1e-12) || !near(mp.InertiaSlugFt2[1], 2, 1e-12) {
		t.Errorf("inertia = %v slug·ft², want Ixx=1 Iyy=2", mp.InertiaSlugFt2)
	}
	if !near(mp.InertiaKgM2[0], 4633.056*0.0002926397, 1e-12) {
		t.Errorf("Ixx = %g kg·m², want %g", mp.InertiaKgM2[0], 4633.056*0.0002926397)
	}
}

func TestNewMassProperties_DiagonalInertia(t *testing.T) {
	mp, err := NewMassProperties(50, [3]float64{}, []float64{10, 20, 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [6]float64{10, 20, 30, 0, 0, 0}
	if mp.InertiaLbmIn2 != want {
		t.Errorf("inertia = %v, want %v", mp.InertiaLbmIn2, want)
	}
}

func TestNewMassProperties_BadInertiaLength(t *testing.T) {
	for _, n := range []int{0, 2, 4, 7} {
		if _, err := NewMassProperties(50, [3]float64{}, make([]float64, n)); !errors.Is(err, ErrInvalidInertia) {
			t.Errorf("len=%d: expected ErrInvalidInertia, got %v", n, err)
		}
	}
}

func TestInertiaTensor_ProductSignConvention(t *testing.T) {
	// Products of inertia enter the tensor negated; the tensor must stay
	// symmetric.
	mp, err := NewMassProperties(10, [3]float64{}, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tensor := mp.InertiaTensorKgM2()

	if tensor[0][1] >= 0 || tensor[0][2] >= 0 || tensor[1][2] >= 0 {
		t.Errorf("off-diagonal terms not negated: %v", tensor)
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if math.Abs(tensor[i][j]-tensor[j][i]) > 1e-15 {
				t.Errorf("tensor not symmetric at (%d,%d): %g vs %g", i, j, tensor[i][j], tensor[j][i])
			}
		}
	}
	if !near(tensor[0][0], 1*lbmIn2ToKgM2, 1e-12) {
		t.Errorf("Ixx = %g, want %g", tensor[0][0], 1*lbmIn2ToKgM2)
	}
	if !near(tensor[0][1], -4*lbmIn2ToKgM2, 1e-12) {
		t.Errorf("Ixy term = %g, want %g", tensor[0][1], -4*lbmIn2ToKgM2)
	}
}
