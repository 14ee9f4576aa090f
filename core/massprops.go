package core

import "fmt"

// Unit conversion factors for mass properties. The solver wants slugs and
// feet; downstream 6-DOF work wants SI. All derived fields are fixed
// multiples of the canonical lbm/inch values.
const (
	lbmToKg        = 0.45359237
	lbmToSlug      = 1.0 / 32.174
	inToFt         = 1.0 / 12.0
	inToM          = 0.0254
	lbmIn2ToSlugF2 = 1.0 / 4633.056   // lbm·in² → slug·ft²
	lbmIn2ToKgM2   = 0.0002926397     // lbm·in² → kg·m²
)

// MassProperties holds one physical truth (mass, CG, symmetric inertia
// tensor) replicated in three unit systems. Every derived field is computed
// by NewMassProperties from the canonical US-customary values; construct a
// new value instead of editing fields, since nothing recomputes them later.
type MassProperties struct {
	// Canonical values, US customary (lbm, inches).
	MassLbm       float64
	CGIn          [3]float64
	InertiaLbmIn2 [6]float64 // Ixx, Iyy, Izz, Ixy, Ixz, Iyz

	// Derived, solver units (slugs, feet).
	MassSlug       float64
	CGFt           [3]float64
	InertiaSlugFt2 [6]float64

	// Derived, SI (kg, metres).
	MassKg      float64
	CGM         [3]float64
	InertiaKgM2 [6]float64
}

// NewMassProperties builds a descriptor from US-customary measurements.
// inertia must have either 3 elements (diagonal, products assumed zero) or 6
// (Ixx, Iyy, Izz, Ixy, Ixz, Iyz); any other length is ErrInvalidInertia.
func NewMassProperties(massLbm float64, cgIn [3]float64, inertia []float64) (*MassProperties, error) {
	mp := &MassProperties{
		MassLbm: massLbm,
		CGIn:    cgIn,
	}

	switch len(inertia) {
	case 3:
		mp.InertiaLbmIn2 = [6]float64{inertia[0], inertia[1], inertia[2], 0, 0, 0}
	case 6:
		copy(mp.InertiaLbmIn2[:], inertia)
	default:
		return nil, fmt.Errorf("%w: want 3 or 6 inertia elements, got %d",
			ErrInvalidInertia, len(inertia))
	}

	mp.MassKg = massLbm * lbmToKg
	mp.MassSlug = massLbm * lbmToSlug
	for i := 0; i < 3; i++ {
		mp.CGFt[i] = cgIn[i] * inToFt
		mp.CGM[i] = cgIn[i] * inToM
	}
	for i := 0; i < 6; i++ {
		mp.InertiaSlugFt2[i] = mp.InertiaLbmIn2[i] * lbmIn2ToSlugF2
		mp.InertiaKgM2[i] = mp.InertiaLbmIn2[i] * lbmIn2ToKgM2
	}
	return mp, nil
}

// InertiaTensorSlugFt2 returns the full symmetric 3×3 tensor in slug·ft²,
// with the products of inertia negated per the standard sign convention.
func (mp *MassProperties) InertiaTensorSlugFt2() [3][3]float64 {
	return tensor(mp.InertiaSlugFt2)
}

// InertiaTensorKgM2 returns the full symmetric 3×3 tensor in kg·m².
func (mp *MassProperties) InertiaTensorKgM2() [3][3]float64 {
	return tensor(mp.InertiaKgM2)
}

func tensor(i [6]float64) [3][3]float64 {
	return [3][3]float64{
		{i[0], -i[3], -i[4]},
		{-i[3], i[1], -i[5]},
		{-i[4], -i[5], i[2]},
	}
}
