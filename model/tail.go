package model

// TailSurface is a sized empennage surface estimated from the wing via the
// classical tail-volume-coefficient method. It is a one-shot estimate: no
// invariant ties it back to the wing it was derived from.
//
// Span is the full span for a horizontal surface and the height for a
// vertical one. Lengths in feet, areas in ft², angles in degrees.
type TailSurface struct {
	Area        float64
	Span        float64
	Chord       float64
	AspectRatio float64
	TaperRatio  float64
	SweepC4     float64

	// X, Y, Z locate the surface's leading reference point.
	X, Y, Z float64

	// MomentArm is the assumed distance from the CG to the surface's
	// aerodynamic center.
	MomentArm float64
}
