package model

// Point3 is a point in the aircraft body frame, in feet. X runs aft,
// Y spanwise (starboard positive), Z up.
type Point3 struct {
	X, Y, Z float64
}

// WingPlanform holds the shape descriptors derived from leading/trailing-edge
// point clouds. It is built once by core.ComputePlanform and never mutated
// afterwards; AspectRatio is always Span²/Area as computed there, not an
// independently settable value.
//
// All lengths are in feet, areas in ft², angles in degrees.
type WingPlanform struct {
	// LE and TE are the input point sets, sorted ascending by Y.
	LE []Point3
	TE []Point3

	Span        float64
	Area        float64
	MAC         float64 // mean aerodynamic chord
	MACY        float64 // spanwise location of the MAC
	MACLEX      float64 // leading-edge X at the MAC spanwise location
	RootChord   float64
	TipChord    float64
	TaperRatio  float64 // tip chord / root chord
	AspectRatio float64 // span² / area
	SweepLE     float64 // leading-edge sweep
	SweepC4     float64 // quarter-chord sweep
	Dihedral    float64
}
