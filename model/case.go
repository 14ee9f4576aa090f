package model

// FlightCase is one operating point for the external solver, plus the input
// files it should load. It is immutable per solver invocation.
type FlightCase struct {
	Alpha float64 // angle of attack, degrees
	Beta  float64 // sideslip angle, degrees
	Mach  float64 // 0 means incompressible

	GeometryFile string // solver geometry deck
	MassFile     string // optional mass file; empty to skip
	OutputPrefix string // basename for the per-case report files
}

// StabilityDerivatives are the optional derivatives extracted from the
// solver's stability report. A nil field means the report did not contain
// that symbol; it is never defaulted to zero.
type StabilityDerivatives struct {
	CLa *float64 // lift-curve slope, per radian
	CMa *float64 // pitching-moment slope
	CYb *float64 // side-force slope w.r.t. sideslip
	Clb *float64 // roll-moment slope w.r.t. sideslip
	Cnb *float64 // yaw-moment slope w.r.t. sideslip
	Xnp *float64 // neutral point
}

// Complete reports whether every derivative was present in the report.
func (d *StabilityDerivatives) Complete() bool {
	if d == nil {
		return false
	}
	return d.CLa != nil && d.CMa != nil && d.CYb != nil &&
		d.Clb != nil && d.Cnb != nil && d.Xnp != nil
}

// CaseResult holds the coefficients parsed from one solver run. Force and
// moment coefficients are pointers so that a symbol absent from the report
// stays nil rather than masquerading as a physically meaningful zero.
type CaseResult struct {
	// Alpha and Beta echo the requesting condition for traceability.
	Alpha float64
	Beta  float64

	CL *float64 // lift
	CD *float64 // drag
	CM *float64 // pitching moment
	CY *float64 // side force
	Cl *float64 // roll moment
	Cn *float64 // yaw moment

	SpanEfficiency *float64

	Derivatives *StabilityDerivatives
}

// HasForces reports whether the three primary longitudinal coefficients were
// all present in the forces report.
func (r *CaseResult) HasForces() bool {
	return r != nil && r.CL != nil && r.CD != nil && r.CM != nil
}

// Float returns a pointer to v. Convenience for building optional fields.
func Float(v float64) *float64 { return &v }
