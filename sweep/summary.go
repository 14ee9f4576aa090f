package sweep

import "fmt"

// Summary classifies a sweep's outcomes. "No data" (the solver produced no
// parseable coefficients) is deliberately kept distinct from "coefficients
// present with some derivatives missing" — partial results are still useful.
type Summary struct {
	Total              int
	NoData             int // failed cases or reports without coefficients
	Complete           int // all coefficients and derivatives present
	PartialDerivatives int // coefficients present, derivatives incomplete
}

// Summarize tallies the outcomes of a finished sweep.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch {
		case o.Failed() || !o.Result.HasForces():
			s.NoData++
		case o.Result.Derivatives.Complete() && allForces(o):
			s.Complete++
		default:
			s.PartialDerivatives++
		}
	}
	return s
}

func allForces(o Outcome) bool {
	r := o.Result
	return r.CL != nil && r.CD != nil && r.CM != nil &&
		r.CY != nil && r.Cl != nil && r.Cn != nil
}

func (s Summary) String() string {
	return fmt.Sprintf("%d cases: %d complete, %d with partial derivatives, %d produced no data",
		s.Total, s.Complete, s.PartialDerivatives, s.NoData)
}
