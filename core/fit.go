package core

// Numeric helpers for the planform derivation. Station data exported from
// CAD/meshing tools is sparse and often irregularly spaced, so integrals use
// the trapezoidal rule over the actual station locations and slopes come from
// a degree-1 least-squares fit rather than a two-point difference.

// trapezoid integrates f over x using the trapezoidal rule. x must be sorted
// ascending and len(x) == len(f) >= 2.
func trapezoid(x, f []float64) float64 {
	var sum float64
	for i := 1; i < len(x); i++ {
		sum += 0.5 * (f[i] + f[i-1]) * (x[i] - x[i-1])
	}
	return sum
}

// linearFit returns the slope and intercept of the least-squares line
// f ≈ slope*x + intercept. It requires len(x) == len(f) >= 2. For degenerate
// input (all x identical) the slope is 0.
func linearFit(x, f []float64) (slope, intercept float64) {
	n := float64(len(x))
	var sx, sf, sxx, sxf float64
	for i := range x {
		sx += x[i]
		sf += f[i]
		sxx += x[i] * x[i]
		sxf += x[i] * f[i]
	}
	denom := n*sxx - sx*sx
	if denom == 0 {
		return 0, sf / n
	}
	slope = (n*sxf - sx*sf) / denom
	intercept = (sf - slope*sx) / n
	return slope, intercept
}

// interp linearly interpolates f at xq. x must be sorted ascending. Queries
// outside the range clamp to the end values.
func interp(xq float64, x, f []float64) float64 {
	if xq <= x[0] {
		return f[0]
	}
	last := len(x) - 1
	if xq >= x[last] {
		return f[last]
	}
	for i := 1; i <= last; i++ {
		if xq <= x[i] {
			if x[i] == x[i-1] {
				return f[i]
			}
			t := (xq - x[i-1]) / (x[i] - x[i-1])
			return f[i-1] + t*(f[i]-f[i-1])
		}
	}
	return f[last]
}
