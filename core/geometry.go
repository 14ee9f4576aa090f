package core

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/signalsfoundry/aerosweep/model"
)

// Sentinel errors for structural problems in the input data. Geometry errors
// stop the current case immediately: no derived quantity can be trusted once
// the point data is malformed.
var (
	ErrInvalidGeometry = errors.New("invalid lifting-surface geometry")
	ErrInvalidInertia  = errors.New("invalid inertia input")
)

// stationAlignRelTol bounds how far the sorted leading- and trailing-edge
// spanwise coordinates may disagree at the same index, relative to the span.
const stationAlignRelTol = 1e-6

// ComputePlanform derives the wing shape descriptors from leading- and
// trailing-edge point sets. Both sets are sorted ascending by spanwise
// coordinate before anything else is computed; the two edges must then be
// index-aligned station for station, which is checked explicitly rather than
// assumed (edges sampled at different stations would silently produce wrong
// chords otherwise).
//
// Input coordinates are in feet. The returned planform must not be mutated.
func ComputePlanform(le, te []model.Point3) (*model.WingPlanform, error) {
	if len(le) < 2 || len(te) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 spanwise stations, got %d LE / %d TE",
			ErrInvalidGeometry, len(le), len(te))
	}
	if len(le) != len(te) {
		return nil, fmt.Errorf("%w: station count mismatch, %d LE vs %d TE",
			ErrInvalidGeometry, len(le), len(te))
	}

	// Sort copies so the caller's slices are left alone.
	leSorted := sortByY(le)
	teSorted := sortByY(te)

	n := len(leSorted)
	y := make([]float64, n)
	leX := make([]float64, n)
	leZ := make([]float64, n)
	chords := make([]float64, n)

	span := leSorted[n-1].Y - leSorted[0].Y
	if span <= 0 {
		return nil, fmt.Errorf("%w: non-positive span %g", ErrInvalidGeometry, span)
	}

	alignTol := math.Max(1e-9, stationAlignRelTol*span)
	for i := range leSorted {
		if d := math.Abs(leSorted[i].Y - teSorted[i].Y); d > alignTol {
			return nil, fmt.Errorf("%w: LE/TE stations misaligned at index %d (Δy=%g)",
				ErrInvalidGeometry, i, d)
		}
		y[i] = leSorted[i].Y
		leX[i] = leSorted[i].X
		leZ[i] = leSorted[i].Z
		chords[i] = teSorted[i].X - leSorted[i].X
		if chords[i] <= 0 {
			return nil, fmt.Errorf("%w: non-positive chord %g at y=%g",
				ErrInvalidGeometry, chords[i], y[i])
		}
	}

	// Root chord at the station nearest the centerline; tip chord averages
	// the two extreme stations so symmetric clouds that include both
	// wingtips are handled the same as half-span exports.
	rootIdx := nearestToZero(y)
	rootChord := chords[rootIdx]
	tipChord := 0.5 * (chords[0] + chords[n-1])

	area := trapezoid(y, chords)
	if area <= 0 {
		return nil, fmt.Errorf("%w: non-positive planform area %g", ErrInvalidGeometry, area)
	}

	// Area-weighted mean chord and its spanwise location. Normalizing by
	// the integrated area over the same stations keeps these correct for
	// both full-span and single-half point clouds; |y| keeps the MAC
	// location a distance from the centerline rather than a signed average
	// that cancels to zero on symmetric clouds.
	c2 := make([]float64, n)
	cy := make([]float64, n)
	for i := range chords {
		c2[i] = chords[i] * chords[i]
		cy[i] = chords[i] * math.Abs(y[i])
	}
	mac := trapezoid(y, c2) / area
	macY := trapezoid(y, cy) / area
	macLEX := interp(macY, y, leX)

	// Sweep and dihedral fits use only the non-negative half-span so a
	// symmetric cloud doesn't cancel its own slope across the centerline.
	var yHalf, leXHalf, c4Half, leZHalf []float64
	for i := range y {
		if y[i] >= 0 {
			yHalf = append(yHalf, y[i])
			leXHalf = append(leXHalf, leX[i])
			c4Half = append(c4Half, leX[i]+0.25*chords[i])
			leZHalf = append(leZHalf, leZ[i])
		}
	}

	var sweepLE, sweepC4, dihedral float64
	if len(yHalf) >= 2 {
		sweepLE = slopeDegrees(yHalf, leXHalf)
		sweepC4 = slopeDegrees(yHalf, c4Half)
		dihedral = slopeDegrees(yHalf, leZHalf)
	}

	return &model.WingPlanform{
		LE:          leSorted,
		TE:          teSorted,
		Span:        span,
		Area:        area,
		MAC:         mac,
		MACY:        macY,
		MACLEX:      macLEX,
		RootChord:   rootChord,
		TipChord:    tipChord,
		TaperRatio:  tipChord / rootChord,
		AspectRatio: span * span / area,
		SweepLE:     sweepLE,
		SweepC4:     sweepC4,
		Dihedral:    dihedral,
	}, nil
}

// slopeDegrees fits a least-squares line of f versus y and returns the
// arctangent of its slope in degrees.
func slopeDegrees(y, f []float64) float64 {
	slope, _ := linearFit(y, f)
	return math.Atan(slope) * 180 / math.Pi
}

func sortByY(pts []model.Point3) []model.Point3 {
	out := make([]model.Point3, len(pts))
	copy(out, pts)
	sort.Slice(out, func(i, j int) bool { return out[i].Y < out[j].Y })
	return out
}

func nearestToZero(y []float64) int {
	best := 0
	for i := range y {
		if math.Abs(y[i]) < math.Abs(y[best]) {
			best = i
		}
	}
	return best
}
