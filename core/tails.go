package core

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/aerosweep/model"
)

// Default sizing assumptions for surfaces the point cloud doesn't cover.
// These are the classical tail-volume-coefficient heuristics, not a
// constraint solve: no iteration, no convergence concerns.
const (
	horizontalARFraction = 0.8 // horizontal tail AR as a fraction of wing AR
	verticalAspectRatio  = 1.5
	horizontalTaper      = 0.8
	verticalTaper        = 0.7
	verticalSweepC4      = 5.0 // degrees, slight sweep for stability
)

// EstimateTailSurfaces sizes horizontal and vertical tail surfaces from the
// wing planform and the given volume coefficients. The same moment arm
// (armFactor × wing MAC) is assumed for both surfaces, and both are placed
// with their leading reference at the wing root's trailing edge on the
// centerline.
//
// The only failure mode is a degenerate wing (non-positive area or MAC),
// reported as ErrInvalidGeometry.
func EstimateTailSurfaces(wing *model.WingPlanform, volumeH, volumeV, armFactor float64) (model.TailSurface, model.TailSurface, error) {
	var horizontal, vertical model.TailSurface

	arm := armFactor * wing.MAC
	if wing.Area <= 0 || arm <= 0 {
		return horizontal, vertical, fmt.Errorf(
			"%w: cannot size tails from wing with area %g and moment arm %g",
			ErrInvalidGeometry, wing.Area, arm)
	}

	// Horizontal: S_h = V_h·S·MAC / l_h, with AR scaled down from the wing.
	areaH := volumeH * wing.Area * wing.MAC / arm
	arH := horizontalARFraction * wing.AspectRatio
	spanH := math.Sqrt(areaH * arH)
	horizontal = model.TailSurface{
		Area:        areaH,
		Span:        spanH,
		Chord:       areaH / spanH,
		AspectRatio: arH,
		TaperRatio:  horizontalTaper,
		SweepC4:     0,
		MomentArm:   arm,
	}

	// Vertical: S_v = V_v·S·b / l_v, with a fixed height-to-chord ratio.
	areaV := volumeV * wing.Area * wing.Span / arm
	heightV := math.Sqrt(areaV * verticalAspectRatio)
	vertical = model.TailSurface{
		Area:        areaV,
		Span:        heightV,
		Chord:       areaV / heightV,
		AspectRatio: verticalAspectRatio,
		TaperRatio:  verticalTaper,
		SweepC4:     verticalSweepC4,
		MomentArm:   arm,
	}

	// Both surfaces start at the root trailing edge, on the centerline.
	rootTE := rootTrailingEdgeX(wing)
	horizontal.X = rootTE
	vertical.X = rootTE

	return horizontal, vertical, nil
}

// rootTrailingEdgeX returns the trailing-edge X at the station nearest the
// centerline.
func rootTrailingEdgeX(wing *model.WingPlanform) float64 {
	y := make([]float64, len(wing.LE))
	for i := range wing.LE {
		y[i] = wing.LE[i].Y
	}
	return wing.TE[nearestToZero(y)].X
}
