package avl

import (
	"fmt"
	"io"
	"math"

	"github.com/signalsfoundry/aerosweep/model"
)

// Panel discretization for generated surfaces. Cosine chordwise spacing and
// uniform spanwise spacing are reasonable defaults for clean planforms.
const (
	chordwisePanels = 8
	spanwisePanels  = 16
	chordSpacing    = 1.0
	spanSpacing     = 1.0
)

// WriteGeometryDeck emits an AVL geometry deck for the wing and the two
// estimated tail surfaces. Reference quantities come from the wing (Sref =
// area, Cref = MAC, Bref = span); ref is the moment reference point, normally
// the CG, in feet. mach is the default freestream Mach number recorded in the
// deck header.
//
// Wing sections are emitted per point-cloud station over the non-negative
// half-span with a YDUPLICATE image; if the cloud only covers one side with
// too few non-negative stations, all stations are written explicitly instead.
func WriteGeometryDeck(w io.Writer, name string, wing *model.WingPlanform, htail, vtail model.TailSurface, ref [3]float64, mach float64) error {
	if wing.Area <= 0 || wing.Span <= 0 || wing.MAC <= 0 {
		return fmt.Errorf("WriteGeometryDeck: degenerate wing (S=%g b=%g MAC=%g)",
			wing.Area, wing.Span, wing.MAC)
	}

	ew := &errWriter{w: w}

	ew.printf("%s\n", name)
	ew.printf("#Mach\n%.4f\n", mach)
	ew.printf("#IYsym  IZsym  Zsym\n 0      0      0.0\n")
	ew.printf("#Sref   Cref   Bref\n %.4f  %.4f  %.4f\n", wing.Area, wing.MAC, wing.Span)
	ew.printf("#Xref   Yref   Zref\n %.4f  %.4f  %.4f\n", ref[0], ref[1], ref[2])

	writeWingSurface(ew, wing)
	writeHorizontalSurface(ew, htail)
	writeVerticalSurface(ew, vtail)

	return ew.err
}

func writeWingSurface(ew *errWriter, wing *model.WingPlanform) {
	type station struct {
		x, y, z, chord float64
	}

	var half []station
	for i := range wing.LE {
		if wing.LE[i].Y >= 0 {
			half = append(half, station{
				x:     wing.LE[i].X,
				y:     wing.LE[i].Y,
				z:     wing.LE[i].Z,
				chord: wing.TE[i].X - wing.LE[i].X,
			})
		}
	}

	duplicate := len(half) >= 2
	if !duplicate {
		half = half[:0]
		for i := range wing.LE {
			half = append(half, station{
				x:     wing.LE[i].X,
				y:     wing.LE[i].Y,
				z:     wing.LE[i].Z,
				chord: wing.TE[i].X - wing.LE[i].X,
			})
		}
	}

	ew.printf("#\nSURFACE\nWing\n")
	ew.printf("#Nchord  Cspace  Nspan  Sspace\n %d  %.1f  %d  %.1f\n",
		chordwisePanels, chordSpacing, spanwisePanels, spanSpacing)
	if duplicate {
		ew.printf("YDUPLICATE\n0.0\n")
	}
	ew.printf("ANGLE\n0.0\n")
	for _, s := range half {
		ew.printf("SECTION\n#Xle     Yle     Zle     Chord   Ainc\n %.4f  %.4f  %.4f  %.4f  0.0\n",
			s.x, s.y, s.z, s.chord)
	}
}

func writeHorizontalSurface(ew *errWriter, t model.TailSurface) {
	rootChord, tipChord := taperedChords(t.Area, t.Span, t.TaperRatio)
	halfSpan := 0.5 * t.Span
	// Keep the quarter-chord line at the requested sweep.
	tipX := t.X + 0.25*rootChord + math.Tan(t.SweepC4*math.Pi/180)*halfSpan - 0.25*tipChord

	ew.printf("#\nSURFACE\nHorizontal Tail\n")
	ew.printf("#Nchord  Cspace  Nspan  Sspace\n %d  %.1f  %d  %.1f\n",
		chordwisePanels, chordSpacing, spanwisePanels/2, spanSpacing)
	ew.printf("YDUPLICATE\n0.0\n")
	ew.printf("ANGLE\n0.0\n")
	ew.printf("SECTION\n#Xle     Yle     Zle     Chord   Ainc\n %.4f  %.4f  %.4f  %.4f  0.0\n",
		t.X, t.Y, t.Z, rootChord)
	ew.printf("SECTION\n#Xle     Yle     Zle     Chord   Ainc\n %.4f  %.4f  %.4f  %.4f  0.0\n",
		tipX, t.Y+halfSpan, t.Z, tipChord)
}

func writeVerticalSurface(ew *errWriter, t model.TailSurface) {
	rootChord, tipChord := taperedChords(t.Area, t.Span, t.TaperRatio)
	// Span is the full height for a vertical surface.
	tipX := t.X + 0.25*rootChord + math.Tan(t.SweepC4*math.Pi/180)*t.Span - 0.25*tipChord

	ew.printf("#\nSURFACE\nVertical Tail\n")
	ew.printf("#Nchord  Cspace  Nspan  Sspace\n %d  %.1f  %d  %.1f\n",
		chordwisePanels, chordSpacing, spanwisePanels/2, spanSpacing)
	ew.printf("SECTION\n#Xle     Yle     Zle     Chord   Ainc\n %.4f  %.4f  %.4f  %.4f  0.0\n",
		t.X, t.Y, t.Z, rootChord)
	ew.printf("SECTION\n#Xle     Yle     Zle     Chord   Ainc\n %.4f  %.4f  %.4f  %.4f  0.0\n",
		tipX, t.Y, t.Z+t.Span, tipChord)
}

// taperedChords splits a surface of the given area and span into root and tip
// chords with the given taper ratio: S = b·(cr+ct)/2 with ct = λ·cr.
func taperedChords(area, span, taper float64) (root, tip float64) {
	root = 2 * area / (span * (1 + taper))
	return root, taper * root
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
