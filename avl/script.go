// Package avl synthesizes input for the AVL vortex-lattice solver, drives it
// as a child process, and parses its report files. AVL has no structured API:
// the only interface is a line-oriented interactive session, so scripts here
// reproduce the exact menu-navigation sequence the program expects. Blank
// lines are significant ("accept current value" confirmations); a missing or
// misplaced one silently desynchronizes the session and corrupts everything
// that follows.
package avl

import (
	"strconv"
	"strings"

	"github.com/signalsfoundry/aerosweep/model"
)

// ForcesExt and StabilityExt are the report-file suffixes appended to a
// case's output prefix.
const (
	ForcesExt    = ".ft"
	StabilityExt = ".st"
)

// CompileScript builds the ordered command sequence for one solver session:
// load geometry, optionally load mass, enter the OPER menu, set alpha and
// beta (and Mach when non-zero), execute, write the forces and
// stability-derivative reports, and quit. The output is deterministic:
// identical cases compile to identical scripts.
func CompileScript(fc model.FlightCase) []string {
	var lines []string

	lines = append(lines, "LOAD", fc.GeometryFile)
	if fc.MassFile != "" {
		lines = append(lines, "MASS", fc.MassFile)
	}

	lines = append(lines, "OPER")

	lines = append(lines,
		"A",
		"A "+formatValue(fc.Alpha),
		"",
		"B",
		"B "+formatValue(fc.Beta),
		"",
	)
	if fc.Mach > 0 {
		lines = append(lines,
			"M",
			"M "+formatValue(fc.Mach),
			"",
		)
	}

	lines = append(lines,
		"X",
		"FT",
		fc.OutputPrefix+ForcesExt,
		"ST",
		fc.OutputPrefix+StabilityExt,
		"", // back to the OPER menu
		"QUIT",
	)
	return lines
}

// ScriptText renders the command sequence as the byte stream fed to the
// solver's standard input.
func ScriptText(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
