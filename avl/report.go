package avl

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/signalsfoundry/aerosweep/model"
)

// ErrReportNotFound means the expected report file is absent after a run,
// which usually indicates a desynchronized command script rather than a
// solver failure the exit code would have shown.
var ErrReportNotFound = errors.New("solver report not found")

// decimal matches a signed decimal the way the solver prints one. Field order
// and the narrative text around each assignment are not stable across solver
// versions, so every symbol is located independently.
const decimal = `([-+]?\d*\.\d+)`

// Force-report patterns are case-sensitive on purpose: CLtot (lift) and
// Cltot (roll moment) differ only in case.
var (
	reCLtot = regexp.MustCompile(`CLtot\s*=\s*` + decimal)
	reCDtot = regexp.MustCompile(`CDtot\s*=\s*` + decimal)
	reCmtot = regexp.MustCompile(`Cmtot\s*=\s*` + decimal)
	reCYtot = regexp.MustCompile(`CYtot\s*=\s*` + decimal)
	reCltot = regexp.MustCompile(`Cltot\s*=\s*` + decimal)
	reCntot = regexp.MustCompile(`Cntot\s*=\s*` + decimal)
	reSpanE = regexp.MustCompile(`\be\s*=\s*` + decimal)
)

// Stability symbols are matched case-insensitively; the solver's stability
// report is treated as best-effort.
var stabilityPatterns = map[string]*regexp.Regexp{
	"CLa": regexp.MustCompile(`(?i)CLa\s*=\s*` + decimal),
	"Cma": regexp.MustCompile(`(?i)Cma\s*=\s*` + decimal),
	"CYb": regexp.MustCompile(`(?i)CYb\s*=\s*` + decimal),
	"Clb": regexp.MustCompile(`(?i)Clb\s*=\s*` + decimal),
	"Cnb": regexp.MustCompile(`(?i)Cnb\s*=\s*` + decimal),
	"Xnp": regexp.MustCompile(`(?i)Xnp\s*=\s*` + decimal),
}

// ParseForces extracts force and moment coefficients from forces-report text.
// Symbols absent from the text leave the corresponding field nil; partial
// results are still useful and are never treated as an error. alpha and beta
// echo the requesting condition into the result for traceability.
func ParseForces(text string, alpha, beta float64) *model.CaseResult {
	res := &model.CaseResult{Alpha: alpha, Beta: beta}
	res.CL = findValue(reCLtot, text)
	res.CD = findValue(reCDtot, text)
	res.CM = findValue(reCmtot, text)
	res.CY = findValue(reCYtot, text)
	res.Cl = findValue(reCltot, text)
	res.Cn = findValue(reCntot, text)
	res.SpanEfficiency = findValue(reSpanE, text)
	return res
}

// ParseForcesFile reads and parses a forces report. A missing file is
// ErrReportNotFound: the run produced no usable output.
func ParseForcesFile(path string, alpha, beta float64) (*model.CaseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, path)
		}
		return nil, fmt.Errorf("read forces report: %w", err)
	}
	return ParseForces(string(data), alpha, beta), nil
}

// ParseStabilityDerivatives extracts whichever stability derivatives the text
// contains.
func ParseStabilityDerivatives(text string) *model.StabilityDerivatives {
	d := &model.StabilityDerivatives{}
	d.CLa = findValue(stabilityPatterns["CLa"], text)
	d.CMa = findValue(stabilityPatterns["Cma"], text)
	d.CYb = findValue(stabilityPatterns["CYb"], text)
	d.Clb = findValue(stabilityPatterns["Clb"], text)
	d.Cnb = findValue(stabilityPatterns["Cnb"], text)
	d.Xnp = findValue(stabilityPatterns["Xnp"], text)
	return d
}

// ParseStabilityFile reads and parses a stability report. The report is
// optional, so a missing or unreadable file returns an empty result rather
// than an error.
func ParseStabilityFile(path string) *model.StabilityDerivatives {
	data, err := os.ReadFile(path)
	if err != nil {
		return &model.StabilityDerivatives{}
	}
	return ParseStabilityDerivatives(string(data))
}

func findValue(re *regexp.Regexp, text string) *float64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}
