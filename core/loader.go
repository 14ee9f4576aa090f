package core

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/signalsfoundry/aerosweep/model"
)

// Units accepted for point-cloud input.
const (
	UnitInches = "inches"
	UnitFeet   = "feet"
)

// ReadPoints reads a point set from CSV data with named x, y, z columns
// (matched case-insensitively, extra columns ignored) and returns points in
// feet. units says what the file's values are in.
func ReadPoints(r io.Reader, units string) ([]model.Point3, error) {
	var scale float64
	switch strings.ToLower(units) {
	case UnitInches:
		scale = inToFt
	case UnitFeet:
		scale = 1
	default:
		return nil, fmt.Errorf("ReadPoints: unknown units %q", units)
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ReadPoints: read header: %w", err)
	}
	xi, yi, zi := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "x":
			xi = i
		case "y":
			yi = i
		case "z":
			zi = i
		}
	}
	if xi < 0 || yi < 0 || zi < 0 {
		return nil, fmt.Errorf("ReadPoints: header %v missing x, y, or z column", header)
	}

	var points []model.Point3
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadPoints: %w", err)
		}
		p := model.Point3{}
		for _, c := range []struct {
			idx  int
			dst  *float64
			name string
		}{{xi, &p.X, "x"}, {yi, &p.Y, "y"}, {zi, &p.Z, "z"}} {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[c.idx]), 64)
			if err != nil {
				return nil, fmt.Errorf("ReadPoints: bad %s value %q: %w", c.name, record[c.idx], err)
			}
			*c.dst = v * scale
		}
		points = append(points, p)
	}
	return points, nil
}

// ReadPointsFile is ReadPoints over a file path.
func ReadPointsFile(path, units string) ([]model.Point3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadPointsFile: %w", err)
	}
	defer f.Close()
	return ReadPoints(f, units)
}

// massColumns are the named fields of the single-row mass record, in the
// order NewMassProperties wants them.
var massColumns = []string{
	"avl_mass", "avl_CGx", "avl_CGy", "avl_CGz", "avl_Ixx", "avl_Iyy", "avl_Izz",
}

// ReadMassRecord reads the single-row mass/inertia record (lbm, inches) from
// CSV data and builds the multi-unit descriptor. Only the diagonal inertia
// terms appear in the record; products of inertia are taken as zero.
func ReadMassRecord(r io.Reader) (*MassProperties, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ReadMassRecord: read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	record, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ReadMassRecord: read record: %w", err)
	}

	vals := make([]float64, len(massColumns))
	for i, name := range massColumns {
		idx, ok := col[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("ReadMassRecord: missing column %q", name)
		}
		if idx >= len(record) {
			return nil, fmt.Errorf("ReadMassRecord: record too short for column %q", name)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("ReadMassRecord: bad %s value %q: %w", name, record[idx], err)
		}
		vals[i] = v
	}

	return NewMassProperties(vals[0], [3]float64{vals[1], vals[2], vals[3]}, vals[4:7])
}

// ReadMassFile is ReadMassRecord over a file path.
func ReadMassFile(path string) (*MassProperties, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadMassFile: %w", err)
	}
	defer f.Close()
	return ReadMassRecord(f)
}
