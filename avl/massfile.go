package avl

import (
	"fmt"
	"io"

	"github.com/signalsfoundry/aerosweep/core"
)

// WriteMassFile emits the solver's .mass file (slugs, feet) from the
// converted mass properties: one data row of mass, CG, and the six
// independent inertia components.
func WriteMassFile(w io.Writer, name string, mp *core.MassProperties) error {
	ew := &errWriter{w: w}

	ew.printf("#  %s Mass File\n", name)
	ew.printf("#  Units: slugs, feet\n")
	ew.printf("#\n")
	ew.printf("#  mass    x       y       z       Ixx     Iyy     Izz     Ixy     Ixz     Iyz\n")
	ew.printf("   %12.6f  %8.4f  %8.4f  %8.4f", mp.MassSlug, mp.CGFt[0], mp.CGFt[1], mp.CGFt[2])
	for _, v := range mp.InertiaSlugFt2 {
		ew.printf("  %12.4f", v)
	}
	ew.printf("\n")

	if ew.err != nil {
		return fmt.Errorf("WriteMassFile: %w", ew.err)
	}
	return nil
}
