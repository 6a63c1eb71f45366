package parser

import (
	"github.com/ukaji3/omplot-go/pkg/omplot/matfile"
	"github.com/ukaji3/omplot-go/pkg/omplot/models"
)

// OpenModelica storage layouts named in the fourth Aclass line.
const (
	StorageTransposed = "binTrans"
	StorageNormal     = "binNormal"
)

// TrajectoryClass is the Aclass name of a trajectory result file.
const TrajectoryClass = "Atrajectory"

// ParseClass reads the Aclass header. Missing lines are left empty.
func ParseClass(m *matfile.Matrix) models.ResultClass {
	lines := m.Lines()
	field := func(i int) string {
		if i < len(lines) {
			return normalizeName(lines[i])
		}
		return ""
	}
	return models.ResultClass{
		Name:    field(0),
		Version: field(1),
		Layout:  field(3),
	}
}

// NamesTransposed reports whether the name table of a file with class c is
// stored as parallel character columns. Files without a layout are assumed to
// be transposed, the OpenModelica default.
func NamesTransposed(c models.ResultClass) bool {
	return c.Layout != StorageNormal
}
