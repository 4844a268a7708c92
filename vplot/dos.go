package vplot

import (
	"math"

	vasp "github.com/rmera/govasp"
	"gonum.org/v1/gonum/floats"
)

// DosFigure returns the total density of states figure for the table D in
// the energy reference R. The densities go in the X axis, and the energies,
// shifted by R, in the Y axis. The figure is named fig.
func DosFigure(D vasp.DosTable, R vasp.Reference) Figure {
	e := R.Apply(D.Energy())
	up, down := D.Up(), D.Down()
	return Figure{
		Name:   "fig",
		Title:  R.Title,
		XLabel: "TDOS(states/eV)",
		YLabel: R.Label,
		XMin:   math.Min(floats.Min(up), floats.Min(down)),
		XMax:   math.Max(floats.Max(up), floats.Max(down)),
		YMin:   R.Min,
		YMax:   R.Max,
		Curves: []Curve{
			{Label: "spin up", Color: blue, Lines: polyline(up, e)},
			{Label: "spin down", Color: green, Lines: polyline(down, e)},
		},
		HLines: []float64{R.Level},
	}
}
