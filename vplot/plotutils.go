package vplot

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Some internal convenience functions.

var (
	blue  = color.RGBA{B: 255, A: 255}
	green = color.RGBA{G: 128, A: 255}
	grey  = color.NRGBA{R: 128, G: 128, B: 128, A: 128}
)

//polylines splits the points (x[i], y[i]) in as many
//polylines as needed so that x never decreases inside one of them.
//BAND.dat files list one band after the other, and each band starts
//again from the beginning of the k-path.
func polylines(x, y []float64) []plotter.XYs {
	var ret []plotter.XYs
	start := 0
	for i := 1; i <= len(x); i++ {
		if i < len(x) && x[i] >= x[i-1] {
			continue
		}
		xys := make(plotter.XYs, i-start)
		for j := range xys {
			xys[j].X = x[start+j]
			xys[j].Y = y[start+j]
		}
		ret = append(ret, xys)
		start = i
	}
	return ret
}

//Same as the previous, but never splits.
func polyline(x, y []float64) []plotter.XYs {
	xys := make(plotter.XYs, len(x))
	for i := range xys {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return []plotter.XYs{xys}
}

//refLine returns the dashed, thin, grey line from (x0,y0) to (x1,y1)
//used to mark the Fermi level and the high-symmetry points.
func refLine(x0, y0, x1, y1 float64) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return nil, err
	}
	l.Color = grey
	l.Width = vg.Points(0.5)
	l.Dashes = []vg.Length{vg.Points(3.7), vg.Points(1.6)}
	return l, nil
}
