/*
 * band.go, part of govasp.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package vplot

import (
	"fmt"

	vasp "github.com/rmera/govasp"
	"gonum.org/v1/plot"
)

// BandFigures returns the band structure figures for the table B, with the
// high-symmetry points labels, in the energy reference R.
// One figure is produced for each continuous segment of the k-path (see
// vasp.Segments). They are named fig_0, fig_1 and so on, in path order.
func BandFigures(B vasp.BandTable, labels []vasp.KLabel, R vasp.Reference) []Figure {
	k := B.K()
	curves := []Curve{
		{Label: "spin up", Color: blue, Lines: polylines(k, R.Apply(B.Up()))},
		{Label: "spin down", Color: green, Lines: polylines(k, R.Apply(B.Down()))},
	}
	vlines := make([]float64, 0, len(labels))
	var ticks []plot.Tick
	if len(labels) > 0 {
		ticks = make([]plot.Tick, 0, len(labels))
	}
	for _, v := range labels {
		vlines = append(vlines, v.Pos)
		ticks = append(ticks, plot.Tick{Value: v.Pos, Label: v.TickLabel()})
	}
	segments := vasp.Segments(labels, k)
	figs := make([]Figure, 0, len(segments))
	for i, s := range segments {
		figs = append(figs, Figure{
			Name:   fmt.Sprintf("fig_%d", i),
			Title:  R.Title,
			XLabel: "Wave number",
			YLabel: R.Label,
			XMin:   s[0],
			XMax:   s[1],
			YMin:   R.Min,
			YMax:   R.Max,
			Curves: curves,
			HLines: []float64{R.Level},
			VLines: vlines,
			Ticks:  ticks,
		})
	}
	return figs
}
