/*
 * figure.go, part of govasp.
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

// Package vplot draws band structure and density of states plots from the
// data read by the vasp package, using the Gonum plot library.
package vplot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Curve is one data series in a figure. It can be made of several
// polylines, all drawn with the same color and sharing one legend entry.
type Curve struct {
	Label string
	Color color.Color
	Lines []plotter.XYs
}

// Figure describes everything that goes in one plot. Producing
// the figure and drawing it are separate steps.
type Figure struct {
	Name   string //Name of the output file, without extension.
	Title  string
	XLabel string
	YLabel string
	XMin   float64
	XMax   float64
	YMin   float64
	YMax   float64
	Curves []Curve
	HLines []float64   //Y values of horizontal reference lines.
	VLines []float64   //X values of vertical reference lines.
	Ticks  []plot.Tick //If nil, the default ticks are used for the X axis.
}

// Plot builds a Gonum plot for the figure. The axes are fixed to the
// figure's ranges, and anything outside them is clipped.
func (F Figure) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = F.Title
	p.X.Label.Text = F.XLabel
	p.Y.Label.Text = F.YLabel
	for _, c := range F.Curves {
		for i, xys := range c.Lines {
			l, err := plotter.NewLine(xys)
			if err != nil {
				return nil, fmt.Errorf("vplot: figure %s, curve %s: %w", F.Name, c.Label, err)
			}
			l.Color = c.Color
			l.Width = vg.Points(1.5)
			p.Add(l)
			if i == 0 {
				p.Legend.Add(c.Label, l)
			}
		}
	}
	for _, y := range F.HLines {
		l, err := refLine(F.XMin, y, F.XMax, y)
		if err != nil {
			return nil, fmt.Errorf("vplot: figure %s, reference line: %w", F.Name, err)
		}
		p.Add(l)
	}
	for _, x := range F.VLines {
		l, err := refLine(x, F.YMin, x, F.YMax)
		if err != nil {
			return nil, fmt.Errorf("vplot: figure %s, reference line: %w", F.Name, err)
		}
		p.Add(l)
	}
	if F.Ticks != nil {
		p.X.Tick.Marker = plot.ConstantTicks(F.Ticks)
	}
	p.Legend.Top = true
	//Adding plotters widens the axes, so the ranges are set last.
	p.X.Min, p.X.Max = span(F.XMin, F.XMax)
	p.Y.Min, p.Y.Max = span(F.YMin, F.YMax)
	return p, nil
}

//span returns min, max, widened if the range is empty, so
//the axis can still be drawn.
func span(min, max float64) (float64, float64) {
	if max > min {
		return min, max
	}
	return min - 0.5, min + 0.5
}

// Formats are the output file formats supported.
var Formats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tif", "tiff"}

// Output tells where and how figures are saved.
type Output struct {
	Dir    string
	Format string //One of Formats.
	Width  vg.Length
	Height vg.Length
}

// DefaultOutput saves PDF files in the current directory.
func DefaultOutput() Output {
	return Output{Dir: ".", Format: "pdf", Width: 6.4 * vg.Inch, Height: 4.8 * vg.Inch}
}

// Check returns an error if O can't be used to save figures.
func (O Output) Check() error {
	format := strings.ToLower(O.Format)
	found := false
	for _, f := range Formats {
		if f == format {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("vplot: unsupported format %q, use one of %s", O.Format, strings.Join(Formats, ", "))
	}
	if O.Width <= 0 || O.Height <= 0 {
		return fmt.Errorf("vplot: figure size must be positive, not %v x %v", O.Width, O.Height)
	}
	return nil
}

// Path returns the file where F is saved.
func (O Output) Path(F Figure) string {
	return filepath.Join(O.Dir, F.Name+"."+strings.ToLower(O.Format))
}

// Save draws F and writes it to O.Path(F), which is returned.
// An existing file is overwritten.
func (O Output) Save(F Figure) (string, error) {
	if err := O.Check(); err != nil {
		return "", err
	}
	p, err := F.Plot()
	if err != nil {
		return "", err
	}
	if O.Dir != "" {
		if err := os.MkdirAll(O.Dir, 0o755); err != nil {
			return "", fmt.Errorf("vplot: %w", err)
		}
	}
	path := O.Path(F)
	if err := p.Save(O.Width, O.Height, path); err != nil {
		return "", fmt.Errorf("vplot: saving %s: %w", path, err)
	}
	return path, nil
}

// SaveAll saves all the figures in figs, in order, and returns the files written.
// It stops at the first error, and then removes the files it had already written,
// so a failed call leaves no plots behind.
func (O Output) SaveAll(figs []Figure) ([]string, error) {
	ret := make([]string, 0, len(figs))
	for _, F := range figs {
		path, err := O.Save(F)
		if err != nil {
			for _, p := range ret {
				os.Remove(p)
			}
			return nil, err
		}
		ret = append(ret, path)
	}
	return ret, nil
}
