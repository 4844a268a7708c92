/*
 * shift.go, part of govasp.
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

package vasp

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DefaultWindow is the default half-width, in eV, of the energy range plotted
// around the Fermi level.
const DefaultWindow = 3.0

// Options controls how energies are shifted and shown.
type Options struct {
	Title     string  //Title of the plot. The Fermi energy is appended to it.
	ZeroFermi bool    //If true, the Fermi level is shown as the zero of energy.
	Window    float64 //Energies in [level-Window, level+Window] are plotted.
}

// DefaultOptions returns the options used when nothing else is given.
func DefaultOptions() Options {
	return Options{ZeroFermi: true, Window: DefaultWindow}
}

// Check returns an error of kind ErrBadOptions if O can't be used.
func (O Options) Check() error {
	if !(O.Window > 0) || math.IsInf(O.Window, 1) {
		return newError(ErrBadOptions, "", "Options.Check", "energy window must be a positive number, not %v", O.Window)
	}
	return nil
}

// Reference is the energy reference of a plot: where the Fermi level is
// drawn, how the data are shifted and the labels that go with it.
type Reference struct {
	Fermi  float64 //The Fermi energy as read from the log file.
	Level  float64 //The Fermi level in the plotted energy scale.
	Title  string
	Label  string //Label for the energy axis.
	Min    float64
	Max    float64
	offset float64
}

// NewReference returns the reference for a plot of data from a calculation with
// Fermi energy fermi, using the options O.
// The energies in BAND.dat and TDOS.dat are already measured from the Fermi level.
// When O.ZeroFermi is false they are shifted by adding fermi. When it is true the
// shift adds the Fermi level of the plotted scale, which is zero, so it leaves the data as they are.
func NewReference(fermi float64, O Options) (Reference, error) {
	if err := O.Check(); err != nil {
		return Reference{}, errDecorate(err, "NewReference")
	}
	R := Reference{
		Fermi: fermi,
		Level: fermi,
		Title: Title(O.Title, fermi),
		Label: "Energy (eV)",
	}
	if O.ZeroFermi {
		R.Level = 0
		R.Label = "Energy - Fermi Energy (eV)"
	}
	R.offset = R.Level
	R.Min = R.Level - O.Window
	R.Max = R.Level + O.Window
	return R, nil
}

// Apply returns a new slice with the energies in raw shifted to the plotted scale.
func (R Reference) Apply(raw []float64) []float64 {
	ret := make([]float64, len(raw))
	copy(ret, raw)
	floats.AddConst(R.offset, ret)
	return ret
}

// Title returns the title of a plot for a calculation with Fermi energy fermi.
func Title(title string, fermi float64) string {
	return fmt.Sprintf("%s (Fermi Energy = %.2f eV)", title, fermi)
}

// Segments returns the k ranges, as [start, end] pairs, in which the k-path
// is continuous. With no discontinuities in labels, there is only one segment, spanning
// the whole path. Otherwise, the boundaries are the first label, the sorted discontinuities
// and the last label. If labels is empty, the ends of the path are taken from k.
func Segments(labels []KLabel, k []float64) [][2]float64 {
	var first, last float64
	switch {
	case len(labels) > 0:
		first, last = labels[0].Pos, labels[len(labels)-1].Pos
	case len(k) > 0:
		first, last = floats.Min(k), floats.Max(k)
	}
	bounds := append([]float64{first}, Discontinuities(labels)...)
	sort.Float64s(bounds[1:])
	bounds = append(bounds, last)
	ret := make([][2]float64, 0, len(bounds)-1)
	for i := 1; i < len(bounds); i++ {
		ret = append(ret, [2]float64{bounds[i-1], bounds[i]})
	}
	return ret
}
