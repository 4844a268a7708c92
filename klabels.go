/*
 * klabels.go, part of govasp.
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
	"bufio"
	"io"
	"strconv"
	"strings"
)

// KLabel is a high-symmetry point along the k-path.
type KLabel struct {
	Name string  //As written in the KLABELS file, i.e. "GAMMA" or "X|Y".
	Pos  float64 //Position along the k-path, in the units of the band table.
}

// Discontinuous returns true if the path breaks at the label. vaspkit writes such
// points as two names joined by a pipe, for instance "X|Y".
func (K KLabel) Discontinuous() bool {
	return strings.Contains(K.Name, "|")
}

// TickLabel returns the name of the label as it should be shown in a plot.
func (K KLabel) TickLabel() string {
	return TickLabel(K.Name)
}

// TickLabel replaces every "GAMMA" in name with a Γ.
func TickLabel(name string) string {
	return strings.ReplaceAll(name, "GAMMA", "Γ")
}

// ReadKLabels reads a KLABELS file. Every line with exactly two fields
// is taken as a name and a position. Other lines (the header and the notes
// vaspkit appends, for instance) are ignored.
func ReadKLabels(name string) ([]KLabel, error) {
	in, err := openInput(name)
	if err != nil {
		return nil, errDecorate(err, "ReadKLabels")
	}
	defer in.Close()
	labels, err := kLabels(in.Reader, name)
	if err != nil {
		return nil, errDecorate(err, "ReadKLabels")
	}
	return labels, nil
}

// KLabels is like ReadKLabels, but reads from r.
func KLabels(r io.Reader) ([]KLabel, error) {
	return kLabels(bufio.NewReader(r), "")
}

func kLabels(r *bufio.Reader, name string) ([]KLabel, error) {
	labels := make([]KLabel, 0, 10)
	for nline := 1; ; nline++ {
		line, err := readLine(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newError(ErrRead, name, "KLabels", "reading line %d: %s", nline, err)
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		pos, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, newError(ErrBadValue, name, "KLabels", "line %d: can't read the position of label %s from '%s'", nline, fields[0], fields[1])
		}
		labels = append(labels, KLabel{Name: fields[0], Pos: pos})
	}
	return labels, nil
}

// Discontinuities returns the positions of the labels where the k-path breaks,
// in the order they appear in labels.
func Discontinuities(labels []KLabel) []float64 {
	var ret []float64
	for _, v := range labels {
		if v.Discontinuous() {
			ret = append(ret, v.Pos)
		}
	}
	return ret
}
