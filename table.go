/*
 * table.go, part of govasp.
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

	"gonum.org/v1/gonum/mat"
)

// TableCols is the number of columns in BAND.dat and TDOS.dat files.
const TableCols = 3

// Table is a whitespace-delimited numeric table, one row per record.
type Table struct {
	d *mat.Dense
}

// Len returns the number of rows in the table.
func (T *Table) Len() int {
	r, _ := T.d.Dims()
	return r
}

// Col returns a copy of the jth column of the table.
func (T *Table) Col(j int) []float64 {
	return mat.Col(nil, j, T.d)
}

// Dense returns the Gonum matrix backing the table. It should not be modified.
func (T *Table) Dense() *mat.Dense {
	return T.d
}

// ReadTable reads a table with cols columns from the file name.
// Blank lines and comments (starting with '#') are ignored. Any other line
// must contain exactly cols numbers, or an error of kind ErrBadRow is returned.
// Nothing is returned unless the whole file could be read.
func ReadTable(name string, cols int) (*Table, error) {
	in, err := openInput(name)
	if err != nil {
		return nil, errDecorate(err, "ReadTable")
	}
	defer in.Close()
	T, err := table(in.Reader, name, cols)
	if err != nil {
		return nil, errDecorate(err, "ReadTable")
	}
	return T, nil
}

// ParseTable is like ReadTable, but reads from r.
func ParseTable(r io.Reader, cols int) (*Table, error) {
	return table(bufio.NewReader(r), "", cols)
}

func table(r *bufio.Reader, name string, cols int) (*Table, error) {
	if cols <= 0 {
		return nil, newError(ErrBadOptions, name, "Table", "%d columns requested", cols)
	}
	data := make([]float64, 0, 1024)
	rows := 0
	for nline := 1; ; nline++ {
		line, err := readLine(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newError(ErrRead, name, "Table", "reading line %d: %s", nline, err)
		}
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != cols {
			return nil, newError(ErrBadRow, name, "Table", "line %d: %d columns expected, %d found", nline, cols, len(fields))
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, newError(ErrBadRow, name, "Table", "line %d: '%s' is not a number", nline, f)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, newError(ErrEmptyTable, name, "Table", "no data rows")
	}
	return &Table{d: mat.NewDense(rows, cols, data)}, nil
}

// BandTable holds the contents of a BAND.dat file: k-point position,
// spin-up and spin-down energies (eV), in path order.
type BandTable struct {
	*Table
}

func (B BandTable) K() []float64    { return B.Col(0) }
func (B BandTable) Up() []float64   { return B.Col(1) }
func (B BandTable) Down() []float64 { return B.Col(2) }

// ReadBandTable reads a BAND.dat file.
func ReadBandTable(name string) (BandTable, error) {
	T, err := ReadTable(name, TableCols)
	if err != nil {
		return BandTable{}, errDecorate(err, "ReadBandTable")
	}
	return BandTable{T}, nil
}

// DosTable holds the contents of a TDOS.dat file: energy (eV), spin-up
// and spin-down densities of states (states/eV).
type DosTable struct {
	*Table
}

func (D DosTable) Energy() []float64 { return D.Col(0) }
func (D DosTable) Up() []float64     { return D.Col(1) }
func (D DosTable) Down() []float64   { return D.Col(2) }

// ReadDosTable reads a TDOS.dat file.
func ReadDosTable(name string) (DosTable, error) {
	T, err := ReadTable(name, TableCols)
	if err != nil {
		return DosTable{}, errDecorate(err, "ReadDosTable")
	}
	return DosTable{T}, nil
}
