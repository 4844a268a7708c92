/*
 * fermi.go, part of govasp.
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

// FermiMarker is the text that precedes the Fermi energy in the log file.
const FermiMarker = "Fermi energy:"

// ReadFermiEnergy returns the Fermi energy, in eV, found in the log file name.
// The first line containing FermiMarker is used. If no line contains it, an error
// of kind ErrNoFermi is returned.
func ReadFermiEnergy(name string) (float64, error) {
	in, err := openInput(name)
	if err != nil {
		return 0, errDecorate(err, "ReadFermiEnergy")
	}
	defer in.Close()
	e, err := fermiEnergy(in.Reader, name)
	if err != nil {
		return 0, errDecorate(err, "ReadFermiEnergy")
	}
	return e, nil
}

// FermiEnergy is like ReadFermiEnergy, but reads the log from r.
func FermiEnergy(r io.Reader) (float64, error) {
	return fermiEnergy(bufio.NewReader(r), "")
}

func fermiEnergy(r *bufio.Reader, name string) (float64, error) {
	for nline := 1; ; nline++ {
		line, err := readLine(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, newError(ErrRead, name, "FermiEnergy", "reading line %d: %s", nline, err)
		}
		if !strings.Contains(line, FermiMarker) {
			continue
		}
		fields := strings.Split(line, ":")
		val := strings.TrimSpace(fields[len(fields)-1])
		e, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, newError(ErrBadValue, name, "FermiEnergy", "line %d: can't read Fermi energy from '%s'", nline, val)
		}
		return e, nil
	}
	return 0, newError(ErrNoFermi, name, "FermiEnergy", "no line contains '%s'", FermiMarker)
}
