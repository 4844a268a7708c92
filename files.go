/*
 * files.go, part of govasp.
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
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// input is an opened, possibly compressed, input file.
type input struct {
	*bufio.Reader
	f  *os.File
	dc io.Closer //the decompressor, if any.
}

func (in *input) Close() error {
	if in.dc != nil {
		in.dc.Close()
	}
	return in.f.Close()
}

// openInput opens the file name for reading. Files ending in .gz are read as gzip,
// those ending in .zst or .zstd as zstd. Anything else is read as it is.
func openInput(name string) (*input, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newError(ErrUnableToOpen, name, "openInput", "%s", err)
	}
	in := &input{f: f}
	var r io.Reader = f
	switch lower := strings.ToLower(name); {
	case strings.HasSuffix(lower, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, newError(ErrUnableToOpen, name, "openInput", "gzip: %s", err)
		}
		in.dc = gz
		r = gz
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"):
		zs, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, newError(ErrUnableToOpen, name, "openInput", "zstd: %s", err)
		}
		rc := zs.IOReadCloser()
		in.dc = rc
		r = rc
	}
	in.Reader = bufio.NewReader(r)
	return in, nil
}

// readLine returns the next line from r, without the trailing newline
// (or carriage return). There is no limit on the line length.
// It returns io.EOF only when there is nothing left to read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	line = strings.TrimRight(line, "\r\n")
	return line, err
}
