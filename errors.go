/*
 * errors.go, part of govasp.
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
	"errors"
	"fmt"
	"strings"
)

// The kinds of errors returned by this package. Errors of type *CError
// can be compared against them with errors.Is.
var (
	ErrNoFermi      = errors.New("Fermi energy marker not found")
	ErrBadRow       = errors.New("malformed row")
	ErrBadValue     = errors.New("malformed value")
	ErrEmptyTable   = errors.New("empty table")
	ErrBadOptions   = errors.New("bad options")
	ErrUnableToOpen = errors.New("unable to open file")
	ErrRead         = errors.New("read error")
)

// CError is the error type of this package. It fullfills the Error interface.
type CError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	kind     error
}

func newError(kind error, filename, caller, format string, a ...interface{}) *CError {
	return &CError{
		message:  fmt.Sprintf(format, a...),
		filename: filename,
		deco:     []string{caller},
		kind:     kind,
	}
}

func (err *CError) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("govasp: %s: %s", err.kind, err.message)
	}
	return fmt.Sprintf("govasp: file %s: %s: %s", err.filename, err.kind, err.message)
}

// Decorate adds deco to the call trail of the error, and returns the trail.
// An empty deco adds nothing.
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *CError) FileName() string { return err.filename }

// Trail returns the call trail of the error, innermost call first.
func (err *CError) Trail() string { return strings.Join(err.deco, " <- ") }

// Is reports whether target is the kind of err.
func (err *CError) Is(target error) bool { return target == err.kind }

// errDecorate decorates err with caller if err is one of ours,
// and returns it.
func errDecorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
