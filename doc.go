/*
 * doc.go, part of govasp.
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

/*Package vasp reads the files that VASP (post-processed with vaspkit) leaves
behind after a band structure or density of states calculation, and prepares
their data for plotting.


	**govasp Capabilities**


    Reads the Fermi energy from an OUTCAR-like log file.

    Reads KLABELS files (high-symmetry point names and their positions
	along the k-path), and finds the discontinuities of the path.

    Reads BAND.dat and TDOS.dat tables (3 columns, whitespace-delimited)
	into Gonum matrices.

    Shifts energies with respect to the Fermi level and splits a
	discontinuous k-path into segments.

All input files can be gzip (.gz) or zstd (.zst) compressed.

The plots themselves are drawn by the vplot subpackage, using the
Gonum plot library.*/
package vasp
