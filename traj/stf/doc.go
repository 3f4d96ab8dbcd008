/*
 * doc.go, part of gomm2.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 * gomm2 is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

/*Package stf implements the simple trajectory format (STF), used by gomm2 to store the
frames of a dynamics run or a minimization.

An STF file is a text file compressed with Z-standard (or with gzip, if the file name
ends in "z", as in traj.stz or traj.gz). It starts with a header of key=value lines, closed by a line
with "**", one or more spaces and the number of atoms per frame. The header must
contain at least the precision, "prec", a positive integer. gomm2 also stores the
element symbols of the atoms, space separated, under "symbols".

Each frame has one line per atom with the 3 Cartesian coordinates in A, multiplied by
10^prec and rounded to integers, and ends with a line starting with "*", optionally
followed by 9 numbers with the vectors of the simulation box. The "**" sequence only
appears at the end of the header.
*/
package stf
