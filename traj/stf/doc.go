/*
 * doc.go, part of mogura.
 *
 * Copyright 2024 The mogura Authors
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

/*
Package stf reads and writes the simple trajectory format, a compressed text
trajectory format that is easy to read and write from any language.

An STF file may only contain ASCII symbols. It has a header of key=value lines,
ending with a line that starts with "**" followed by one or more spaces and the
number of atoms per frame. The header must give the precision with the key
"prec" (an integer greater than 0). This package writes a precision of 2 unless
told otherwise, and assumes 2 when reading a file that does not give one.

After the header, the file has one line per atom, per frame. Each line contains
3 integers: the x, y and z coordinates in Angstrom, multiplied by 10 to the power
of the precision and rounded. Each frame ends with a line starting with "*",
optionally followed by 9 numbers, the vectors defining the simulation box, in
Angstrom. The "**" sequence can only appear as the header termination.

The whole file is compressed. The last letter of the extension tells how: .stl
is lzw, .stz gzip, .str raw deflate, and .stf (or anything else) z-standard. The
writer takes an optional compression level; the default for zstd is 11.
*/
package stf
