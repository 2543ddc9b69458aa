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
Package ss assigns secondary structure (helix, strand or loop) to protein residues
from their backbone phi and psi dihedrals.

For residue i, phi is the dihedral C(i-1) N(i) CA(i) C(i) and psi is
N(i) CA(i) C(i) N(i+1). A residue is a helix (H) if phi is in [-90,-30] and psi in
[-77,-17], and a strand (E) if phi is in [-150,-90] and psi in [90,180]. Anything
else is Loop, and so is any residue lacking N, CA or C, or whose phi or psi can't
be measured (first and last residues, neighbours with missing atoms). A missing
atom is not an error.
*/
package ss
