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
Package asl implements the atom selection language: a small boolean query
language over atoms.

	(resname ALA GLU) and name CA
	not water and not ion
	(index 10 to 20) or protein and (resname ALA)
	resid -3 to 5

The keywords all, protein, water, ion, backbone and sidechain select atoms by
class. resname and name take one or more names and match any of them; resid and
index take either a list of numbers or an inclusive range "N to M". index matches
the atom serial number from the file, not the position of the atom.

"not" binds tightest, then "and", then "or". Parentheses group, and are kept in
the syntax tree as Braket so the query can be printed back. Whitespace is not
significant, but words must be separated: "notprotein" is an unknown keyword.
Names are runs of ASCII letters and digits that are not one of the reserved words
and, or, not and to.

Parse either returns a Selection for the whole query or a *ParseError; there is no
partial success.
*/
package asl
