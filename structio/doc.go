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

// Package structio reads structures from PDB and Gromacs gro files, from disk, from
// memory or from the RCSB web server. Every reader returns a *chem.Structure, with
// dense atom IDs in file order. Failures are *chem.LoadError values wrapping one of
// chem.ErrMissingExtension, chem.ErrUnsupportedExtension or chem.ErrMalformed, or
// the underlying I/O error.
package structio
