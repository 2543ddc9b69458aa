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
Package chem is the core package of mogura, a molecular structure viewer engine. It
provides the atom, residue and structure types that every other package works on, the
geometric inference of covalent bonds, and a few geometric helpers.

	**mogura capabilities**

	Holds one structural snapshot (a topology) as an ordered slice of atoms, where the
	position of each atom in the slice is also its ID, plus the residues formed by
	contiguous runs of atoms.

	Infers bonds from geometry alone: two atoms are bonded if they are no further apart
	than BondCutoff (1.6 A). Both an O(n^2) pair scan and a k-d tree backed search
	(gonum's spatial/kdtree) are available; they return the same pairs in the same order.

	Classifies atoms as protein, backbone, sidechain, water or ion from their residue and
	atom names.

	Compiles atom selections written in a small query language (package asl), classifies
	protein secondary structure from backbone dihedrals (package ss) and stores and
	animates trajectories (package traj).

Bonds are computed from the topology coordinates only. When a trajectory is animated the
same bond set is reused for every frame; bonds are not recomputed per frame.

All the types in this package are safe for concurrent reads once built. Nothing here
mutates a structure after NewStructure returns.
*/
package chem
