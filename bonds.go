/*
 * bonds.go, part of mogura.
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

package chem

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// BondCutoff is the largest distance, in A, at which two atoms are considered bonded.
const BondCutoff = 1.6

// Bond is a pair of atom IDs. Bonds are not stored anywhere, they are
// computed from the coordinates when requested.
type Bond struct {
	I int
	J int
}

// Reverse returns the bond with its ends swapped.
func (B Bond) Reverse() Bond {
	return Bond{I: B.J, J: B.I}
}

func bonded(a, b *Atom) bool {
	return a.Distance(b) <= BondCutoff
}

// BondsIndirected returns every pair of atoms no further apart than BondCutoff,
// each pair once, as (I, J) with I the ID of the later atom in the slice. Pairs are
// ordered by I, then by J. This is an O(n^2) scan; see BondsIndirectedKD.
func BondsIndirected(atoms []*Atom) []Bond {
	bonds := make([]Bond, 0, len(atoms))
	for i := 0; i < len(atoms); i++ {
		for j := 0; j < i; j++ {
			if bonded(atoms[i], atoms[j]) {
				bonds = append(bonds, Bond{I: atoms[i].ID, J: atoms[j].ID})
			}
		}
	}
	return bonds
}

// BondsDirected is like BondsIndirected, but every bond is given twice, (I, J) followed
// by (J, I). It is meant for building adjacency lists.
func BondsDirected(atoms []*Atom) []Bond {
	return Symmetrize(BondsIndirected(atoms))
}

// Symmetrize returns, for each bond in bonds, the bond followed by its reverse.
func Symmetrize(bonds []Bond) []Bond {
	ret := make([]Bond, 0, 2*len(bonds))
	for _, v := range bonds {
		ret = append(ret, v, v.Reverse())
	}
	return ret
}

// BondsIndirectedKD returns exactly what BondsIndirected returns, in the same order,
// but finds the neighbours of each atom with a k-d tree. It is much faster for
// large structures.
func BondsIndirectedKD(atoms []*Atom) []Bond {
	if len(atoms) < 2 {
		return []Bond{}
	}
	pts := make(atomPoints, len(atoms))
	for i, v := range atoms {
		pts[i] = atomPoint{pos: v.Pos(), index: i}
	}
	query := make([]atomPoint, len(pts))
	copy(query, pts)
	tree := kdtree.New(pts, false) //pts gets reordered here.
	r := BondCutoff + 1e-6
	bonds := make([]Bond, 0, len(atoms))
	neigh := make([]int, 0, 16)
	for _, q := range query {
		keeper := kdtree.NewDistKeeper(r * r)
		tree.NearestSet(keeper, q)
		neigh = neigh[:0]
		for _, c := range keeper.Heap {
			if c.Comparable == nil {
				continue //the sentinel
			}
			j := c.Comparable.(atomPoint).index
			if j < q.index && bonded(atoms[q.index], atoms[j]) {
				neigh = append(neigh, j)
			}
		}
		sort.Ints(neigh)
		for _, j := range neigh {
			bonds = append(bonds, Bond{I: atoms[q.index].ID, J: atoms[j].ID})
		}
	}
	return bonds
}

// BondsIndirectedKD returns the bonds of the structure using a k-d tree.
func (S *Structure) BondsIndirectedKD() []Bond { return BondsIndirectedKD(S.atoms) }

// atomPoint is a kdtree.Comparable for one atom position.
type atomPoint struct {
	pos   r3.Vec
	index int //position in the original atom slice
}

func (p atomPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(atomPoint)
	switch d {
	case 0:
		return p.pos.X - q.pos.X
	case 1:
		return p.pos.Y - q.pos.Y
	case 2:
		return p.pos.Z - q.pos.Z
	}
	panic("atomPoint: illegal dimension")
}

func (p atomPoint) Dims() int { return 3 }

// Distance returns the squared distance.
func (p atomPoint) Distance(c kdtree.Comparable) float64 {
	d := r3.Sub(p.pos, c.(atomPoint).pos)
	return r3.Dot(d, d)
}

// atomPoints is a kdtree.Interface.
type atomPoints []atomPoint

func (p atomPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p atomPoints) Len() int                      { return len(p) }
func (p atomPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

// Pivot sorts the points along d and returns the median.
func (p atomPoints) Pivot(d kdtree.Dim) int {
	sort.Slice(p, func(i, j int) bool { return p[i].Compare(p[j], d) < 0 })
	return len(p) / 2
}
