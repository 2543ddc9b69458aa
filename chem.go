/*
 * chem.go, part of mogura.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

/**Note: A few functions here panic instead of returning errors. They are the "fundamental"
 * accessors, where the only way to fail is asking for an atom out of bounds, which is
 * a programming error.**/

// Atom is one atom of a structural snapshot. The coordinates are the
// reference (topology) coordinates; trajectory frames never write into them.
type Atom struct {
	ID      int //dense, 0-based, equal to the position of the atom in the structure.
	ModelID int
	Chain   string
	MolID   int //residue id as read from the file. It can be negative.
	MolName string
	Serial  int //the atom serial number in the file. Not an index.
	Name    string
	Element Element //"" if unknown
	X, Y, Z float64
}

//Atom methods

// Pos returns the coordinates of the atom as a vector.
func (A *Atom) Pos() r3.Vec {
	return r3.Vec{X: A.X, Y: A.Y, Z: A.Z}
}

// Distance returns the euclidean distance between A and B, in A.
func (A *Atom) Distance(B *Atom) float64 {
	return r3.Norm(r3.Sub(A.Pos(), B.Pos()))
}

// Copy returns a copy of the Atom.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	n := *A
	return &n
}

// IsProtein returns true if the residue name of the atom is one
// of the amino acid names mogura recognizes.
func (A *Atom) IsProtein() bool {
	return isProteinRes(A.MolName)
}

// IsBackbone returns true for protein atoms named N, CA, C, O or HA.
func (A *Atom) IsBackbone() bool {
	return A.IsProtein() && isInString(backboneNames, A.Name)
}

// IsSidechain returns true for protein atoms that are not backbone.
func (A *Atom) IsSidechain() bool {
	return A.IsProtein() && !isInString(backboneNames, A.Name)
}

// IsWater returns true if the residue is HOH, WAT, or anything containing TIP
// (TIP3, TIP4P, ...).
func (A *Atom) IsWater() bool {
	return isWaterRes(A.MolName)
}

// IsIon returns true if the residue name carries a charge sign (NA+, CL-).
func (A *Atom) IsIon() bool {
	return isIonRes(A.MolName)
}

/*****Residue type***/

// Residue is a contiguous run of atoms sharing model, chain, residue id and residue name.
type Residue struct {
	ID      int //dense, 0-based, position of the residue in the structure.
	ModelID int
	Chain   string
	MolID   int
	MolName string
	Atoms   []*Atom
}

// Find returns the first atom in the residue with the given name, or nil.
func (R *Residue) Find(name string) *Atom {
	for _, v := range R.Atoms {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// Center returns the arithmetic mean of the coordinates of the residue atoms.
func (R *Residue) Center() r3.Vec {
	return center(R.Atoms)
}

// IsProtein returns true if the residue is an amino acid.
func (R *Residue) IsProtein() bool {
	return isProteinRes(R.MolName)
}

// IsWater returns true if the residue is a water molecule.
func (R *Residue) IsWater() bool {
	return isWaterRes(R.MolName)
}

// IsIon returns true if the residue is a charged ion.
func (R *Residue) IsIon() bool {
	return isIonRes(R.MolName)
}

// sameResidue returns true if A belongs to the residue R.
func (R *Residue) sameResidue(A *Atom) bool {
	return R.ModelID == A.ModelID && R.Chain == A.Chain && R.MolID == A.MolID && R.MolName == A.MolName
}

// GroupResidues groups consecutive atoms with the same (model, chain, residue id,
// residue name) into residues. Atoms are expected to be residue-ordered already: a
// residue key that appears twice with something in between gives two residues.
func GroupResidues(atoms []*Atom) []*Residue {
	res := make([]*Residue, 0, len(atoms)/8+1)
	var curr *Residue
	for _, v := range atoms {
		if curr == nil || !curr.sameResidue(v) {
			curr = &Residue{ID: len(res), ModelID: v.ModelID, Chain: v.Chain, MolID: v.MolID, MolName: v.MolName}
			res = append(res, curr)
		}
		curr.Atoms = append(curr.Atoms, v)
	}
	return res
}

/*****Structure type***/

// Structure is one structural snapshot: the atoms, in order, and their residues.
// It implements StructureData. A Structure is not modified after NewStructure returns,
// so it can be shared among goroutines.
type Structure struct {
	atoms    []*Atom
	residues []*Residue
}

// NewStructure builds a Structure from atoms. The ID of each atom is set to its
// position in the slice, and the residues are grouped from contiguous runs.
func NewStructure(atoms []*Atom) *Structure {
	for i, v := range atoms {
		v.ID = i
	}
	return &Structure{atoms: atoms, residues: GroupResidues(atoms)}
}

// Atoms returns the atoms of the structure, ordered by ID.
func (S *Structure) Atoms() []*Atom { return S.atoms }

// Residues returns the residues of the structure, in file order.
func (S *Structure) Residues() []*Residue { return S.residues }

// Len returns the number of atoms.
func (S *Structure) Len() int { return len(S.atoms) }

// Atom returns the Atom with ID i. Panics if out of range.
func (S *Structure) Atom(i int) *Atom {
	if i < 0 || i >= S.Len() {
		panic("Structure: Requested Atom out of bounds")
	}
	return S.atoms[i]
}

// Center returns the arithmetic mean of all the atom coordinates. The
// center of an empty structure is the zero vector.
func (S *Structure) Center() r3.Vec {
	return center(S.atoms)
}

// Protein returns the protein atoms.
func (S *Structure) Protein() []*Atom { return filter(S.atoms, (*Atom).IsProtein) }

// Backbone returns the protein backbone atoms.
func (S *Structure) Backbone() []*Atom { return filter(S.atoms, (*Atom).IsBackbone) }

// Sidechain returns the protein atoms that are not in the backbone.
func (S *Structure) Sidechain() []*Atom { return filter(S.atoms, (*Atom).IsSidechain) }

// Water returns the water atoms.
func (S *Structure) Water() []*Atom { return filter(S.atoms, (*Atom).IsWater) }

// Ion returns the ion atoms.
func (S *Structure) Ion() []*Atom { return filter(S.atoms, (*Atom).IsIon) }

// BondsIndirected returns every bonded pair once. See BondsIndirected.
func (S *Structure) BondsIndirected() []Bond { return BondsIndirected(S.atoms) }

// BondsDirected returns every bonded pair in both directions. See the BondsDirected function.
func (S *Structure) BondsDirected() []Bond { return BondsDirected(S.atoms) }

func filter(atoms []*Atom, f func(*Atom) bool) []*Atom {
	ret := make([]*Atom, 0, len(atoms))
	for _, v := range atoms {
		if f(v) {
			ret = append(ret, v)
		}
	}
	return ret
}

func center(atoms []*Atom) r3.Vec {
	if len(atoms) == 0 {
		return r3.Vec{}
	}
	xs := make([]float64, len(atoms))
	ys := make([]float64, len(atoms))
	zs := make([]float64, len(atoms))
	for i, v := range atoms {
		xs[i], ys[i], zs[i] = v.X, v.Y, v.Z
	}
	n := float64(len(atoms))
	return r3.Vec{X: floats.Sum(xs) / n, Y: floats.Sum(ys) / n, Z: floats.Sum(zs) / n}
}
