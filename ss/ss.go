/*
 * ss.go, part of mogura.
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

package ss

import (
	"strings"

	chem "github.com/rmera/mogura"
	v3 "github.com/rmera/mogura/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Label is the secondary structure of one residue.
type Label byte

const (
	Loop   Label = iota //anything that is not helix or strand, including residues with missing atoms
	Helix               //H
	Strand              //E
)

func (L Label) String() string {
	switch L {
	case Helix:
		return "H"
	case Strand:
		return "E"
	}
	return "Loop"
}

// Code returns the one-letter code for the label: H, E or -.
func (L Label) Code() byte {
	switch L {
	case Helix:
		return 'H'
	case Strand:
		return 'E'
	}
	return '-'
}

// Sequence returns the one-letter codes of labels as a string, e.g. "--HHHH-EE".
func Sequence(labels []Label) string {
	var b strings.Builder
	b.Grow(len(labels))
	for _, v := range labels {
		b.WriteByte(v.Code())
	}
	return b.String()
}

// Regions for each label, in degrees. Both ends are included.
const (
	helixPhiMin, helixPhiMax   = -90.0, -30.0
	helixPsiMin, helixPsiMax   = -77.0, -17.0
	strandPhiMin, strandPhiMax = -150.0, -90.0
	strandPsiMin, strandPsiMax = 90.0, 180.0
)

// Torsion contains the backbone dihedrals of one residue, in degrees.
// Phi is only meaningful if HasPhi is true, and Psi if HasPsi is true.
type Torsion struct {
	Residue *chem.Residue
	Phi     float64
	Psi     float64
	HasPhi  bool
	HasPsi  bool
}

// Label classifies the residue from its dihedrals. Residues lacking either
// dihedral are Loop.
func (T Torsion) Label() Label {
	if !T.HasPhi || !T.HasPsi {
		return Loop
	}
	if in(T.Phi, helixPhiMin, helixPhiMax) && in(T.Psi, helixPsiMin, helixPsiMax) {
		return Helix
	}
	if in(T.Phi, strandPhiMin, strandPhiMax) && in(T.Psi, strandPsiMin, strandPsiMax) {
		return Strand
	}
	return Loop
}

func in(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}

type posFunc func(*chem.Atom) r3.Vec

func topologyPos(at *chem.Atom) r3.Vec { return at.Pos() }

// PhiPsi returns the backbone dihedrals of each residue, using the
// coordinates in the atoms. The residues are taken to be consecutive
// in the chain, in the order given.
func PhiPsi(residues []*chem.Residue) []Torsion {
	return phiPsi(residues, topologyPos)
}

// PhiPsiFrame is like PhiPsi but takes the coordinates from coords, one row per atom ID,
// as in a trajectory frame.
func PhiPsiFrame(residues []*chem.Residue, coords *v3.Matrix) []Torsion {
	return phiPsi(residues, framePos(coords))
}

func framePos(coords *v3.Matrix) posFunc {
	return func(at *chem.Atom) r3.Vec { return coords.Vec(at.ID) }
}

func phiPsi(residues []*chem.Residue, pos posFunc) []Torsion {
	ret := make([]Torsion, len(residues))
	for i, res := range residues {
		ret[i].Residue = res
		n, ca, c := res.Find("N"), res.Find("CA"), res.Find("C")
		if n == nil || ca == nil || c == nil {
			continue
		}
		if i > 0 {
			if cprev := residues[i-1].Find("C"); cprev != nil {
				ret[i].Phi = chem.Dihedral(pos(cprev), pos(n), pos(ca), pos(c))
				ret[i].HasPhi = true
			}
		}
		if i < len(residues)-1 {
			if npost := residues[i+1].Find("N"); npost != nil {
				ret[i].Psi = chem.Dihedral(pos(n), pos(ca), pos(c), pos(npost))
				ret[i].HasPsi = true
			}
		}
	}
	return ret
}

// Classify assigns a label to each residue from its phi and psi dihedrals.
// Each residue is classified on its own; there is no smoothing over neighbours.
func Classify(residues []*chem.Residue) []Label {
	return Labels(PhiPsi(residues))
}

// ClassifyFrame is like Classify but takes the coordinates from coords.
func ClassifyFrame(residues []*chem.Residue, coords *v3.Matrix) []Label {
	return Labels(PhiPsiFrame(residues, coords))
}

// Labels returns the label of each torsion in t.
func Labels(t []Torsion) []Label {
	ret := make([]Label, len(t))
	for i, v := range t {
		ret[i] = v.Label()
	}
	return ret
}

// ResidueFilter filters the torsions by residue name (ex. only GLY, everything but GLY).
// The 3 letter code of the residues to be filtered in or out is in names, whether they are filtered in
// or out depends on shouldBePresent. It returns the filtered data and a slice containing the indexes in
// the new data of the residues in the old data, when they are included, or -1 when they are not included.
func ResidueFilter(torsions []Torsion, names []string, shouldBePresent bool) ([]Torsion, []int) {
	ret := make([]Torsion, 0, len(torsions))
	index := make([]int, len(torsions))
	for key, val := range torsions {
		present := false
		for _, n := range names {
			if val.Residue != nil && val.Residue.MolName == n {
				present = true
				break
			}
		}
		if present == shouldBePresent {
			index[key] = len(ret)
			ret = append(ret, val)
		} else {
			index[key] = -1
		}
	}
	return ret, index
}

// Complete returns only the torsions with both phi and psi defined.
func Complete(torsions []Torsion) []Torsion {
	ret := make([]Torsion, 0, len(torsions))
	for _, v := range torsions {
		if v.HasPhi && v.HasPsi {
			ret = append(ret, v)
		}
	}
	return ret
}
