/*
 * geometric.go, part of mogura.
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
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Dihedral returns the dihedral angle defined by the points a, b, c and d,
// in degrees, in the interval (-180,180].
func Dihedral(a, b, c, d r3.Vec) float64 {
	//bma=b minus a
	bma := r3.Sub(b, a)
	cmb := r3.Sub(c, b)
	dmc := r3.Sub(d, c)
	n1 := unit(r3.Cross(bma, cmb))
	n2 := unit(r3.Cross(cmb, dmc))
	first := r3.Dot(r3.Cross(n1, n2), unit(cmb))
	second := r3.Dot(n1, n2)
	dihedral := math.Atan2(first, second)
	if dihedral <= -math.Pi {
		dihedral += 2 * math.Pi
	}
	return Rad2Deg(dihedral)
}

// unit is r3.Unit, except that the unit of the zero vector is the zero vector.
func unit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/n, v)
}
