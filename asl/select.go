/*
 * select.go, part of mogura.
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

package asl

import (
	"sort"

	chem "github.com/rmera/mogura"
)

// SelectAtoms returns the IDs of the atoms selected by sel, in increasing order.
func SelectAtoms(sel Selection, atoms []*chem.Atom) []int {
	ret := make([]int, 0, len(atoms))
	for _, v := range atoms {
		if sel.Eval(v) {
			ret = append(ret, v.ID)
		}
	}
	if !sort.IntsAreSorted(ret) {
		sort.Ints(ret)
	}
	return ret
}

// SelectAtomsBonds returns the IDs of the atoms selected by sel and the bonds,
// among those given, that have both ends selected. Bonds keep their order.
func SelectAtomsBonds(sel Selection, atoms []*chem.Atom, bonds []chem.Bond) ([]int, []chem.Bond) {
	ids := SelectAtoms(sel, atoms)
	in := make(map[int]struct{}, len(ids))
	for _, v := range ids {
		in[v] = struct{}{}
	}
	sb := make([]chem.Bond, 0, len(bonds)/2)
	for _, b := range bonds {
		_, i := in[b.I]
		_, j := in[b.J]
		if i && j {
			sb = append(sb, b)
		}
	}
	return ids, sb
}
