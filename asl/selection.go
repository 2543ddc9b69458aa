/*
 * selection.go, part of mogura.
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
	"math"
	"strconv"
	"strings"

	chem "github.com/rmera/mogura"
)

// Selection is a compiled atom selection. The concrete types below
// are the nodes of the syntax tree returned by Parse; none of them is
// modified after parsing, so a Selection can be shared freely.
type Selection interface {
	//Eval returns true if the atom is selected.
	Eval(at *chem.Atom) bool

	//String returns the selection in the query language. For a
	//selection returned by Parse, parsing the string gives back
	//the same tree.
	String() string
}

// All selects every atom.
type All struct{}

// ResName selects atoms whose residue name is in the list.
type ResName []string

// ResID selects atoms whose residue id is in the list.
type ResID []int

// Name selects atoms whose atom name is in the list.
type Name []string

// Index selects atoms whose serial number, as given in the file, is in the list.
// It does not look at the atom ID.
type Index []int

// Protein selects protein atoms.
type Protein struct{}

// Water selects water atoms.
type Water struct{}

// Ion selects ions.
type Ion struct{}

// Backbone selects protein backbone atoms.
type Backbone struct{}

// Sidechain selects protein atoms outside the backbone.
type Sidechain struct{}

// Not negates a selection.
type Not struct {
	Sel Selection
}

// And selects atoms selected by all its members.
type And []Selection

// Or selects atoms selected by any of its members.
type Or []Selection

// Braket is a parenthesized selection. It selects the same as its content.
type Braket struct {
	Sel Selection
}

func (All) Eval(*chem.Atom) bool { return true }

func (S ResName) Eval(at *chem.Atom) bool { return inStrings(S, at.MolName) }

// Eval compares residue ids as signed integers, so negative residue ids
// can be selected.
func (S ResID) Eval(at *chem.Atom) bool { return inInts(S, at.MolID) }

func (S Name) Eval(at *chem.Atom) bool { return inStrings(S, at.Name) }

func (S Index) Eval(at *chem.Atom) bool { return inInts(S, at.Serial) }

func (Protein) Eval(at *chem.Atom) bool   { return at.IsProtein() }
func (Water) Eval(at *chem.Atom) bool     { return at.IsWater() }
func (Ion) Eval(at *chem.Atom) bool       { return at.IsIon() }
func (Backbone) Eval(at *chem.Atom) bool  { return at.IsBackbone() }
func (Sidechain) Eval(at *chem.Atom) bool { return at.IsSidechain() }

func (S Not) Eval(at *chem.Atom) bool { return !S.Sel.Eval(at) }

func (S And) Eval(at *chem.Atom) bool {
	for _, v := range S {
		if !v.Eval(at) {
			return false
		}
	}
	return true
}

func (S Or) Eval(at *chem.Atom) bool {
	for _, v := range S {
		if v.Eval(at) {
			return true
		}
	}
	return false
}

func (S Braket) Eval(at *chem.Atom) bool { return S.Sel.Eval(at) }

func (All) String() string       { return "all" }
func (S ResName) String() string { return "resname " + strings.Join(S, " ") }
func (S ResID) String() string   { return "resid " + numbers(S) }
func (S Name) String() string    { return "name " + strings.Join(S, " ") }
func (S Index) String() string   { return "index " + numbers(S) }
func (Protein) String() string   { return "protein" }
func (Water) String() string     { return "water" }
func (Ion) String() string       { return "ion" }
func (Backbone) String() string  { return "backbone" }
func (Sidechain) String() string { return "sidechain" }
func (S Not) String() string     { return "not " + S.Sel.String() }
func (S And) String() string     { return join(S, " and ") }
func (S Or) String() string      { return join(S, " or ") }
func (S Braket) String() string  { return "(" + S.Sel.String() + ")" }

func join(sels []Selection, sep string) string {
	s := make([]string, len(sels))
	for i, v := range sels {
		s[i] = v.String()
	}
	return strings.Join(s, sep)
}

// numbers prints a list of more than one consecutive, increasing numbers
// as a "to" range.
func numbers(n []int) string {
	if len(n) > 1 && consecutive(n) {
		return strconv.Itoa(n[0]) + " to " + strconv.Itoa(n[len(n)-1])
	}
	s := make([]string, len(n))
	for i, v := range n {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, " ")
}

func consecutive(n []int) bool {
	for i := 1; i < len(n); i++ {
		if n[i-1] == math.MaxInt || n[i] != n[i-1]+1 {
			return false
		}
	}
	return true
}

func inStrings(container []string, test string) bool {
	for _, v := range container {
		if v == test {
			return true
		}
	}
	return false
}

func inInts(container []int, test int) bool {
	for _, v := range container {
		if v == test {
			return true
		}
	}
	return false
}
