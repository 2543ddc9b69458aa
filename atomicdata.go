/*
 * atomicdata.go, part of mogura.
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
	"strings"
	"unicode"
)

// Element is a chemical element symbol, capitalized as usual ("C", "Se").
// The empty Element means unknown.
type Element string

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[Element]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Si": 28.08,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

// ParseElement reads an element symbol in any capitalization ("CL", "cl" or "Cl").
// It returns "" and false if the symbol is not known.
func ParseElement(s string) (Element, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	e := Element(strings.ToUpper(s[:1]) + strings.ToLower(s[1:]))
	_, ok := symbolMass[e]
	if !ok {
		return "", false
	}
	return e, true
}

// GuessElement guesses the element from a PDB-style atom name: leading digits are
// dropped and the first letter is used. Two-letter symbols are only taken for ions,
// where the atom name is also the residue name (CL in residue CL-, ZN in ZN), since
// in a protein "CA" is an alpha carbon, not calcium.
func GuessElement(atomName, resName string) Element {
	name := strings.TrimLeftFunc(atomName, unicode.IsDigit)
	if name == "" {
		return ""
	}
	res := strings.Trim(resName, "+-0123456789")
	if len(name) >= 2 && strings.EqualFold(name, res) {
		if e, ok := ParseElement(name[:2]); ok {
			return e
		}
	}
	e, _ := ParseElement(name[:1])
	return e
}

// Mass returns the atomic mass of the element, or 0 if unknown.
func (E Element) Mass() float64 {
	return symbolMass[E]
}

// The residue names that count as protein.
var proteinResNames = []string{
	"ALA", "ARG", "ASN", "ASP", "CYS", "GLN", "GLU", "GLY", "HIS", "ILE", "LEU", "LYS",
	"MET", "PHE", "PRO", "SER", "THR", "TRP", "TYR", "VAL",
	"CYX", "HID", "HIE", "HIP",
}

var backboneNames = []string{"N", "CA", "C", "O", "HA"}

var waterResNames = []string{"HOH", "WAT"}

func isProteinRes(name string) bool {
	return isInString(proteinResNames, name)
}

func isWaterRes(name string) bool {
	return isInString(waterResNames, name) || strings.Contains(name, "TIP")
}

func isIonRes(name string) bool {
	return strings.ContainsAny(name, "+-")
}

// ProteinResNames returns a copy of the residue names that count as protein.
func ProteinResNames() []string {
	return append([]string(nil), proteinResNames...)
}
