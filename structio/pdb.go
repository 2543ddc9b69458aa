/*
 * pdb.go, part of mogura.
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

package structio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	chem "github.com/rmera/mogura"
	v3 "github.com/rmera/mogura/v3"
)

// The shortest ATOM/HETATM line we accept ends with the z coordinate.
const pdbMinLen = 54

func isAtomRecord(line string) bool {
	return strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM")
}

func modelNumber(line string, lineno int) (int, error) {
	if len(line) <= 6 {
		return 0, malformed(lineno, "MODEL record without a number")
	}
	n, err := strconv.Atoi(strings.TrimSpace(line[6:]))
	if err != nil {
		return 0, malformed(lineno, "can't read model number: %v", err)
	}
	return n, nil
}

// pdbCoords reads the x, y and z coordinates of an ATOM or HETATM line.
func pdbCoords(line string, lineno int) ([3]float64, error) {
	var c [3]float64
	if len(line) < pdbMinLen {
		return c, malformed(lineno, "atom record too short (%d characters)", len(line))
	}
	var err error
	for i := range c {
		field := strings.TrimSpace(line[30+8*i : 38+8*i])
		c[i], err = strconv.ParseFloat(field, 64)
		if err != nil {
			return c, malformed(lineno, "can't read coordinate %q", field)
		}
	}
	return c, nil
}

// pdbAtom parses a valid ATOM or HETATM line. prevSerial is used to number
// atoms whose serial can't be read, as happens in files with more than 99999 atoms.
func pdbAtom(line string, lineno, prevSerial int) (*chem.Atom, error) {
	c, err := pdbCoords(line, lineno)
	if err != nil {
		return nil, err
	}
	A := &chem.Atom{X: c[0], Y: c[1], Z: c[2]}
	A.Serial, err = strconv.Atoi(strings.TrimSpace(line[6:11]))
	if err != nil {
		A.Serial = prevSerial + 1
	}
	A.Name = strings.TrimSpace(line[12:16])
	A.MolName = strings.TrimSpace(line[17:20])
	A.Chain = strings.TrimSpace(line[21:22])
	A.MolID, err = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return nil, malformed(lineno, "can't read residue number %q", line[22:26])
	}
	sym := ""
	if len(line) >= 78 {
		sym = line[76:78]
	}
	A.Element = element(sym, A.Name, A.MolName)
	return A, nil
}

// ReadPDB reads the ATOM and HETATM records in r. All models are read, each atom
// carrying the number of the MODEL record it came after (0 if there is none).
func ReadPDB(r io.Reader) ([]*chem.Atom, error) {
	atoms := make([]*chem.Atom, 0, 1024)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256), 1<<20)
	model := 0
	serial := 0
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case isAtomRecord(line):
			A, err := pdbAtom(line, lineno, serial)
			if err != nil {
				return nil, err
			}
			A.ModelID = model
			serial = A.Serial
			atoms = append(atoms, A)
		case strings.HasPrefix(line, "MODEL"):
			var err error
			if model, err = modelNumber(line, lineno); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return atoms, nil
}

// PDBFrames reads the coordinates in r as a trajectory, one frame per MODEL. A file
// without MODEL records gives a single frame. Models with different numbers of atoms
// are an error.
func PDBFrames(r io.Reader) ([]*v3.Matrix, error) {
	var frames [][]float64
	var curr []float64
	inModel := false
	flush := func(lineno int) error {
		if len(frames) > 0 && len(curr) != len(frames[0]) {
			return malformed(lineno, "model with %d atoms, the first one has %d", len(curr)/3, len(frames[0])/3)
		}
		frames = append(frames, curr)
		curr = nil
		return nil
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256), 1<<20)
	lineno := 1
	for ; scanner.Scan(); lineno++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case isAtomRecord(line):
			c, err := pdbCoords(line, lineno)
			if err != nil {
				return nil, err
			}
			curr = append(curr, c[:]...)
		case strings.HasPrefix(line, "MODEL"):
			if inModel {
				if err := flush(lineno); err != nil {
					return nil, err
				}
			}
			inModel = true
		case strings.HasPrefix(line, "ENDMDL"):
			if err := flush(lineno); err != nil {
				return nil, err
			}
			inModel = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(curr) > 0 || len(frames) == 0 {
		if err := flush(lineno); err != nil {
			return nil, err
		}
	}
	ret := make([]*v3.Matrix, len(frames))
	for i, v := range frames {
		m, err := v3.NewMatrix(v)
		if err != nil {
			return nil, err
		}
		ret[i] = m
	}
	return ret, nil
}
