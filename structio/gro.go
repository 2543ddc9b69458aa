/*
 * gro.go, part of mogura.
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
)

// nm to A
const nm2A = 10.0

// The atom lines of a gro file have fixed columns up to the z coordinate.
const groMinLen = 44

// ReadGRO reads the atoms of the first frame of a Gromacs gro file. Coordinates
// are converted to Angstrom. Gro files have no chains or models, so those are
// left empty and 0.
func ReadGRO(r io.Reader) ([]*chem.Atom, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256), 1<<20)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, malformed(1, "empty file")
	}
	if !scanner.Scan() {
		return nil, malformed(2, "missing atom number")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || natoms < 0 {
		return nil, malformed(2, "can't read atom number %q", scanner.Text())
	}
	atoms := make([]*chem.Atom, 0, natoms)
	for i := 0; i < natoms; i++ {
		lineno := i + 3
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, malformed(lineno, "file ended after %d atoms, %d expected", i, natoms)
		}
		A, err := groAtom(strings.TrimRight(scanner.Text(), "\r"), lineno)
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, A)
	}
	return atoms, scanner.Err()
}

func groAtom(line string, lineno int) (*chem.Atom, error) {
	if len(line) < groMinLen {
		return nil, malformed(lineno, "atom line too short (%d characters)", len(line))
	}
	A := new(chem.Atom)
	var err error
	A.MolID, err = strconv.Atoi(strings.TrimSpace(line[0:5]))
	if err != nil {
		return nil, malformed(lineno, "can't read residue number %q", line[0:5])
	}
	A.MolName = strings.TrimSpace(line[5:10])
	A.Name = strings.TrimSpace(line[10:15])
	//serials wrap around at 100000 in big systems, so we don't fail on them.
	A.Serial, _ = strconv.Atoi(strings.TrimSpace(line[15:20]))
	var c [3]float64
	for i := range c {
		field := strings.TrimSpace(line[20+8*i : 28+8*i])
		c[i], err = strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, malformed(lineno, "can't read coordinate %q", field)
		}
	}
	A.X, A.Y, A.Z = c[0]*nm2A, c[1]*nm2A, c[2]*nm2A
	A.Element = element("", A.Name, A.MolName)
	return A, nil
}
