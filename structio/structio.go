/*
 * structio.go, part of mogura.
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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	chem "github.com/rmera/mogura"
)

// Ext returns the extension of name, lowercase and without the leading dot.
func Ext(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// Load reads the structure in the file path. The format is chosen from the
// extension: "pdb" or "gro".
func Load(path string) (*chem.Structure, error) {
	ext := Ext(path)
	if ext == "" {
		return nil, chem.NewLoadError(path, "", chem.ErrMissingExtension, "Load")
	}
	if !supported(ext) {
		return nil, chem.NewLoadError(path, ext, chem.ErrUnsupportedExtension, "Load")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, chem.NewLoadError(path, ext, err, "Load")
	}
	defer f.Close()
	S, err := read(f, ext)
	if err != nil {
		return nil, chem.NewLoadError(path, ext, err, "Load")
	}
	return S, nil
}

// LoadContent reads a structure from content, in the format given by ext
// (with or without the leading dot).
func LoadContent(content, ext string) (*chem.Structure, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return nil, chem.NewLoadError("", "", chem.ErrMissingExtension, "LoadContent")
	}
	S, err := read(strings.NewReader(content), ext)
	if err != nil {
		return nil, chem.NewLoadError("", ext, err, "LoadContent")
	}
	return S, nil
}

// FirstModel returns a structure with copies of the atoms of the first model in S,
// or S itself if it has a single model. A multi-model PDB read as a topology has one
// copy of the system per MODEL, while read as a trajectory each MODEL is a frame, so
// its first model is the topology that matches those frames.
func FirstModel(S *chem.Structure) *chem.Structure {
	if S.Len() == 0 {
		return S
	}
	model := S.Atom(0).ModelID
	atoms := make([]*chem.Atom, 0, S.Len())
	for _, v := range S.Atoms() {
		if v.ModelID != model {
			continue
		}
		atoms = append(atoms, v.Copy())
	}
	if len(atoms) == S.Len() {
		return S
	}
	return chem.NewStructure(atoms)
}

func supported(ext string) bool {
	return ext == "pdb" || ext == "gro"
}

func read(r io.Reader, ext string) (*chem.Structure, error) {
	var atoms []*chem.Atom
	var err error
	switch ext {
	case "pdb":
		atoms, err = ReadPDB(r)
	case "gro":
		atoms, err = ReadGRO(r)
	default:
		return nil, chem.ErrUnsupportedExtension
	}
	if err != nil {
		return nil, err
	}
	return chem.NewStructure(atoms), nil
}

// malformed returns an error wrapping chem.ErrMalformed, pointing to line number lineno.
func malformed(lineno int, format string, a ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", chem.ErrMalformed, lineno, fmt.Sprintf(format, a...))
}

// element reads the element symbol sym, or guesses it from the atom and
// residue names if sym is empty or not a valid symbol.
func element(sym, name, resname string) chem.Element {
	if e, ok := chem.ParseElement(strings.TrimSpace(sym)); ok {
		return e
	}
	return chem.GuessElement(name, resname)
}
