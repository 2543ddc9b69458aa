/*
 * load.go, part of mogura.
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

package traj

import (
	"errors"
	"fmt"
	"os"

	chem "github.com/rmera/mogura"
	"github.com/rmera/mogura/structio"
	"github.com/rmera/mogura/traj/stf"
	v3 "github.com/rmera/mogura/v3"
)

// Load reads all the frames of the trajectory in path, for the given topology. The
// format is chosen from the extension: the STF family (see stf.Extensions) or "pdb",
// where each MODEL is a frame. Every frame must have one position per topology atom.
// Errors are *chem.LoadError values.
func Load(topology chem.Atomer, path string) (*Trajectory, error) {
	ext := structio.Ext(path)
	var frames []*v3.Matrix
	var err error
	switch {
	case ext == "":
		return nil, chem.NewLoadError(path, "", chem.ErrMissingExtension, "Load")
	case stf.IsSTF(path):
		frames, err = readSTF(path, topology.Len())
	case ext == "pdb":
		frames, err = readPDB(path)
	default:
		return nil, chem.NewLoadError(path, ext, chem.ErrUnsupportedExtension, "Load")
	}
	if err != nil {
		return nil, chem.NewLoadError(path, ext, err, "Load")
	}
	T, err := New(topology.Len(), frames)
	if err != nil {
		return nil, chem.NewLoadError(path, ext, err, "Load")
	}
	return T, nil
}

func readSTF(path string, natoms int) ([]*v3.Matrix, error) {
	rd, _, err := stf.New(path)
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	if rd.Len() != natoms {
		return nil, fmt.Errorf("%w: %d atoms per frame, %d in the topology", ErrAtomCountMismatch, rd.Len(), natoms)
	}
	var frames []*v3.Matrix
	for {
		m := v3.Zeros(natoms)
		err = rd.Next(m)
		if err != nil {
			var last chem.LastFrameError
			if errors.As(err, &last) {
				break
			}
			return nil, fmt.Errorf("frame %d: %w", len(frames), err)
		}
		frames = append(frames, m)
	}
	return frames, nil
}

func readPDB(path string) ([]*v3.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return structio.PDBFrames(f)
}

// Save writes all the frames of T to path, which must have one of the STF extensions.
// header is written as the STF header.
func Save(T *Trajectory, path string, header map[string]string) error {
	if !stf.IsSTF(path) {
		return chem.NewLoadError(path, structio.Ext(path), chem.ErrUnsupportedExtension, "Save")
	}
	wr, err := stf.NewWriter(path, T.Len(), header)
	if err != nil {
		return err
	}
	for _, v := range T.frames {
		if err = wr.WNext(v.positions); err != nil {
			wr.Close()
			return err
		}
	}
	return wr.Close()
}
