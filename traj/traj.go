/*
 * traj.go, part of mogura.
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

	v3 "github.com/rmera/mogura/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrAtomCountMismatch is returned when a frame doesn't have one position per topology atom.
var ErrAtomCountMismatch = errors.New("frame atom count does not match the topology")

// LookupError is returned when asking for a frame that the trajectory doesn't have.
type LookupError struct {
	ID     int
	NFrame int
	deco   []string
}

func (err *LookupError) Error() string {
	return fmt.Sprintf("frame %d out of range: trajectory has %d frames", err.ID, err.NFrame)
}

// Decorate adds dec to the decoration slice of the error, and returns the slice.
func (err *LookupError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Frame is one snapshot of a trajectory. Positions are aligned by atom ID with the
// topology: the position of the atom with ID i is row i.
type Frame struct {
	id        int
	positions *v3.Matrix
}

// ID returns the index of the frame in its trajectory.
func (F *Frame) ID() int { return F.id }

// Positions returns the coordinates of the frame. They must not be modified.
func (F *Frame) Positions() *v3.Matrix { return F.positions }

// Position returns the position of the atom with ID atomID in this frame.
func (F *Frame) Position(atomID int) r3.Vec { return F.positions.Vec(atomID) }

// Len returns the number of atoms in the frame.
func (F *Frame) Len() int { return F.positions.NVecs() }

// Trajectory is the set of frames of an already-loaded trajectory. It is not
// modified after New returns.
type Trajectory struct {
	natoms int
	frames []*Frame
}

// New builds a trajectory with natoms atoms from the coordinate sets in frames. Each
// set must have exactly natoms vectors. The matrices are not copied.
func New(natoms int, frames []*v3.Matrix) (*Trajectory, error) {
	T := &Trajectory{natoms: natoms, frames: make([]*Frame, len(frames))}
	for i, v := range frames {
		if v == nil || v.NVecs() != natoms {
			n := 0
			if v != nil {
				n = v.NVecs()
			}
			return nil, fmt.Errorf("frame %d: %w: %d positions, %d atoms", i, ErrAtomCountMismatch, n, natoms)
		}
		T.frames[i] = &Frame{id: i, positions: v}
	}
	return T, nil
}

// NFrame returns the number of frames in the trajectory.
func (T *Trajectory) NFrame() int { return len(T.frames) }

// Len returns the number of atoms per frame.
func (T *Trajectory) Len() int { return T.natoms }

// Frame returns the frame with the given id, or a *LookupError if there is none.
func (T *Trajectory) Frame(id int) (*Frame, error) {
	if id < 0 || id >= len(T.frames) {
		return nil, &LookupError{ID: id, NFrame: len(T.frames), deco: []string{"Frame"}}
	}
	return T.frames[id], nil
}
