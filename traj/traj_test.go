/*
 * traj_test.go, part of mogura.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/rmera/mogura"
	"github.com/rmera/mogura/structio"
	v3 "github.com/rmera/mogura/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func coords(nframe, natoms int) []*v3.Matrix {
	ret := make([]*v3.Matrix, nframe)
	for f := range ret {
		ret[f] = v3.Zeros(natoms)
		for i := 0; i < natoms; i++ {
			ret[f].SetVec(i, r3.Vec{X: float64(f), Y: float64(i), Z: 1.5})
		}
	}
	return ret
}

func topology(natoms int) *chem.Structure {
	atoms := make([]*chem.Atom, natoms)
	for i := range atoms {
		atoms[i] = &chem.Atom{Name: "CA", MolName: "ALA", MolID: i + 1, Serial: i + 1}
	}
	return chem.NewStructure(atoms)
}

func TestTrajectory(t *testing.T) {
	T, err := New(3, coords(4, 3))
	require.NoError(t, err)
	assert.Equal(t, 4, T.NFrame())
	assert.Equal(t, 3, T.Len())

	F, err := T.Frame(2)
	require.NoError(t, err)
	assert.Equal(t, 2, F.ID())
	assert.Equal(t, 3, F.Len())
	assert.Equal(t, r3.Vec{X: 2, Y: 1, Z: 1.5}, F.Position(1))

	for _, id := range []int{-1, 4, 100} {
		_, err = T.Frame(id)
		var lerr *LookupError
		require.True(t, errors.As(err, &lerr), "frame %d", id)
		assert.Equal(t, id, lerr.ID)
		assert.Equal(t, 4, lerr.NFrame)
		var cerr chem.Error
		assert.True(t, errors.As(err, &cerr))
	}

	_, err = New(2, coords(4, 3))
	assert.ErrorIs(t, err, ErrAtomCountMismatch)
	_, err = New(3, []*v3.Matrix{nil})
	assert.ErrorIs(t, err, ErrAtomCountMismatch)

	empty, err := New(3, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NFrame())
}

func TestTransition(t *testing.T) {
	cases := []struct {
		state       State
		current     int
		nframe      int
		wantState   State
		wantCurrent int
	}{
		{PlayLoop, 9, 10, PlayLoop, 0},
		{PlayOnce, 9, 10, Stopped, 0},
		{PlayOnce, 3, 10, PlayOnce, 4},
		{PlayLoop, 3, 10, PlayLoop, 4},
		{Stopped, 3, 10, Stopped, 3},
		{ScrubOnce, 3, 10, Stopped, 3},
		{PlayLoop, 0, 1, PlayLoop, 0},
		{PlayOnce, 0, 0, Stopped, 0},
		{PlayLoop, 0, 0, Stopped, 0},
	}
	for _, c := range cases {
		t.Run(c.state.String(), func(t *testing.T) {
			s, cur := Transition(c.state, c.current, c.nframe)
			assert.Equal(t, c.wantState, s)
			assert.Equal(t, c.wantCurrent, cur)
		})
	}
}

func TestPlaybackCounters(t *testing.T) {
	P := NewPlayback(10)
	require.NoError(t, P.Scrub(9))
	P.Loop()
	assert.Equal(t, 0, P.LoopFrameID())
	assert.Equal(t, PlayLoop, P.State())

	P = NewPlayback(10)
	require.NoError(t, P.Scrub(9))
	P.Start()
	assert.Equal(t, 0, P.NextFrameID())
	assert.Equal(t, Stopped, P.State())

	//advancing by hand does not start a stopped playback.
	assert.Equal(t, 1, P.NextFrameID())
	assert.Equal(t, Stopped, P.State())
	assert.Equal(t, 2, P.LoopFrameID())
	assert.Equal(t, Stopped, P.State())

	//nor turns a single run into a loop, or a loop into a single run.
	P = NewPlayback(3)
	P.Start()
	assert.Equal(t, 1, P.LoopFrameID())
	assert.Equal(t, PlayOnce, P.State())
	P.Loop()
	assert.Equal(t, 2, P.NextFrameID())
	assert.Equal(t, 0, P.NextFrameID())
	assert.Equal(t, PlayLoop, P.State())

	require.NoError(t, P.Scrub(2))
	P.Stop()
	require.NoError(t, P.Scrub(2))
	assert.Equal(t, ScrubOnce, P.State())
	assert.Equal(t, 0, P.NextFrameID())
	assert.Equal(t, ScrubOnce, P.State())
}

func TestPlaybackTick(t *testing.T) {
	P := NewPlayback(3)
	f, redraw := P.Tick()
	assert.False(t, redraw)
	assert.Equal(t, 0, f)

	P.Start()
	var drawn []int
	for i := 0; i < 5; i++ {
		if f, redraw := P.Tick(); redraw {
			drawn = append(drawn, f)
		}
	}
	assert.Equal(t, []int{0, 1, 2}, drawn)
	assert.Equal(t, Stopped, P.State())
	assert.Equal(t, 0, P.Current())

	P.Loop()
	drawn = nil
	for i := 0; i < 7; i++ {
		f, _ := P.Tick()
		drawn = append(drawn, f)
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, drawn)
	assert.Equal(t, PlayLoop, P.State())

	//scrubbing while playing keeps playing from the new frame.
	require.NoError(t, P.Scrub(2))
	assert.Equal(t, PlayLoop, P.State())
	f, _ = P.Tick()
	assert.Equal(t, 2, f)

	//scrubbing while stopped redraws exactly once.
	P.Stop()
	require.NoError(t, P.Scrub(1))
	assert.Equal(t, ScrubOnce, P.State())
	f, redraw = P.Tick()
	assert.True(t, redraw)
	assert.Equal(t, 1, f)
	_, redraw = P.Tick()
	assert.False(t, redraw)

	var lerr *LookupError
	assert.True(t, errors.As(P.Scrub(3), &lerr))
	assert.Error(t, P.Scrub(-1))
	assert.Equal(t, 1, P.Current())
}

func TestPlaybackEmpty(t *testing.T) {
	P := NewPlayback(0)
	P.Start()
	assert.Equal(t, Stopped, P.State())
	P.Loop()
	assert.Equal(t, Stopped, P.State())
	_, redraw := P.Tick()
	assert.False(t, redraw)
	assert.Error(t, P.Scrub(0))
	assert.Equal(t, 0, P.NextFrameID())
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	T, err := New(3, coords(5, 3))
	require.NoError(t, err)
	for _, ext := range []string{".stf", ".stz", ".str", ".stl"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "traj"+ext)
			require.NoError(t, Save(T, path, map[string]string{"title": "test"}))
			L, err := Load(topology(3), path)
			require.NoError(t, err)
			require.Equal(t, 5, L.NFrame())
			F, err := L.Frame(4)
			require.NoError(t, err)
			assert.InDelta(t, 4.0, F.Position(2).X, 1e-9)
			assert.InDelta(t, 2.0, F.Position(2).Y, 1e-9)
			assert.InDelta(t, 1.5, F.Position(2).Z, 1e-9)
		})
	}

	_, err = Load(topology(4), filepath.Join(dir, "traj.stf"))
	assert.ErrorIs(t, err, ErrAtomCountMismatch)
	var lerr *chem.LoadError
	assert.True(t, errors.As(err, &lerr))

	assert.ErrorIs(t, Save(T, filepath.Join(dir, "traj.xtc"), nil), chem.ErrUnsupportedExtension)
}

func TestLoadPDB(t *testing.T) {
	var b strings.Builder
	for _, m := range []string{"1", "2"} {
		b.WriteString("MODEL        " + m + "\n")
		b.WriteString("ATOM      1  N   ALA A   1       0.000   0.000   " + m + ".000  1.00  0.00           N\n")
		b.WriteString("ATOM      2  CA  ALA A   1       1.458   0.000   0.000  1.00  0.00           C\n")
		b.WriteString("ENDMDL\n")
	}
	path := filepath.Join(t.TempDir(), "models.pdb")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	T, err := Load(topology(2), path)
	require.NoError(t, err)
	require.Equal(t, 2, T.NFrame())
	F, err := T.Frame(1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, F.Position(0).Z, 1e-9)

	//the same file as topology and trajectory.
	S, err := structio.Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, S.Len())
	_, err = Load(S, path)
	assert.ErrorIs(t, err, ErrAtomCountMismatch)
	T, err = Load(structio.FirstModel(S), path)
	require.NoError(t, err)
	assert.Equal(t, 2, T.NFrame())
	assert.Equal(t, 2, T.Len())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(topology(1), filepath.Join(dir, "traj.xtc"))
	assert.ErrorIs(t, err, chem.ErrUnsupportedExtension)
	_, err = Load(topology(1), filepath.Join(dir, "traj"))
	assert.ErrorIs(t, err, chem.ErrMissingExtension)
	_, err = Load(topology(1), filepath.Join(dir, "missing.stf"))
	var lerr *chem.LoadError
	assert.True(t, errors.As(err, &lerr))
	_, err = Load(topology(1), filepath.Join(dir, "missing.pdb"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
