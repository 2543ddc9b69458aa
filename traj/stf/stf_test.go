/*
 * stf_test.go, part of mogura.
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

package stf

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"testing"

	chem "github.com/rmera/mogura"
	v3 "github.com/rmera/mogura/v3"
)

func frames(nframes, natoms int) []*v3.Matrix {
	ret := make([]*v3.Matrix, nframes)
	for f := range ret {
		ret[f] = v3.Zeros(natoms)
		for i := 0; i < natoms; i++ {
			ret[f].Set(i, 0, float64(f)+0.123*float64(i))
			ret[f].Set(i, 1, -float64(i)*1.5)
			ret[f].Set(i, 2, 10.004)
		}
	}
	return ret
}

// Writes and reads back a trajectory with each of the compressors.
func TestSTFWriteRead(Te *testing.T) {
	dir := Te.TempDir()
	in := frames(4, 5)
	box := []float64{50, 0, 0, 0, 50, 0, 0, 0, 50}
	for _, ext := range Extensions {
		name := filepath.Join(dir, "test"+ext)
		wtraj, err := NewWriter(name, 5, map[string]string{"title": "test"})
		if err != nil {
			Te.Fatal(err)
		}
		for _, v := range in {
			if err = wtraj.WNext(v, box); err != nil {
				Te.Fatal(err)
			}
		}
		if err = wtraj.Close(); err != nil {
			Te.Fatal(err)
		}
		rtraj, header, err := New(name)
		if err != nil {
			Te.Fatal(err)
		}
		if header["title"] != "test" || header["prec"] != "2" {
			Te.Errorf("%s: bad header %v", ext, header)
		}
		if rtraj.Len() != 5 {
			Te.Errorf("%s: expected 5 atoms, got %d", ext, rtraj.Len())
		}
		out := v3.Zeros(5)
		rbox := make([]float64, 9)
		i := 0
		for ; ; i++ {
			err = rtraj.Next(out, rbox)
			if err != nil {
				if _, ok := err.(chem.LastFrameError); ok {
					break
				}
				Te.Fatal(err)
			}
			for a := 0; a < 5; a++ {
				for c := 0; c < 3; c++ {
					if math.Abs(out.At(a, c)-in[i].At(a, c)) > 0.005 {
						Te.Errorf("%s: frame %d atom %d: %f vs %f", ext, i, a, out.At(a, c), in[i].At(a, c))
					}
				}
			}
			if rbox[4] != 50 {
				Te.Errorf("%s: bad box %v", ext, rbox)
			}
		}
		if i != 4 {
			Te.Errorf("%s: read %d frames, expected 4", ext, i)
		}
		if rtraj.Readable() {
			Te.Errorf("%s: the trajectory should be closed after the last frame", ext)
		}
	}
}

func TestSTFPrecision(Te *testing.T) {
	var buf bytes.Buffer
	w, err := NewStreamWriter(&buf, "mem.stz", 1, map[string]string{"prec": "4"})
	if err != nil {
		Te.Fatal(err)
	}
	m := v3.Zeros(1)
	m.Set(0, 0, 1.23456)
	if err = w.WNext(m); err != nil {
		Te.Fatal(err)
	}
	if err = w.Close(); err != nil {
		Te.Fatal(err)
	}
	r, _, err := NewReader(&buf, "mem.stz")
	if err != nil {
		Te.Fatal(err)
	}
	out := v3.Zeros(1)
	if err = r.Next(out); err != nil {
		Te.Fatal(err)
	}
	if math.Abs(out.At(0, 0)-1.2346) > 1e-9 {
		Te.Errorf("expected 1.2346, got %f", out.At(0, 0))
	}
	//skipping a frame with nil is fine, and here gives the end.
	err = r.Next(nil)
	if _, ok := err.(chem.LastFrameError); !ok {
		Te.Errorf("expected the end of the trajectory, got %v", err)
	}
}

func TestSTFErrors(Te *testing.T) {
	var buf bytes.Buffer
	w, err := NewStreamWriter(&buf, "mem.stf", 3, nil)
	if err != nil {
		Te.Fatal(err)
	}
	err = w.WNext(v3.Zeros(2))
	var serr Error
	if !errors.As(err, &serr) || !serr.Critical() || serr.Format() != "stf" {
		Te.Errorf("expected a critical stf Error, got %v", err)
	}
	if err = w.WNext(nil); err == nil {
		Te.Errorf("nil coordinates should fail")
	}
	w.WNext(v3.Zeros(3))
	w.Close()
	if err = w.WNext(v3.Zeros(3)); err == nil {
		Te.Errorf("writing to a closed trajectory should fail")
	}
	r, _, err := NewReader(bytes.NewReader(buf.Bytes()), "mem.stf")
	if err != nil {
		Te.Fatal(err)
	}
	if err = r.Next(v3.Zeros(4)); err == nil {
		Te.Errorf("a matrix of the wrong size should fail")
	}
	if _, _, err = New(filepath.Join(Te.TempDir(), "nothere.stf")); err == nil {
		Te.Errorf("opening a missing file should fail")
	}
	if _, _, err = NewReader(bytes.NewReader([]byte("garbage\n")), "mem.stf"); err == nil {
		Te.Errorf("garbage should not read as a trajectory")
	}
}

func TestIsSTF(Te *testing.T) {
	for _, n := range []string{"a.stf", "b.STZ", "c/d.stl", "e.str", "f.sts"} {
		if !IsSTF(n) {
			Te.Errorf("%s should be STF", n)
		}
	}
	for _, n := range []string{"a.xtc", "b.pdb", "stf", "c.st"} {
		if IsSTF(n) {
			Te.Errorf("%s should not be STF", n)
		}
	}
}

func TestSTFMissingBox(Te *testing.T) {
	var buf bytes.Buffer
	w, err := NewStreamWriter(&buf, "mem.stf", 2, nil)
	if err != nil {
		Te.Fatal(err)
	}
	fr := frames(2, 2)
	if err = w.WNext(fr[0]); err != nil {
		Te.Fatal(err)
	}
	if err = w.WNext(fr[1], []float64{30, 0, 0, 0, 30, 0, 0, 0, 30}); err != nil {
		Te.Fatal(err)
	}
	if err = w.Close(); err != nil {
		Te.Fatal(err)
	}
	r, _, err := NewReader(&buf, "mem.stf")
	if err != nil {
		Te.Fatal(err)
	}
	out := v3.Zeros(2)
	box := []float64{7, 7, 7, 7, 7, 7, 7, 7, 7}
	if err = r.Next(out, box); err != nil {
		Te.Fatal(err)
	}
	for i, v := range box {
		if v != 0 {
			Te.Errorf("frame without a box: box[%d] is %f, not 0", i, v)
		}
	}
	if err = r.Next(out, box); err != nil {
		Te.Fatal(err)
	}
	if box[0] != 30 || box[8] != 30 {
		Te.Errorf("bad box %v", box)
	}
}
