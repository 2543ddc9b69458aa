/*
 * stf.go, part of mogura.
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
	"bufio"
	"compress/lzw"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/mogura/v3"
	"go.uber.org/zap"
)

const (
	lzwLitwidth int = 8
	defaultPrec     = 2
)

// Extensions lists the file extensions handled by this package. The last letter
// selects the compression: l for lzw, z for gzip, r for raw deflate, and
// anything else for zstd.
var Extensions = []string{".stf", ".stz", ".stl", ".str", ".sts"}

// IsSTF returns true if name has one of the extensions in Extensions.
func IsSTF(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, v := range Extensions {
		if ext == v {
			return true
		}
	}
	return false
}

func formatLetter(name string) byte {
	if name == "" {
		return 'f'
	}
	return strings.ToLower(name)[len(name)-1]
}

//Read!

// StfR reads an STF trajectory, one frame at a time.
type StfR struct {
	f        io.Closer //nil if not reading from a file
	dec      io.ReadCloser
	h        *bufio.Reader
	natoms   int
	filename string
	prec     int
	readable bool
}

// New opens a STF trajectory for reading, and returns a pointer
// to the handle, a map with the metadata (empty if no metadata is found)
// and error or nil.
func New(name string) (*StfR, map[string]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	S, m, err := NewReader(f, name)
	if err != nil {
		f.Close()
		return nil, nil, errDecorate(err, "New")
	}
	S.f = f
	return S, m, nil
}

// NewReader reads an STF trajectory from r. name is only used to pick the
// decompressor, from its last letter, and in error messages.
func NewReader(r io.Reader, name string) (*StfR, map[string]string, error) {
	S := &StfR{natoms: -1, filename: name, prec: defaultPrec}
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		d, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	}
	switch formatLetter(name) {
	case 'l':
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return lzw.NewReader(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	case 'r':
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return flate.NewReader(a), nil }
	default:
		AnyNewReader = zstdreader
	}
	var err error
	S.dec, err = AnyNewReader(bufio.NewReader(r))
	if err != nil {
		return nil, nil, Error{"Can't read header: " + err.Error(), S.filename, []string{"NewReader"}, true}
	}
	S.h = bufio.NewReader(S.dec)
	m := make(map[string]string)
	for {
		str, err := S.h.ReadString('\n')
		if err != nil {
			S.dec.Close()
			return nil, nil, Error{"Can't read header: " + err.Error(), S.filename, []string{"NewReader"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			nat := strings.Fields(str)
			if len(nat) < 2 {
				S.dec.Close()
				return nil, nil, Error{fmt.Sprintf("Can't read atom number from '%s'", str), S.filename, []string{"NewReader"}, true}
			}
			S.natoms, err = strconv.Atoi(nat[1])
			if err != nil || S.natoms < 0 {
				S.dec.Close()
				return nil, nil, Error{fmt.Sprintf("Can't read atom number from '%s'", nat[1]), S.filename, []string{"NewReader"}, true}
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			S.dec.Close()
			return nil, nil, Error{WrongFormat + ": malformed header line " + str, S.filename, []string{"NewReader"}, true}
		}
		m[kv[0]] = kv[1]
	}
	S.readable = true
	if p, ok := m["prec"]; ok {
		prec, err := strconv.Atoi(p)
		if err == nil && prec > 0 {
			S.prec = prec
		} else {
			zap.L().Warn("invalid precision in trajectory header, will assume the default",
				zap.String("file", S.filename), zap.String("prec", p), zap.Int("default", defaultPrec))
		}
	}
	return S, m, nil
}

// Readable returns true if the handle is readable (if it is possible to call Next on it)
func (S *StfR) Readable() bool {
	return S.readable
}

func coordsDecode(str string, temp *[3]float64, prec int) error {
	p := math.Pow(10.0, float64(prec))
	s := strings.Fields(str)
	if len(s) < 3 {
		return fmt.Errorf("Ill formated coordinates line in stf: Too few fields: %s", str)
	}
	if len(s) > 3 {
		return fmt.Errorf("Ill formated coordinates line in stf: Too many fields: %s", str)
	}
	for i, v := range s {
		f, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("Can't parse coordinate %d (%s). Error: %s", i, v, err.Error())
		}
		temp[i] = float64(f) / p
	}
	return nil
}

// Next puts in the given matrix (c) the coordinates for the next frame of the trajectory
// and, if given, and the information is present, puts the box vector information in box
// Returns error if the operation is not successful. If the error is a chem.LastFrameError,
// the end of the trajectory has been reached, not an actual error. If c is nil, the frame
// is read and checked, but discarded.
func (S *StfR) Next(c *v3.Matrix, box ...[]float64) error {
	if !S.readable {
		return Error{TrajUnIniRead, S.filename, []string{"Next"}, true}
	}
	if c != nil && c.NVecs() != S.natoms {
		return Error{fmt.Sprintf("matrix with %d vectors given, but the trajectory has %d atoms", c.NVecs(), S.natoms), S.filename, []string{"Next"}, true}
	}
	var temp [3]float64
	for i := 0; i < S.natoms; i++ {
		b, err := S.h.ReadString('\n')
		if err != nil {
			// EOF should only happen when reading the first atom
			if err == io.EOF && i == 0 && b == "" {
				//nothing bad happened here, the trajectory just ended.
				S.Close()
				return newlastFrameError(S.filename, "Next")
			}
			return Error{ReadError + ": " + err.Error(), S.filename, []string{"Next"}, true}
		}
		if strings.HasPrefix(b, "*") {
			return Error{fmt.Sprintf("%s: frame ended after %d atoms, %d expected", WrongFormat, i, S.natoms), S.filename, []string{"Next"}, true}
		}
		if err = coordsDecode(b, &temp, S.prec); err != nil {
			return Error{err.Error(), S.filename, []string{"Next"}, true}
		}
		if c == nil {
			continue
		}
		for j, v := range temp {
			c.Set(i, j, v)
		}
	}
	s, err := S.h.ReadString('\n')
	if err != nil && !(err == io.EOF && s != "") {
		if err == io.EOF && S.natoms == 0 {
			S.Close()
			return newlastFrameError(S.filename, "Next")
		}
		return Error{"Can't read the frame termination mark: " + err.Error(), S.filename, []string{"Next"}, true}
	}
	if s[0] != '*' {
		return Error{WrongFormat + ": wrong number of atoms in frame", S.filename, []string{"Next"}, true}
	}
	if len(box) > 0 && len(box[0]) >= 9 {
		S.readBox(s, box[0])
	}
	return nil
}

// readBox reads the box vectors in the frame termination line s. A missing or
// unreadable box is not an error; box is zeroed and a warning is logged.
func (S *StfR) readBox(s string, box []float64) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 10 { // The "*" and the 9 numbers
		zap.L().Warn("trajectory frame does not contain (correct) box information", zap.String("file", S.filename))
		zeroBox(box)
		return
	}
	var errbox error
	for j, v := range fields[1:10] {
		box[j], errbox = strconv.ParseFloat(v, 64)
		if errbox != nil {
			break
		}
	}
	if errbox != nil {
		zap.L().Warn("failed to read box in a trajectory frame", zap.String("file", S.filename), zap.Error(errbox))
		zeroBox(box)
	}
}

func zeroBox(box []float64) {
	for i := range box[:9] {
		box[i] = 0.0
	}
}

// Close closes the object, and marks it as unreadable
func (S *StfR) Close() {
	if !S.readable {
		return
	}
	S.dec.Close()
	if S.f != nil {
		S.f.Close()
	}
	S.readable = false
}

// Len returns the number of atoms in each frame of the trajectory.
func (S *StfR) Len() int {
	return S.natoms
}
