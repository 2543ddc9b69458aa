/*
 * write.go, part of mogura.
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
	"sort"
	"strconv"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/mogura/v3"
	"go.uber.org/zap"
)

// DefaultLevel is the zstd compression level used if none is given.
const DefaultLevel = 11

//Write!

// StfW writes an STF trajectory.
type StfW struct {
	f         io.WriteCloser //nil if the writer doesn't own the destination
	h         io.WriteCloser
	buf       *bufio.Writer
	natoms    int
	filename  string
	writeable bool
	prec      int
}

// NewWriter creates the file name and returns a writer for a trajectory of natoms atoms.
// header is written as key=value lines; a "prec" key sets the precision. The compression
// is chosen from the last letter of name, as for reading. The level is the zstd level
// (1 to 22, default DefaultLevel) or the flate/gzip level (capped to 9).
func NewWriter(name string, natoms int, header map[string]string, compressionLevel ...int) (*StfW, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S, err := NewStreamWriter(f, name, natoms, header, compressionLevel...)
	if err != nil {
		f.Close()
		return nil, errDecorate(err, "NewWriter")
	}
	S.f = f
	return S, nil
}

// NewStreamWriter is like NewWriter, but writes to w. name is only used to pick
// the compression and in error messages. Closing the writer does not close w.
func NewStreamWriter(w io.Writer, name string, natoms int, header map[string]string, compressionLevel ...int) (*StfW, error) {
	level := DefaultLevel
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	flevel := level
	if flevel > flate.BestCompression {
		flevel = flate.BestCompression
	}
	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch formatLetter(name) {
	case 'l':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return lzw.NewWriter(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, flevel) }
	case 'r':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, flevel) }
	default:
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		}
	}
	S := &StfW{natoms: natoms, filename: name, prec: defaultPrec}
	var err error
	S.h, err = AnyNewWriter(w)
	if err != nil {
		return nil, Error{"Can't create compressor: " + err.Error(), S.filename, []string{"NewStreamWriter"}, true}
	}
	S.buf = bufio.NewWriter(S.h)
	S.writeable = true
	if p, ok := header["prec"]; ok {
		prec, err := strconv.Atoi(p)
		if err == nil && prec > 0 {
			S.prec = prec
		} else {
			zap.L().Warn("invalid precision for trajectory, will use the default",
				zap.String("file", S.filename), zap.String("prec", p), zap.Int("default", defaultPrec))
		}
	}
	hdr := make(map[string]string, len(header)+1)
	for k, v := range header {
		hdr[k] = v
	}
	hdr["prec"] = strconv.Itoa(S.prec)
	keys := make([]string, 0, len(hdr))
	for k := range hdr {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(S.buf, "%s=%s\n", k, hdr[k])
	}
	fmt.Fprintf(S.buf, "** %d\n", S.natoms)
	return S, nil
}

func coordsEncode(w io.Writer, f [3]float64, prec int) {
	p := math.Pow(10.0, float64(prec))
	var temp [3]int
	for i, v := range f {
		temp[i] = int(math.RoundToEven(v * p))
	}
	fmt.Fprintf(w, "%d %d %d\n", temp[0], temp[1], temp[2])
}

// WNext writes the coordinates in coord as the next frame. If box is given, and has
// at least 9 elements, they are written as the box vectors of the frame.
func (S *StfW) WNext(coord *v3.Matrix, box ...[]float64) error {
	if !S.writeable {
		return Error{TrajUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if coord == nil {
		return Error{NilCoordinates, S.filename, []string{"WNext"}, true}
	}
	v := coord.NVecs()
	if v != S.natoms {
		return Error{fmt.Sprintf("%d coordinates given, but %d expected", v, S.natoms), S.filename, []string{"WNext"}, true}
	}
	var floats [3]float64
	for i := 0; i < v; i++ {
		floats[0] = coord.At(i, 0)
		floats[1] = coord.At(i, 1)
		floats[2] = coord.At(i, 2)
		coordsEncode(S.buf, floats, S.prec)
	}
	if len(box) > 0 && len(box[0]) >= 9 {
		b := box[0]
		fmt.Fprintf(S.buf, "* %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f\n", b[0],
			b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8])
	} else {
		S.buf.WriteString("*\n")
	}
	return nil
}

// Close flushes the trajectory and closes the file. It must be called, or the
// trajectory will be truncated.
func (S *StfW) Close() error {
	if S == nil || !S.writeable {
		return nil
	}
	S.writeable = false
	err := S.buf.Flush()
	if err2 := S.h.Close(); err == nil {
		err = err2
	}
	if S.f != nil {
		if err2 := S.f.Close(); err == nil {
			err = err2
		}
	}
	if err != nil {
		return Error{"Can't close trajectory: " + err.Error(), S.filename, []string{"Close"}, true}
	}
	return nil
}

// Len returns the number of atoms per frame.
func (S *StfW) Len() int {
	return S.natoms
}
