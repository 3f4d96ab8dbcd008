/*
 * stf.go, part of gomm2.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 * gomm2 is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package stf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/gomm2"
	v3 "github.com/rmera/gomm2/v3"
)

//DefaultPrec is the precision used when the header does not give one.
const DefaultPrec = 3

var (
	//ErrLastFrame is returned by Next when the trajectory has no more frames. It wraps io.EOF.
	ErrLastFrame = fmt.Errorf("stf: no more frames: %w", io.EOF)
	//ErrFormat is wrapped by the errors produced by ill formed files.
	ErrFormat = errors.New("stf: wrong format")
	//ErrClosed is returned when using a closed trajectory.
	ErrClosed = errors.New("stf: trajectory closed")
)

//gz returns true if the name of the file asks for gzip instead of zstd.
func gz(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), "z")
}

//Writer writes an STF trajectory.
type Writer struct {
	f        *os.File
	h        io.WriteCloser
	buf      *bufio.Writer
	natoms   int
	frames   int
	filename string
	mult     float64
}

//NewWriter creates the file name and writes the header in it. header may be nil. An
//invalid "prec" entry is replaced by DefaultPrec.
func NewWriter(name string, natoms int, header map[string]string) (*Writer, error) {
	W := &Writer{natoms: natoms, filename: name}
	prec := DefaultPrec
	if p, ok := header["prec"]; ok {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			prec = v
		}
	}
	W.mult = math.Pow(10, float64(prec))
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, chem.NewError(err, "stf.NewWriter", "")
	}
	if gz(name) {
		W.h, err = gzip.NewWriterLevel(W.f, gzip.BestCompression)
	} else {
		W.h, err = zstd.NewWriter(W.f, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	}
	if err != nil {
		W.f.Close()
		return nil, chem.NewError(err, "stf.NewWriter", "%s", name)
	}
	W.buf = bufio.NewWriter(W.h)
	keys := make([]string, 0, len(header)+1)
	for k := range header {
		if k != "prec" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	fmt.Fprintf(W.buf, "prec=%d\n", prec)
	for _, k := range keys {
		fmt.Fprintf(W.buf, "%s=%s\n", k, strings.ReplaceAll(header[k], "\n", " "))
	}
	fmt.Fprintf(W.buf, "** %d\n", natoms)
	return W, nil
}

//Len returns the number of atoms per frame.
func (W *Writer) Len() int {
	return W.natoms
}

//Frames returns the number of frames written so far.
func (W *Writer) Frames() int {
	return W.frames
}

//WNext writes a frame with the coordinates in coord and, if given, the box vectors.
func (W *Writer) WNext(coord []v3.Vec, box ...[9]float64) error {
	if W.buf == nil {
		return chem.NewError(ErrClosed, "stf.Writer.WNext", "%s", W.filename)
	}
	if len(coord) != W.natoms {
		return chem.NewError(ErrFormat, "stf.Writer.WNext", "%d coordinates given, but %d expected", len(coord), W.natoms)
	}
	for _, c := range coord {
		fmt.Fprintf(W.buf, "%d %d %d\n", W.encode(c.X), W.encode(c.Y), W.encode(c.Z))
	}
	if len(box) > 0 {
		b := box[0]
		fmt.Fprintf(W.buf, "* %.4f %.4f %.4f %.4f %.4f %.4f %.4f %.4f %.4f\n", b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8])
	} else {
		W.buf.WriteString("*\n")
	}
	W.frames++
	return nil
}

//WStructure writes the positions of the atoms of S as a new frame.
func (W *Writer) WStructure(S *chem.Structure) error {
	coord := make([]v3.Vec, S.Len())
	S.Each(func(i int, a *chem.Atom) {
		coord[i] = a.Pos
	})
	if err := W.WNext(coord); err != nil {
		return chem.ErrDecorate(err, "stf.Writer.WStructure")
	}
	return nil
}

func (W *Writer) encode(x float64) int64 {
	return int64(math.RoundToEven(x * W.mult))
}

//Close flushes the frames, and closes the file. The Writer can't be used after this.
func (W *Writer) Close() error {
	if W.buf == nil {
		return nil
	}
	err := W.buf.Flush()
	W.buf = nil
	if e := W.h.Close(); err == nil {
		err = e
	}
	if e := W.f.Close(); err == nil {
		err = e
	}
	if err != nil {
		return chem.NewError(err, "stf.Writer.Close", "%s", W.filename)
	}
	return nil
}

//Reader reads an STF trajectory.
type Reader struct {
	f        *os.File
	closer   func()
	h        *bufio.Reader
	natoms   int
	filename string
	mult     float64
}

//New opens the STF trajectory name for reading, and returns the reader and the header entries.
func New(name string) (*Reader, map[string]string, error) {
	R := &Reader{filename: name}
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, nil, chem.NewError(err, "stf.New", "")
	}
	var dec io.Reader
	if gz(name) {
		g, err := gzip.NewReader(bufio.NewReader(R.f))
		if err != nil {
			R.f.Close()
			return nil, nil, chem.NewError(ErrFormat, "stf.New", "%s: %v", name, err)
		}
		dec, R.closer = g, func() { g.Close() }
	} else {
		z, err := zstd.NewReader(bufio.NewReader(R.f))
		if err != nil {
			R.f.Close()
			return nil, nil, chem.NewError(ErrFormat, "stf.New", "%s: %v", name, err)
		}
		dec, R.closer = z, z.Close
	}
	R.h = bufio.NewReader(dec)
	header, err := R.readHeader()
	if err != nil {
		R.Close()
		return nil, nil, chem.ErrDecorate(err, "stf.New")
	}
	return R, header, nil
}

func (R *Reader) readHeader() (map[string]string, error) {
	header := make(map[string]string)
	for {
		str, err := R.h.ReadString('\n')
		if err != nil {
			return nil, chem.NewError(ErrFormat, "stf.Reader.readHeader", "%s: unterminated header (%v)", R.filename, err)
		}
		str = strings.TrimSpace(str)
		if strings.HasPrefix(str, "**") {
			f := strings.Fields(str)
			if len(f) < 2 {
				return nil, chem.NewError(ErrFormat, "stf.Reader.readHeader", "no atom number in %q", str)
			}
			R.natoms, err = strconv.Atoi(f[1])
			if err != nil || R.natoms < 0 {
				return nil, chem.NewError(ErrFormat, "stf.Reader.readHeader", "can't read atom number from %q", f[1])
			}
			break
		}
		k, v, ok := strings.Cut(str, "=")
		if !ok {
			return nil, chem.NewError(ErrFormat, "stf.Reader.readHeader", "malformed header line %q", str)
		}
		header[k] = v
	}
	prec, err := strconv.Atoi(header["prec"])
	if err != nil || prec <= 0 {
		return nil, chem.NewError(ErrFormat, "stf.Reader.readHeader", "invalid precision %q", header["prec"])
	}
	R.mult = math.Pow(10, float64(prec))
	return header, nil
}

//Len returns the number of atoms per frame.
func (R *Reader) Len() int {
	return R.natoms
}

//Readable returns true if Next can be called.
func (R *Reader) Readable() bool {
	return R.h != nil
}

//Next reads the next frame into c, which must have room for Len() coordinates, and the box vectors,
//if present in the frame, into box. If c is nil the frame is checked but not kept.
//At the end of the trajectory it returns ErrLastFrame and closes the reader.
func (R *Reader) Next(c []v3.Vec, box ...*[9]float64) error {
	if R.h == nil {
		return chem.NewError(ErrClosed, "stf.Reader.Next", "%s", R.filename)
	}
	if c != nil && len(c) < R.natoms {
		return chem.NewError(ErrFormat, "stf.Reader.Next", "room for %d coordinates, %d needed", len(c), R.natoms)
	}
	for i := 0; i < R.natoms; i++ {
		line, err := R.h.ReadString('\n')
		if err == io.EOF && i == 0 && line == "" {
			R.Close()
			return ErrLastFrame
		}
		if err != nil {
			return chem.NewError(ErrFormat, "stf.Reader.Next", "%s: truncated frame (%v)", R.filename, err)
		}
		v, err := R.decode(line)
		if err != nil {
			return chem.ErrDecorate(err, "stf.Reader.Next")
		}
		if c != nil {
			c[i] = v
		}
	}
	s, err := R.h.ReadString('\n')
	if err != nil && s == "" {
		return chem.NewError(ErrFormat, "stf.Reader.Next", "%s: no frame termination mark", R.filename)
	}
	if !strings.HasPrefix(s, "*") {
		return chem.NewError(ErrFormat, "stf.Reader.Next", "%s: wrong number of atoms in frame", R.filename)
	}
	fields := strings.Fields(s)
	if len(box) > 0 && box[0] != nil && len(fields) == 10 {
		for j, f := range fields[1:] {
			box[0][j], err = strconv.ParseFloat(f, 64)
			if err != nil {
				return chem.NewError(ErrFormat, "stf.Reader.Next", "box vector %q", f)
			}
		}
	}
	return nil
}

func (R *Reader) decode(line string) (v3.Vec, error) {
	s := strings.Fields(line)
	if len(s) != 3 {
		return v3.Zero, chem.NewError(ErrFormat, "stf.Reader.decode", "%d fields in coordinates line %q", len(s), strings.TrimSpace(line))
	}
	var temp [3]float64
	for i, v := range s {
		f, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return v3.Zero, chem.NewError(ErrFormat, "stf.Reader.decode", "coordinate %d (%s)", i, v)
		}
		temp[i] = float64(f) / R.mult
	}
	return v3.New(temp[0], temp[1], temp[2]), nil
}

//Close closes the reader. It can't be used after this.
func (R *Reader) Close() {
	if R.h == nil {
		return
	}
	R.closer()
	R.f.Close()
	R.h = nil
}
