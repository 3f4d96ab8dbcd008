/*
 * xyz.go, part of gomm2.
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

package chem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/gomm2/v3"
)

//XYZRead reads a structure in XYZ format from r. The options are passed to NewStructure.
//Symbols are case-insensitive. The comment line is kept as the "comment" metadata entry.
func XYZRead(r io.Reader, opts ...Option) (*Structure, error) {
	xyz := bufio.NewScanner(r)
	if !xyz.Scan() {
		return nil, NewError(ErrEmptyStructure, "XYZRead", "no atom count line")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(xyz.Text()))
	if err != nil || natoms < 0 {
		return nil, NewError(err, "XYZRead", "ill formatted atom count %q", xyz.Text())
	}
	S := NewStructure(opts...)
	if xyz.Scan() {
		if c := strings.TrimSpace(xyz.Text()); c != "" {
			S.SetMeta("comment", c)
		}
	}
	for i := 0; i < natoms; i++ {
		if !xyz.Scan() {
			return nil, NewError(io.ErrUnexpectedEOF, "XYZRead", "%d atoms read, %d expected", i, natoms)
		}
		fields := strings.Fields(xyz.Text())
		if len(fields) < 4 {
			return nil, NewError(nil, "XYZRead", "line %d ill formed: %q", i+3, xyz.Text())
		}
		var c [3]float64
		for j := range c {
			c[j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, NewError(err, "XYZRead", "line %d", i+3)
			}
		}
		if _, err := S.NewAtom(normalSymbol(fields[0]), v3.New(c[0], c[1], c[2])); err != nil {
			return nil, ErrDecorate(err, "XYZRead")
		}
	}
	if err := xyz.Err(); err != nil {
		return nil, NewError(err, "XYZRead", "")
	}
	if S.Len() == 0 {
		return nil, NewError(ErrEmptyStructure, "XYZRead", "")
	}
	return S, nil
}

//XYZFileRead reads the XYZ file xyzname.
func XYZFileRead(xyzname string, opts ...Option) (*Structure, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, NewError(err, "XYZFileRead", "")
	}
	defer xyzfile.Close()
	S, err := XYZRead(xyzfile, opts...)
	if err != nil {
		return nil, ErrDecorate(err, "XYZFileRead")
	}
	return S, nil
}

//XYZWrite writes the structure to w in XYZ format. The "comment" metadata entry, if any,
//goes in the comment line.
func XYZWrite(w io.Writer, S *Structure) error {
	comment, _ := S.Meta("comment")
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "%-4d\n%s\n", S.Len(), strings.ReplaceAll(comment, "\n", " "))
	S.Each(func(_ int, a *Atom) {
		fmt.Fprintf(out, "%-2s  %12.6f%12.6f%12.6f\n", a.Symbol(), a.Pos.X, a.Pos.Y, a.Pos.Z)
	})
	if err := out.Flush(); err != nil {
		return NewError(err, "XYZWrite", "")
	}
	return nil
}

//XYZFileWrite writes the structure to the file xyzname, which is created or truncated.
func XYZFileWrite(xyzname string, S *Structure) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return NewError(err, "XYZFileWrite", "")
	}
	if err := XYZWrite(out, S); err != nil {
		out.Close()
		return ErrDecorate(err, "XYZFileWrite")
	}
	if err := out.Close(); err != nil {
		return NewError(err, "XYZFileWrite", "")
	}
	return nil
}

//normalSymbol turns "CL" or "cl" into "Cl".
func normalSymbol(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
