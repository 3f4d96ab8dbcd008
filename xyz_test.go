/*
 * xyz_test.go, part of gomm2.
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
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const methanolXYZ = `6
methanol
C    -0.0469  0.6617  0.0000
O    -0.0469 -0.7568  0.0000
H    -1.0867  0.9712  0.0000
h     0.4281  1.0763  0.8907
H     0.4281  1.0763 -0.8907
H     0.8733 -1.0536  0.0000
`

func TestXYZRead(Te *testing.T) {
	assert := assert.New(Te)
	S, err := XYZRead(strings.NewReader(methanolXYZ))
	require.NoError(Te, err)
	assert.Equal(6, S.Len())
	assert.Equal("O", S.Atom(1).Symbol())
	assert.Equal("H", S.Atom(3).Symbol())
	assert.InDelta(-0.7568, S.Atom(1).Pos.Y, 1e-12)
	c, ok := S.Meta("comment")
	assert.True(ok)
	assert.Equal("methanol", c)
	bonds, err := S.InferBonds()
	require.NoError(Te, err)
	assert.Len(bonds, 5)

	var buf bytes.Buffer
	require.NoError(Te, XYZWrite(&buf, S))
	S2, err := XYZRead(&buf)
	require.NoError(Te, err)
	require.Equal(Te, S.Len(), S2.Len())
	for i := 0; i < S.Len(); i++ {
		assert.Equal(S.Atom(i).Symbol(), S2.Atom(i).Symbol())
		assert.InDelta(0, S.Atom(i).Pos.Sub(S2.Atom(i).Pos).Norm(), 1e-6)
	}
}

func TestXYZFile(Te *testing.T) {
	S, err := XYZRead(strings.NewReader(methanolXYZ))
	require.NoError(Te, err)
	name := filepath.Join(Te.TempDir(), "m.xyz")
	require.NoError(Te, XYZFileWrite(name, S))
	S2, err := XYZFileRead(name)
	require.NoError(Te, err)
	assert.Equal(Te, 6, S2.Len())
	_, err = XYZFileRead(filepath.Join(Te.TempDir(), "nope.xyz"))
	assert.Error(Te, err)
}

func TestXYZReadErrors(Te *testing.T) {
	_, err := XYZRead(strings.NewReader(""))
	assert.True(Te, errors.Is(err, ErrEmptyStructure))
	_, err = XYZRead(strings.NewReader("two\n\nC 0 0 0\n"))
	assert.Error(Te, err)
	_, err = XYZRead(strings.NewReader("2\n\nC 0 0 0\n"))
	assert.True(Te, errors.Is(err, io.ErrUnexpectedEOF))
	_, err = XYZRead(strings.NewReader("1\n\nXx 0 0 0\n"))
	assert.True(Te, errors.Is(err, ErrUnknownElement))
	_, err = XYZRead(strings.NewReader("1\n\nC 0 a 0\n"))
	assert.Error(Te, err)
	_, err = XYZRead(strings.NewReader("1\n\nC 0 0\n"))
	assert.Error(Te, err)
}
