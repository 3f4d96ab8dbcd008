/*
 * config_test.go, part of gomm2.
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(Te *testing.T, text string) string {
	Te.Helper()
	name := filepath.Join(Te.TempDir(), "gomm2.yaml")
	require.NoError(Te, os.WriteFile(name, []byte(text), 0o644))
	return name
}

func TestDefaults(Te *testing.T) {
	c, err := Load(New(), "")
	require.NoError(Te, err)
	assert := assert.New(Te)
	assert.Equal("info", c.Log.Level)
	assert.Equal("console", c.Log.Format)
	assert.Equal("mm2", c.ForceField)
	assert.False(c.Electrostatics)
	assert.Equal(1, c.Workers)
	assert.Equal(1.0, c.Timestep)
	assert.Equal(1000, c.Steps)
	assert.Equal(0.01, c.StepSize)
	assert.Equal(100, c.Every)
	assert.Empty(c.Atoms)
}

func TestFile(Te *testing.T) {
	name := write(Te, `
log:
  level: debug
electrostatics: true
workers: 4
steps: 50
step_size: 0.02
atoms:
  - symbol: C
    pos: [0, 0, 0]
  - symbol: O
    pos: [1.43, 0, 0.0]
`)
	c, err := Load(New(), name)
	require.NoError(Te, err)
	assert := assert.New(Te)
	assert.Equal("debug", c.Log.Level)
	assert.Equal("console", c.Log.Format)
	assert.True(c.Electrostatics)
	assert.Equal(4, c.Workers)
	assert.Equal(50, c.Steps)
	assert.Equal(0.02, c.StepSize)
	require.Len(Te, c.Atoms, 2)
	assert.Equal("O", c.Atoms[1].Symbol)
	assert.Equal([]float64{1.43, 0, 0}, c.Atoms[1].Pos)
}

func TestEnvironment(Te *testing.T) {
	Te.Setenv("GOMM2_STEPS", "7")
	Te.Setenv("GOMM2_LOG_FORMAT", "json")
	name := write(Te, "steps: 50\n")
	c, err := Load(New(), name)
	require.NoError(Te, err)
	assert.Equal(Te, 7, c.Steps)
	assert.Equal(Te, "json", c.Log.Format)
}

func TestValidation(Te *testing.T) {
	for _, text := range []string{
		"log:\n  level: loud\n",
		"log:\n  format: xml\n",
		"forcefield: \"\"\n",
		"workers: 0\n",
		"timestep: -1\n",
		"steps: -3\n",
		"step_size: 0\n",
		"tolerance: -1\n",
		"every: 0\n",
		"atoms:\n  - pos: [0, 0, 0]\n",
		"atoms:\n  - symbol: C\n    pos: [0, 0]\n",
	} {
		_, err := Load(New(), write(Te, text))
		assert.ErrorIs(Te, err, ErrInvalid, text)
	}
	_, err := Load(New(), filepath.Join(Te.TempDir(), "missing.yaml"))
	assert.Error(Te, err)
	assert.NotErrorIs(Te, err, ErrInvalid)
}
