/*
 * metrics_test.go, part of gomm2.
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

package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(Te *testing.T) {
	R := New("run")
	R.Atoms(6)
	for i := 0; i < 5; i++ {
		R.Step(time.Millisecond)
	}
	R.Report(map[string]float64{"length": 0.5, "total": 0.75}, 0.01, 0.05)
	R.Report(map[string]float64{"length": 0.25, "total": 0.5}, 0.02, 0.04)
	assert.Equal(Te, 5.0, testutil.ToFloat64(R.steps))
	assert.Equal(Te, 0.25, testutil.ToFloat64(R.energy.WithLabelValues("length")))
	assert.Equal(Te, 0.02, testutil.ToFloat64(R.rms))
	assert.Equal(Te, 6.0, testutil.ToFloat64(R.atoms))
	n, err := testutil.GatherAndCount(R.Registry(), "gomm2_potential_energy_aj")
	require.NoError(Te, err)
	assert.Equal(Te, 2, n)

	name := filepath.Join(Te.TempDir(), "gomm2.prom")
	require.NoError(Te, R.WriteFile(name))
	b, err := os.ReadFile(name)
	require.NoError(Te, err)
	text := string(b)
	assert.True(Te, strings.Contains(text, `gomm2_steps_total{command="run"} 5`), text)
	assert.Contains(Te, text, "gomm2_step_seconds_bucket")
	assert.Contains(Te, text, `gomm2_max_force_mdyn{command="run"} 0.04`)
}
