/*
 * metrics.go, part of gomm2.
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

//Package metrics keeps Prometheus metrics for a gomm2 run, and writes them in the
//text exposition format, so a node exporter textfile collector can pick them up.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gomm2"

//Recorder holds the metrics of one run.
type Recorder struct {
	reg      *prometheus.Registry
	steps    prometheus.Counter
	stepTime prometheus.Histogram
	energy   *prometheus.GaugeVec
	rms      prometheus.Gauge
	max      prometheus.Gauge
	atoms    prometheus.Gauge
}

//New returns a Recorder for the given command ("run", "minimize"...).
func New(command string) *Recorder {
	labels := prometheus.Labels{"command": command}
	R := &Recorder{
		reg: prometheus.NewRegistry(),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "steps_total",
			Help: "Integration or minimization steps taken.", ConstLabels: labels,
		}),
		stepTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "step_seconds",
			Help:        "Wall time of a step, force computation included.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		energy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "potential_energy_aj",
			Help: "Last potential energy reported, by kind of term.", ConstLabels: labels,
		}, []string{"kind"}),
		rms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "rms_force_mdyn",
			Help: "Last RMS force reported.", ConstLabels: labels,
		}),
		max: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "max_force_mdyn",
			Help: "Last largest force reported.", ConstLabels: labels,
		}),
		atoms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "atoms",
			Help: "Atoms in the structure.", ConstLabels: labels,
		}),
	}
	R.reg.MustRegister(R.steps, R.stepTime, R.energy, R.rms, R.max, R.atoms)
	return R
}

//Registry returns the registry with the metrics.
func (R *Recorder) Registry() *prometheus.Registry {
	return R.reg
}

//Atoms sets the number of atoms.
func (R *Recorder) Atoms(n int) {
	R.atoms.Set(float64(n))
}

//Step counts a step that took d.
func (R *Recorder) Step(d time.Duration) {
	R.steps.Inc()
	R.stepTime.Observe(d.Seconds())
}

//Report sets the energies, by kind, and the RMS and largest forces.
func (R *Recorder) Report(energies map[string]float64, rms, max float64) {
	for k, e := range energies {
		R.energy.WithLabelValues(k).Set(e)
	}
	R.rms.Set(rms)
	R.max.Set(max)
}

//WriteFile writes the metrics to the file name, in the Prometheus text format.
func (R *Recorder) WriteFile(name string) error {
	if err := prometheus.WriteToTextfile(name, R.reg); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}
