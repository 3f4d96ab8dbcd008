/*
 * report.go, part of gomm2.
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

package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	chem "github.com/rmera/gomm2"
	"github.com/rmera/gomm2/chemplot"
	"github.com/rmera/gomm2/ff"
	"github.com/rmera/gomm2/internal/metrics"
	"github.com/rmera/gomm2/traj/stf"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var kinds = []ff.TermKind{ff.LengthKind, ff.AngleKind, ff.TorsionKind, ff.LongRangeKind}

//forceStats returns the RMS and the largest norm of the forces on the atoms of S.
func forceStats(S *chem.Structure) (rms, max float64) {
	if S.Len() == 0 {
		return 0, 0
	}
	norms := make([]float64, S.Len())
	S.Each(func(i int, a *chem.Atom) {
		norms[i] = a.Force.Norm()
	})
	return floats.Norm(norms, 2) / math.Sqrt(float64(len(norms))), floats.Max(norms)
}

//sample holds the energies of a structure at one step.
type sample struct {
	byKind map[ff.TermKind]float64
	total  float64
}

func energies(E energizer) (sample, error) {
	byKind, err := E.EnergyByKind()
	if err != nil {
		return sample{}, err
	}
	total := 0.0
	for _, k := range kinds {
		total += byKind[k]
	}
	return sample{byKind: byKind, total: total}, nil
}

//values returns the energies in the order of kinds, then the total.
func (s sample) values() []float64 {
	vals := make([]float64, 0, len(kinds)+1)
	for _, k := range kinds {
		vals = append(vals, s.byKind[k])
	}
	return append(vals, s.total)
}

func (s sample) labeled() map[string]float64 {
	ret := make(map[string]float64, len(kinds)+1)
	for _, k := range kinds {
		ret[k.String()] = s.byKind[k]
	}
	ret["total"] = s.total
	return ret
}

func (s sample) print(out io.Writer) {
	for _, k := range kinds {
		fmt.Fprintf(out, "%-12s %14.6f aJ %14.4f kcal/mol\n", k, s.byKind[k], s.byKind[k]*chem.AJ2Kcal)
	}
	fmt.Fprintf(out, "%-12s %14.6f aJ %14.4f kcal/mol\n", "total", s.total, s.total*chem.AJ2Kcal)
}

//session follows a dynamics run or a minimization: it prints the reports, and
//keeps the energy trace, the trajectory and the metrics.
type session struct {
	A     *app
	out   io.Writer
	S     *chem.Structure
	E     energizer
	trace *chemplot.Trace
	traj  *stf.Writer
	rec   *metrics.Recorder
	last  time.Time
}

func (A *app) newSession(out io.Writer, command string, S *chem.Structure, E energizer) (*session, error) {
	names := make([]string, 0, len(kinds)+1)
	for _, k := range kinds {
		names = append(names, k.String())
	}
	s := &session{
		A:     A,
		out:   out,
		S:     S,
		E:     E,
		trace: chemplot.NewTrace(fmt.Sprintf("gomm2 %s", command), append(names, "total")...),
		rec:   metrics.New(command),
		last:  time.Now(),
	}
	s.rec.Atoms(S.Len())
	S.SetMeta("comment", fmt.Sprintf("gomm2 %s, run %s", command, A.runID))
	if A.cfg.Trajectory != "" {
		symbols := make([]string, 0, S.Len())
		S.Each(func(_ int, a *chem.Atom) {
			symbols = append(symbols, a.Symbol())
		})
		var err error
		s.traj, err = stf.NewWriter(A.cfg.Trajectory, S.Len(), map[string]string{
			"symbols": strings.Join(symbols, " "),
			"run":     A.runID,
			"command": command,
		})
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

//step counts a step for the metrics.
func (s *session) step() {
	now := time.Now()
	s.rec.Step(now.Sub(s.last))
	s.last = now
}

//report prints and records the energy of the structure at step, and the forces currently on its atoms.
func (s *session) report(step int) error {
	rms, max := forceStats(s.S)
	e, err := energies(s.E)
	if err != nil {
		return err
	}
	if err := s.trace.Record(float64(step), e.values()...); err != nil {
		return err
	}
	if s.traj != nil {
		if err := s.traj.WStructure(s.S); err != nil {
			return err
		}
	}
	s.rec.Report(e.labeled(), rms, max)
	s.A.logger.Debug("step", zap.Int("step", step), zap.Float64("energy", e.total), zap.Float64("rmsForce", rms))
	fmt.Fprintf(s.out, "%8d %14.6f aJ  RMS force %12.6f  max %12.6f\n", step, e.total, rms, max)
	return nil
}

//summary prints the mean and standard deviation of the total energy over the reports.
func (s *session) summary() {
	tot := s.trace.Series("total")
	if len(tot) < 2 {
		return
	}
	mean, sd := stat.MeanStdDev(tot, nil)
	fmt.Fprintf(s.out, "potential energy over %d reports: %.6f +/- %.6f aJ (min %.6f, max %.6f)\n",
		len(tot), mean, sd, floats.Min(tot), floats.Max(tot))
}

//close writes whatever the configuration asks for: trajectory, plot, metrics and final structure.
func (s *session) close() error {
	c := s.A.cfg
	if s.traj != nil {
		frames := s.traj.Frames()
		if err := s.traj.Close(); err != nil {
			return err
		}
		s.A.logger.Info("trajectory written", zap.String("file", c.Trajectory), zap.Int("frames", frames))
	}
	if c.Plot != "" {
		if err := s.trace.Save(c.Plot); err != nil {
			return err
		}
		s.A.logger.Info("energy trace plotted", zap.String("file", c.Plot))
	}
	if c.Metrics != "" {
		if err := s.rec.WriteFile(c.Metrics); err != nil {
			return err
		}
	}
	return s.A.finish(s.S)
}
