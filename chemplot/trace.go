/*
 * trace.go, part of gomm2.
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

package chemplot

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//ErrNoData is returned when plotting a trace with less than 2 points.
var ErrNoData = errors.New("chemplot: not enough points to plot")

//Trace collects one or more named quantities along a simulation (the energy
//of each kind of term, the RMS force, etc.) and plots them as lines against the step.
type Trace struct {
	Title  string
	XLabel string
	YLabel string
	names  []string
	steps  []float64
	values [][]float64 //one slice per name
}

//NewTrace returns an empty trace for the quantities in names.
func NewTrace(title string, names ...string) *Trace {
	T := &Trace{Title: title, XLabel: "Step", YLabel: "Energy (aJ)", names: names}
	T.values = make([][]float64, len(names))
	return T
}

//Names returns the names of the traced quantities.
func (T *Trace) Names() []string {
	return append([]string(nil), T.names...)
}

//Len returns the number of points recorded.
func (T *Trace) Len() int {
	return len(T.steps)
}

//Record adds a point. It needs one value per traced quantity.
func (T *Trace) Record(step float64, values ...float64) error {
	if len(values) != len(T.names) {
		return fmt.Errorf("chemplot: %d values for %d quantities", len(values), len(T.names))
	}
	T.steps = append(T.steps, step)
	for i, v := range values {
		T.values[i] = append(T.values[i], v)
	}
	return nil
}

//Series returns the values recorded for the quantity name, or nil if there is no such quantity.
func (T *Trace) Series(name string) []float64 {
	for i, n := range T.names {
		if n == name {
			return append([]float64(nil), T.values[i]...)
		}
	}
	return nil
}

//Plot builds the plot of the trace, one line per quantity.
func (T *Trace) Plot() (*plot.Plot, error) {
	if T.Len() < 2 {
		return nil, ErrNoData
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = T.Title
	p.X.Label.Text = T.XLabel
	p.Y.Label.Text = T.YLabel
	p.Add(plotter.NewGrid())
	for i, name := range T.names {
		pts := make(plotter.XYs, len(T.steps))
		for j, s := range T.steps {
			pts[j].X = s
			pts[j].Y = T.values[i][j]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("chemplot: %s: %w", name, err)
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = colors(i, len(T.names))
		p.Add(l)
		p.Legend.Add(name, l)
	}
	p.Legend.Top = true
	return p, nil
}

//Save plots the trace to filename. The format is given by the extension
//(png, svg, pdf, etc.)
func (T *Trace) Save(filename string) error {
	p, err := T.Plot()
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("chemplot: saving %s: %w", filename, err)
	}
	return nil
}
