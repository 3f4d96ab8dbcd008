/*
 * root.go, part of gomm2.
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
	"errors"

	"github.com/google/uuid"
	chem "github.com/rmera/gomm2"
	"github.com/rmera/gomm2/ff"
	"github.com/rmera/gomm2/internal/config"
	"github.com/rmera/gomm2/internal/logging"
	v3 "github.com/rmera/gomm2/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var errNoInput = errors.New("no structure: give an XYZ file or an atom list in the configuration")

//energizer is implemented by force fields that can report their energy.
type energizer interface {
	EnergyByKind() (map[ff.TermKind]float64, error)
	PotentialEnergy() (float64, error)
}

//app is the state shared by the commands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
	runID   string
}

//Flags and the configuration keys they override.
var flagKeys = map[string]string{
	"log-level":      "log.level",
	"log-format":     "log.format",
	"forcefield":     "forcefield",
	"electrostatics": "electrostatics",
	"workers":        "workers",
	"timestep":       "timestep",
	"steps":          "steps",
	"step-size":      "step_size",
	"tolerance":      "tolerance",
	"every":          "every",
	"output":         "output",
	"plot":           "plot",
	"trajectory":     "trajectory",
	"metrics":        "metrics",
}

func newRootCmd() *cobra.Command {
	A := &app{v: config.New()}
	root := &cobra.Command{
		Use:           "gomm2",
		Short:         "MM2 force field calculations on small molecules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return A.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if A.logger != nil {
				_ = A.logger.Sync()
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&A.cfgFile, "config", "c", "", "YAML configuration file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.String("forcefield", "mm2", "force field")
	pf.Bool("electrostatics", false, "include the electrostatic interaction of bond dipole charges")
	pf.Int("workers", 1, "goroutines for the long-range pass")
	pf.Float64("timestep", 1.0, "dynamics timestep, fs")
	pf.Int("steps", 1000, "dynamics or minimization steps")
	pf.Float64("step-size", 0.01, "minimization step, Å")
	pf.Float64("tolerance", 1e-3, "RMS force (mdyn) that ends a minimization")
	pf.Int("every", 100, "steps between reports")
	pf.StringP("output", "o", "", "write the final structure to this XYZ file")
	pf.String("plot", "", "plot the energy trace to this file (png, svg, pdf)")
	pf.String("trajectory", "", "write a frame per report to this STF trajectory (zstd, or gzip if the name ends in z)")
	pf.String("metrics", "", "write Prometheus metrics to this file")
	for flag, key := range flagKeys {
		if err := A.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
	root.AddCommand(A.bondsCmd(), A.forcesCmd(), A.runCmd(), A.minimizeCmd())
	return root
}

func (A *app) init() error {
	cfg, err := config.Load(A.v, A.cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	A.cfg = cfg
	A.runID = uuid.NewString()
	A.logger = logger.With(zap.String("run", A.runID))
	return nil
}

//structure reads the structure from the XYZ file in args, or the one in the configuration,
//or builds it from the atom list of the configuration.
func (A *app) structure(args []string) (*chem.Structure, error) {
	opts := []chem.Option{chem.WithLogger(A.logger.Named("chem"))}
	input := A.cfg.Input
	if len(args) > 0 {
		input = args[0]
	}
	if input != "" {
		return chem.XYZFileRead(input, opts...)
	}
	if len(A.cfg.Atoms) == 0 {
		return nil, errNoInput
	}
	S := chem.NewStructure(opts...)
	for _, a := range A.cfg.Atoms {
		if _, err := S.NewAtom(a.Symbol, v3.New(a.Pos[0], a.Pos[1], a.Pos[2])); err != nil {
			return nil, err
		}
	}
	return S, nil
}

//forceField attaches the configured force field to S.
func (A *app) forceField(S *chem.Structure) (chem.ForceField, energizer, error) {
	F, err := ff.New(A.cfg.ForceField, S,
		ff.WithLogger(A.logger.Named("ff")),
		ff.WithElectrostatics(A.cfg.Electrostatics),
		ff.WithLongRangeWorkers(A.cfg.Workers))
	if err != nil {
		return nil, nil, err
	}
	E, ok := F.(energizer)
	if !ok {
		return nil, nil, errors.New("the force field does not report energies")
	}
	return F, E, nil
}

//finish writes the final structure, if requested.
func (A *app) finish(S *chem.Structure) error {
	if A.cfg.Output == "" {
		return nil
	}
	if err := chem.XYZFileWrite(A.cfg.Output, S); err != nil {
		return err
	}
	A.logger.Info("structure written", zap.String("file", A.cfg.Output))
	return nil
}
