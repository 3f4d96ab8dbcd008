/*
 * commands.go, part of gomm2.
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

	chem "github.com/rmera/gomm2"
	"github.com/rmera/gomm2/chemgraph"
	"github.com/rmera/gomm2/clash"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (A *app) bondsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bonds [file.xyz]",
		Short: "Print the bonds, hybridizations and fragments of a structure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := A.structure(args)
			if err != nil {
				return err
			}
			bonds, err := S.InferBonds()
			if err != nil {
				return err
			}
			frags := chemgraph.New(S, bonds).Fragments()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d atoms, %d bonds, %d fragments\n", S.Len(), len(bonds), len(frags))
			for _, b := range bonds {
				a1, a2 := b.Atoms()
				fmt.Fprintf(out, "%-6s %-6s %d %8.4f\n", a1, a2, b.Order(), b.Length())
			}
			S.Each(func(_ int, a *chem.Atom) {
				mine := chem.BondsOf(a, bonds)
				a.Rehybridize(mine)
				fmt.Fprintf(out, "%-6s %-4s %d\n", a, a.Hybridization(), len(mine))
			})
			for i, f := range frags {
				fmt.Fprintf(out, "fragment %d: %d atoms\n", i+1, len(f))
			}
			contacts, err := clash.Contacts(S, clash.DefaultScale)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d close contacts\n", len(contacts))
			for _, c := range contacts {
				fmt.Fprintf(out, "%-6s %-6s %8.4f overlap %8.4f\n", c.A, c.B, c.Distance, c.Overlap)
			}
			return nil
		},
	}
}

func (A *app) forcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forces [file.xyz]",
		Short: "Print the energy of a structure, and the force on each atom",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := A.structure(args)
			if err != nil {
				return err
			}
			F, E, err := A.forceField(S)
			if err != nil {
				return err
			}
			if err := F.ComputeForces(); err != nil {
				return err
			}
			s, err := energies(E)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			s.print(out)
			rms, max := forceStats(S)
			fmt.Fprintf(out, "RMS force %.6f mdyn, max %.6f mdyn\n", rms, max)
			S.Each(func(_ int, a *chem.Atom) {
				fmt.Fprintf(out, "%-6s %12.6f %12.6f %12.6f\n", a, a.Force.X, a.Force.Y, a.Force.Z)
			})
			return nil
		},
	}
}

func (A *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [file.xyz]",
		Short: "Run Verlet dynamics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := A.structure(args)
			if err != nil {
				return err
			}
			F, E, err := A.forceField(S)
			if err != nil {
				return err
			}
			s, err := A.newSession(cmd.OutOrStdout(), "run", S, E)
			if err != nil {
				return err
			}
			c := A.cfg
			S.VerletPrep()
			for step := 0; ; step++ {
				if err := cmd.Context().Err(); err != nil {
					s.close()
					return err
				}
				if err := F.ComputeForces(); err != nil {
					s.close()
					return err
				}
				if step%c.Every == 0 || step == c.Steps {
					if err := s.report(step); err != nil {
						s.close()
						return err
					}
				}
				if step == c.Steps {
					break
				}
				S.VerletStep(c.Timestep)
				s.step()
			}
			s.summary()
			return s.close()
		},
	}
}

func (A *app) minimizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minimize [file.xyz]",
		Short: "Minimize the energy by steepest descent",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := A.structure(args)
			if err != nil {
				return err
			}
			_, E, err := A.forceField(S)
			if err != nil {
				return err
			}
			s, err := A.newSession(cmd.OutOrStdout(), "minimize", S, E)
			if err != nil {
				return err
			}
			c := A.cfg
			converged := false
			step := 0
			for step < c.Steps && !converged {
				if err := cmd.Context().Err(); err != nil {
					s.close()
					return err
				}
				//the forces left in the atoms are those before the move.
				if err := S.EnergyMinimizeStep(c.StepSize); err != nil {
					s.close()
					return err
				}
				s.step()
				rms, _ := forceStats(S)
				converged = rms < c.Tolerance
				if step%c.Every == 0 {
					if err := s.report(step); err != nil {
						s.close()
						return err
					}
				}
				step++
			}
			e, err := energies(E)
			if err != nil {
				s.close()
				return err
			}
			A.logger.Info("minimization done", zap.Int("steps", step), zap.Bool("converged", converged))
			fmt.Fprintf(s.out, "final energy after %d steps (converged: %t)\n", step, converged)
			e.print(s.out)
			return s.close()
		},
	}
}
