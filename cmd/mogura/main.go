/*
 * main.go, part of mogura.
 *
 * Copyright 2024 The mogura Authors
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
 */

// Command mogura loads a structure, and optionally a trajectory, and reports what
// the viewer would show: bonds, selected atoms, secondary structure and, for
// trajectories, the frames drawn by the playback counter.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	chem "github.com/rmera/mogura"
	"github.com/rmera/mogura/asl"
	"github.com/rmera/mogura/bondgraph"
	"github.com/rmera/mogura/chemplot"
	"github.com/rmera/mogura/ss"
	"github.com/rmera/mogura/structio"
	"github.com/rmera/mogura/traj"
	v3 "github.com/rmera/mogura/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	structure  string
	fetch      string
	trajectory string
	output     string
	config     string
}

// parseArgs reads the command line into opts and a config, where flags override
// the values in the config file.
func parseArgs(args []string, stderr io.Writer) (*options, *Config, error) {
	opts := new(options)
	fs := flag.NewFlagSet("mogura", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.structure, "s", "", "structure file (pdb or gro)")
	fs.StringVar(&opts.fetch, "fetch", "", "PDB ID to download from the RCSB, instead of -s")
	fs.StringVar(&opts.trajectory, "f", "", "trajectory file (stf family or multi-model pdb)")
	fs.StringVar(&opts.output, "o", "", "write the trajectory, or the structure coordinates, to this STF file")
	fs.StringVar(&opts.config, "config", "", "YAML config file")
	sel := fs.String("select", "", "atom selection")
	ticks := fs.Int("ticks", 0, "number of playback ticks to run")
	loop := fs.Bool("loop", false, "loop the trajectory instead of playing it once")
	rama := fs.String("rama", "", "write a Ramachandran plot to this file")
	kd := fs.Bool("kdtree", false, "use a spatial index to find bonds")
	loglevel := fs.String("loglevel", "", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if (opts.structure == "") == (opts.fetch == "") {
		return nil, nil, fmt.Errorf("exactly one of -s and -fetch must be given")
	}
	c, err := LoadConfigFile(opts.config)
	if err != nil {
		return nil, nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "select":
			c.Selection = *sel
		case "ticks":
			c.Playback.Ticks = *ticks
		case "loop":
			if *loop {
				c.Playback.Mode = "loop"
			} else {
				c.Playback.Mode = "once"
			}
		case "rama":
			c.Plot.Rama = *rama
		case "kdtree":
			c.Bonds.SpatialIndex = *kd
		case "loglevel":
			c.Log.Level = *loglevel
		}
	})
	return opts, c, c.Validate()
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, c, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger, err := newLogger(c.Log)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer logger.Sync()
	undo := zap.ReplaceGlobals(logger)
	defer undo()
	if err := analyze(opts, c, stdout); err != nil {
		logger.Error("mogura failed", zap.Error(err))
		return 1
	}
	return 0
}

func loadStructure(opts *options) (*chem.Structure, error) {
	if opts.fetch != "" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		F := &structio.Fetcher{}
		return F.Fetch(ctx, opts.fetch)
	}
	return structio.Load(opts.structure)
}

// summary is what is computed from the topology before anything is shown.
type summary struct {
	bonds     []chem.Bond
	selected  []int
	selBonds  []chem.Bond
	torsions  []ss.Torsion
	labels    []ss.Label
	fragments [][]int
}

// summarize computes bonds and secondary structure concurrently, and returns them
// once both are done. The selection needs the bonds, so it goes with them.
func summarize(S *chem.Structure, sel asl.Selection, kd bool) (*summary, error) {
	sum := new(summary)
	var g errgroup.Group
	g.Go(func() error {
		if kd {
			sum.bonds = S.BondsIndirectedKD()
		} else {
			sum.bonds = S.BondsIndirected()
		}
		sum.selected, sum.selBonds = asl.SelectAtomsBonds(sel, S.Atoms(), sum.bonds)
		G, err := bondgraph.New(S.Atoms(), sum.bonds)
		if err != nil {
			return err
		}
		sum.fragments = G.Fragments()
		return nil
	})
	g.Go(func() error {
		sum.torsions = ss.PhiPsi(S.Residues())
		sum.labels = ss.Labels(sum.torsions)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sum, nil
}

func analyze(opts *options, c *Config, out io.Writer) error {
	S, err := loadStructure(opts)
	if err != nil {
		return err
	}
	if opts.trajectory != "" {
		//frames hold one copy of the system.
		if first := structio.FirstModel(S); first != S {
			zap.L().Info("using the first model as topology", zap.Int("atoms", first.Len()), zap.Int("dropped", S.Len()-first.Len()))
			S = first
		}
	}
	sel, err := asl.Parse(c.Selection)
	if err != nil {
		return err
	}
	zap.L().Info("structure loaded", zap.Int("atoms", S.Len()), zap.Int("residues", len(S.Residues())))
	sum, err := summarize(S, sel, c.Bonds.SpatialIndex)
	if err != nil {
		return err
	}
	cen := S.Center()
	fmt.Fprintf(out, "atoms: %d\nresidues: %d\nbonds: %d\nfragments: %d\n", S.Len(), len(S.Residues()), len(sum.bonds), len(sum.fragments))
	fmt.Fprintf(out, "center: %.3f %.3f %.3f\n", cen.X, cen.Y, cen.Z)
	fmt.Fprintf(out, "selection: %s\nselected atoms: %d\nselected bonds: %d\n", sel, len(sum.selected), len(sum.selBonds))
	fmt.Fprintf(out, "selected mass: %.2f\n", mass(S, sum.selected))
	fmt.Fprintf(out, "secondary structure: %s\n", ss.Sequence(sum.labels))
	if c.Plot.Rama != "" {
		rama, _ := ss.ResidueFilter(ss.Complete(sum.torsions), chem.ProteinResNames(), true)
		if err := chemplot.RamaPlot(rama, nil, "Ramachandran plot", c.Plot.Rama); err != nil {
			return err
		}
		zap.L().Info("Ramachandran plot written", zap.String("file", c.Plot.Rama), zap.Int("residues", len(rama)))
	}
	var T *traj.Trajectory
	if opts.trajectory != "" {
		T, err = traj.Load(S, opts.trajectory)
		if err != nil {
			return err
		}
		zap.L().Info("trajectory loaded", zap.Int("frames", T.NFrame()))
		fmt.Fprintf(out, "frames: %d\n", T.NFrame())
		if err := play(S, T, c.Playback, out); err != nil {
			return err
		}
	}
	if opts.output != "" {
		if T == nil {
			T, err = traj.New(S.Len(), []*v3.Matrix{structureCoords(S)})
			if err != nil {
				return err
			}
		}
		if err := traj.Save(T, opts.output, map[string]string{"source": opts.structure + opts.fetch}); err != nil {
			return err
		}
		zap.L().Info("coordinates written", zap.String("file", opts.output), zap.Int("frames", T.NFrame()))
	}
	return nil
}

// play runs the playback counter for the given number of ticks, printing the
// secondary structure of each redrawn frame. Bonds are the ones from the topology.
func play(S *chem.Structure, T *traj.Trajectory, pc PlaybackConfig, out io.Writer) error {
	P := traj.NewPlayback(T.NFrame())
	if pc.Mode == "loop" {
		P.Loop()
	} else {
		P.Start()
	}
	for i := 0; i < pc.Ticks; i++ {
		id, redraw := P.Tick()
		if !redraw {
			zap.L().Debug("nothing to draw", zap.Int("tick", i), zap.Stringer("state", P.State()))
			continue
		}
		F, err := T.Frame(id)
		if err != nil {
			return err
		}
		labels := ss.ClassifyFrame(S.Residues(), F.Positions())
		fmt.Fprintf(out, "tick %d frame %d: %s\n", i, F.ID(), ss.Sequence(labels))
	}
	return nil
}

// mass returns the sum of the masses of the atoms with the given IDs. Atoms of
// unknown elements count as massless.
func mass(S *chem.Structure, ids []int) float64 {
	var m float64
	for _, id := range ids {
		m += S.Atom(id).Element.Mass()
	}
	return m
}

func structureCoords(S *chem.Structure) *v3.Matrix {
	m := v3.Zeros(S.Len())
	for i, v := range S.Atoms() {
		m.SetVec(i, v.Pos())
	}
	return m
}
