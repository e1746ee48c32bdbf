/*
 * main.go, part of gofrag.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

//gofrag splits the molecules of an SDF (or XYZ) file into rigid fragments. It
//writes the molecules annotated with the keys of their fragments, and a library
//of the unique fragments found, with their connection points and rotation axes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	chem "github.com/rmera/gofrag"
	"github.com/rmera/gofrag/chemjson"
	"github.com/rmera/gofrag/chemplot"
	"github.com/rmera/gofrag/frag"
	"github.com/rmera/gofrag/internal/batch"
	"github.com/rmera/gofrag/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//Set with -ldflags at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "gofrag: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var confFile string
	cmd := &cobra.Command{
		Use:   "gofrag -l ligands.sdf [-o annotated.sdf] [-f fragments.json]",
		Short: "Decompose molecules into rigid fragments",
		Long: `gofrag decomposes each molecule of the input into rigid fragments joined by
rotatable bonds. Rings up to max_ring_size atoms are kept whole and, unless
--no_merge_solitary is given, rotatable bonds whose rotation doesn't change the
shape of the molecule are not cut.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.NewViper()
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v, confFile)
			if err != nil {
				return err
			}
			logger, err := config.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return run(cmd.Context(), cfg, logger)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&confFile, "conf-file", "c", "", "YAML configuration file")
	f.StringP("ligand", "l", "", "input molecules, SDF, or XYZ if the name ends in .xyz")
	f.StringP("output", "o", "", "output SDF with the fragment keys of each molecule")
	f.StringP("fragment", "f", "", "output fragment library, JSON, zstd compressed if the name ends in .zst")
	f.String("log", "", "log file (default standard error)")
	f.Int("max_ring_size", config.DefaultMaxRingSize, "largest ring kept in one fragment, -1 for no limit")
	f.Bool("ins_fragment_id", false, "write the fragment id of each atom, plus 1, as its isotope in the output SDF")
	f.Bool("no_merge_solitary", false, "always cut rotatable bonds, even if rotating them doesn't change the molecule")
	f.Int("workers", runtime.NumCPU(), "number of molecules decomposed at the same time")
	f.String("plot", "", "save a histogram of the fragment sizes to this file")
	f.String("log_level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	f.String("log_format", config.DefaultLogFormat, "log format: console or json")
	return cmd
}

func readLigands(name string) ([]*chem.Molecule, error) {
	if strings.HasSuffix(strings.ToLower(name), ".xyz") {
		mol, err := chem.XYZFileRead(name)
		if err != nil {
			return nil, err
		}
		return []*chem.Molecule{mol}, nil
	}
	return chem.SDFFileRead(name)
}

func writeSDF(name string, mols []*chem.Molecule) error {
	fout, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := chem.SDFWrite(fout, mols); err != nil {
		fout.Close()
		return err
	}
	return fout.Close()
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	mols, err := readLigands(cfg.Ligand)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.Ligand, err)
	}
	logger.Info("molecules read", zap.String("file", cfg.Ligand), zap.Int("molecules", len(mols)))
	O := frag.DefaultOptions()
	O.MaxRingSize(cfg.MaxRingSize)
	O.MergeSolitary(cfg.MergeSolitary)
	O.Logger(logger.Named("frag"))
	R, err := batch.Run(ctx, mols, O, cfg.Workers, logger)
	if err != nil {
		return err
	}
	if cfg.Output != "" {
		if err := writeSDF(cfg.Output, R.Annotated(cfg.InsFragmentID)); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Output, err)
		}
		logger.Info("annotated molecules written", zap.String("file", cfg.Output))
	}
	if cfg.Fragment != "" {
		if err := chemjson.WriteFile(cfg.Fragment, R.Export(cfg.Ligand, O, true)); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Fragment, err)
		}
		logger.Info("fragment library written", zap.String("file", cfg.Fragment), zap.Int("fragments", R.Library.Len()))
	}
	if cfg.Plot != "" {
		if R.Library.Len() == 0 {
			logger.Warn("no fragments to plot")
		} else {
			all, heavy := R.Sizes()
			if err := chemplot.FragmentSizes(all, heavy, "Fragment sizes", cfg.Plot); err != nil {
				return err
			}
			logger.Info("plot saved", zap.String("file", cfg.Plot))
		}
	}
	s := R.Summary()
	logger.Info("summary",
		zap.Int("molecules", s.Molecules),
		zap.Int("decomposed", s.Decomposed),
		zap.Int("failed", s.Failed),
		zap.Int("fragments", s.Fragments),
		zap.Int("unique", s.Unique),
		zap.Float64("fragments_per_molecule", s.FragmentsPerMolecule),
		zap.Float64("atoms_per_fragment", s.AtomsPerFragment))
	return nil
}
