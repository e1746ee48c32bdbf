/*
 * batch.go, part of gofrag.
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

//Package batch decomposes many molecules concurrently and collects their
//fragments into a library of unique fragments.
package batch

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	chem "github.com/rmera/gofrag"
	"github.com/rmera/gofrag/chemjson"
	"github.com/rmera/gofrag/frag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

//FragmentInfo is the SDF data item where the fragment keys of a molecule are written.
const FragmentInfo = "fragment_info"

//Item is the decomposition of one molecule.
type Item struct {
	Index     int
	Mol       *chem.Molecule
	Fragments []*frag.Fragment
	Keys      []string
	Err       error //if not nil, the molecule could not be decomposed and has no fragments.
}

//Result contains the outcome of a Run.
type Result struct {
	RunID   string
	Items   []*Item //in the same order as the input molecules
	Library *Library
	Failed  int
}

//Run decomposes each molecule in mols with frag.DecomposeOptions, using at most
//workers goroutines. Each decomposition is independent, so the only shared state is
//the result slot of each molecule. A molecule that fails is logged and skipped.
//The fragment library is built afterwards, in input order, so the result doesn't
//depend on the scheduling. If ctx is cancelled, no more molecules are started, and
//the partial result is returned with the context's error.
func Run(ctx context.Context, mols []*chem.Molecule, O *frag.Options, workers int, logger *zap.Logger) (*Result, error) {
	if O == nil {
		O = frag.DefaultOptions()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	O.Logger() //makes sure the logger is set before the options are shared.
	R := &Result{RunID: uuid.NewString(), Items: make([]*Item, len(mols)), Library: NewLibrary()}
	logger = logger.With(zap.String("run", R.RunID))
	logger.Info("decomposing", zap.Int("molecules", len(mols)), zap.Int("workers", workers),
		zap.Int("max_ring_size", O.MaxRingSize()), zap.Bool("merge_solitary", O.MergeSolitary()))
	prog := newProgress(len(mols), logger)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, mol := range mols {
		i, mol := i, mol
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			it := &Item{Index: i, Mol: mol}
			it.Fragments, it.Err = frag.DecomposeOptions(mol, O)
			if it.Err != nil {
				logger.Warn("molecule skipped", zap.Int("index", i), zap.String("name", mol.Name), zap.Error(it.Err))
			} else {
				it.Keys = frag.Keys(it.Fragments)
			}
			R.Items[i] = it
			prog.jobDone(len(it.Fragments), it.Err)
			return nil
		})
	}
	err := g.Wait()
	prog.close()
	for _, it := range R.Items {
		if it == nil {
			continue
		}
		if it.Err != nil {
			R.Failed++
			continue
		}
		for j, f := range it.Fragments {
			R.Library.Add(it.Keys[j], f)
		}
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return R, fmt.Errorf("batch: run %s interrupted: %w", R.RunID, err)
	}
	return R, nil
}

//Summary contains statistics of a Run.
type Summary struct {
	Molecules            int
	Decomposed           int
	Failed               int
	Fragments            int
	Unique               int
	FragmentsPerMolecule float64
	FragmentsStdDev      float64
	AtomsPerFragment     float64
	AtomsStdDev          float64
}

//Summary returns the statistics of the decompositions in R.
func (R *Result) Summary() Summary {
	s := Summary{Molecules: len(R.Items), Failed: R.Failed, Unique: R.Library.Len()}
	var perMol, perFrag []float64
	for _, it := range R.Items {
		if it == nil || it.Err != nil {
			continue
		}
		s.Decomposed++
		s.Fragments += len(it.Fragments)
		perMol = append(perMol, float64(len(it.Fragments)))
		for _, f := range it.Fragments {
			perFrag = append(perFrag, float64(f.Len()))
		}
	}
	if len(perMol) > 0 {
		s.FragmentsPerMolecule, s.FragmentsStdDev = stat.MeanStdDev(perMol, nil)
	}
	if len(perFrag) > 0 {
		s.AtomsPerFragment, s.AtomsStdDev = stat.MeanStdDev(perFrag, nil)
	}
	return s
}

//Sizes returns the number of atoms and of heavy atoms of each fragment in the library.
func (R *Result) Sizes() (all, heavy []int) {
	for _, e := range R.Library.Entries() {
		all = append(all, e.Fragment.Len())
		n := 0
		for _, at := range e.Fragment.Atoms {
			if !at.IsHydrogen() {
				n++
			}
		}
		heavy = append(heavy, n)
	}
	return all, heavy
}

//Export returns the library of R, and optionally each decomposition, ready to serialize.
func (R *Result) Export(input string, O *frag.Options, decompositions bool) chemjson.Library {
	lib := chemjson.Library{
		RunID:         R.RunID,
		Input:         input,
		MaxRingSize:   O.MaxRingSize(),
		MergeSolitary: O.MergeSolitary(),
		Molecules:     len(R.Items),
		Failed:        R.Failed,
	}
	for _, e := range R.Library.Entries() {
		lib.Fragments = append(lib.Fragments, chemjson.LibraryEntry{Key: e.Key, Count: e.Count, Fragment: chemjson.EncodeFragment(e.Fragment, e.Key)})
	}
	if !decompositions {
		return lib
	}
	for _, it := range R.Items {
		if it == nil {
			continue
		}
		if it.Err != nil {
			lib.Decompositions = append(lib.Decompositions, chemjson.Decomposition{Index: it.Index, Molecule: it.Mol.Name, Error: it.Err.Error()})
			continue
		}
		lib.Decompositions = append(lib.Decompositions, chemjson.EncodeDecomposition(it.Index, it.Mol, it.Fragments, it.Keys))
	}
	return lib
}

//Annotated returns copies of the decomposed molecules with the fragment keys in the
//FragmentInfo data item, comma separated and in fragment ID order. If fragmentIDs is
//true, the isotope field of each atom is set to the ID of its fragment plus 1.
//Molecules that could not be decomposed are not included.
func (R *Result) Annotated(fragmentIDs bool) []*chem.Molecule {
	ret := make([]*chem.Molecule, 0, len(R.Items))
	for _, it := range R.Items {
		if it == nil || it.Err != nil {
			continue
		}
		mol := it.Mol.Copy()
		if mol.Props == nil {
			mol.Props = make(map[string]string)
		}
		mol.Props[FragmentInfo] = strings.Join(it.Keys, ",")
		if fragmentIDs {
			for i, id := range frag.AtomFragments(mol.Len(), it.Fragments) {
				mol.Atom(i).Isotope = id + 1
			}
		}
		ret = append(ret, mol)
	}
	return ret
}
