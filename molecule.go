/*
 * molecule.go, part of gofrag.
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

package chem

import (
	"fmt"

	"github.com/rmera/gofrag/chemgraph"
	v3 "github.com/rmera/gofrag/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Molecule contains an ordered set of atoms, the bonds between them, and one
//set of coordinates. Atom i has its coordinates in the vector i of Coords.
type Molecule struct {
	Name   string
	Atoms  []*Atom
	Bonds  []*Bond
	Coords *v3.Matrix
	Props  map[string]string //additional data, e.g. SDF data items.
}

//NewMolecule makes a molecule with the given atoms, coordinates and bonds,
//fills the atom and bond indexes, and checks that everything is consistent.
//The slices are used, not copied.
func NewMolecule(atoms []*Atom, coords *v3.Matrix, bonds []*Bond) (*Molecule, error) {
	M := &Molecule{Atoms: atoms, Coords: coords, Bonds: bonds}
	M.FillIndexes()
	if err := M.Check(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return M, nil
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the Atom corresponding to the index i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() || i < 0 {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

//Coord returns the coordinates of the atom with index i.
func (M *Molecule) Coord(i int) r3.Vec {
	return M.Coords.Vec(i)
}

//FillIndexes sets the index of each atom to its position in the molecule,
//and the index of each bond to its position in the bond slice.
func (M *Molecule) FillIndexes() {
	for i, at := range M.Atoms {
		at.index = i
	}
	for i, b := range M.Bonds {
		b.Index = i
	}
}

//Check returns an error if the coordinates don't match the atoms, or if a
//bond references an atom that is not in the molecule, or joins an atom with itself.
func (M *Molecule) Check() error {
	if M.Len() > 0 && M.Coords == nil {
		return newError(ErrNilCoords, "Check", nil)
	}
	if M.Coords != nil && M.Coords.NVecs() != M.Len() {
		return newError(fmt.Sprintf("%s: %d coordinates, %d atoms", ErrCoordsMismatch, M.Coords.NVecs(), M.Len()), "Check", nil)
	}
	for i, b := range M.Bonds {
		if b.At1 < 0 || b.At2 < 0 || b.At1 >= M.Len() || b.At2 >= M.Len() {
			return newError(fmt.Sprintf("%s: bond %d (%d-%d), %d atoms", ErrBondRange, i, b.At1, b.At2, M.Len()), "Check", nil)
		}
		if b.At1 == b.At2 {
			return newError(fmt.Sprintf("%s: bond %d, atom %d", ErrSelfBond, i, b.At1), "Check", nil)
		}
	}
	return nil
}

//Pairs returns the atom indexes of each bond, in the order of the bonds.
func (M *Molecule) Pairs() []chemgraph.Pair {
	ret := make([]chemgraph.Pair, len(M.Bonds))
	for i, b := range M.Bonds {
		ret[i] = chemgraph.Pair{b.At1, b.At2}
	}
	return ret
}

//Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	r := &Molecule{Name: M.Name}
	r.Atoms = make([]*Atom, len(M.Atoms))
	for i, at := range M.Atoms {
		r.Atoms[i] = at.Copy()
	}
	r.Bonds = make([]*Bond, len(M.Bonds))
	for i, b := range M.Bonds {
		r.Bonds[i] = b.Copy()
	}
	r.Coords = M.Coords.Clone()
	if M.Props != nil {
		r.Props = make(map[string]string, len(M.Props))
		for k, v := range M.Props {
			r.Props[k] = v
		}
	}
	return r
}

//AppendAtom appends a copy of at, with coordinates pos, at the end of the molecule.
//The copy keeps the ID of at.
func (M *Molecule) AppendAtom(at *Atom, pos r3.Vec) {
	n := at.Copy()
	n.index = M.Len()
	M.Atoms = append(M.Atoms, n)
	coords := v3.Zeros(M.Len())
	coords.Stack(M.Coords, v3.FromVecs([]r3.Vec{pos}))
	M.Coords = coords
}

//AppendBond appends a copy of b to the molecule. The atom indexes of b
//must refer to atoms already in the molecule. Panics otherwise.
func (M *Molecule) AppendBond(b *Bond) {
	if b.At1 < 0 || b.At2 < 0 || b.At1 >= M.Len() || b.At2 >= M.Len() {
		panic(ErrBondRange)
	}
	n := b.Copy()
	n.Index = len(M.Bonds)
	M.Bonds = append(M.Bonds, n)
}

//AppendMolecule appends copies of all atoms and bonds of o at the end of the molecule.
//The bonds are shifted so they keep referencing the same atoms.
func (M *Molecule) AppendMolecule(o *Molecule) {
	offset := M.Len()
	for i, at := range o.Atoms {
		n := at.Copy()
		n.index = offset + i
		M.Atoms = append(M.Atoms, n)
	}
	if o.Len() > 0 {
		coords := v3.Zeros(M.Len())
		coords.Stack(M.Coords, o.Coords)
		M.Coords = coords
	}
	for _, b := range o.Bonds {
		n := b.Copy()
		n.At1 += offset
		n.At2 += offset
		n.Index = len(M.Bonds)
		M.Bonds = append(M.Bonds, n)
	}
}

//Sub returns a new molecule with copies of the atoms with the given indexes, in the
//order given, and copies of the bonds whose 2 atoms are both in the selection, renumbered
//to the new indexes. The atoms keep their IDs. Panics if an index is out of range.
func (M *Molecule) Sub(ids []int) *Molecule {
	local := make(map[int]int, len(ids))
	r := &Molecule{Name: M.Name}
	r.Atoms = make([]*Atom, len(ids))
	for i, id := range ids {
		local[id] = i
		r.Atoms[i] = M.Atom(id).Copy()
		r.Atoms[i].index = i
	}
	if len(ids) > 0 {
		r.Coords = v3.Zeros(len(ids))
		r.Coords.SomeVecs(M.Coords, ids)
	}
	r.Bonds = make([]*Bond, 0, len(ids))
	for _, b := range M.Bonds {
		i1, ok1 := local[b.At1]
		i2, ok2 := local[b.At2]
		if !ok1 || !ok2 {
			continue
		}
		n := b.Copy()
		n.At1 = i1
		n.At2 = i2
		n.Index = len(r.Bonds)
		r.Bonds = append(r.Bonds, n)
	}
	return r
}

//Neighbors returns the indexes of the atoms bonded to the atom with index i.
func (M *Molecule) Neighbors(i int) []int {
	ret := make([]int, 0, 4)
	for _, b := range M.Bonds {
		if b.Contains(i) {
			ret = append(ret, b.Cross(i))
		}
	}
	return ret
}
