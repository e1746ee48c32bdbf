/*
 * molecule_test.go, part of gofrag.
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
	"testing"

	v3 "github.com/rmera/gofrag/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//buildMol makes a molecule with the given symbols, positions and single bonds.
func buildMol(Te *testing.T, symbols []string, pos []r3.Vec, pairs [][2]int) *Molecule {
	atoms := make([]*Atom, len(symbols))
	for i, s := range symbols {
		atoms[i] = &Atom{Symbol: s, ID: i}
	}
	bonds := make([]*Bond, len(pairs))
	for i, p := range pairs {
		bonds[i] = &Bond{At1: p[0], At2: p[1], Order: 1}
	}
	mol, err := NewMolecule(atoms, v3.FromVecs(pos), bonds)
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

//zigzag 4 carbon chain, not planar-linear so the torsion around the central bond matters.
func butane(Te *testing.T) *Molecule {
	return buildMol(Te, []string{"C", "C", "C", "C"},
		[]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1.5, Y: 0, Z: 0}, {X: 2.0, Y: 1.4, Z: 0}, {X: 3.5, Y: 1.4, Z: 0}},
		[][2]int{{0, 1}, {1, 2}, {2, 3}})
}

func TestCheck(Te *testing.T) {
	atoms := []*Atom{{Symbol: "C"}, {Symbol: "O"}}
	if _, err := NewMolecule(atoms, v3.Zeros(3), nil); err == nil {
		Te.Error("coordinates/atoms mismatch not detected")
	}
	if _, err := NewMolecule(atoms, v3.Zeros(2), []*Bond{{At1: 0, At2: 2}}); err == nil {
		Te.Error("bond out of range not detected")
	}
	_, err := NewMolecule(atoms, v3.Zeros(2), []*Bond{{At1: 1, At2: 1}})
	if err == nil {
		Te.Fatal("self bond not detected")
	}
	if e, ok := err.(*Error); !ok || len(e.Decorate("")) != 2 {
		Te.Errorf("expected a *Error decorated by Check and NewMolecule, got %v", err)
	}
	fmt.Println(err)
	if _, err := NewMolecule(nil, nil, nil); err != nil {
		Te.Errorf("an empty molecule is valid: %v", err)
	}
}

func TestSubAndAppend(Te *testing.T) {
	mol := butane(Te)
	sub := mol.Sub([]int{3, 2})
	if sub.Len() != 2 || len(sub.Bonds) != 1 {
		Te.Fatalf("expected 2 atoms and 1 bond, got %d and %d", sub.Len(), len(sub.Bonds))
	}
	if sub.Atom(0).ID != 3 || sub.Atom(0).Index() != 0 {
		Te.Errorf("Sub should keep the IDs and renumber the indexes, got ID %d index %d", sub.Atom(0).ID, sub.Atom(0).Index())
	}
	if b := sub.Bonds[0]; b.At1 != 1 || b.At2 != 0 {
		Te.Errorf("bond not remapped: %d-%d", b.At1, b.At2)
	}
	if sub.Coord(0) != mol.Coord(3) {
		Te.Errorf("wrong coordinates %v", sub.Coord(0))
	}
	sub.Atom(0).Symbol = "N"
	if mol.Atom(3).Symbol != "C" {
		Te.Error("Sub should copy the atoms")
	}

	mol.AppendAtom(&Atom{Symbol: "O", ID: 4}, r3.Vec{X: 4, Y: 2, Z: 0})
	mol.AppendBond(&Bond{At1: 3, At2: 4, Order: 1})
	if mol.Len() != 5 || mol.Coord(4) != (r3.Vec{X: 4, Y: 2, Z: 0}) || mol.Bonds[3].Index != 3 {
		Te.Errorf("AppendAtom/AppendBond failed: %d atoms, %v", mol.Len(), mol.Coord(4))
	}
	mol.AppendMolecule(sub)
	if mol.Len() != 7 || len(mol.Bonds) != 5 {
		Te.Fatalf("AppendMolecule: expected 7 atoms and 5 bonds, got %d and %d", mol.Len(), len(mol.Bonds))
	}
	if b := mol.Bonds[4]; b.At1 != 6 || b.At2 != 5 {
		Te.Errorf("appended bond not shifted: %d-%d", b.At1, b.At2)
	}
	if err := mol.Check(); err != nil {
		Te.Error(err)
	}
	if n := mol.Neighbors(3); len(n) != 2 {
		Te.Errorf("atom 3 should have 2 neighbors, got %v", n)
	}
}

func TestCopy(Te *testing.T) {
	mol := butane(Te)
	mol.Props = map[string]string{"a": "b"}
	c := mol.Copy()
	c.Coords.SetVec(0, r3.Vec{X: 9, Y: 9, Z: 9})
	c.Bonds[0].Rotor = true
	c.Props["a"] = "c"
	if mol.Coord(0) == c.Coord(0) || mol.Bonds[0].Rotor || mol.Props["a"] != "b" {
		Te.Error("Copy is not a deep copy")
	}
}

func TestFormula(Te *testing.T) {
	mol := buildMol(Te, []string{"O", "C", "H", "C", "H", "H", "H", "H", "H"}, make([]r3.Vec, 9), nil)
	if f := Formula(mol); f != "C2H6O" {
		Te.Errorf("expected C2H6O, got %s", f)
	}
	water := buildMol(Te, []string{"O", "H", "H"}, make([]r3.Vec, 3), nil)
	if f := Formula(water); f != "H2O" {
		Te.Errorf("expected H2O, got %s", f)
	}
}

func TestHydrogen(Te *testing.T) {
	cases := map[Atom]bool{
		{Symbol: "H"}:               true,
		{Name: "HD", Symbol: "H"}:   true,
		{Name: "C.ar", Symbol: "C"}: false,
		{Symbol: "O"}:               false,
		{Name: "Hg", Symbol: "Hg"}:  true, //only the prefix is checked.
	}
	for at, expected := range cases {
		if at.IsHydrogen() != expected {
			Te.Errorf("IsHydrogen for %+v should be %v", at, expected)
		}
	}
}
