/*
 * geometric_test.go, part of gofrag.
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
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBondRotate(Te *testing.T) {
	mol := butane(Te)
	rotated := mol.Copy()
	if err := rotated.BondRotate(1, math.Pi/3); err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if r3.Norm(r3.Sub(rotated.Coord(i), mol.Coord(i))) > 1e-12 {
			Te.Errorf("atom %d should not move", i)
		}
	}
	if r3.Norm(r3.Sub(rotated.Coord(3), mol.Coord(3))) < 0.1 {
		Te.Error("atom 3 should move")
	}
	//bond lengths are kept
	for _, b := range mol.Bonds {
		d1 := r3.Norm(r3.Sub(mol.Coord(b.At1), mol.Coord(b.At2)))
		d2 := r3.Norm(r3.Sub(rotated.Coord(b.At1), rotated.Coord(b.At2)))
		if math.Abs(d1-d2) > 1e-9 {
			Te.Errorf("bond %d changed its length from %f to %f", b.Index, d1, d2)
		}
	}
	dev, err := mol.Superimpose(rotated)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("RMSD after a torsion change:", dev)
	if dev < 1e-3 {
		Te.Errorf("a torsion change should not be removed by a rigid superposition, RMSD: %f", dev)
	}
	if err := mol.BondRotate(7, 1); err == nil {
		Te.Error("bond out of range not detected")
	}
}

func TestBondRotateRing(Te *testing.T) {
	ring := buildMol(Te, []string{"C", "C", "C"},
		[]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1.5, Y: 0, Z: 0}, {X: 0.75, Y: 1.3, Z: 0}},
		[][2]int{{0, 1}, {1, 2}, {2, 0}})
	err := ring.BondRotate(0, 1)
	if err == nil {
		Te.Fatal("rotating a ring bond should fail")
	}
	fmt.Println(err)
}

func TestSuperimpose(Te *testing.T) {
	mol := butane(Te)
	moved := mol.Copy()
	//a rigid motion: rotation around an arbitrary axis plus a translation.
	if err := RotateAbout(moved.Coords, nil, r3.Vec{X: 1, Y: -2, Z: 3}, r3.Vec{X: 0, Y: 1, Z: 1}, 2.1); err != nil {
		Te.Fatal(err)
	}
	moved.Coords.AddVec(moved.Coords, r3.Vec{X: 5, Y: 5, Z: -5})
	rmsd, err := RMSD(mol.Coords, moved.Coords)
	if err != nil {
		Te.Fatal(err)
	}
	if rmsd < 1 {
		Te.Errorf("the molecule should have moved, RMSD %f", rmsd)
	}
	dev, err := mol.Superimpose(moved)
	if err != nil {
		Te.Fatal(err)
	}
	if dev > 1e-9 {
		Te.Errorf("a rigid motion should superimpose perfectly, RMSD: %g", dev)
	}
	short := mol.Sub([]int{0, 1})
	if _, err := mol.Superimpose(short); err == nil {
		Te.Error("different numbers of atoms not detected")
	}
}

func TestRotateAboutZeroAxis(Te *testing.T) {
	mol := butane(Te)
	p := r3.Vec{X: 1, Y: 1, Z: 1}
	if err := RotateAbout(mol.Coords, []int{0}, p, p, 1); err == nil {
		Te.Error("a zero axis should be rejected")
	}
}

func TestAssignRotors(Te *testing.T) {
	mol := butane(Te)
	AssignRotors(mol)
	if !mol.Bonds[1].Rotor || mol.Bonds[0].Rotor || mol.Bonds[2].Rotor {
		Te.Errorf("only the central bond should be a rotor: %v %v %v", mol.Bonds[0].Rotor, mol.Bonds[1].Rotor, mol.Bonds[2].Rotor)
	}
	mol.Bonds[1].Order = 2
	AssignRotors(mol)
	if RotorCount(mol) != 0 {
		Te.Error("a double bond is not a rotor")
	}
	//a 4-ring: every atom has 2 heavy neighbours, but no bond can rotate.
	ring := buildMol(Te, []string{"C", "C", "C", "C"},
		[]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1.5, Y: 0, Z: 0}, {X: 1.5, Y: 1.5, Z: 0}, {X: 0, Y: 1.5, Z: 0}},
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	AssignRotors(ring)
	if RotorCount(ring) != 0 {
		Te.Error("ring bonds are not rotors")
	}
}

func TestAssignBonds(Te *testing.T) {
	mol := buildMol(Te, []string{"O", "H", "H", "C"},
		[]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 0.96, Y: 0, Z: 0}, {X: -0.24, Y: 0.93, Z: 0}, {X: 10, Y: 0, Z: 0}}, nil)
	if err := AssignBonds(mol); err != nil {
		Te.Fatal(err)
	}
	if len(mol.Bonds) != 2 {
		Te.Fatalf("water should have 2 bonds, got %d", len(mol.Bonds))
	}
	for i, b := range mol.Bonds {
		if b.At1 != 0 || b.Index != i {
			Te.Errorf("unexpected bond %+v", *b)
		}
	}
	//an H close to 2 atoms keeps only the shortest bond.
	bridged := buildMol(Te, []string{"O", "H", "O"},
		[]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1.0, Y: 0, Z: 0}, {X: 2.4, Y: 0, Z: 0}}, nil)
	if err := AssignBonds(bridged); err != nil {
		Te.Fatal(err)
	}
	if len(bridged.Bonds) != 1 || bridged.Bonds[0].At2 != 1 {
		Te.Errorf("expected only the O0-H1 bond, got %d bonds", len(bridged.Bonds))
	}
	unknown := buildMol(Te, []string{"Xx", "C"}, make([]r3.Vec, 2), nil)
	if err := AssignBonds(unknown); err == nil {
		Te.Error("an unknown element should give an error")
	}
}
