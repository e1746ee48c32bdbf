/*
 * json_test.go, part of gofrag.
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

package chemjson

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rmera/gofrag"
	"github.com/rmera/gofrag/frag"
	v3 "github.com/rmera/gofrag/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//propanol heavy atoms, C-C-C-O, with rotatable central bonds.
func propanol(Te *testing.T) *chem.Molecule {
	atoms := []*chem.Atom{{Symbol: "C", ID: 0}, {Symbol: "C", ID: 1}, {Symbol: "C", ID: 2}, {Symbol: "O", ID: 3}}
	pos := []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1.5, Y: 0, Z: 0}, {X: 2.0, Y: 1.4, Z: 0}, {X: 3.4, Y: 1.4, Z: 0.3}}
	bonds := []*chem.Bond{{At1: 0, At2: 1, Order: 1, Rotor: true}, {At1: 1, At2: 2, Order: 1, Rotor: true}, {At1: 2, At2: 3, Order: 1, Rotor: true}}
	mol, err := chem.NewMolecule(atoms, v3.FromVecs(pos), bonds)
	if err != nil {
		Te.Fatal(err)
	}
	mol.Name = "propanol"
	return mol
}

func TestRoundTrip(Te *testing.T) {
	mol := propanol(Te)
	frags, err := frag.Decompose(mol, frag.Unlimited, false)
	if err != nil {
		Te.Fatal(err)
	}
	d := EncodeDecomposition(0, mol, frags, frag.Keys(frags))
	for _, compress := range []bool{false, true} {
		var buf bytes.Buffer
		if err := Write(&buf, d, compress); err != nil {
			Te.Fatal(err)
		}
		fmt.Printf("compressed: %v, %d bytes\n", compress, buf.Len())
		var back Decomposition
		if err := Read(&buf, &back, compress); err != nil {
			Te.Fatal(err)
		}
		if back.Molecule != "propanol" || len(back.Fragments) != len(frags) || back.Keys[3] != d.Keys[3] {
			Te.Fatalf("bad decoded decomposition %+v", back)
		}
		decoded := make([]*frag.Fragment, len(back.Fragments))
		for i, jf := range back.Fragments {
			decoded[i], err = jf.Decode()
			if err != nil {
				Te.Fatal(err)
			}
		}
		if err := frag.Check(mol, decoded); err != nil {
			Te.Error(err)
		}
		if decoded[0].Edges[0].Axis == nil || *decoded[0].Edges[0].Axis != *frags[0].Edges[0].Axis {
			Te.Error("axis not kept")
		}
		if decoded[1].Edges[0].Axis != nil {
			Te.Error("an ambiguous axis should stay nil")
		}
	}
}

func TestFiles(Te *testing.T) {
	mol := propanol(Te)
	frags, err := frag.Decompose(mol, frag.Unlimited, true)
	if err != nil {
		Te.Fatal(err)
	}
	lib := Library{RunID: "test", MaxRingSize: -1, MergeSolitary: true, Molecules: 1}
	for _, f := range frags {
		lib.Fragments = append(lib.Fragments, LibraryEntry{Key: frag.Key(f.Molecule), Count: 1, Fragment: EncodeFragment(f, "")})
	}
	dir := Te.TempDir()
	for _, name := range []string{"lib.json", "lib.json.zst"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, lib); err != nil {
			Te.Fatal(err)
		}
		var back Library
		if err := ReadFile(path, &back); err != nil {
			Te.Fatal(err)
		}
		if back.RunID != "test" || len(back.Fragments) != len(frags) {
			Te.Errorf("%s: bad library %+v", name, back)
		}
	}
	//a compressed file can't be read as plain JSON.
	raw, err := os.ReadFile(filepath.Join(dir, "lib.json.zst"))
	if err != nil {
		Te.Fatal(err)
	}
	var back Library
	if err := Read(bytes.NewReader(raw), &back, false); err == nil {
		Te.Error("expected an error reading compressed data as JSON")
	}
	if err := ReadFile(filepath.Join(dir, "missing.json"), &back); err == nil {
		Te.Error("expected an error for a missing file")
	}
}
