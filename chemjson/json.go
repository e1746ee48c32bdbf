/*
 * json.go, part of gofrag.
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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/gofrag"
	"github.com/rmera/gofrag/frag"
	v3 "github.com/rmera/gofrag/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//A ready-to-serialize container for an atom and its coordinates.
type Atom struct {
	Name    string `json:",omitempty"`
	Symbol  string
	ID      int
	Charge  int `json:",omitempty"`
	Isotope int `json:",omitempty"`
	Coords  [3]float64
}

//A ready-to-serialize container for a bond. The atoms are
//indexes in the Atoms slice of the container.
type Bond struct {
	At1   int
	At2   int
	Order float64
	Rotor bool `json:",omitempty"`
}

//A ready-to-serialize container for a frag.Edge
type Edge struct {
	Target     int
	Reverse    int
	Bond       int
	LocalAtom  int
	RemoteAtom int
	Local      [3]float64
	Remote     [3]float64
	Axis       *[3]float64 `json:",omitempty"`
}

//A ready-to-serialize container for a frag.Fragment
type Fragment struct {
	ID      int
	Key     string `json:",omitempty"`
	Formula string
	Indexes []int
	Atoms   []Atom
	Bonds   []Bond `json:",omitempty"`
	NearIDs []int  `json:",omitempty"`
	Edges   []Edge `json:",omitempty"`
}

//Decomposition contains the fragments of one molecule.
type Decomposition struct {
	Index     int //position of the molecule in the input
	Molecule  string
	Keys      []string   `json:",omitempty"`
	Fragments []Fragment `json:",omitempty"`
	Error     string     `json:",omitempty"` //if not empty, the molecule couldn't be decomposed
}

//LibraryEntry is a unique fragment, with the number of times it was found.
type LibraryEntry struct {
	Key      string
	Count    int
	Fragment Fragment
}

//Library is the set of unique fragments of a group of molecules, in the order
//they were first found, and information about how it was obtained.
type Library struct {
	RunID          string
	Input          string `json:",omitempty"`
	MaxRingSize    int
	MergeSolitary  bool
	Molecules      int
	Failed         int
	Fragments      []LibraryEntry
	Decompositions []Decomposition `json:",omitempty"`
}

func vec2array(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func array2vec(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

//EncodeFragment puts f in a ready-to-serialize container. key can be empty.
func EncodeFragment(f *frag.Fragment, key string) Fragment {
	r := Fragment{ID: f.ID, Key: key, Formula: f.Formula(), Indexes: f.Indexes, NearIDs: f.NearIDs}
	r.Atoms = make([]Atom, f.Len())
	for i, at := range f.Atoms {
		r.Atoms[i] = Atom{Name: at.Name, Symbol: at.Symbol, ID: at.ID, Charge: at.Charge, Isotope: at.Isotope, Coords: vec2array(f.Coord(i))}
	}
	for _, b := range f.Bonds {
		r.Bonds = append(r.Bonds, Bond{At1: b.At1, At2: b.At2, Order: b.Order, Rotor: b.Rotor})
	}
	for _, e := range f.Edges {
		je := Edge{Target: e.Target, Reverse: e.Reverse, Bond: e.Bond, LocalAtom: e.LocalAtom, RemoteAtom: e.RemoteAtom,
			Local: vec2array(e.Local), Remote: vec2array(e.Remote)}
		if e.Axis != nil {
			ax := vec2array(*e.Axis)
			je.Axis = &ax
		}
		r.Edges = append(r.Edges, je)
	}
	return r
}

//Decode returns the frag.Fragment in the container J.
func (J Fragment) Decode() (*frag.Fragment, error) {
	atoms := make([]*chem.Atom, len(J.Atoms))
	pos := make([]r3.Vec, len(J.Atoms))
	for i, a := range J.Atoms {
		atoms[i] = &chem.Atom{Name: a.Name, Symbol: a.Symbol, ID: a.ID, Charge: a.Charge, Isotope: a.Isotope}
		pos[i] = array2vec(a.Coords)
	}
	bonds := make([]*chem.Bond, len(J.Bonds))
	for i, b := range J.Bonds {
		bonds[i] = &chem.Bond{At1: b.At1, At2: b.At2, Order: b.Order, Rotor: b.Rotor}
	}
	mol, err := chem.NewMolecule(atoms, v3.FromVecs(pos), bonds)
	if err != nil {
		return nil, NewError("Fragment.Decode", err)
	}
	f := &frag.Fragment{ID: J.ID, Molecule: mol, Indexes: J.Indexes, NearIDs: J.NearIDs}
	for _, je := range J.Edges {
		e := &frag.Edge{Target: je.Target, Reverse: je.Reverse, Bond: je.Bond, LocalAtom: je.LocalAtom, RemoteAtom: je.RemoteAtom,
			Local: array2vec(je.Local), Remote: array2vec(je.Remote)}
		if je.Axis != nil {
			ax := array2vec(*je.Axis)
			e.Axis = &ax
		}
		f.Edges = append(f.Edges, e)
	}
	return f, nil
}

//EncodeDecomposition puts the fragments of a molecule in a ready-to-serialize container.
//keys can be nil, otherwise it must contain the key of each fragment.
func EncodeDecomposition(index int, mol *chem.Molecule, frags []*frag.Fragment, keys []string) Decomposition {
	r := Decomposition{Index: index, Molecule: mol.Name, Keys: keys}
	r.Fragments = make([]Fragment, len(frags))
	for i, f := range frags {
		k := ""
		if keys != nil {
			k = keys[i]
		}
		r.Fragments[i] = EncodeFragment(f, k)
	}
	return r
}

//Write encodes v as JSON into out, compressing it with zstandard if compress is true.
func Write(out io.Writer, v interface{}, compress bool) error {
	const funcname = "Write"
	if !compress {
		enc := json.NewEncoder(out)
		if err := enc.Encode(v); err != nil {
			return NewError(funcname, err)
		}
		return nil
	}
	zw, err := zstd.NewWriter(out)
	if err != nil {
		return NewError(funcname, err)
	}
	if err := json.NewEncoder(zw).Encode(v); err != nil {
		zw.Close()
		return NewError(funcname, err)
	}
	if err := zw.Close(); err != nil {
		return NewError(funcname, err)
	}
	return nil
}

//Read decodes JSON from in into v. If compressed is true, the data is first decompressed with zstandard.
func Read(in io.Reader, v interface{}, compressed bool) error {
	const funcname = "Read"
	if compressed {
		zr, err := zstd.NewReader(in)
		if err != nil {
			return NewError(funcname, err)
		}
		defer zr.Close()
		in = zr
	}
	if err := json.NewDecoder(in).Decode(v); err != nil {
		return NewError(funcname, err)
	}
	return nil
}

//Compressed returns true if the file name indicates zstandard compression.
func Compressed(name string) bool {
	return strings.HasSuffix(name, ".zst")
}

//WriteFile encodes v into the file name, which is compressed if its name ends in ".zst".
func WriteFile(name string, v interface{}) error {
	f, err := os.Create(name)
	if err != nil {
		return NewError("WriteFile", err)
	}
	out := bufio.NewWriter(f)
	if err := Write(out, v, Compressed(name)); err != nil {
		f.Close()
		return errDecorate(err, "WriteFile")
	}
	if err := out.Flush(); err != nil {
		f.Close()
		return NewError("WriteFile", err)
	}
	if err := f.Close(); err != nil {
		return NewError("WriteFile", err)
	}
	return nil
}

//ReadFile decodes the file name into v. Files with names ending in ".zst" are decompressed.
func ReadFile(name string, v interface{}) error {
	f, err := os.Open(name)
	if err != nil {
		return NewError("ReadFile", err)
	}
	defer f.Close()
	return errDecorate(Read(bufio.NewReader(f), v, Compressed(name)), "ReadFile")
}

//An easily JSON-serializable error type.
type Error struct {
	deco     []string
	Function string //which go function gave the error
	Message  string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return fmt.Sprintf("%s: %s", J.Function, J.Message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec != "" {
		J.deco = append(J.deco, dec)
	}
	return J.deco
}

//NewError takes an error and the name of the function where it happened and creates a json-marshal-able error.
func NewError(function string, err error) *Error {
	return &Error{deco: []string{function}, Function: function, Message: err.Error()}
}

func errDecorate(err error, caller string) error {
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
	}
	return err
}
