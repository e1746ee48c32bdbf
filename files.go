/*
 * files.go, part of gofrag.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	v3 "github.com/rmera/gofrag/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//SDF V2000 charge codes in the atom block.
var sdfCharge = map[int]int{1: 3, 2: 2, 3: 1, 5: -1, 6: -2, 7: -3}

//column returns the trimmed substring of line between from and to, or less if the line is shorter.
func column(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return strings.TrimSpace(line[from:to])
}

//sdfReader keeps track of the line number while reading an SDF file.
type sdfReader struct {
	sc   *bufio.Scanner
	line int
}

func (s *sdfReader) next() (string, bool) {
	if !s.sc.Scan() {
		return "", false
	}
	s.line++
	return strings.TrimRight(s.sc.Text(), "\r"), true
}

func (s *sdfReader) errorf(format string, a ...interface{}) error {
	return newError(fmt.Sprintf("line %d: ", s.line)+fmt.Sprintf(format, a...), "SDFRead", nil)
}

//SDFRead reads all the records of a V2000 SDF (or MOL) stream. Atoms get their
//position in the record as ID. Bonds with order 4 (aromatic) get order 1.5.
//Data items ("> <name>") are stored in the Props of each molecule. Rotors are assigned
//with AssignRotors.
func SDFRead(r io.Reader) ([]*Molecule, error) {
	s := &sdfReader{sc: bufio.NewScanner(r)}
	s.sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var mols []*Molecule
	for {
		mol, err := s.record()
		if err != nil {
			return mols, errDecorate(err, "SDFRead")
		}
		if mol == nil {
			break
		}
		mols = append(mols, mol)
	}
	if err := s.sc.Err(); err != nil {
		return mols, newError("Error reading SDF stream", "SDFRead", err)
	}
	return mols, nil
}

//record reads one molecule, returns nil, nil at the end of the stream.
func (s *sdfReader) record() (*Molecule, error) {
	name, ok := s.next()
	for ok && strings.TrimSpace(name) == "" {
		name, ok = s.next() //blank lines between records
	}
	if !ok {
		return nil, nil
	}
	for i := 0; i < 2; i++ {
		if _, ok := s.next(); !ok {
			return nil, s.errorf("unexpected end of file in the header of %q", name)
		}
	}
	counts, ok := s.next()
	if !ok {
		return nil, s.errorf("missing counts line")
	}
	if strings.Contains(counts, "V3000") {
		return nil, s.errorf("V3000 records are not supported")
	}
	natoms, err := strconv.Atoi(column(counts, 0, 3))
	if err != nil {
		return nil, s.errorf("bad atom count %q", column(counts, 0, 3))
	}
	nbonds, err := strconv.Atoi(column(counts, 3, 6))
	if err != nil {
		return nil, s.errorf("bad bond count %q", column(counts, 3, 6))
	}
	atoms := make([]*Atom, natoms)
	coords := v3.Zeros(natoms)
	for i := 0; i < natoms; i++ {
		l, ok := s.next()
		if !ok {
			return nil, s.errorf("unexpected end of file in the atom block")
		}
		var pos [3]float64
		for j := range pos {
			pos[j], err = strconv.ParseFloat(column(l, 10*j, 10*j+10), 64)
			if err != nil {
				return nil, s.errorf("bad coordinate in atom %d", i+1)
			}
		}
		coords.SetVec(i, r3.Vec{X: pos[0], Y: pos[1], Z: pos[2]})
		at := &Atom{Symbol: column(l, 31, 34), ID: i}
		if c, err := strconv.Atoi(column(l, 36, 39)); err == nil {
			at.Charge = sdfCharge[c]
		}
		atoms[i] = at
	}
	bonds := make([]*Bond, nbonds)
	for i := 0; i < nbonds; i++ {
		l, ok := s.next()
		if !ok {
			return nil, s.errorf("unexpected end of file in the bond block")
		}
		a1, err1 := strconv.Atoi(column(l, 0, 3))
		a2, err2 := strconv.Atoi(column(l, 3, 6))
		order, err3 := strconv.Atoi(column(l, 6, 9))
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, s.errorf("bad bond %d", i+1)
		}
		b := &Bond{At1: a1 - 1, At2: a2 - 1, Order: float64(order)}
		if order == 4 {
			b.Order = 1.5
		}
		bonds[i] = b
	}
	mol, err := NewMolecule(atoms, coords, bonds)
	if err != nil {
		return nil, s.errorf("record %q: %s", name, err.Error())
	}
	mol.Name = strings.TrimSpace(name)
	if err := s.properties(mol); err != nil {
		return nil, err
	}
	AssignRotors(mol)
	return mol, nil
}

//properties reads the property block and the data items up to the "$$$$" line.
func (s *sdfReader) properties(mol *Molecule) error {
	var item string
	var value []string
	inData := false
	for {
		l, ok := s.next()
		if !ok {
			break //the last record doesn't always end with $$$$
		}
		if l == "$$$$" {
			break
		}
		switch {
		case strings.HasPrefix(l, "M  CHG"), strings.HasPrefix(l, "M  ISO"):
			if err := s.propertyLine(mol, l); err != nil {
				return err
			}
		case strings.HasPrefix(l, ">"):
			start := strings.Index(l, "<")
			end := strings.LastIndex(l, ">")
			if start < 0 || end <= start {
				return s.errorf("bad data item header %q", l)
			}
			item = l[start+1 : end]
			value = value[:0]
			inData = true
		case inData && strings.TrimSpace(l) == "":
			if mol.Props == nil {
				mol.Props = make(map[string]string)
			}
			mol.Props[item] = strings.Join(value, "\n")
			inData = false
		case inData:
			value = append(value, l)
		}
	}
	if inData {
		if mol.Props == nil {
			mol.Props = make(map[string]string)
		}
		mol.Props[item] = strings.Join(value, "\n")
	}
	return nil
}

//propertyLine reads the atom-value pairs of M  CHG and M  ISO lines.
func (s *sdfReader) propertyLine(mol *Molecule, l string) error {
	fields := strings.Fields(l[6:])
	if len(fields) == 0 {
		return s.errorf("empty property line")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || len(fields) < 1+2*n {
		return s.errorf("bad property line %q", l)
	}
	for i := 0; i < n; i++ {
		at, err1 := strconv.Atoi(fields[1+2*i])
		val, err2 := strconv.Atoi(fields[2+2*i])
		if err1 != nil || err2 != nil || at < 1 || at > mol.Len() {
			return s.errorf("bad property line %q", l)
		}
		if strings.HasPrefix(l, "M  CHG") {
			mol.Atom(at - 1).Charge = val
		} else {
			mol.Atom(at - 1).Isotope = val
		}
	}
	return nil
}

//SDFFileRead opens the file sdfname and reads all its records with SDFRead.
func SDFFileRead(sdfname string) ([]*Molecule, error) {
	f, err := os.Open(sdfname)
	if err != nil {
		return nil, newError("Can't open SDF file "+sdfname, "SDFFileRead", err)
	}
	defer f.Close()
	mols, err := SDFRead(f)
	return mols, errDecorate(err, "SDFFileRead")
}

//writePairs writes M  lines for the atom-value pairs given, at most 8 per line.
func writePairs(w *bufio.Writer, tag string, pairs [][2]int) {
	for len(pairs) > 0 {
		n := minInt(8, len(pairs))
		fmt.Fprintf(w, "M  %s%3d", tag, n)
		for _, p := range pairs[:n] {
			fmt.Fprintf(w, " %3d %3d", p[0], p[1])
		}
		w.WriteString("\n")
		pairs = pairs[n:]
	}
}

//SDFWrite writes mols to w as V2000 SDF records. Charges and isotopes are written
//as M  CHG and M  ISO lines. The Props of each molecule are written as data items,
//sorted by name.
func SDFWrite(w io.Writer, mols []*Molecule) error {
	out := bufio.NewWriter(w)
	for _, mol := range mols {
		if mol.Len() > 999 || len(mol.Bonds) > 999 {
			return newError(fmt.Sprintf("Molecule %q is too large for the V2000 format", mol.Name), "SDFWrite", nil)
		}
		fmt.Fprintf(out, "%s\n  gofrag\n\n", mol.Name)
		fmt.Fprintf(out, "%3d%3d  0  0  0  0  0  0  0  0999 V2000\n", mol.Len(), len(mol.Bonds))
		var chg, iso [][2]int
		for i, at := range mol.Atoms {
			c := mol.Coord(i)
			fmt.Fprintf(out, "%10.4f%10.4f%10.4f %-3s 0  0  0  0  0  0  0  0  0  0  0  0\n", c.X, c.Y, c.Z, at.Symbol)
			if at.Charge != 0 {
				chg = append(chg, [2]int{i + 1, at.Charge})
			}
			if at.Isotope != 0 {
				iso = append(iso, [2]int{i + 1, at.Isotope})
			}
		}
		for _, b := range mol.Bonds {
			order := int(b.Order)
			if b.Order == 1.5 {
				order = 4
			}
			fmt.Fprintf(out, "%3d%3d%3d  0\n", b.At1+1, b.At2+1, order)
		}
		writePairs(out, "CHG", chg)
		writePairs(out, "ISO", iso)
		out.WriteString("M  END\n")
		keys := make([]string, 0, len(mol.Props))
		for k := range mol.Props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "> <%s>\n%s\n\n", k, mol.Props[k])
		}
		out.WriteString("$$$$\n")
	}
	if err := out.Flush(); err != nil {
		return newError("Error writing SDF stream", "SDFWrite", err)
	}
	return nil
}

//XYZRead reads one molecule in the XYZ format from r. The bonds are assigned
//with AssignBonds, and the rotors with AssignRotors.
func XYZRead(r io.Reader) (*Molecule, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, newError("Empty XYZ file", "XYZRead", sc.Err())
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, newError("Ill formatted XYZ file, bad number of atoms", "XYZRead", err)
	}
	if !sc.Scan() {
		return nil, newError("Ill formatted XYZ file, missing comment line", "XYZRead", sc.Err())
	}
	name := strings.TrimSpace(sc.Text())
	atoms := make([]*Atom, natoms)
	coords := v3.Zeros(natoms)
	for i := 0; i < natoms; i++ {
		if !sc.Scan() {
			return nil, newError(fmt.Sprintf("Ill formatted XYZ file, %d atoms expected, %d found", natoms, i), "XYZRead", sc.Err())
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 {
			return nil, newError(fmt.Sprintf("Ill formatted XYZ file, atom %d", i+1), "XYZRead", nil)
		}
		var pos [3]float64
		for j := range pos {
			pos[j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, newError(fmt.Sprintf("Ill formatted XYZ file, atom %d", i+1), "XYZRead", err)
			}
		}
		atoms[i] = &Atom{Symbol: fields[0], ID: i}
		coords.SetVec(i, r3.Vec{X: pos[0], Y: pos[1], Z: pos[2]})
	}
	mol, err := NewMolecule(atoms, coords, nil)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	mol.Name = name
	if err := AssignBonds(mol); err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	AssignRotors(mol)
	return mol, nil
}

//XYZFileRead reads the molecule in the XYZ file xyzname.
func XYZFileRead(xyzname string) (*Molecule, error) {
	f, err := os.Open(xyzname)
	if err != nil {
		return nil, newError("Can't open XYZ file "+xyzname, "XYZFileRead", err)
	}
	defer f.Close()
	mol, err := XYZRead(f)
	return mol, errDecorate(err, "XYZFileRead")
}
