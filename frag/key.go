/*
 * key.go, part of gofrag.
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

package frag

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	chem "github.com/rmera/gofrag"
)

const wlRounds = 3

//Key returns a string that identifies the labelled graph of mol: its elements,
//charges and bonds, not its coordinates or atom order. It is the Hill formula
//followed by a hash of the atom labels after 3 rounds of Weisfeiler-Lehman refinement.
//Different graphs can, rarely, get the same key.
func Key(mol *chem.Molecule) string {
	n := mol.Len()
	labels := make([]uint64, n)
	for i, at := range mol.Atoms {
		labels[i] = xxhash.Sum64String(at.Symbol + "/" + strconv.Itoa(at.Charge))
	}
	type neighbor struct {
		atom  int
		order float64
	}
	adj := make([][]neighbor, n)
	for _, b := range mol.Bonds {
		adj[b.At1] = append(adj[b.At1], neighbor{b.At2, b.Order})
		adj[b.At2] = append(adj[b.At2], neighbor{b.At1, b.Order})
	}
	var sb strings.Builder
	next := make([]uint64, n)
	for r := 0; r < wlRounds; r++ {
		for i := range labels {
			around := make([]string, len(adj[i]))
			for j, nb := range adj[i] {
				around[j] = fmt.Sprintf("%g:%x", nb.order, labels[nb.atom])
			}
			sort.Strings(around)
			sb.Reset()
			fmt.Fprintf(&sb, "%x(", labels[i])
			sb.WriteString(strings.Join(around, ","))
			sb.WriteString(")")
			next[i] = xxhash.Sum64String(sb.String())
		}
		labels, next = next, labels
	}
	final := make([]string, n)
	for i, l := range labels {
		final[i] = strconv.FormatUint(l, 16)
	}
	sort.Strings(final)
	return fmt.Sprintf("%s-%016x", chem.Formula(mol), xxhash.Sum64String(strings.Join(final, ",")))
}

//Keys returns the Key of each fragment, in order.
func Keys(frags []*Fragment) []string {
	ret := make([]string, len(frags))
	for i, f := range frags {
		ret[i] = Key(f.Molecule)
	}
	return ret
}
