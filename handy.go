/*
 * handy.go, part of gofrag.
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
	"sort"
	"strconv"
	"strings"
)

//Formula returns the molecular formula of the atoms in mol, in the Hill
//order: C first, then H, then everything else alphabetically. If there is no
//carbon, all elements, H included, are sorted alphabetically.
func Formula(mol Atomer) string {
	count := make(map[string]int)
	for i := 0; i < mol.Len(); i++ {
		count[mol.Atom(i).Symbol]++
	}
	symbols := make([]string, 0, len(count))
	for s := range count {
		if count["C"] > 0 && (s == "C" || s == "H") {
			continue
		}
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	if count["C"] > 0 {
		first := []string{"C"}
		if count["H"] > 0 {
			first = append(first, "H")
		}
		symbols = append(first, symbols...)
	}
	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(s)
		if count[s] > 1 {
			b.WriteString(strconv.Itoa(count[s]))
		}
	}
	return b.String()
}
