/*
 * rings_test.go, part of gofrag.
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

package chemgraph

import (
	"fmt"
	"reflect"
	"testing"
)

func cycle(n int) []Pair {
	ret := make([]Pair, n)
	for i := 0; i < n; i++ {
		ret[i] = Pair{i, (i + 1) % n}
	}
	return ret
}

func TestSingleRing(Te *testing.T) {
	rings := Rings(6, cycle(6))
	//6 start atoms, 2 directions each.
	if len(rings) != 12 {
		Te.Errorf("expected 12 ring reports for a 6-ring, got %d", len(rings))
	}
	for _, r := range rings {
		if len(r) != 6 {
			Te.Errorf("bad ring %v", r)
		}
	}
	u := UniqueRings(rings)
	if len(u) != 1 {
		Te.Errorf("expected 1 unique ring, got %v", u)
	}
	if !InRing(rings, 5, 0) || InRing(rings, 0, 3) {
		Te.Error("InRing gave a wrong answer")
	}
}

func TestRingIsClosedPath(Te *testing.T) {
	bonds := append(cycle(5), Pair{2, 5}, Pair{5, 6})
	adj := make(map[Pair]bool)
	for _, b := range bonds {
		adj[b] = true
		adj[Pair{b[1], b[0]}] = true
	}
	for _, r := range Rings(7, bonds) {
		for i, v := range r {
			w := r[(i+1)%len(r)]
			if !adj[Pair{v, w}] {
				Te.Errorf("ring %v has non-bonded consecutive atoms %d %d", r, v, w)
			}
		}
	}
}

func TestFusedRings(Te *testing.T) {
	//naphthalene skeleton: two 6-rings sharing the 0-5 bond.
	bonds := append(cycle(6), Pair{5, 6}, Pair{6, 7}, Pair{7, 8}, Pair{8, 9}, Pair{9, 0})
	u := UniqueRings(Rings(10, bonds))
	sizes := make(map[int]int)
	for _, r := range u {
		sizes[len(r)]++
	}
	fmt.Println(u)
	if !reflect.DeepEqual(sizes, map[int]int{6: 2, 10: 1}) {
		Te.Errorf("expected two 6-rings and the 10-ring envelope, got %v", sizes)
	}
}

func TestNoRings(Te *testing.T) {
	chain := []Pair{{0, 1}, {1, 2}, {2, 3}}
	if n := NewRingDetector(4, chain).Count(); n != 0 {
		Te.Errorf("a chain has no rings, got %d", n)
	}
	if n := NewRingDetector(3, nil).Count(); n != 0 {
		Te.Errorf("isolated atoms have no rings, got %d", n)
	}
	//the detector can be reused.
	R := NewRingDetector(3, cycle(3))
	if R.Count() != R.Count() || R.Count() != 6 {
		Te.Error("a triangle should be reported 6 times, every time")
	}
}

func TestSideAndComponents(Te *testing.T) {
	//0-1-2-3 with a 4-5 island
	bonds := []Pair{{0, 1}, {1, 2}, {2, 3}, {4, 5}}
	side, ok := Side(6, bonds, 1, 2)
	if !ok || !reflect.DeepEqual(side, []int{2, 3}) {
		Te.Errorf("bad side %v %v", side, ok)
	}
	if _, ok := Side(6, cycle(6), 0, 1); ok {
		Te.Error("a ring bond does not split the graph")
	}
	comps := Components(6, bonds)
	if !reflect.DeepEqual(comps, [][]int{{0, 1, 2, 3}, {4, 5}}) {
		Te.Errorf("bad components %v", comps)
	}
	if d := Degrees(6, bonds); !reflect.DeepEqual(d, []int{1, 2, 2, 1, 1, 1}) {
		Te.Errorf("bad degrees %v", d)
	}
}
