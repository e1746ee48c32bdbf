/*
 * rings.go, part of gofrag.
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

//Package chemgraph contains graph algorithms over the bond graph of a molecule,
//where atoms are the integers 0..n-1 and bonds are pairs of those integers.
//It provides the exhaustive ring (simple cycle) search used by the fragment
//decomposition, and an adaptor to gonum's graph types.
package chemgraph

import (
	"fmt"
	"sort"
)

//Pair is an undirected bond between two atom indexes.
type Pair [2]int

//RingDetector finds all simple cycles in a bond graph by depth-first search
//from every atom. All the working storage (adjacency lists, visit marks and
//the current path) belongs to the detector, so different detectors can be used
//concurrently. A single detector must not.
//
//Each ring is reported once per atom in it and per traversal direction. Use
//UniqueRings if the distinct rings are needed. The number of cycles grows
//combinatorially for large fused polycyclic systems.
type RingDetector struct {
	adj     [][]int
	visited []bool
	path    []int
	rings   [][]int
}

//NewRingDetector builds a detector for a graph with n atoms and the given bonds.
//Panics if a bond references an atom out of range.
func NewRingDetector(n int, bonds []Pair) *RingDetector {
	R := &RingDetector{
		adj:     make([][]int, n),
		visited: make([]bool, n),
		path:    make([]int, 0, n),
	}
	for _, b := range bonds {
		R.adj[b[0]] = append(R.adj[b[0]], b[1])
		R.adj[b[1]] = append(R.adj[b[1]], b[0])
	}
	return R
}

//Len returns the number of atoms in the graph.
func (R *RingDetector) Len() int {
	return len(R.adj)
}

//Neighbors returns the atoms bonded to a, in the order the bonds were given.
//The returned slice must not be modified.
func (R *RingDetector) Neighbors(a int) []int {
	return R.adj[a]
}

//Rings returns all the rings in the graph, as sequences of atom indexes
//where consecutive atoms, and the last and the first, are bonded.
func (R *RingDetector) Rings() [][]int {
	ret := make([][]int, 0)
	for s := range R.adj {
		for i := range R.visited {
			R.visited[i] = false
		}
		R.path = R.path[:0]
		R.rings = R.rings[:0]
		R.dfs(s, s)
		ret = append(ret, R.rings...)
	}
	R.rings = nil
	return ret
}

//Count returns the number of rings Rings would return.
func (R *RingDetector) Count() int {
	return len(R.Rings())
}

func (R *RingDetector) dfs(now, start int) {
	//a path longer than 2 that comes back to start closes a ring.
	if now == start && len(R.path) > 2 {
		ring := make([]int, len(R.path))
		copy(ring, R.path)
		R.rings = append(R.rings, ring)
	}
	if R.visited[now] {
		return
	}
	R.path = append(R.path, now)
	R.visited[now] = true
	for _, next := range R.adj[now] {
		R.dfs(next, start)
	}
	R.path = R.path[:len(R.path)-1]
	R.visited[now] = false
}

//Rings is a convenience function that returns all the rings in the graph
//with n atoms and the given bonds. See RingDetector.
func Rings(n int, bonds []Pair) [][]int {
	return NewRingDetector(n, bonds).Rings()
}

//UniqueRings returns one ring per distinct atom set in rings, in the order
//they first appear.
func UniqueRings(rings [][]int) [][]int {
	seen := make(map[string]bool, len(rings))
	ret := make([][]int, 0)
	for _, r := range rings {
		k := ringKey(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		ret = append(ret, r)
	}
	return ret
}

func ringKey(r []int) string {
	s := make([]int, len(r))
	copy(s, r)
	sort.Ints(s)
	return fmt.Sprint(s)
}

//InRing returns true if the atoms a and b are consecutive (i.e. bonded) in
//any of the rings.
func InRing(rings [][]int, a, b int) bool {
	for _, r := range rings {
		for i, v := range r {
			w := r[(i+1)%len(r)]
			if (v == a && w == b) || (v == b && w == a) {
				return true
			}
		}
	}
	return false
}
