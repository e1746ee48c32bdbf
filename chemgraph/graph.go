/*
 * graph.go, part of gofrag.
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
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

//NewGraph returns a gonum undirected graph with nodes 0..n-1 (the node ID is the
//atom index) and one edge per bond. Repeated bonds collapse into one edge.
//Panics on a bond from an atom to itself.
func NewGraph(n int, bonds []Pair) *simple.UndirectedGraph {
	return newGraphSkip(n, bonds, -1)
}

//skip is the index of a bond that is left out of the graph, or -1.
func newGraphSkip(n int, bonds []Pair, skip int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i, b := range bonds {
		if i == skip {
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(b[0]), simple.Node(b[1])))
	}
	return g
}

//Components returns the connected components of the graph with n atoms and the given bonds.
//Each component is sorted, and the components are sorted by their first atom.
func Components(n int, bonds []Pair) [][]int {
	g := NewGraph(n, bonds)
	return sortedIDs(topo.ConnectedComponents(g))
}

//Side returns, sorted, the atoms that can be reached from the atom from, without
//using the bond with index skip. The second value is false if the other atom of
//the skipped bond can also be reached that way, i.e. if the bond is part of a ring,
//so it does not split the graph in two sides.
func Side(n int, bonds []Pair, skip, from int) ([]int, bool) {
	g := newGraphSkip(n, bonds, skip)
	other := bonds[skip][0]
	if other == from {
		other = bonds[skip][1]
	}
	ret := make([]int, 0, n)
	crossed := false
	bf := traverse.BreadthFirst{
		Visit: func(nd graph.Node) {
			id := int(nd.ID())
			if id == other {
				crossed = true
			}
			ret = append(ret, id)
		},
	}
	bf.Walk(g, simple.Node(from), nil)
	sort.Ints(ret)
	return ret, !crossed
}

//Degrees returns the number of bonds of each atom, counting repeated bonds once.
func Degrees(n int, bonds []Pair) []int {
	g := NewGraph(n, bonds)
	ret := make([]int, n)
	for i := range ret {
		ret[i] = g.From(int64(i)).Len()
	}
	return ret
}

func sortedIDs(comps [][]graph.Node) [][]int {
	ret := make([][]int, len(comps))
	for i, c := range comps {
		ids := make([]int, len(c))
		for j, nd := range c {
			ids[j] = int(nd.ID())
		}
		sort.Ints(ids)
		ret[i] = ids
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}
