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

package frag

import "gonum.org/v1/gonum/graph/simple"

//Graph returns the connectivity graph of frags: one node per fragment, with the
//fragment ID as node ID, and one edge between fragments joined by at least one bond.
func Graph(frags []*Fragment) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, f := range frags {
		g.AddNode(simple.Node(f.ID))
	}
	for _, f := range frags {
		for _, e := range f.Edges {
			if e.Target == f.ID {
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(f.ID), simple.Node(e.Target)))
		}
	}
	return g
}
